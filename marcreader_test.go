/*
 * Copyright 2021 National Library of Norway.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *       http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package gomarc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRecords_blockSize(t *testing.T) {
	input := concat(testRecord1, testRecord2)
	recordSize := len(testRecord1)

	for _, blockSize := range []int{1, 7, recordSize - 1, recordSize, recordSize + 1, len(input), 4096} {
		t.Run(fmt.Sprintf("block size %d", blockSize), func(t *testing.T) {
			assert := assert.New(t)

			records, validation, err := ReadRecords(bytes.NewReader(input), WithBlockSize(blockSize))
			require.NoError(t, err)
			assert.True(validation.Valid())
			require.Len(t, records, 2)

			assert.Equal("Title one", records[0].Fields[1].SubFields[0].Value)
			assert.Equal("Title two", records[1].Fields[1].SubFields[0].Value)
			assert.Equal("606", records[1].Fields[2].Tag)
			assert.Equal([]SubField{{"a", "Subject"}, {"x", "Form"}}, records[1].Fields[2].SubFields)
		})
	}
}

func TestMarcReader_Next_offsets(t *testing.T) {
	assert := assert.New(t)

	input := concat(testRecord1, []byte("\r\n"), testRecord2, []byte("\n"))
	mr, err := NewMarcReader(bytes.NewReader(input), WithBlockSize(16))
	require.NoError(t, err)

	rec, offset, validation, err := mr.Next()
	assert.NoError(err)
	assert.True(validation.Valid())
	assert.Equal(int64(0), offset)
	assert.Equal("CAL 012000000001", rec.Fields[0].Value)

	rec, offset, _, err = mr.Next()
	assert.NoError(err)
	assert.Equal(int64(len(testRecord1)+2), offset)
	assert.Equal("CAL 012000000002", rec.Fields[0].Value)

	rec, offset, _, err = mr.Next()
	assert.Equal(io.EOF, err)
	assert.Nil(rec)
	assert.Equal(int64(len(input)), offset)

	_, _, _, err = mr.Next()
	assert.Equal(io.EOF, err)
}

func TestReadRecords_empty(t *testing.T) {
	for _, input := range []string{"", "\r\n", "\n\n"} {
		records, validation, err := ReadRecords(bytes.NewReader([]byte(input)))
		assert.NoError(t, err)
		assert.Empty(t, records)
		assert.True(t, validation.Valid())
	}
}

func TestReadRecords_truncated(t *testing.T) {
	assert := assert.New(t)

	input := concat(testRecord1, testRecord2[:30])
	records, _, err := ReadRecords(bytes.NewReader(input), WithBlockSize(10))

	assert.Len(records, 1)
	assert.True(errors.Is(err, ErrTruncatedStream), "expected ErrTruncatedStream, got %v", err)
	var re *RecordError
	if assert.True(errors.As(err, &re)) {
		assert.Equal(2, re.Ordinal)
		assert.Equal(int64(len(testRecord1)), re.Offset)
		assert.Equal(StageFraming, re.Stage)
	}
}

func TestReadRecords_truncatedWarn(t *testing.T) {
	assert := assert.New(t)

	input := concat(testRecord1, testRecord2[:30])
	records, validation, err := ReadRecords(bytes.NewReader(input), WithRecordErrorPolicy(ErrWarn))

	assert.NoError(err)
	assert.Len(records, 1)
	require.Len(t, *validation, 1)
	assert.True(errors.Is((*validation)[0], ErrTruncatedStream))
}

func TestReadRecords_malformedRecord(t *testing.T) {
	bad := []byte("00026nam  22000x5   450 \x1e\x1d")
	input := concat(testRecord1, bad, testRecord2)

	tests := []struct {
		name           string
		policy         errorPolicy
		wantRecords    int
		wantValidation int
		wantErr        bool
	}{
		{"fail", ErrFail, 1, 0, true},
		{"warn", ErrWarn, 2, 1, false},
		{"ignore", ErrIgnore, 2, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			records, validation, err := ReadRecords(bytes.NewReader(input), WithRecordErrorPolicy(tt.policy))
			assert.Len(records, tt.wantRecords)
			assert.Len(*validation, tt.wantValidation)
			if tt.wantErr {
				assert.True(errors.Is(err, ErrMalformedLeader), "expected ErrMalformedLeader, got %v", err)
				var re *RecordError
				if assert.True(errors.As(err, &re)) {
					assert.Equal(2, re.Ordinal)
					assert.Equal(StageLeader, re.Stage)
					assert.Contains(re.Error(), "record #2")
				}
				return
			}
			assert.NoError(err)
			assert.Equal("Title two", records[1].Fields[1].SubFields[0].Value)
			if tt.wantValidation > 0 {
				var re *RecordError
				if assert.True(errors.As((*validation)[0], &re)) {
					assert.Equal(2, re.Ordinal)
					assert.Equal(int64(len(testRecord1)), re.Offset)
				}
			}
		})
	}
}

func TestReadRecords_specViolationOrdinal(t *testing.T) {
	assert := assert.New(t)

	wrongLength := append([]byte("99999"), testRecord2[5:]...)
	input := concat(testRecord1, wrongLength)

	records, validation, err := ReadRecords(bytes.NewReader(input), WithSpecViolationPolicy(ErrWarn))
	assert.NoError(err)
	assert.Len(records, 2)
	require.Len(t, *validation, 1)

	var re *RecordError
	if assert.True(errors.As((*validation)[0], &re)) {
		assert.Equal(2, re.Ordinal)
		assert.Equal(StageLeader, re.Stage)
	}
}

func TestReadRecords_encodingName(t *testing.T) {
	assert := assert.New(t)

	input := buildRecord("2001 \x1fa中文标题")
	records, _, err := ReadRecords(bytes.NewReader(input), WithEncodingName("utf-8"))
	assert.NoError(err)
	require.Len(t, records, 1)
	assert.Equal("中文标题", records[0].Fields[0].SubFields[0].Value)

	_, _, err = ReadRecords(bytes.NewReader(input), WithEncodingName("no-such-encoding"))
	assert.Error(err)
}

func TestReadRecords_defaultEncoding(t *testing.T) {
	assert := assert.New(t)

	input := buildRecord("2001 \x1fa" + gb18030(t, "红楼梦"))
	records, _, err := ReadRecords(bytes.NewReader(input))
	assert.NoError(err)
	require.Len(t, records, 1)
	assert.Equal("红楼梦", records[0].Fields[0].SubFields[0].Value)
}

type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestReadRecords_readError(t *testing.T) {
	assert := assert.New(t)

	readErr := errors.New("connection reset")
	input := concat(testRecord1, testRecord2[:10])
	records, _, err := ReadRecords(&failingReader{data: input, err: readErr}, WithBlockSize(32))

	assert.Len(records, 1)
	assert.True(errors.Is(err, readErr), "expected read error, got %v", err)
	var re *RecordError
	if assert.True(errors.As(err, &re)) {
		assert.Equal(2, re.Ordinal)
		assert.Equal(StageFraming, re.Stage)
	}
}
