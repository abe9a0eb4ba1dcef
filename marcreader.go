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
	"io"

	"github.com/nlnwa/gomarc/internal/countingreader"
	log "github.com/sirupsen/logrus"
)

// MarcReader reads records from a stream of concatenated ISO 2709 records.
//
// The stream is read in blocks of the configured block size. Bytes are accumulated until a record
// separator is found, and the record is then decoded before more data is requested.
// A MarcReader is not safe for concurrent use.
type MarcReader struct {
	opts           *marcRecordOptions
	unmarshaler    Unmarshaler
	countingReader *countingreader.Reader
	initialOffset  int64
	block          []byte
	pending        []byte // Bytes read, but not yet part of a returned record
	scanned        int    // Prefix of pending known to hold no record separator
	ordinal        int    // Number of records framed so far
	eof            bool
	skipped        Validation // Errors for skipped records, returned with the next record
}

// NewMarcReader creates a MarcReader reading from r.
func NewMarcReader(r io.Reader, opts ...Option) (*MarcReader, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &MarcReader{
		opts:           o,
		unmarshaler:    &unmarshaler{opts: o},
		countingReader: countingreader.New(r),
		block:          make([]byte, o.blockSize),
	}, nil
}

// ReadRecords reads all records from r.
//
// Records are returned in stream order. The Validation holds the errors of every record skipped
// because of the record error policy and any ISO 2709 structure violations reported with ErrWarn.
// On error the records read so far are returned together with the error.
func ReadRecords(r io.Reader, opts ...Option) ([]*Record, *Validation, error) {
	validation := &Validation{}
	mr, err := NewMarcReader(r, opts...)
	if err != nil {
		return nil, validation, err
	}

	var records []*Record
	for {
		rec, _, v, err := mr.Next()
		validation.addAll(v)
		if err == io.EOF {
			return records, validation, nil
		}
		if err != nil {
			return records, validation, err
		}
		records = append(records, rec)
	}
}

// Next reads the next record from the stream.
//
// It returns the record, the offset of its first byte and the validation results. The validation
// also contains the errors of records skipped since the previous call.
//
// Returned values depends on the record error policy:
//
// If set to ErrFail, the first record which can not be decoded is returned as a *RecordError.
//
// If set to ErrWarn or ErrIgnore, records which can not be decoded are skipped. With ErrWarn their
// errors are added to the Validation.
//
// When at end of stream io.EOF is returned.
func (mr *MarcReader) Next() (*Record, int64, *Validation, error) {
	for {
		if raw, offset, ok := mr.frame(); ok {
			rec, validation, err := mr.unmarshaler.Unmarshal(raw)
			mr.release()
			for _, e := range *validation {
				var re *RecordError
				if errors.As(e, &re) {
					re.at(mr.ordinal, offset)
				}
			}
			if err != nil {
				if err = mr.recordError(err, offset); err != nil {
					return nil, offset, mr.takeSkipped(nil), err
				}
				continue
			}
			log.Debugf("gomarc: decoded record #%d at offset %d with %d fields", mr.ordinal, offset, len(rec.Fields))
			return rec, offset, mr.takeSkipped(validation), nil
		}

		if mr.eof {
			rest := bytes.TrimLeft(mr.pending, crlf)
			offset := mr.pendingOffset() + int64(len(mr.pending)-len(rest))
			rest = bytes.TrimRight(rest, crlf)
			mr.pending = nil
			mr.scanned = 0
			if len(rest) > 0 {
				mr.ordinal++
				err := stageErrorf(StageFraming, ErrTruncatedStream, "%d bytes without record separator at end of stream", len(rest))
				if err := mr.recordError(err, offset); err != nil {
					return nil, offset, mr.takeSkipped(nil), err
				}
			}
			return nil, mr.pendingOffset(), mr.takeSkipped(nil), io.EOF
		}

		if err := mr.fill(); err != nil {
			offset := mr.pendingOffset()
			return nil, offset, mr.takeSkipped(nil), stageError(StageFraming, err).at(mr.ordinal+1, offset)
		}
	}
}

// frame returns the next complete record in the pending buffer with surrounding line endings removed.
func (mr *MarcReader) frame() (raw []byte, offset int64, ok bool) {
	i := indexByte(mr.pending[mr.scanned:], recordSep)
	if i < 0 {
		mr.scanned = len(mr.pending)
		return nil, 0, false
	}
	end := mr.scanned + i + 1
	mr.scanned = end
	mr.ordinal++

	candidate := mr.pending[:end]
	raw = bytes.TrimLeft(candidate, crlf)
	offset = mr.pendingOffset() + int64(len(candidate)-len(raw))
	raw = bytes.TrimRight(raw, crlf)
	log.Debugf("gomarc: framed record #%d at offset %d, %d bytes", mr.ordinal, offset, len(raw))
	return raw, offset, true
}

// release drops the last framed record from the pending buffer.
func (mr *MarcReader) release() {
	n := copy(mr.pending, mr.pending[mr.scanned:])
	mr.pending = mr.pending[:n]
	mr.scanned = 0
}

// fill reads one block from the underlying reader and appends it to the pending buffer.
func (mr *MarcReader) fill() error {
	n, err := mr.countingReader.Read(mr.block)
	mr.pending = append(mr.pending, mr.block[:n]...)
	if err == io.EOF {
		mr.eof = true
		return nil
	}
	return err
}

// pendingOffset is the stream offset of the first byte in the pending buffer.
func (mr *MarcReader) pendingOffset() int64 {
	return mr.initialOffset + mr.countingReader.N() - int64(len(mr.pending))
}

// recordError applies the record error policy. It returns nil if the record should be skipped.
func (mr *MarcReader) recordError(err error, offset int64) error {
	var re *RecordError
	if !errors.As(err, &re) {
		re = stageError(StageFraming, err)
	}
	re.at(mr.ordinal, offset)

	switch mr.opts.errRecord {
	case ErrIgnore:
		log.Debugf("gomarc: skipping record: %v", re)
		return nil
	case ErrWarn:
		log.Warnf("gomarc: skipping record: %v", re)
		mr.skipped.addError(re)
		return nil
	default:
		return re
	}
}

// takeSkipped returns the errors of skipped records followed by the errors in v.
func (mr *MarcReader) takeSkipped(v *Validation) *Validation {
	validation := &Validation{}
	validation.addAll(&mr.skipped)
	validation.addAll(v)
	mr.skipped = nil
	return validation
}
