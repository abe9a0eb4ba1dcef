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
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
)

var subfieldSeparator = []byte{subfieldSep}

// ParseFields extracts the fields listed in dir from the data section of a record.
//
// The last byte of each field is its terminator and is not part of the content. Content is
// decoded with dec. Fields are returned in directory order.
func ParseFields(data []byte, dir Directory, dec *encoding.Decoder) ([]Field, error) {
	fields := make([]Field, 0, len(dir))
	for i, entry := range dir {
		if entry.Length < 1 || entry.Index+entry.Length > len(data) {
			return nil, stageErrorf(StageFields, ErrFieldBounds, "field %d (%s): index %d + length %d exceeds data section of %d bytes",
				i, entry.Tag, entry.Index, entry.Length, len(data))
		}
		segments := bytes.Split(data[entry.Index:entry.Index+entry.Length-1], subfieldSeparator)

		value, err := decodeText(dec, segments[0])
		if err != nil {
			return nil, stageErrorf(StageFields, ErrDecode, "field %d (%s): %v", i, entry.Tag, err)
		}
		field := Field{Tag: entry.Tag, Value: value, SubFields: make([]SubField, 0, len(segments)-1)}

		for _, seg := range segments[1:] {
			var tag, val string
			if len(seg) > 0 {
				if tag, err = decodeText(dec, seg[:1]); err == nil {
					val, err = decodeText(dec, seg[1:])
				}
				if err != nil {
					return nil, stageErrorf(StageFields, ErrDecode, "field %d (%s): subfield %q: %v", i, entry.Tag, seg[:1], err)
				}
			}
			field.SubFields = append(field.SubFields, SubField{Tag: tag, Value: val})
		}
		fields = append(fields, field)
	}
	return fields, nil
}

// decodeText converts b from the content encoding. The decoders in x/text substitute invalid
// input with utf8.RuneError, so its presence in the output is treated as invalid input.
func decodeText(dec *encoding.Decoder, b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	out, err := dec.Bytes(b)
	if err != nil {
		return "", err
	}
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", errInvalidSequence(append([]byte(nil), b...))
	}
	return string(out), nil
}

type errInvalidSequence []byte

func (e errInvalidSequence) Error() string {
	if len(e) > 32 {
		return fmt.Sprintf("invalid byte sequence: % x ...", []byte(e[:32]))
	}
	return fmt.Sprintf("invalid byte sequence: % x", []byte(e))
}
