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
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedLeader is returned when the leader has the wrong length or non-numeric length fields.
	ErrMalformedLeader = errors.New("malformed leader")
	// ErrMalformedDirectory is returned when the directory is not a sequence of 12 byte entries
	// or an entry has non-numeric length or index.
	ErrMalformedDirectory = errors.New("malformed directory")
	// ErrFieldBounds is returned when a directory entry points outside the data section.
	ErrFieldBounds = errors.New("field out of bounds")
	// ErrDecode is returned when field content is not valid in the content encoding.
	ErrDecode = errors.New("invalid text")
	// ErrTruncatedStream is returned when the stream ends in the middle of a record.
	ErrTruncatedStream = errors.New("truncated stream")
)

// Stage identifies the decode step which failed.
type Stage string

const (
	StageFraming   Stage = "framing"
	StageLeader    Stage = "leader"
	StageDirectory Stage = "directory"
	StageFields    Stage = "fields"
)

// RecordError is used for records which could not be decoded.
type RecordError struct {
	Ordinal int   // Position of the record in the stream, counting from 1
	Offset  int64 // Offset of the first byte of the record
	Stage   Stage
	Err     error
}

func (e *RecordError) Error() string {
	if e.Ordinal > 0 {
		return fmt.Sprintf("gomarc: record #%d at offset %d: %s: %v", e.Ordinal, e.Offset, e.Stage, e.Err)
	}
	return fmt.Sprintf("gomarc: %s: %v", e.Stage, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// stageError is returned by the decoders. The reader turns it into a RecordError once
// the position of the record is known.
func stageError(stage Stage, err error) *RecordError {
	return &RecordError{Stage: stage, Err: err}
}

// stageErrorf wraps kind with a formatted message.
func stageErrorf(stage Stage, kind error, format string, param ...interface{}) *RecordError {
	return &RecordError{Stage: stage, Err: fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, param...))}
}

// at sets the position of the record in the stream.
func (e *RecordError) at(ordinal int, offset int64) *RecordError {
	e.Ordinal = ordinal
	e.Offset = offset
	return e
}

type multiErr []error

func (e multiErr) Error() string {
	switch len(e) {

	case 0:
		return ""

	case 1:
		return e[0].Error()
	}

	const (
		start = "["
		sep   = ", "
		end   = "]"
	)

	n := len(start) + len(end) + (len(sep) * (len(e) - 1))
	for i := 0; i < len(e); i++ {
		n += len(e[i].Error())
	}

	var b strings.Builder
	b.Grow(n)
	b.WriteString(start)
	b.WriteString(e[0].Error())
	for _, s := range e[1:] {
		b.WriteString(sep)
		b.WriteString(s.Error())
	}
	b.WriteString(end)
	return b.String()
}
