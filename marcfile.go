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
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// MarcFileReader reads records from a MARC file.
type MarcFileReader struct {
	file       *os.File
	marcReader *MarcReader
}

// NewMarcFileReader opens filename and positions the reader at offset.
// Offsets returned by Next are offsets in the file.
func NewMarcFileReader(filename string, offset int64, opts ...Option) (*MarcFileReader, error) {
	file, err := os.Open(filename) // For read access.
	if err != nil {
		return nil, err
	}

	if _, err = file.Seek(offset, io.SeekStart); err != nil {
		_ = file.Close()
		return nil, err
	}

	mr, err := NewMarcReader(file, opts...)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	mr.initialOffset = offset
	log.Debugf("gomarc: reading %s from offset %d", filename, offset)

	return &MarcFileReader{
		file:       file,
		marcReader: mr,
	}, nil
}

// Next reads the next record from the MarcFileReader.
//
// See MarcReader.Next for how the returned values depend on the error policies.
//
// When at end of file io.EOF is returned.
func (mf *MarcFileReader) Next() (*Record, int64, *Validation, error) {
	return mf.marcReader.Next()
}

// Close closes the MarcFileReader.
func (mf *MarcFileReader) Close() error {
	return mf.file.Close()
}
