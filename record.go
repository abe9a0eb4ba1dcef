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
	"fmt"
	"strings"
)

const (
	crlf         = "\r\n" // Line endings allowed around records
	recordSep    = 0x1d   // Terminates a record
	fieldSep     = 0x1e   // Terminates the directory and every field
	subfieldSep  = 0x1f   // Introduces a subfield
	leaderLength = 24
	entryLength  = 12 // Length of one directory entry
)

// Leader is the fixed size header of a record.
type Leader struct {
	RecordLength int `json:"recordLength"`
	DataIndex    int `json:"dataIndex"` // Base address of data

	Status            string `json:"status,omitempty"`
	Type              string `json:"type,omitempty"`
	Level             string `json:"level,omitempty"`
	IndicatorCount    string `json:"indicatorCount,omitempty"`
	SubfieldCodeCount string `json:"subfieldCodeCount,omitempty"`
	EntryMap          string `json:"entryMap,omitempty"`
}

// DirectoryEntry locates one field in the data section.
type DirectoryEntry struct {
	Tag    string `json:"tag"`
	Length int    `json:"length"` // Length of field including the field terminator
	Index  int    `json:"index"`  // Offset relative to the start of the data section
}

// Directory is the ordered list of directory entries of a record.
type Directory []DirectoryEntry

type SubField struct {
	Tag   string `json:"tag"`
	Value string `json:"value"`
}

// Field is the content of one directory entry. Value holds the text in front of the first subfield.
type Field struct {
	Tag       string     `json:"tag"`
	Value     string     `json:"value"`
	SubFields []SubField `json:"subfields"`
}

func (f Field) String() string {
	sb := strings.Builder{}
	sb.WriteString(f.Tag)
	if f.Value != "" {
		sb.WriteByte(' ')
		sb.WriteString(f.Value)
	}
	for _, sf := range f.SubFields {
		sb.WriteString(" $")
		sb.WriteString(sf.Tag)
		sb.WriteByte(' ')
		sb.WriteString(sf.Value)
	}
	return sb.String()
}

// Record is a decoded MARC record. A Record is not modified after it is returned from the decoder.
type Record struct {
	Leader    Leader    `json:"leader"`
	Directory Directory `json:"directory,omitempty"`
	Fields    []Field   `json:"fields"`
}

func (r *Record) String() string {
	return fmt.Sprintf("MARC record: length: %d, type: %s, fields: %d", r.Leader.RecordLength, r.Leader.Type, len(r.Fields))
}
