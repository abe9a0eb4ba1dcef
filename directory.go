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

// ParseDirectory decodes the directory of a record.
//
// The input is the directory without its terminating field separator. Each entry is 12 bytes:
// a 3 character tag, a 4 digit field length and a 5 digit starting position.
func ParseDirectory(buf []byte) (Directory, error) {
	if len(buf)%entryLength != 0 {
		return nil, stageErrorf(StageDirectory, ErrMalformedDirectory, "length %d is not a multiple of %d", len(buf), entryLength)
	}
	text, ok := asciiString(buf)
	if !ok {
		return nil, stageErrorf(StageDirectory, ErrMalformedDirectory, "non-ASCII byte in directory")
	}

	count := len(text) / entryLength
	dir := make(Directory, 0, count)
	for i := 0; i < count; i++ {
		e := text[i*entryLength : (i+1)*entryLength]
		length, ok := parseDecimal(e[3:7])
		if !ok {
			return nil, stageErrorf(StageDirectory, ErrMalformedDirectory, "entry %d: field length is not a number: %q", i, e[3:7])
		}
		index, ok := parseDecimal(e[7:12])
		if !ok {
			return nil, stageErrorf(StageDirectory, ErrMalformedDirectory, "entry %d: starting position is not a number: %q", i, e[7:12])
		}
		dir = append(dir, DirectoryEntry{Tag: e[0:3], Length: length, Index: index})
	}
	return dir, nil
}
