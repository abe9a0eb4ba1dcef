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
)

// buildRecord creates a well formed record. Each field is given as a three character tag
// followed by the field content without its terminator.
func buildRecord(fields ...string) []byte {
	dir := &bytes.Buffer{}
	data := &bytes.Buffer{}
	for _, f := range fields {
		fmt.Fprintf(dir, "%s%04d%05d", f[:3], len(f)-3+1, data.Len())
		data.WriteString(f[3:])
		data.WriteByte(fieldSep)
	}
	base := leaderLength + dir.Len() + 1
	total := base + data.Len() + 1

	rec := &bytes.Buffer{}
	fmt.Fprintf(rec, "%05dnam  22%05d   450 ", total, base)
	rec.Write(dir.Bytes())
	rec.WriteByte(fieldSep)
	rec.Write(data.Bytes())
	rec.WriteByte(recordSep)
	return rec.Bytes()
}

var (
	testRecord1 = buildRecord(
		"001CAL 012000000001",
		"2001 \x1faTitle one\x1ffAuthor one",
	)
	testRecord2 = buildRecord(
		"001CAL 012000000002",
		"2001 \x1faTitle two",
		"606  \x1faSubject\x1fxForm",
	)
)

func concat(records ...[]byte) []byte {
	return bytes.Join(records, nil)
}
