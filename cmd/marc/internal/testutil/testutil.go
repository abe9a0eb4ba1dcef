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

// Package testutil creates MARC files for the command tests.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// Record creates a well formed record from fields given as a three character tag followed by the content.
func Record(fields ...string) []byte {
	dir := &bytes.Buffer{}
	data := &bytes.Buffer{}
	for _, f := range fields {
		fmt.Fprintf(dir, "%s%04d%05d", f[:3], len(f)-3+1, data.Len())
		data.WriteString(f[3:])
		data.WriteByte(0x1e)
	}
	base := 24 + dir.Len() + 1
	total := base + data.Len() + 1

	rec := &bytes.Buffer{}
	fmt.Fprintf(rec, "%05dnam  22%05d   450 ", total, base)
	rec.Write(dir.Bytes())
	rec.WriteByte(0x1e)
	rec.Write(data.Bytes())
	rec.WriteByte(0x1d)
	return rec.Bytes()
}

// WriteFile writes records to a new file in a temporary directory and returns its name.
func WriteFile(t *testing.T, records ...[]byte) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "records.iso")
	if err := os.WriteFile(name, bytes.Join(records, nil), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}
	return name
}
