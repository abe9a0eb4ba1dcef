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

package gomarc_test

import (
	"bytes"
	"fmt"

	"github.com/nlnwa/gomarc"
)

func ExampleReadRecords() {
	data := bytes.NewBufferString("00053       00037       " +
		"100001600000\x1e" +
		"value\x1fasubvalue\x1d")

	records, _, err := gomarc.ReadRecords(data)
	if err != nil {
		panic(err)
	}
	for _, r := range records {
		for _, f := range r.Fields {
			fmt.Println(f)
		}
	}
	// Output: 100 value $a subvalue
}

func ExampleUnmarshaler() {
	raw := []byte("00069       00037       " +
		"100001600000\x1e" +
		"value\x1fasubvalue\x1d")

	unmarshaler, err := gomarc.NewUnmarshaler(gomarc.WithSpecViolationPolicy(gomarc.ErrWarn))
	if err != nil {
		panic(err)
	}
	record, validation, err := unmarshaler.Unmarshal(raw)
	if err == nil {
		fmt.Printf("%s\n%s", record, validation)
	}

	// Output: MARC record: length: 69, type:  , fields: 1
	// gomarc: Validation errors:
	//   1: gomarc: leader: malformed leader: declared record length 69, but record is 53 bytes
}
