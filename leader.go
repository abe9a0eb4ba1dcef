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
	"strconv"
	"strings"
)

// ParseLeader decodes the 24 byte leader of a record.
//
// Only the record length (characters 0-4) and the base address of data (characters 12-16) are interpreted.
// The remaining characters are kept as is.
func ParseLeader(buf []byte) (Leader, error) {
	if len(buf) != leaderLength {
		return Leader{}, stageErrorf(StageLeader, ErrMalformedLeader, "expected %d bytes, got %d", leaderLength, len(buf))
	}
	text, ok := asciiString(buf)
	if !ok {
		return Leader{}, stageErrorf(StageLeader, ErrMalformedLeader, "non-ASCII byte in %q", buf)
	}

	length, ok := parseDecimal(text[0:5])
	if !ok {
		return Leader{}, stageErrorf(StageLeader, ErrMalformedLeader, "record length is not a number: %q", text[0:5])
	}
	dataIndex, ok := parseDecimal(text[12:17])
	if !ok {
		return Leader{}, stageErrorf(StageLeader, ErrMalformedLeader, "base address of data is not a number: %q", text[12:17])
	}

	return Leader{
		RecordLength:      length,
		DataIndex:         dataIndex,
		Status:            text[5:6],
		Type:              text[6:7],
		Level:             text[7:8],
		IndicatorCount:    text[10:11],
		SubfieldCodeCount: text[11:12],
		EntryMap:          text[20:24],
	}, nil
}

// asciiString converts the structural part of a record to a string.
func asciiString(buf []byte) (string, bool) {
	for _, b := range buf {
		if b >= 0x80 {
			return "", false
		}
	}
	return string(buf), true
}

// parseDecimal parses an unsigned decimal number padded with spaces.
func parseDecimal(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
