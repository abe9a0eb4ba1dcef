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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLeader(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Leader
		wantErr bool
	}{
		{"zero padded", "00069       00037       ", Leader{RecordLength: 69, DataIndex: 37,
			Status: " ", Type: " ", Level: " ", IndicatorCount: " ", SubfieldCodeCount: " ", EntryMap: "    "}, false},
		{"cnmarc", "01024nam0 2200277   450 ", Leader{RecordLength: 1024, DataIndex: 277,
			Status: "n", Type: "a", Level: "m", IndicatorCount: "2", SubfieldCodeCount: "2", EntryMap: "450 "}, false},
		{"space padded", "  512nam  22   61   450 ", Leader{RecordLength: 512, DataIndex: 61,
			Status: "n", Type: "a", Level: "m", IndicatorCount: "2", SubfieldCodeCount: "2", EntryMap: "450 "}, false},
		{"max values", "99999nam  2299999   450 ", Leader{RecordLength: 99999, DataIndex: 99999,
			Status: "n", Type: "a", Level: "m", IndicatorCount: "2", SubfieldCodeCount: "2", EntryMap: "450 "}, false},
		{"too short", "00069       00037      ", Leader{}, true},
		{"too long", "00069       00037        ", Leader{}, true},
		{"empty", "", Leader{}, true},
		{"non-numeric length", "0006x       00037       ", Leader{}, true},
		{"non-numeric data index", "00069       000A7       ", Leader{}, true},
		{"signed length", "-0069       00037       ", Leader{}, true},
		{"blank length", "            00037       ", Leader{}, true},
		{"non-ascii", "00069\xe4      00037       ", Leader{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			got, err := ParseLeader([]byte(tt.input))
			if tt.wantErr {
				assert.True(errors.Is(err, ErrMalformedLeader), "expected ErrMalformedLeader, got %v", err)
				var re *RecordError
				if assert.True(errors.As(err, &re)) {
					assert.Equal(StageLeader, re.Stage)
				}
				return
			}
			assert.NoError(err)
			assert.Equal(tt.want, got)
		})
	}
}
