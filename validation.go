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

// Validation contain validation results.
type Validation []error

func (v *Validation) String() string {
	if v == nil || len(*v) == 0 {
		return ""
	}

	sb := strings.Builder{}
	sb.WriteString("gomarc: Validation errors:\n")
	for i, e := range *v {
		sb.WriteString("  ")
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(": ")
		sb.WriteString(e.Error())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Valid returns true if no errors were found.
func (v *Validation) Valid() bool {
	return v == nil || len(*v) == 0
}

// Err returns the collected errors as a single error or nil if there are none.
func (v *Validation) Err() error {
	if v.Valid() {
		return nil
	}
	return multiErr(*v)
}

func (v *Validation) addError(err error) {
	*v = append(*v, err)
}

func (v *Validation) addAll(other *Validation) {
	if other == nil {
		return
	}
	*v = append(*v, *other...)
}
