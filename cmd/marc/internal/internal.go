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

package internal

import (
	"github.com/nlnwa/gomarc"
	"github.com/spf13/viper"
)

// Names of flags shared by the subcommands. They double as viper keys.
const (
	FlagLogLevel     = "log-level"
	FlagBlockSize    = "block-size"
	FlagEncoding     = "encoding"
	FlagRecordErrors = "record-errors"
)

// RecordOptions creates reader options from the configuration.
func RecordOptions(strict bool) ([]gomarc.Option, error) {
	name := viper.GetString(FlagRecordErrors)
	if name == "" {
		name = "fail"
	}
	policy, err := gomarc.ParseErrorPolicy(name)
	if err != nil {
		return nil, err
	}
	opts := []gomarc.Option{
		gomarc.WithBlockSize(viper.GetInt(FlagBlockSize)),
		gomarc.WithEncodingName(viper.GetString(FlagEncoding)),
		gomarc.WithRecordErrorPolicy(policy),
	}
	if strict {
		opts = append(opts, gomarc.WithStrictValidation())
	}
	return opts, nil
}

// CropString shortens s to at most n runes, marking cropped strings with an ellipsis.
func CropString(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n < 4 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

// FirstSubfield returns the value of the first subfield with code in the first field with tag.
func FirstSubfield(record *gomarc.Record, tag, code string) string {
	for _, f := range record.Fields {
		if f.Tag != tag {
			continue
		}
		for _, sf := range f.SubFields {
			if sf.Tag == code {
				return sf.Value
			}
		}
	}
	return ""
}
