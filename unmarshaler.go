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

// Unmarshaler decodes one raw record.
type Unmarshaler interface {
	// Unmarshal decodes raw, which holds exactly one record with any surrounding line endings removed.
	// Errors are of type *RecordError.
	Unmarshal(raw []byte) (*Record, *Validation, error)
}

type unmarshaler struct {
	opts *marcRecordOptions
}

// NewUnmarshaler creates an Unmarshaler with the supplied options.
func NewUnmarshaler(opts ...Option) (Unmarshaler, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &unmarshaler{opts: o}, nil
}

func (u *unmarshaler) Unmarshal(raw []byte) (*Record, *Validation, error) {
	validation := &Validation{}

	if len(raw) < leaderLength {
		return nil, validation, stageErrorf(StageLeader, ErrMalformedLeader, "record is only %d bytes", len(raw))
	}
	leader, err := ParseLeader(raw[:leaderLength])
	if err != nil {
		return nil, validation, err
	}
	if leader.DataIndex <= leaderLength || leader.DataIndex > len(raw) {
		return nil, validation, stageErrorf(StageLeader, ErrMalformedLeader,
			"base address of data %d outside record of %d bytes", leader.DataIndex, len(raw))
	}
	if leader.RecordLength != len(raw) {
		if err := u.specViolation(validation, stageErrorf(StageLeader, ErrMalformedLeader,
			"declared record length %d, but record is %d bytes", leader.RecordLength, len(raw))); err != nil {
			return nil, validation, err
		}
	}

	if raw[leader.DataIndex-1] != fieldSep {
		if err := u.specViolation(validation, stageErrorf(StageDirectory, ErrMalformedDirectory,
			"directory terminated by 0x%02x, expected 0x%02x", raw[leader.DataIndex-1], fieldSep)); err != nil {
			return nil, validation, err
		}
	}
	directory, err := ParseDirectory(raw[leaderLength : leader.DataIndex-1])
	if err != nil {
		return nil, validation, err
	}

	fields, err := ParseFields(raw[leader.DataIndex:], directory, u.opts.encoding.NewDecoder())
	if err != nil {
		return nil, validation, err
	}

	return &Record{
		Leader:    leader,
		Directory: directory,
		Fields:    fields,
	}, validation, nil
}

// specViolation applies the policy for ISO 2709 structure violations to err.
func (u *unmarshaler) specViolation(validation *Validation, err *RecordError) error {
	switch u.opts.errSpec {
	case ErrWarn:
		validation.addError(err)
	case ErrFail:
		return err
	}
	return nil
}
