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

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/simplifiedchinese"
)

const defaultBlockSize = 4096

type marcRecordOptions struct {
	blockSize    int
	encoding     encoding.Encoding
	encodingName string
	errRecord    errorPolicy // How to handle records which can not be decoded
	errSpec      errorPolicy // How to handle records which decode, but break the ISO 2709 structure rules
}

// The errorPolicy constants describe how to handle MARC record errors.
type errorPolicy int8

const (
	ErrIgnore errorPolicy = 0 // Ignore the given error.
	ErrWarn   errorPolicy = 1 // Ignore given error, but submit a warning.
	ErrFail   errorPolicy = 2 // Fail on given error.
)

func (p errorPolicy) String() string {
	switch p {
	case ErrIgnore:
		return "ignore"
	case ErrWarn:
		return "warn"
	case ErrFail:
		return "fail"
	default:
		return fmt.Sprintf("errorPolicy(%d)", int8(p))
	}
}

// ParseErrorPolicy returns the policy named by s, one of "ignore", "warn" or "fail".
func ParseErrorPolicy(s string) (errorPolicy, error) {
	switch s {
	case "ignore":
		return ErrIgnore, nil
	case "warn":
		return ErrWarn, nil
	case "fail":
		return ErrFail, nil
	default:
		return ErrFail, fmt.Errorf("unknown error policy: %q", s)
	}
}

// Option configures the decoding of MARC records.
type Option interface {
	apply(*marcRecordOptions)
}

// EmptyOption does not alter the configuration. It can be embedded in
// another structure to build custom options.
type EmptyOption struct{}

func (EmptyOption) apply(*marcRecordOptions) {}

// funcOption wraps a function that modifies marcRecordOptions into an
// implementation of the Option interface.
type funcOption struct {
	f func(*marcRecordOptions)
}

func (fo *funcOption) apply(po *marcRecordOptions) {
	fo.f(po)
}

func newFuncOption(f func(*marcRecordOptions)) *funcOption {
	return &funcOption{
		f: f,
	}
}

func defaultMarcRecordOptions() marcRecordOptions {
	return marcRecordOptions{
		blockSize: defaultBlockSize,
		encoding:  simplifiedchinese.GB18030,
		errRecord: ErrFail,
		errSpec:   ErrIgnore,
	}
}

// newOptions creates a new configuration with the supplied options.
// An encoding selected by name is resolved here.
func newOptions(opts ...Option) (*marcRecordOptions, error) {
	o := defaultMarcRecordOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}
	if o.encodingName != "" {
		e, err := htmlindex.Get(o.encodingName)
		if err != nil {
			return nil, fmt.Errorf("gomarc: unsupported encoding %q: %w", o.encodingName, err)
		}
		o.encoding = e
	}
	if o.blockSize <= 0 {
		o.blockSize = defaultBlockSize
	}
	return &o, nil
}

// WithBlockSize sets the number of bytes requested from the underlying reader on every read.
// The block size is independent of the record size.
// defaults to 4096
func WithBlockSize(size int) Option {
	return newFuncOption(func(o *marcRecordOptions) {
		o.blockSize = size
	})
}

// WithEncoding sets the text encoding used for field and subfield content.
// The leader and directory are always decoded as ASCII.
// defaults to GB18030
func WithEncoding(e encoding.Encoding) Option {
	return newFuncOption(func(o *marcRecordOptions) {
		o.encoding = e
		o.encodingName = ""
	})
}

// WithEncodingName sets the content encoding by its WHATWG/IANA name, e.g. "utf-8" or "gb18030".
func WithEncodingName(name string) Option {
	return newFuncOption(func(o *marcRecordOptions) {
		o.encodingName = name
	})
}

// WithRecordErrorPolicy sets the policy for records that can not be decoded.
//
//	ErrFail: the first malformed record aborts the read.
//	ErrWarn: malformed records are skipped and their errors are added to the Validation.
//	ErrIgnore: malformed records are skipped silently.
//
// defaults to ErrFail
func WithRecordErrorPolicy(policy errorPolicy) Option {
	return newFuncOption(func(o *marcRecordOptions) {
		o.errRecord = policy
	})
}

// WithSpecViolationPolicy sets the policy for records that decode, but where the declared
// record length does not match the data or the directory is not terminated by a field separator.
// defaults to ErrIgnore
func WithSpecViolationPolicy(policy errorPolicy) Option {
	return newFuncOption(func(o *marcRecordOptions) {
		o.errSpec = policy
	})
}

// WithStrictValidation sets the policies to fail on every error.
func WithStrictValidation() Option {
	return newFuncOption(func(o *marcRecordOptions) {
		o.errRecord = ErrFail
		o.errSpec = ErrFail
	})
}

// WithNoValidation skips structure checks and malformed records.
func WithNoValidation() Option {
	return newFuncOption(func(o *marcRecordOptions) {
		o.errRecord = ErrIgnore
		o.errSpec = ErrIgnore
	})
}
