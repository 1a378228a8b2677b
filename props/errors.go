// Copyright 2026 The DicomParser Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package props

import (
	"errors"
	"strings"
)

// Kind categorizes a failure of the pipeline
type Kind string

const (
	KindInvalidInput    Kind = "invalid_input"    // empty or missing path
	KindInvalidEncoding Kind = "invalid_encoding" // path bytes are not valid UTF-8
	KindPathNotFound    Kind = "path_not_found"   // stat or canonicalization failed
	KindNotRegularFile  Kind = "not_regular_file" // directory, device, socket...
	KindDecode          Kind = "decode"           // the file is not readable DICOM
	KindSerialization   Kind = "serialization"    // the record could not be encoded
)

// Error is the error type returned by the pipeline
type Error struct {
	Cause  error
	Kind   Kind
	Path   string
	Detail string
}

// Sentinels for errors.Is. Only the Kind is compared.
var (
	ErrInvalidInput    = &Error{Kind: KindInvalidInput}
	ErrInvalidEncoding = &Error{Kind: KindInvalidEncoding}
	ErrPathNotFound    = &Error{Kind: KindPathNotFound}
	ErrNotRegularFile  = &Error{Kind: KindNotRegularFile}
	ErrDecode          = &Error{Kind: KindDecode}
	ErrSerialization   = &Error{Kind: KindSerialization}
)

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Kind))
	b.WriteByte(']')

	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same Kind
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// KindOf returns the Kind of the first *Error in err's chain
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

func newError(kind Kind, path, detail string, cause error) *Error {
	return &Error{Cause: cause, Kind: kind, Path: path, Detail: detail}
}
