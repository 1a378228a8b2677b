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

// Package cabi is the Go side of the C interface of the library. It turns C paths into Go strings,
// maps pipeline errors to integer codes and tracks every buffer handed to C until it is released.
package cabi

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/markheramis/DicomParser/props"
)

// ErrorCode is the status reported through the err_code out parameter
type ErrorCode int

const (
	OK ErrorCode = iota
	InvalidEncoding
	InvalidInput
	PathNotFound
	NotRegularFile
	Decode
	Serialization
	Internal
)

var messages = [...]string{
	OK:              "ok",
	InvalidEncoding: "path is not valid UTF-8",
	InvalidInput:    "path is NULL or empty",
	PathNotFound:    "path does not exist or cannot be resolved",
	NotRegularFile:  "path is not a regular file",
	Decode:          "file could not be decoded as DICOM",
	Serialization:   "properties could not be serialized",
	Internal:        "internal error",
}

// Message returns the static description of a code
func Message(code ErrorCode) string {
	if code < 0 || int(code) >= len(messages) {
		return "unknown error code"
	}
	return messages[code]
}

func (c ErrorCode) String() string {
	return Message(c)
}

var codesByKind = map[props.Kind]ErrorCode{
	props.KindInvalidEncoding: InvalidEncoding,
	props.KindInvalidInput:    InvalidInput,
	props.KindPathNotFound:    PathNotFound,
	props.KindNotRegularFile:  NotRegularFile,
	props.KindDecode:          Decode,
	props.KindSerialization:   Serialization,
}

// CodeOf maps an error returned by the pipeline to its code. Errors outside the props taxonomy are
// Internal.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return OK
	}
	kind, ok := props.KindOf(err)
	if !ok {
		return Internal
	}
	if code, ok := codesByKind[kind]; ok {
		return code
	}
	return Internal
}

// DecodePath validates the bytes of a C path. A nil slice stands for a NULL pointer.
func DecodePath(b []byte) (string, error) {
	if b == nil {
		return "", &props.Error{Kind: props.KindInvalidInput, Detail: "NULL path"}
	}
	valid, _, err := transform.Bytes(encoding.UTF8Validator, b)
	if err != nil {
		return "", &props.Error{Kind: props.KindInvalidEncoding, Detail: fmt.Sprintf("%q", b), Cause: err}
	}
	return string(valid), nil
}

// Run decodes the path and projects the file. It never panics: a panic anywhere in the pipeline is
// reported as Internal.
func Run(path []byte, showTag bool) (out []byte, code ErrorCode) {
	defer func() {
		if r := recover(); r != nil {
			props.Logger().Error("recovered from panic", zap.Any("panic", r), zap.ByteString("path", path))
			out, code = nil, Internal
		}
	}()

	p, err := DecodePath(path)
	if err != nil {
		return nil, CodeOf(err)
	}

	out, err = props.ParseFile(p, props.KeyStyleFromShowTag(showTag))
	if err != nil {
		props.Logger().Debug("parse failed", zap.String("path", p), zap.Error(err))
		return nil, CodeOf(err)
	}
	return out, OK
}
