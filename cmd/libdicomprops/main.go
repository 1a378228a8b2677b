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

// Command libdicomprops is built with -buildmode=c-shared (or c-archive) to expose the property
// projection to C callers:
//
//	char *dicom_props_parse(const char *path, bool show_tag, int *err_code);
//	void dicom_props_free(char *json);
//	const char *dicom_props_strerror(int err_code);
//
// dicom_props_parse returns a JSON object owned by the caller, or NULL with *err_code set when it
// fails. show_tag selects numeric "(GGGG,EEEE)" keys instead of dictionary keywords. Every non-NULL
// result must be passed to dicom_props_free exactly once. dicom_props_free(NULL) does nothing.
// The strings returned by dicom_props_strerror are static and must not be freed.
package main

/*
#include <stdbool.h>
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/markheramis/DicomParser/cabi"
)

// messages holds one C copy of every error description for the lifetime of the process
var messages = func() map[cabi.ErrorCode]*C.char {
	m := make(map[cabi.ErrorCode]*C.char)
	for code := cabi.OK; code <= cabi.Internal; code++ {
		m[code] = C.CString(cabi.Message(code))
	}
	m[-1] = C.CString(cabi.Message(-1))
	return m
}()

//export dicom_props_parse
func dicom_props_parse(path *C.char, showTag C.bool, errCode *C.int) *C.char {
	out, code := cabi.Parse(unsafe.Pointer(path), bool(showTag))
	if errCode != nil {
		*errCode = C.int(code)
	}
	return (*C.char)(out)
}

//export dicom_props_free
func dicom_props_free(json *C.char) {
	cabi.Release(unsafe.Pointer(json))
}

//export dicom_props_strerror
func dicom_props_strerror(errCode C.int) *C.char {
	if msg, ok := messages[cabi.ErrorCode(errCode)]; ok {
		return msg
	}
	return messages[-1]
}

func main() {}
