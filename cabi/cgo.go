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

package cabi

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"

import (
	"unsafe"
)

var exported = NewBuffers(
	func(b []byte) unsafe.Pointer { return C.CBytes(b) },
	func(p unsafe.Pointer) { C.free(p) },
)

// Parse projects the file named by the NUL-terminated C string path. On success the JSON is
// returned in C memory that must be given back through Release. On failure the pointer is nil.
func Parse(path unsafe.Pointer, showTag bool) (unsafe.Pointer, ErrorCode) {
	out, code := Run(pathBytes(path), showTag)
	if code != OK {
		return nil, code
	}
	p := exported.Export(out)
	if p == nil {
		return nil, Internal
	}
	return p, OK
}

// Release frees a buffer returned by Parse. nil, foreign and already released pointers are
// ignored.
func Release(p unsafe.Pointer) bool {
	return exported.Release(p)
}

// Live returns the number of buffers returned by Parse and not yet released
func Live() int {
	return exported.Live()
}

func pathBytes(p unsafe.Pointer) []byte {
	if p == nil {
		return nil
	}
	n := C.strlen((*C.char)(p))
	if n == 0 {
		return []byte{}
	}
	return C.GoBytes(p, C.int(n))
}
