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

import (
	"sync"
	"unsafe"
)

// Buffers hands NUL-terminated copies of Go bytes to foreign callers and remembers which pointers
// are still owned by them. Releasing a pointer it did not hand out, or one already released, does
// nothing.
type Buffers struct {
	mu    sync.Mutex
	live  map[unsafe.Pointer]struct{}
	alloc func([]byte) unsafe.Pointer
	free  func(unsafe.Pointer)
}

// NewBuffers returns a registry using the given allocator. alloc must return memory holding a copy
// of its argument.
func NewBuffers(alloc func([]byte) unsafe.Pointer, free func(unsafe.Pointer)) *Buffers {
	return &Buffers{
		live:  make(map[unsafe.Pointer]struct{}),
		alloc: alloc,
		free:  free,
	}
}

// Export copies data followed by a NUL byte into newly allocated memory. The caller owns the
// result until it is passed to Release.
func (b *Buffers) Export(data []byte) unsafe.Pointer {
	buf := make([]byte, len(data)+1)
	copy(buf, data)

	p := b.alloc(buf)
	if p == nil {
		return nil
	}

	b.mu.Lock()
	b.live[p] = struct{}{}
	b.mu.Unlock()
	return p
}

// Release frees p if it is live and reports whether it did. nil is a no-op.
func (b *Buffers) Release(p unsafe.Pointer) bool {
	if p == nil {
		return false
	}

	b.mu.Lock()
	_, ok := b.live[p]
	delete(b.live, p)
	b.mu.Unlock()

	if !ok {
		return false
	}
	b.free(p)
	return true
}

// Live returns the number of exported buffers not yet released
func (b *Buffers) Live() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.live)
}
