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

// Package dictionary provides read-only lookups into the DICOM standard data dictionary
// (PS3.6), mapping a Data Element tag to its keyword and value representations.
package dictionary

import (
	"strings"
	"sync"

	"github.com/suyashkumar/dicom/pkg/tag"
)

// Entry is the dictionary row of a single tag
type Entry struct {
	// Keyword is the symbolic alias of the tag, e.g. "StudyInstanceUID"
	Keyword string

	// VRs lists the allowed value representations, e.g. ["US", "SS"]
	VRs []string
}

// Dictionary looks up tags by group and element number. Implementations must be safe for
// concurrent use and must never change the answer for a tag once given.
type Dictionary interface {
	Lookup(group, element uint16) (Entry, bool)
}

// Map is a Dictionary backed by a Go map keyed by the 32-bit tag (group << 16 | element). It is
// useful in tests and for callers supplying their own aliases.
type Map map[uint32]Entry

// Lookup implements Dictionary
func (m Map) Lookup(group, element uint16) (Entry, bool) {
	e, ok := m[uint32(group)<<16|uint32(element)]
	return e, ok
}

var (
	standard     Dictionary
	standardOnce sync.Once
)

// Standard returns the process-wide standard data dictionary. It is initialized on first use and
// is read-only afterwards.
func Standard() Dictionary {
	standardOnce.Do(func() {
		standard = &standardDictionary{cache: map[uint32]cachedEntry{}}
	})
	return standard
}

type cachedEntry struct {
	entry Entry
	ok    bool
}

// standardDictionary resolves tags through the generated tag table and remembers every answer,
// misses included.
type standardDictionary struct {
	mu    sync.RWMutex
	cache map[uint32]cachedEntry
}

func (d *standardDictionary) Lookup(group, element uint16) (Entry, bool) {
	key := uint32(group)<<16 | uint32(element)

	d.mu.RLock()
	c, hit := d.cache[key]
	d.mu.RUnlock()
	if hit {
		return c.entry, c.ok
	}

	c = cachedEntry{}
	for _, t := range candidates(group, element) {
		info, err := tag.Find(t)
		if err != nil {
			continue
		}
		c = cachedEntry{Entry{Keyword: info.Keyword, VRs: splitVRs(info.VRs)}, true}
		break
	}

	d.mu.Lock()
	d.cache[key] = c
	d.mu.Unlock()
	return c.entry, c.ok
}

// repeatingGroup describes a family of tags with wildcards in the data dictionary, e.g. (60xx,3000).
// A tag belongs to the family when tag&mask == match, and the dictionary lists the family under
// tag&canonical.
type repeatingGroup struct {
	mask      uint32
	match     uint32
	canonical uint32
}

var repeatingGroups = []repeatingGroup{
	{0xFF010000, 0x50000000, 0xFF00FFFF}, // (50xx,eeee) curve data
	{0xFF010000, 0x60000000, 0xFF00FFFF}, // (60xx,eeee) overlays
	{0xFF000000, 0x7F000000, 0xFF00FFFF}, // (7Fxx,eeee) variable pixel data
	{0xFFFFFF00, 0x00203100, 0xFFFFFF00}, // (0020,31xx) source image IDs
	{0xFFFF0000, 0x10000000, 0xFFFF000F}, // (1000,xxxy) escape triplets
	{0xFFFF0000, 0x10100000, 0xFFFF0000}, // (1010,xxxx) zonal map
}

// candidates returns the tag itself followed by the canonical wildcard form of every repeating
// group it belongs to.
func candidates(group, element uint16) []tag.Tag {
	t := uint32(group)<<16 | uint32(element)
	out := []tag.Tag{{Group: group, Element: element}}
	for _, rg := range repeatingGroups {
		if t&rg.mask != rg.match {
			continue
		}
		c := t & rg.canonical
		if c == t {
			continue
		}
		out = append(out, tag.Tag{Group: uint16(c >> 16), Element: uint16(c)})
	}
	return out
}

// splitVRs normalizes rows such as "US or SS" into separate VRs
func splitVRs(vrs []string) []string {
	out := make([]string, 0, len(vrs))
	for _, vr := range vrs {
		for _, part := range strings.Split(vr, " or ") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
