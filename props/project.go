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
	"github.com/markheramis/DicomParser/dictionary"
)

// Element is a top level data element as handed over by a Decoder
type Element struct {
	Group   uint16
	Element uint16
	VR      string
	Value   Value
}

// Record is the projection of a file. A nil value stands for JSON null.
type Record map[string]*string

var allowedVRs = map[string]bool{
	// text
	"AE": true, "AS": true, "AT": true, "CS": true, "DA": true, "DS": true, "DT": true,
	"IS": true, "LO": true, "LT": true, "PN": true, "SH": true, "ST": true, "TM": true,
	"UC": true, "UI": true, "UR": true, "UT": true,
	// floating point
	"FL": true, "FD": true,
	// 64-bit integers
	"SV": true, "UV": true,
	// unsigned long
	"UL": true,
}

// AllowedVR reports whether elements of the VR are projected
func AllowedVR(vr string) bool {
	return allowedVRs[vr]
}

// Project builds the record of the elements in a single pass. Elements with a VR outside the
// allow-list contribute nothing. When two elements resolve to the same key the later one wins.
func Project(elements []Element, style KeyStyle, dict dictionary.Dictionary) Record {
	r, _ := project(elements, style, dict)
	return r
}

// project also returns the number of elements skipped by the allow-list
func project(elements []Element, style KeyStyle, dict dictionary.Dictionary) (Record, int) {
	if dict == nil {
		dict = dictionary.Standard()
	}
	record := make(Record, len(elements))
	skipped := 0
	for _, e := range elements {
		if !AllowedVR(e.VR) {
			skipped++
			continue
		}
		record[ResolveKey(dict, e.Group, e.Element, style)] = Text(e.Value)
	}
	return record, skipped
}
