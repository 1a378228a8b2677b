// Copyright 2018 Google LLC
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

package dicom

import (
	"fmt"
)

// vrType is to group common encodings together
type vrType int

const (
	// textVR is for value fields that will be interpreted as simple text with space padding
	textVR vrType = iota

	// numberBinaryVR is for value fields that are parsed as binary numbers
	numberBinaryVR

	// bulkDataVR groups sequences of binary numbers
	bulkDataVR

	// uniqueIdentifierVR is for VR: UI. It has null padding
	uniqueIdentifierVR

	// sequenceVR is for VR: SQ
	sequenceVR

	// tagVR is for tags. Distinct from numberBinaryVR due to little endian byte ordering
	tagVR
)

// UndefinedLength as specified
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.1
const UndefinedLength = 0xffffffff

// VR models the DICOM Value representations (VR)
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
type VR struct {
	// Name represents the 2-character VR Code
	Name string

	kind vrType

	// longLength is set for VRs whose explicit VR encoding has two reserved bytes followed by a
	// 32-bit value length instead of a 16-bit one.
	// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.2
	longLength bool
}

func (vr *VR) String() string {
	return vr.Name
}

// IsText reports whether values of the VR are decoded as text ([]string)
func (vr *VR) IsText() bool {
	switch vr {
	case UCVR, URVR, UTVR:
		return true
	}
	return vr.kind == textVR || vr.kind == uniqueIdentifierVR
}

// isCharacterSetAffected reports whether the Specific Character Set (0008,0005) applies to the VR.
// See http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.1.2.3
func (vr *VR) isCharacterSetAffected() bool {
	switch vr {
	case SHVR, LOVR, STVR, LTVR, PNVR, UCVR, UTVR:
		return true
	}
	return false
}

var vrLookupMap = map[string]*VR{}

func newVR(name string, kind vrType, longLength bool) *VR {
	vr := &VR{Name: name, kind: kind, longLength: longLength}
	vrLookupMap[name] = vr
	return vr
}

func lookupVRByName(name string) (*VR, error) {
	if r, ok := vrLookupMap[name]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("unknown vr name: %q", name)
}

const (
	length16 = false
	length32 = true
)

// VR list obtained from
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
var (
	// text, split on backslash
	AEVR = newVR("AE", textVR, length16)
	ASVR = newVR("AS", textVR, length16)
	CSVR = newVR("CS", textVR, length16)
	DAVR = newVR("DA", textVR, length16)
	DSVR = newVR("DS", textVR, length16)
	DTVR = newVR("DT", textVR, length16)
	ISVR = newVR("IS", textVR, length16)
	LOVR = newVR("LO", textVR, length16)
	LTVR = newVR("LT", textVR, length16)
	PNVR = newVR("PN", textVR, length16)
	SHVR = newVR("SH", textVR, length16)
	STVR = newVR("ST", textVR, length16)
	TMVR = newVR("TM", textVR, length16)

	UIVR = newVR("UI", uniqueIdentifierVR, length16)
	ATVR = newVR("AT", tagVR, length16)

	// fixed size binary numbers
	FDVR = newVR("FD", numberBinaryVR, length16)
	FLVR = newVR("FL", numberBinaryVR, length16)
	SLVR = newVR("SL", numberBinaryVR, length16)
	SSVR = newVR("SS", numberBinaryVR, length16)
	ULVR = newVR("UL", numberBinaryVR, length16)
	USVR = newVR("US", numberBinaryVR, length16)
	SVVR = newVR("SV", numberBinaryVR, length32)
	UVVR = newVR("UV", numberBinaryVR, length32)

	// values that may be arbitrarily large and are read lazily
	OBVR = newVR("OB", bulkDataVR, length32)
	ODVR = newVR("OD", bulkDataVR, length32)
	OFVR = newVR("OF", bulkDataVR, length32)
	OLVR = newVR("OL", bulkDataVR, length32)
	OVVR = newVR("OV", bulkDataVR, length32)
	OWVR = newVR("OW", bulkDataVR, length32)
	UCVR = newVR("UC", bulkDataVR, length32)
	UNVR = newVR("UN", bulkDataVR, length32)
	URVR = newVR("UR", bulkDataVR, length32)
	UTVR = newVR("UT", bulkDataVR, length32)

	SQVR = newVR("SQ", sequenceVR, length32)
)
