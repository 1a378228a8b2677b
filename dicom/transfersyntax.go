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
	"encoding/binary"
	"fmt"
)

// list of transfer syntaxes obtained from
// http://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_A
const (
	// ImplicitVRLittleEndianUID is the Implicit VR Little Endian UID
	ImplicitVRLittleEndianUID = "1.2.840.10008.1.2"
	// ExplicitVRLittleEndianUID is the Explicit VR Little Endian UID
	ExplicitVRLittleEndianUID = "1.2.840.10008.1.2.1"
	// ExplicitVRBigEndianUID is the Explicit VR Big Endian UID
	ExplicitVRBigEndianUID = "1.2.840.10008.1.2.2"
	// DeflatedExplicitVRLittleEndianUID is the Deflated Explicit VR Little Endian UID
	DeflatedExplicitVRLittleEndianUID = "1.2.840.10008.1.2.1.99"
)

const vrSize = 2

// transferSyntax is the part of a transfer syntax that affects how element headers are laid out.
// Compressed pixel data syntaxes only change the encoding of the pixel data value, which is read
// as bulk data either way.
type transferSyntax interface {
	fmt.Stringer
	byteOrder() binary.ByteOrder
	isDeflated() bool
	readVR(dr *dcmReader, tag DataElementTag) (*VR, error)
	readValueLength(dr *dcmReader, vr *VR) (uint32, error)
}

var (
	implicitVRLittleEndian         = implicitSyntax{}
	explicitVRLittleEndian         = explicitSyntax{"explicit VR little endian", binary.LittleEndian, false}
	explicitVRBigEndian            = explicitSyntax{"explicit VR big endian", binary.BigEndian, false}
	deflatedExplicitVRLittleEndian = explicitSyntax{"deflated explicit VR little endian", binary.LittleEndian, true}
)

var syntaxesByUID = map[string]transferSyntax{
	ImplicitVRLittleEndianUID:         implicitVRLittleEndian,
	ExplicitVRLittleEndianUID:         explicitVRLittleEndian,
	ExplicitVRBigEndianUID:            explicitVRBigEndian,
	DeflatedExplicitVRLittleEndianUID: deflatedExplicitVRLittleEndian,
}

// lookupTransferSyntax maps a Transfer Syntax UID to its element layout. Any syntax not listed
// encodes its data set as explicit VR little endian, see PS3.5 A.4
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_A.4
func lookupTransferSyntax(uid string) transferSyntax {
	if s, ok := syntaxesByUID[uid]; ok {
		return s
	}
	return explicitVRLittleEndian
}

// implicitSyntax takes VRs from the data dictionary and always has 32-bit lengths
type implicitSyntax struct{}

func (implicitSyntax) String() string {
	return "implicit VR little endian"
}

func (implicitSyntax) byteOrder() binary.ByteOrder {
	return binary.LittleEndian
}

func (implicitSyntax) isDeflated() bool {
	return false
}

func (implicitSyntax) readVR(_ *dcmReader, tag DataElementTag) (*VR, error) {
	return tag.DictionaryVR(), nil
}

func (implicitSyntax) readValueLength(dr *dcmReader, _ *VR) (uint32, error) {
	return dr.UInt32(binary.LittleEndian)
}

type explicitSyntax struct {
	name     string
	order    binary.ByteOrder
	deflated bool
}

func (s explicitSyntax) String() string {
	return s.name
}

func (s explicitSyntax) byteOrder() binary.ByteOrder {
	return s.order
}

func (s explicitSyntax) isDeflated() bool {
	return s.deflated
}

func (s explicitSyntax) readVR(dr *dcmReader, _ DataElementTag) (*VR, error) {
	name, err := dr.VRName()
	if err != nil {
		return nil, fmt.Errorf("reading vr: %v", err)
	}
	return lookupVRByName(name)
}

func (s explicitSyntax) readValueLength(dr *dcmReader, vr *VR) (uint32, error) {
	if !vr.longLength {
		length, err := dr.UInt16(s.order)
		if err != nil {
			return 0, fmt.Errorf("reading 16 bit length: %v", err)
		}
		return uint32(length), nil
	}

	if err := dr.Skip(2); err != nil {
		return 0, fmt.Errorf("reading reserved field: %v", err)
	}
	length, err := dr.UInt32(s.order)
	if err != nil {
		return 0, fmt.Errorf("reading 32 bit length: %v", err)
	}
	return length, nil
}
