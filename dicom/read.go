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
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
	"unicode"
)

func readDataElement(dr *dcmReader, metaData dicomMetaData) (*DataElement, error) {
	syntax := metaData.syntax
	tag, err := dr.Tag(syntax.byteOrder())
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("getting tag: %v", err)
	}

	if tag == ItemDelimitationItemTag {
		// handles the case when we are parsing a nested data set within a sequence with undefined
		// length. This code should never run for the top level data set
		length, err := dr.UInt32(syntax.byteOrder())
		if err != nil {
			return nil, fmt.Errorf("reading 32 bit length of item delimitation: %v", err)
		}
		if length != 0 {
			return nil, fmt.Errorf("wrong length for item delimiter. got %v, want %v", length, 0)
		}
		return nil, io.EOF
	}

	vr, err := syntax.readVR(dr, tag)
	if err != nil {
		return nil, fmt.Errorf("getting vr %v", err)
	}

	length, err := syntax.readValueLength(dr, vr)
	if err != nil {
		return nil, fmt.Errorf("getting length: %v", err)
	}

	value, err := readValue(tag, dr, vr, length, metaData)
	if err != nil {
		return nil, fmt.Errorf("parsing value of %v: %v", tag, err)
	}

	return &DataElement{tag, vr, value, length}, nil
}

func readValue(tag DataElementTag, dr *dcmReader, vr *VR, length uint32, metaData dicomMetaData) (interface{}, error) {
	if length == UndefinedLength && vr != SQVR && vr.kind != bulkDataVR {
		return nil, fmt.Errorf("undefined length is not allowed for vr %v", vr)
	}

	switch vr.kind {
	case textVR:
		return readText(dr, length, vr, metaData, unicode.IsSpace)
	case numberBinaryVR:
		return readNumberBinary(dr, length, vr, metaData.syntax.byteOrder())
	case bulkDataVR:
		if vr == UNVR && length == UndefinedLength && tag != PixelDataTag {
			// a sequence whose VR was lost, e.g. a private SQ re-encoded by a node without its
			// dictionary. Its items are always implicit VR little endian.
			// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2.2
			unknown := dicomMetaData{implicitVRLittleEndian, metaData.encoding}
			return readSequence(dr, length, unknown)
		}
		return readBulkData(dr, tag, length)
	case uniqueIdentifierVR:
		return readText(dr, length, vr, metaData, func(r rune) bool {
			return r == 0x00 || r == ' '
		})
	case sequenceVR:
		return readSequence(dr, length, metaData)
	case tagVR:
		return readTag(dr, metaData.syntax, length)
	default:
		return nil, fmt.Errorf("unknown vr type found: %v", vr.kind)
	}
}

func readTag(dr *dcmReader, syntax transferSyntax, length uint32) ([]uint32, error) {
	raw, err := dr.Bytes(int64(length))
	if err != nil {
		return nil, fmt.Errorf("reading attribute tags: %v", err)
	}

	order := syntax.byteOrder()
	ret := make([]uint32, len(raw)/4) // 4 bytes per tag
	for i := range ret {
		group := order.Uint16(raw[4*i:])
		element := order.Uint16(raw[4*i+2:])
		ret[i] = uint32(NewDataElementTag(group, element))
	}
	return ret, nil
}

func readText(dr *dcmReader, length uint32, vr *VR, metaData dicomMetaData, isPadding func(rune) bool) ([]string, error) {
	if length == 0 {
		return []string{}, nil
	}

	raw, err := dr.Bytes(int64(length))
	if err != nil {
		return nil, fmt.Errorf("reading text field value: %v", err)
	}

	valueField := string(raw)
	if vr.isCharacterSetAffected() {
		if valueField, err = decodeText(metaData.encoding, raw); err != nil {
			return nil, err
		}
	}

	return splitText(valueField, vr, isPadding), nil
}

// splitText deals with value multiplicity and padding of textual values. LT, ST and UT values are
// single valued and may contain backslashes. Leading spaces are significant for them.
func splitText(valueField string, vr *VR, isPadding func(rune) bool) []string {
	if vr == UTVR || vr == STVR || vr == LTVR || vr == URVR {
		return []string{strings.TrimRightFunc(valueField, isPadding)}
	}

	strs := strings.Split(valueField, "\\")
	for i, s := range strs {
		strs[i] = strings.TrimFunc(s, isPadding)
	}
	return strs
}

func readNumberBinary(dr *dcmReader, length uint32, vr *VR, order binary.ByteOrder) (interface{}, error) {
	// buffer first so a corrupt length fails on EOF instead of allocating the whole length
	raw, err := dr.Bytes(int64(length))
	if err != nil {
		return nil, fmt.Errorf("reading binary number field: %v", err)
	}
	return decodeNumberBinary(raw, vr, order)
}

// decodeNumberBinary decodes raw bytes into the slice type of the VR. Trailing bytes that do not
// form a whole value are ignored.
func decodeNumberBinary(raw []byte, vr *VR, order binary.ByteOrder) (interface{}, error) {
	var data interface{}
	n := len(raw)

	switch vr {
	case SSVR:
		data = make([]int16, n/2)
	case USVR:
		data = make([]uint16, n/2)
	case SLVR:
		data = make([]int32, n/4)
	case ULVR, OLVR:
		data = make([]uint32, n/4)
	case FLVR, OFVR:
		data = make([]float32, n/4)
	case FDVR, ODVR:
		data = make([]float64, n/8)
	case SVVR:
		data = make([]int64, n/8)
	case UVVR, OVVR:
		data = make([]uint64, n/8)
	default:
		return nil, fmt.Errorf("unknown vr: %v", vr)
	}

	if err := binary.Read(bytes.NewReader(raw), order, data); err != nil {
		return nil, fmt.Errorf("binary.Read(_, _, _) => %v", err)
	}

	return data, nil
}

func readBulkData(dr *dcmReader, tag DataElementTag, length uint32) (BulkDataIterator, error) {
	if length == UndefinedLength {
		if tag == PixelDataTag {
			// Specified in http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_A.4
			// (7FE0,0010) and undefined length means pixel data in encapsulated (compressed) format
			return newEncapsulatedFormatIterator(dr), nil
		}

		return nil, fmt.Errorf("syntax with undefined length in non-pixel data not supported")
	}

	// for native (uncompressed) formats, return regular bulk data stream
	return newOneShotIterator(limitCountReader(dr.cr, int64(length))), nil
}

func readSequence(dr *dcmReader, length uint32, metaData dicomMetaData) (SequenceIterator, error) {
	return newSequenceIterator(dr, length, metaData)
}
