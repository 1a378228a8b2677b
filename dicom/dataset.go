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

// Package dicom is the decoding collaborator of the DicomParser library. It provides functions and
// data structures for reading the DICOM file format as specified in
// [http://dicom.nema.org/medical/dicom/current/output/pdf/part05.pdf].
//
// The package is divided into two levels of abstraction. The low level API consists of streaming
// interfaces like DataElementIterator, SequenceIterator and BulkDataIterator. The high level API
// consists of helper functions like Parse and ParseFile, which internally call the low level API
// and transform the streaming interfaces into a DataSet of buffered DataElements.
//
// The package only reads. Writing or mutating DICOM files is not supported.
package dicom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/markheramis/DicomParser/dictionary"
)

// DataElementTag is a unique identifier for a Data Element composed of an ordered pair
// of numbers called the group number and the element number as specified in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_3.10.
//
// The least significant 16 bits is the element number. The most significant 16 bits is the group
// number.
type DataElementTag uint32

// NewDataElementTag returns the tag for the given group and element numbers
func NewDataElementTag(group, element uint16) DataElementTag {
	return DataElementTag(uint32(group)<<16 | uint32(element))
}

// GroupNumber returns the group number component of the DataElementTag
func (t DataElementTag) GroupNumber() uint16 {
	return uint16(t >> 16)
}

// ElementNumber returns the element number component of the DataElementTag
func (t DataElementTag) ElementNumber() uint16 {
	return uint16(t & 0xFFFF)
}

// IsMetadataElement is true if and only if the Data Element is a meta data element
func (t DataElementTag) IsMetadataElement() bool {
	return t.GroupNumber() == uint16(0x0002)
}

// IsPrivate is true if and only if the tag belongs to a private group (odd group number)
func (t DataElementTag) IsPrivate() bool {
	return t.GroupNumber()%2 == 1
}

// String returns the canonical (GGGG,EEEE) form of the tag in upper case hexadecimal
func (t DataElementTag) String() string {
	return fmt.Sprintf("(%04X,%04X)", t.GroupNumber(), t.ElementNumber())
}

// DictionaryVR returns the VR of the tag as listed in the standard data dictionary. It is used by
// the implicit VR transfer syntax, where VRs are not encoded in the file.
func (t DataElementTag) DictionaryVR() *VR {
	if t.ElementNumber() == 0x0000 {
		// group length elements (gggg,0000)
		return ULVR
	}
	if t.IsPrivate() {
		// private creator elements (gggg,0010-00FF)
		if t.ElementNumber() >= 0x0010 && t.ElementNumber() <= 0x00FF {
			return LOVR
		}
		return UNVR
	}

	entry, ok := dictionary.Standard().Lookup(t.GroupNumber(), t.ElementNumber())
	if !ok || len(entry.VRs) == 0 {
		return UNVR
	}
	// When the dictionary lists several VRs (e.g. "US or OW") the last one is chosen
	vr, err := lookupVRByName(entry.VRs[len(entry.VRs)-1])
	if err != nil {
		return UNVR
	}
	return vr
}

// DataElement models a DICOM Data Element as defined in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_3.10
type DataElement struct {
	Tag DataElementTag

	// Value Representation
	VR *VR

	// ValueField represents the field within a Data Element that contains its value(s)
	// Can be any of of the following types:
	// []string,
	// []int16,
	// []uint16,
	// []int32,
	// []uint32,
	// []int64,
	// []uint64,
	// []float32,
	// []float64
	// *BulkDataBuffer
	// BulkDataIterator
	// SequenceIterator
	// *Sequence
	ValueField interface{}

	// ValueLength is equal to the length of the ValueField in bytes.
	// Can be equal to 0xFFFFFFFF to represent an undefined length:
	// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.1
	ValueLength uint32
}

func (e *DataElement) String() string {
	return e.string(0)
}

func (e *DataElement) string(indentLvl int) string {
	prefix := strings.Repeat(">", indentLvl)
	if seq, ok := e.ValueField.(*Sequence); ok {
		return fmt.Sprintf("%s%v %v #%v %v", prefix, e.Tag, e.VR.Name, e.ValueLength, seq.string(indentLvl))
	}
	return fmt.Sprintf("%s%v %v #%v %v", prefix, e.Tag, e.VR.Name, e.ValueLength, e.ValueField)
}

// DataSet models a DICOM Data Set as defined
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_3.10
type DataSet struct {
	// Elements is a map of DataElement tags to *DataElement
	Elements map[DataElementTag]*DataElement
}

// SortedTags returns the tags of the DataSet in ascending order
func (ds *DataSet) SortedTags() []DataElementTag {
	tags := make([]DataElementTag, 0, len(ds.Elements))
	for tag := range ds.Elements {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		return tags[i] < tags[j]
	})
	return tags
}

// SortedElements returns the DataElements of the DataSet ordered by tag. For files conforming to
// the standard this is the order the elements appear in the file.
func (ds *DataSet) SortedElements() []*DataElement {
	tags := ds.SortedTags()
	elements := make([]*DataElement, len(tags))
	for i, tag := range tags {
		elements[i] = ds.Elements[tag]
	}
	return elements
}

func (ds *DataSet) String() string {
	return ds.string(0)
}

func (ds *DataSet) string(indentLvl int) string {
	lines := make([]string, 0, len(ds.Elements))
	for _, elem := range ds.SortedElements() {
		lines = append(lines, elem.string(indentLvl))
	}
	return strings.Join(lines, "\n")
}
