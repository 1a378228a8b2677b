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

// Package props projects the data elements of a DICOM file into a flat JSON object. Elements whose
// value representation is on a fixed allow-list contribute one key each, either the dictionary
// keyword or the numeric (GGGG,EEEE) form, and a value that is the textual rendering of the element
// or null when the value has no textual form.
package props

import (
	"github.com/suyashkumar/dicom/pkg/dcmtime"
)

// Value is the decoded value of a data element. The set of implementations is closed: Strings,
// Dates, Times, DateTimes, Int32s, Uint16s and Other.
type Value interface {
	isValue()
}

// Strings holds textual values (AE, AS, CS, DS, IS, LO, LT, PN, SH, ST, UC, UI, UR, UT and
// unparsed DA, DT, TM)
type Strings []string

// Dates holds parsed DA values
type Dates []dcmtime.Date

// Times holds parsed TM values
type Times []dcmtime.Time

// DateTimes holds parsed DT values
type DateTimes []dcmtime.Datetime

// Int32s holds SL values
type Int32s []int32

// Uint16s holds US values
type Uint16s []uint16

// Shape names a representation that has no textual rendering
type Shape string

const (
	ShapeBinary   Shape = "binary"
	ShapeSequence Shape = "sequence"
	ShapeInt16    Shape = "int16"
	ShapeUint32   Shape = "uint32"
	ShapeInt64    Shape = "int64"
	ShapeUint64   Shape = "uint64"
	ShapeFloat32  Shape = "float32"
	ShapeFloat64  Shape = "float64"
	ShapeTags     Shape = "tags"
	ShapeEmpty    Shape = "empty"
	ShapeUnknown  Shape = "unknown"
)

// Other is any value without a textual rendering. It always coerces to absence.
type Other struct {
	Shape Shape
}

func (Strings) isValue()   {}
func (Dates) isValue()     {}
func (Times) isValue()     {}
func (DateTimes) isValue() {}
func (Int32s) isValue()    {}
func (Uint16s) isValue()   {}
func (Other) isValue()     {}
