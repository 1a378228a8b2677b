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
	"github.com/suyashkumar/dicom/pkg/dcmtime"

	"github.com/markheramis/DicomParser/dicom"
)

// Decoder turns a file into the top level elements of its data set, in source order. The file meta
// group (0002,xxxx) and the items of sequences do not appear in the result.
type Decoder interface {
	Decode(path string) ([]Element, error)
}

// DecoderFunc adapts a function to the Decoder interface
type DecoderFunc func(path string) ([]Element, error)

// Decode implements Decoder
func (f DecoderFunc) Decode(path string) ([]Element, error) {
	return f(path)
}

// NativeDecoder decodes files with the dicom package of this module. Binary payloads are skipped
// without being buffered since they are never projected.
type NativeDecoder struct {
	// DropGroupLengths leaves out the (gggg,0000) group length elements
	DropGroupLengths bool
}

// Decode implements Decoder
func (d NativeDecoder) Decode(path string) ([]Element, error) {
	opts := []dicom.ParseOption{dicom.SkipBulkData}
	if d.DropGroupLengths {
		opts = append(opts, dicom.DropGroupLengths)
	}

	ds, err := dicom.ParseFile(path, opts...)
	if err != nil {
		return nil, err
	}

	sorted := ds.SortedElements()
	elements := make([]Element, 0, len(sorted))
	for _, e := range sorted {
		if e.Tag.IsMetadataElement() {
			continue
		}
		elements = append(elements, Element{
			Group:   e.Tag.GroupNumber(),
			Element: e.Tag.ElementNumber(),
			VR:      e.VR.Name,
			Value:   nativeValue(e),
		})
	}
	return elements, nil
}

func nativeValue(e *dicom.DataElement) Value {
	switch v := e.ValueField.(type) {
	case []string:
		return Strings(v)
	case []int32:
		if len(v) == 0 {
			return Other{ShapeEmpty}
		}
		return Int32s(v)
	case []uint16:
		if len(v) == 0 {
			return Other{ShapeEmpty}
		}
		return Uint16s(v)
	case []int16:
		return Other{ShapeInt16}
	case []uint32:
		if e.VR == dicom.ATVR {
			return Other{ShapeTags}
		}
		return Other{ShapeUint32}
	case []int64:
		return Other{ShapeInt64}
	case []uint64:
		return Other{ShapeUint64}
	case []float32:
		return Other{ShapeFloat32}
	case []float64:
		return Other{ShapeFloat64}
	case *dicom.BulkDataBuffer:
		return Other{ShapeBinary}
	case *dicom.Sequence:
		return Other{ShapeSequence}
	default:
		return Other{ShapeUnknown}
	}
}

// temporalVRs maps the date and time VRs to the conversion of their text
var temporalVRs = map[string]func(Strings) (Value, bool){
	"DA": func(s Strings) (Value, bool) { return parseAll(s, ParseDate, func(v []dcmtime.Date) Value { return Dates(v) }) },
	"TM": func(s Strings) (Value, bool) { return parseAll(s, ParseTime, func(v []dcmtime.Time) Value { return Times(v) }) },
	"DT": func(s Strings) (Value, bool) {
		return parseAll(s, ParseDateTime, func(v []dcmtime.Datetime) Value { return DateTimes(v) })
	},
}

// withTemporalValues replaces the text of DA, TM and DT elements by parsed dates and times. An
// element is left as text unless every one of its values parses.
func withTemporalValues(elements []Element) []Element {
	for i, e := range elements {
		convert, ok := temporalVRs[e.VR]
		if !ok {
			continue
		}
		text, ok := e.Value.(Strings)
		if !ok || len(text) == 0 {
			continue
		}
		if v, ok := convert(text); ok {
			elements[i].Value = v
		}
	}
	return elements
}

func parseAll[T any](text Strings, parse func(string) (T, error), wrap func([]T) Value) (Value, bool) {
	out := make([]T, 0, len(text))
	for _, s := range text {
		v, err := parse(s)
		if err != nil {
			return nil, false
		}
		out = append(out, v)
	}
	return wrap(out), true
}
