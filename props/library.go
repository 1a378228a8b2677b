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
	"bufio"
	"fmt"
	"os"

	libdicom "github.com/suyashkumar/dicom"
)

const metaGroup = 0x0002

// LibraryDecoder decodes files with github.com/suyashkumar/dicom. Pixel data is skipped. Integer
// values are widened by that library, so the element VR decides the shape.
type LibraryDecoder struct{}

// Decode implements Decoder
func (LibraryDecoder) Decode(path string) ([]Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %v: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %v: %w", path, err)
	}

	ds, err := libdicom.Parse(bufio.NewReader(f), info.Size(), nil, libdicom.SkipPixelData())
	if err != nil {
		return nil, fmt.Errorf("parsing %v: %w", path, err)
	}

	elements := make([]Element, 0, len(ds.Elements))
	for _, e := range ds.Elements {
		if e.Tag.Group == metaGroup {
			continue
		}
		elements = append(elements, Element{
			Group:   e.Tag.Group,
			Element: e.Tag.Element,
			VR:      e.RawValueRepresentation,
			Value:   libraryValue(e),
		})
	}
	return elements, nil
}

func libraryValue(e *libdicom.Element) Value {
	if e.Value == nil {
		return Other{ShapeUnknown}
	}

	switch v := e.Value.GetValue().(type) {
	case []string:
		return Strings(v)
	case []int:
		return libraryInts(e.RawValueRepresentation, v)
	case []float64:
		if e.RawValueRepresentation == "FL" || e.RawValueRepresentation == "OF" {
			return Other{ShapeFloat32}
		}
		return Other{ShapeFloat64}
	case []byte:
		return Other{ShapeBinary}
	case []*libdicom.SequenceItemValue:
		return Other{ShapeSequence}
	}

	switch e.Value.ValueType() {
	case libdicom.PixelData:
		return Other{ShapeBinary}
	case libdicom.SequenceItem, libdicom.Sequences:
		return Other{ShapeSequence}
	}
	return Other{ShapeUnknown}
}

func libraryInts(vr string, v []int) Value {
	switch vr {
	case "US":
		if len(v) == 0 {
			return Other{ShapeEmpty}
		}
		out := make(Uint16s, len(v))
		for i, n := range v {
			out[i] = uint16(n)
		}
		return out
	case "SL":
		if len(v) == 0 {
			return Other{ShapeEmpty}
		}
		out := make(Int32s, len(v))
		for i, n := range v {
			out[i] = int32(n)
		}
		return out
	case "SS":
		return Other{ShapeInt16}
	case "UL", "OL":
		return Other{ShapeUint32}
	case "AT":
		return Other{ShapeTags}
	case "SV":
		return Other{ShapeInt64}
	case "UV", "OV":
		return Other{ShapeUint64}
	}
	return Other{ShapeUnknown}
}
