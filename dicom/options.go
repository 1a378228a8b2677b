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

// Transform describes a transformation applied to a DataElement
type Transform func(*DataElement) (*DataElement, error)

// ParseOption configures the behavior of the Parse function.
type ParseOption struct {
	transform Transform
}

// WithTransform returns a ParseOption that applies the given transformation to each DataElement in
// the DICOM file in the order encountered. For DataElements that contain a sequence, the transform
// is applied to nested DataElements first (i.e. transform is called on DataElements in post-order).
// If the transform returns an error, Parse will stop parsing and return an error.
// If no error is returned and a non-nil DataElement is returned, this DataElement will be added to
// the returned DataSet of Parse. If a nil DataElement is returned, this DataElement will be
// excluded from the DataSet returned from Parse.
func WithTransform(t Transform) ParseOption {
	return ParseOption{t}
}

// DropGroupLengths will exclude all group length elements (gggg,0000) from the returned DataSet
var DropGroupLengths = WithTransform(func(element *DataElement) (*DataElement, error) {
	if element.Tag.ElementNumber() == 0 {
		return nil, nil
	}
	return element, nil
})

// SkipBulkData discards the bytes of binary bulk data (OB, OW, UN, OD, OF, OL, OV and pixel data)
// without buffering them. The DataElement is kept with an empty *BulkDataBuffer so callers can still
// see that it was present. Textual bulk VRs (UC, UR, UT) are buffered as usual.
var SkipBulkData = WithTransform(func(element *DataElement) (*DataElement, error) {
	iter, ok := element.ValueField.(BulkDataIterator)
	if !ok || element.VR.IsText() {
		return element, nil
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("discarding bulk data of %v: %v", element.Tag, err)
	}
	return &DataElement{element.Tag, element.VR, NewBulkDataBuffer(), element.ValueLength}, nil
})
