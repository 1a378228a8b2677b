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
	"strconv"
	"strings"

	"github.com/suyashkumar/dicom/pkg/dcmtime"
)

const separator = ","

// Coerce renders a value as text. Multiple values are rendered one by one and joined with a single
// comma. The second result is false when the value has no textual rendering; this covers Other
// and a nil Value. Coerce never fails.
func Coerce(v Value) (string, bool) {
	switch v := v.(type) {
	case Strings:
		return strings.Join(v, separator), true
	case Dates:
		return join(v, dcmtime.Date.String), true
	case Times:
		return join(v, dcmtime.Time.String), true
	case DateTimes:
		return join(v, dcmtime.Datetime.String), true
	case Int32s:
		return join(v, func(i int32) string { return strconv.FormatInt(int64(i), 10) }), true
	case Uint16s:
		return join(v, func(u uint16) string { return strconv.FormatUint(uint64(u), 10) }), true
	case Other:
		// binary payloads, sequences, floats, tags and every other width stay absent
		return "", false
	default:
		return "", false
	}
}

// Text is Coerce with absence expressed as nil
func Text(v Value) *string {
	s, ok := Coerce(v)
	if !ok {
		return nil
	}
	return &s
}

func join[T any](values []T, format func(T) string) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteString(separator)
		}
		b.WriteString(format(v))
	}
	return b.String()
}
