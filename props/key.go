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
	"github.com/markheramis/DicomParser/dicom"
	"github.com/markheramis/DicomParser/dictionary"
)

// KeyStyle selects how projected keys are spelled
type KeyStyle int

const (
	// KeyStyleSymbolic uses the dictionary keyword, e.g. "StudyInstanceUID", falling back to
	// UnknownKey for tags missing from the dictionary
	KeyStyleSymbolic KeyStyle = iota

	// KeyStyleNumeric uses the tag itself, e.g. "(0020,000D)"
	KeyStyleNumeric
)

// UnknownKey is the symbolic key of every tag the dictionary does not know
const UnknownKey = "Unknown"

func (s KeyStyle) String() string {
	switch s {
	case KeyStyleSymbolic:
		return "symbolic"
	case KeyStyleNumeric:
		return "numeric"
	}
	return "invalid"
}

// KeyStyleFromShowTag maps the show_tag flag of the C interface: true selects numeric keys
func KeyStyleFromShowTag(showTag bool) KeyStyle {
	if showTag {
		return KeyStyleNumeric
	}
	return KeyStyleSymbolic
}

// NumericKey returns the (GGGG,EEEE) form of a tag in upper case hexadecimal
func NumericKey(group, element uint16) string {
	return dicom.NewDataElementTag(group, element).String()
}

// ResolveKey returns the key of a tag in the given style. A nil dict means the standard
// dictionary. Keywords are returned exactly as the dictionary stores them.
func ResolveKey(dict dictionary.Dictionary, group, element uint16, style KeyStyle) string {
	if style == KeyStyleNumeric {
		return NumericKey(group, element)
	}
	if dict == nil {
		dict = dictionary.Standard()
	}
	entry, ok := dict.Lookup(group, element)
	if !ok || entry.Keyword == "" {
		return UnknownKey
	}
	return entry.Keyword
}
