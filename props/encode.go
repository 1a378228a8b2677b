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
	"github.com/goccy/go-json"
)

// Encode serializes a record as a JSON object with keys in ascending byte order. HTML characters
// are written as is.
func Encode(r Record) ([]byte, error) {
	return json.MarshalWithOption(normalize(r), json.DisableHTMLEscape())
}

// EncodeIndent is Encode with each key on its own line, indented by indent
func EncodeIndent(r Record, indent string) ([]byte, error) {
	return json.MarshalIndentWithOption(normalize(r), "", indent, json.DisableHTMLEscape())
}

// normalize makes a nil record encode as {} rather than null
func normalize(r Record) map[string]*string {
	if r == nil {
		return map[string]*string{}
	}
	return r
}
