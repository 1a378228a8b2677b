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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markheramis/DicomParser/dictionary"
)

var everyVR = []string{
	"AE", "AS", "AT", "CS", "DA", "DS", "DT", "FL", "FD", "IS", "LO", "LT", "OB", "OD", "OF", "OL",
	"OV", "OW", "PN", "SH", "SL", "SQ", "SS", "ST", "SV", "TM", "UC", "UI", "UL", "UN", "UR", "US",
	"UT", "UV",
}

func TestAllowedVR(t *testing.T) {
	allowed := map[string]bool{}
	for _, vr := range []string{
		"AE", "AS", "AT", "CS", "DA", "DS", "DT", "IS", "LO", "LT", "PN", "SH", "ST", "TM", "UC",
		"UI", "UR", "UT", "FL", "FD", "SV", "UV", "UL",
	} {
		allowed[vr] = true
	}

	for _, vr := range everyVR {
		assert.Equal(t, allowed[vr], AllowedVR(vr), vr)
	}
	assert.False(t, AllowedVR(""))
	assert.False(t, AllowedVR("ui"))
}

func TestProject_AllowListClosure(t *testing.T) {
	elements := make([]Element, len(everyVR))
	for i, vr := range everyVR {
		elements[i] = Element{Group: 0x0009, Element: uint16(0x1000 + i), VR: vr, Value: Strings{vr}}
	}

	record := Project(elements, KeyStyleNumeric, nil)

	for i, vr := range everyVR {
		key := NumericKey(0x0009, uint16(0x1000+i))
		_, present := record[key]
		assert.Equal(t, AllowedVR(vr), present, vr)
	}
	assert.Len(t, record, 23)
}

func TestProject(t *testing.T) {
	dict := dictionary.Map{
		0x00080060: {Keyword: "Modality"},
		0x00280010: {Keyword: "Rows"},
		0x0020000D: {Keyword: "StudyInstanceUID"},
		0x00181310: {Keyword: "AcquisitionMatrix"},
		0x00189087: {Keyword: "DiffusionBValue"},
	}
	elements := []Element{
		{0x0008, 0x0060, "CS", Strings{"MR"}},
		{0x0018, 0x1310, "US", Uint16s{0, 256, 256, 0}},
		{0x0018, 0x9087, "FD", Other{ShapeFloat64}},
		{0x0020, 0x000D, "UI", Strings{studyUID}},
		{0x0028, 0x0010, "US", Uint16s{512}},
		{0x0029, 0x1010, "LO", Strings{"private"}},
		{0x7FE0, 0x0010, "OW", Other{ShapeBinary}},
	}

	record := Project(elements, KeyStyleSymbolic, dict)

	require.Len(t, record, 4)
	assert.Equal(t, "MR", *record["Modality"])
	assert.Equal(t, studyUID, *record["StudyInstanceUID"])
	assert.Nil(t, record["DiffusionBValue"])
	assert.Contains(t, record, "DiffusionBValue")
	assert.Equal(t, "private", *record[UnknownKey])
	assert.NotContains(t, record, "Rows", "US is not projected")
	assert.NotContains(t, record, "AcquisitionMatrix")
}

func TestProject_LastWriteWins(t *testing.T) {
	elements := []Element{
		{0x0011, 0x0010, "LO", Strings{"first"}},
		{0x0013, 0x0010, "LO", Strings{"second"}},
		{0x0015, 0x0010, "SQ", Other{ShapeSequence}},
	}

	record := Project(elements, KeyStyleSymbolic, dictionary.Map{})

	require.Len(t, record, 1)
	assert.Equal(t, "second", *record[UnknownKey])
}

func TestProject_Empty(t *testing.T) {
	record := Project(nil, KeyStyleNumeric, nil)
	assert.NotNil(t, record)
	assert.Empty(t, record)
}

func TestProject_AbsentValues(t *testing.T) {
	elements := []Element{
		{0x0018, 0x9087, "FD", Other{ShapeFloat64}},
		{0x0018, 0x0088, "DS", Strings{}},
		{0x0020, 0x9165, "AT", Other{ShapeTags}},
		{0x0028, 0x0000, "UL", Other{ShapeUint32}},
	}

	record := Project(elements, KeyStyleNumeric, nil)

	require.Len(t, record, 4)
	assert.Nil(t, record["(0018,9087)"])
	assert.Nil(t, record["(0020,9165)"])
	assert.Nil(t, record["(0028,0000)"])
	require.NotNil(t, record["(0018,0088)"])
	assert.Equal(t, "", *record["(0018,0088)"])
}
