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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suyashkumar/dicom/pkg/dcmtime"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in        string
		want      string
		precision dcmtime.PrecisionLevel
	}{
		{"20111102", "2011-11-02", dcmtime.PrecisionFull},
		{"2011.11.02", "2011-11-02", dcmtime.PrecisionFull},
		{"201111", "2011-11", dcmtime.PrecisionMonth},
		{"2011", "2011", dcmtime.PrecisionYear},
		{" 19700101 ", "1970-01-01", dcmtime.PrecisionFull},
		{"20000229", "2000-02-29", dcmtime.PrecisionFull},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := ParseDate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
			assert.Equal(t, tt.precision, d.Precision)
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "2011110", "20111302", "20111100", "20110229", "2011-11-02", "abcdefgh", "20200101-20201231"} {
		_, err := ParseDate(in)
		assert.Error(t, err, in)
	}
}

func TestParseDate_OutOfRange(t *testing.T) {
	_, err := ParseDate("20111340")
	assert.True(t, errors.Is(err, errOutOfRange), "got %v", err)
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in        string
		text      string
		precision dcmtime.PrecisionLevel
	}{
		{"15", "15", dcmtime.PrecisionHours},
		{"1507", "15:07", dcmtime.PrecisionMinutes},
		{"150758", "15:07:58", dcmtime.PrecisionSeconds},
		{"150758.591", "15:07:58.591", dcmtime.PrecisionMS3},
		{"000000.000010", "00:00:00.000010", dcmtime.PrecisionFull},
		{"15:07:58", "15:07:58", dcmtime.PrecisionSeconds},
		{"235959.9", "23:59:59.9", dcmtime.PrecisionMS1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTime(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.text, got.String())
			assert.Equal(t, tt.precision, got.Precision)
		})
	}
}

func TestParseTime_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "1", "2400", "1560", "1507.5", ".5", "150758.", "150758.1234567", "15h07", "235960"} {
		_, err := ParseTime(in)
		assert.Error(t, err, in)
	}
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2011", "2011"},
		{"20111102", "2011-11-02"},
		{"2011110215", "2011-11-02 15"},
		{"20111102150758.591", "2011-11-02 15:07:58.591"},
		{"20111102150758+0100", "2011-11-02 15:07:58 +01:00"},
		{"20111102-0530", "2011-11-02 -05:30"},
		{"20111102150758+1400", "2011-11-02 15:07:58 +14:00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			dt, err := ParseDateTime(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, dt.String())
		})
	}
}

func TestParseDateTime_Offset(t *testing.T) {
	dt, err := ParseDateTime("20111102150758-0530")
	require.NoError(t, err)
	assert.False(t, dt.NoOffset)
	_, offset := dt.Time.Zone()
	assert.Equal(t, -330*60, offset)
	assert.Equal(t, 58, dt.Time.Second())

	dt, err = ParseDateTime("20111102150758")
	require.NoError(t, err)
	assert.True(t, dt.NoOffset)
}

func TestParseDateTime_Invalid(t *testing.T) {
	for _, in := range []string{"", "201", "2011110", "201111021", "20111102150758+01", "2011+0100x", "2011.11.02", "201111021507:58", "20111102250000", "20111102150758+1500"} {
		_, err := ParseDateTime(in)
		assert.Error(t, err, in)
	}
}
