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
	"fmt"
	"strings"
	"time"

	"github.com/suyashkumar/dicom/pkg/dcmtime"
)

// errOutOfRange is returned for values that match the DA, TM or DT layout but name a component
// that does not exist, such as month 13 or minute 60.
var errOutOfRange = errors.New("component out of range")

// maxOffset is the largest UTC offset a DT value may carry
const maxOffset = 14 * time.Hour

// ParseDate parses a DA value: YYYYMMDD, the ACR-NEMA YYYY.MM.DD form, or a prefix of either
// down to the year.
func ParseDate(s string) (dcmtime.Date, error) {
	s = strings.TrimSpace(s)
	d, err := dcmtime.ParseDate(s)
	if err != nil {
		return dcmtime.Date{}, err
	}
	// dcmtime normalizes through time.Date, so an impossible date comes back as another day
	if d.DCM() != s {
		return dcmtime.Date{}, fmt.Errorf("DA %q: %w", s, errOutOfRange)
	}
	return d, nil
}

// ParseTime parses a TM value: HH, HHMM, HHMMSS or HHMMSS.F with up to six fraction digits. The
// ACR-NEMA HH:MM:SS form is accepted as well.
func ParseTime(s string) (dcmtime.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return dcmtime.Time{}, dcmtime.ErrParseTM
	}
	plain := strings.ReplaceAll(s, ":", "")
	t, err := dcmtime.ParseTime(plain)
	if err != nil {
		return dcmtime.Time{}, err
	}
	if t.DCM() != plain {
		return dcmtime.Time{}, fmt.Errorf("TM %q: %w", s, errOutOfRange)
	}
	return t, nil
}

// ParseDateTime parses a DT value: a DA prefix, an optional TM part when the day is present, and
// an optional &ZZXX offset from UTC.
func ParseDateTime(s string) (dcmtime.Datetime, error) {
	s = strings.TrimSpace(s)
	dt, err := dcmtime.ParseDatetime(s)
	if err != nil {
		return dcmtime.Datetime{}, err
	}
	if dt.DCM() != s {
		return dcmtime.Datetime{}, fmt.Errorf("DT %q: %w", s, errOutOfRange)
	}
	if _, offset := dt.Time.Zone(); time.Duration(offset)*time.Second > maxOffset ||
		time.Duration(-offset)*time.Second > maxOffset {
		return dcmtime.Datetime{}, fmt.Errorf("DT %q offset: %w", s, errOutOfRange)
	}
	return dt, nil
}
