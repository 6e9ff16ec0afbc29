// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ptime_test

import (
	"errors"
	"testing"
	"time"

	"cloudeng.io/ptime"
)

func TestISO8601(t *testing.T) {
	for _, tc := range []struct {
		val  string
		want time.Duration
	}{
		{"P", 0},
		{"P1D", 24 * time.Hour},
		{"PT1H30M", 90 * time.Minute},
		{"-P1W", -7 * 24 * time.Hour},
		{"P1Y", ptime.PersianYear},
		{"P2M", 2 * ptime.PersianMonth},
		{"P۱D", 24 * time.Hour},
		{"PT1.5S", 1500 * time.Millisecond},
		{"P1DT12H", 36 * time.Hour},
		{"PT0.5H", 30 * time.Minute},
		{"P290Y", 290 * ptime.PersianYear},
	} {
		d, err := ptime.ParseISO8601Duration(tc.val)
		if err != nil {
			t.Errorf("%v: %v", tc.val, err)
			continue
		}
		if got, want := d, tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}

	if got, want := ptime.PersianYear, 365*24*time.Hour+5*time.Hour+48*time.Minute; got < want || got > want+time.Minute {
		t.Errorf("got %v, want approximately %v", got, want)
	}

	for _, val := range []string{"", "-", "1D", "P1H", "PT1D", "PTT1H", "P1X", "P1", "Px1D", "P1..2D",
		"P300Y", "PT99999999999H", "P200Y200Y", "-P300Y", "P1000000000000000000000D"} {
		if _, err := ptime.ParseISO8601Duration(val); !errors.Is(err, ptime.ErrInvalidISO8601Duration) {
			t.Errorf("%q: unexpected or missing error: %v", val, err)
		}
	}
}
