// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"errors"
	"testing"

	"cloudeng.io/ptime/calendar"
)

func TestDivider(t *testing.T) {
	for _, tc := range []struct {
		num, den, want int
	}{
		{0, 33, 0},
		{10, 33, 10},
		{33, 33, 0},
		{34, 33, 1},
		{-1, 33, 32},
		{-33, 33, 0},
		{-34, 33, 32},
		{-14, 33, 19},
		{5, -3, -1},
		{-5, -3, -2},
	} {
		if got, want := calendar.Divider(tc.num, tc.den), tc.want; got != want {
			t.Errorf("Divider(%v, %v): got %v, want %v", tc.num, tc.den, got, want)
		}
	}
}

var (
	persianLeapYears    = []int{1325, 1329, 1333, 1337, 1370, 1375, 1379, 1383, 1387, 1391, 1395, 1399}
	persianNonLeapYears = []int{1324, 1330, 1332, 1335, 1371, 1374, 1380, 1381, 1386, 1390, 1394, 1400}
)

func TestLeapYears(t *testing.T) {
	for _, y := range persianLeapYears {
		if !calendar.IsPersianLeap(y) {
			t.Errorf("%v: should be a leap year", y)
		}
		if got, want := calendar.PersianToJDN(y+1, 1, 1)-calendar.PersianToJDN(y, 1, 1), 366; got != want {
			t.Errorf("%v: got %v, want %v", y, got, want)
		}
	}
	for _, y := range persianNonLeapYears {
		if calendar.IsPersianLeap(y) {
			t.Errorf("%v: should not be a leap year", y)
		}
		if got, want := calendar.PersianToJDN(y+1, 1, 1)-calendar.PersianToJDN(y, 1, 1), 365; got != want {
			t.Errorf("%v: got %v, want %v", y, got, want)
		}
	}

	for _, tc := range []struct {
		year              int
		gregorian, julian bool
	}{
		{1500, false, true},
		{1600, true, true},
		{1900, false, true},
		{2000, true, true},
		{2016, true, true},
		{2023, false, false},
		{-4, true, true},
		{-1, false, false},
	} {
		if got, want := calendar.IsGregorianLeap(tc.year), tc.gregorian; got != want {
			t.Errorf("%v: gregorian: got %v, want %v", tc.year, got, want)
		}
		if got, want := calendar.IsJulianLeap(tc.year), tc.julian; got != want {
			t.Errorf("%v: julian: got %v, want %v", tc.year, got, want)
		}
	}
}

func TestGregorianJDN(t *testing.T) {
	for _, tc := range []struct {
		y, m, d int
		jdn     int
	}{
		{-4712, 1, 1, 0},
		{1582, 10, 4, calendar.GregorianReformJDN},
		{1582, 10, 15, calendar.GregorianReformJDN + 1},
		{1970, 1, 1, calendar.UnixEpochJDN},
		{2000, 1, 1, 2451545},
		{2016, 3, 20, 2457468},
		{2016, 3, 21, 2457469},
	} {
		if got, want := calendar.GregorianToJDN(tc.y, tc.m, tc.d), tc.jdn; got != want {
			t.Errorf("%v-%v-%v: got %v, want %v", tc.y, tc.m, tc.d, got, want)
		}
		y, m, d := calendar.JDNToGregorian(tc.jdn)
		if y != tc.y || m != tc.m || d != tc.d {
			t.Errorf("%v: got %v-%v-%v, want %v-%v-%v", tc.jdn, y, m, d, tc.y, tc.m, tc.d)
		}
	}

	// 0001-01-01 (Julian) to 2099-12-31.
	for jdn := 1721424; jdn <= 2488069; jdn++ {
		y, m, d := calendar.JDNToGregorian(jdn)
		if got := calendar.GregorianToJDN(y, m, d); got != jdn {
			t.Fatalf("%v: %v-%v-%v: got %v", jdn, y, m, d, got)
		}
	}
}

func TestPersianJDN(t *testing.T) {
	for _, tc := range []struct {
		y, m, d int
		jdn     int
	}{
		{1, 1, 1, calendar.PersianEpochJDN + 1},
		{1348, 10, 11, calendar.UnixEpochJDN},
		{1394, 10, 11, 2457389},
		{1395, 1, 1, 2457468},
		{1395, 1, 2, 2457469},
	} {
		if got, want := calendar.PersianToJDN(tc.y, tc.m, tc.d), tc.jdn; got != want {
			t.Errorf("%v-%v-%v: got %v, want %v", tc.y, tc.m, tc.d, got, want)
		}
		y, m, d := calendar.JDNToPersian(tc.jdn)
		if y != tc.y || m != tc.m || d != tc.d {
			t.Errorf("%v: got %v-%v-%v, want %v-%v-%v", tc.jdn, y, m, d, tc.y, tc.m, tc.d)
		}
	}

	for jdn := calendar.PersianEpochJDN - 2000; jdn <= 2488069; jdn++ {
		y, m, d := calendar.JDNToPersian(jdn)
		if m < 1 || m > 12 || d < 1 || d > 31 {
			t.Fatalf("%v: out of range: %v-%v-%v", jdn, y, m, d)
		}
		if got := calendar.PersianToJDN(y, m, d); got != jdn {
			t.Fatalf("%v: %v-%v-%v: got %v", jdn, y, m, d, got)
		}
	}

	for y := 1325; y <= 1402; y++ {
		prev := calendar.PersianToJDN(y, 1, 1) - 1
		for m := 0; m < 12; m++ {
			for d := 1; d <= calendar.PersianDaysInMonth(y, m); d++ {
				jdn := calendar.PersianToJDN(y, m+1, d)
				if jdn != prev+1 {
					t.Fatalf("%v-%v-%v: got %v, want %v", y, m+1, d, jdn, prev+1)
				}
				prev = jdn
			}
		}
	}
}

func TestYearDayGuard(t *testing.T) {
	for _, yday := range []int{-1, 366, 1000} {
		if _, ok := calendar.PersianYearDayToJDN(1395, yday); ok {
			t.Errorf("%v: expected failure", yday)
		}
	}
	jdn, ok := calendar.PersianYearDayToJDN(1395, 1)
	if !ok {
		t.Fatal("expected success")
	}
	if got, want := jdn, calendar.PersianToJDN(1395, 1, 2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWeekdays(t *testing.T) {
	// 2016-01-01 was a Friday.
	if got, want := calendar.Weekday(2457389), 5; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.Weekday(calendar.UnixEpochJDN), 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for wd := 0; wd < 7; wd++ {
		if got, want := calendar.GregorianWeekday(calendar.PersianWeekday(wd)), wd; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if got, want := calendar.PersianWeekday(6), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.GregorianWeekday(0), 6; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, wd := range []int{-1, 7} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%v: expected a panic", wd)
				}
			}()
			calendar.PersianWeekday(wd)
		}()
	}
}

func TestValidation(t *testing.T) {
	if calendar.IsPersianDateValid(1394, 11, 30) {
		t.Errorf("1394-12-30 should not be valid")
	}
	if !calendar.IsPersianDateValid(1395, 11, 30) {
		t.Errorf("1395-12-30 should be valid")
	}
	if calendar.IsGregorianDateValid(2015, 1, 29) {
		t.Errorf("2015-02-29 should not be valid")
	}
	if !calendar.IsGregorianDateValid(2016, 1, 29) {
		t.Errorf("2016-02-29 should be valid")
	}
	for _, tc := range []struct{ y, m, d int }{
		{1395, -1, 1}, {1395, 12, 1}, {1395, 0, 0}, {1395, 0, 32}, {1395, 6, 31},
	} {
		if calendar.IsPersianDateValid(tc.y, tc.m, tc.d) {
			t.Errorf("%v: should not be valid", tc)
		}
		if err := calendar.ValidatePersianDate(tc.y, tc.m, tc.d); !errors.Is(err, calendar.ErrInvalidDate) {
			t.Errorf("%v: unexpected error: %v", tc, err)
		}
	}
	for _, tc := range []struct{ y, m, d int }{
		{2016, -1, 1}, {2016, 12, 1}, {2016, 0, 0}, {2016, 3, 31}, {2016, 11, 32},
	} {
		if calendar.IsGregorianDateValid(tc.y, tc.m, tc.d) {
			t.Errorf("%v: should not be valid", tc)
		}
		if err := calendar.ValidateGregorianDate(tc.y, tc.m, tc.d); !errors.Is(err, calendar.ErrInvalidDate) {
			t.Errorf("%v: unexpected error: %v", tc, err)
		}
	}

	for _, tc := range []struct {
		h, m, s, ns int
		valid       bool
	}{
		{0, 0, 0, 0, true},
		{23, 59, 59, 999999999, true},
		{24, 0, 0, 0, false},
		{-1, 0, 0, 0, false},
		{0, 60, 0, 0, false},
		{0, 0, 60, 0, false},
		{0, 0, 0, 1000000000, false},
		{0, 0, 0, -1, false},
	} {
		if got, want := calendar.IsTimeValid(tc.h, tc.m, tc.s, tc.ns), tc.valid; got != want {
			t.Errorf("%v: got %v, want %v", tc, got, want)
		}
		err := calendar.ValidateTime(tc.h, tc.m, tc.s, tc.ns)
		if got, want := err == nil, tc.valid; got != want {
			t.Errorf("%v: got %v, want %v", tc, err, want)
		}
		if err != nil && !errors.Is(err, calendar.ErrInvalidTime) {
			t.Errorf("%v: unexpected error: %v", tc, err)
		}
	}
}

func TestTables(t *testing.T) {
	for _, tc := range []struct {
		m, d int
		leap bool
		yday int
	}{
		{0, 1, false, 0},
		{2, 1, false, 59},
		{2, 1, true, 60},
		{11, 31, false, 364},
		{11, 31, true, 365},
	} {
		if got, want := calendar.GregorianYearDay(tc.m, tc.d, tc.leap), tc.yday; got != want {
			t.Errorf("%v: got %v, want %v", tc, got, want)
		}
	}
	if got, want := calendar.PersianYearDay(11, 30), 365; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.PersianYearDay(9, 11), 286; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.GregorianDaysInMonth(2100, 1), 28; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.PersianDaysInMonth(1399, 11), 30; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
