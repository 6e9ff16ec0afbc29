// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ptime_test

import (
	"testing"

	"cloudeng.io/ptime"
)

func TestFormat(t *testing.T) {
	// 1394-10-11 is Jomeh, 1st January 2016.
	afternoon, err := ptime.FromPersianComponents(1394, 9, 11, 13, 5, 7, 42)
	if err != nil {
		t.Fatal(err)
	}
	morning, err := ptime.FromPersianComponents(1395, 0, 2, 0, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i, tc := range []struct {
		tm       ptime.Tm
		template string
		want     string
	}{
		{afternoon, "yyyy yyy yy y", "1394 1394 94 1394"},
		{afternoon, "MMM MM M", "دی 10 10"},
		{afternoon, "DD D dd d", "287 286 11 11"},
		{afternoon, "E e", "جمعه ج"},
		{afternoon, "A a", "بعد از ظهر ب.ظ"},
		{afternoon, "HH H kk k hh h KK K", "13 13 14 14 02 2 01 1"},
		{afternoon, "mm m ss s ns", "05 5 07 7 42"},
		{afternoon, "yyyy/MM/dd", "1394/10/11"},
		{morning, "A a", "قبل از ظهر ق.ظ"},
		{morning, "HH H kk k hh h KK K", "00 0 01 1 01 1 00 0"},
		{morning, "E, d MMM yyyy", "دوشنبه, 2 فروردین 1395"},
		{morning, "T-/:. ,", "T-/:. ,"},
		{morning, "", ""},
		{afternoon, "MMMM", "دی10"},
		{afternoon, "yyyyy", "13941394"},
		{afternoon, "سال yyyy", "سال 1394"},
		{ptime.MustFromPersianDate(12345, 0, 1), "yyyy yy", "12345 45"},
		{ptime.MustFromPersianDate(1405, 0, 1), "yy", "05"},
	} {
		if got, want := tc.tm.Format(tc.template), tc.want; got != want {
			t.Errorf("%v: %q: got %q, want %q", i, tc.template, got, want)
		}
	}
}

func TestString(t *testing.T) {
	if got, want := ptime.MustFromGregorianDate(2016, 2, 21).String(), "1395-01-02T00:00:00.0"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	tm, err := ptime.FromPersianComponents(1395, 0, 2, 10, 30, 50, 121)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := tm.String(), "1395-01-02T10:30:50.121"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := tm.Month.String(), "فروردین"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := tm.Weekday.String(), "دوشنبه"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := tm.ToGregorian().String(), "2016-03-21T10:30:50.000000121"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPersianDigits(t *testing.T) {
	tm := ptime.MustFromPersianDate(1394, 9, 11)
	if got, want := tm.FormatPersianDigits("yyyy/MM/dd"), "۱۳۹۴/۱۰/۱۱"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ptime.ToASCIIDigits("۱۳۹۴/۱۰/۱۱"), "1394/10/11"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ptime.ToASCIIDigits("١٣٩٤"), "1394"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ptime.ToPersianDigits("abc 09"), "abc ۰۹"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFormatPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic")
		}
	}()
	tm := ptime.Empty()
	tm.Month = 12
	_ = tm.Format("MMM")
}
