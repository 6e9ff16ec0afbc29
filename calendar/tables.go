// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "fmt"

var (
	// indexed by month index and then by the leap year flag.
	persianDaysInMonth = [12][2]int{
		{31, 31}, // Farvardin
		{31, 31}, // Ordibehesht
		{31, 31}, // Khordad
		{31, 31}, // Tir
		{31, 31}, // Mordad
		{31, 31}, // Shahrivar
		{30, 30}, // Mehr
		{30, 30}, // Aban
		{30, 30}, // Azar
		{30, 30}, // Dey
		{30, 30}, // Bahman
		{29, 30}, // Esfand
	}

	persianYearDay = [12]int{0, 31, 62, 93, 124, 155, 186, 216, 246, 276, 306, 336}

	gregorianDaysInMonth [12][2]int
	gregorianYearDay     [12][2]int // per month cumulative days in year so [0, 31, 59 etc]

	gregorianToPersianWeekday = [7]int{1, 2, 3, 4, 5, 6, 0}
	persianToGregorianWeekday = [7]int{6, 0, 1, 2, 3, 4, 5}
)

func daysInGregorianMonthInit(month int, leap bool) int {
	switch month {
	case 1:
		if leap {
			return 29
		}
		return 28
	case 3, 5, 8, 10:
		return 30
	default:
		return 31
	}
}

func init() {
	for i := 0; i < 12; i++ {
		gregorianDaysInMonth[i][0] = daysInGregorianMonthInit(i, false)
		gregorianDaysInMonth[i][1] = daysInGregorianMonthInit(i, true)
	}
	for i := 0; i < 11; i++ {
		for l := 0; l < 2; l++ {
			gregorianYearDay[i+1][l] = gregorianYearDay[i][l] + gregorianDaysInMonth[i][l]
		}
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// PersianDaysInMonth returns the number of days in the month with the
// zero based index month for the given Persian year. The month must
// be in the range 0-11.
func PersianDaysInMonth(year, month int) int {
	return persianDaysInMonth[month][b2i(IsPersianLeap(year))]
}

// GregorianDaysInMonth returns the number of days in the month with the
// zero based index month for the given Gregorian year. The month must
// be in the range 0-11.
func GregorianDaysInMonth(year, month int) int {
	return gregorianDaysInMonth[month][b2i(IsGregorianLeap(year))]
}

// PersianYearDay returns the zero based day of the year for the zero
// based month index and day. The month must be in the range 0-11.
func PersianYearDay(month, day int) int {
	return persianYearDay[month] + day - 1
}

// GregorianYearDay returns the zero based day of the year for the zero
// based month index and day, using the leap year table if leap is true.
// The month must be in the range 0-11.
func GregorianYearDay(month, day int, leap bool) int {
	return gregorianYearDay[month][b2i(leap)] + day - 1
}

// PersianWeekday maps a Gregorian weekday (0 = Sunday) to a Persian
// weekday (0 = Shanbeh). It panics if wd is not in the range 0-6.
func PersianWeekday(wd int) int {
	if wd < 0 || wd > 6 {
		panic(fmt.Sprintf("invalid weekday value of %d", wd))
	}
	return gregorianToPersianWeekday[wd]
}

// GregorianWeekday maps a Persian weekday (0 = Shanbeh) to a Gregorian
// weekday (0 = Sunday). It panics if wd is not in the range 0-6.
func GregorianWeekday(wd int) int {
	if wd < 0 || wd > 6 {
		panic(fmt.Sprintf("invalid weekday value of %d", wd))
	}
	return persianToGregorianWeekday[wd]
}
