// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides the integer arithmetic underlying conversions
// between the Persian (Solar Hijri) and Gregorian calendars. All conversions
// pivot on the Julian Day Number (JDN), a continuous count of days that is
// independent of any calendar.
//
// Months are 1-12 for the JDN functions and 0-11 (month indices) for the
// validation functions, matching the conventions of the callers of each.
package calendar

// Divider returns num modulo den with the result rounded towards negative
// infinity, ie. the result always has the same sign as den. Go's % operator
// truncates towards zero which yields incorrect leap years for negative
// years.
func Divider(num, den int) int {
	r := num % den
	if r != 0 && (r < 0) != (den < 0) {
		r += den
	}
	return r
}

// floorDiv returns num / den rounded towards negative infinity.
func floorDiv(num, den int) int {
	q := num / den
	if r := num % den; r != 0 && (r < 0) != (den < 0) {
		q--
	}
	return q
}

// IsPersianLeap returns true if year is a leap year in the Persian calendar.
// It uses the arithmetic 33 year cycle approximation, 8 leap years per
// cycle, rather than the observational rule.
func IsPersianLeap(year int) bool {
	return Divider(25*year+11, 33) < 8
}

// IsGregorianLeap returns true if year is a leap year in the proleptic
// Gregorian calendar.
func IsGregorianLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// IsJulianLeap returns true if year is a leap year in the Julian calendar.
func IsJulianLeap(year int) bool {
	return Divider(year, 4) == 0
}
