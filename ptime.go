// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package ptime provides support for converting moments in time between
// the Persian (Solar Hijri) and Gregorian calendars and for formatting
// Persian dates. The Julian Day Number is used as the intermediate
// representation for all conversions, see cloudeng.io/ptime/calendar.
//
//	tm, err := ptime.FromGregorianDate(2016, 2, 21) // 21st March 2016
//	...
//	fmt.Println(tm.Year, tm.Month, tm.Day) // 1395 فروردین 2
//
// Months are always zero based indices, ie. 0 is Farvardin for Persian
// dates and 0 is January for Gregorian dates.
package ptime

import (
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/ptime/calendar"
)

// Month is a zero based Persian month index, 0 is Farvardin.
type Month int

const (
	Farvardin Month = iota
	Ordibehesht
	Khordad
	Tir
	Mordad
	Shahrivar
	Mehr
	Aban
	Azar
	Dey
	Bahman
	Esfand
)

// String returns the Persian name of the month. The month must be in the
// range 0-11.
func (m Month) String() string {
	return monthNames[m]
}

// Weekday is a zero based Persian weekday, 0 is Shanbeh (Saturday).
type Weekday int

const (
	Shanbeh Weekday = iota
	Yekshanbeh
	Doshanbeh
	Seshanbeh
	Chaharshanbeh
	Panjshanbeh
	Jomeh
)

// String returns the Persian name of the weekday. The weekday must be in
// the range 0-6.
func (wd Weekday) String() string {
	return weekdayNames[wd]
}

// Tm represents the components of a moment in time in the Persian calendar.
// Values are only created by the constructors in this package, by conversion
// from the Gregorian calendar or by Empty. The Weekday and YearDay fields are
// derived from the date and are always consistent with it.
type Tm struct {
	Second     int     // [0, 59]
	Minute     int     // [0, 59]
	Hour       int     // [0, 23]
	Day        int     // [1, 31]
	Month      Month   // [0, 11]
	Year       int     // may be zero or negative
	Weekday    Weekday // [0, 6], 0 = Shanbeh, ..., 6 = Jomeh
	YearDay    int     // [0, 365], days since Farvardin 1
	IsDST      bool    // daylight saving time was in effect
	UTCOffset  int     // seconds east of UTC
	Nanosecond int     // [0, 999999999]
}

// Empty returns a zero valued Tm for use as a scratch value. It does not
// represent a valid date.
func Empty() Tm {
	return Tm{}
}

// FromGregorianDate is like FromGregorianComponents with the time set
// to midnight UTC.
func FromGregorianDate(year, month, day int) (Tm, error) {
	return FromGregorianComponents(year, month, day, 0, 0, 0, 0)
}

// FromPersianDate is like FromPersianComponents with the time set
// to midnight UTC.
func FromPersianDate(year, month, day int) (Tm, error) {
	return FromPersianComponents(year, month, day, 0, 0, 0, 0)
}

// FromGregorianComponents returns the Persian time for the specified
// Gregorian date and time in UTC. The month is zero based. An error is
// returned if any of the date or time components are out of range.
func FromGregorianComponents(year, month, day, hour, minute, second, nanosecond int) (Tm, error) {
	if err := errors.NewM(
		calendar.ValidateTime(hour, minute, second, nanosecond),
		calendar.ValidateGregorianDate(year, month, day),
	); err != nil {
		return Tm{}, err
	}
	return FromGregorian(Gregorian{
		Year:       year,
		Month:      month,
		Day:        day,
		Hour:       hour,
		Minute:     minute,
		Second:     second,
		Nanosecond: nanosecond,
	}), nil
}

// FromPersianComponents returns the Persian time for the specified
// Persian date and time in UTC. The month is zero based. An error is
// returned if any of the date or time components are out of range.
func FromPersianComponents(year, month, day, hour, minute, second, nanosecond int) (Tm, error) {
	if err := errors.NewM(
		calendar.ValidateTime(hour, minute, second, nanosecond),
		calendar.ValidatePersianDate(year, month, day),
	); err != nil {
		return Tm{}, err
	}
	jdn := calendar.PersianToJDN(year, month+1, day)
	return Tm{
		Second:     second,
		Minute:     minute,
		Hour:       hour,
		Day:        day,
		Month:      Month(month),
		Year:       year,
		Weekday:    Weekday(calendar.PersianWeekday(calendar.Weekday(jdn))),
		YearDay:    calendar.PersianYearDay(month, day),
		Nanosecond: nanosecond,
	}, nil
}

// MustFromPersianDate is like FromPersianDate but panics on error.
func MustFromPersianDate(year, month, day int) Tm {
	tm, err := FromPersianDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return tm
}

// MustFromGregorianDate is like FromGregorianDate but panics on error.
func MustFromGregorianDate(year, month, day int) Tm {
	tm, err := FromGregorianDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return tm
}

// AtUTC returns the Persian time in UTC for the instant t.
func AtUTC(t time.Time) Tm {
	return FromGregorian(GregorianFromTime(t.UTC()))
}

// At returns the Persian time in the local time zone for the instant t.
func At(t time.Time) Tm {
	return FromGregorian(GregorianFromTime(t.Local()))
}

// NowUTC returns the current Persian time in UTC.
func NowUTC() Tm {
	return AtUTC(time.Now())
}

// Now returns the current Persian time in the local time zone.
func Now() Tm {
	return At(time.Now())
}

// IsLeap returns true if the year of t is a Persian leap year.
func (t Tm) IsLeap() bool {
	return calendar.IsPersianLeap(t.Year)
}

// DaysInMonth returns the number of days in the month of t.
func (t Tm) DaysInMonth() int {
	return calendar.PersianDaysInMonth(t.Year, int(t.Month))
}

// PersianDaysInMonth returns the number of days in month for the given
// Persian year.
func PersianDaysInMonth(year int, month Month) int {
	return calendar.PersianDaysInMonth(year, int(month))
}

// ToLocal converts a UTC time to the local time zone. Times that already
// carry a non-zero UTC offset are returned unchanged.
func (t Tm) ToLocal() Tm {
	if t.UTCOffset == 0 {
		return At(t.Time())
	}
	return t
}

// ToUTC converts a time with a non-zero UTC offset to UTC. Times with
// a zero offset are returned unchanged.
func (t Tm) ToUTC() Tm {
	if t.UTCOffset == 0 {
		return t
	}
	return AtUTC(t.Time())
}
