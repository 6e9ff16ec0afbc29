// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ptime

import (
	"fmt"
	"time"

	"cloudeng.io/ptime/calendar"
)

const secondsPerDay = 86400

// Gregorian represents the components of a moment in time in the
// Gregorian calendar. Dates prior to the Gregorian reform of 1582-10-15
// are Julian calendar dates.
type Gregorian struct {
	Year       int  // full year, eg. 2016
	Month      int  // [0, 11], 0 = January
	Day        int  // [1, 31]
	Weekday    int  // [0, 6], 0 = Sunday
	YearDay    int  // [0, 365], days since January 1
	Hour       int  // [0, 23]
	Minute     int  // [0, 59]
	Second     int  // [0, 59]
	Nanosecond int  // [0, 999999999]
	IsDST      bool // daylight saving time was in effect
	UTCOffset  int  // seconds east of UTC
}

// GregorianFromTime returns the Gregorian components of t in t's location.
func GregorianFromTime(t time.Time) Gregorian {
	_, offset := t.Zone()
	secs := t.Unix() + int64(offset)
	days := secs / secondsPerDay
	sod := secs % secondsPerDay
	if sod < 0 {
		sod += secondsPerDay
		days--
	}
	jdn := int(days) + calendar.UnixEpochJDN
	y, m, d := calendar.JDNToGregorian(jdn)
	return Gregorian{
		Year:       y,
		Month:      m - 1,
		Day:        d,
		Weekday:    calendar.Weekday(jdn),
		YearDay:    calendar.GregorianYearDay(m-1, d, calendar.IsGregorianYearLeap(jdn, y)),
		Hour:       int(sod / 3600),
		Minute:     int(sod % 3600 / 60),
		Second:     int(sod % 60),
		Nanosecond: t.Nanosecond(),
		IsDST:      t.IsDST(),
		UTCOffset:  offset,
	}
}

// Location returns a time.Location for the UTC offset of g, time.UTC
// for a zero offset.
func (g Gregorian) Location() *time.Location {
	return location(g.UTCOffset)
}

func location(offset int) *time.Location {
	if offset == 0 {
		return time.UTC
	}
	return time.FixedZone("", offset)
}

// Time returns the instant represented by g, taking its UTC offset
// into account.
func (g Gregorian) Time() time.Time {
	jdn := calendar.GregorianToJDN(g.Year, g.Month+1, g.Day)
	secs := int64(jdn-calendar.UnixEpochJDN)*secondsPerDay +
		int64(g.Hour)*3600 + int64(g.Minute)*60 + int64(g.Second) -
		int64(g.UTCOffset)
	return time.Unix(secs, int64(g.Nanosecond)).In(g.Location())
}

func (g Gregorian) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%09d",
		g.Year, g.Month+1, g.Day, g.Hour, g.Minute, g.Second, g.Nanosecond)
}
