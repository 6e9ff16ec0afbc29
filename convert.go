// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ptime

import (
	"time"

	"cloudeng.io/ptime/calendar"
)

// ToGregorian converts t to the Gregorian calendar. The time of day,
// UTC offset and daylight saving flag are carried over unchanged.
func (t Tm) ToGregorian() Gregorian {
	jdn := calendar.PersianToJDN(t.Year, int(t.Month)+1, t.Day)
	y, m, d := calendar.JDNToGregorian(jdn)
	return Gregorian{
		Year:       y,
		Month:      m - 1,
		Day:        d,
		Weekday:    calendar.GregorianWeekday(int(t.Weekday)),
		YearDay:    calendar.GregorianYearDay(m-1, d, calendar.IsGregorianYearLeap(jdn, y)),
		Hour:       t.Hour,
		Minute:     t.Minute,
		Second:     t.Second,
		Nanosecond: t.Nanosecond,
		IsDST:      t.IsDST,
		UTCOffset:  t.UTCOffset,
	}
}

// FromGregorian converts g to the Persian calendar. Dates up to and
// including 1582-10-14 are interpreted as Julian calendar dates. The
// Weekday and YearDay fields of g are ignored, the Persian ones are
// derived from the date itself.
func FromGregorian(g Gregorian) Tm {
	jdn := calendar.GregorianToJDN(g.Year, g.Month+1, g.Day)
	y, m, d := calendar.JDNToPersian(jdn)
	return Tm{
		Second:     g.Second,
		Minute:     g.Minute,
		Hour:       g.Hour,
		Day:        d,
		Month:      Month(m - 1),
		Year:       y,
		Weekday:    Weekday(calendar.PersianWeekday(calendar.Weekday(jdn))),
		YearDay:    calendar.PersianYearDay(m-1, d),
		IsDST:      g.IsDST,
		UTCOffset:  g.UTCOffset,
		Nanosecond: g.Nanosecond,
	}
}

// Time returns the instant represented by t.
func (t Tm) Time() time.Time {
	return t.ToGregorian().Time()
}

// Unix returns t as the number of seconds since January 1, 1970 UTC.
func (t Tm) Unix() int64 {
	return t.Time().Unix()
}

// UnixNano returns t as the number of nanoseconds since January 1, 1970 UTC.
// The result is undefined if it cannot be represented by an int64.
func (t Tm) UnixNano() int64 {
	return t.Time().UnixNano()
}
