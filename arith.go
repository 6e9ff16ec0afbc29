// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ptime

import (
	"time"

	"cloudeng.io/ptime/calendar"
)

// Add returns t+d. The result is always in UTC, the UTC offset of t
// is not preserved.
func (t Tm) Add(d time.Duration) Tm {
	return AtUTC(t.Time().Add(d))
}

// SubDuration returns t-d. The result is always in UTC, the UTC offset
// of t is not preserved.
func (t Tm) SubDuration(d time.Duration) Tm {
	return AtUTC(t.Time().Add(-d))
}

// Sub returns the duration t-u. If the result exceeds the maximum (or
// minimum) value that can be stored in a time.Duration, the maximum (or
// minimum) duration will be returned.
func (t Tm) Sub(u Tm) time.Duration {
	return t.Time().Sub(u.Time())
}

// SubTime returns the duration t-u for a time.Time.
func (t Tm) SubTime(u time.Time) time.Duration {
	return t.Time().Sub(u)
}

// Compare compares the instants represented by t and u. It returns -1
// if t is before u, 0 if they are the same instant and +1 if t is after u.
// Times with different UTC offsets that represent the same instant are
// considered equal.
func (t Tm) Compare(u Tm) int {
	return t.Time().Compare(u.Time())
}

// Before returns true if t is before u.
func (t Tm) Before(u Tm) bool {
	return t.Compare(u) < 0
}

// After returns true if t is after u.
func (t Tm) After(u Tm) bool {
	return t.Compare(u) > 0
}

// Equal returns true if t and u represent the same instant.
func (t Tm) Equal(u Tm) bool {
	return t.Compare(u) == 0
}

// AddDate returns the time corresponding to adding the given number of
// years, months and days to t in the Persian calendar. Years and months
// are added first. If the resulting month is shorter than t's day of the
// month, the day is set to the last day of that month. Days are then added
// using the Julian Day Number, so that AddDate(0, 0, n) always agrees with
// Add(n * 24 * time.Hour). The time of day and UTC offset of t are preserved.
func (t Tm) AddDate(years, months, days int) (Tm, error) {
	nt := t
	if years != 0 || months != 0 {
		total := int(t.Month) + months
		year := t.Year + years + total/12
		month := total % 12
		if month < 0 {
			month += 12
			year--
		}
		day := min(t.Day, calendar.PersianDaysInMonth(year, month))
		base, err := FromPersianComponents(year, month, day, t.Hour, t.Minute, t.Second, t.Nanosecond)
		if err != nil {
			return Tm{}, err
		}
		base.UTCOffset = t.UTCOffset
		base.IsDST = t.IsDST
		nt = base
	}
	return nt.addDays(days), nil
}

// addDays returns t moved by the given number of days with its time of
// day, UTC offset and DST flag unchanged.
func (t Tm) addDays(days int) Tm {
	if days == 0 {
		return t
	}
	jdn := calendar.PersianToJDN(t.Year, int(t.Month)+1, t.Day) + days
	y, m, d := calendar.JDNToPersian(jdn)
	t.Year, t.Month, t.Day = y, Month(m-1), d
	t.Weekday = Weekday(calendar.PersianWeekday(calendar.Weekday(jdn)))
	t.YearDay = calendar.PersianYearDay(m-1, d)
	return t
}

// AddISO8601 returns t plus the ISO8601 duration dur, see
// ParseISO8601Duration.
func (t Tm) AddISO8601(dur string) (Tm, error) {
	d, err := ParseISO8601Duration(dur)
	if err != nil {
		return Tm{}, err
	}
	return t.Add(d), nil
}
