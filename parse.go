// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ptime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidFormat = errors.New("invalid format")

var months = []string{"farvardin", "ordibehesht", "khordad", "tir", "mordad", "shahrivar", "mehr", "aban", "azar", "dey", "bahman", "esfand"}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range
// 1-12 and returns the corresponding zero based Month.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(ToASCIIDigits(val))
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %d", n)
	}
	return Month(n - 1), nil
}

// ParseMonth parses a month name given either in Persian or transliterated
// as "farvardin" to "esfand". Any prefix of the transliterated names
// is accepted in either lower or upper case, the first match is returned
// for ambiguous prefixes.
func ParseMonth(val string) (Month, error) {
	lc := strings.ToLower(strings.TrimSpace(ToASCIIDigits(val)))
	if len(lc) == 0 {
		return 0, fmt.Errorf("invalid month: %q", val)
	}
	for i, name := range monthNames {
		if lc == name {
			return Month(i), nil
		}
	}
	for i := range months {
		if strings.HasPrefix(months[i], lc) {
			return Month(i), nil
		}
	}
	return 0, fmt.Errorf("invalid month: %s", val)
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if n, err := ParseNumericMonth(val); err == nil {
		*m = n
		return nil
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}

// splitDateTime splits val into its date and optional time parts which
// are separated by a space or by a T that follows a digit.
func splitDateTime(val string) (string, string) {
	for i := 0; i < len(val); i++ {
		switch {
		case val[i] == ' ':
			return val[:i], strings.TrimSpace(val[i+1:])
		case val[i] == 'T' && i > 0 && val[i-1] >= '0' && val[i-1] <= '9':
			return val[:i], val[i+1:]
		}
	}
	return val, ""
}

// splitOffset splits a trailing Z or ±hh:mm UTC offset from a time.
func splitOffset(val string) (string, int, error) {
	if strings.HasSuffix(val, "Z") {
		return strings.TrimSuffix(val, "Z"), 0, nil
	}
	idx := strings.LastIndexAny(val, "+-")
	if idx < 0 {
		return val, 0, nil
	}
	sign := 1
	if val[idx] == '-' {
		sign = -1
	}
	hh, mm, _ := strings.Cut(val[idx+1:], ":")
	if !isDigits(hh) || (len(mm) > 0 && !isDigits(mm)) {
		return "", 0, fmt.Errorf("invalid utc offset: %q: %w", val[idx:], ErrInvalidFormat)
	}
	h, _ := strconv.Atoi(hh)
	m := 0
	if len(mm) > 0 {
		m, _ = strconv.Atoi(mm)
	}
	if h > 14 || m > 59 {
		return "", 0, fmt.Errorf("invalid utc offset: %q: %w", val[idx:], ErrInvalidFormat)
	}
	return val[:idx], sign * (h*3600 + m*60), nil
}

const expectedFormats = "yyyy-MM-dd, yyyy/MM/dd or yyyy-MMM-dd optionally followed by ' HH:mm[:ss]' or 'THH:mm:ss[.ns][Z|±hh:mm]'"

// Parse parses a Persian date and optional time of day in the formats
// described by expectedFormats, with either ASCII or Persian digits,
// for example "1395-01-02", "۱۳۹۵/۰۱/۰۲ ۱۰:۳۰" or
// "1395-farvardin-02T10:30:00.5+03:30". The month may be numeric or
// a name accepted by ParseMonth.
func Parse(val string) (Tm, error) {
	s := strings.TrimSpace(ToASCIIDigits(val))
	if len(s) == 0 {
		return Tm{}, fmt.Errorf("empty value, expected %s: %w", expectedFormats, ErrInvalidFormat)
	}
	datePart, timePart := splitDateTime(s)
	negative := strings.HasPrefix(datePart, "-")
	if negative {
		datePart = datePart[1:]
	}
	parts := strings.FieldsFunc(datePart, func(r rune) bool { return r == '-' || r == '/' })
	if len(parts) != 3 {
		return Tm{}, fmt.Errorf("invalid date %q, expected %s: %w", val, expectedFormats, ErrInvalidFormat)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Tm{}, fmt.Errorf("invalid year: %q: %w", parts[0], ErrInvalidFormat)
	}
	if negative {
		year = -year
	}
	var month Month
	if err := month.Parse(parts[1]); err != nil {
		return Tm{}, fmt.Errorf("%v: %w", err, ErrInvalidFormat)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Tm{}, fmt.Errorf("invalid day: %q: %w", parts[2], ErrInvalidFormat)
	}
	var tod TimeOfDay
	offset := 0
	if len(timePart) > 0 {
		timePart, offset, err = splitOffset(timePart)
		if err != nil {
			return Tm{}, err
		}
		if err := tod.Parse(timePart); err != nil {
			return Tm{}, err
		}
	}
	tm, err := FromPersianComponents(year, int(month), day, tod.Hour, tod.Minute, tod.Second, tod.Nanosecond)
	if err != nil {
		return Tm{}, err
	}
	tm.UTCOffset = offset
	return tm, nil
}

// MustParse is like Parse but panics on error.
func MustParse(val string) Tm {
	tm, err := Parse(val)
	if err != nil {
		panic(err)
	}
	return tm
}

// SameDate returns true if t and u have the same year, month and day,
// regardless of their time of day or UTC offset.
func (t Tm) SameDate(u Tm) bool {
	return t.Year == u.Year && t.Month == u.Month && t.Day == u.Day
}

// DateList is a list of Persian dates.
type DateList []Tm

// Parse a comma separated list of dates in any of the formats accepted
// by Parse.
func (dl *DateList) Parse(val string) error {
	if len(val) == 0 {
		return nil
	}
	parts := strings.Split(val, ",")
	d := make(DateList, 0, len(parts))
	for _, part := range parts {
		tm, err := Parse(strings.TrimSpace(part))
		if err != nil {
			return err
		}
		d = append(d, tm)
	}
	*dl = d
	return nil
}

func (dl DateList) String() string {
	var out strings.Builder
	for i, d := range dl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.Format("yyyy-MM-dd"))
	}
	return out.String()
}

// Contains returns true if dl contains a date that is the same as that
// of t, see Tm.SameDate.
func (dl DateList) Contains(t Tm) bool {
	for _, d := range dl {
		if d.SameDate(t) {
			return true
		}
	}
	return false
}
