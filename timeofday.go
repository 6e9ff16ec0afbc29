// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ptime

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/ptime/calendar"
)

// TimeOfDay represents a time of day with nanosecond precision.
type TimeOfDay struct {
	Hour, Minute, Second, Nanosecond int
}

// NewTimeOfDay creates a new TimeOfDay from the specified hour, minute
// and second.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute, Second: second}
}

func (tod TimeOfDay) String() string {
	if tod.Nanosecond != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%09d", tod.Hour, tod.Minute, tod.Second, tod.Nanosecond)
	}
	return fmt.Sprintf("%02d:%02d:%02d", tod.Hour, tod.Minute, tod.Second)
}

// Validate returns an error wrapping calendar.ErrInvalidTime if any of
// the components are out of range.
func (tod TimeOfDay) Validate() error {
	return calendar.ValidateTime(tod.Hour, tod.Minute, tod.Second, tod.Nanosecond)
}

func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// meridiem returns val with any am/pm suffix, in English or Persian,
// removed and 0 for none, 1 for am and 2 for pm.
func meridiem(val string) (string, int) {
	lc := strings.ToLower(strings.TrimSpace(val))
	for _, suffix := range []struct {
		text  string
		state int
	}{
		{"am", 1}, {"pm", 2},
		{meridiemShortNames[1], 1}, {meridiemShortNames[0], 2},
		{meridiemNames[1], 1}, {meridiemNames[0], 2},
	} {
		if strings.HasSuffix(lc, suffix.text) {
			return strings.TrimSpace(strings.TrimSuffix(lc, suffix.text)), suffix.state
		}
	}
	return lc, 0
}

// Parse val in formats '08[:12[:10[.nanoseconds]]][am|pm]'. Persian digits
// and the Persian 12-hour markers are accepted.
func (tod *TimeOfDay) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected '08[:12][:10][am|pm]'")
	}
	val, ampm := meridiem(ToASCIIDigits(val))
	parts := strings.Split(val, ":")
	if len(parts) > 3 {
		return fmt.Errorf("invalid format %q, expected '08[:12][:10][am|pm]'", val)
	}
	for len(parts) < 3 {
		parts = append(parts, "0")
	}
	ns := 0
	if sec, frac, ok := strings.Cut(parts[2], "."); ok {
		if !isDigits(frac) || len(frac) > 9 {
			return fmt.Errorf("invalid fractional second: %s", frac)
		}
		ns, _ = strconv.Atoi(frac + strings.Repeat("0", 9-len(frac)))
		parts[2] = sec
	}
	var vals [3]int
	for i, p := range parts {
		if !isDigits(p) {
			return fmt.Errorf("invalid time component: %q", p)
		}
		vals[i], _ = strconv.Atoi(p)
	}
	hour := vals[0]
	if ampm != 0 {
		if hour < 1 || hour > 12 {
			return fmt.Errorf("invalid hour: %v with am/pm", hour)
		}
		hour %= 12
		if ampm == 2 {
			hour += 12
		}
	}
	nt := TimeOfDay{Hour: hour, Minute: vals[1], Second: vals[2], Nanosecond: ns}
	if err := nt.Validate(); err != nil {
		return err
	}
	*tod = nt
	return nil
}

// TimeOfDay returns the time of day of t.
func (t Tm) TimeOfDay() TimeOfDay {
	return TimeOfDay{Hour: t.Hour, Minute: t.Minute, Second: t.Second, Nanosecond: t.Nanosecond}
}

// At returns a new Tm with the same date as t and the specified time of
// day.
func (t Tm) At(tod TimeOfDay) (Tm, error) {
	nt, err := FromPersianComponents(t.Year, int(t.Month), t.Day, tod.Hour, tod.Minute, tod.Second, tod.Nanosecond)
	if err != nil {
		return Tm{}, err
	}
	nt.UTCOffset = t.UTCOffset
	nt.IsDST = t.IsDST
	return nt, nil
}
