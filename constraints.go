// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ptime

import (
	"strings"
)

// Constraints represents constraints on date values such as weekends or
// custom dates to exclude. The Persian weekend is Jomeh (Friday) and,
// optionally, Panjshanbeh (Thursday). Custom dates take precedence over
// weekdays and weekends.
type Constraints struct {
	Weekdays        bool     // If true, include weekdays
	Weekends        bool     // If true, include weekends
	ThursdayWeekend bool     // If true, Panjshanbeh is part of the weekend
	Custom          DateList // If non-empty, exclude these dates
}

func (dc Constraints) String() string {
	var out strings.Builder
	if len(dc.Custom) > 0 {
		out.WriteString("excluding custom dates: ")
		out.WriteString(dc.Custom.String())
		out.WriteString(": ")
	}
	switch {
	case dc.Weekdays && dc.Weekends:
		out.WriteString("everyday")
	case dc.Weekdays:
		out.WriteString("weekdays only")
	case dc.Weekends:
		out.WriteString("weekends only")
	}
	return out.String()
}

// IsWeekend returns true if wd is part of the weekend.
func (dc Constraints) IsWeekend(wd Weekday) bool {
	return wd == Jomeh || (dc.ThursdayWeekend && wd == Panjshanbeh)
}

// Include returns true if the given date satisfies the constraints.
// An empty set of Constraints will return true, ie. include all dates.
func (dc Constraints) Include(when Tm) bool {
	if len(dc.Custom) > 0 && dc.Custom.Contains(when) {
		return false
	}
	switch {
	case dc.Weekdays && dc.Weekends:
		return true
	case dc.Weekdays:
		return !dc.IsWeekend(when.Weekday)
	case dc.Weekends:
		return dc.IsWeekend(when.Weekday)
	}
	return true
}

// Empty returns true if no constraints are set.
func (dc Constraints) Empty() bool {
	return !dc.Weekdays && !dc.Weekends && len(dc.Custom) == 0
}

// Next returns the first date on or after t's date, at t's time of day,
// that satisfies the constraints. It gives up and returns false after
// searching a full year.
func (dc Constraints) Next(t Tm) (Tm, bool) {
	for i := 0; i < 366; i++ {
		if nt := t.addDays(i); dc.Include(nt) {
			return nt, true
		}
	}
	return Tm{}, false
}
