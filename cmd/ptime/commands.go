// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/ptime"
	"cloudeng.io/ptime/calendar"
)

type nowFlags struct {
	CommonFlags
	UTC bool `subcmd:"utc,false,display the current time in UTC rather than the local time zone"`
}

type conversionFlags struct {
	CommonFlags
	Time string `subcmd:"time,,'time of day in 08[:12[:10]][am|pm] format'"`
}

func (cl *conversionFlags) timeOfDay() (ptime.TimeOfDay, error) {
	var tod ptime.TimeOfDay
	if len(cl.Time) == 0 {
		return tod, nil
	}
	err := tod.Parse(cl.Time)
	return tod, err
}

type nextFlags struct {
	CommonFlags
	ThursdayWeekend bool   `subcmd:"thursday-weekend,false,treat Panjshanbeh (Thursday) as part of the weekend"`
	Holidays        string `subcmd:"holidays,,'comma separated list of Persian dates to skip in addition to those in the config file'"`
}

// parseGregorian parses yyyy-mm-dd or yyyy/mm/dd with a 1-based month.
func parseGregorian(val string) (year, month, day int, err error) {
	s := strings.TrimSpace(ptime.ToASCIIDigits(val))
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '/' })
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid gregorian date %q, expected yyyy-mm-dd: %w", val, ptime.ErrInvalidFormat)
	}
	var vals [3]int
	for i, p := range parts {
		vals[i], err = strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid gregorian date %q, expected yyyy-mm-dd: %w", val, ptime.ErrInvalidFormat)
		}
	}
	if negative {
		vals[0] = -vals[0]
	}
	return vals[0], vals[1], vals[2], nil
}

func (c *command) now(ctx context.Context, values any, _ []string) error {
	cl := values.(*nowFlags)
	ctx, d, cleanup, err := cl.setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	tm := ptime.At(c.clock())
	if cl.UTC {
		tm = ptime.AtUTC(c.clock())
	}
	ctxlog.Logger(ctx).Debug("now", "persian", tm.String(), "utc-offset", tm.UTCOffset)
	fmt.Fprintln(c.out, d.format(tm))
	return nil
}

func (c *command) toPersian(ctx context.Context, values any, args []string) error {
	cl := values.(*conversionFlags)
	ctx, d, cleanup, err := cl.setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	year, month, day, err := parseGregorian(args[0])
	if err != nil {
		return err
	}
	tod, err := cl.timeOfDay()
	if err != nil {
		return err
	}
	tm, err := ptime.FromGregorianComponents(year, month-1, day, tod.Hour, tod.Minute, tod.Second, tod.Nanosecond)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("to-persian", "gregorian", args[0], "persian", tm.String())
	fmt.Fprintln(c.out, d.format(tm))
	return nil
}

func (c *command) toGregorian(ctx context.Context, values any, args []string) error {
	cl := values.(*conversionFlags)
	ctx, _, cleanup, err := cl.setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	tm, err := ptime.Parse(args[0])
	if err != nil {
		return err
	}
	if len(cl.Time) > 0 {
		tod, err := cl.timeOfDay()
		if err != nil {
			return err
		}
		if tm, err = tm.At(tod); err != nil {
			return err
		}
	}
	g := tm.ToGregorian()
	ctxlog.Logger(ctx).Debug("to-gregorian", "persian", tm.String(), "gregorian", g.String())
	fmt.Fprintf(c.out, "%04d-%02d-%02d %02d:%02d:%02d %v\n",
		g.Year, g.Month+1, g.Day, g.Hour, g.Minute, g.Second, time.Weekday(g.Weekday))
	return nil
}

func (c *command) format(ctx context.Context, values any, args []string) error {
	cl := values.(*CommonFlags)
	if len(args) > 2 {
		return fmt.Errorf("too many arguments, expected <template> [persian-date]")
	}
	ctx, d, cleanup, err := cl.setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	tm := ptime.At(c.clock())
	if len(args) == 2 {
		if tm, err = ptime.Parse(args[1]); err != nil {
			return err
		}
	}
	d.template = args[0]
	ctxlog.Logger(ctx).Debug("format", "template", d.template, "persian", tm.String())
	fmt.Fprintln(c.out, d.format(tm))
	return nil
}

func (c *command) leap(ctx context.Context, values any, args []string) error {
	cl := values.(*CommonFlags)
	ctx, d, cleanup, err := cl.setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	for _, arg := range args {
		year, err := strconv.Atoi(ptime.ToASCIIDigits(arg))
		if err != nil {
			return fmt.Errorf("invalid year: %q: %w", arg, ptime.ErrInvalidFormat)
		}
		line := fmt.Sprintf("%v: 365 days", year)
		if calendar.IsPersianLeap(year) {
			line = fmt.Sprintf("%v: leap year, 366 days", year)
		}
		if d.persianDigits {
			line = ptime.ToPersianDigits(line)
		}
		ctxlog.Logger(ctx).Debug("leap", "year", year)
		fmt.Fprintln(c.out, line)
	}
	return nil
}

func (c *command) add(ctx context.Context, values any, args []string) error {
	cl := values.(*CommonFlags)
	ctx, d, cleanup, err := cl.setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	tm, err := ptime.Parse(args[0])
	if err != nil {
		return err
	}
	nt, err := tm.AddISO8601(args[1])
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("add", "persian", tm.String(), "duration", args[1], "result", nt.String())
	fmt.Fprintln(c.out, d.format(nt))
	return nil
}

func (c *command) diff(ctx context.Context, values any, args []string) error {
	cl := values.(*CommonFlags)
	ctx, _, cleanup, err := cl.setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	from, err := ptime.Parse(args[0])
	if err != nil {
		return err
	}
	to, err := ptime.Parse(args[1])
	if err != nil {
		return err
	}
	delta := to.Sub(from)
	ctxlog.Logger(ctx).Debug("diff", "from", from.String(), "to", to.String(), "duration", delta)
	fmt.Fprintf(c.out, "%v (%v days)\n", delta, int64(delta/(24*time.Hour)))
	return nil
}

func (c *command) nextWorkday(ctx context.Context, values any, args []string) error {
	cl := values.(*nextFlags)
	ctx, d, cleanup, err := cl.setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	tm, err := ptime.Parse(args[0])
	if err != nil {
		return err
	}
	holidays := d.config.Holidays
	if len(cl.Holidays) > 0 {
		var extra ptime.DateList
		if err := extra.Parse(cl.Holidays); err != nil {
			return err
		}
		holidays = append(holidays, extra...)
	}
	dc := ptime.Constraints{
		Weekdays:        true,
		ThursdayWeekend: cl.ThursdayWeekend || d.config.ThursdayWeekend,
		Custom:          holidays,
	}
	next, ok := dc.Next(tm)
	if !ok {
		return fmt.Errorf("no working day found within a year of %v: %v", tm.Format("yyyy-MM-dd"), dc)
	}
	ctxlog.Logger(ctx).Debug("next-workday", "persian", tm.String(), "constraints", dc.String(), "next", next.String())
	fmt.Fprintln(c.out, d.format(next))
	return nil
}
