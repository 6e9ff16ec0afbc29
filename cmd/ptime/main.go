// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command ptime converts dates between the Persian (Solar Hijri) and
// Gregorian calendars and formats Persian dates.
package main

import (
	"context"
	"io"
	"os"
	"time"

	"cloudeng.io/cmdutil/subcmd"
)

const commands = `name: ptime
summary: convert dates between the Persian (Solar Hijri) and Gregorian calendars
commands:
  - name: now
    summary: display the current Persian date and time
  - name: to-persian
    summary: convert a Gregorian date to the Persian calendar
    arguments:
      - <yyyy-mm-dd>
  - name: to-gregorian
    summary: convert a Persian date, in any of the formats accepted by ptime.Parse, to the Gregorian calendar
    arguments:
      - <persian-date>
  - name: format
    summary: format a Persian date, or the current date and time, using the supplied template
    arguments:
      - <template>
      - ...
  - name: leap
    summary: report whether the specified Persian years are leap years
    arguments:
      - <year>
      - ...
  - name: add
    summary: add an ISO8601 duration, eg. P1DT2H, to a Persian date
    arguments:
      - <persian-date>
      - <iso8601-duration>
  - name: diff
    summary: display the duration between two Persian dates
    arguments:
      - <persian-date>
      - <persian-date>
  - name: next-workday
    summary: display the first working day on or after a Persian date
    arguments:
      - <persian-date>
`

func newCommandSet(c *command) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(commands)
	cmdSet.Set("now").MustRunnerAndFlags(c.now,
		subcmd.MustRegisteredFlagSet(&nowFlags{}))
	cmdSet.Set("to-persian").MustRunnerAndFlags(c.toPersian,
		subcmd.MustRegisteredFlagSet(&conversionFlags{}))
	cmdSet.Set("to-gregorian").MustRunnerAndFlags(c.toGregorian,
		subcmd.MustRegisteredFlagSet(&conversionFlags{}))
	cmdSet.Set("format").MustRunnerAndFlags(c.format,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("leap").MustRunnerAndFlags(c.leap,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("add").MustRunnerAndFlags(c.add,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("diff").MustRunnerAndFlags(c.diff,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("next-workday").MustRunnerAndFlags(c.nextWorkday,
		subcmd.MustRegisteredFlagSet(&nextFlags{}))
	return cmdSet
}

type command struct {
	out   io.Writer
	clock func() time.Time
}

func main() {
	subcmd.Dispatch(context.Background(),
		newCommandSet(&command{out: os.Stdout, clock: time.Now}))
}
