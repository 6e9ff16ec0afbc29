// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/ptime"
)

// CommonFlags are accepted by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config        string `subcmd:"config,,'yaml file containing default settings, see Config'"`
	Template      string `subcmd:"template,yyyy-MM-ddTHH:mm:ss.ns,'template used to display Persian dates, see ptime.Tm.Format'"`
	PersianDigits bool   `subcmd:"persian-digits,false,display Persian dates using Persian digits"`
}

// Config represents the optional configuration file. Values specified
// on the command line take precedence over those in the file.
type Config struct {
	Template        string         `yaml:"template"`
	PersianDigits   bool           `yaml:"persian_digits"`
	ThursdayWeekend bool           `yaml:"thursday_weekend"`
	Holidays        ptime.DateList `yaml:"holidays"`
}

type display struct {
	template      string
	persianDigits bool
	config        Config
}

func (d display) format(tm ptime.Tm) string {
	if d.persianDigits {
		return tm.FormatPersianDigits(d.template)
	}
	return tm.Format(d.template)
}

// setup creates a logger as per the logging flags, stores it in the
// returned context and reads the config file if one is specified.
func (cl *CommonFlags) setup(ctx context.Context) (context.Context, display, func(), error) {
	logger, err := cl.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, display{}, nil, err
	}
	cleanup := func() { _ = logger.Close() }
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	d := display{
		template:      cl.Template,
		persianDigits: cl.PersianDigits,
	}
	if len(cl.Config) == 0 {
		return ctx, d, cleanup, nil
	}
	if err := cmdyaml.ParseConfigFileStrict(ctx, cl.Config, &d.config); err != nil {
		cleanup()
		return ctx, display{}, nil, fmt.Errorf("config file: %w", err)
	}
	if len(d.config.Template) > 0 && cl.Template == ptime.DefaultLayout {
		d.template = d.config.Template
	}
	d.persianDigits = d.persianDigits || d.config.PersianDigits
	ctxlog.Logger(ctx).Debug("config file", "file", cl.Config, "template", d.template, "holidays", d.config.Holidays.String())
	return ctx, d, cleanup, nil
}
