// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ptime

import (
	"strconv"
	"strings"
)

// The following tables are indexed by values that have already been
// range checked when the Tm was created.
var (
	monthNames = [12]string{
		"فروردین",
		"اردیبهشت",
		"خرداد",
		"تیر",
		"مرداد",
		"شهریور",
		"مهر",
		"آبان",
		"آذر",
		"دی",
		"بهمن",
		"اسفند",
	}

	weekdayNames = [7]string{
		"شنبه",
		"یک‌شنبه",
		"دوشنبه",
		"سه‌شنبه",
		"چهارشنبه",
		"پنج‌شنبه",
		"جمعه",
	}

	weekdayShortNames = [7]string{"ش", "ی", "د", "س", "چ", "پ", "ج"}

	// indexed by hour < 12.
	meridiemNames      = [2]string{"بعد از ظهر", "قبل از ظهر"}
	meridiemShortNames = [2]string{"ب.ظ", "ق.ظ"}
)

// DefaultLayout is the template used by Tm.String.
const DefaultLayout = "yyyy-MM-ddTHH:mm:ss.ns"

func pad2(v int) string {
	if v >= 0 && v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

func twoDigitYear(year int) string {
	if year < 0 {
		year = -year
	}
	return pad2(year % 100)
}

// formatTokens is ordered so that a token appears before any shorter
// token that is a prefix of it.
var formatTokens = []string{
	"yyyy", "yyy", "yy", "y",
	"MMM", "MM", "M",
	"DD", "D",
	"dd", "d",
	"E", "e",
	"A", "a",
	"HH", "H",
	"kk", "k",
	"hh", "h",
	"KK", "K",
	"mm", "m",
	"ns",
	"ss", "s",
}

// matchToken returns the token at the start of s, or "" if there is none.
func matchToken(s string) string {
	for _, tok := range formatTokens {
		if strings.HasPrefix(s, tok) {
			return tok
		}
	}
	return ""
}

func (t Tm) tokenValue(tok string) string {
	am := 0
	if t.Hour < 12 {
		am = 1
	}
	h12 := t.Hour % 12
	switch tok {
	case "yyyy", "yyy", "y":
		return strconv.Itoa(t.Year)
	case "yy":
		return twoDigitYear(t.Year)
	case "MMM":
		return monthNames[t.Month]
	case "MM":
		return pad2(int(t.Month) + 1)
	case "M":
		return strconv.Itoa(int(t.Month) + 1)
	case "DD":
		return strconv.Itoa(t.YearDay + 1)
	case "D":
		return strconv.Itoa(t.YearDay)
	case "dd":
		return pad2(t.Day)
	case "d":
		return strconv.Itoa(t.Day)
	case "E":
		return weekdayNames[t.Weekday]
	case "e":
		return weekdayShortNames[t.Weekday]
	case "A":
		return meridiemNames[am]
	case "a":
		return meridiemShortNames[am]
	case "HH":
		return pad2(t.Hour)
	case "H":
		return strconv.Itoa(t.Hour)
	case "kk":
		return pad2(t.Hour + 1)
	case "k":
		return strconv.Itoa(t.Hour + 1)
	case "hh":
		return pad2(h12 + 1)
	case "h":
		return strconv.Itoa(h12 + 1)
	case "KK":
		return pad2(h12)
	case "K":
		return strconv.Itoa(h12)
	case "mm":
		return pad2(t.Minute)
	case "m":
		return strconv.Itoa(t.Minute)
	case "ns":
		return strconv.Itoa(t.Nanosecond)
	case "ss":
		return pad2(t.Second)
	case "s":
		return strconv.Itoa(t.Second)
	}
	return tok
}

// Format returns t formatted according to template. The following tokens
// are replaced, longer tokens taking precedence over shorter ones that
// they start with, all other text is copied unchanged:
//
//	yyyy, yyy, y  year (e.g. 1394)
//	yy            last two digits of the year (e.g. 94 for 1394, 45 for 12345)
//	MMM           the Persian name of month (e.g. فروردین)
//	MM            2-digits representation of month (e.g. 01)
//	M             month (e.g. 1)
//	DD            day of year (starting from 1)
//	D             day of year (starting from 0)
//	dd            2-digits representation of day (e.g. 01)
//	d             day (e.g. 1)
//	E             the Persian name of weekday (e.g. شنبه)
//	e             the Persian short name of weekday (e.g. ش)
//	A             the Persian name of 12-Hour marker (e.g. قبل از ظهر)
//	a             the Persian short name of 12-Hour marker (e.g. ق.ظ)
//	HH            2-digits representation of hour [00-23]
//	H             hour [0-23]
//	kk            2-digits representation of hour [01-24]
//	k             hour [1-24]
//	hh            2-digits representation of hour [01-12]
//	h             hour [1-12]
//	KK            2-digits representation of hour [00-11]
//	K             hour [0-11]
//	mm            2-digits representation of minute [00-59]
//	m             minute [0-59]
//	ss            2-digits representation of seconds [00-59]
//	s             seconds [0-59]
//	ns            nanoseconds
//
// Substituted values are never themselves rescanned for tokens.
func (t Tm) Format(template string) string {
	var out strings.Builder
	out.Grow(len(template) * 2)
	for i := 0; i < len(template); {
		if tok := matchToken(template[i:]); len(tok) > 0 {
			out.WriteString(t.tokenValue(tok))
			i += len(tok)
			continue
		}
		out.WriteByte(template[i])
		i++
	}
	return out.String()
}

// String returns t formatted using DefaultLayout.
func (t Tm) String() string {
	return t.Format(DefaultLayout)
}

// FormatPersianDigits is like Format but renders all digits using
// Persian (Extended Arabic-Indic) digits.
func (t Tm) FormatPersianDigits(template string) string {
	return ToPersianDigits(t.Format(template))
}
