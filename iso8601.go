// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ptime

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

const (
	// PersianYear is the mean length of a year in the 2820 year Persian
	// cycle, 1029983 days.
	PersianYear = time.Duration(1029983 * 86400 * 1000000000 / 2820)
	// PersianMonth is one twelfth of a PersianYear.
	PersianMonth = PersianYear / 12
)

var ErrInvalidISO8601Duration = errors.New("invalid ISO8601 duration")

// consumeNumber returns the number and designator at the start of dur and
// the number of bytes consumed.
func consumeNumber(dur string) (float64, byte, int, error) {
	for i := 0; i < len(dur); i++ {
		c := dur[i]
		if (c >= '0' && c <= '9') || c == '.' {
			continue
		}
		switch c {
		case 'Y', 'M', 'W', 'D', 'H', 'S':
			n, err := strconv.ParseFloat(dur[:i], 64)
			if err != nil {
				return 0, 0, 0, fmt.Errorf("invalid number: %q: %q: %w", dur[:i], dur, ErrInvalidISO8601Duration)
			}
			return n, c, i + 1, nil
		}
		break
	}
	return 0, 0, 0, fmt.Errorf("invalid number or designator: %s: %w", dur, ErrInvalidISO8601Duration)
}

// ParseISO8601Duration parses a duration of the form [-]PnYnMnWnDTnHnMnS.
// Years and months are converted using the mean Persian year length,
// see PersianYear and PersianMonth. Persian digits are accepted. Durations
// that cannot be represented by a time.Duration, about 292 years, are
// rejected.
func ParseISO8601Duration(dur string) (time.Duration, error) {
	orig := dur
	dur = ToASCIIDigits(dur)
	negative := false
	if len(dur) > 0 && dur[0] == '-' {
		negative = true
		dur = dur[1:]
	}
	if len(dur) == 0 || dur[0] != 'P' {
		return 0, fmt.Errorf("duration must start with P or -P: %s: %w", orig, ErrInvalidISO8601Duration)
	}
	dur = dur[1:]
	var result time.Duration
	inTime := false
	for len(dur) > 0 {
		if dur[0] == 'T' {
			if inTime {
				return 0, fmt.Errorf("repeated T: %s: %w", orig, ErrInvalidISO8601Duration)
			}
			inTime = true
			dur = dur[1:]
			continue
		}
		n, designator, consumed, err := consumeNumber(dur)
		if err != nil {
			return 0, err
		}
		dur = dur[consumed:]
		var unit time.Duration
		switch {
		case !inTime && designator == 'Y':
			unit = PersianYear
		case !inTime && designator == 'M':
			unit = PersianMonth
		case !inTime && designator == 'W':
			unit = 7 * 24 * time.Hour
		case !inTime && designator == 'D':
			unit = 24 * time.Hour
		case inTime && designator == 'H':
			unit = time.Hour
		case inTime && designator == 'M':
			unit = time.Minute
		case inTime && designator == 'S':
			unit = time.Second
		default:
			return 0, fmt.Errorf("invalid duration designator: %c: %w", designator, ErrInvalidISO8601Duration)
		}
		if float64(unit)*n >= math.MaxInt64 {
			return 0, fmt.Errorf("duration out of range: %s: %w", orig, ErrInvalidISO8601Duration)
		}
		var amount time.Duration
		if n == math.Trunc(n) {
			amount = unit * time.Duration(n)
		} else {
			amount = time.Duration(float64(unit) * n)
		}
		if result > math.MaxInt64-amount {
			return 0, fmt.Errorf("duration out of range: %s: %w", orig, ErrInvalidISO8601Duration)
		}
		result += amount
	}
	if negative {
		result = -result
	}
	return result, nil
}
