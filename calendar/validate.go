// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTime is returned for out of range hour, minute, second
	// or nanosecond values.
	ErrInvalidTime = errors.New("invalid time")
	// ErrInvalidDate is returned for out of range month or day values.
	ErrInvalidDate = errors.New("invalid date")
)

// IsTimeValid returns true if all of the time of day components are
// within their ranges.
func IsTimeValid(hour, minute, second, nanosecond int) bool {
	return hour >= 0 && hour <= 23 &&
		minute >= 0 && minute <= 59 &&
		second >= 0 && second <= 59 &&
		nanosecond >= 0 && nanosecond <= 999999999
}

// IsPersianDateValid returns true if month, a zero based index, and day
// form a valid date in the given Persian year.
func IsPersianDateValid(year, month, day int) bool {
	if month < 0 || month > 11 {
		return false
	}
	return day >= 1 && day <= PersianDaysInMonth(year, month)
}

// IsGregorianDateValid returns true if month, a zero based index, and day
// form a valid date in the given Gregorian year.
func IsGregorianDateValid(year, month, day int) bool {
	if month < 0 || month > 11 {
		return false
	}
	return day >= 1 && day <= GregorianDaysInMonth(year, month)
}

// ValidateTime is like IsTimeValid but returns an error wrapping
// ErrInvalidTime that describes the offending values.
func ValidateTime(hour, minute, second, nanosecond int) error {
	if IsTimeValid(hour, minute, second, nanosecond) {
		return nil
	}
	return fmt.Errorf("%02d:%02d:%02d.%09d: %w", hour, minute, second, nanosecond, ErrInvalidTime)
}

// ValidatePersianDate is like IsPersianDateValid but returns an error
// wrapping ErrInvalidDate.
func ValidatePersianDate(year, month, day int) error {
	if IsPersianDateValid(year, month, day) {
		return nil
	}
	return fmt.Errorf("persian year %d, month index %d, day %d: %w", year, month, day, ErrInvalidDate)
}

// ValidateGregorianDate is like IsGregorianDateValid but returns an error
// wrapping ErrInvalidDate.
func ValidateGregorianDate(year, month, day int) error {
	if IsGregorianDateValid(year, month, day) {
		return nil
	}
	return fmt.Errorf("gregorian year %d, month index %d, day %d: %w", year, month, day, ErrInvalidDate)
}
