// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ptime

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	persianZero = '۰' // U+06F0
	arabicZero  = '٠' // U+0660
)

var (
	toPersianDigits = runes.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return persianZero + (r - '0')
		}
		return r
	})

	// Arabic-Indic digits are accepted as well since they are commonly
	// produced by keyboards and input methods in the region.
	toASCIIDigits = runes.Map(func(r rune) rune {
		switch {
		case r >= persianZero && r <= persianZero+9:
			return '0' + (r - persianZero)
		case r >= arabicZero && r <= arabicZero+9:
			return '0' + (r - arabicZero)
		}
		return r
	})
)

// ToPersianDigits returns s with all ASCII digits replaced by their
// Persian equivalents.
func ToPersianDigits(s string) string {
	out, _, err := transform.String(toPersianDigits, s)
	if err != nil {
		return s
	}
	return out
}

// ToASCIIDigits returns s in NFC form with all Persian and Arabic-Indic
// digits replaced by their ASCII equivalents.
func ToASCIIDigits(s string) string {
	out, _, err := transform.String(transform.Chain(norm.NFC, toASCIIDigits), s)
	if err != nil {
		return s
	}
	return out
}
