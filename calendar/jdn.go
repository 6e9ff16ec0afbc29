// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

const (
	// PersianEpochJDN anchors the Persian calendar: the JDN of the day
	// before 1 Farvardin of year 1.
	PersianEpochJDN = 1948320

	// GregorianReformJDN is the JDN of 1582-10-04 in the Julian calendar,
	// the last day before the Gregorian reform. Later JDNs are converted
	// using the Gregorian calendar.
	GregorianReformJDN = 2299160

	// UnixEpochJDN is the JDN of 1970-01-01.
	UnixEpochJDN = 2440588

	daysPerGrandCycle = 1029983 // days in a 2820 year Persian cycle
	yearsPerCycle     = 2820
)

// PersianToJDN returns the JDN for the specified Persian date. Month
// is in the range 1-12, year may be any integer.
func PersianToJDN(year, month, day int) int {
	base := year - 474
	if year < 0 {
		base = year - 473
	}
	epy := 474 + Divider(base, yearsPerCycle)
	md := (month-1)*30 + 6
	if month <= 7 {
		md = (month - 1) * 31
	}
	return day + md +
		floorDiv(epy*682-110, 2816) +
		(epy-1)*365 +
		floorDiv(base, yearsPerCycle)*daysPerGrandCycle +
		PersianEpochJDN
}

// JDNToPersian returns the Persian year, month (1-12) and day for jdn.
// Years that would be zero or negative are shifted back by one so that
// there is no year zero.
func JDNToPersian(jdn int) (year, month, day int) {
	dep := jdn - PersianToJDN(475, 1, 1)
	cyc := floorDiv(dep, daysPerGrandCycle)
	rem := Divider(dep, daysPerGrandCycle)
	var ycyc int
	if rem == daysPerGrandCycle-1 {
		ycyc = yearsPerCycle
	} else {
		a := rem / 366
		ycyc = (2134*a+2816*(rem%366)+2815)/1028522 + a + 1
	}
	year = ycyc + yearsPerCycle*cyc + 474
	if year <= 0 {
		year--
	}
	dy := jdn - PersianToJDN(year, 1, 1) + 1
	if dy <= 186 {
		month = (dy + 30) / 31
	} else {
		month = (dy - 6 + 29) / 30
	}
	day = jdn - PersianToJDN(year, month, 1) + 1
	return
}

// PersianYearDayToJDN returns the JDN for the zero based day of the
// Persian year yday. It returns false if yday is outside of 0-365.
func PersianYearDayToJDN(year, yday int) (int, bool) {
	if yday < 0 || yday > 365 {
		return 0, false
	}
	return PersianToJDN(year, 1, 1) + yday, true
}

// GregorianToJDN returns the JDN for the specified date. Month is in the
// range 1-12. Dates after 1582-10-14 are interpreted in the Gregorian
// calendar, earlier ones in the Julian calendar.
func GregorianToJDN(year, month, day int) int {
	if year > 1582 || (year == 1582 && month > 10) || (year == 1582 && month == 10 && day > 14) {
		return (1461*(year+4800+(month-14)/12))/4 +
			(367*(month-2-12*((month-14)/12)))/12 -
			(3*((year+4900+(month-14)/12)/100))/4 +
			day - 32075
	}
	return 367*year - (7*(year+5001+(month-9)/7))/4 + (275*month)/9 + day + 1729777
}

// JDNToGregorian returns the year, month (1-12) and day for jdn. JDNs
// after GregorianReformJDN are returned as Gregorian dates, earlier
// ones as Julian calendar dates.
func JDNToGregorian(jdn int) (year, month, day int) {
	if jdn > GregorianReformJDN {
		l := jdn + 68569
		n := (4 * l) / 146097
		l -= (146097*n + 3) / 4
		i := (4000 * (l + 1)) / 1461001
		l = l - (1461*i)/4 + 31
		j := (80 * l) / 2447
		day = l - (2447*j)/80
		l = j / 11
		month = j + 2 - 12*l
		year = 100*(n-49) + i + l
		return
	}
	j := jdn + 1402
	k := (j - 1) / 1461
	l := j - 1461*k
	n := (l-1)/365 - l/1461
	i := l - 365*n + 30
	j = (80 * i) / 2447
	day = i - (2447*j)/80
	i = j / 11
	month = j + 2 - 12*i
	year = 4*k + n + i - 4716
	return
}

// Weekday returns the Gregorian weekday, 0 for Sunday, of jdn.
func Weekday(jdn int) int {
	return Divider(jdn+1, 7)
}

// IsGregorianYearLeap returns true if year is a leap year in the calendar
// that JDNToGregorian uses for the given jdn, ie. the Julian calendar
// prior to the reform and the Gregorian one after it.
func IsGregorianYearLeap(jdn, year int) bool {
	if jdn > GregorianReformJDN {
		return IsGregorianLeap(year)
	}
	return IsJulianLeap(year)
}
