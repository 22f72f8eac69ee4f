package calendar

// hijriEpochJDN is the Julian Day Number anchor for the Kuwaiti tabular
// Hijri algorithm.
const hijriEpochJDN = 1948084

// hijriCycleDays is the length of one 30-year Hijri cycle: 19 short
// (354-day) years plus 11 long (355-day) years — 19*354 + 11*355 = 10631.
const hijriCycleDays = 10631

// hijriLeapYearsInCycle lists which of the 30 years in a Hijri cycle are
// 355-day leap years under the tabular (civil) rule.
var hijriLeapYearsInCycle = map[int]bool{
	2: true, 5: true, 7: true, 10: true, 13: true, 16: true,
	18: true, 21: true, 24: true, 26: true, 29: true,
}

// gregorianToJDN converts a proleptic Gregorian civil date to a Julian
// Day Number. It is total: it does not validate that (y, m, d) names a
// real date, which matters for the 1900 system's phantom 1900-02-29.
func gregorianToJDN(y, m, d int) int64 {
	a := (14 - m) / 12
	y2 := int64(y + 4800 - a)
	m2 := int64(m + 12*a - 3)
	return int64(d) + (153*m2+2)/5 + 365*y2 + y2/4 - y2/100 + y2/400 - 32045
}

// GregorianToHijri converts a Gregorian (year, month, day) to the
// corresponding Hijri (year, month, day) using the Kuwaiti tabular
// algorithm: a 10,631-day, 30-year cycle anchored at Julian Day Number
// 1,948,084.
//
// The tabular approximation is known to drift by ±1 day from other Hijri
// calendar implementations (which may use sighting-based or different
// tabular rules) — this is a documented limitation, not a bug. See
// DESIGN.md.
func GregorianToHijri(y, m, d int) (hijriYear, hijriMonth, hijriDay int) {
	y, m, d = applyHijriFixup(y, m, d)

	jd := gregorianToJDN(y, m, d)
	days := jd - hijriEpochJDN
	if days < 0 {
		days = 0
	}
	cycles := days / hijriCycleDays
	rem := days % hijriCycleDays

	year := 1
	for year <= 30 {
		length := int64(354)
		if hijriLeapYearsInCycle[year] {
			length = 355
		}
		if rem < length {
			break
		}
		rem -= length
		year++
	}
	hijriYear = int(cycles*30) + year

	months := [12]int64{30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 30, 29}
	if hijriLeapYearsInCycle[year] {
		months[11] = 30
	}
	month := 1
	for month <= 12 {
		if rem < months[month-1] {
			break
		}
		rem -= months[month-1]
		month++
	}
	hijriMonth = month
	hijriDay = int(rem) + 1
	return
}

// applyHijriFixup substitutes Excel's two fictional 1900-system dates —
// the (1900, 1, 0) time-only sentinel and the (1900, 2, 29) phantom leap
// day — with adjacent real dates before running the tabular conversion,
// since the Kuwaiti algorithm's Julian Day Number formula has no notion
// of either.
func applyHijriFixup(y, m, d int) (int, int, int) {
	switch {
	case y == 1900 && m == 1 && d == 0:
		return 1899, 12, 31
	case y == 1900 && m == 2 && d == 29:
		return 1900, 3, 1
	}
	return y, m, d
}
