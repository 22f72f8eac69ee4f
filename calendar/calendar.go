// Package calendar implements the date arithmetic behind Excel's two
// spreadsheet date systems: serial-number (day count since an epoch, with
// a fractional part for time-of-day) to/from (year, month, day) and
// (hour, minute, second), weekday computation, and conversions to the
// Hijri and Buddhist calendars.
//
// Conversions are O(1): no per-year loops. The Gregorian <-> day-count
// mapping uses Howard Hinnant's constant-time civil_from_days /
// days_from_civil formulas, the same family of algorithm Meeus's Julian
// Day conversion belongs to.
//
// The 1900 date system additionally has to reproduce Excel's "phantom
// leap day" bug: it treats serial 60 as 1900-02-29, a date that never
// existed, because Lotus 1-2-3 did and Excel preserved the bug for
// compatibility. See [SerialToDate].
package calendar

import "math"

// System selects which of Excel's two date epochs a serial number is
// relative to.
type System int

const (
	// System1900 is the default Windows epoch: day 1 is 1900-01-01, and
	// day 60 is the phantom 1900-02-29.
	System1900 System = 1900
	// System1904 is the Mac epoch: day 0 is 1904-01-01 (no phantom day).
	System1904 System = 1904
)

// nearIntegerEpsilon is the tolerance used to snap a serial number that is
// extremely close to an integer to that integer, absorbing f64 rounding
// noise accumulated upstream (e.g. 2.9999999999999996 instead of 3.0).
const nearIntegerEpsilon = 1e-10

// snapNearInteger rounds serial to the nearest integer when it is within
// nearIntegerEpsilon of one, otherwise returns it unchanged.
func snapNearInteger(serial float64) float64 {
	r := math.Round(serial)
	if math.Abs(serial-r) < nearIntegerEpsilon {
		return r
	}
	return serial
}

// daysFromCivil converts a (possibly fictional, e.g. 1900-02-29) Gregorian
// civil date to a signed day count relative to 1970-01-01, using Howard
// Hinnant's days_from_civil algorithm. It is total over the proleptic
// Gregorian calendar: it does not validate that (y, m, d) is a real date.
func daysFromCivil(y, m, d int) int64 {
	yy := int64(y)
	if m <= 2 {
		yy--
	}
	era := floorDiv64(yy, 400)
	yoe := yy - era*400 // [0, 399]
	var mp int64
	if m > 2 {
		mp = int64(m) - 3
	} else {
		mp = int64(m) + 9
	} // [0, 11]
	doy := (153*mp+2)/5 + int64(d) - 1           // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy        // [0, 146096]
	return era*146097 + doe - 719468
}

// civilFromDays is the inverse of daysFromCivil (Hinnant's civil_from_days).
func civilFromDays(z int64) (y, m, d int) {
	z += 719468
	era := floorDiv64(z, 146097)
	doe := z - era*146097                                    // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365    // [0, 399]
	yy := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)                  // [0, 365]
	mp := (5*doy + 2) / 153                                   // [0, 11]
	dd := doy - (153*mp+2)/5 + 1                               // [1, 31]
	var mm int64
	if mp < 10 {
		mm = mp + 3
	} else {
		mm = mp - 9
	}
	if mm <= 2 {
		yy++
	}
	return int(yy), int(mm), int(dd)
}

// floorDiv64 is integer division rounding toward negative infinity.
func floorDiv64(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// epoch1900 is daysFromCivil(1900, 1, 1): the day-count anchor for serial 1
// in the 1900 date system.
var epoch1900 = daysFromCivil(1900, 1, 1)

// epoch1904 is daysFromCivil(1904, 1, 1): the day-count anchor for serial 0
// in the 1904 date system.
var epoch1904 = daysFromCivil(1904, 1, 1)

// SerialToDate converts a serial number to a (year, month, day) triple.
// ok is false only for NaN or infinite input; SerialToDate does not by
// itself reject negative serials or serials beyond Excel's year-9999
// ceiling — that range check is the date formatter's job (it degrades to
// an empty string there), so that calendar arithmetic stays a total,
// reusable primitive.
//
// In the 1900 system: serial 0 yields the sentinel (1900, 1, 0) used for
// time-only values (Excel's "1/0/00"); serials 1-59 map directly onto
// 1900-01-01 .. 1900-02-28; serial 60 yields the phantom (1900, 2, 29);
// serials >= 61 are computed by subtracting the phantom day.
func SerialToDate(serial float64, sys System) (year, month, day int, ok bool) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) {
		return 0, 0, 0, false
	}
	serial = snapNearInteger(serial)
	intPart := int64(math.Floor(serial))

	if sys == System1904 {
		y, m, d := civilFromDays(epoch1904 + intPart)
		return y, m, d, true
	}

	switch {
	case intPart == 0:
		return 1900, 1, 0, true
	case intPart == 60:
		return 1900, 2, 29, true
	case intPart >= 1 && intPart <= 59:
		y, m, d := civilFromDays(epoch1900 + intPart - 1)
		return y, m, d, true
	case intPart >= 61:
		y, m, d := civilFromDays(epoch1900 + intPart - 2)
		return y, m, d, true
	default: // intPart < 0
		y, m, d := civilFromDays(epoch1900 + intPart - 1)
		return y, m, d, true
	}
}

// DateToSerial converts a (year, month, day) Gregorian date to its serial
// number — the inverse of [SerialToDate] (for real dates; the reverse of
// the (1900, 1, 0) sentinel is not meaningful and is not implemented).
func DateToSerial(year, month, day int, sys System) float64 {
	if sys == System1904 {
		return float64(daysFromCivil(year, month, day) - epoch1904)
	}
	if year == 1900 && month == 2 && day == 29 {
		return 60
	}
	off := daysFromCivil(year, month, day) - epoch1900
	if year < 1900 || (year == 1900 && month < 3) {
		return float64(off + 1)
	}
	return float64(off + 2)
}

// SerialToTime extracts the (hour, minute, second) time-of-day from a
// serial's fractional part. When roundSeconds is true the fractional day
// is rounded to the nearest whole second; otherwise it is truncated
// (callers displaying subsecond precision truncate here and extract the
// subsecond digits from the pre-truncation fraction themselves).
func SerialToTime(serial float64, roundSeconds bool) (hour, minute, second int) {
	serial = snapNearInteger(serial)
	frac := serial - math.Floor(serial)
	if frac < 0 {
		frac += 1
	}
	totalSeconds := frac * 86400
	var s int64
	if roundSeconds {
		s = int64(math.Round(totalSeconds))
	} else {
		s = int64(math.Trunc(totalSeconds))
	}
	if s >= 86400 {
		s = 86399
	}
	hour = int(s / 3600)
	minute = int((s % 3600) / 60)
	second = int(s % 60)
	return
}

// SerialToWeekday returns the 1-based weekday (1 = Sunday ... 7 =
// Saturday) for a serial number's date component. ok is false only for
// non-finite input.
//
// The 1900 system uses Excel's own convention directly: day 1
// (1900-01-01) is a Sunday, and the weekday cycles linearly through the
// phantom day 60 exactly as Excel's serial numbering does. The 1904
// system has no such quirk, so its weekday is the real Gregorian weekday.
func SerialToWeekday(serial float64, sys System) (weekday int, ok bool) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) {
		return 0, false
	}
	serial = snapNearInteger(serial)
	intPart := int64(math.Floor(serial))

	if sys != System1904 {
		wd := int(((intPart-1)%7 + 7) % 7)
		return wd + 1, true
	}

	y, m, d, ok := SerialToDate(serial, sys)
	if !ok {
		return 0, false
	}
	days := daysFromCivil(y, m, d)
	// 1970-01-01 (days == 0) is a Thursday; Sunday = 0 in this formula.
	wd := int(((days+4)%7 + 7) % 7)
	return wd + 1, true
}

// SerialToElapsedSeconds returns the total whole seconds represented by
// serial's fractional and integer parts combined — used by the elapsed
// time formatter ([h]/[hh], [m]/[mm], [s]/[ss]) before its own
// display-precision pre-rounding is applied.
func SerialToElapsedSeconds(serial float64) int64 {
	return int64(math.Floor(86400 * serial))
}

// SerialToElapsedMinutes returns SerialToElapsedSeconds(serial) / 60.
func SerialToElapsedMinutes(serial float64) int64 {
	return SerialToElapsedSeconds(serial) / 60
}

// SerialToElapsedHours returns SerialToElapsedSeconds(serial) / 3600.
func SerialToElapsedHours(serial float64) int64 {
	return SerialToElapsedSeconds(serial) / 3600
}
