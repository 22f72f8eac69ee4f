package sheetfmt

import (
	"math"
	"strconv"
)

// elapsedBreakdown derives the carried (day, secondsOfDay, subSecondResidue)
// triple a serial number represents, per SPEC_FULL.md §4.G's elapsed-time
// rule: integer seconds = floor(86400·frac), subsecond residue
// u = 86400·frac - sec; when u is close enough to a whole second
// (> 0.9999) it carries into the second, and a second-count overflow
// carries into the day. day is a whole-day serial index (not wrapped to
// any calendar range), suitable for re-deriving the calendar date via
// calendar.SerialToDate(float64(day), ...).
func elapsedBreakdown(serial float64) (day int64, secOfDay int64, u float64) {
	d := int64(math.Floor(serial))
	frac := serial - math.Floor(serial)
	secF := math.Floor(86400 * frac)
	uu := 86400*frac - secF
	si := int64(secF)
	if uu > 0.9999 {
		si++
		uu = 0
	}
	if si >= 86400 {
		si -= 86400
		d++
	}
	return d, si, uu
}

// renderElapsedPart renders a bracketed [h]/[hh]/[m]/[mm]/[s]/[ss] part:
// an elapsed-time count that isn't wrapped modulo 24 hours (or 60
// minutes), since it's meant to total time across potentially many days.
func renderElapsedPart(p FormatPart, day, secOfDay int64, u float64) string {
	baseHour := secOfDay / 3600
	baseMin := (secOfDay % 3600) / 60
	baseSec := secOfDay % 60

	switch p.ElapsedKind {
	case ElapsedHours, ElapsedHours2:
		total := day*24 + baseHour
		return padElapsed(total, p.ElapsedKind == ElapsedHours2)

	case ElapsedMinutes, ElapsedMinutes2:
		total := (day*24+baseHour)*60 + baseMin
		return padElapsed(total, p.ElapsedKind == ElapsedMinutes2)

	case ElapsedSeconds, ElapsedSeconds2:
		secF := float64(baseSec) + u
		total := ((day*24+baseHour)*60+baseMin)*60 + int64(math.Round(secF))
		return padElapsed(total, p.ElapsedKind == ElapsedSeconds2)
	}
	return ""
}

func padElapsed(v int64, twoDigit bool) string {
	s := strconv.FormatInt(v, 10)
	if twoDigit && len(s) < 2 {
		s = "0" + s
	}
	return s
}
