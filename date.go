package sheetfmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/sheetfmt/sheetfmt/calendar"
)

const (
	minDateSerial = 0
	maxDateSerial = 2958465
)

// formatDate renders a date/time section for a serial-number value, per
// SPEC_FULL.md §4.G.
func formatDate(sec *Section, serial float64, sys calendar.System, loc *LocaleTable) (string, error) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) {
		return "", ErrInvalidSerialNumber{Value: serial}
	}
	if serial < minDateSerial || serial > maxDateSerial {
		return "", ErrDateOutOfRange{Serial: serial}
	}

	var year, month, day, hour, minute, second, subInt, weekday int
	var elapsedDay, elapsedSecOfDay int64
	var elapsedU float64

	if sec.Metadata.HasElapsedTime {
		elapsedDay, elapsedSecOfDay, elapsedU = elapsedBreakdown(serial)
		year, month, day, _ = calendar.SerialToDate(float64(elapsedDay), sys)
		if sec.Metadata.IsHijri {
			year, month, day = calendar.GregorianToHijri(year, month, day)
		}
		weekday, _ = calendar.SerialToWeekday(float64(elapsedDay), sys)
		hour = int(elapsedSecOfDay / 3600)
		minute = int((elapsedSecOfDay % 3600) / 60)
		second = int(elapsedSecOfDay % 60)
		if sec.Metadata.HasSubsecond {
			subInt = int(math.Round(elapsedU * math.Pow(10, float64(sec.Metadata.MaxSubsecondPrecision))))
		}
		return renderDateParts(sec, year, month, day, hour, minute, second, subInt, weekday, elapsedDay, elapsedSecOfDay, elapsedU, loc), nil
	}

	var ok bool
	year, month, day, ok = calendar.SerialToDate(serial, sys)
	if !ok {
		return "", nil
	}
	if sec.Metadata.IsHijri {
		year, month, day = calendar.GregorianToHijri(year, month, day)
	}

	var dayCarry int
	hour, minute, second, subInt, dayCarry = timeCascade(serial, sec.Metadata.SmallestTimeUnit, sec.Metadata.MaxSubsecondPrecision)
	if dayCarry > 0 {
		year, month, day, ok = calendar.SerialToDate(math.Floor(serial)+1, sys)
		if !ok {
			return "", nil
		}
		if sec.Metadata.IsHijri {
			year, month, day = calendar.GregorianToHijri(year, month, day)
		}
	}

	weekday, _ = calendar.SerialToWeekday(serial, sys)

	return renderDateParts(sec, year, month, day, hour, minute, second, subInt, weekday, 0, 0, 0, loc), nil
}

func renderDateParts(sec *Section, year, month, day, hour, minute, second, subInt, weekday int, elapsedDay, elapsedSecOfDay int64, elapsedU float64, loc *LocaleTable) string {
	var sb strings.Builder
	for _, p := range sec.Parts {
		switch p.Kind {
		case PartLiteral, PartEscapedLiteral:
			sb.WriteString(p.Text)
		case PartThousandsSeparator:
			sb.WriteString(",")
		case PartAmPm:
			sb.WriteString(renderAmPm(p.AmPmStyle, hour))
		case PartDatePart:
			sb.WriteString(renderDatePart(p, year, month, day, hour, minute, second, subInt, weekday, sec.Metadata.HasAmPm, loc))
		case PartElapsed:
			sb.WriteString(renderElapsedPart(p, elapsedDay, elapsedSecOfDay, elapsedU))
		}
	}
	return sb.String()
}

// timeCascade implements §4.G's pre-rounding cascade: the time-of-day
// fraction is rounded at the boundary of the smallest displayed unit,
// carrying up only through units that are actually shown. dayCarry is 1
// when rounding pushed the time past midnight into the next day.
func timeCascade(serial float64, smallest SmallestTimeUnit, subPrecision int) (hour, minute, second, subInt, dayCarry int) {
	frac := serial - math.Floor(serial)
	if frac < 0 {
		frac += 1
	}
	totalSecF := frac * 86400

	switch smallest {
	case UnitHours:
		totalHourF := totalSecF / 3600
		h := math.Round(totalHourF)
		if h >= 24 {
			dayCarry = 1
			h -= 24
		}
		return int(h), 0, 0, 0, dayCarry

	case UnitMinutes:
		totalMinF := totalSecF / 60
		m := math.Round(totalMinF)
		if m >= 1440 {
			dayCarry = 1
			m -= 1440
		}
		return int(m) / 60, int(m) % 60, 0, 0, dayCarry

	case UnitSeconds:
		s := math.Round(totalSecF)
		if s >= 86400 {
			dayCarry = 1
			s -= 86400
		}
		return int(s) / 3600, (int(s) % 3600) / 60, int(s) % 60, 0, dayCarry

	case UnitSubseconds:
		hour0 := math.Floor(totalSecF / 3600)
		rem := totalSecF - hour0*3600
		min0 := math.Floor(rem / 60)
		sec0 := rem - min0*60

		secWhole := int(math.Floor(sec0))
		secFrac := sec0 - float64(secWhole)
		threshold := 1 - 0.5*math.Pow(10, -float64(subPrecision))
		if secFrac >= threshold {
			secWhole++
			secFrac = 0
		}
		if secWhole >= 60 {
			secWhole = 0
			min0++
		}
		if min0 >= 60 {
			min0 = 0
			hour0++
		}
		if hour0 >= 24 {
			dayCarry = 1
			hour0 -= 24
		}
		sub := int(math.Round(secFrac * math.Pow(10, float64(subPrecision))))
		return int(hour0), int(min0), secWhole, sub, dayCarry

	default: // UnitNone
		s := math.Round(totalSecF)
		if s >= 86400 {
			dayCarry = 1
			s -= 86400
		}
		return int(s) / 3600, (int(s) % 3600) / 60, int(s) % 60, 0, dayCarry
	}
}

func renderAmPm(style AmPmStyle, hour int) string {
	pm := hour >= 12
	switch style {
	case AmPmUpper:
		if pm {
			return "PM"
		}
		return "AM"
	case AmPmLower:
		if pm {
			return "pm"
		}
		return "am"
	case AmPmShortUpper:
		if pm {
			return "P"
		}
		return "A"
	case AmPmShortLower:
		if pm {
			return "p"
		}
		return "a"
	case AmPmMalformedUpper:
		if pm {
			return "A1/P"
		}
		return "A0/P"
	case AmPmMalformedLower:
		if pm {
			return "a1/p"
		}
		return "a0/p"
	}
	return ""
}

func renderDatePart(p FormatPart, year, month, day, hour, minute, second, subInt, weekday int, hasAmPm bool, loc *LocaleTable) string {
	switch p.DateKind {
	case DateYear2:
		return pad2(year % 100)
	case DateYear3:
		return pad3(year % 1000)
	case DateYear4:
		return strconv.Itoa(year)
	case DateMonth:
		return strconv.Itoa(month)
	case DateMonth2:
		return pad2(month)
	case DateMonthAbbr:
		return monthName(loc.MonthShort, month)
	case DateMonthFull:
		return monthName(loc.MonthFull, month)
	case DateMonthLetter:
		name := monthName(loc.MonthFull, month)
		if name == "" {
			return ""
		}
		return name[:1]
	case DateDay:
		return strconv.Itoa(day)
	case DateDay2:
		return pad2(day)
	case DateDayAbbr:
		return dayName(loc.DayShort, weekday)
	case DateDayFull:
		return dayName(loc.DayFull, weekday)
	case DateHour:
		return strconv.Itoa(displayHour(hour, hasAmPm))
	case DateHour2:
		return pad2(displayHour(hour, hasAmPm))
	case DateMinute:
		return strconv.Itoa(minute)
	case DateMinute2:
		return pad2(minute)
	case DateSecond:
		return strconv.Itoa(second)
	case DateSecond2:
		return pad2(second)
	case DateSubSecond:
		s := strconv.Itoa(subInt)
		for len(s) < p.SubSecondDigits {
			s = "0" + s
		}
		if len(s) > p.SubSecondDigits {
			s = s[:p.SubSecondDigits]
		}
		return s
	case DateBuddhistYear2:
		return pad2(calendar.GregorianToBuddhist(year, false) % 100)
	case DateBuddhistYear4:
		return strconv.Itoa(calendar.GregorianToBuddhist(year, false))
	case DateBuddhistYear2Alt:
		return pad2(calendar.GregorianToBuddhist(year, true) % 100)
	case DateBuddhistYear4Alt:
		return strconv.Itoa(calendar.GregorianToBuddhist(year, true))
	}
	return ""
}

// displayHour converts a 24-hour value to 12-hour form when the section
// has an AM/PM placeholder: 0 becomes 12, 13..23 become 1..11.
func displayHour(hour int, hasAmPm bool) int {
	if !hasAmPm {
		return hour
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return h
}

func monthName(names [12]string, month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return names[month-1]
}

// dayName maps weekday (1=Sunday..7=Saturday, calendar.SerialToWeekday's
// convention) onto names, which is ordered Monday-first.
func dayName(names [7]string, weekday int) string {
	if weekday < 1 || weekday > 7 {
		return ""
	}
	return names[(weekday+5)%7]
}

func pad2(v int) string {
	s := strconv.Itoa(v)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

func pad3(v int) string {
	s := strconv.Itoa(v)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}
