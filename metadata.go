package sheetfmt

// computeMetadata derives a [SectionMetadata] from a section's final part
// list (after fraction and subsecond post-passes) plus the is_hijri flag
// threaded through from bracket classification during parsing.
func computeMetadata(parts []FormatPart, isHijri bool) SectionMetadata {
	var md SectionMetadata
	md.IsHijri = isHijri

	var hasDate, hasElapsed, hasFraction, hasNumber, hasText bool

	for _, p := range parts {
		switch p.Kind {
		case PartAmPm:
			md.HasAmPm = true
		case PartElapsed:
			hasElapsed = true
			md.HasElapsedTime = true
			if u := elapsedUnit(p.ElapsedKind); u > md.SmallestTimeUnit {
				md.SmallestTimeUnit = u
			}
		case PartDatePart:
			hasDate = true
			if p.DateKind == DateSubSecond {
				md.HasSubsecond = true
				if p.SubSecondDigits > md.MaxSubsecondPrecision {
					md.MaxSubsecondPrecision = p.SubSecondDigits
				}
			}
			if u := dateUnit(p.DateKind); u > md.SmallestTimeUnit {
				md.SmallestTimeUnit = u
			}
		case PartFraction:
			hasFraction = true
		case PartDigit, PartDecimalPoint, PartScientific:
			hasNumber = true
		case PartTextPlaceholder:
			hasText = true
		}
	}

	switch {
	case hasDate || hasElapsed:
		md.FormatType = FormatDateTime
	case hasFraction:
		md.FormatType = FormatFraction
	case hasNumber:
		md.FormatType = FormatNumber
	case hasText:
		md.FormatType = FormatText
	default:
		md.FormatType = FormatGeneral
	}

	return md
}

func elapsedUnit(k ElapsedKind) SmallestTimeUnit {
	switch k {
	case ElapsedHours, ElapsedHours2:
		return UnitHours
	case ElapsedMinutes, ElapsedMinutes2:
		return UnitMinutes
	case ElapsedSeconds, ElapsedSeconds2:
		return UnitSeconds
	}
	return UnitNone
}

func dateUnit(k DateKind) SmallestTimeUnit {
	switch k {
	case DateHour, DateHour2, DateMinute, DateMinute2:
		// An hour token alone is recorded as UnitHours and a minute token
		// as UnitMinutes; computeMetadata keeps the finest unit seen, so a
		// section with both ends up at UnitMinutes.
		if k == DateMinute || k == DateMinute2 {
			return UnitMinutes
		}
		return UnitHours
	case DateSecond, DateSecond2:
		return UnitSeconds
	case DateSubSecond:
		return UnitSubseconds
	}
	return UnitNone
}
