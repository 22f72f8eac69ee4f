package sheetfmt

// FormatType classifies a [Section] by the kind of rendering it performs.
// It is computed once at parse time and drives dispatch in the formatter.
type FormatType int

const (
	FormatGeneral FormatType = iota
	FormatDateTime
	FormatNumber
	FormatFraction
	FormatText
)

// SmallestTimeUnit is the finest time granularity a date/time [Section]
// actually displays. It has a total order — None < Hours < Minutes <
// Seconds < Subseconds — used by the date formatter to decide how far
// down the pre-rounding cascade (subsecond → second → minute → hour) has
// to run before rendering.
type SmallestTimeUnit int

const (
	UnitNone SmallestTimeUnit = iota
	UnitHours
	UnitMinutes
	UnitSeconds
	UnitSubseconds
)

// SectionMetadata is pre-computed once during parsing so the formatter
// never has to re-scan a section's parts to answer these questions.
type SectionMetadata struct {
	HasAmPm               bool
	HasElapsedTime        bool
	IsHijri               bool
	HasSubsecond          bool
	MaxSubsecondPrecision int // valid when HasSubsecond
	SmallestTimeUnit      SmallestTimeUnit
	FormatType            FormatType
}

// Section is one ";"-delimited clause of a format string.
type Section struct {
	Condition *Condition
	Color     *Color
	Parts     []FormatPart
	Metadata  SectionMetadata
}

// HasNumericParts reports whether the section contains any part that
// renders a digit of a number (placeholder, decimal point, fraction, or
// scientific marker). Used by sign-handling rules in the section
// selector and number formatter.
func (s Section) HasNumericParts() bool {
	for _, p := range s.Parts {
		switch p.Kind {
		case PartDigit, PartDecimalPoint, PartFraction, PartScientific:
			return true
		}
	}
	return false
}

// HasOnlyTextPlaceholder reports whether the section's parts are exactly
// a single TextPlaceholder with no literals and no numeric parts — used
// by the zero-section fallback rule in the section selector.
func (s Section) HasOnlyTextPlaceholder() bool {
	if len(s.Parts) != 1 {
		return false
	}
	return s.Parts[0].Kind == PartTextPlaceholder
}

// NumberFormat is the compiled artifact produced by [Parse]: an ordered
// list of at most four sections, immutable after construction.
type NumberFormat struct {
	Sections []Section
	Raw      string
}

// FromSections builds a NumberFormat directly from an existing slice of
// sections, e.g. ones obtained from another NumberFormat's Sections
// field. It performs no further validation or metadata computation —
// the sections are assumed to already be fully formed.
func FromSections(sections []Section) *NumberFormat {
	return &NumberFormat{Sections: sections}
}

// IsDateFormat reports whether any section of nf is a date/time section.
func (nf *NumberFormat) IsDateFormat() bool {
	for _, s := range nf.Sections {
		if s.Metadata.FormatType == FormatDateTime {
			return true
		}
	}
	return false
}

// IsTextFormat reports whether any section of nf is a text section: one
// with a text placeholder and no digit, date or fraction part, in any
// position.
func (nf *NumberFormat) IsTextFormat() bool {
	for _, s := range nf.Sections {
		if s.Metadata.FormatType == FormatText {
			return true
		}
	}
	return false
}

// IsPercentage reports whether any section contains a '%' part.
func (nf *NumberFormat) IsPercentage() bool {
	for _, s := range nf.Sections {
		for _, p := range s.Parts {
			if p.Kind == PartPercent {
				return true
			}
		}
	}
	return false
}

// HasColor reports whether any section carries a color tag.
func (nf *NumberFormat) HasColor() bool {
	for _, s := range nf.Sections {
		if s.Color != nil {
			return true
		}
	}
	return false
}

// HasCondition reports whether any section carries a conditional guard.
func (nf *NumberFormat) HasCondition() bool {
	for _, s := range nf.Sections {
		if s.Condition != nil {
			return true
		}
	}
	return false
}
