package sheetfmt

// selection is the result of choosing which section of a [NumberFormat]
// renders a given value.
type selection struct {
	Section     *Section
	UseAbsValue bool
}

// selectSection implements the section-selection rules of SPEC_FULL.md
// §4.E: conditional sections take priority over plain count-based
// selection, and text values always route to a dedicated fourth section
// when one exists.
func selectSection(nf *NumberFormat, v Value) selection {
	if v.Kind == ValueText {
		if len(nf.Sections) >= 4 {
			return selection{Section: &nf.Sections[3]}
		}
		return selection{}
	}

	num := v.AsNumber()

	if nf.HasCondition() {
		return selectByCondition(nf, num)
	}
	return selectByCount(nf, num)
}

func selectByCondition(nf *NumberFormat, num float64) selection {
	for i := range nf.Sections {
		cond := nf.Sections[i].Condition
		if cond == nil {
			continue
		}
		if cond.Evaluate(num) {
			return selection{Section: &nf.Sections[i], UseAbsValue: cond.IsStrictMatch(num)}
		}
	}
	for i := range nf.Sections {
		if nf.Sections[i].Condition == nil {
			return selection{Section: &nf.Sections[i]}
		}
	}
	return selection{Section: &nf.Sections[len(nf.Sections)-1]}
}

func selectByCount(nf *NumberFormat, num float64) selection {
	switch len(nf.Sections) {
	case 0:
		return selection{}
	case 1:
		return selection{Section: &nf.Sections[0]}
	case 2:
		if num < 0 {
			return selection{Section: &nf.Sections[1]}
		}
		return selection{Section: &nf.Sections[0]}
	default: // 3 or 4: [positive, negative, zero, (text)]
		switch {
		case num > 0:
			return selection{Section: &nf.Sections[0]}
		case num < 0:
			return selection{Section: &nf.Sections[1]}
		default:
			zero := &nf.Sections[2]
			if zero.HasOnlyTextPlaceholder() {
				return selection{Section: &nf.Sections[0]}
			}
			return selection{Section: zero}
		}
	}
}

// wantsLeadingMinus reports whether the formatter must prepend "-" itself
// for a negative numeric value rendered through sec (as opposed to the
// section's own Fraction/Scientific parts generating their own sign, or a
// later section already being the dedicated negative clause).
func wantsLeadingMinus(sec *Section, numSectionCount int) bool {
	if numSectionCount >= 2 {
		// section 2 (and the zero/text sections in 3-4 section formats)
		// is responsible for its own sign presentation.
		return false
	}
	for _, p := range sec.Parts {
		if p.Kind == PartFraction || p.Kind == PartScientific {
			return false
		}
	}
	if sec.HasNumericParts() {
		return true
	}
	return len(sec.Parts) == 1 && sec.Parts[0].Kind == PartLiteral && len(sec.Parts[0].Text) == 1
}
