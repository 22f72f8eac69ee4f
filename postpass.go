package sheetfmt

// detectFractions scans a section's parts for the pattern
// [integer-digits] " " numerator-digits "/" denominator, rewriting any
// match into a single PartFraction. The slash itself is lexed as a plain
// literal "/" (see parser.go); this pass is what gives it its special
// meaning, matching SPEC_FULL.md's description of fractions as detected
// rather than parsed inline.
func detectFractions(parts []FormatPart) []FormatPart {
	out := make([]FormatPart, 0, len(parts))
	i := 0
	for i < len(parts) {
		if isSlashLiteral(parts[i]) {
			if frac, back, fwd, ok := tryMatchFraction(out, parts, i); ok {
				out = out[:len(out)-back]
				out = append(out, frac)
				i += 1 + fwd
				continue
			}
		}
		out = append(out, parts[i])
		i++
	}
	return out
}

func isSlashLiteral(p FormatPart) bool {
	return p.Kind == PartLiteral && p.Text == "/"
}

func isDigitPart(p FormatPart) bool {
	return p.Kind == PartDigit
}

func isSpaceLiteral(p FormatPart) bool {
	return p.Kind == PartLiteral && p.Text == " "
}

func isLiteralDigitChar(p FormatPart) bool {
	return p.Kind == PartLiteral && len(p.Text) == 1 && p.Text[0] >= '0' && p.Text[0] <= '9'
}

// tryMatchFraction attempts to build a PartFraction ending at parts[slashIdx].
// before is the already-emitted output slice (so the numerator and any
// mixed-integer run are found by scanning it backwards); parts/slashIdx
// index into the still-unprocessed input so the denominator can be found
// by scanning forwards. It returns how many trailing elements of before
// the match consumed and how many elements of parts (after the slash) it
// consumed.
func tryMatchFraction(before []FormatPart, parts []FormatPart, slashIdx int) (FormatPart, int, int, bool) {
	back := 0
	spaceBefore := 0
	for back < len(before) && isSpaceLiteral(before[len(before)-1-back]) {
		spaceBefore++
		back++
	}

	numStart := len(before) - back
	numRun := 0
	for numStart-numRun-1 >= 0 && isDigitPart(before[numStart-numRun-1]) {
		numRun++
	}
	if numRun == 0 {
		return FormatPart{}, 0, 0, false
	}
	back += numRun

	integerDigits := 0
	afterNumBack := back
	if afterNumBack < len(before) && isSpaceLiteral(before[len(before)-1-afterNumBack]) {
		sepIdx := len(before) - 1 - afterNumBack
		intRun := 0
		for sepIdx-intRun-1 >= 0 && isDigitPart(before[sepIdx-intRun-1]) {
			intRun++
		}
		if intRun > 0 {
			integerDigits = intRun
			back += 1 + intRun // the separating space plus the integer run
		}
	}

	fwd := 0
	spaceAfter := 0
	for slashIdx+1+fwd < len(parts) && isSpaceLiteral(parts[slashIdx+1+fwd]) {
		spaceAfter++
		fwd++
	}

	denomStart := slashIdx + 1 + fwd
	var denom FractionDenom
	if denomStart < len(parts) && isDigitPart(parts[denomStart]) {
		n := 0
		for denomStart+n < len(parts) && isDigitPart(parts[denomStart+n]) {
			n++
		}
		denom = FractionDenom{Kind: FractionDenomUpToDigits, Digits: n}
		fwd += n
	} else if denomStart < len(parts) && isLiteralDigitChar(parts[denomStart]) {
		n := 0
		var value uint32
		for denomStart+n < len(parts) && isLiteralDigitChar(parts[denomStart+n]) {
			value = value*10 + uint32(parts[denomStart+n].Text[0]-'0')
			n++
		}
		denom = FractionDenom{Kind: FractionDenomFixed, Fixed: value}
		fwd += n
	} else {
		return FormatPart{}, 0, 0, false
	}

	part := FormatPart{
		Kind:                     PartFraction,
		FractionIntegerDigits:    integerDigits,
		FractionNumeratorDigits:  numRun,
		FractionDenom:            denom,
		FractionSpaceBeforeSlash: spaceBefore,
		FractionSpaceAfterSlash:  spaceAfter,
	}
	return part, back, fwd, true
}

// detectSubseconds scans a section containing any date part for a
// DecimalPoint immediately followed by a run of Zero digit placeholders,
// rewriting the pair into a Literal "." plus a SubSecond DatePart. This
// subsumes the narrower "Hour/Second followed directly by a fractional
// point" case — both are the same pattern, so a single post-pass handles
// both instead of duplicating the check inline during per-token parsing.
func detectSubseconds(parts []FormatPart) []FormatPart {
	if !hasAnyDatePart(parts) {
		return parts
	}
	out := make([]FormatPart, 0, len(parts))
	i := 0
	for i < len(parts) {
		if parts[i].Kind == PartDecimalPoint {
			n := 0
			for i+1+n < len(parts) && parts[i+1+n].Kind == PartDigit && parts[i+1+n].Digit == DigitZero {
				n++
			}
			if n > 0 {
				out = append(out, FormatPart{Kind: PartLiteral, Text: "."})
				out = append(out, FormatPart{Kind: PartDatePart, DateKind: DateSubSecond, SubSecondDigits: n})
				i += 1 + n
				continue
			}
		}
		out = append(out, parts[i])
		i++
	}
	return out
}

func hasAnyDatePart(parts []FormatPart) bool {
	for _, p := range parts {
		if p.Kind == PartDatePart {
			return true
		}
	}
	return false
}
