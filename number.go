package sheetfmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// inlineLiteral is a literal run positioned among a section's integer
// digit placeholders, recorded at analysis time as a count of digit
// placeholders still to its right so the right-to-left integer layout can
// splice it back in at the correct spot.
type inlineLiteral struct {
	text      string
	fromRight int
}

// numAnalysis is the result of the single left-to-right scan over a
// non-date section's parts described in SPEC_FULL.md §4.F step 2.
type numAnalysis struct {
	prefix          []string
	intDigits       []DigitPlaceholder
	intInline       []inlineLiteral
	hasGroupSep     bool
	decDigits       []DigitPlaceholder
	percentCount    int
	commaScale      int
	suffix          []string
	hasDecimalPoint bool
}

func analyzeSection(parts []FormatPart) numAnalysis {
	var a numAnalysis

	lastDigitIdx := -1
	for i, p := range parts {
		if p.Kind == PartDigit {
			lastDigitIdx = i
		}
	}
	trailingCommaStart := len(parts)
	for i := lastDigitIdx + 1; i < len(parts); i++ {
		if parts[i].Kind == PartThousandsSeparator {
			a.commaScale++
			continue
		}
		trailingCommaStart = i
		break
	}

	lastIntDigitIdx := -1
	for i, p := range parts {
		if p.Kind == PartDecimalPoint {
			break
		}
		if p.Kind == PartDigit {
			lastIntDigitIdx = i
		}
	}

	sawAnyIntDigit := false
	inDecimal := false
	for i, p := range parts {
		if i >= lastDigitIdx+1 && i < trailingCommaStart && p.Kind == PartThousandsSeparator {
			continue // already counted as a trailing scale comma
		}
		switch p.Kind {
		case PartDigit:
			if !inDecimal {
				a.intDigits = append(a.intDigits, p.Digit)
				sawAnyIntDigit = true
			} else {
				a.decDigits = append(a.decDigits, p.Digit)
			}
		case PartDecimalPoint:
			a.hasDecimalPoint = true
			inDecimal = true
		case PartThousandsSeparator:
			if sawAnyIntDigit && !inDecimal {
				a.hasGroupSep = true
			}
		case PartPercent:
			a.percentCount++
		case PartLiteral, PartEscapedLiteral:
			switch {
			case !sawAnyIntDigit && !inDecimal:
				a.prefix = append(a.prefix, p.Text)
			case sawAnyIntDigit && !inDecimal && i < lastIntDigitIdx:
				a.intInline = append(a.intInline, inlineLiteral{
					text:      p.Text,
					fromRight: countIntDigitsAfter(parts, i, lastIntDigitIdx),
				})
			default:
				a.suffix = append(a.suffix, p.Text)
			}
		}
	}
	return a
}

func countIntDigitsAfter(parts []FormatPart, i, lastIntDigitIdx int) int {
	n := 0
	for j := i + 1; j <= lastIntDigitIdx; j++ {
		if parts[j].Kind == PartDigit {
			n++
		}
	}
	return n
}

// formatNumber renders v through a non-date, non-fraction section per
// SPEC_FULL.md §4.F. A section with a scientific marker is handed to
// formatScientific, which writes its own sign; otherwise the digits are
// laid out from |v| and sign handling happens in the caller (sheetfmt.go),
// consistent with the section selector already having decided whether a
// leading "-" is owed.
func formatNumber(sec *Section, v float64, loc *LocaleTable) string {
	for _, p := range sec.Parts {
		if p.Kind == PartScientific {
			return formatScientific(sec.Parts, v)
		}
	}
	if len(sec.Parts) == 0 {
		return formatGeneral(v)
	}

	hasDigitOrPoint := false
	hasTextPlaceholder := false
	for _, p := range sec.Parts {
		if p.Kind == PartDigit || p.Kind == PartDecimalPoint {
			hasDigitOrPoint = true
		}
		if p.Kind == PartTextPlaceholder {
			hasTextPlaceholder = true
		}
	}
	if !hasDigitOrPoint {
		if hasTextPlaceholder {
			return formatGeneral(v)
		}
		return renderLiteralsOnly(sec.Parts)
	}

	a := analyzeSection(sec.Parts)

	scaled := math.Abs(v)
	for i := 0; i < a.percentCount; i++ {
		scaled *= 100
	}
	for i := 0; i < a.commaScale; i++ {
		scaled /= 1000
	}

	places := len(a.decDigits)
	if places > 15 {
		places = 15
	}
	rounded := roundHalfAwayFromZero(scaled, places)
	intPart, fracPart := splitIntFrac(rounded, places)

	var sb strings.Builder
	for _, s := range a.prefix {
		sb.WriteString(s)
	}
	sb.WriteString(layoutInteger(intPart, a.intDigits, a.intInline, a.hasGroupSep, loc))
	if a.hasDecimalPoint {
		sb.WriteString(loc.DecimalSeparator)
		sb.WriteString(layoutDecimal(fracPart, a.decDigits))
	}
	for _, s := range a.suffix {
		sb.WriteString(s)
	}
	for i := 0; i < a.percentCount; i++ {
		sb.WriteString("%")
	}
	return sb.String()
}

func renderLiteralsOnly(parts []FormatPart) string {
	var sb strings.Builder
	for _, p := range parts {
		if p.Kind == PartLiteral || p.Kind == PartEscapedLiteral {
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}

// roundHalfAwayFromZero rounds v to places decimal digits, ties rounding
// away from zero — Excel's convention, unlike Go's round-half-to-even
// strconv formatting.
func roundHalfAwayFromZero(v float64, places int) float64 {
	mult := math.Pow(10, float64(places))
	scaled := v * mult
	if scaled >= 0 {
		return math.Floor(scaled+0.5) / mult
	}
	return math.Ceil(scaled-0.5) / mult
}

// splitIntFrac splits a non-negative rounded value into its integer part
// and a fractional part represented as an integer numerator over
// 10^places (e.g. 12.34 at places=2 returns (12, 34)).
func splitIntFrac(v float64, places int) (int64, int64) {
	mult := math.Pow(10, float64(places))
	total := int64(math.Round(v * mult))
	divisor := int64(mult)
	return total / divisor, total % divisor
}

// layoutInteger implements SPEC_FULL.md §4.F step 5: right-to-left digit
// emission with padding, thousands separators, and inline-literal
// splicing.
func layoutInteger(v int64, digits []DigitPlaceholder, inline []inlineLiteral, groupSep bool, loc *LocaleTable) string {
	zeroCount := 0
	padCount := 0 // '0' and '?' positions, both of which are always emitted
	for _, d := range digits {
		if d == DigitZero {
			zeroCount++
		}
		if d != DigitHash {
			padCount++
		}
	}

	valueDigits := strconv.FormatInt(v, 10)
	if v == 0 {
		valueDigits = ""
	}
	valueLen := len(valueDigits)

	if v == 0 && zeroCount == 0 && len(digits) == 0 {
		return applyInline("", inline, groupSep, loc)
	}

	width := maxInt(valueLen, padCount)
	if transitionCount(digits) > 1 {
		width = maxInt(valueLen, zeroCount) + valueLen
	}
	width = maxInt(width, 1)

	rendered := renderIntegerDigits(valueDigits, width, digits)
	return applyInline(rendered, inline, groupSep, loc)
}

// transitionCount counts how many times consecutive placeholder kinds
// differ, used to detect the "more than one transition between
// Zero/Hash/Question" complex-pattern case from §4.F step 5.
func transitionCount(digits []DigitPlaceholder) int {
	n := 0
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[i-1] {
			n++
		}
	}
	return n
}

// renderIntegerDigits right-aligns valueDigits within a field of the
// given width, filling the leading pad positions using the corresponding
// (right-aligned) placeholder's empty-character — '0' for Zero, a space
// for Question, and nothing at all (dropped) for Hash.
func renderIntegerDigits(valueDigits string, width int, digits []DigitPlaceholder) string {
	padLen := width - len(valueDigits)
	nPh := len(digits)

	var sb strings.Builder
	for i := 0; i < padLen; i++ {
		idxFromRight := width - 1 - i
		if idxFromRight < nPh {
			ph := digits[nPh-1-idxFromRight]
			if c := emptyChar(ph); c != 0 {
				sb.WriteByte(c)
			}
			continue
		}
		sb.WriteByte('0')
	}
	sb.WriteString(valueDigits)
	return sb.String()
}

func emptyChar(d DigitPlaceholder) byte {
	switch d {
	case DigitZero:
		return '0'
	case DigitQuestion:
		return ' '
	default:
		return 0 // DigitHash: nothing is printed
	}
}

// applyInline groups rendered (a digit/space string, possibly shorter
// than the nominal width because Hash positions dropped characters) and
// splices any inline literals back in at their recorded from-right
// position, counted against the actual digit characters present.
func applyInline(rendered string, inline []inlineLiteral, groupSep bool, loc *LocaleTable) string {
	if groupSep {
		rendered = insertThousands(rendered, loc.ThousandsSeparator)
	}
	if len(inline) == 0 {
		return rendered
	}
	runes := []rune(rendered)
	digitsTotal := 0
	for _, r := range runes {
		if r >= '0' && r <= '9' {
			digitsTotal++
		}
	}

	var sb strings.Builder
	digitsSeen := 0
	for _, r := range runes {
		sb.WriteRune(r)
		if r >= '0' && r <= '9' {
			digitsSeen++
			fromRight := digitsTotal - digitsSeen
			for _, il := range inline {
				if il.fromRight == fromRight {
					sb.WriteString(il.text)
				}
			}
		}
	}
	return sb.String()
}

func insertThousands(digits string, sep string) string {
	// Group only the contiguous trailing run of plain digit characters;
	// a leading pad of spaces (from Question placeholders) is left alone.
	firstDigit := len(digits)
	for i, r := range digits {
		if r >= '0' && r <= '9' {
			firstDigit = i
			break
		}
	}
	prefix, run := digits[:firstDigit], digits[firstDigit:]
	if len(run) <= 3 {
		return digits
	}
	var parts []string
	for len(run) > 3 {
		parts = append([]string{run[len(run)-3:]}, parts...)
		run = run[:len(run)-3]
	}
	parts = append([]string{run}, parts...)
	return prefix + strings.Join(parts, sep)
}

// layoutDecimal implements §4.F step 6: left-to-right rendering of the
// fractional numerator, trimming trailing Hash positions that would emit
// a zero and rendering Question positions as a space.
func layoutDecimal(frac int64, digits []DigitPlaceholder) string {
	if len(digits) == 0 {
		return ""
	}
	s := strconv.FormatInt(frac, 10)
	for len(s) < len(digits) {
		s = "0" + s
	}
	raw := []byte(s)

	end := len(raw)
	for end > 0 && digits[end-1] == DigitHash && raw[end-1] == '0' && allZero(raw[end:]) {
		end--
	}
	raw = raw[:end]

	out := make([]byte, 0, len(raw))
	for i, b := range raw {
		if digits[i] == DigitQuestion && b == '0' && allZero(raw[i:]) {
			out = append(out, ' ')
			continue
		}
		out = append(out, b)
	}
	return string(out)
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != '0' {
			return false
		}
	}
	return true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// formatBigNumber renders an arbitrary-precision integer (one whose
// magnitude exceeds the float64 safe-integer range) through the same
// placeholder layout as formatNumber's integer path, always rendering
// zero in the fractional portion. Grounded on shopspring/decimal's
// string-based arithmetic, the same library the teacher corpus's
// CalcMark sheet-formula engine uses for decimal-accurate rendering.
func formatBigNumber(sec *Section, digits string, loc *LocaleTable) string {
	d, err := decimal.NewFromString(digits)
	if err != nil {
		return digits
	}
	a := analyzeSection(sec.Parts)

	for i := 0; i < a.commaScale; i++ {
		d = d.Div(decimal.NewFromInt(1000))
	}
	d = d.Truncate(0)

	zeroCount := 0
	for _, dg := range a.intDigits {
		if dg == DigitZero {
			zeroCount++
		}
	}
	valueDigits := d.Abs().String()
	width := maxInt(len(valueDigits), zeroCount)

	var sb strings.Builder
	for _, s := range a.prefix {
		sb.WriteString(s)
	}
	rendered := renderIntegerDigits(valueDigits, width, a.intDigits)
	sb.WriteString(applyInline(rendered, a.intInline, a.hasGroupSep, loc))
	if a.hasDecimalPoint {
		sb.WriteString(loc.DecimalSeparator)
		sb.WriteString(layoutDecimal(0, a.decDigits))
	}
	for _, s := range a.suffix {
		sb.WriteString(s)
	}
	return sb.String()
}
