package sheetfmt

import (
	"math"
	"strconv"
	"strings"
)

// formatFraction renders v through a section containing a single
// Fraction part, per SPEC_FULL.md §4.H.
func formatFraction(part FormatPart, v float64) string {
	neg := v < 0
	abs := math.Abs(v)

	mixed := part.FractionIntegerDigits > 0
	var intPart int64
	var frac float64
	if mixed {
		intPart = int64(math.Trunc(abs))
		frac = abs - float64(intPart)
	} else {
		frac = abs
	}

	num, denom := approximateFraction(frac, abs, mixed, part.FractionDenom)

	if mixed && num >= denom && denom > 0 {
		intPart += num / denom
		num %= denom
	}

	numStr := strconv.FormatInt(num, 10)
	denomStr := strconv.FormatInt(denom, 10)

	var ri int
	if mixed {
		ri = minInt(maxInt(len(numStr), len(denomStr)), 7)
	} else {
		ri = minInt(len(denomStr), 7)
	}

	var sb strings.Builder
	if neg {
		sb.WriteString("-")
	}

	// A mixed fraction with a zero integer part drops both the integer
	// digit and its separator space entirely, rendering as a plain
	// fraction — Excel never shows a literal leading "0" before a
	// fraction's whole-number placeholder.
	if mixed && intPart != 0 {
		if num == 0 {
			sb.WriteString(strconv.FormatInt(intPart, 10))
			// numerator pad + slash + denominator pad + both surrounding spaces
			blank := ri + 1 + ri + part.FractionSpaceBeforeSlash + part.FractionSpaceAfterSlash
			sb.WriteString(" ")
			sb.WriteString(strings.Repeat(" ", blank))
		} else {
			sb.WriteString(strconv.FormatInt(intPart, 10))
			sb.WriteString(" ")
			sb.WriteString(padLeft(numStr, ri))
			sb.WriteString(strings.Repeat(" ", part.FractionSpaceBeforeSlash))
			sb.WriteString("/")
			sb.WriteString(strings.Repeat(" ", part.FractionSpaceAfterSlash))
			sb.WriteString(padRightFraction(denomStr, ri, part.FractionDenom))
		}
	} else {
		sb.WriteString(padLeftFraction(numStr, part.FractionNumeratorDigits))
		sb.WriteString(strings.Repeat(" ", part.FractionSpaceBeforeSlash))
		sb.WriteString("/")
		sb.WriteString(strings.Repeat(" ", part.FractionSpaceAfterSlash))
		sb.WriteString(padRightFraction(denomStr, ri, part.FractionDenom))
	}
	return sb.String()
}

// approximateFraction computes (numerator, denominator) for either a
// fixed denominator or a continued-fraction search bounded by
// FractionDenom.Digits, operating on frac for mixed fractions and abs for
// improper ones.
func approximateFraction(frac, abs float64, mixed bool, denomSpec FractionDenom) (int64, int64) {
	target := abs
	if mixed {
		target = frac
	}

	if denomSpec.Kind == FractionDenomFixed {
		d := int64(denomSpec.Fixed)
		if d <= 0 {
			d = 1
		}
		return int64(math.Round(target * float64(d))), d
	}

	maxDenom := int64(math.Pow(10, float64(minInt(denomSpec.Digits, 7)))) - 1
	if maxDenom < 1 {
		maxDenom = 1
	}
	num, denom, ok := continuedFraction(target, maxDenom)
	if !ok {
		// Fall back to a small fixed denominator approximation.
		denom = 10
		num = int64(math.Round(target * float64(denom)))
	}
	return num, denom
}

// continuedFraction finds the best rational approximation p/q to target
// with q <= maxDenom, via the standard continued-fraction convergent
// algorithm, stopping early once the residual is smaller than 1e-10 or
// the iteration cap is hit.
func continuedFraction(target float64, maxDenom int64) (num, denom int64, ok bool) {
	if target == 0 {
		return 0, 1, true
	}
	h0, h1 := int64(0), int64(1)
	k0, k1 := int64(1), int64(0)
	x := target
	for i := 0; i < 20; i++ {
		a := int64(math.Floor(x))
		h2 := a*h1 + h0
		k2 := a*k1 + k0
		if k2 > maxDenom {
			break
		}
		h0, h1 = h1, h2
		k0, k1 = k1, k2
		if math.Abs(x-float64(a)) < 1e-10 {
			break
		}
		residual := target - float64(h1)/float64(k1)
		if math.Abs(residual) < 1e-10 {
			break
		}
		frac := x - float64(a)
		if frac == 0 {
			break
		}
		x = 1 / frac
	}
	if k1 == 0 {
		return 0, 0, false
	}
	return h1, k1, true
}

func padLeft(s string, width int) string {
	for len(s) < width {
		s = " " + s
	}
	return s
}

func padLeftFraction(s string, placeholders int) string {
	for len(s) < placeholders {
		s = " " + s
	}
	return s
}

func padRightFraction(s string, width int, spec FractionDenom) string {
	if spec.Kind == FractionDenomFixed {
		return s
	}
	for len(s) < width {
		s = s + " "
	}
	return s
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
