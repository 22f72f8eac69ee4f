package sheetfmt

import "math/big"

// ValueKind tags the variant held by a [Value].
type ValueKind int

const (
	ValueEmpty ValueKind = iota
	ValueNumber
	ValueText
	ValueBool
)

// safeIntLimit is the largest magnitude integer exactly representable as
// a float64 (2^53 - 1). Values outside this range take the big-value
// decimal-string path (see formatBigNumber in number.go) instead of the float64
// number-formatter path.
const safeIntLimit = 1<<53 - 1

// Value is the input to [NumberFormat.Format]: a spreadsheet cell value,
// which is always one of a number (carrying either a plain number or a
// date serial), text, a boolean, or empty.
//
// Value is a thin adapter over the host's own value representation — see
// SPEC_FULL.md §4.M. Construct one with [NumberFromFloat],
// [NumberFromInt], [NumberFromBigInt], [TextValue], or [BoolValue]; the zero Value
// is [ValueEmpty].
type Value struct {
	Kind ValueKind

	Number    float64
	BigDigits string // unsigned decimal digit string, valid when Big
	BigNeg    bool
	Big       bool // true when Number is not a faithful representation and BigDigits must be used

	TextVal string
	BoolVal bool
}

// NumberFromFloat wraps a plain float64 value (a number or a date serial).
func NumberFromFloat(v float64) Value {
	return Value{Kind: ValueNumber, Number: v}
}

// NumberFromInt wraps a machine integer.
func NumberFromInt(v int64) Value {
	return Value{Kind: ValueNumber, Number: float64(v)}
}

// NumberFromBigInt wraps an arbitrary-precision integer. When v's
// magnitude exceeds 2^53-1, the returned Value is flagged so the number
// formatter renders it through the big-value decimal-string path (always
// zero in the fractional portion) instead of converting it to float64.
func NumberFromBigInt(v *big.Int) Value {
	abs := new(big.Int).Abs(v)
	limit := big.NewInt(safeIntLimit)
	if abs.Cmp(limit) <= 0 {
		f, _ := new(big.Float).SetInt(v).Float64()
		return Value{Kind: ValueNumber, Number: f}
	}
	return Value{
		Kind:      ValueNumber,
		Number:    mustBigFloat(v),
		Big:       true,
		BigDigits: abs.String(),
		BigNeg:    v.Sign() < 0,
	}
}

func mustBigFloat(v *big.Int) float64 {
	f, _ := new(big.Float).SetInt(v).Float64()
	return f
}

// TextValue wraps a text value.
func TextValue(v string) Value {
	return Value{Kind: ValueText, TextVal: v}
}

// BoolValue wraps a boolean value. Boolean values map to 1.0/0.0 when
// routed through a numeric section.
func BoolValue(v bool) Value {
	return Value{Kind: ValueBool, BoolVal: v}
}

// AsNumber returns the numeric interpretation of v: the number itself for
// ValueNumber, 1.0/0.0 for ValueBool, and 0 for ValueText/ValueEmpty.
func (v Value) AsNumber() float64 {
	switch v.Kind {
	case ValueNumber:
		return v.Number
	case ValueBool:
		if v.BoolVal {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// Options configures a single [NumberFormat.Format] / [NumberFormat.TryFormat]
// call.
type Options struct {
	// DateSystem selects the 1900 or 1904 epoch. See calendar.System.
	DateSystem int
	// Locale supplies separators, month/day names, and currency symbol.
	// The zero value is treated as [locale.Default].
	Locale *LocaleTable
}

// LocaleTable mirrors locale.Locale without importing the locale package
// from the root package (avoiding an import cycle); [Options.Locale]
// accepts a *LocaleTable built via locale.Default() or a custom locale
// converted with locale.Table().
type LocaleTable struct {
	DecimalSeparator   string
	ThousandsSeparator string
	CurrencySymbol     string
	MonthShort         [12]string
	MonthFull          [12]string
	DayShort           [7]string
	DayFull            [7]string
	AmPmUpper          [2]string // [AM, PM]
	AmPmLower          [2]string // [am, pm]
}
