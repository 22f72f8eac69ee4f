// Package sheetfmt compiles and evaluates Excel/ECMA-376 number-format
// strings: the mini-language behind a cell's "Format Cells" dialog, such
// as "#,##0.00", "m/d/yyyy", or "[Red](#,##0);[Blue]#,##0".
//
// # Quick start
//
//	nf, err := sheetfmt.Parse("#,##0.00;[Red](#,##0.00)")
//	if err != nil {
//		log.Fatal(err)
//	}
//	out := nf.Format(sheetfmt.NumberFromFloat(-1234.5), sheetfmt.Options{})
//	// out == "(1,234.50)"
//
// Parsing happens once per distinct format string; [Parse] compiles a
// format string into a [NumberFormat] that can then be used to render any
// number of values cheaply. Callers formatting many cells that share a
// handful of format strings (the common case across a worksheet) should
// memoize the *NumberFormat via the cache subpackage.
//
// sheetfmt models two disjoint failure modes. [Parse] returns a
// [ParseError] when a format string can't be compiled — a malformed
// format string is a caller bug and is never silently patched over.
// Rendering, by contrast, is infallible through [NumberFormat.Format]:
// any internal [FormatError] (an out-of-range date serial, for instance)
// degrades to the General fallback instead of panicking or propagating.
// [NumberFormat.TryFormat] exposes the fallible path for callers that
// want to detect degraded output.
package sheetfmt

import (
	"strings"

	"github.com/sheetfmt/sheetfmt/calendar"
)

// Format renders v through nf according to opts, never returning an
// error: any internal failure (an out-of-range date serial, a malformed
// section) degrades to the General-format rendering of the value's
// numeric interpretation. Use [NumberFormat.TryFormat] to observe the
// underlying error instead.
func (nf *NumberFormat) Format(v Value, opts Options) string {
	s, err := nf.TryFormat(v, opts)
	if err == nil {
		return s
	}
	return formatGeneral(v.AsNumber())
}

// TryFormat renders v through nf according to opts. It returns a
// [FormatError] when the section chosen for v cannot render it (for
// example, a date section asked to format an out-of-range serial).
func (nf *NumberFormat) TryFormat(v Value, opts Options) (string, error) {
	if len(nf.Sections) == 0 {
		return formatGeneral(v.AsNumber()), nil
	}

	loc := opts.Locale
	if loc == nil {
		loc = defaultLocaleTable()
	}
	sys := calendar.System(opts.DateSystem)

	sel := selectSection(nf, v)
	if sel.Section == nil {
		return "", nil
	}
	sec := sel.Section

	if v.Kind == ValueText {
		return renderText(sec, v.TextVal), nil
	}

	num := v.AsNumber()
	if sel.UseAbsValue {
		if num < 0 {
			num = -num
		}
	}

	switch sec.Metadata.FormatType {
	case FormatDateTime:
		out, err := formatDate(sec, num, sys, loc)
		if err != nil {
			return "", err
		}
		return out, nil

	case FormatFraction:
		for _, p := range sec.Parts {
			if p.Kind == PartFraction {
				return withSign(sec, nf, num, formatFraction(p, num)), nil
			}
		}
		return withSign(sec, nf, num, formatGeneral(num)), nil

	case FormatNumber:
		if v.Big {
			return withSign(sec, nf, num, formatBigNumber(sec, v.BigDigits, loc)), nil
		}
		return withSign(sec, nf, num, formatNumber(sec, num, loc)), nil

	case FormatText:
		// v.Kind == ValueText already returned above; a numeric/bool value
		// reaching a text-only section (no Digit/DecimalPoint, just a
		// TextPlaceholder) falls back to General instead of rendering the
		// placeholder as empty.
		return formatGeneral(num), nil

	default: // FormatGeneral
		if v.Big {
			return withSign(sec, nf, num, formatBigNumber(sec, v.BigDigits, loc)), nil
		}
		if len(sec.Parts) == 0 {
			return formatGeneral(num), nil
		}
		return withSign(sec, nf, num, renderLiteralsOnly(sec.Parts)), nil
	}
}

// withSign prepends "-" when sec is the single positive/default section
// of a format that has no dedicated negative clause and num is negative.
func withSign(sec *Section, nf *NumberFormat, num float64, rendered string) string {
	if num < 0 && wantsLeadingMinus(sec, len(nf.Sections)) {
		return "-" + rendered
	}
	return rendered
}

func renderText(sec *Section, text string) string {
	var sb strings.Builder
	for _, p := range sec.Parts {
		switch p.Kind {
		case PartLiteral, PartEscapedLiteral:
			sb.WriteString(p.Text)
		case PartTextPlaceholder:
			sb.WriteString(text)
		}
	}
	return sb.String()
}

func defaultLocaleTable() *LocaleTable {
	return &LocaleTable{
		DecimalSeparator:   ".",
		ThousandsSeparator: ",",
		CurrencySymbol:     "$",
		MonthShort: [12]string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		MonthFull: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		DayShort: [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		DayFull: [7]string{
			"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
		},
		AmPmUpper: [2]string{"AM", "PM"},
		AmPmLower: [2]string{"am", "pm"},
	}
}
