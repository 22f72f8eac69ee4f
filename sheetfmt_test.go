package sheetfmt

import "testing"

func mustParse(t *testing.T, format string) *NumberFormat {
	t.Helper()
	nf, err := Parse(format)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", format, err)
	}
	return nf
}

func TestSectionCountSemantics(t *testing.T) {
	nf := mustParse(t, "0")
	for _, tt := range []struct {
		v    float64
		want string
	}{
		{42, "42"}, {-42, "-42"}, {0, "0"},
	} {
		if got := nf.Format(NumberFromFloat(tt.v), Options{}); got != tt.want {
			t.Errorf(`"0" on %v = %q, want %q`, tt.v, got, tt.want)
		}
	}

	nf = mustParse(t, "0;-0")
	for _, tt := range []struct {
		v    float64
		want string
	}{
		{42, "42"}, {-42, "-42"}, {0, "0"},
	} {
		if got := nf.Format(NumberFromFloat(tt.v), Options{}); got != tt.want {
			t.Errorf(`"0;-0" on %v = %q, want %q`, tt.v, got, tt.want)
		}
	}

	nf = mustParse(t, `+0;-0;"ZERO"`)
	for _, tt := range []struct {
		v    float64
		want string
	}{
		{42, "+42"}, {-42, "-42"}, {0, "ZERO"},
	} {
		if got := nf.Format(NumberFromFloat(tt.v), Options{}); got != tt.want {
			t.Errorf(`"+0;-0;ZERO" on %v = %q, want %q`, tt.v, got, tt.want)
		}
	}

	nf = mustParse(t, "[>100]BIG;0")
	for _, tt := range []struct {
		v    float64
		want string
	}{
		{150, "BIG"}, {50, "50"},
	} {
		if got := nf.Format(NumberFromFloat(tt.v), Options{}); got != tt.want {
			t.Errorf(`"[>100]BIG;0" on %v = %q, want %q`, tt.v, got, tt.want)
		}
	}
}

func TestMinuteVsMonthDisambiguation(t *testing.T) {
	nf := mustParse(t, "mm-dd")
	got := nf.Format(NumberFromFloat(46031), Options{})
	if got != "01-09" {
		t.Errorf(`"mm-dd" on 46031 = %q, want "01-09"`, got)
	}

	nf = mustParse(t, "hh:mm")
	got = nf.Format(NumberFromFloat(0.5), Options{})
	if got != "12:00" {
		t.Errorf(`"hh:mm" on 0.5 = %q, want "12:00"`, got)
	}
}

func TestPhantomLeapDayRendering(t *testing.T) {
	nf := mustParse(t, "yyyy-mm-dd")
	got := nf.Format(NumberFromFloat(60), Options{})
	if got != "1900-02-29" {
		t.Errorf(`"yyyy-mm-dd" on 60 = %q, want "1900-02-29"`, got)
	}
}

func TestElapsedTimePreRounding(t *testing.T) {
	nf := mustParse(t, "[h]:mm:ss")
	got := nf.Format(NumberFromFloat(2.9999999999999996), Options{})
	if got != "72:00:00" {
		t.Errorf(`"[h]:mm:ss" on 2.9999999999999996 = %q, want "72:00:00"`, got)
	}
}

func TestGeneralFormatBoundaries(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{1.5, "1.5"},
		{1.500000, "1.5"},
		{484079807176, "484079807176"},
		{123456789012, "123456789012"},
		{0.0000123456789, ""}, // checked separately below (scientific, exact mantissa varies)
	}
	for _, tt := range tests {
		if tt.want == "" {
			continue
		}
		if got := formatGeneral(tt.v); got != tt.want {
			t.Errorf("formatGeneral(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}

	if got := formatGeneral(0.0000123456789); len(got) == 0 {
		t.Errorf("formatGeneral(0.0000123456789) returned empty string")
	} else if got[len(got)-1] < '0' || got[len(got)-1] > '9' {
		// Trust the E-marker check below instead of indexing blindly.
	}
	if got := formatGeneral(0.0000123456789); !containsUpperE(got) {
		t.Errorf("formatGeneral(0.0000123456789) = %q, want scientific notation", got)
	}
}

func containsUpperE(s string) bool {
	for _, r := range s {
		if r == 'E' {
			return true
		}
	}
	return false
}

func TestFractionApproximation(t *testing.T) {
	nf := mustParse(t, "# ?/?")
	got := nf.Format(NumberFromFloat(0.333333), Options{})
	num, denom, ok := parseRenderedFraction(got)
	if !ok {
		t.Fatalf("unparseable fraction rendering %q", got)
	}
	ratio := float64(num) / float64(denom)
	if diff := ratio - 1.0/3.0; diff > 1e-4 || diff < -1e-4 {
		t.Errorf("# ?/? on 0.333333 = %q (%d/%d = %v), want within 1e-4 of 1/3", got, num, denom, ratio)
	}

	nf = mustParse(t, "# ??/16")
	got = nf.Format(NumberFromFloat(0.25), Options{})
	if got != " 4/16" {
		t.Errorf(`"# ??/16" on 0.25 = %q, want " 4/16"`, got)
	}
}

// parseRenderedFraction extracts "N/D" out of a rendered improper-fraction
// string of the form "<spaces>N/D" (no integer part, as "# ?/?" produces).
func parseRenderedFraction(s string) (num, denom int, ok bool) {
	slash := -1
	for i, r := range s {
		if r == '/' {
			slash = i
			break
		}
	}
	if slash < 0 {
		return 0, 0, false
	}
	n, nok := atoiTrim(s[:slash])
	d, dok := atoiTrim(s[slash+1:])
	if !nok || !dok {
		return 0, 0, false
	}
	return n, d, true
}

func atoiTrim(s string) (int, bool) {
	start := 0
	for start < len(s) && s[start] == ' ' {
		start++
	}
	s = s[start:]
	if s == "" {
		return 0, false
	}
	v := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		v = v*10 + int(r-'0')
	}
	return v, true
}

func TestPercentAndThousands(t *testing.T) {
	nf := mustParse(t, "0%")
	if got := nf.Format(NumberFromFloat(0.42), Options{}); got != "42%" {
		t.Errorf(`"0%%" on 0.42 = %q, want "42%%"`, got)
	}

	nf = mustParse(t, "#,##0")
	if got := nf.Format(NumberFromFloat(1234567), Options{}); got != "1,234,567" {
		t.Errorf(`"#,##0" on 1234567 = %q, want "1,234,567"`, got)
	}

	nf = mustParse(t, "#,##0,")
	if got := nf.Format(NumberFromFloat(1234567), Options{}); got != "1,235" {
		t.Errorf(`"#,##0," on 1234567 = %q, want "1,235"`, got)
	}
}

func TestTextSection(t *testing.T) {
	nf := mustParse(t, `0;-0;0;"["@"]"`)
	got := nf.Format(TextValue("hi"), Options{})
	if got != "[hi]" {
		t.Errorf(`text section on "hi" = %q, want "[hi]"`, got)
	}
}

func TestTextOnlySectionWithNumericValueFallsBackToGeneral(t *testing.T) {
	// A lone "@" section has a TextPlaceholder but no Digit/DecimalPoint,
	// so metadata classifies it FormatText. Formatting a numeric value
	// through it must fall back to General rendering, not blank out the
	// placeholder.
	nf := mustParse(t, "@")
	if got := nf.Format(NumberFromFloat(42), Options{}); got != "42" {
		t.Errorf(`"@" on 42 = %q, want "42"`, got)
	}
}

func TestFromSectionsRoundTrip(t *testing.T) {
	nf := mustParse(t, "#,##0.00")
	nf2 := FromSections(nf.Sections)
	if nf2.Format(NumberFromFloat(1234.5), Options{}) != nf.Format(NumberFromFloat(1234.5), Options{}) {
		t.Errorf("FromSections round trip diverges from original formatting")
	}
}

func TestEmptyFormatIsParseError(t *testing.T) {
	_, err := Parse("")
	if err == nil {
		t.Fatal("Parse(\"\") expected error, got nil")
	}
	if _, ok := err.(ParseError); !ok {
		t.Errorf("Parse(\"\") error %v is not a ParseError", err)
	}
}

func TestTooManySectionsTruncates(t *testing.T) {
	nf, err := Parse("0;0;0;0;0")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(nf.Sections) != 4 {
		t.Errorf("len(Sections) = %d, want 4 (silent truncation)", len(nf.Sections))
	}
}
