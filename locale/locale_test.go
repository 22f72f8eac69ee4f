package locale

import "testing"

func TestDefaultLocale(t *testing.T) {
	l := Default()
	if l.Code != "en-US" {
		t.Errorf("Default().Code = %q, want %q", l.Code, "en-US")
	}
	if l.DecimalSeparator != "." {
		t.Errorf("Default().DecimalSeparator = %q, want %q", l.DecimalSeparator, ".")
	}
	if l.MonthFull[0] != "January" {
		t.Errorf("Default().MonthFull[0] = %q, want %q", l.MonthFull[0], "January")
	}
	if l.DayShort[6] != "Sun" {
		t.Errorf("Default().DayShort[6] = %q, want %q", l.DayShort[6], "Sun")
	}
}

func TestLocaleTablePointerUsableAsOptions(t *testing.T) {
	l := Default()
	tbl := l.Table()
	if tbl.CurrencySymbol != "$" {
		t.Errorf("Table().CurrencySymbol = %q, want %q", tbl.CurrencySymbol, "$")
	}
}
