package sheetfmt

import "testing"

func TestDateWeekdayName(t *testing.T) {
	// Serial 46031 is 2026-01-09, a Friday.
	nf := mustParse(t, "dddd")
	if got := nf.Format(NumberFromFloat(46031), Options{}); got != "Friday" {
		t.Errorf(`"dddd" on 46031 = %q, want "Friday"`, got)
	}

	nf = mustParse(t, "ddd")
	if got := nf.Format(NumberFromFloat(46031), Options{}); got != "Fri" {
		t.Errorf(`"ddd" on 46031 = %q, want "Fri"`, got)
	}
}

func TestDateMonthNames(t *testing.T) {
	nf := mustParse(t, "mmmm d, yyyy")
	if got := nf.Format(NumberFromFloat(46031), Options{}); got != "January 9, 2026" {
		t.Errorf(`"mmmm d, yyyy" on 46031 = %q, want "January 9, 2026"`, got)
	}

	nf = mustParse(t, "mmm")
	if got := nf.Format(NumberFromFloat(46031), Options{}); got != "Jan" {
		t.Errorf(`"mmm" on 46031 = %q, want "Jan"`, got)
	}
}

func TestDateAmPmDisplayHour(t *testing.T) {
	nf := mustParse(t, "h:mm AM/PM")
	if got := nf.Format(NumberFromFloat(0.0), Options{}); got != "12:00 AM" {
		t.Errorf(`"h:mm AM/PM" on 0.0 = %q, want "12:00 AM"`, got)
	}
	if got := nf.Format(NumberFromFloat(0.5), Options{}); got != "12:00 PM" {
		t.Errorf(`"h:mm AM/PM" on 0.5 = %q, want "12:00 PM"`, got)
	}
	// 13:00 in 24-hour form displays as 1 PM.
	if got := nf.Format(NumberFromFloat(46031.5416666666), Options{}); got != "1:00 PM" {
		t.Errorf(`"h:mm AM/PM" on 46031.5416666666 = %q, want "1:00 PM"`, got)
	}
}

func TestDateOutOfRangeIsFormatError(t *testing.T) {
	nf := mustParse(t, "yyyy-mm-dd")
	_, err := nf.TryFormat(NumberFromFloat(-1), Options{})
	if err == nil {
		t.Fatal("TryFormat(-1) expected error, got nil")
	}
	if _, ok := err.(FormatError); !ok {
		t.Errorf("TryFormat(-1) error %v is not a FormatError", err)
	}

	// Format never propagates the error, falling back to General.
	got := nf.Format(NumberFromFloat(-1), Options{})
	if got == "" {
		t.Errorf("Format(-1) = %q, want a non-empty General fallback", got)
	}
}

func TestDateTwoDigitYear(t *testing.T) {
	nf := mustParse(t, "yy-mm-dd")
	if got := nf.Format(NumberFromFloat(46031), Options{}); got != "26-01-09" {
		t.Errorf(`"yy-mm-dd" on 46031 = %q, want "26-01-09"`, got)
	}
}
