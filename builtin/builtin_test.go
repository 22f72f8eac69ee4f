package builtin

import "testing"

func TestLookupKnownID(t *testing.T) {
	got, err := Lookup(3, "")
	if err != nil {
		t.Fatalf("Lookup(3, \"\") error: %v", err)
	}
	if got != "#,##0" {
		t.Errorf("Lookup(3, \"\") = %q, want %q", got, "#,##0")
	}
}

func TestLookupCustomOverride(t *testing.T) {
	got, err := Lookup(170, "0.0000")
	if err != nil {
		t.Fatalf("Lookup(170, ...) error: %v", err)
	}
	if got != "0.0000" {
		t.Errorf("Lookup(170, \"0.0000\") = %q, want the custom string back", got)
	}
}

func TestLookupUnknownID(t *testing.T) {
	_, err := Lookup(170, "")
	if err == nil {
		t.Fatal("Lookup(170, \"\") expected error, got nil")
	}
	if _, ok := err.(ErrUnknownBuiltinID); !ok {
		t.Errorf("Lookup(170, \"\") error %v is not ErrUnknownBuiltinID", err)
	}
}

func TestIsDateFormatID(t *testing.T) {
	tests := []struct {
		id   int
		want bool
	}{
		{1, false},
		{3, false},
		{14, true},
		{22, true},
		{23, false},
		{45, true},
		{46, true},
		{49, false},
	}
	for _, tt := range tests {
		if got := IsDateFormatID(tt.id, ""); got != tt.want {
			t.Errorf("IsDateFormatID(%d, \"\") = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestIsDateFormatIDCustomScan(t *testing.T) {
	if !IsDateFormatID(200, "yyyy-mm-dd") {
		t.Error("IsDateFormatID(200, \"yyyy-mm-dd\") = false, want true")
	}
	if IsDateFormatID(200, "#,##0.00") {
		t.Error("IsDateFormatID(200, \"#,##0.00\") = true, want false")
	}
	if IsDateFormatID(200, `"mode"`) {
		t.Error(`IsDateFormatID(200, "\"mode\"") = true, want false (quoted "m" must not count)`)
	}
}

func TestScanForDateTokensSkipsBracketsAndQuotes(t *testing.T) {
	if ScanForDateTokens(`[Red]"hello"`) {
		t.Error(`ScanForDateTokens([Red]"hello") = true, want false`)
	}
	if !ScanForDateTokens(`[Red]yyyy`) {
		t.Error(`ScanForDateTokens([Red]yyyy) = false, want true`)
	}
}
