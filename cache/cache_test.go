package cache

import "testing"

func TestParseCachedReturnsSameInstance(t *testing.T) {
	nf1, err := ParseCached("#,##0.00")
	if err != nil {
		t.Fatalf("ParseCached error: %v", err)
	}
	nf2, err := ParseCached("#,##0.00")
	if err != nil {
		t.Fatalf("ParseCached error: %v", err)
	}
	if nf1 != nf2 {
		t.Error("ParseCached returned distinct *NumberFormat for the same format string")
	}
}

func TestParseCachedPropagatesParseError(t *testing.T) {
	if _, err := ParseCached(""); err == nil {
		t.Fatal("ParseCached(\"\") expected error, got nil")
	}
}

func TestPutAndGet(t *testing.T) {
	nf, err := ParseCached("0.00%")
	if err != nil {
		t.Fatalf("ParseCached error: %v", err)
	}
	got, ok := Get("0.00%")
	if !ok {
		t.Fatal("Get(\"0.00%\") not found after ParseCached")
	}
	if got != nf {
		t.Error("Get returned a different instance than ParseCached stored")
	}
}
