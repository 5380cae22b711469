package util

import (
	"testing"
)

func TestParseDateISO(t *testing.T) {
	got, ok := ParseDate("2024-10-10")
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Format("2006-01-02") != "2024-10-10" {
		t.Fatalf("unexpected date %v", got)
	}
}

func TestParseDateUnix(t *testing.T) {
	got, ok := ParseDate("1728555010")
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Unix() != 1728555010 {
		t.Fatalf("unexpected unix %v", got.Unix())
	}
}

func TestParseDateEmpty(t *testing.T) {
	if _, ok := ParseDate(""); ok {
		t.Fatalf("expected not ok")
	}
	if _, ok := ParseDate("not-a-date"); ok {
		t.Fatalf("expected not ok")
	}
}

func TestParseIntDefault(t *testing.T) {
	if got := ParseIntDefault("", 5); got != 5 {
		t.Fatalf("unexpected %d", got)
	}
	if got := ParseIntDefault("12", 5); got != 12 {
		t.Fatalf("unexpected %d", got)
	}
	if got := ParseIntDefault("abc", 5); got != 5 {
		t.Fatalf("unexpected %d", got)
	}
}

func TestParseFloatDefault(t *testing.T) {
	if got := ParseFloatDefault("19.99", 0); got != 19.99 {
		t.Fatalf("unexpected %v", got)
	}
	if got := ParseFloatDefault("", 1.5); got != 1.5 {
		t.Fatalf("unexpected %v", got)
	}
}
