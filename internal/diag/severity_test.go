package diag

import (
	"encoding/json"
	"testing"
)

func TestSeverity_RoundTripText(t *testing.T) {
	for _, s := range []Severity{SevInfo, SevWarning, SevError} {
		data, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("marshal %v: %v", s, err)
		}
		var got Severity
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if got != s {
			t.Fatalf("got %v, want %v", got, s)
		}
	}
}

func TestParseSeverity(t *testing.T) {
	if s, err := ParseSeverity("warning"); err != nil || s != SevWarning {
		t.Fatalf("ParseSeverity(warning) = %v, %v", s, err)
	}
	if _, err := ParseSeverity("fatal"); err == nil {
		t.Fatalf("expected error for unknown severity")
	}
	if got := Severity(42).String(); got != "UNKNOWN" {
		t.Fatalf("String() = %q", got)
	}
}
