package domain

import "testing"

func TestParseEvidenceTarget(t *testing.T) {
	target, err := ParseEvidenceTarget("draft")
	if err != nil || !target.IsDraft() {
		t.Fatalf("draft should parse as draft target, got %+v err %v", target, err)
	}

	target, err = ParseEvidenceTarget("")
	if err != nil || !target.IsDraft() {
		t.Fatalf("empty target should default to draft, got %+v err %v", target, err)
	}

	target, err = ParseEvidenceTarget("pago:42")
	if err != nil {
		t.Fatalf("pago target error: %v", err)
	}
	if target.IsDraft() || target.PagoID != 42 {
		t.Fatalf("pago target mismatch: %+v", target)
	}
	if target.String() != "pago:42" {
		t.Fatalf("round trip mismatch: %s", target.String())
	}
}

func TestParseEvidenceTargetInvalid(t *testing.T) {
	for _, s := range []string{"pago:", "pago:abc", "pago:0", "pago:-3", "otro:1"} {
		if _, err := ParseEvidenceTarget(s); !IsValidation(err) {
			t.Fatalf("ParseEvidenceTarget(%q) should fail with validation error, got %v", s, err)
		}
	}
}
