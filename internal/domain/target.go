package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// EvidenceTarget names where a captured photo lands: a persisted pago, or
// the payment still being typed into the form ("draft"). For a draft the
// server only carries the path back to the dashboard; the dashboard owns
// the attachment until the pago is saved.
type EvidenceTarget struct {
	PagoID int64
}

const targetDraft = "draft"

func DraftTarget() EvidenceTarget { return EvidenceTarget{} }

func PagoTarget(pagoID int64) EvidenceTarget { return EvidenceTarget{PagoID: pagoID} }

func (t EvidenceTarget) IsDraft() bool { return t.PagoID == 0 }

func (t EvidenceTarget) String() string {
	if t.IsDraft() {
		return targetDraft
	}
	return fmt.Sprintf("pago:%d", t.PagoID)
}

// ParseEvidenceTarget reads "draft" or "pago:<id>".
func ParseEvidenceTarget(s string) (EvidenceTarget, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == targetDraft {
		return DraftTarget(), nil
	}
	rest, ok := strings.CutPrefix(s, "pago:")
	if !ok {
		return EvidenceTarget{}, ValidationError{Field: "target", Msg: "destino no reconocido: " + s}
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || id <= 0 {
		return EvidenceTarget{}, ValidationError{Field: "target", Msg: "id de pago no válido", Err: err}
	}
	return PagoTarget(id), nil
}
