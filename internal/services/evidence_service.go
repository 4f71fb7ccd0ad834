package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cobranza/internal/domain"
	"cobranza/internal/domain/models"
	"cobranza/internal/realtime"
	"cobranza/internal/repositories"
	"cobranza/internal/storage"
	"cobranza/internal/utils"
)

// EvidenceService owns the photo-evidence flows: the QR hand-off session a
// second device completes, and the direct upload from the dashboard itself.
// Both converge on Attach so there is exactly one way a path reaches a pago.
type EvidenceService struct {
	SessionRepo repositories.SessionRepository
	PagoRepo    repositories.PagoRepository
	Store       storage.ObjectStore
	Hub         *realtime.Hub
	BaseURL     string
	RequestID   string
}

// CreateSession opens a PENDING hand-off session for the target and returns
// it with the URL the phone will visit.
func (s EvidenceService) CreateSession(target domain.EvidenceTarget) (models.EvidenceSession, string, error) {
	if !target.IsDraft() {
		if _, err := s.PagoRepo.GetByID(target.PagoID); err != nil {
			return models.EvidenceSession{}, "", err
		}
	}

	session := models.EvidenceSession{
		ID:        uuid.NewString(),
		Token:     uuid.NewString(),
		Target:    target.String(),
		Status:    models.SessionPending,
		CreatedAt: time.Now(),
	}
	if err := s.SessionRepo.Create(session); err != nil {
		return models.EvidenceSession{}, "", err
	}
	utils.LogEvent(s.RequestID, "evidence", "session_create", fmt.Sprintf("id=%s target=%s", session.ID, session.Target))
	return session, s.HandoffURL(session.ID), nil
}

// HandoffURL embeds only the session id; anyone holding the link can
// complete the session, matching the original flow where the mobile page is
// reachable without signing in.
func (s EvidenceService) HandoffURL(sessionID string) string {
	return fmt.Sprintf("%s/mobile-upload?sessionId=%s", s.BaseURL, sessionID)
}

func (s EvidenceService) Session(id string) (models.EvidenceSession, error) {
	return s.SessionRepo.GetByID(id)
}

// CompleteSession records the uploaded evidence path on the session and
// attaches it to the session's target. The PENDING->COMPLETED transition
// happens at most once; a repeat is a conflict, so a session can never
// attach two photos or reopen on the watching device.
func (s EvidenceService) CompleteSession(id, imagePath string) (models.EvidenceSession, error) {
	if imagePath == "" {
		return models.EvidenceSession{}, domain.ValidationError{Field: "imageUrl", Msg: "falta la ruta de la evidencia"}
	}

	session, err := s.SessionRepo.GetByID(id)
	if err != nil {
		return models.EvidenceSession{}, err
	}

	ok, err := s.SessionRepo.Complete(id, imagePath)
	if err != nil {
		return models.EvidenceSession{}, err
	}
	if !ok {
		return models.EvidenceSession{}, domain.ConflictError{Resource: "sesión", Msg: "la sesión ya fue completada"}
	}

	target, err := domain.ParseEvidenceTarget(session.Target)
	if err != nil {
		return models.EvidenceSession{}, err
	}
	if err := s.Attach(target, imagePath); err != nil {
		return models.EvidenceSession{}, err
	}

	utils.LogEvent(s.RequestID, "evidence", "session_complete", fmt.Sprintf("id=%s ruta=%s", id, imagePath))
	if s.Hub != nil {
		s.Hub.Publish(realtime.TopicSession(id))
	}
	return s.SessionRepo.GetByID(id)
}

// UploadAndComplete is the phone's one-shot path: store the photo under an
// evidence path derived from the session, then complete the session.
func (s EvidenceService) UploadAndComplete(ctx context.Context, sessionID, filename, contentType string, data []byte) (models.EvidenceSession, error) {
	session, err := s.SessionRepo.GetByID(sessionID)
	if err != nil {
		return models.EvidenceSession{}, err
	}
	if session.Status != models.SessionPending {
		return models.EvidenceSession{}, domain.ConflictError{Resource: "sesión", Msg: "la sesión ya fue completada"}
	}

	ruta, err := s.store(ctx, sessionID, filename, contentType, data)
	if err != nil {
		return models.EvidenceSession{}, err
	}
	return s.CompleteSession(sessionID, ruta)
}

// UploadDirect bypasses the hand-off: same device, same storage, same
// Attach.
func (s EvidenceService) UploadDirect(ctx context.Context, pagoID int64, filename, contentType string, data []byte) (string, error) {
	if _, err := s.PagoRepo.GetByID(pagoID); err != nil {
		return "", err
	}

	ruta, err := s.store(ctx, fmt.Sprintf("pago-%d", pagoID), filename, contentType, data)
	if err != nil {
		return "", err
	}
	if err := s.Attach(domain.PagoTarget(pagoID), ruta); err != nil {
		return "", err
	}
	return ruta, nil
}

func (s EvidenceService) store(ctx context.Context, evidenceContext, filename, contentType string, data []byte) (string, error) {
	prepared, finalType, err := storage.PrepareEvidence(data, contentType)
	if err != nil {
		return "", domain.ValidationError{Field: "file", Msg: err.Error()}
	}
	ruta := storage.BuildEvidencePath(evidenceContext, filename)
	if err := s.Store.Put(ctx, ruta, bytes.NewReader(prepared), int64(len(prepared)), finalType); err != nil {
		return "", domain.InternalError{Msg: "Error al subir la imagen", Err: err}
	}
	return ruta, nil
}

// Attach is the single convergence point for both upload paths. A draft
// target has nothing to persist server-side: the dashboard is watching the
// session and folds the path into its form buffer.
func (s EvidenceService) Attach(target domain.EvidenceTarget, ruta string) error {
	if target.IsDraft() {
		utils.LogEvent(s.RequestID, "evidence", "attach_draft", "ruta="+ruta)
		return nil
	}
	if err := s.PagoRepo.AddEvidencia(target.PagoID, ruta); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "evidence", "attach", fmt.Sprintf("pago_id=%d ruta=%s", target.PagoID, ruta))
	return nil
}

// DeleteEvidencia removes the object from storage and then the reference.
// If storage refuses, the reference stays so the list never points at
// nothing while the object still exists, and the caller gets a visible
// error instead of a silent half-delete.
func (s EvidenceService) DeleteEvidencia(ctx context.Context, pagoID int64, ruta string) error {
	if err := s.Store.Delete(ctx, ruta); err != nil {
		return domain.InternalError{Msg: "Error al eliminar la imagen", Err: err}
	}
	return s.PagoRepo.RemoveEvidencia(pagoID, ruta)
}

// ResolveURL exchanges a stored path for a transient display URL.
func (s EvidenceService) ResolveURL(ctx context.Context, ruta string) (string, error) {
	if ruta == "" {
		return "", domain.ValidationError{Field: "ruta", Msg: "falta la ruta"}
	}
	u, err := s.Store.URL(ctx, ruta)
	if err != nil {
		return "", domain.InternalError{Msg: "Error al resolver la imagen", Err: err}
	}
	return u, nil
}
