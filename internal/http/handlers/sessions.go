package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"cobranza/internal/domain"
	"cobranza/internal/domain/models"
	"cobranza/internal/realtime"
)

type createSessionRequest struct {
	Target string `json:"target"`
}

// POST /api/evidence-sessions
//
// Opens a hand-off session for a pago ("pago:<id>") or for the payment still
// being typed ("draft"). The response carries the URL the phone will open.
func CreateEvidenceSession(c *gin.Context) {
	var req createSessionRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	target, err := domain.ParseEvidenceTarget(req.Target)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	session, handoffURL, err := evidenceService(c).CreateSession(target)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"session":    session,
		"handoffUrl": handoffURL,
	})
}

// GET /api/evidence-sessions/:id
func GetEvidenceSession(c *gin.Context) {
	session, err := evidenceService(c).Session(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GET /api/evidence-sessions/:id/qr
//
// PNG QR of the hand-off URL, ready to show in the dashboard modal.
func GetEvidenceSessionQR(c *gin.Context) {
	svc := evidenceService(c)
	session, err := svc.Session(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	png, err := qrcode.Encode(svc.HandoffURL(session.ID), qrcode.Medium, 256)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo generar el código QR", err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

type completeSessionRequest struct {
	ImageURL string `json:"imageUrl"`
}

// POST /api/evidence-sessions/:id/complete
//
// Marks the session COMPLETED with an already-stored evidence path. The
// phone's normal path is /api/mobile-upload, which stores and completes in
// one request; this endpoint exists for clients that upload on their own.
func CompleteEvidenceSession(c *gin.Context) {
	var req completeSessionRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	session, err := evidenceService(c).CompleteSession(c.Param("id"), req.ImageURL)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GET /api/evidence-sessions/:id/stream
//
// Server-sent events feed of one session. The dashboard keeps this open
// while showing the QR; when the phone completes the session the final
// state arrives and the stream ends.
func StreamEvidenceSession(c *gin.Context) {
	if hub == nil {
		RespondError(c, http.StatusServiceUnavailable, "el stream no está disponible", nil)
		return
	}
	id := c.Param("id")
	svc := evidenceService(c)

	signals, cancel := hub.Subscribe(realtime.TopicSession(id))
	defer cancel()

	send := func() (models.EvidenceSession, bool) {
		session, err := svc.Session(id)
		if err != nil {
			return models.EvidenceSession{}, false
		}
		return session, writeSSE(c, "session", session)
	}

	session, ok := send()
	if !ok || session.Completed() {
		return
	}

	done := c.Request.Context().Done()
	for {
		select {
		case <-done:
			return
		case <-signals:
			session, ok := send()
			if !ok || session.Completed() {
				return
			}
		}
	}
}
