package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// POST /api/mobile-upload?sessionId= (multipart: file)
//
// The phone's one-shot path: store the photo and complete the session in a
// single request. Reachable without signing in; the session id from the QR
// link is the only credential, matching the original hand-off flow.
func MobileUpload(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		RespondError(c, http.StatusBadRequest, "falta el parámetro sessionId", nil)
		return
	}

	data, filename, contentType, ok := readUpload(c)
	if !ok {
		return
	}

	session, err := evidenceService(c).UploadAndComplete(c.Request.Context(), sessionID, filename, contentType, data)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "evidencia subida",
		"session": session,
	})
}
