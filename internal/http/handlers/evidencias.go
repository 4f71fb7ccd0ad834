package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 10 << 20

// readUpload pulls the "file" part out of a multipart form.
func readUpload(c *gin.Context) (data []byte, filename, contentType string, ok bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "falta el archivo", err)
		return nil, "", "", false
	}
	if fileHeader.Size > maxUploadBytes {
		RespondError(c, http.StatusBadRequest, "el archivo es demasiado grande", nil)
		return nil, "", "", false
	}

	f, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo leer el archivo", err)
		return nil, "", "", false
	}
	defer f.Close()

	data, err = io.ReadAll(f)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo leer el archivo", err)
		return nil, "", "", false
	}
	return data, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), true
}

// POST /api/pagos/:id/evidencias (multipart: file)
func UploadEvidencia(c *gin.Context) {
	pagoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || pagoID <= 0 {
		RespondError(c, http.StatusBadRequest, "id de pago no válido", err)
		return
	}

	data, filename, contentType, ok := readUpload(c)
	if !ok {
		return
	}

	ruta, err := evidenceService(c).UploadDirect(c.Request.Context(), pagoID, filename, contentType, data)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ruta": ruta})
}

type deleteEvidenciaRequest struct {
	Ruta string `json:"ruta"`
}

// DELETE /api/pagos/:id/evidencias
func DeleteEvidencia(c *gin.Context) {
	pagoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || pagoID <= 0 {
		RespondError(c, http.StatusBadRequest, "id de pago no válido", err)
		return
	}

	var req deleteEvidenciaRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Ruta == "" {
		RespondError(c, http.StatusBadRequest, "falta la ruta de la evidencia", nil)
		return
	}

	if err := evidenceService(c).DeleteEvidencia(c.Request.Context(), pagoID, req.Ruta); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "evidencia eliminada"})
}

// GET /api/evidencias/url?ruta=
//
// Exchanges a stored path for a short-lived display URL.
func ResolveEvidenciaURL(c *gin.Context) {
	u, err := evidenceService(c).ResolveURL(c.Request.Context(), c.Query("ruta"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": u})
}
