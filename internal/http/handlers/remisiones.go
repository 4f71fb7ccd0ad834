package handlers

import (
	"net/http"
	"strconv"

	"cobranza/internal/domain/models"
	"cobranza/internal/realtime"

	"github.com/gin-gonic/gin"
)

// GET /api/remisiones?q=
func GetRemisiones(c *gin.Context) {
	remisiones, err := remisionService(c).List(c.Query("q"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, remisiones)
}

// GET /api/remisiones/gaps
func GetFolioGaps(c *gin.Context) {
	gaps, err := remisionService(c).Gaps()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"gaps": gaps})
}

// GET /api/remisiones/:id
func GetRemision(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id no válido", err)
		return
	}
	rem, err := remisionService(c).Detail(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rem)
}

// POST /api/remisiones
func CreateRemision(c *gin.Context) {
	var input models.Remision
	if !BindJSONOrError(c, &input) {
		return
	}
	input.ID = 0
	saved, err := remisionService(c).Save(input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// PUT /api/remisiones/:id
func UpdateRemision(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id no válido", err)
		return
	}
	var input models.Remision
	if !BindJSONOrError(c, &input) {
		return
	}
	input.ID = id
	saved, err := remisionService(c).Save(input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DELETE /api/remisiones/:id
func DeleteRemision(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id no válido", err)
		return
	}
	if err := remisionService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "remisión eliminada"})
}

// GET /api/remisiones/stream?q=
//
// Server-sent events feed of the filtered list. The first event carries the
// current state; afterwards each registry change triggers a re-read and a
// fresh snapshot, so a client that misses intermediate signals still ends up
// with the latest list.
func StreamRemisiones(c *gin.Context) {
	if hub == nil {
		RespondError(c, http.StatusServiceUnavailable, "el stream no está disponible", nil)
		return
	}
	q := c.Query("q")

	signals, cancel := hub.Subscribe(realtime.TopicRemisiones)
	defer cancel()

	send := func() bool {
		remisiones, err := remisionService(c).List(q)
		if err != nil {
			return false
		}
		return writeSSE(c, "remisiones", remisiones)
	}

	if !send() {
		return
	}

	done := c.Request.Context().Done()
	for {
		select {
		case <-done:
			return
		case <-signals:
			if !send() {
				return
			}
		}
	}
}
