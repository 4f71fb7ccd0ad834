package handlers

import (
	"github.com/gin-gonic/gin"

	"cobranza/internal/http/middleware"
	"cobranza/internal/realtime"
	"cobranza/internal/repositories"
	"cobranza/internal/services"
	"cobranza/internal/storage"
)

// Shared process-wide dependencies the per-request services are built from.
// Repositories stay zero-value (they fall back to the global DB); the hub,
// the object store and the public base URL have no such fallback.
var (
	hub         *realtime.Hub
	objectStore storage.ObjectStore
	baseURL     string
)

// SetDependencies wires the long-lived pieces before the router starts.
func SetDependencies(h *realtime.Hub, store storage.ObjectStore, publicBaseURL string) {
	hub = h
	objectStore = store
	baseURL = publicBaseURL
}

func remisionService(c *gin.Context) services.RemisionService {
	return services.RemisionService{
		RemisionRepo: repositories.RemisionRepository{},
		PagoRepo:     repositories.PagoRepository{},
		Hub:          hub,
		RequestID:    middleware.GetRequestID(c),
	}
}

func evidenceService(c *gin.Context) services.EvidenceService {
	return services.EvidenceService{
		SessionRepo: repositories.SessionRepository{},
		PagoRepo:    repositories.PagoRepository{},
		Store:       objectStore,
		Hub:         hub,
		BaseURL:     baseURL,
		RequestID:   middleware.GetRequestID(c),
	}
}

func statementService(c *gin.Context) services.StatementService {
	return services.StatementService{
		RemisionRepo: repositories.RemisionRepository{},
		PagoRepo:     repositories.PagoRepository{},
		RequestID:    middleware.GetRequestID(c),
	}
}
