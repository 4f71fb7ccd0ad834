package api

import (
	"log"
	stdhttp "net/http"

	intconfig "cobranza/internal/config"
	h "cobranza/internal/http/handlers"
	"cobranza/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.CORS(env.CORSOrigins),
		middleware.Prometheus(),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "ruta no encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// The phone reaches these through the QR link without signing in:
		// the session id is the only credential.
		api.POST("/mobile-upload", h.MobileUpload)
		api.GET("/evidence-sessions/:id", h.GetEvidenceSession)
		api.POST("/evidence-sessions/:id/complete", h.CompleteEvidenceSession)

		protected := api.Group("")
		protected.Use(middleware.RequireAuth(env.JWTSecret))
		{
			// Users
			users := protected.Group("/users")
			users.GET("", h.GetUsers)
			users.GET("/:id", h.GetUserByID)
			users.PUT("/:id", h.UpdateUser)
			users.DELETE("/:id", h.DeleteUser)

			// Remisiones
			remisiones := protected.Group("/remisiones")
			remisiones.GET("", h.GetRemisiones)
			remisiones.GET("/gaps", h.GetFolioGaps)
			remisiones.GET("/stream", h.StreamRemisiones)
			remisiones.GET("/:id", h.GetRemision)
			remisiones.POST("", h.CreateRemision)
			remisiones.PUT("/:id", h.UpdateRemision)
			remisiones.DELETE("/:id", h.DeleteRemision)
			remisiones.GET("/:id/estado-cuenta", h.GetEstadoCuentaPDF)

			// Evidencias de pagos
			pagos := protected.Group("/pagos")
			pagos.POST("/:id/evidencias", h.UploadEvidencia)
			pagos.DELETE("/:id/evidencias", h.DeleteEvidencia)
			protected.GET("/evidencias/url", h.ResolveEvidenciaURL)

			// Sesiones de evidencia (lado dashboard)
			sessions := protected.Group("/evidence-sessions")
			sessions.POST("", h.CreateEvidenceSession)
			sessions.GET("/:id/qr", h.GetEvidenceSessionQR)
			sessions.GET("/:id/stream", h.StreamEvidenceSession)
		}
	}

	h.SetRouter(r)
	return r
}
