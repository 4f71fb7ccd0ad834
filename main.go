package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	intconfig "cobranza/internal/config"
	router "cobranza/internal/http"
	"cobranza/internal/http/handlers"
	"cobranza/internal/http/middleware"
	"cobranza/internal/jobs"
	"cobranza/internal/realtime"
	"cobranza/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Sin archivo .env, usando variables de entorno")
	}

	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	store, err := storage.NewS3Store(env)
	if err != nil {
		log.Fatalf("Error inicializando el almacenamiento de evidencias: %v", err)
	}

	hub := realtime.NewHub()
	handlers.SetDependencies(hub, store, env.PublicBaseURL)
	handlers.SetJWTSecret(env.JWTSecret)
	middleware.InitMetrics()

	scheduler := jobs.StartScheduler(env)
	defer scheduler.Stop()

	r := router.NewRouter(env)

	// WriteTimeout stays off: the SSE streams hold their connection open for
	// as long as the dashboard is watching.
	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Servidor escuchando en http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("No se pudo iniciar el servidor: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Apagando el servidor...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Falló el apagado del servidor: %v", err)
	}

	log.Println("Servidor detenido correctamente.")
}
