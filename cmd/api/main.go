package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TheFirstLairron/Rusty-Rogues/internal/config"
	"github.com/TheFirstLairron/Rusty-Rogues/internal/handlers"
	"github.com/TheFirstLairron/Rusty-Rogues/internal/logger"
	"github.com/TheFirstLairron/Rusty-Rogues/internal/middleware"
	"github.com/TheFirstLairron/Rusty-Rogues/internal/storage"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg)

	log.Info("Starting Rusty Rogues API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"storage_type", cfg.StorageType)

	var store storage.Storage
	switch cfg.StorageType {
	case "redis":
		redisStore := storage.NewRedisStorage(cfg.RedisURL, log)
		storageCtx, storageCancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer storageCancel()
		if err := redisStore.WaitForConnection(storageCtx); err != nil {
			log.Error("Failed to connect to storage", "error", err)
			os.Exit(1)
		}
		store = redisStore
	case "file":
		fileStore, err := storage.NewFileStorage(cfg.SavePath, log)
		if err != nil {
			log.Error("Failed to open save directory", "error", err, "path", cfg.SavePath)
			os.Exit(1)
		}
		store = fileStore
	default:
		log.Error("Invalid storage type specified", "type", cfg.StorageType, "supported", []string{"redis", "file"})
		os.Exit(1)
	}
	log.Info("Storage ready")

	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(store, log)
	mux.Handle("/health", healthHandler)

	sessionHandler := handlers.NewSessionHandler(log, store)
	mux.Handle("/v1/sessions", sessionHandler)
	mux.Handle("/v1/sessions/", sessionHandler)

	handler := middleware.Logger(mux)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	if err := store.Close(); err != nil {
		log.Error("Error closing storage connection", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
