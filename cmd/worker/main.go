// The worker process drains background tasks, currently just CDN asset
// cleanup after categories, items or replaced images are removed.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"collection-backend/internal/config"
	"collection-backend/internal/infrastructure/images"
	"collection-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	logger.Init(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load config", err)
		os.Exit(1)
	}

	store, err := images.NewStore(cfg.Images)
	if err != nil {
		logger.Error("Failed to init image store", err)
		os.Exit(1)
	}

	srv := setupAsynqServer(cfg, newHandlers(store))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Worker shutting down", map[string]interface{}{})
	srv.Shutdown()
}
