package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"collection-backend/pkg/container"
	"collection-backend/pkg/logger"
)

func main() {
	// Missing .env is fine in deployed environments.
	_ = godotenv.Load()

	logger.Init(os.Getenv("APP_ENV"))

	c, err := container.NewContainer(context.Background())
	if err != nil {
		logger.Error("Failed to initialize application", err)
		os.Exit(1)
	}
	defer c.Close()

	router := SetupRouter(c)

	if err := Serve(c, router); err != nil {
		logger.Error("Server exited with error", err)
		os.Exit(1)
	}
}
