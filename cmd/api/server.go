package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"collection-backend/pkg/container"
	"collection-backend/pkg/logger"
)

// Serve runs the HTTP server plus the snapshot resync cron, blocking
// until SIGINT/SIGTERM, then shuts both down gracefully.
func Serve(c *container.Container, router *gin.Engine) error {
	srv := &http.Server{
		Addr:         ":" + c.Config.App.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	scheduler := startResync(c)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", map[string]interface{}{
			"addr": srv.Addr,
			"env":  c.Config.App.Environment,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		logger.Info("Shutting down", map[string]interface{}{"signal": sig.String()})
	}

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	logger.Info("Server stopped", map[string]interface{}{})
	return nil
}

// startResync schedules periodic snapshot reloads so out-of-band
// database edits eventually show up without a restart.
func startResync(c *container.Container) *cron.Cron {
	schedule := c.Config.Collection.ResyncSchedule
	if schedule == "" {
		return nil
	}

	scheduler := cron.New()
	_, err := scheduler.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := c.Collection.Load(ctx); err != nil {
			logger.Error("Scheduled snapshot resync failed", err)
		}
	})
	if err != nil {
		logger.Error("Invalid resync schedule, periodic resync disabled", err)
		return nil
	}

	scheduler.Start()
	logger.Info("Snapshot resync scheduled", map[string]interface{}{"schedule": schedule})
	return scheduler
}
