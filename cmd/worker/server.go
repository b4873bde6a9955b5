package main

import (
	"context"

	"github.com/hibiken/asynq"

	"collection-backend/internal/config"
	"collection-backend/internal/infrastructure/queue"
	"collection-backend/pkg/logger"
)

func setupAsynqServer(cfg *config.Config, handlers *Handlers) *asynq.Server {
	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TypeCleanupAssets, handlers.HandleCleanupAssets)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Host,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				queue.QueueImages: 10,
				"default":         5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error("Task failed: "+task.Type(), err)
			}),
		},
	)

	go func() {
		logger.Info("Worker started", map[string]interface{}{"redis": cfg.Redis.Host})
		if err := srv.Run(mux); err != nil {
			logger.Error("Worker stopped unexpectedly", err)
		}
	}()

	return srv
}
