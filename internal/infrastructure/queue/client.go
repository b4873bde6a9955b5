package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"collection-backend/pkg/logger"
)

const (
	TypeCleanupAssets = "image:cleanup"

	QueueImages = "images"
)

// CleanupAssetsPayload carries the CDN asset ids to delete after the
// owning row is gone from the database.
type CleanupAssetsPayload struct {
	AssetIDs []string `json:"assetIds"`
}

// Client enqueues background tasks for the worker process.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, redisPassword string, redisDB int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		}),
	}
}

// EnqueueAssetCleanup schedules deletion of CDN assets. Cleanup is best
// effort so failures here are logged by the caller, never surfaced to
// the client request.
func (c *Client) EnqueueAssetCleanup(assetIDs []string) error {
	ids := make([]string, 0, len(assetIDs))
	for _, id := range assetIDs {
		if id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	payload, err := json.Marshal(CleanupAssetsPayload{AssetIDs: ids})
	if err != nil {
		return fmt.Errorf("marshal cleanup payload: %w", err)
	}

	task := asynq.NewTask(TypeCleanupAssets, payload)
	info, err := c.client.Enqueue(
		task,
		asynq.Queue(QueueImages),
		asynq.MaxRetry(3),
		asynq.Timeout(2*time.Minute),
	)
	if err != nil {
		return fmt.Errorf("enqueue asset cleanup: %w", err)
	}

	logger.Debug("Enqueued asset cleanup", map[string]interface{}{
		"taskId": info.ID,
		"assets": len(ids),
	})
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
