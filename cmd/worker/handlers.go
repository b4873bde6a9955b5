package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"collection-backend/internal/infrastructure/images"
	"collection-backend/internal/infrastructure/queue"
	"collection-backend/pkg/logger"
)

type Handlers struct {
	store images.Store
}

func newHandlers(store images.Store) *Handlers {
	return &Handlers{store: store}
}

// HandleCleanupAssets deletes CDN assets left behind by removed rows.
// Per-asset failures are logged and swallowed: a stale image on the
// CDN is harmless, and retrying the whole batch would re-delete assets
// that already succeeded.
func (h *Handlers) HandleCleanupAssets(ctx context.Context, task *asynq.Task) error {
	var payload queue.CleanupAssetsPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("malformed cleanup payload: %w: %v", asynq.SkipRetry, err)
	}

	var failed int
	for _, assetID := range payload.AssetIDs {
		if err := h.store.Delete(ctx, assetID); err != nil {
			logger.Error("Asset cleanup failed: "+assetID, err)
			failed++
		}
	}

	logger.Info("Asset cleanup done", map[string]interface{}{
		"total":  len(payload.AssetIDs),
		"failed": failed,
	})
	return nil
}
