package hero

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	// Get never fails open: storage errors fall back to the default
	// banner so the landing page always renders.
	Get(ctx context.Context) *Settings

	Update(ctx context.Context, userID uuid.UUID, req UpdateSettingsRequest) (*Settings, error)
}
