package hero

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// GetFirst returns the first settings row or nil when none exists.
	GetFirst(ctx context.Context) (*Settings, error)

	// Upsert writes the user's settings row, inserting it on first save.
	Upsert(ctx context.Context, userID uuid.UUID, settings *Settings) (*Settings, error)
}
