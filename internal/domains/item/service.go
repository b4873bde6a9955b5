package item

import (
	"context"

	"github.com/google/uuid"
)

// Service exposes item use cases to the HTTP layer.
type Service interface {
	List(ctx context.Context) ([]Item, error)

	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]Item, error)

	Get(ctx context.Context, id uuid.UUID) (*Item, error)

	Create(ctx context.Context, userID uuid.UUID, req CreateItemRequest) (*Item, error)

	Update(ctx context.Context, userID, id uuid.UUID, req UpdateItemRequest) (*Item, error)

	// Delete removes the item and schedules best-effort CDN cleanup of
	// every asset it referenced.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
