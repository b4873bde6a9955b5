package category

import (
	"context"

	"github.com/google/uuid"
)

// Service exposes category use cases to the HTTP layer.
type Service interface {
	List(ctx context.Context) ([]CategoryResponse, error)

	Get(ctx context.Context, id uuid.UUID) (*Category, error)

	Create(ctx context.Context, userID uuid.UUID, req CreateCategoryRequest) (*Category, error)

	Update(ctx context.Context, userID, id uuid.UUID, req UpdateCategoryRequest) (*Category, error)

	// Delete removes the category and every item directly inside it,
	// then schedules best-effort CDN cleanup for all orphaned assets.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
