package item

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence boundary for items.
type Repository interface {
	Create(ctx context.Context, item *Item) (*Item, error)

	GetByID(ctx context.Context, id uuid.UUID) (*Item, error)

	// ListAll returns every item ordered by creation time ascending.
	ListAll(ctx context.Context) ([]Item, error)

	// ListByCategory returns the items directly inside one category,
	// not including descendant categories.
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]Item, error)

	Update(ctx context.Context, item *Item) (*Item, error)

	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error

	// DistinctManufacturers returns the sorted set of non-empty
	// manufacturer values across all items.
	DistinctManufacturers(ctx context.Context) ([]string, error)
}
