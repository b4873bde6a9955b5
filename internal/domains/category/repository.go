package category

import (
	"context"

	"github.com/google/uuid"

	"collection-backend/internal/domains/item"
)

// Repository is the persistence boundary for categories. Reads are
// unfiltered by owner; ownership checks happen in the service layer.
type Repository interface {
	Create(ctx context.Context, category *Category) (*Category, error)

	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// ListAll returns every category ordered by creation time ascending.
	// Used both by the HTTP layer and by the in-memory snapshot loader.
	ListAll(ctx context.Context) ([]Category, error)

	Update(ctx context.Context, category *Category) (*Category, error)

	// DeleteWithItems removes the category row and every item directly
	// inside it in a single transaction, so a failure leaves both
	// tables untouched. The deleted items are returned so the service
	// can schedule CDN asset cleanup.
	DeleteWithItems(ctx context.Context, id uuid.UUID, userID uuid.UUID) ([]item.Item, error)
}
