package category

import (
	"time"

	"github.com/google/uuid"
)

// Category is a node in the catalog tree. ParentID == nil means
// top-level; nesting depth is unbounded. Image and AssetID travel
// together: both set or both empty.
type Category struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Image       *string    `json:"image"`
	AssetID     *string    `json:"cloudflare_id"`
	ParentID    *uuid.UUID `json:"parent_id"`
	UserID      uuid.UUID  `json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsTopLevel reports whether the category has no parent.
func (c *Category) IsTopLevel() bool {
	return c.ParentID == nil
}
