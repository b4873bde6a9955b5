package category

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateCategoryRequest is the payload for POST /categories.
type CreateCategoryRequest struct {
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Image       *string    `json:"image"`
	AssetID     *string    `json:"cloudflare_id"`
	ParentID    *uuid.UUID `json:"parent_id"`
}

func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
	)
}

// UpdateCategoryRequest is the payload for PUT /categories/:id. Nil
// pointers mean "leave unchanged"; explicit nulls for Image and AssetID
// are carried through ClearImage.
type UpdateCategoryRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Image       *string    `json:"image"`
	AssetID     *string    `json:"cloudflare_id"`
	ParentID    *uuid.UUID `json:"parent_id"`
	ClearImage  bool       `json:"clear_image"`
	ClearParent bool       `json:"clear_parent"`
}

func (r UpdateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
	)
}

// CategoryResponse mirrors the stored row plus the number of items
// directly inside the category.
type CategoryResponse struct {
	Category
	ItemCount int `json:"item_count"`
}
