package item

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateItemRequest is the payload for POST /items.
type CreateItemRequest struct {
	Name             string           `json:"name"`
	Description      *string          `json:"description"`
	CategoryID       uuid.UUID        `json:"category_id"`
	StockStatus      string           `json:"stock_status"`
	Rating           *string          `json:"rating"`
	Valuation        *decimal.Decimal `json:"valuation"`
	BoughtFor        *decimal.Decimal `json:"bought_for"`
	Image            *string          `json:"image"`
	Images           []string         `json:"images"`
	AssetID          *string          `json:"cloudflare_id"`
	AssetIDs         []string         `json:"cloudflare_ids"`
	Manufacturer     *string          `json:"manufacturer"`
	YearManufactured *int             `json:"year_manufactured"`
	AFANumber        *string          `json:"afa_number"`
	AFAGrade         *string          `json:"afa_grade"`
	Variations       *string          `json:"variations"`
}

func (r CreateItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 300)),
		validation.Field(&r.CategoryID, validation.Required),
		validation.Field(&r.StockStatus, validation.Required,
			validation.In(StockStatusInStock, StockStatusOutOfStock)),
		validation.Field(&r.Images, validation.Length(0, 4)),
		validation.Field(&r.AssetIDs, validation.Length(0, 4)),
		validation.Field(&r.Valuation, validation.By(nonNegativeDecimal)),
		validation.Field(&r.BoughtFor, validation.By(nonNegativeDecimal)),
		validation.Field(&r.YearManufactured, validation.Min(1800), validation.Max(2100)),
	)
}

// UpdateItemRequest is the payload for PUT /items/:id. Only non-nil
// fields are applied; Clear* flags write explicit nulls.
type UpdateItemRequest struct {
	Name             *string          `json:"name"`
	Description      *string          `json:"description"`
	CategoryID       *uuid.UUID       `json:"category_id"`
	StockStatus      *string          `json:"stock_status"`
	Rating           *string          `json:"rating"`
	Valuation        *decimal.Decimal `json:"valuation"`
	BoughtFor        *decimal.Decimal `json:"bought_for"`
	Image            *string          `json:"image"`
	Images           []string         `json:"images"`
	AssetID          *string          `json:"cloudflare_id"`
	AssetIDs         []string         `json:"cloudflare_ids"`
	Manufacturer     *string          `json:"manufacturer"`
	YearManufactured *int             `json:"year_manufactured"`
	AFANumber        *string          `json:"afa_number"`
	AFAGrade         *string          `json:"afa_grade"`
	Variations       *string          `json:"variations"`
	ClearImages      bool             `json:"clear_images"`
	ClearValuation   bool             `json:"clear_valuation"`
	ClearBoughtFor   bool             `json:"clear_bought_for"`
}

func (r UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 300)),
		validation.Field(&r.StockStatus,
			validation.In(StockStatusInStock, StockStatusOutOfStock)),
		validation.Field(&r.Images, validation.Length(0, 4)),
		validation.Field(&r.AssetIDs, validation.Length(0, 4)),
		validation.Field(&r.Valuation, validation.By(nonNegativeDecimal)),
		validation.Field(&r.BoughtFor, validation.By(nonNegativeDecimal)),
		validation.Field(&r.YearManufactured, validation.Min(1800), validation.Max(2100)),
	)
}

func nonNegativeDecimal(value interface{}) error {
	d, ok := value.(*decimal.Decimal)
	if !ok || d == nil {
		return nil
	}
	if d.IsNegative() {
		return validation.NewError("validation_negative", "must be zero or positive")
	}
	return nil
}
