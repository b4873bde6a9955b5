package item

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stock status values as stored and displayed.
const (
	StockStatusInStock    = "In Stock"
	StockStatusOutOfStock = "Out of Stock"
)

// Item is a single collectible. Images holds up to four gallery URLs
// with the primary image always first; AssetIDs is positionally paired
// with Images so CDN cleanup can find every asset.
type Item struct {
	ID               uuid.UUID        `json:"id"`
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
	UserID           uuid.UUID        `json:"user_id"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// InStock reports whether the item counts toward collection valuation.
func (i *Item) InStock() bool {
	return i.StockStatus == StockStatusInStock
}

// ValuationOrZero treats a missing valuation as zero for sorting.
func (i *Item) ValuationOrZero() decimal.Decimal {
	if i.Valuation == nil {
		return decimal.Zero
	}
	return *i.Valuation
}

// AllAssetIDs collects every non-empty CDN asset id attached to the
// item, covering both the primary asset and the gallery list.
func (i *Item) AllAssetIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	add := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	if i.AssetID != nil {
		add(*i.AssetID)
	}
	for _, id := range i.AssetIDs {
		add(id)
	}
	return ids
}

// NormalizeImages enforces the gallery invariants: the primary image is
// always Images[0] and appears exactly once, and both lists are capped
// at four entries.
func (i *Item) NormalizeImages() {
	const maxImages = 4

	if i.Image == nil && len(i.Images) > 0 {
		first := i.Images[0]
		i.Image = &first
	}
	if i.Image != nil {
		images := make([]string, 0, len(i.Images)+1)
		images = append(images, *i.Image)
		for _, img := range i.Images {
			if img != *i.Image {
				images = append(images, img)
			}
		}
		i.Images = images

		if i.AssetID != nil {
			ids := make([]string, 0, len(i.AssetIDs)+1)
			ids = append(ids, *i.AssetID)
			for _, assetID := range i.AssetIDs {
				if assetID != *i.AssetID {
					ids = append(ids, assetID)
				}
			}
			i.AssetIDs = ids
		}
	}
	if len(i.Images) > maxImages {
		i.Images = i.Images[:maxImages]
	}
	if len(i.AssetIDs) > maxImages {
		i.AssetIDs = i.AssetIDs[:maxImages]
	}
}
