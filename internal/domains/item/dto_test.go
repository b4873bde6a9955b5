package item

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCreateItemRequest_Validate(t *testing.T) {
	valid := CreateItemRequest{
		Name:        "Boba Fett",
		CategoryID:  uuid.New(),
		StockStatus: StockStatusInStock,
		Valuation:   decPtr("150.00"),
	}
	assert.NoError(t, valid.Validate())

	missingName := valid
	missingName.Name = ""
	assert.Error(t, missingName.Validate())

	badStatus := valid
	badStatus.StockStatus = "Backordered"
	assert.Error(t, badStatus.Validate())

	negative := valid
	negative.Valuation = decPtr("-5")
	assert.Error(t, negative.Validate())

	tooManyImages := valid
	tooManyImages.Images = []string{"a", "b", "c", "d", "e"}
	assert.Error(t, tooManyImages.Validate())
}

func TestUpdateItemRequest_Validate(t *testing.T) {
	empty := UpdateItemRequest{}
	assert.NoError(t, empty.Validate())

	blankName := UpdateItemRequest{Name: strPtr("")}
	assert.Error(t, blankName.Validate())

	badYear := UpdateItemRequest{YearManufactured: intPtr(1650)}
	assert.Error(t, badYear.Validate())
}

func TestItem_NormalizeImages(t *testing.T) {
	t.Run("primary promoted to front of gallery", func(t *testing.T) {
		i := &Item{
			Image:    strPtr("https://cdn.example/primary/public"),
			AssetID:  strPtr("primary-id"),
			Images:   []string{"https://cdn.example/extra/public"},
			AssetIDs: []string{"extra-id"},
		}
		i.NormalizeImages()

		assert.Equal(t, "https://cdn.example/primary/public", i.Images[0])
		assert.Equal(t, "primary-id", i.AssetIDs[0])
		assert.Len(t, i.Images, 2)
	})

	t.Run("gallery only backfills primary", func(t *testing.T) {
		i := &Item{Images: []string{"https://cdn.example/a/public"}}
		i.NormalizeImages()

		assert.NotNil(t, i.Image)
		assert.Equal(t, "https://cdn.example/a/public", *i.Image)
	})

	t.Run("primary repeated in gallery keeps one copy", func(t *testing.T) {
		i := &Item{
			Image:    strPtr("https://cdn.example/primary/public"),
			AssetID:  strPtr("primary-id"),
			Images:   []string{"https://cdn.example/b/public", "https://cdn.example/primary/public", "https://cdn.example/c/public"},
			AssetIDs: []string{"b-id", "primary-id", "c-id"},
		}
		i.NormalizeImages()

		assert.Equal(t, []string{
			"https://cdn.example/primary/public",
			"https://cdn.example/b/public",
			"https://cdn.example/c/public",
		}, i.Images)
		assert.Equal(t, []string{"primary-id", "b-id", "c-id"}, i.AssetIDs)
	})

	t.Run("gallery capped at four", func(t *testing.T) {
		i := &Item{
			Image:  strPtr("a"),
			Images: []string{"a", "b", "c", "d", "e", "f"},
		}
		i.NormalizeImages()

		assert.Len(t, i.Images, 4)
	})
}

func TestItem_AllAssetIDs(t *testing.T) {
	i := &Item{
		AssetID:  strPtr("primary"),
		AssetIDs: []string{"primary", "second", "", "third"},
	}

	assert.Equal(t, []string{"primary", "second", "third"}, i.AllAssetIDs())
}

func intPtr(n int) *int { return &n }
