package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"collection-backend/internal/collection"
	"collection-backend/internal/domains/category"
	"collection-backend/internal/domains/item"
	"collection-backend/pkg/cache"
	"collection-backend/pkg/logger"
)

// ManufacturerCacheKey is invalidated on every item write since the
// manufacturer list is derived from item rows.
const ManufacturerCacheKey = "manufacturers:all"

type AssetCleaner interface {
	EnqueueAssetCleanup(assetIDs []string) error
}

type itemService struct {
	repo         item.Repository
	categoryRepo category.Repository
	store        *collection.Store
	cache        cache.Cache
	cleaner      AssetCleaner
}

func NewItemService(
	repo item.Repository,
	categoryRepo category.Repository,
	store *collection.Store,
	cacheClient cache.Cache,
	cleaner AssetCleaner,
) item.Service {
	return &itemService{
		repo:         repo,
		categoryRepo: categoryRepo,
		store:        store,
		cache:        cacheClient,
		cleaner:      cleaner,
	}
}

func (s *itemService) List(ctx context.Context) ([]item.Item, error) {
	return s.store.Snapshot().Items, nil
}

func (s *itemService) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]item.Item, error) {
	snap := s.store.Snapshot()

	items := make([]item.Item, 0)
	for _, i := range snap.Items {
		if i.CategoryID == categoryID {
			items = append(items, i)
		}
	}
	return items, nil
}

func (s *itemService) Get(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *itemService) Create(ctx context.Context, userID uuid.UUID, req item.CreateItemRequest) (*item.Item, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", item.ErrValidation, err)
	}

	if _, err := s.categoryRepo.GetByID(ctx, req.CategoryID); err != nil {
		return nil, item.ErrCategoryNotFound
	}

	now := time.Now()
	entity := &item.Item{
		ID:               uuid.New(),
		Name:             req.Name,
		Description:      req.Description,
		CategoryID:       req.CategoryID,
		StockStatus:      req.StockStatus,
		Rating:           req.Rating,
		Valuation:        req.Valuation,
		BoughtFor:        req.BoughtFor,
		Image:            req.Image,
		Images:           req.Images,
		AssetID:          req.AssetID,
		AssetIDs:         req.AssetIDs,
		Manufacturer:     req.Manufacturer,
		YearManufactured: req.YearManufactured,
		AFANumber:        req.AFANumber,
		AFAGrade:         req.AFAGrade,
		Variations:       req.Variations,
		UserID:           userID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	entity.NormalizeImages()

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, err
	}

	s.store.UpsertItem(*created)
	s.invalidateManufacturers(ctx)
	return created, nil
}

func (s *itemService) Update(ctx context.Context, userID, id uuid.UUID, req item.UpdateItemRequest) (*item.Item, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", item.ErrValidation, err)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, item.ErrNotOwner
	}

	if req.CategoryID != nil && *req.CategoryID != existing.CategoryID {
		if _, err := s.categoryRepo.GetByID(ctx, *req.CategoryID); err != nil {
			return nil, item.ErrCategoryNotFound
		}
	}

	previousAssets := existing.AllAssetIDs()

	applyUpdate(existing, req)
	existing.NormalizeImages()
	existing.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.store.UpsertItem(*updated)
	s.invalidateManufacturers(ctx)

	// Assets dropped by the update are deleted from the CDN in the
	// background.
	if orphaned := subtract(previousAssets, updated.AllAssetIDs()); len(orphaned) > 0 {
		if err := s.cleaner.EnqueueAssetCleanup(orphaned); err != nil {
			logger.Error("Failed to enqueue orphaned item assets", err)
		}
	}
	return updated, nil
}

func (s *itemService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return item.ErrNotOwner
	}

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.store.RemoveItem(id)
	s.invalidateManufacturers(ctx)

	if assets := existing.AllAssetIDs(); len(assets) > 0 {
		if err := s.cleaner.EnqueueAssetCleanup(assets); err != nil {
			logger.Error("Failed to enqueue item asset cleanup", err)
		}
	}
	return nil
}

func (s *itemService) invalidateManufacturers(ctx context.Context) {
	if err := s.cache.Delete(ctx, ManufacturerCacheKey); err != nil {
		logger.Error("Failed to invalidate manufacturer cache", err)
	}
}

func applyUpdate(existing *item.Item, req item.UpdateItemRequest) {
	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Description != nil {
		existing.Description = req.Description
	}
	if req.CategoryID != nil {
		existing.CategoryID = *req.CategoryID
	}
	if req.StockStatus != nil {
		existing.StockStatus = *req.StockStatus
	}
	if req.Rating != nil {
		existing.Rating = req.Rating
	}
	if req.ClearValuation {
		existing.Valuation = nil
	} else if req.Valuation != nil {
		existing.Valuation = req.Valuation
	}
	if req.ClearBoughtFor {
		existing.BoughtFor = nil
	} else if req.BoughtFor != nil {
		existing.BoughtFor = req.BoughtFor
	}
	if req.ClearImages {
		existing.Image = nil
		existing.Images = nil
		existing.AssetID = nil
		existing.AssetIDs = nil
	} else if req.Image != nil || req.Images != nil {
		existing.Image = req.Image
		existing.Images = req.Images
		existing.AssetID = req.AssetID
		existing.AssetIDs = req.AssetIDs
	}
	if req.Manufacturer != nil {
		existing.Manufacturer = req.Manufacturer
	}
	if req.YearManufactured != nil {
		existing.YearManufactured = req.YearManufactured
	}
	if req.AFANumber != nil {
		existing.AFANumber = req.AFANumber
	}
	if req.AFAGrade != nil {
		existing.AFAGrade = req.AFAGrade
	}
	if req.Variations != nil {
		existing.Variations = req.Variations
	}
}

func subtract(from, remove []string) []string {
	keep := make(map[string]bool, len(remove))
	for _, id := range remove {
		keep[id] = true
	}

	var out []string
	for _, id := range from {
		if !keep[id] {
			out = append(out, id)
		}
	}
	return out
}
