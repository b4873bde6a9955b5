package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"collection-backend/internal/collection"
	"collection-backend/internal/domains/category"
	"collection-backend/pkg/logger"
)

// AssetCleaner schedules deferred deletion of CDN assets. Failures are
// logged and swallowed; stale assets are acceptable, broken requests
// are not.
type AssetCleaner interface {
	EnqueueAssetCleanup(assetIDs []string) error
}

type categoryService struct {
	repo    category.Repository
	store   *collection.Store
	cleaner AssetCleaner
}

func NewCategoryService(
	repo category.Repository,
	store *collection.Store,
	cleaner AssetCleaner,
) category.Service {
	return &categoryService{
		repo:    repo,
		store:   store,
		cleaner: cleaner,
	}
}

// List serves from the in-memory snapshot so the landing page never
// waits on Postgres.
func (s *categoryService) List(ctx context.Context) ([]category.CategoryResponse, error) {
	snap := s.store.Snapshot()

	counts := make(map[uuid.UUID]int, len(snap.Categories))
	for _, i := range snap.Items {
		counts[i.CategoryID]++
	}

	responses := make([]category.CategoryResponse, 0, len(snap.Categories))
	for _, c := range snap.Categories {
		responses = append(responses, category.CategoryResponse{
			Category:  c,
			ItemCount: counts[c.ID],
		})
	}
	return responses, nil
}

func (s *categoryService) Get(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *categoryService) Create(ctx context.Context, userID uuid.UUID, req category.CreateCategoryRequest) (*category.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", category.ErrValidation, err)
	}

	if req.ParentID != nil {
		if _, err := s.repo.GetByID(ctx, *req.ParentID); err != nil {
			return nil, category.ErrParentNotFound
		}
	}

	now := time.Now()
	entity := &category.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		AssetID:     req.AssetID,
		ParentID:    req.ParentID,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, err
	}

	s.store.UpsertCategory(*created)
	return created, nil
}

func (s *categoryService) Update(ctx context.Context, userID, id uuid.UUID, req category.UpdateCategoryRequest) (*category.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", category.ErrValidation, err)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, category.ErrNotOwner
	}

	var replacedAsset string
	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Description != nil {
		existing.Description = req.Description
	}
	if req.ClearImage {
		if existing.AssetID != nil {
			replacedAsset = *existing.AssetID
		}
		existing.Image = nil
		existing.AssetID = nil
	} else if req.Image != nil {
		if existing.AssetID != nil && (req.AssetID == nil || *req.AssetID != *existing.AssetID) {
			replacedAsset = *existing.AssetID
		}
		existing.Image = req.Image
		existing.AssetID = req.AssetID
	}
	if req.ClearParent {
		existing.ParentID = nil
	} else if req.ParentID != nil {
		if err := s.checkParent(ctx, id, *req.ParentID); err != nil {
			return nil, err
		}
		existing.ParentID = req.ParentID
	}
	existing.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.store.UpsertCategory(*updated)

	if replacedAsset != "" {
		if err := s.cleaner.EnqueueAssetCleanup([]string{replacedAsset}); err != nil {
			logger.Error("Failed to enqueue replaced category asset", err)
		}
	}
	return updated, nil
}

// checkParent rejects self-parenting and any assignment that would put
// the category under one of its own descendants.
func (s *categoryService) checkParent(ctx context.Context, id, parentID uuid.UUID) error {
	if id == parentID {
		return category.ErrCircularParent
	}

	parent, err := s.repo.GetByID(ctx, parentID)
	if err != nil {
		return category.ErrParentNotFound
	}

	visited := map[uuid.UUID]bool{id: true}
	for parent.ParentID != nil {
		next := *parent.ParentID
		if visited[next] {
			return category.ErrCircularParent
		}
		visited[next] = true

		parent, err = s.repo.GetByID(ctx, next)
		if err != nil {
			return fmt.Errorf("failed to resolve parent chain: %w", err)
		}
	}
	return nil
}

func (s *categoryService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return category.ErrNotOwner
	}

	// The category row and its items are removed in one transaction so
	// a failure never leaves items deleted under a surviving category.
	// Child categories stay and become top-level orphans in practice;
	// their parent_id keeps pointing at the deleted id.
	deletedItems, err := s.repo.DeleteWithItems(ctx, id, userID)
	if err != nil {
		return err
	}

	s.store.RemoveCategory(id)

	var assets []string
	if existing.AssetID != nil && *existing.AssetID != "" {
		assets = append(assets, *existing.AssetID)
	}
	for idx := range deletedItems {
		assets = append(assets, deletedItems[idx].AllAssetIDs()...)
	}
	if len(assets) > 0 {
		if err := s.cleaner.EnqueueAssetCleanup(assets); err != nil {
			logger.Error("Failed to enqueue category asset cleanup", err)
		}
	}

	logger.Info("Category deleted", map[string]interface{}{
		"categoryId":   id,
		"itemsDeleted": len(deletedItems),
		"assetsQueued": len(assets),
	})
	return nil
}
