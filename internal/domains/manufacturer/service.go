// Package manufacturer serves the distinct manufacturer names used for
// form autocompletion. The set is derived from item rows rather than
// stored in its own table, so item writes invalidate the cache.
package manufacturer

import (
	"context"
	"time"

	itemservice "collection-backend/internal/domains/item/service"
	"collection-backend/pkg/cache"
	"collection-backend/pkg/logger"
)

const cacheTTL = 10 * time.Minute

// Lister is satisfied by the item repository.
type Lister interface {
	DistinctManufacturers(ctx context.Context) ([]string, error)
}

type Service interface {
	List(ctx context.Context) ([]string, error)
}

type manufacturerService struct {
	lister Lister
	cache  cache.Cache
}

func NewService(lister Lister, cacheClient cache.Cache) Service {
	return &manufacturerService{
		lister: lister,
		cache:  cacheClient,
	}
}

func (s *manufacturerService) List(ctx context.Context) ([]string, error) {
	var cached []string
	found, err := s.cache.Get(ctx, itemservice.ManufacturerCacheKey, &cached)
	if err != nil {
		logger.Error("Manufacturer cache read failed", err)
	} else if found {
		return cached, nil
	}

	manufacturers, err := s.lister.DistinctManufacturers(ctx)
	if err != nil {
		return nil, err
	}
	if manufacturers == nil {
		manufacturers = []string{}
	}

	if err := s.cache.Set(ctx, itemservice.ManufacturerCacheKey, manufacturers, cacheTTL); err != nil {
		logger.Error("Manufacturer cache write failed", err)
	}
	return manufacturers, nil
}
