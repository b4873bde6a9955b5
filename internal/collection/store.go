// Package collection keeps an in-memory snapshot of the whole catalog.
// Reports and public listing endpoints read from the snapshot instead
// of hitting Postgres per request; write paths update it only after the
// database accepted the change.
package collection

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"collection-backend/internal/domains/category"
	"collection-backend/internal/domains/item"
	"collection-backend/pkg/logger"
)

// CategoryLoader and ItemLoader are satisfied by the domain
// repositories.
type CategoryLoader interface {
	ListAll(ctx context.Context) ([]category.Category, error)
}

type ItemLoader interface {
	ListAll(ctx context.Context) ([]item.Item, error)
}

// Snapshot is an immutable copy of the catalog at one point in time.
// Callers may read it freely without holding any lock.
type Snapshot struct {
	Categories []category.Category
	Items      []item.Item
	LoadedAt   time.Time
}

// Store holds the current snapshot behind a RWMutex. Load replaces the
// whole snapshot; the mutators patch it in place after a successful
// database write.
type Store struct {
	mu         sync.RWMutex
	categories []category.Category
	items      []item.Item
	loadedAt   time.Time

	categoryLoader CategoryLoader
	itemLoader     ItemLoader
}

func NewStore(categoryLoader CategoryLoader, itemLoader ItemLoader) *Store {
	return &Store{
		categoryLoader: categoryLoader,
		itemLoader:     itemLoader,
	}
}

// Load fetches categories and items concurrently and swaps them in
// atomically. On error the previous snapshot stays untouched, so a
// failed resync never blanks the catalog.
func (s *Store) Load(ctx context.Context) error {
	var (
		categories []category.Category
		items      []item.Item
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = s.categoryLoader.ListAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.itemLoader.ListAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("Collection load failed, keeping previous snapshot", err)
		return err
	}

	s.mu.Lock()
	s.categories = categories
	s.items = items
	s.loadedAt = time.Now()
	s.mu.Unlock()

	logger.Info("Collection snapshot loaded", map[string]interface{}{
		"categories": len(categories),
		"items":      len(items),
	})
	return nil
}

// Snapshot returns a copy of the current catalog.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]category.Category, len(s.categories))
	copy(categories, s.categories)
	items := make([]item.Item, len(s.items))
	copy(items, s.items)

	return Snapshot{
		Categories: categories,
		Items:      items,
		LoadedAt:   s.loadedAt,
	}
}

// UpsertCategory replaces the stored category with the same id, or
// appends it when new.
func (s *Store) UpsertCategory(c category.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for idx := range s.categories {
		if s.categories[idx].ID == c.ID {
			s.categories[idx] = c
			return
		}
	}
	s.categories = append(s.categories, c)
}

// RemoveCategory drops the category and every item directly inside it.
// Child categories are left in place, matching the delete semantics of
// the persistence layer.
func (s *Store) RemoveCategory(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := s.categories[:0]
	for _, c := range s.categories {
		if c.ID != id {
			categories = append(categories, c)
		}
	}
	s.categories = categories

	items := s.items[:0]
	for _, i := range s.items {
		if i.CategoryID != id {
			items = append(items, i)
		}
	}
	s.items = items
}

// UpsertItem replaces the stored item with the same id, or appends it
// when new.
func (s *Store) UpsertItem(i item.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for idx := range s.items {
		if s.items[idx].ID == i.ID {
			s.items[idx] = i
			return
		}
	}
	s.items = append(s.items, i)
}

// RemoveItem drops one item by id.
func (s *Store) RemoveItem(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.items[:0]
	for _, i := range s.items {
		if i.ID != id {
			items = append(items, i)
		}
	}
	s.items = items
}
