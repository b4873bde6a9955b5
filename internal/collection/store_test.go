package collection

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collection-backend/internal/domains/category"
	"collection-backend/internal/domains/item"
)

type stubCategoryLoader struct {
	categories []category.Category
	err        error
}

func (l *stubCategoryLoader) ListAll(ctx context.Context) ([]category.Category, error) {
	return l.categories, l.err
}

type stubItemLoader struct {
	items []item.Item
	err   error
}

func (l *stubItemLoader) ListAll(ctx context.Context) ([]item.Item, error) {
	return l.items, l.err
}

func TestStore_Load(t *testing.T) {
	catID := uuid.New()
	store := NewStore(
		&stubCategoryLoader{categories: []category.Category{{ID: catID, Name: "Vehicles"}}},
		&stubItemLoader{items: []item.Item{{ID: uuid.New(), Name: "X-Wing", CategoryID: catID}}},
	)

	require.NoError(t, store.Load(context.Background()))

	snap := store.Snapshot()
	assert.Len(t, snap.Categories, 1)
	assert.Len(t, snap.Items, 1)
	assert.False(t, snap.LoadedAt.IsZero())
}

func TestStore_LoadFailureKeepsPreviousSnapshot(t *testing.T) {
	catLoader := &stubCategoryLoader{categories: []category.Category{{ID: uuid.New(), Name: "Figures"}}}
	itemLoader := &stubItemLoader{}
	store := NewStore(catLoader, itemLoader)

	require.NoError(t, store.Load(context.Background()))

	itemLoader.err = errors.New("connection refused")
	assert.Error(t, store.Load(context.Background()))

	snap := store.Snapshot()
	assert.Len(t, snap.Categories, 1, "failed reload must not blank the catalog")
}

func TestStore_UpsertCategory(t *testing.T) {
	store := NewStore(&stubCategoryLoader{}, &stubItemLoader{})
	c := category.Category{ID: uuid.New(), Name: "Figures"}

	store.UpsertCategory(c)
	assert.Len(t, store.Snapshot().Categories, 1)

	c.Name = "Action Figures"
	store.UpsertCategory(c)

	snap := store.Snapshot()
	require.Len(t, snap.Categories, 1)
	assert.Equal(t, "Action Figures", snap.Categories[0].Name)
}

func TestStore_RemoveCategoryDropsOwnItemsOnly(t *testing.T) {
	parent := uuid.New()
	child := uuid.New()
	store := NewStore(&stubCategoryLoader{}, &stubItemLoader{})

	childCat := category.Category{ID: child, Name: "Child", ParentID: &parent}
	store.UpsertCategory(category.Category{ID: parent, Name: "Parent"})
	store.UpsertCategory(childCat)
	store.UpsertItem(item.Item{ID: uuid.New(), CategoryID: parent})
	store.UpsertItem(item.Item{ID: uuid.New(), CategoryID: child})

	store.RemoveCategory(parent)

	snap := store.Snapshot()
	require.Len(t, snap.Categories, 1)
	assert.Equal(t, child, snap.Categories[0].ID)
	require.Len(t, snap.Items, 1, "items in child categories survive")
	assert.Equal(t, child, snap.Items[0].CategoryID)
}

func TestStore_UpsertAndRemoveItem(t *testing.T) {
	store := NewStore(&stubCategoryLoader{}, &stubItemLoader{})
	i := item.Item{ID: uuid.New(), Name: "Snowspeeder"}

	store.UpsertItem(i)
	i.Name = "Snowspeeder (boxed)"
	store.UpsertItem(i)

	snap := store.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "Snowspeeder (boxed)", snap.Items[0].Name)

	store.RemoveItem(i.ID)
	assert.Empty(t, store.Snapshot().Items)
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	store := NewStore(&stubCategoryLoader{}, &stubItemLoader{})
	store.UpsertCategory(category.Category{ID: uuid.New(), Name: "Original"})

	snap := store.Snapshot()
	snap.Categories[0].Name = "Mutated"

	assert.Equal(t, "Original", store.Snapshot().Categories[0].Name)
}
