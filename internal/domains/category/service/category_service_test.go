package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collection-backend/internal/collection"
	"collection-backend/internal/domains/category"
	"collection-backend/internal/domains/item"
)

type stubCategoryRepo struct {
	byID  map[uuid.UUID]*category.Category
	items map[uuid.UUID][]item.Item

	// deleteErr makes DeleteWithItems fail without removing anything,
	// mirroring a rolled-back transaction.
	deleteErr error
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{
		byID:  make(map[uuid.UUID]*category.Category),
		items: make(map[uuid.UUID][]item.Item),
	}
}

func (r *stubCategoryRepo) Create(ctx context.Context, c *category.Category) (*category.Category, error) {
	clone := *c
	r.byID[c.ID] = &clone
	return &clone, nil
}

func (r *stubCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, category.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) ListAll(ctx context.Context) ([]category.Category, error) {
	var out []category.Category
	for _, c := range r.byID {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoryRepo) Update(ctx context.Context, c *category.Category) (*category.Category, error) {
	if _, ok := r.byID[c.ID]; !ok {
		return nil, category.ErrCategoryNotFound
	}
	clone := *c
	r.byID[c.ID] = &clone
	return &clone, nil
}

func (r *stubCategoryRepo) DeleteWithItems(ctx context.Context, id uuid.UUID, userID uuid.UUID) ([]item.Item, error) {
	if _, ok := r.byID[id]; !ok {
		return nil, category.ErrCategoryNotFound
	}
	if r.deleteErr != nil {
		return nil, r.deleteErr
	}

	deleted := r.items[id]
	delete(r.items, id)
	delete(r.byID, id)
	return deleted, nil
}

type stubItemLoader struct{}

func (stubItemLoader) ListAll(ctx context.Context) ([]item.Item, error) { return nil, nil }

type recordingCleaner struct {
	enqueued [][]string
}

func (c *recordingCleaner) EnqueueAssetCleanup(assetIDs []string) error {
	c.enqueued = append(c.enqueued, assetIDs)
	return nil
}

func strPtr(s string) *string { return &s }

func setup() (*stubCategoryRepo, *collection.Store, *recordingCleaner, category.Service) {
	repo := newStubCategoryRepo()
	store := collection.NewStore(repo, stubItemLoader{})
	cleaner := &recordingCleaner{}
	svc := NewCategoryService(repo, store, cleaner)
	return repo, store, cleaner, svc
}

func TestCreate(t *testing.T) {
	_, store, _, svc := setup()
	userID := uuid.New()

	created, err := svc.Create(context.Background(), userID, category.CreateCategoryRequest{
		Name: "Vehicles",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, created.UserID)
	assert.Len(t, store.Snapshot().Categories, 1)
}

func TestCreate_ValidationAndMissingParent(t *testing.T) {
	_, _, _, svc := setup()
	userID := uuid.New()

	_, err := svc.Create(context.Background(), userID, category.CreateCategoryRequest{})
	assert.ErrorIs(t, err, category.ErrValidation)

	ghost := uuid.New()
	_, err = svc.Create(context.Background(), userID, category.CreateCategoryRequest{
		Name:     "Orphan",
		ParentID: &ghost,
	})
	assert.ErrorIs(t, err, category.ErrParentNotFound)
}

func TestUpdate_OwnershipEnforced(t *testing.T) {
	_, _, _, svc := setup()
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, category.CreateCategoryRequest{Name: "Figures"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), uuid.New(), created.ID, category.UpdateCategoryRequest{
		Name: strPtr("Stolen"),
	})
	assert.ErrorIs(t, err, category.ErrNotOwner)
}

func TestUpdate_SelfParentRejected(t *testing.T) {
	_, _, _, svc := setup()
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, category.CreateCategoryRequest{Name: "Figures"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), owner, created.ID, category.UpdateCategoryRequest{
		ParentID: &created.ID,
	})
	assert.ErrorIs(t, err, category.ErrCircularParent)
}

func TestUpdate_DescendantParentRejected(t *testing.T) {
	_, _, _, svc := setup()
	owner := uuid.New()

	root, err := svc.Create(context.Background(), owner, category.CreateCategoryRequest{Name: "Root"})
	require.NoError(t, err)
	child, err := svc.Create(context.Background(), owner, category.CreateCategoryRequest{
		Name:     "Child",
		ParentID: &root.ID,
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), owner, root.ID, category.UpdateCategoryRequest{
		ParentID: &child.ID,
	})
	assert.ErrorIs(t, err, category.ErrCircularParent)
}

func TestUpdate_ParentChainLookupFailureRejected(t *testing.T) {
	repo, _, _, svc := setup()
	owner := uuid.New()

	target, err := svc.Create(context.Background(), owner, category.CreateCategoryRequest{Name: "Target"})
	require.NoError(t, err)

	// A parent whose own ancestor row is missing: the walk cannot
	// prove the chain is acyclic, so the reparent must fail.
	ghost := uuid.New()
	broken := &category.Category{ID: uuid.New(), Name: "Broken", ParentID: &ghost, UserID: owner}
	repo.byID[broken.ID] = broken

	_, err = svc.Update(context.Background(), owner, target.ID, category.UpdateCategoryRequest{
		ParentID: &broken.ID,
	})
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}

func TestUpdate_ReplacedImageAssetEnqueued(t *testing.T) {
	_, _, cleaner, svc := setup()
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, category.CreateCategoryRequest{
		Name:    "Figures",
		Image:   strPtr("https://cdn/old/public"),
		AssetID: strPtr("old-asset"),
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), owner, created.ID, category.UpdateCategoryRequest{
		Image:   strPtr("https://cdn/new/public"),
		AssetID: strPtr("new-asset"),
	})
	require.NoError(t, err)

	require.Len(t, cleaner.enqueued, 1)
	assert.Equal(t, []string{"old-asset"}, cleaner.enqueued[0])
}

func TestDelete_CascadesOwnItemsAndQueuesAssets(t *testing.T) {
	repo, store, cleaner, svc := setup()
	owner := uuid.New()

	parent, err := svc.Create(context.Background(), owner, category.CreateCategoryRequest{
		Name:    "Parent",
		AssetID: strPtr("cat-asset"),
		Image:   strPtr("https://cdn/cat/public"),
	})
	require.NoError(t, err)
	child, err := svc.Create(context.Background(), owner, category.CreateCategoryRequest{
		Name:     "Child",
		ParentID: &parent.ID,
	})
	require.NoError(t, err)

	owned := item.Item{
		ID:         uuid.New(),
		CategoryID: parent.ID,
		AssetID:    strPtr("item-asset"),
		AssetIDs:   []string{"item-asset", "gallery-asset"},
		UserID:     owner,
	}
	nested := item.Item{ID: uuid.New(), CategoryID: child.ID, UserID: owner}
	repo.items[parent.ID] = []item.Item{owned}
	repo.items[child.ID] = []item.Item{nested}
	store.UpsertItem(owned)
	store.UpsertItem(nested)

	require.NoError(t, svc.Delete(context.Background(), owner, parent.ID))

	snap := store.Snapshot()
	require.Len(t, snap.Categories, 1, "child category survives as an orphan")
	assert.Equal(t, child.ID, snap.Categories[0].ID)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, nested.ID, snap.Items[0].ID)

	require.Len(t, cleaner.enqueued, 1)
	assert.ElementsMatch(t, []string{"cat-asset", "item-asset", "gallery-asset"}, cleaner.enqueued[0])
}

func TestDelete_FailureLeavesCatalogUntouched(t *testing.T) {
	repo, store, cleaner, svc := setup()
	owner := uuid.New()

	parent, err := svc.Create(context.Background(), owner, category.CreateCategoryRequest{
		Name:    "Parent",
		AssetID: strPtr("cat-asset"),
	})
	require.NoError(t, err)

	owned := item.Item{
		ID:         uuid.New(),
		CategoryID: parent.ID,
		AssetID:    strPtr("item-asset"),
		UserID:     owner,
	}
	repo.items[parent.ID] = []item.Item{owned}
	store.UpsertItem(owned)

	repo.deleteErr = errors.New("connection reset by peer")

	err = svc.Delete(context.Background(), owner, parent.ID)
	require.Error(t, err)

	// The rolled-back delete must not strand partial state anywhere:
	// rows, snapshot and cleanup queue all stay as they were.
	assert.Len(t, repo.items[parent.ID], 1)
	snap := store.Snapshot()
	assert.Len(t, snap.Categories, 1)
	assert.Len(t, snap.Items, 1)
	assert.Empty(t, cleaner.enqueued)
}
