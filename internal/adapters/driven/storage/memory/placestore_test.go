package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
)

func TestNewPlaceStore(t *testing.T) {
	store := NewPlaceStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.places)
	assert.NotNil(t, store.bySlug)
}

func testPlace(id, name, slug string) *domain.Place {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Place{
		ID:           id,
		Name:         name,
		Slug:         slug,
		Description:  "A place worth visiting",
		Address:      "1 Main St",
		PriceRange:   domain.PriceModerate,
		CuisineTypes: []string{"cafe"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestPlaceStore_SaveAndGet(t *testing.T) {
	store := NewPlaceStore()
	ctx := context.Background()

	err := store.Save(ctx, testPlace("id-1", "Aria Cafe", "aria-cafe"))
	require.NoError(t, err)

	bySlug, err := store.GetBySlug(ctx, "aria-cafe")
	require.NoError(t, err)
	assert.Equal(t, "id-1", bySlug.ID)

	byID, err := store.GetByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "aria-cafe", byID.Slug)
}

func TestPlaceStore_GetNotFound(t *testing.T) {
	store := NewPlaceStore()
	ctx := context.Background()

	_, err := store.GetBySlug(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = store.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlaceStore_SaveRejectsSlugCollision(t *testing.T) {
	store := NewPlaceStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testPlace("id-1", "Aria Cafe", "aria-cafe")))

	err := store.Save(ctx, testPlace("id-2", "Impostor", "aria-cafe"))
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestPlaceStore_SaveUpdatesSlugMapping(t *testing.T) {
	store := NewPlaceStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testPlace("id-1", "Aria Cafe", "aria-cafe")))
	require.NoError(t, store.Save(ctx, testPlace("id-1", "Aria Cafe", "aria-coffee")))

	_, err := store.GetBySlug(ctx, "aria-cafe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := store.GetBySlug(ctx, "aria-coffee")
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)
}

func TestPlaceStore_AllIndexPreservesInsertionOrder(t *testing.T) {
	store := NewPlaceStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testPlace("id-1", "Zushi", "zushi")))
	require.NoError(t, store.Save(ctx, testPlace("id-2", "Aria Cafe", "aria-cafe")))

	index, err := store.AllIndex(ctx)
	require.NoError(t, err)
	require.Len(t, index, 2)
	assert.Equal(t, "zushi", index[0].Slug)
	assert.Equal(t, "aria-cafe", index[1].Slug)
}

func TestPlaceStore_Delete(t *testing.T) {
	store := NewPlaceStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testPlace("id-1", "Aria Cafe", "aria-cafe")))
	require.NoError(t, store.Delete(ctx, "id-1"))

	_, err := store.GetByID(ctx, "id-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = store.GetBySlug(ctx, "aria-cafe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	index, err := store.AllIndex(ctx)
	require.NoError(t, err)
	assert.Empty(t, index)
}

func TestPlaceStore_DeleteNotFound(t *testing.T) {
	store := NewPlaceStore()

	err := store.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlaceStore_GetReturnsCopy(t *testing.T) {
	store := NewPlaceStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testPlace("id-1", "Aria Cafe", "aria-cafe")))

	got, err := store.GetByID(ctx, "id-1")
	require.NoError(t, err)
	got.Name = "Mutated"

	again, err := store.GetByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "Aria Cafe", again.Name)
}

func TestPlaceStore_ConcurrentAccess(t *testing.T) {
	store := NewPlaceStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("id-%d", n)
			slug := fmt.Sprintf("place-%d", n)
			_ = store.Save(ctx, testPlace(id, "Place", slug))
			_, _ = store.GetByID(ctx, id)
			_, _ = store.AllIndex(ctx)
		}(i)
	}
	wg.Wait()

	index, err := store.AllIndex(ctx)
	require.NoError(t, err)
	assert.Len(t, index, 10)
}
