package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
)

func writeFixture(t *testing.T, dir string, places ...domain.Place) {
	t.Helper()

	index := make([]domain.PlaceIndex, 0, len(places))
	recordsPath := filepath.Join(dir, recordsDir)
	require.NoError(t, os.MkdirAll(recordsPath, 0755))

	for i := range places {
		p := &places[i]
		index = append(index, p.Index())
		data, err := json.Marshal(p)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(recordsPath, p.Slug+".json"), data, 0644))
	}

	data, err := json.Marshal(index)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, indexFile), data, 0644))
}

func fixturePlace(id, name, slug string) domain.Place {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return domain.Place{
		ID:           id,
		Name:         name,
		Slug:         slug,
		Description:  "A place worth visiting",
		Address:      "1 Main St",
		PriceRange:   domain.PriceModerate,
		Tags:         []string{"coffee"},
		CuisineTypes: []string{"cafe"},
		OperatingHours: domain.OperatingHours{
			"monday": {Open: "08:00", Close: "18:00"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestNewPlaceStore_MissingIndex(t *testing.T) {
	store, err := NewPlaceStore(t.TempDir())

	require.NoError(t, err)
	index, err := store.AllIndex(context.Background())
	require.NoError(t, err)
	assert.Empty(t, index)
}

func TestPlaceStore_AllIndex(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir,
		fixturePlace("id-1", "Aria Cafe", "aria-cafe"),
		fixturePlace("id-2", "Bodega Grill", "bodega-grill"),
	)

	store, err := NewPlaceStore(dir)
	require.NoError(t, err)

	index, err := store.AllIndex(context.Background())
	require.NoError(t, err)
	require.Len(t, index, 2)
	assert.Equal(t, "aria-cafe", index[0].Slug)
	assert.Equal(t, "08:00", index[0].OpenHours["monday"].Open)
}

func TestPlaceStore_GetBySlug(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, fixturePlace("id-1", "Aria Cafe", "aria-cafe"))

	store, err := NewPlaceStore(dir)
	require.NoError(t, err)

	place, err := store.GetBySlug(context.Background(), "aria-cafe")
	require.NoError(t, err)
	assert.Equal(t, "id-1", place.ID)
	assert.Equal(t, "Aria Cafe", place.Name)
}

func TestPlaceStore_GetBySlug_NotFound(t *testing.T) {
	store, err := NewPlaceStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.GetBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlaceStore_GetBySlug_RejectsTraversal(t *testing.T) {
	store, err := NewPlaceStore(t.TempDir())
	require.NoError(t, err)

	for _, slug := range []string{"../etc/passwd", "a/b", "a.b", ""} {
		_, err := store.GetBySlug(context.Background(), slug)
		assert.ErrorIs(t, err, domain.ErrNotFound, "slug %q", slug)
	}
}

func TestPlaceStore_GetByID(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, fixturePlace("id-1", "Aria Cafe", "aria-cafe"))

	store, err := NewPlaceStore(dir)
	require.NoError(t, err)

	place, err := store.GetByID(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, "aria-cafe", place.Slug)

	_, err = store.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlaceStore_Reload(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, fixturePlace("id-1", "Aria Cafe", "aria-cafe"))

	store, err := NewPlaceStore(dir)
	require.NoError(t, err)

	writeFixture(t, dir,
		fixturePlace("id-1", "Aria Cafe", "aria-cafe"),
		fixturePlace("id-2", "Bodega Grill", "bodega-grill"),
	)
	require.NoError(t, store.Reload())

	index, err := store.AllIndex(context.Background())
	require.NoError(t, err)
	assert.Len(t, index, 2)
}

func TestPlaceStore_ReadRecords(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir,
		fixturePlace("id-2", "Bodega Grill", "bodega-grill"),
		fixturePlace("id-1", "Aria Cafe", "aria-cafe"),
	)

	store, err := NewPlaceStore(dir)
	require.NoError(t, err)

	places, err := store.ReadRecords()
	require.NoError(t, err)
	require.Len(t, places, 2)
	// Sorted by file name.
	assert.Equal(t, "aria-cafe", places[0].Slug)
	assert.Equal(t, "bodega-grill", places[1].Slug)
}

func TestPlaceStore_WriteIndexRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPlaceStore(dir)
	require.NoError(t, err)

	p := fixturePlace("id-1", "Aria Cafe", "aria-cafe")
	require.NoError(t, store.WriteRecord(&p))
	require.NoError(t, store.WriteIndex([]domain.PlaceIndex{p.Index()}))

	reopened, err := NewPlaceStore(dir)
	require.NoError(t, err)

	index, err := reopened.AllIndex(context.Background())
	require.NoError(t, err)
	require.Len(t, index, 1)
	assert.Equal(t, "aria-cafe", index[0].Slug)

	place, err := reopened.GetBySlug(context.Background(), "aria-cafe")
	require.NoError(t, err)
	assert.Equal(t, "id-1", place.ID)
}

func TestPlaceStore_WriteRecord_BadSlug(t *testing.T) {
	store, err := NewPlaceStore(t.TempDir())
	require.NoError(t, err)

	p := fixturePlace("id-1", "Evil", "../evil")
	assert.ErrorIs(t, store.WriteRecord(&p), domain.ErrInvalidInput)
}

func TestPlaceStore_Watch_ReloadsOnIndexChange(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, fixturePlace("id-1", "Aria Cafe", "aria-cafe"))

	store, err := NewPlaceStore(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := store.Watch(ctx)
	require.NoError(t, err)

	writeFixture(t, dir,
		fixturePlace("id-1", "Aria Cafe", "aria-cafe"),
		fixturePlace("id-2", "Bodega Grill", "bodega-grill"),
	)

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload notification")
	}

	index, err := store.AllIndex(context.Background())
	require.NoError(t, err)
	assert.Len(t, index, 2)
}
