package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/goodspot-labs/goodspot-cli/internal/core/ports/driven"
)

// Ensure FavoritesStore implements the interface.
var _ driven.FavoritesStore = (*FavoritesStore)(nil)

// FavoritesStore is an in-memory implementation of driven.FavoritesStore.
type FavoritesStore struct {
	mu  sync.RWMutex
	ids map[string]bool
}

// NewFavoritesStore creates a new in-memory favorites store.
func NewFavoritesStore() *FavoritesStore {
	return &FavoritesStore{ids: make(map[string]bool)}
}

// IsFavorite reports whether the place id is marked as a favorite.
func (s *FavoritesStore) IsFavorite(_ context.Context, placeID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ids[placeID], nil
}

// Add marks a place id as a favorite. Adding twice is a no-op.
func (s *FavoritesStore) Add(_ context.Context, placeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[placeID] = true
	return nil
}

// Remove unmarks a place id. Removing an absent id is a no-op.
func (s *FavoritesStore) Remove(_ context.Context, placeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ids, placeID)
	return nil
}

// List returns every favorite place id, sorted.
func (s *FavoritesStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
