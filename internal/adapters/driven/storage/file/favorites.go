package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/goodspot-labs/goodspot-cli/internal/core/ports/driven"
)

// Ensure FavoritesStore implements the interface.
var _ driven.FavoritesStore = (*FavoritesStore)(nil)

// FavoritesStore persists favorite place ids as a JSON array.
type FavoritesStore struct {
	mu       sync.RWMutex
	filePath string
	ids      map[string]bool
}

// NewFavoritesStore creates a favorites store backed by filePath. A
// missing file means no favorites yet.
func NewFavoritesStore(filePath string) (*FavoritesStore, error) {
	s := &FavoritesStore{
		filePath: filePath,
		ids:      make(map[string]bool),
	}

	data, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading favorites: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("decoding favorites: %w", err)
	}
	for _, id := range ids {
		s.ids[id] = true
	}
	return s, nil
}

// IsFavorite reports whether the place id is marked as a favorite.
func (s *FavoritesStore) IsFavorite(_ context.Context, placeID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ids[placeID], nil
}

// Add marks a place id as a favorite and persists the change.
func (s *FavoritesStore) Add(_ context.Context, placeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ids[placeID] {
		return nil
	}
	s.ids[placeID] = true
	return s.flush()
}

// Remove unmarks a place id and persists the change.
func (s *FavoritesStore) Remove(_ context.Context, placeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ids[placeID] {
		return nil
	}
	delete(s.ids, placeID)
	return s.flush()
}

// List returns every favorite place id, sorted.
func (s *FavoritesStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sorted(), nil
}

// flush writes the current id set to disk. Caller holds the lock.
func (s *FavoritesStore) flush() error {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0700); err != nil {
		return fmt.Errorf("creating favorites dir: %w", err)
	}
	data, err := json.MarshalIndent(s.sorted(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding favorites: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("writing favorites: %w", err)
	}
	return nil
}

func (s *FavoritesStore) sorted() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
