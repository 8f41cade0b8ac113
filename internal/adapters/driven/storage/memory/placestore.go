package memory

import (
	"context"
	"sync"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
	"github.com/goodspot-labs/goodspot-cli/internal/core/ports/driven"
)

// Ensure PlaceStore implements the interface.
var _ driven.PlaceStore = (*PlaceStore)(nil)

// PlaceStore is an in-memory implementation of driven.PlaceStore.
// The listing order is the insertion order, so callers that need a
// stable corpus get one without sorting on every read.
type PlaceStore struct {
	mu     sync.RWMutex
	places map[string]domain.Place
	bySlug map[string]string
	order  []string
}

// NewPlaceStore creates a new in-memory place store.
func NewPlaceStore() *PlaceStore {
	return &PlaceStore{
		places: make(map[string]domain.Place),
		bySlug: make(map[string]string),
	}
}

// Save stores or updates a place. A slug already claimed by a
// different place is rejected.
func (s *PlaceStore) Save(_ context.Context, place *domain.Place) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if owner, ok := s.bySlug[place.Slug]; ok && owner != place.ID {
		return domain.ErrAlreadyExists
	}
	if existing, ok := s.places[place.ID]; ok {
		if existing.Slug != place.Slug {
			delete(s.bySlug, existing.Slug)
		}
	} else {
		s.order = append(s.order, place.ID)
	}
	s.places[place.ID] = *place
	s.bySlug[place.Slug] = place.ID
	return nil
}

// AllIndex returns the listing form of every stored place.
func (s *PlaceStore) AllIndex(_ context.Context) ([]domain.PlaceIndex, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	index := make([]domain.PlaceIndex, 0, len(s.order))
	for _, id := range s.order {
		place := s.places[id]
		index = append(index, place.Index())
	}
	return index, nil
}

// GetBySlug retrieves a full place record by its slug.
func (s *PlaceStore) GetBySlug(_ context.Context, slug string) (*domain.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.bySlug[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	place := s.places[id]
	return &place, nil
}

// GetByID retrieves a full place record by its id.
func (s *PlaceStore) GetByID(_ context.Context, id string) (*domain.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	place, ok := s.places[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &place, nil
}

// Delete removes a place by id.
func (s *PlaceStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	place, ok := s.places[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(s.places, id)
	delete(s.bySlug, place.Slug)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
