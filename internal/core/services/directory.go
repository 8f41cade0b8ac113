package services

import (
	"context"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
	"github.com/goodspot-labs/goodspot-cli/internal/core/ports/driven"
	"github.com/goodspot-labs/goodspot-cli/internal/core/ports/driving"
)

// Ensure DirectoryService implements the interface.
var _ driving.DirectoryService = (*DirectoryService)(nil)

// DirectoryService exposes the index/detail split over the place corpus.
type DirectoryService struct {
	placeStore driven.PlaceStore
}

// NewDirectoryService creates a new directory service.
func NewDirectoryService(placeStore driven.PlaceStore) *DirectoryService {
	return &DirectoryService{placeStore: placeStore}
}

// AllPlaces returns every place's lightweight projection in stable
// storage order.
func (s *DirectoryService) AllPlaces(ctx context.Context) ([]domain.PlaceIndex, error) {
	return s.placeStore.AllIndex(ctx)
}

// GetBySlug resolves a slug to its full record.
func (s *DirectoryService) GetBySlug(ctx context.Context, slug string) (*domain.Place, error) {
	return s.placeStore.GetBySlug(ctx, slug)
}

// GetByID resolves a stable id to its full record.
func (s *DirectoryService) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	return s.placeStore.GetByID(ctx, id)
}

// AllTags returns the distinct sorted union of tags across the corpus.
func (s *DirectoryService) AllTags(ctx context.Context) ([]string, error) {
	return s.universe(ctx, func(p domain.PlaceIndex) []string { return p.Tags })
}

// AllAmenities returns the distinct sorted union of amenities.
func (s *DirectoryService) AllAmenities(ctx context.Context) ([]string, error) {
	return s.universe(ctx, func(p domain.PlaceIndex) []string { return p.Amenities })
}

// AllCuisineTypes returns the distinct sorted union of cuisine types.
func (s *DirectoryService) AllCuisineTypes(ctx context.Context) ([]string, error) {
	return s.universe(ctx, func(p domain.PlaceIndex) []string { return p.CuisineTypes })
}

func (s *DirectoryService) universe(ctx context.Context, extract func(domain.PlaceIndex) []string) ([]string, error) {
	corpus, err := s.placeStore.AllIndex(ctx)
	if err != nil {
		return nil, err
	}
	return distinct(corpus, extract), nil
}
