package driving

import (
	"context"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
)

// DirectoryService exposes the index/detail split over the place corpus.
type DirectoryService interface {
	// AllPlaces returns every place's lightweight projection in stable
	// storage order.
	AllPlaces(ctx context.Context) ([]domain.PlaceIndex, error)

	// GetBySlug resolves a slug to its full record.
	// Returns domain.ErrNotFound when the slug is unknown.
	GetBySlug(ctx context.Context, slug string) (*domain.Place, error)

	// GetByID resolves a stable id to its full record.
	// Returns domain.ErrNotFound when the id is unknown.
	GetByID(ctx context.Context, id string) (*domain.Place, error)

	// AllTags returns the distinct sorted union of tags across the corpus.
	AllTags(ctx context.Context) ([]string, error)

	// AllAmenities returns the distinct sorted union of amenities.
	AllAmenities(ctx context.Context) ([]string, error)

	// AllCuisineTypes returns the distinct sorted union of cuisines.
	AllCuisineTypes(ctx context.Context) ([]string, error)
}
