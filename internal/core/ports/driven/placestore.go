package driven

import (
	"context"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
)

// PlaceStore provides read access to the place corpus.
//
// The corpus is an immutable snapshot assembled by an external build
// step; the core never mutates place data. AllIndex is an in-memory
// read, while GetBySlug may perform an on-demand record fetch and is
// the only suspension point in the core.
type PlaceStore interface {
	// AllIndex returns every place's lightweight projection in storage
	// order (alphabetical by name by convention). The order is stable
	// across calls within a process lifetime.
	AllIndex(ctx context.Context) ([]domain.PlaceIndex, error)

	// GetBySlug resolves a slug to its full record.
	// Returns domain.ErrNotFound when the slug is not in the corpus.
	GetBySlug(ctx context.Context, slug string) (*domain.Place, error)

	// GetByID resolves a stable id to its full record, via the index.
	// Returns domain.ErrNotFound when no index entry has that id.
	GetByID(ctx context.Context, id string) (*domain.Place, error)
}
