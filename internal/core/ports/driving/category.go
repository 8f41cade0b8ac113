package driving

import (
	"context"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
)

// CategoryService exposes the curated landing-page presets.
type CategoryService interface {
	// All returns every category in declaration order.
	All() []domain.Category

	// GetBySlug resolves a category slug.
	// Returns domain.ErrNotFound for unknown slugs.
	GetBySlug(slug string) (*domain.Category, error)

	// Slugs returns all category slugs in declaration order.
	Slugs() []string

	// IsValid reports whether a slug names a known category.
	IsValid(slug string) bool

	// Places runs the category's preset filters through the search
	// engine and returns the result.
	Places(ctx context.Context, slug string) (*domain.SearchResult, error)
}
