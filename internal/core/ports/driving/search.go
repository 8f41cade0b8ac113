package driving

import (
	"context"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
)

// SearchService provides fuzzy search and structured filtering over the
// place corpus.
type SearchService interface {
	// Search returns the ordered matching subset of the index corpus
	// for the given filters, the match count, and the filters echoed
	// back. An empty filter set returns the whole corpus in storage
	// order. Unknown filter values match nothing; they never error.
	Search(ctx context.Context, filters domain.SearchFilters) (*domain.SearchResult, error)

	// Suggest assembles the bounded autocomplete payload for a partial
	// query. A blank query returns four empty lists without scanning
	// the corpus.
	Suggest(ctx context.Context, query string) (*domain.Suggestions, error)
}
