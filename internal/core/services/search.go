package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
	"github.com/goodspot-labs/goodspot-cli/internal/core/ports/driven"
	"github.com/goodspot-labs/goodspot-cli/internal/core/ports/driving"
	"github.com/goodspot-labs/goodspot-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// suggestionLimit caps each autocomplete list.
const suggestionLimit = 5

// Field weights for fuzzy ranking. Name dominates, cuisine and
// specialties follow, tags sit between them and the baseline fields.
const (
	weightName        = 2.0
	weightCuisine     = 1.5
	weightSpecialties = 1.5
	weightTags        = 1.2
	weightDescription = 1.0
	weightAmenities   = 1.0
)

// SearchService is the search and filter engine over the index corpus.
type SearchService struct {
	placeStore driven.PlaceStore
	favorites  driven.FavoritesProvider
	now        func() time.Time
}

// NewSearchService creates a new search service.
// The favorites provider is optional (can be nil); without one the
// favorites-only filter matches nothing.
func NewSearchService(placeStore driven.PlaceStore, favorites driven.FavoritesProvider) *SearchService {
	return &SearchService{
		placeStore: placeStore,
		favorites:  favorites,
		now:        time.Now,
	}
}

// SetClock overrides the time source used by the open-now filter.
// Intended for tests.
func (s *SearchService) SetClock(now func() time.Time) {
	s.now = now
}

// Search runs the fixed narrowing pipeline: fuzzy text ranking first,
// then the structured filters in declaration order. Each stage narrows
// the candidate set of the previous one; later stages never widen it.
func (s *SearchService) Search(ctx context.Context, filters domain.SearchFilters) (*domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Filters: %+v", filters)

	candidates, err := s.placeStore.AllIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading index: %w", err)
	}
	logger.Debug("Corpus: %d places", len(candidates))

	if query := strings.TrimSpace(filters.Query); query != "" {
		candidates = rankFuzzy(candidates, query)
		logger.Debug("After fuzzy ranking: %d", len(candidates))
	}

	if len(filters.Keywords) > 0 {
		candidates = filterPlaces(candidates, func(p domain.PlaceIndex) bool {
			return anyKeywordMatches(p, filters.Keywords)
		})
		logger.Debug("After keywords: %d", len(candidates))
	}

	if len(filters.Tags) > 0 {
		candidates = filterPlaces(candidates, func(p domain.PlaceIndex) bool {
			return containsAny(p.Tags, filters.Tags)
		})
		logger.Debug("After tags: %d", len(candidates))
	}

	if len(filters.Amenities) > 0 {
		candidates = filterPlaces(candidates, func(p domain.PlaceIndex) bool {
			return containsAll(p.Amenities, filters.Amenities)
		})
		logger.Debug("After amenities: %d", len(candidates))
	}

	if len(filters.CuisineTypes) > 0 {
		candidates = filterPlaces(candidates, func(p domain.PlaceIndex) bool {
			return containsAny(p.CuisineTypes, filters.CuisineTypes)
		})
		logger.Debug("After cuisines: %d", len(candidates))
	}

	if len(filters.PriceRanges) > 0 {
		tiers := make(map[domain.PriceRange]bool, len(filters.PriceRanges))
		for _, tier := range filters.PriceRanges {
			tiers[tier] = true
		}
		candidates = filterPlaces(candidates, func(p domain.PlaceIndex) bool {
			return tiers[p.PriceRange]
		})
		logger.Debug("After price: %d", len(candidates))
	}

	if filters.OpenNow {
		now := s.now()
		candidates = filterPlaces(candidates, func(p domain.PlaceIndex) bool {
			// Index files without projected hours predate the field;
			// those places are treated as not open.
			return p.OpenHours.OpenAt(now)
		})
		logger.Debug("After open-now: %d", len(candidates))
	}

	if filters.FavoritesOnly {
		candidates, err = s.filterFavorites(ctx, candidates)
		if err != nil {
			return nil, fmt.Errorf("favorites filter: %w", err)
		}
		logger.Debug("After favorites: %d", len(candidates))
	}

	logger.Info("Final results: %d", len(candidates))

	return &domain.SearchResult{
		Places:  candidates,
		Total:   len(candidates),
		Filters: filters,
	}, nil
}

// Suggest assembles the bounded multi-category autocomplete payload.
func (s *SearchService) Suggest(ctx context.Context, query string) (*domain.Suggestions, error) {
	suggestions := &domain.Suggestions{
		Places:    []domain.PlaceIndex{},
		Tags:      []string{},
		Amenities: []string{},
		Cuisines:  []string{},
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return suggestions, nil
	}

	corpus, err := s.placeStore.AllIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading index: %w", err)
	}

	ranked := rankFuzzy(corpus, query)
	if len(ranked) > suggestionLimit {
		ranked = ranked[:suggestionLimit]
	}
	suggestions.Places = ranked

	lower := strings.ToLower(query)
	suggestions.Tags = matchUniverse(distinct(corpus, func(p domain.PlaceIndex) []string { return p.Tags }), lower)
	suggestions.Amenities = matchUniverse(distinct(corpus, func(p domain.PlaceIndex) []string { return p.Amenities }), lower)
	suggestions.Cuisines = matchUniverse(distinct(corpus, func(p domain.PlaceIndex) []string { return p.CuisineTypes }), lower)

	return suggestions, nil
}

// filterFavorites keeps only places whose id is in the favorites set.
// Without a provider nothing matches.
func (s *SearchService) filterFavorites(ctx context.Context, candidates []domain.PlaceIndex) ([]domain.PlaceIndex, error) {
	if s.favorites == nil {
		logger.Warn("Favorites filter requested but no provider configured")
		return []domain.PlaceIndex{}, nil
	}

	kept := make([]domain.PlaceIndex, 0, len(candidates))
	for _, p := range candidates {
		fav, err := s.favorites.IsFavorite(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		if fav {
			kept = append(kept, p)
		}
	}
	return kept, nil
}

// fieldSource adapts one text field of the candidate set to fuzzy.Source.
type fieldSource struct {
	places  []domain.PlaceIndex
	extract func(domain.PlaceIndex) string
}

func (f fieldSource) String(i int) string { return f.extract(f.places[i]) }
func (f fieldSource) Len() int            { return len(f.places) }

// rankFuzzy scores every candidate against the query across the
// weighted fields and returns the matches best-first. Score is the
// weighted sum of per-field fuzzy scores; ties keep corpus order so
// repeated searches stay deterministic.
func rankFuzzy(candidates []domain.PlaceIndex, query string) []domain.PlaceIndex {
	fields := []struct {
		weight  float64
		extract func(domain.PlaceIndex) string
	}{
		{weightName, func(p domain.PlaceIndex) string { return p.Name }},
		{weightCuisine, func(p domain.PlaceIndex) string { return strings.Join(p.CuisineTypes, " ") }},
		{weightSpecialties, func(p domain.PlaceIndex) string { return strings.Join(p.Specialties, " ") }},
		{weightTags, func(p domain.PlaceIndex) string { return strings.Join(p.Tags, " ") }},
		{weightDescription, func(p domain.PlaceIndex) string { return p.Description }},
		{weightAmenities, func(p domain.PlaceIndex) string { return strings.Join(p.Amenities, " ") }},
	}

	scores := make(map[int]float64)
	for _, field := range fields {
		matches := fuzzy.FindFrom(query, fieldSource{places: candidates, extract: field.extract})
		for _, m := range matches {
			scores[m.Index] += float64(m.Score) * field.weight
		}
	}

	matched := make([]int, 0, len(scores))
	for i := range scores {
		matched = append(matched, i)
	}
	sort.SliceStable(matched, func(a, b int) bool {
		if scores[matched[a]] != scores[matched[b]] {
			return scores[matched[a]] > scores[matched[b]]
		}
		return matched[a] < matched[b]
	})

	ranked := make([]domain.PlaceIndex, len(matched))
	for i, idx := range matched {
		ranked[i] = candidates[idx]
	}
	return ranked
}

// anyKeywordMatches reports whether any keyword appears in any of the
// place's tags, amenities, cuisine types or specialties.
func anyKeywordMatches(p domain.PlaceIndex, keywords []string) bool {
	for _, set := range [][]string{p.Tags, p.Amenities, p.CuisineTypes, p.Specialties} {
		if containsAny(set, keywords) {
			return true
		}
	}
	return false
}

// containsAny reports whether any wanted value is present in values.
func containsAny(values, wanted []string) bool {
	for _, w := range wanted {
		for _, v := range values {
			if v == w {
				return true
			}
		}
	}
	return false
}

// containsAll reports whether every wanted value is present in values.
func containsAll(values, wanted []string) bool {
	for _, w := range wanted {
		found := false
		for _, v := range values {
			if v == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// filterPlaces keeps the candidates satisfying the predicate,
// preserving order.
func filterPlaces(candidates []domain.PlaceIndex, keep func(domain.PlaceIndex) bool) []domain.PlaceIndex {
	filtered := make([]domain.PlaceIndex, 0, len(candidates))
	for _, p := range candidates {
		if keep(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// distinct unions one set field across the corpus, deduplicated and sorted.
func distinct(corpus []domain.PlaceIndex, extract func(domain.PlaceIndex) []string) []string {
	seen := make(map[string]bool)
	for _, p := range corpus {
		for _, v := range extract(p) {
			seen[v] = true
		}
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// matchUniverse keeps universe entries containing the lowercase query,
// capped at the suggestion limit.
func matchUniverse(universe []string, lowerQuery string) []string {
	matched := make([]string, 0, suggestionLimit)
	for _, v := range universe {
		if strings.Contains(strings.ToLower(v), lowerQuery) {
			matched = append(matched, v)
			if len(matched) == suggestionLimit {
				break
			}
		}
	}
	return matched
}
