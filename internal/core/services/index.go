package services

import (
	"fmt"
	"sort"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
)

// BuildIndex projects full records down to their listing form, sorted
// alphabetically by name. This is the mechanical regeneration step run
// whenever any full record changes.
//
// Slug and id uniqueness are enforced here because the slug is the
// global lookup key: a duplicate would shadow another record.
func BuildIndex(places []domain.Place) ([]domain.PlaceIndex, error) {
	slugs := make(map[string]bool, len(places))
	ids := make(map[string]bool, len(places))

	index := make([]domain.PlaceIndex, 0, len(places))
	for i := range places {
		p := &places[i]
		if slugs[p.Slug] {
			return nil, fmt.Errorf("slug %q: %w", p.Slug, domain.ErrAlreadyExists)
		}
		if ids[p.ID] {
			return nil, fmt.Errorf("id %q: %w", p.ID, domain.ErrAlreadyExists)
		}
		slugs[p.Slug] = true
		ids[p.ID] = true
		index = append(index, p.Index())
	}

	sort.Slice(index, func(a, b int) bool {
		return index[a].Name < index[b].Name
	})

	return index, nil
}
