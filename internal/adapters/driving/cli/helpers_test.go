package cli

import (
	"context"
	"time"

	"github.com/goodspot-labs/goodspot-cli/internal/adapters/driven/storage/memory"
	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
	"github.com/goodspot-labs/goodspot-cli/internal/core/services"
)

// setupTestServices wires real services over in-memory stores and
// returns a cleanup function restoring the previous wiring.
func setupTestServices() func() {
	prevSearch := searchService
	prevDirectory := directoryService
	prevCategory := categoryService
	prevValidation := validationService
	prevSettings := settingsService
	prevFavorites := favoritesStore

	store := memory.NewPlaceStore()
	ctx := context.Background()
	for _, place := range testCorpus() {
		p := place
		_ = store.Save(ctx, &p)
	}

	favorites := memory.NewFavoritesStore()
	search := services.NewSearchService(store, favorites)

	searchService = search
	directoryService = services.NewDirectoryService(store)
	categoryService = services.NewCategoryService(search)
	validationService = services.NewValidationService()
	settingsService = nil
	favoritesStore = favorites

	return func() {
		searchService = prevSearch
		directoryService = prevDirectory
		categoryService = prevCategory
		validationService = prevValidation
		settingsService = prevSettings
		favoritesStore = prevFavorites
	}
}

func testCorpus() []domain.Place {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return []domain.Place{
		{
			ID:           "8c7e6bc4-3f24-4d43-9e3f-2b6a3cf0a111",
			Name:         "Aria Cafe",
			Slug:         "aria-cafe",
			Description:  "Quiet espresso bar with pour overs",
			Address:      "12 Harbor St",
			PriceRange:   domain.PriceModerate,
			Tags:         []string{"coffee", "quiet"},
			Amenities:    []string{"wifi"},
			CuisineTypes: []string{"cafe"},
			Specialties:  []string{"flat white"},
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "9d8f7cd5-4a35-4e54-af4a-3c7b4da1b222",
			Name:         "Bodega Grill",
			Slug:         "bodega-grill",
			Description:  "Smoky grill plates and craft beer",
			Address:      "44 Pier Ave",
			PriceRange:   domain.PriceUpscale,
			Tags:         []string{"grill", "beer"},
			Amenities:    []string{"wifi", "parking"},
			CuisineTypes: []string{"american"},
			Specialties:  []string{"brisket"},
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}
