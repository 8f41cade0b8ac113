package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
)

func newTestCategory() *CategoryService {
	search, _ := newTestSearch(nil)
	return NewCategoryService(search)
}

func TestCategory_All(t *testing.T) {
	svc := newTestCategory()

	all := svc.All()

	assert.NotEmpty(t, all)
	for _, c := range all {
		assert.NotEmpty(t, c.Slug)
		assert.NotEmpty(t, c.Title)
		assert.False(t, c.Filters.Empty(), "category %s has no filters", c.Slug)
	}
}

func TestCategory_GetBySlug(t *testing.T) {
	svc := newTestCategory()

	c, err := svc.GetBySlug("coffee-shops")

	require.NoError(t, err)
	assert.Equal(t, "coffee-shops", c.Slug)
	assert.Equal(t, domain.CategoryCuisine, c.Type)
}

func TestCategory_GetBySlug_NotFound(t *testing.T) {
	svc := newTestCategory()

	_, err := svc.GetBySlug("haunted-houses")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategory_Slugs(t *testing.T) {
	svc := newTestCategory()

	slugs := svc.Slugs()

	assert.Len(t, slugs, len(svc.All()))
	assert.Contains(t, slugs, "budget-eats")
}

func TestCategory_CoversEveryLanding(t *testing.T) {
	svc := newTestCategory()

	slugs := svc.Slugs()

	for _, slug := range []string{
		"bars", "coffee-shops", "filipino-restaurants", "japanese-restaurants",
		"korean-restaurants", "italian-restaurants", "pet-friendly", "wifi-cafes",
		"budget-eats", "late-night", "pizza", "chinese-restaurants", "burger-joints",
		"breakfast-brunch", "vietnamese-restaurants", "mexican-restaurants",
		"thai-restaurants", "desserts", "romantic-date-spots", "vegetarian-vegan",
		"family-friendly", "instagram-worthy", "outdoor-seating", "group-dining",
		"fried-chicken",
	} {
		assert.Contains(t, slugs, slug)
	}
	assert.Len(t, slugs, 25)
}

func TestCategory_IsValid(t *testing.T) {
	svc := newTestCategory()

	assert.True(t, svc.IsValid("fried-chicken"))
	assert.True(t, svc.IsValid("romantic-date-spots"))
	assert.False(t, svc.IsValid("haunted-houses"))
	assert.False(t, svc.IsValid(""))
}

func TestCategory_Places_RunsPresetFilters(t *testing.T) {
	svc := newTestCategory()

	result, err := svc.Places(context.Background(), "budget-eats")

	require.NoError(t, err)
	// Budget tier only matches Rodic's in the fixture corpus.
	assert.Equal(t, []string{"rodics-diner"}, slugsOf(result.Places))
}

func TestCategory_Places_UnknownSlug(t *testing.T) {
	svc := newTestCategory()

	_, err := svc.Places(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
