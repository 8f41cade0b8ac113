package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
)

func TestServer_handleSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns matching places", func(t *testing.T) {
		mockSearch := &mockSearchService{
			result: &domain.SearchResult{
				Places: []domain.PlaceIndex{
					{
						Slug:         "aria-cafe",
						Name:         "Aria Cafe",
						Address:      "12 Harbor St",
						PriceRange:   domain.PriceModerate,
						CuisineTypes: []string{"cafe"},
					},
				},
			},
		}

		server, err := NewServer(&Ports{Search: mockSearch})
		require.NoError(t, err)

		input := SearchInput{Query: "aria", Tags: []string{"coffee"}}
		_, output, err := server.handleSearch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 1, output.Total)
		require.Len(t, output.Places, 1)
		assert.Equal(t, "aria-cafe", output.Places[0].Slug)
		assert.Equal(t, "$$", output.Places[0].PriceRange)
	})

	t.Run("forwards price tiers", func(t *testing.T) {
		mockSearch := &mockSearchService{}
		server, err := NewServer(&Ports{Search: mockSearch})
		require.NoError(t, err)

		input := SearchInput{PriceRanges: []string{"$", "$$"}}
		_, output, err := server.handleSearch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 0, output.Total)
	})

	t.Run("returns error on search failure", func(t *testing.T) {
		mockSearch := &mockSearchService{
			err: errors.New("search failed"),
		}

		server, err := NewServer(&Ports{Search: mockSearch})
		require.NoError(t, err)

		_, _, err = server.handleSearch(ctx, nil, SearchInput{Query: "test"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "search failed")
	})
}

func TestServer_handleSuggest(t *testing.T) {
	ctx := context.Background()

	t.Run("returns suggestions", func(t *testing.T) {
		mockSearch := &mockSearchService{
			suggestions: &domain.Suggestions{
				Places:    []domain.PlaceIndex{{Slug: "aria-cafe", Name: "Aria Cafe"}},
				Tags:      []string{"coffee"},
				Amenities: []string{"wifi"},
				Cuisines:  []string{"cafe"},
			},
		}

		server, err := NewServer(&Ports{Search: mockSearch})
		require.NoError(t, err)

		_, output, err := server.handleSuggest(ctx, nil, SuggestInput{Query: "ca"})

		require.NoError(t, err)
		require.Len(t, output.Places, 1)
		assert.Equal(t, "aria-cafe", output.Places[0].Slug)
		assert.Equal(t, []string{"coffee"}, output.Tags)
		assert.Equal(t, []string{"wifi"}, output.Amenities)
		assert.Equal(t, []string{"cafe"}, output.Cuisines)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mockSearch := &mockSearchService{err: errors.New("boom")}
		server, err := NewServer(&Ports{Search: mockSearch})
		require.NoError(t, err)

		_, _, err = server.handleSuggest(ctx, nil, SuggestInput{Query: "ca"})
		assert.Error(t, err)
	})
}

func TestServer_handleGetPlace(t *testing.T) {
	ctx := context.Background()

	directory := &mockDirectoryService{
		places: []domain.Place{
			{ID: "id-1", Slug: "aria-cafe", Name: "Aria Cafe"},
		},
	}

	server, err := NewServer(&Ports{
		Search:    &mockSearchService{},
		Directory: directory,
	})
	require.NoError(t, err)

	t.Run("returns full record", func(t *testing.T) {
		_, place, err := server.handleGetPlace(ctx, nil, GetPlaceInput{Slug: "aria-cafe"})

		require.NoError(t, err)
		require.NotNil(t, place)
		assert.Equal(t, "id-1", place.ID)
	})

	t.Run("unknown slug returns error", func(t *testing.T) {
		_, _, err := server.handleGetPlace(ctx, nil, GetPlaceInput{Slug: "missing"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
