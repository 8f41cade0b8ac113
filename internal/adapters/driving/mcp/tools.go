package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
)

// SearchInput is the input schema for the search_places tool.
type SearchInput struct {
	Query        string   `json:"query,omitempty" jsonschema:"free-text query matched fuzzily against names, descriptions and facets"`
	Keywords     []string `json:"keywords,omitempty" jsonschema:"keep places having any of these keywords in any facet"`
	Tags         []string `json:"tags,omitempty" jsonschema:"keep places having any of these tags"`
	Amenities    []string `json:"amenities,omitempty" jsonschema:"keep places having all of these amenities"`
	CuisineTypes []string `json:"cuisineTypes,omitempty" jsonschema:"keep places having any of these cuisine types"`
	PriceRanges  []string `json:"priceRanges,omitempty" jsonschema:"keep places in any of these price tiers ($ to $$$$)"`
	OpenNow      bool     `json:"openNow,omitempty" jsonschema:"keep only places open right now"`
}

// SearchOutput is the output schema for the search_places tool.
type SearchOutput struct {
	Places []PlaceOutput `json:"places"`
	Total  int           `json:"total"`
}

// PlaceOutput represents a single place listing.
type PlaceOutput struct {
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Address      string   `json:"address"`
	PriceRange   string   `json:"priceRange"`
	CuisineTypes []string `json:"cuisineTypes,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Amenities    []string `json:"amenities,omitempty"`
}

// SuggestInput is the input schema for the suggest tool.
type SuggestInput struct {
	Query string `json:"query" jsonschema:"the partial search query to autocomplete"`
}

// SuggestOutput is the output schema for the suggest tool.
type SuggestOutput struct {
	Places    []PlaceOutput `json:"places"`
	Tags      []string      `json:"tags"`
	Amenities []string      `json:"amenities"`
	Cuisines  []string      `json:"cuisines"`
}

// GetPlaceInput is the input schema for the get_place tool.
type GetPlaceInput struct {
	Slug string `json:"slug" jsonschema:"the slug identifying the place"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_places",
		Description: "Search the place directory with fuzzy matching and structured filters",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "suggest",
		Description: "Autocomplete suggestions for a partial query: places plus tag, amenity and cuisine values",
	}, s.handleSuggest)

	if s.ports.Directory != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "get_place",
			Description: "Get the full record for a place by slug",
		}, s.handleGetPlace)
	}
}

// handleSearch handles the search_places tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	filters := domain.SearchFilters{
		Query:        input.Query,
		Keywords:     input.Keywords,
		Tags:         input.Tags,
		Amenities:    input.Amenities,
		CuisineTypes: input.CuisineTypes,
		OpenNow:      input.OpenNow,
	}
	for _, raw := range input.PriceRanges {
		filters.PriceRanges = append(filters.PriceRanges, domain.PriceRange(raw))
	}

	result, err := s.ports.Search.Search(ctx, filters)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Places: placeOutputs(result.Places),
		Total:  result.Total,
	}
	return nil, output, nil
}

// handleSuggest handles the suggest tool invocation.
func (s *Server) handleSuggest(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SuggestInput,
) (*mcp.CallToolResult, SuggestOutput, error) {
	suggestions, err := s.ports.Search.Suggest(ctx, input.Query)
	if err != nil {
		return nil, SuggestOutput{}, err
	}

	output := SuggestOutput{
		Places:    placeOutputs(suggestions.Places),
		Tags:      suggestions.Tags,
		Amenities: suggestions.Amenities,
		Cuisines:  suggestions.Cuisines,
	}
	return nil, output, nil
}

// handleGetPlace handles the get_place tool invocation.
func (s *Server) handleGetPlace(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetPlaceInput,
) (*mcp.CallToolResult, *domain.Place, error) {
	place, err := s.ports.Directory.GetBySlug(ctx, input.Slug)
	if err != nil {
		return nil, nil, err
	}
	return nil, place, nil
}

func placeOutputs(places []domain.PlaceIndex) []PlaceOutput {
	outputs := make([]PlaceOutput, len(places))
	for i, place := range places {
		outputs[i] = PlaceOutput{
			Slug:         place.Slug,
			Name:         place.Name,
			Description:  place.Description,
			Address:      place.Address,
			PriceRange:   string(place.PriceRange),
			CuisineTypes: place.CuisineTypes,
			Tags:         place.Tags,
			Amenities:    place.Amenities,
		}
	}
	return outputs
}
