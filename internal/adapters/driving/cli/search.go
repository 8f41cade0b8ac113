package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
)

var (
	searchTags      []string
	searchAmenities []string
	searchCuisines  []string
	searchKeywords  []string
	searchPrices    []string
	searchOpenNow   bool
	searchFavorites bool
	searchJSON      bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the place directory",
	Long: `Searches the place directory with fuzzy matching and structured filters.

The query matches names, descriptions, cuisines, specialties, tags and
amenities with typo tolerance. Filters narrow the result set:
  --tags and --cuisines match places having ANY of the given values,
  --amenities matches places having ALL of the given values.

With no query and no filters, every place is returned.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringSliceVar(&searchTags, "tags", nil, "filter by tags (any match)")
	searchCmd.Flags().StringSliceVar(&searchAmenities, "amenities", nil, "filter by amenities (all must match)")
	searchCmd.Flags().StringSliceVar(&searchCuisines, "cuisines", nil, "filter by cuisine types (any match)")
	searchCmd.Flags().StringSliceVar(&searchKeywords, "keywords", nil, "filter by keywords across all facets (any match)")
	searchCmd.Flags().StringSliceVar(&searchPrices, "price", nil, "filter by price tiers ($, $$, $$$, $$$$)")
	searchCmd.Flags().BoolVar(&searchOpenNow, "open-now", false, "only places open right now")
	searchCmd.Flags().BoolVar(&searchFavorites, "favorites", false, "only favorite places")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	filters := domain.SearchFilters{
		Keywords:      searchKeywords,
		Tags:          searchTags,
		Amenities:     searchAmenities,
		CuisineTypes:  searchCuisines,
		OpenNow:       searchOpenNow,
		FavoritesOnly: searchFavorites,
	}
	if len(args) > 0 {
		filters.Query = args[0]
	}

	for _, raw := range searchPrices {
		price := domain.PriceRange(strings.TrimSpace(raw))
		if !price.Valid() {
			return fmt.Errorf("unknown price tier %q (use $, $$, $$$ or $$$$)", raw)
		}
		filters.PriceRanges = append(filters.PriceRanges, price)
	}

	result, err := searchService.Search(cmd.Context(), filters)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputJSON(cmd, result)
	}
	return outputSearchTable(cmd, result)
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, result *domain.SearchResult) error {
	if result.Total == 0 {
		cmd.Println("No places found.")
		return nil
	}

	cmd.Printf("Found %d place(s):\n", result.Total)
	cmd.Println()
	for i, place := range result.Places {
		cmd.Printf("  [%d] %s (%s)\n", i+1, place.Name, place.PriceRange)
		cmd.Printf("      %s\n", place.Address)
		if len(place.CuisineTypes) > 0 {
			cmd.Printf("      Cuisines: %s\n", strings.Join(place.CuisineTypes, ", "))
		}
		if len(place.Tags) > 0 {
			cmd.Printf("      Tags: %s\n", strings.Join(place.Tags, ", "))
		}
		cmd.Printf("      Slug: %s\n", place.Slug)
		cmd.Println()
	}
	return nil
}
