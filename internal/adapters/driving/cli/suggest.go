package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
)

var suggestJSON bool

var suggestCmd = &cobra.Command{
	Use:   "suggest <prefix>",
	Short: "Autocomplete suggestions for a partial query",
	Long: `Returns autocomplete suggestions for a partial search query:
matching places plus tag, amenity and cuisine facet values, capped at
five entries per list.`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "output suggestions as JSON")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	suggestions, err := searchService.Suggest(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("suggest failed: %w", err)
	}

	if suggestJSON {
		return outputJSON(cmd, suggestions)
	}
	return outputSuggestions(cmd, suggestions)
}

func outputSuggestions(cmd *cobra.Command, s *domain.Suggestions) error {
	if len(s.Places) == 0 && len(s.Tags) == 0 && len(s.Amenities) == 0 && len(s.Cuisines) == 0 {
		cmd.Println("No suggestions.")
		return nil
	}

	if len(s.Places) > 0 {
		cmd.Println("Places:")
		for _, place := range s.Places {
			cmd.Printf("  %s (%s)\n", place.Name, place.Slug)
		}
	}
	printFacet(cmd, "Tags", s.Tags)
	printFacet(cmd, "Amenities", s.Amenities)
	printFacet(cmd, "Cuisines", s.Cuisines)
	return nil
}

func printFacet(cmd *cobra.Command, label string, values []string) {
	if len(values) == 0 {
		return
	}
	cmd.Printf("%s: %s\n", label, strings.Join(values, ", "))
}
