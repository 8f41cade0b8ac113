// Package cli implements the goodspot command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/goodspot-labs/goodspot-cli/internal/core/ports/driven"
	"github.com/goodspot-labs/goodspot-cli/internal/core/ports/driving"
	"github.com/goodspot-labs/goodspot-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services are injected by the composition root before Execute runs.
var (
	searchService     driving.SearchService
	directoryService  driving.DirectoryService
	categoryService   driving.CategoryService
	validationService driving.ValidationService
	settingsService   driving.SettingsService
	favoritesStore    driven.FavoritesStore
)

// SetSearchService injects the search service.
func SetSearchService(s driving.SearchService) {
	searchService = s
}

// SetDirectoryService injects the directory service.
func SetDirectoryService(s driving.DirectoryService) {
	directoryService = s
}

// SetCategoryService injects the category service.
func SetCategoryService(s driving.CategoryService) {
	categoryService = s
}

// SetValidationService injects the validation service.
func SetValidationService(s driving.ValidationService) {
	validationService = s
}

// SetSettingsService injects the settings service.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// SetFavoritesStore injects the favorites store.
func SetFavoritesStore(s driven.FavoritesStore) {
	favoritesStore = s
}

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "goodspot",
	Short: "Local-first restaurant and cafe directory",
	Long: `Goodspot is a local-first directory of restaurants and cafes.

Search the corpus with fuzzy matching, narrow results with structured
filters (tags, amenities, cuisines, price, open-now), browse curated
categories, and manage your favorites.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
