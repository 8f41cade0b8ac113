package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/goodspot-labs/goodspot-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive directory browser",
	Long: `Launch the interactive terminal interface for browsing the place
directory. Suggestions appear as you type; enter runs the search.

Controls:
  enter  - Search
  ↑/↓    - Navigate results
  esc    - Back / Quit
  ctrl+c - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	config := tui.Config{SearchService: searchService}
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return err
		}
		config.SuggestDebounce = time.Duration(settings.TUI.SuggestDebounceMS) * time.Millisecond
	}

	return tui.Run(config)
}
