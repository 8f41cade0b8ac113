package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	RunE:  runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsBackendCmd = &cobra.Command{
	Use:   "backend <file|sqlite>",
	Short: "Set the storage backend",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsBackend,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsBackendCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return err
	}

	cmd.Println("Storage:")
	cmd.Printf("  backend:        %s\n", settings.Storage.Backend)
	cmd.Printf("  data dir:       %s\n", orDefault(settings.Storage.DataDir))
	cmd.Printf("  favorites path: %s\n", orDefault(settings.Storage.FavoritesPath))
	cmd.Println("Limiter:")
	cmd.Printf("  rate:  %.1f req/s\n", settings.Limiter.Rate)
	cmd.Printf("  burst: %d\n", settings.Limiter.Burst)
	cmd.Println("TUI:")
	cmd.Printf("  suggest debounce: %dms\n", settings.TUI.SuggestDebounceMS)
	return nil
}

func runSettingsBackend(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	backend := domain.StorageBackend(args[0])
	if err := settingsService.SetBackend(backend); err != nil {
		return fmt.Errorf("setting backend: %w", err)
	}
	cmd.Printf("Storage backend set to %s.\n", backend)
	return nil
}

func orDefault(s string) string {
	if s == "" {
		return "(default)"
	}
	return s
}
