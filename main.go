package main

import (
	"fmt"
	"os"
	"path/filepath"

	configfile "github.com/goodspot-labs/goodspot-cli/internal/adapters/driven/config/file"
	storagefile "github.com/goodspot-labs/goodspot-cli/internal/adapters/driven/storage/file"
	"github.com/goodspot-labs/goodspot-cli/internal/adapters/driven/storage/sqlite"
	"github.com/goodspot-labs/goodspot-cli/internal/adapters/driving/cli"
	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
	"github.com/goodspot-labs/goodspot-cli/internal/core/ports/driven"
	"github.com/goodspot-labs/goodspot-cli/internal/core/services"
	"github.com/goodspot-labs/goodspot-cli/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}

	placeStore, favoritesStore, closeStores, err := openStores(settings)
	if err != nil {
		return err
	}
	defer closeStores()

	searchService := services.NewSearchService(placeStore, favoritesStore)

	cli.SetSearchService(searchService)
	cli.SetDirectoryService(services.NewDirectoryService(placeStore))
	cli.SetCategoryService(services.NewCategoryService(searchService))
	cli.SetValidationService(services.NewValidationService())
	cli.SetSettingsService(settingsService)
	cli.SetFavoritesStore(favoritesStore)

	return cli.Execute()
}

// openStores builds the place and favorites stores for the configured
// storage backend.
func openStores(settings *domain.AppSettings) (driven.PlaceStore, driven.FavoritesStore, func(), error) {
	dataDir := settings.Storage.DataDir
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("resolving home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".goodspot", "data")
	}

	switch settings.Storage.Backend {
	case domain.BackendSQLite:
		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		logger.Debug("Using sqlite backend at %s", store.Path())
		return store.PlaceStore(), store.FavoritesStore(), func() { _ = store.Close() }, nil

	default:
		placeStore, err := storagefile.NewPlaceStore(dataDir)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("opening place store: %w", err)
		}

		favoritesPath := settings.Storage.FavoritesPath
		if favoritesPath == "" {
			favoritesPath = filepath.Join(filepath.Dir(dataDir), "favorites.json")
		}
		favoritesStore, err := storagefile.NewFavoritesStore(favoritesPath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("opening favorites store: %w", err)
		}

		logger.Debug("Using file backend at %s", dataDir)
		return placeStore, favoritesStore, func() {}, nil
	}
}
