package services

import (
	"fmt"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
	"github.com/goodspot-labs/goodspot-cli/internal/core/ports/driven"
	"github.com/goodspot-labs/goodspot-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyStorageBackend   = "storage.backend"
	keyStorageDataDir   = "storage.data_dir"
	keyStorageFavorites = "storage.favorites_path"
	keyLimiterRate      = "limiter.rate"
	keyLimiterBurst     = "limiter.burst"
	keyTUIDebounce      = "tui.suggest_debounce_ms"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings, falling back to defaults
// for unset keys.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Storage: domain.StorageSettings{
			Backend:       s.getBackend(defaults.Storage.Backend),
			DataDir:       s.configStore.GetString(keyStorageDataDir),
			FavoritesPath: s.configStore.GetString(keyStorageFavorites),
		},
		Limiter: domain.LimiterSettings{
			Rate:  s.getFloat(keyLimiterRate, defaults.Limiter.Rate),
			Burst: s.getInt(keyLimiterBurst, defaults.Limiter.Burst),
		},
		TUI: domain.TUISettings{
			SuggestDebounceMS: s.getInt(keyTUIDebounce, defaults.TUI.SuggestDebounceMS),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if !settings.Storage.Backend.Valid() {
		return fmt.Errorf("backend %q: %w", settings.Storage.Backend, domain.ErrInvalidInput)
	}

	pairs := []struct {
		key   string
		value any
	}{
		{keyStorageBackend, string(settings.Storage.Backend)},
		{keyStorageDataDir, settings.Storage.DataDir},
		{keyStorageFavorites, settings.Storage.FavoritesPath},
		{keyLimiterRate, settings.Limiter.Rate},
		{keyLimiterBurst, settings.Limiter.Burst},
		{keyTUIDebounce, settings.TUI.SuggestDebounceMS},
	}
	for _, p := range pairs {
		if err := s.configStore.Set(p.key, p.value); err != nil {
			return fmt.Errorf("saving %s: %w", p.key, err)
		}
	}
	return nil
}

// SetBackend updates the storage backend.
func (s *SettingsService) SetBackend(backend domain.StorageBackend) error {
	if !backend.Valid() {
		return fmt.Errorf("backend %q: %w", backend, domain.ErrInvalidInput)
	}
	return s.configStore.Set(keyStorageBackend, string(backend))
}

// Validate checks if current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	if !settings.Storage.Backend.Valid() {
		return fmt.Errorf("backend %q: %w", settings.Storage.Backend, domain.ErrInvalidInput)
	}
	if settings.Limiter.Rate <= 0 || settings.Limiter.Burst <= 0 {
		return fmt.Errorf("limiter rate and burst must be positive: %w", domain.ErrInvalidInput)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getBackend(fallback domain.StorageBackend) domain.StorageBackend {
	raw := s.configStore.GetString(keyStorageBackend)
	if raw == "" {
		return fallback
	}
	backend := domain.StorageBackend(raw)
	if !backend.Valid() {
		return fallback
	}
	return backend
}

func (s *SettingsService) getInt(key string, fallback int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, fallback float64) float64 {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetFloat(key)
}
