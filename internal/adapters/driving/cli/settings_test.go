package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodspot-labs/goodspot-cli/internal/core/services"
)

type fakeConfigStore struct {
	values map[string]any
}

func newFakeConfigStore() *fakeConfigStore {
	return &fakeConfigStore{values: make(map[string]any)}
}

func (f *fakeConfigStore) Get(key string) (any, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *fakeConfigStore) GetString(key string) string {
	if v, ok := f.values[key].(string); ok {
		return v
	}
	return ""
}

func (f *fakeConfigStore) GetInt(key string) int {
	if v, ok := f.values[key].(int); ok {
		return v
	}
	return 0
}

func (f *fakeConfigStore) GetFloat(key string) float64 {
	if v, ok := f.values[key].(float64); ok {
		return v
	}
	return 0
}

func (f *fakeConfigStore) GetBool(key string) bool {
	if v, ok := f.values[key].(bool); ok {
		return v
	}
	return false
}

func (f *fakeConfigStore) Set(key string, value any) error {
	f.values[key] = value
	return nil
}

func (f *fakeConfigStore) Save() error { return nil }
func (f *fakeConfigStore) Load() error { return nil }
func (f *fakeConfigStore) Path() string {
	return "/tmp/config.toml"
}

func setupSettingsService() func() {
	prev := settingsService
	settingsService = services.NewSettingsService(newFakeConfigStore())
	return func() { settingsService = prev }
}

func TestSettingsShowCmd_Defaults(t *testing.T) {
	cleanup := setupSettingsService()
	defer cleanup()

	out, err := execute("settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "backend:        file")
	assert.Contains(t, out, "rate:  10.0 req/s")
	assert.Contains(t, out, "suggest debounce: 150ms")
}

func TestSettingsBackendCmd_SetsBackend(t *testing.T) {
	cleanup := setupSettingsService()
	defer cleanup()

	out, err := execute("settings", "backend", "sqlite")
	require.NoError(t, err)
	assert.Contains(t, out, "Storage backend set to sqlite.")

	out, err = execute("settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "backend:        sqlite")
}

func TestSettingsBackendCmd_RejectsUnknown(t *testing.T) {
	cleanup := setupSettingsService()
	defer cleanup()

	_, err := execute("settings", "backend", "postgres")

	require.Error(t, err)
}

func TestSettingsCmd_NotConfigured(t *testing.T) {
	prev := settingsService
	settingsService = nil
	defer func() { settingsService = prev }()

	_, err := execute("settings", "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
