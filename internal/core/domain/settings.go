package domain

// StorageBackend selects where the place corpus is read from.
type StorageBackend string

// Supported storage backends.
const (
	BackendFile   StorageBackend = "file"
	BackendSQLite StorageBackend = "sqlite"
)

// Valid reports whether the backend is a known value.
func (b StorageBackend) Valid() bool {
	return b == BackendFile || b == BackendSQLite
}

// StorageSettings configures the place corpus location.
type StorageSettings struct {
	// Backend is the storage backend, file or sqlite.
	Backend StorageBackend

	// DataDir is the directory holding the corpus. Empty means the
	// default under the goodspot home directory.
	DataDir string

	// FavoritesPath is the favorites file location for the file
	// backend. Empty means the default under the goodspot home
	// directory.
	FavoritesPath string
}

// LimiterSettings configures per-caller throttling on shared
// transports.
type LimiterSettings struct {
	// Rate is the sustained requests per second per caller.
	Rate float64

	// Burst is the burst size per caller.
	Burst int
}

// TUISettings configures the interactive browser.
type TUISettings struct {
	// SuggestDebounceMS is how long to wait after the last keystroke
	// before fetching suggestions.
	SuggestDebounceMS int
}

// AppSettings holds all application settings.
type AppSettings struct {
	Storage StorageSettings
	Limiter LimiterSettings
	TUI     TUISettings
}

// DefaultAppSettings returns the default application settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Storage: StorageSettings{
			Backend: BackendFile,
		},
		Limiter: LimiterSettings{
			Rate:  10,
			Burst: 20,
		},
		TUI: TUISettings{
			SuggestDebounceMS: 150,
		},
	}
}
