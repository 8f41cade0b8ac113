package driven

import "context"

// FavoritesProvider answers membership queries against an externally
// persisted favorites set. The core only needs the membership test;
// storage belongs to the adapter.
type FavoritesProvider interface {
	// IsFavorite reports whether the place id is in the set.
	IsFavorite(ctx context.Context, placeID string) (bool, error)
}

// FavoritesStore is a mutable favorites set. Driving adapters use it to
// manage the set; the search engine only ever sees FavoritesProvider.
type FavoritesStore interface {
	FavoritesProvider

	// Add inserts a place id into the set.
	Add(ctx context.Context, placeID string) error

	// Remove deletes a place id from the set.
	Remove(ctx context.Context, placeID string) error

	// List returns all place ids in the set, sorted.
	List(ctx context.Context) ([]string, error)
}
