package sqlite

import (
	"context"
	"fmt"

	"github.com/goodspot-labs/goodspot-cli/internal/core/ports/driven"
)

// Ensure favoritesStore implements the interface.
var _ driven.FavoritesStore = (*favoritesStore)(nil)

// favoritesStore implements driven.FavoritesStore on top of Store.
type favoritesStore struct {
	store *Store
}

// IsFavorite reports whether the place id is marked as a favorite.
func (f *favoritesStore) IsFavorite(ctx context.Context, placeID string) (bool, error) {
	var count int
	err := f.store.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM favorites WHERE place_id = ?", placeID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("querying favorite: %w", err)
	}
	return count > 0, nil
}

// Add marks a place id as a favorite. Adding twice is a no-op.
func (f *favoritesStore) Add(ctx context.Context, placeID string) error {
	_, err := f.store.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO favorites (place_id) VALUES (?)", placeID)
	if err != nil {
		return fmt.Errorf("adding favorite: %w", err)
	}
	return nil
}

// Remove unmarks a place id. Removing an absent id is a no-op.
func (f *favoritesStore) Remove(ctx context.Context, placeID string) error {
	_, err := f.store.db.ExecContext(ctx,
		"DELETE FROM favorites WHERE place_id = ?", placeID)
	if err != nil {
		return fmt.Errorf("removing favorite: %w", err)
	}
	return nil
}

// List returns every favorite place id, sorted.
func (f *favoritesStore) List(ctx context.Context) ([]string, error) {
	rows, err := f.store.db.QueryContext(ctx,
		"SELECT place_id FROM favorites ORDER BY place_id")
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning favorite: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
