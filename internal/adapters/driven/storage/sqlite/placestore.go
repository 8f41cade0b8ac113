package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
	"github.com/goodspot-labs/goodspot-cli/internal/core/ports/driven"
)

// Ensure placeStore implements the interface.
var _ driven.PlaceStore = (*placeStore)(nil)

// placeStore implements driven.PlaceStore on top of Store.
type placeStore struct {
	store *Store
}

// AllIndex returns the listing form of every stored place, sorted by
// name. Full records are stored as JSON, so the projection happens at
// read time.
func (p *placeStore) AllIndex(ctx context.Context) ([]domain.PlaceIndex, error) {
	rows, err := p.store.db.QueryContext(ctx, "SELECT data FROM places ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying places: %w", err)
	}
	defer rows.Close()

	var index []domain.PlaceIndex
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scanning place: %w", err)
		}
		var place domain.Place
		if err := json.Unmarshal([]byte(data), &place); err != nil {
			return nil, fmt.Errorf("decoding place: %w", err)
		}
		index = append(index, place.Index())
	}
	return index, rows.Err()
}

// GetBySlug retrieves a full place record by its slug.
func (p *placeStore) GetBySlug(ctx context.Context, slug string) (*domain.Place, error) {
	return p.get(ctx, "SELECT data FROM places WHERE slug = ?", slug)
}

// GetByID retrieves a full place record by its id.
func (p *placeStore) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	return p.get(ctx, "SELECT data FROM places WHERE id = ?", id)
}

func (p *placeStore) get(ctx context.Context, query, arg string) (*domain.Place, error) {
	var data string
	err := p.store.db.QueryRowContext(ctx, query, arg).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying place: %w", err)
	}

	var place domain.Place
	if err := json.Unmarshal([]byte(data), &place); err != nil {
		return nil, fmt.Errorf("decoding place: %w", err)
	}
	return &place, nil
}
