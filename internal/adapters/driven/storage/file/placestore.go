// Package file provides a file-backed place store. The listing index
// lives in a single places.json snapshot that is loaded eagerly; full
// records live as places/<slug>.json and are read on demand.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
	"github.com/goodspot-labs/goodspot-cli/internal/core/ports/driven"
	"github.com/goodspot-labs/goodspot-cli/internal/logger"
)

const (
	indexFile  = "places.json"
	recordsDir = "places"
)

// Ensure PlaceStore implements the interface.
var _ driven.PlaceStore = (*PlaceStore)(nil)

// PlaceStore is a file-backed implementation of driven.PlaceStore.
type PlaceStore struct {
	mu      sync.RWMutex
	dataDir string
	index   []domain.PlaceIndex
	byID    map[string]string
}

// NewPlaceStore creates a place store rooted at dataDir and loads the
// index snapshot. A missing snapshot is treated as an empty corpus.
func NewPlaceStore(dataDir string) (*PlaceStore, error) {
	s := &PlaceStore{dataDir: dataDir}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the index snapshot from disk.
func (s *PlaceStore) Reload() error {
	data, err := os.ReadFile(filepath.Join(s.dataDir, indexFile))
	if os.IsNotExist(err) {
		s.mu.Lock()
		s.index = nil
		s.byID = make(map[string]string)
		s.mu.Unlock()
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading index: %w", err)
	}

	var index []domain.PlaceIndex
	if err := json.Unmarshal(data, &index); err != nil {
		return fmt.Errorf("decoding index: %w", err)
	}

	byID := make(map[string]string, len(index))
	for _, entry := range index {
		byID[entry.ID] = entry.Slug
	}

	s.mu.Lock()
	s.index = index
	s.byID = byID
	s.mu.Unlock()

	logger.Debug("Loaded %d places from %s", len(index), s.dataDir)
	return nil
}

// AllIndex returns a copy of the loaded index snapshot.
func (s *PlaceStore) AllIndex(_ context.Context) ([]domain.PlaceIndex, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	index := make([]domain.PlaceIndex, len(s.index))
	copy(index, s.index)
	return index, nil
}

// GetBySlug reads the full record file for the slug.
func (s *PlaceStore) GetBySlug(_ context.Context, slug string) (*domain.Place, error) {
	if !validSlug(slug) {
		return nil, domain.ErrNotFound
	}

	data, err := os.ReadFile(filepath.Join(s.dataDir, recordsDir, slug+".json"))
	if os.IsNotExist(err) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading record %s: %w", slug, err)
	}

	var place domain.Place
	if err := json.Unmarshal(data, &place); err != nil {
		return nil, fmt.Errorf("decoding record %s: %w", slug, err)
	}
	return &place, nil
}

// GetByID resolves the id to a slug through the index, then reads the
// record file.
func (s *PlaceStore) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	s.mu.RLock()
	slug, ok := s.byID[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s.GetBySlug(ctx, slug)
}

// Watch reloads the index snapshot whenever it changes on disk and
// emits a notification after each reload. The watcher stops when ctx
// is cancelled.
func (s *PlaceStore) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(s.dataDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", s.dataDir, err)
	}

	changes := make(chan struct{}, 1)
	go func() {
		defer watcher.Close()
		defer close(changes)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != indexFile {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if err := s.Reload(); err != nil {
					logger.Warn("Index reload failed: %v", err)
					continue
				}
				select {
				case changes <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Watcher error: %v", err)
			}
		}
	}()

	return changes, nil
}

// ReadRecords loads every full record under places/, sorted by file
// name. This is the input to the index build.
func (s *PlaceStore) ReadRecords() ([]domain.Place, error) {
	dir := filepath.Join(s.dataDir, recordsDir)
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading records dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	places := make([]domain.Place, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading record %s: %w", name, err)
		}
		var place domain.Place
		if err := json.Unmarshal(data, &place); err != nil {
			return nil, fmt.Errorf("decoding record %s: %w", name, err)
		}
		places = append(places, place)
	}
	return places, nil
}

// WriteIndex writes the index snapshot atomically and swaps the
// in-memory copy.
func (s *PlaceStore) WriteIndex(index []domain.PlaceIndex) error {
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}

	path := filepath.Join(s.dataDir, indexFile)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing index: %w", err)
	}

	byID := make(map[string]string, len(index))
	for _, entry := range index {
		byID[entry.ID] = entry.Slug
	}
	s.mu.Lock()
	s.index = index
	s.byID = byID
	s.mu.Unlock()
	return nil
}

// WriteRecord writes a full record file under places/.
func (s *PlaceStore) WriteRecord(place *domain.Place) error {
	if !validSlug(place.Slug) {
		return fmt.Errorf("slug %q: %w", place.Slug, domain.ErrInvalidInput)
	}

	dir := filepath.Join(s.dataDir, recordsDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating records dir: %w", err)
	}

	data, err := json.MarshalIndent(place, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding record %s: %w", place.Slug, err)
	}
	if err := os.WriteFile(filepath.Join(dir, place.Slug+".json"), data, 0644); err != nil {
		return fmt.Errorf("writing record %s: %w", place.Slug, err)
	}
	return nil
}

// validSlug guards file lookups against path traversal.
func validSlug(slug string) bool {
	if slug == "" {
		return false
	}
	return !strings.ContainsAny(slug, "/\\.")
}
