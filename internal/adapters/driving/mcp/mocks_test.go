package mcp

import (
	"context"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	result      *domain.SearchResult
	suggestions *domain.Suggestions
	err         error
}

func (m *mockSearchService) Search(_ context.Context, filters domain.SearchFilters) (*domain.SearchResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		result := *m.result
		result.Filters = filters
		result.Total = len(result.Places)
		return &result, nil
	}
	return &domain.SearchResult{Filters: filters}, nil
}

func (m *mockSearchService) Suggest(_ context.Context, _ string) (*domain.Suggestions, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.suggestions != nil {
		return m.suggestions, nil
	}
	return &domain.Suggestions{}, nil
}

// mockDirectoryService is a mock implementation of driving.DirectoryService.
type mockDirectoryService struct {
	places []domain.Place
	err    error
}

func (m *mockDirectoryService) AllPlaces(_ context.Context) ([]domain.PlaceIndex, error) {
	if m.err != nil {
		return nil, m.err
	}
	index := make([]domain.PlaceIndex, 0, len(m.places))
	for i := range m.places {
		index = append(index, m.places[i].Index())
	}
	return index, nil
}

func (m *mockDirectoryService) GetBySlug(_ context.Context, slug string) (*domain.Place, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.places {
		if m.places[i].Slug == slug {
			return &m.places[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockDirectoryService) GetByID(_ context.Context, id string) (*domain.Place, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.places {
		if m.places[i].ID == id {
			return &m.places[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockDirectoryService) AllTags(_ context.Context) ([]string, error) {
	return nil, m.err
}

func (m *mockDirectoryService) AllAmenities(_ context.Context) ([]string, error) {
	return nil, m.err
}

func (m *mockDirectoryService) AllCuisineTypes(_ context.Context) ([]string, error) {
	return nil, m.err
}

// mockCategoryService is a mock implementation of driving.CategoryService.
type mockCategoryService struct {
	categories []domain.Category
	err        error
}

func (m *mockCategoryService) All() []domain.Category {
	return m.categories
}

func (m *mockCategoryService) GetBySlug(slug string) (*domain.Category, error) {
	for i := range m.categories {
		if m.categories[i].Slug == slug {
			return &m.categories[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockCategoryService) Slugs() []string {
	slugs := make([]string, 0, len(m.categories))
	for _, c := range m.categories {
		slugs = append(slugs, c.Slug)
	}
	return slugs
}

func (m *mockCategoryService) IsValid(slug string) bool {
	_, err := m.GetBySlug(slug)
	return err == nil
}

func (m *mockCategoryService) Places(_ context.Context, _ string) (*domain.SearchResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.SearchResult{}, nil
}

// mockLimiter is a mock implementation of driven.RequestLimiter.
type mockLimiter struct {
	allow bool
}

func (m *mockLimiter) Allow(_ string) bool {
	return m.allow
}

func (m *mockLimiter) Reset(_ string) {}
