package services

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"

	"github.com/google/uuid"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
	"github.com/goodspot-labs/goodspot-cli/internal/core/ports/driving"
)

// Ensure ValidationService implements the interface.
var _ driving.ValidationService = (*ValidationService)(nil)

var (
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	clockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// fieldHints carry fix suggestions for fields that commonly fail.
var fieldHints = map[string]string{
	"id":            "Generate a UUID, e.g. 550e8400-e29b-41d4-a716-446655440000",
	"slug":          `Use lowercase letters, numbers and hyphens only (e.g. "rodics-diner")`,
	"email":         `Must be a valid email (e.g. "contact@example.com") or left empty`,
	"website":       `Must start with http:// or https:// (e.g. "https://example.com") or left empty`,
	"logoUrl":       "Must be a valid URL starting with http:// or https://, or left empty",
	"coverImageUrl": "Must be a valid URL starting with http:// or https://, or left empty",
	"priceRange":    `Must be one of "$", "$$", "$$$" or "$$$$"`,
	"cuisineTypes":  `Must have at least one cuisine type (e.g. ["filipino"])`,
}

// ValidationService checks place records against the data contract.
// The search core itself is permissive; this runs at the contribution
// boundary so malformed records never reach the corpus.
type ValidationService struct{}

// NewValidationService creates a new validation service.
func NewValidationService() *ValidationService {
	return &ValidationService{}
}

// ValidateRecord returns every contract violation on the record.
func (s *ValidationService) ValidateRecord(place *domain.Place) []driving.FieldError {
	var errs []driving.FieldError
	fail := func(field, message string) {
		errs = append(errs, driving.FieldError{
			Field:   field,
			Message: message,
			Hint:    fieldHints[field],
		})
	}

	if _, err := uuid.Parse(place.ID); err != nil {
		fail("id", "must be a valid UUID")
	}
	if place.Name == "" {
		fail("name", "is required")
	}
	if place.Slug == "" {
		fail("slug", "is required")
	} else if !slugPattern.MatchString(place.Slug) {
		fail("slug", "must be kebab-case")
	}
	if len(place.Description) < 10 {
		fail("description", "must be at least 10 characters")
	}
	if place.Address == "" {
		fail("address", "is required")
	}

	if place.Email != "" {
		if _, err := mail.ParseAddress(place.Email); err != nil {
			fail("email", "invalid email format")
		}
	}
	if place.Website != "" && !validHTTPURL(place.Website) {
		fail("website", "invalid URL format")
	}
	if place.LogoURL != "" && !validHTTPURL(place.LogoURL) {
		fail("logoUrl", "invalid URL format")
	}
	if place.CoverImageURL != "" && !validHTTPURL(place.CoverImageURL) {
		fail("coverImageUrl", "invalid URL format")
	}
	for i, photo := range place.PhotosURLs {
		if !validHTTPURL(photo) {
			fail(fmt.Sprintf("photosUrls.%d", i), "invalid URL format")
		}
	}

	for day, hours := range place.OperatingHours {
		if hours.Closed {
			continue
		}
		if !clockPattern.MatchString(hours.Open) || !clockPattern.MatchString(hours.Close) {
			errs = append(errs, driving.FieldError{
				Field:   "operatingHours." + day,
				Message: "time must be in HH:MM format",
				Hint:    `Use 24-hour format HH:MM (e.g. "09:00", "17:30")`,
			})
		}
	}

	if !place.PriceRange.Valid() {
		fail("priceRange", "unknown price tier")
	}
	if len(place.CuisineTypes) == 0 {
		fail("cuisineTypes", "at least one cuisine type is required")
	}
	if place.CreatedAt.IsZero() {
		fail("createdAt", "is required")
	}
	if place.UpdatedAt.IsZero() {
		fail("updatedAt", "is required")
	}

	for i, c := range place.Contributors {
		if c.Name == "" {
			fail(fmt.Sprintf("contributors.%d.name", i), "is required")
		}
		switch c.Action {
		case domain.ActionCreated, domain.ActionUpdated, domain.ActionVerified:
		default:
			fail(fmt.Sprintf("contributors.%d.action", i), "must be created, updated or verified")
		}
	}

	return errs
}

// validHTTPURL reports whether s parses as an absolute http(s) URL.
func validHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
