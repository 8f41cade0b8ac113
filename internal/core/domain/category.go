package domain

// CategoryType classifies a category preset for internal grouping.
type CategoryType string

// Category types.
const (
	CategoryCuisine    CategoryType = "cuisine"
	CategoryAmenity    CategoryType = "amenity"
	CategoryExperience CategoryType = "experience"
	CategoryPrice      CategoryType = "price"
)

// Category is a curated landing-page preset: a named, pre-built filter
// set applied through the search engine. Categories are configuration,
// not data; they are defined in code and addressed by slug.
type Category struct {
	// Slug is the unique URL path segment.
	Slug string `json:"slug"`

	// Emoji is the visual marker shown beside the heading.
	Emoji string `json:"emoji"`

	// Title is the full page title.
	Title string `json:"title"`

	// Heading is the short display heading.
	Heading string `json:"heading"`

	// Description is the one-paragraph intro.
	Description string `json:"description"`

	// Filters is the preset applied when the category is opened.
	Filters SearchFilters `json:"filters"`

	// Type groups the category for internal classification.
	Type CategoryType `json:"type"`
}
