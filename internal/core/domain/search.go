package domain

// SearchFilters configures a directory search. All fields are optional;
// an absent field means "do not filter on this dimension".
type SearchFilters struct {
	// Query is free text, matched fuzzily against weighted fields.
	Query string `json:"query,omitempty"`

	// Keywords match a place when ANY keyword appears in ANY of its
	// tags, amenities, cuisine types or specialties.
	Keywords []string `json:"keywords,omitempty"`

	// Tags match when ANY listed tag is on the place.
	Tags []string `json:"tags,omitempty"`

	// Amenities match only when ALL listed amenities are on the place.
	// Stricter than Tags on purpose: selecting "wifi" and "parking"
	// means the user wants both at once.
	Amenities []string `json:"amenities,omitempty"`

	// CuisineTypes match when ANY listed cuisine is on the place.
	CuisineTypes []string `json:"cuisineTypes,omitempty"`

	// PriceRanges match when the place's tier is in the set.
	PriceRanges []PriceRange `json:"priceRanges,omitempty"`

	// OpenNow keeps only places open at the evaluation time.
	OpenNow bool `json:"openNow,omitempty"`

	// FavoritesOnly keeps only places in the caller's favorites set.
	FavoritesOnly bool `json:"favoritesOnly,omitempty"`
}

// Empty reports whether no dimension is constrained.
func (f SearchFilters) Empty() bool {
	return f.Query == "" &&
		len(f.Keywords) == 0 &&
		len(f.Tags) == 0 &&
		len(f.Amenities) == 0 &&
		len(f.CuisineTypes) == 0 &&
		len(f.PriceRanges) == 0 &&
		!f.OpenNow &&
		!f.FavoritesOnly
}

// SearchResult is the outcome of a directory search.
type SearchResult struct {
	// Places is the ordered matching subset of the index corpus.
	Places []PlaceIndex `json:"places"`

	// Total is always len(Places).
	Total int `json:"total"`

	// Filters echoes the request unchanged, for display.
	Filters SearchFilters `json:"filters"`
}

// Suggestions is the bounded multi-category autocomplete payload.
// The four lists are independent; they are never merged or re-ranked
// against each other.
type Suggestions struct {
	// Places holds the top-ranked fuzzy matches, at most five.
	Places []PlaceIndex `json:"places"`

	// Tags, Amenities and Cuisines are substring matches over the
	// distinct universe of each field, at most five each.
	Tags      []string `json:"tags"`
	Amenities []string `json:"amenities"`
	Cuisines  []string `json:"cuisines"`
}
