package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// PriceRange is one of four ordinal price tiers.
type PriceRange string

// Price tiers, cheapest to most expensive.
const (
	PriceBudget   PriceRange = "$"
	PriceModerate PriceRange = "$$"
	PriceUpscale  PriceRange = "$$$"
	PriceLuxury   PriceRange = "$$$$"
)

// PriceRanges lists all valid tiers in ascending order.
var PriceRanges = []PriceRange{PriceBudget, PriceModerate, PriceUpscale, PriceLuxury}

// Valid reports whether the tier is one of the four known levels.
func (p PriceRange) Valid() bool {
	switch p {
	case PriceBudget, PriceModerate, PriceUpscale, PriceLuxury:
		return true
	}
	return false
}

// ContributionAction describes how a contributor touched a record.
type ContributionAction string

// Contribution actions.
const (
	ActionCreated  ContributionAction = "created"
	ActionUpdated  ContributionAction = "updated"
	ActionVerified ContributionAction = "verified"
)

// Contributor is a single entry in a place's contribution history.
type Contributor struct {
	// Name is the display name or nickname. Required.
	Name string `json:"name"`

	// Email is an optional contact email.
	Email string `json:"email,omitempty"`

	// Handle is an optional social handle.
	Handle string `json:"handle,omitempty"`

	// ContributedAt is when the contribution was made.
	ContributedAt time.Time `json:"contributedAt"`

	// Action is the type of contribution.
	Action ContributionAction `json:"action"`
}

// DayHours is the operating-hours entry for a single weekday.
// It is a tagged variant: either the place is closed that day, or it is
// open over a [Open, Close) interval in 24-hour "HH:MM" local time.
type DayHours struct {
	Closed bool   `json:"closed,omitempty"`
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
}

// dayHoursJSON mirrors the loose on-disk shape. Authored data historically
// used any truthy value for "closed", so it decodes as json.RawMessage.
type dayHoursJSON struct {
	Closed json.RawMessage `json:"closed"`
	Open   string          `json:"open"`
	Close  string          `json:"close"`
}

// UnmarshalJSON normalises the duck-typed on-disk shape into the tagged
// variant. Any non-null, non-false "closed" value marks the day closed.
func (d *DayHours) UnmarshalJSON(data []byte) error {
	var raw dayHoursJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if truthy(raw.Closed) {
		*d = DayHours{Closed: true}
		return nil
	}

	*d = DayHours{Open: raw.Open, Close: raw.Close}
	return nil
}

// truthy reports whether a raw JSON value would be considered truthy by
// the legacy data format: anything except absent, null, false, 0 and "".
func truthy(raw json.RawMessage) bool {
	switch string(raw) {
	case "", "null", "false", "0", `""`:
		return false
	}
	return true
}

// IsOpenAt reports whether the entry covers the given wall-clock time.
// The close bound is exclusive. Malformed times never match.
func (d DayHours) IsOpenAt(t time.Time) bool {
	if d.Closed {
		return false
	}
	open, err1 := parseClock(d.Open)
	clos, err2 := parseClock(d.Close)
	if err1 != nil || err2 != nil {
		return false
	}
	now := t.Hour()*60 + t.Minute()
	return now >= open && now < clos
}

// parseClock converts "HH:MM" into minutes since midnight.
func parseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil {
		return 0, fmt.Errorf("parsing clock %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock %q out of range", s)
	}
	return h*60 + m, nil
}

// OperatingHours maps lowercase weekday names ("monday".."sunday") to
// that day's hours entry. Days without an entry are treated as closed.
type OperatingHours map[string]DayHours

// Weekday returns the lowercase English name used as the map key.
func Weekday(t time.Time) string {
	switch t.Weekday() {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	}
	return "sunday"
}

// OpenAt reports whether the place is open at the given local time.
func (h OperatingHours) OpenAt(t time.Time) bool {
	entry, ok := h[Weekday(t)]
	if !ok {
		return false
	}
	return entry.IsOpenAt(t)
}

// PlaceIndex is the lightweight projection of a Place used for listing,
// search and autocomplete. It is always derivable from the full record by
// field projection; detail-only fields are not reconstructable from it.
type PlaceIndex struct {
	// ID is the stable unique identifier, independent of the slug.
	ID string `json:"id"`

	// Name is the establishment's display name.
	Name string `json:"name"`

	// Slug is the unique, immutable, URL-safe lookup key.
	Slug string `json:"slug"`

	// Description is the short listing blurb.
	Description string `json:"description"`

	// Address is the street address.
	Address string `json:"address"`

	// LogoURL is an optional logo image URL.
	LogoURL string `json:"logoUrl,omitempty"`

	// CoverImageURL is an optional cover image URL.
	CoverImageURL string `json:"coverImageUrl,omitempty"`

	// PriceRange is the ordinal price tier.
	PriceRange PriceRange `json:"priceRange"`

	// Tags are free-form descriptive labels.
	Tags []string `json:"tags"`

	// Amenities are offered facilities ("wifi", "parking", ...).
	Amenities []string `json:"amenities"`

	// CuisineTypes is the non-empty set of cuisines served.
	CuisineTypes []string `json:"cuisineTypes"`

	// Specialties are signature dishes or drinks.
	Specialties []string `json:"specialties"`

	// OpenHours is the weekly hours table carried into the index by the
	// build step so the open-now filter can run without a detail fetch.
	// Nil on index files produced before the field existed.
	OpenHours OperatingHours `json:"openHours,omitempty"`

	// UpdatedAt is when the record last changed.
	UpdatedAt time.Time `json:"updatedAt"`

	// CreatedBy is the display name of the original creator.
	CreatedBy string `json:"createdBy,omitempty"`
}

// Place is the complete directory record, loaded on demand by slug.
type Place struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`

	// Contact information. Each optional, format-validated by the
	// validation service before records are committed.
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`

	// Media.
	LogoURL       string   `json:"logoUrl,omitempty"`
	CoverImageURL string   `json:"coverImageUrl,omitempty"`
	PhotosURLs    []string `json:"photosUrls"`

	// Business details.
	OperatingHours OperatingHours `json:"operatingHours"`
	PriceRange     PriceRange     `json:"priceRange"`
	PaymentMethods []string       `json:"paymentMethods"`

	// Categorisation.
	Tags         []string `json:"tags"`
	Amenities    []string `json:"amenities"`
	CuisineTypes []string `json:"cuisineTypes"`
	Specialties  []string `json:"specialties"`

	// Geocoordinates, when known.
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	// Metadata.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Contribution history, oldest first.
	CreatedBy    string        `json:"createdBy,omitempty"`
	Contributors []Contributor `json:"contributors,omitempty"`
}

// Index projects the full record down to its listing form.
func (p *Place) Index() PlaceIndex {
	return PlaceIndex{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		Address:       p.Address,
		LogoURL:       p.LogoURL,
		CoverImageURL: p.CoverImageURL,
		PriceRange:    p.PriceRange,
		Tags:          p.Tags,
		Amenities:     p.Amenities,
		CuisineTypes:  p.CuisineTypes,
		Specialties:   p.Specialties,
		OpenHours:     p.OperatingHours,
		UpdatedAt:     p.UpdatedAt,
		CreatedBy:     p.CreatedBy,
	}
}
