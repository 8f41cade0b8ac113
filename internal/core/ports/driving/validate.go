package driving

import "github.com/goodspot-labs/goodspot-cli/internal/core/domain"

// FieldError is a single validation failure on a place record.
type FieldError struct {
	// Field is the dotted path of the offending field ("operatingHours.monday").
	Field string

	// Message describes the failure.
	Message string

	// Hint suggests a fix, when one is known for the field.
	Hint string
}

// ValidationService checks place records against the data contract
// before they are committed to the corpus.
type ValidationService interface {
	// ValidateRecord returns every contract violation on the record.
	// An empty slice means the record is valid.
	ValidateRecord(place *domain.Place) []FieldError
}
