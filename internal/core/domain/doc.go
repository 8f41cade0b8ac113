// Package domain defines the core business entities for goodspot.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Place: A complete directory record for a single establishment
//   - PlaceIndex: The lightweight projection used for listing and search
//   - SearchFilters / SearchResult: The search engine contract
//   - Category: A curated landing-page preset over the search engine
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
