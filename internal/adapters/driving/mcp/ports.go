package mcp

import (
	"github.com/goodspot-labs/goodspot-cli/internal/core/ports/driven"
	"github.com/goodspot-labs/goodspot-cli/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides search and autocomplete capabilities.
	Search driving.SearchService

	// Directory provides place listing and lookup.
	Directory driving.DirectoryService

	// Category provides curated category browsing.
	Category driving.CategoryService

	// Limiter throttles callers on shared transports. Optional; nil
	// means unthrottled.
	Limiter driven.RequestLimiter
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// Directory, Category and Limiter are optional
	return nil
}
