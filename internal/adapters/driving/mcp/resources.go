package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
)

// uriScheme is the custom URI scheme for goodspot resources.
const uriScheme = "goodspot://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the place listing.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "places",
		Name:        "places",
		Description: "Listing of every place in the directory",
		MIMEType:    "application/json",
	}, s.handlePlacesResource)

	// Template for full place records.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "places/{slug}",
		Name:        "place-record",
		Description: "Full record for a specific place",
		MIMEType:    "application/json",
	}, s.handlePlaceResource)

	// Static resource for curated categories.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "categories",
		Name:        "categories",
		Description: "Curated browsing categories with their preset filters",
		MIMEType:    "application/json",
	}, s.handleCategoriesResource)
}

// handlePlacesResource returns the full place listing.
func (s *Server) handlePlacesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Directory == nil {
		return jsonResource(req.Params.URI, []any{})
	}

	places, err := s.ports.Directory.AllPlaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing places: %w", err)
	}
	return jsonResource(req.Params.URI, placeOutputs(places))
}

// handlePlaceResource returns the full record for one place.
func (s *Server) handlePlaceResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Directory == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	slug := extractSlug(req.Params.URI)
	if slug == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	place, err := s.ports.Directory.GetBySlug(ctx, slug)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("loading place: %w", err)
	}
	return jsonResource(req.Params.URI, place)
}

// handleCategoriesResource returns the curated category list.
func (s *Server) handleCategoriesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Category == nil {
		return jsonResource(req.Params.URI, []any{})
	}
	return jsonResource(req.Params.URI, s.ports.Category.All())
}

// extractSlug pulls the slug out of goodspot://places/{slug}.
func extractSlug(uri string) string {
	rest, ok := strings.CutPrefix(uri, uriScheme+"places/")
	if !ok || strings.Contains(rest, "/") {
		return ""
	}
	return rest
}

// jsonResource wraps a value as a JSON resource result.
func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
