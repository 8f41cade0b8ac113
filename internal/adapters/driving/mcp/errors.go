// Package mcp provides an MCP (Model Context Protocol) server adapter for goodspot.
// It enables AI assistants to search and browse the place directory.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
