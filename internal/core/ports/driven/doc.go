// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - PlaceStore: read access to the place corpus (index + full records)
//
// # Optional Interfaces
//
// These can be nil - the affected filter or surface degrades gracefully:
//
//   - FavoritesProvider: membership test for the favorites-only filter.
//     Without it, the filter matches nothing.
//   - RequestLimiter: per-caller request throttling for network surfaces.
//     Without it, no throttling is applied.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
