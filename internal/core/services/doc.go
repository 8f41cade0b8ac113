// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// All services are pure computation over the read-only corpus
// snapshot provided by the place store; nothing here mutates
// place data.
package services
