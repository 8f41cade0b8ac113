// Package ratelimit provides per-caller request throttling for shared
// surfaces such as the HTTP transport.
package ratelimit

import (
	"sync"

	"golang.org/x/time/rate"

	"github.com/goodspot-labs/goodspot-cli/internal/core/ports/driven"
)

// Ensure Limiter implements the interface.
var _ driven.RequestLimiter = (*Limiter)(nil)

const (
	// DefaultRate is the sustained request rate per identifier.
	DefaultRate = 10

	// DefaultBurst is the burst size per identifier.
	DefaultBurst = 20
)

// Limiter tracks a token bucket per caller identifier.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	rate    rate.Limit
	burst   int
}

// NewLimiter creates a limiter allowing r requests per second with a
// burst of b per identifier. Non-positive values fall back to the
// defaults.
func NewLimiter(r float64, b int) *Limiter {
	if r <= 0 {
		r = DefaultRate
	}
	if b <= 0 {
		b = DefaultBurst
	}
	return &Limiter{
		buckets: make(map[string]*rate.Limiter),
		rate:    rate.Limit(r),
		burst:   b,
	}
}

// Allow reports whether the identifier may make a request now.
func (l *Limiter) Allow(identifier string) bool {
	l.mu.Lock()
	bucket, ok := l.buckets[identifier]
	if !ok {
		bucket = rate.NewLimiter(l.rate, l.burst)
		l.buckets[identifier] = bucket
	}
	l.mu.Unlock()

	return bucket.Allow()
}

// Reset forgets the bucket for an identifier, restoring its full burst.
func (l *Limiter) Reset(identifier string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.buckets, identifier)
}

// Clear forgets all buckets.
func (l *Limiter) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buckets = make(map[string]*rate.Limiter)
}
