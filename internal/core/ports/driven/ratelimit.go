package driven

// RequestLimiter throttles requests per caller identifier. It is an
// injected stateful collaborator, never a process-wide global, so the
// surfaces that use it stay testable in isolation.
type RequestLimiter interface {
	// Allow reports whether the identifier may make a request now.
	Allow(identifier string) bool

	// Reset clears the recorded state for one identifier.
	Reset(identifier string)
}
