package fetch

import "time"

// Status describes how a fetch was satisfied, for display next to the value.
type Status struct {
	// Source is the name of the source that produced the value.
	// Empty when Fallback is true.
	Source string

	// Fallback is true when every source failed and the demo value was
	// returned. The value is well-formed but non-authoritative.
	Fallback bool

	// Cached is true when the value was served from cache without a
	// network call this fetch.
	Cached bool

	// FetchedAt is when the underlying value was obtained.
	FetchedAt time.Time
}

// Label returns a short status string for the UI.
func (s Status) Label() string {
	if s.Fallback {
		return "DEMO DATA"
	}
	if s.Cached {
		return "CACHED · " + s.Source
	}
	return "LIVE · " + s.Source
}
