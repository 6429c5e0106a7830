package fetch

import "time"

// entry is one cached fetch result with its freshness window.
// Every fetch outcome is cached, fallback values included, so a sustained
// outage costs at most one source sweep per TTL.
type entry[T any] struct {
	value     T
	status    Status
	fetchedAt time.Time
	ttl       time.Duration
}

// fresh reports whether the entry can still be served without a new fetch.
// Stale entries are never reused.
func (e *entry[T]) fresh(now time.Time) bool {
	return e != nil && now.Sub(e.fetchedAt) <= e.ttl
}
