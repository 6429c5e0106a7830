package fetch

import (
	"log"
	"sync"
	"time"

	"github.com/soumitra/isstracker/internal/source"
)

// DefaultPositionTTL is how long a fetched position stays fresh.
const DefaultPositionTTL = 60 * time.Second

// FallbackPosition is the documented demo coordinate returned when every
// source fails.
var FallbackPosition = source.Coordinate{Latitude: 28.6139, Longitude: 77.2090}

// positionEntry pairs a source with its optional request budget.
type positionEntry struct {
	src   source.PositionSource
	limit *RateLimit // nil = unlimited
}

// PositionFetcher obtains the ISS position from an ordered list of sources.
// Priority is strictly the configured order; each source gets one attempt
// per fetch cycle. Fetch never fails outwardly: when every source is
// exhausted it returns FallbackPosition, and that outcome is cached like
// any other so an outage does not re-sweep the sources inside the TTL.
type PositionFetcher struct {
	// mu is held across the whole read-check-fetch-write sequence, so at
	// most one fetch is in flight at a time.
	mu      sync.Mutex
	entries []positionEntry
	ttl     time.Duration
	cached  *entry[source.Coordinate]
	now     func() time.Time
}

// NewPositionFetcher creates a fetcher over the given sources in priority order.
func NewPositionFetcher(ttl time.Duration, sources ...source.PositionSource) *PositionFetcher {
	entries := make([]positionEntry, len(sources))
	for i, s := range sources {
		entries[i] = positionEntry{src: s}
	}
	return &PositionFetcher{
		entries: entries,
		ttl:     ttl,
		now:     time.Now,
	}
}

// SetRateLimit configures a request budget for a source by name.
func (f *PositionFetcher) SetRateLimit(sourceName string, maxReqs int, window time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.entries {
		if f.entries[i].src.Name() == sourceName {
			f.entries[i].limit = NewRateLimit(maxReqs, window)
			log.Printf("[fetch] %s: %d requests per %v", sourceName, maxReqs, window)
			return
		}
	}
}

// Fetch returns the current ISS position. A fresh cache entry is served
// without a network call; otherwise sources are tried in order and the
// first structurally valid coordinate wins. The Status reports which
// source served the value, or that the fallback was used.
func (f *PositionFetcher) Fetch() (source.Coordinate, Status) {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()
	if f.cached.fresh(now) {
		st := f.cached.status
		st.Cached = true
		return f.cached.value, st
	}

	for _, e := range f.entries {
		if e.limit != nil && !e.limit.Allow() {
			log.Printf("[fetch] %s rate-limited, skipping", e.src.Name())
			continue
		}
		if e.limit != nil {
			e.limit.Record()
		}

		pos, err := e.src.Position()
		if err != nil {
			log.Printf("[fetch] %s failed for position: %v", e.src.Name(), err)
			continue
		}
		if !pos.Valid() {
			log.Printf("[fetch] %s returned out-of-range position (%.4f, %.4f), skipping",
				e.src.Name(), pos.Latitude, pos.Longitude)
			continue
		}

		st := Status{Source: e.src.Name(), FetchedAt: now}
		f.cached = &entry[source.Coordinate]{value: pos, status: st, fetchedAt: now, ttl: f.ttl}
		return pos, st
	}

	log.Printf("[fetch] all position sources failed, serving demo position")
	st := Status{Fallback: true, FetchedAt: now}
	f.cached = &entry[source.Coordinate]{value: FallbackPosition, status: st, fetchedAt: now, ttl: f.ttl}
	return FallbackPosition, st
}

// Invalidate drops the cached position so the next Fetch bypasses the TTL.
func (f *PositionFetcher) Invalidate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cached = nil
}
