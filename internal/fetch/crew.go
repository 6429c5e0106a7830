package fetch

import (
	"log"
	"sync"
	"time"

	"github.com/soumitra/isstracker/internal/source"
)

// DefaultCrewTTL is how long a fetched roster stays fresh. Crew changes
// are rare, so this is much longer than the position TTL.
const DefaultCrewTTL = time.Hour

// fallbackCrew returns the documented demo roster used when the crew
// source fails. Number equals the member count by construction.
func fallbackCrew() source.CrewRoster {
	return source.CrewRoster{
		Number: 3,
		People: []source.CrewMember{
			{Name: "Demo Astronaut 1", Craft: "ISS"},
			{Name: "Demo Astronaut 2", Craft: "ISS"},
			{Name: "Demo Astronaut 3", Craft: "ISS"},
		},
	}
}

// CrewFetcher obtains the onboard crew roster from a single source with a
// TTL cache. Like PositionFetcher, Fetch never fails outwardly: any
// transport or parse failure yields the demo roster, cached for the TTL.
type CrewFetcher struct {
	mu     sync.Mutex
	src    source.CrewSource
	ttl    time.Duration
	cached *entry[source.CrewRoster]
	now    func() time.Time
}

// NewCrewFetcher creates a fetcher over the given crew source.
func NewCrewFetcher(ttl time.Duration, src source.CrewSource) *CrewFetcher {
	return &CrewFetcher{
		src: src,
		ttl: ttl,
		now: time.Now,
	}
}

// Fetch returns the current crew roster, from cache when fresh.
func (f *CrewFetcher) Fetch() (source.CrewRoster, Status) {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()
	if f.cached.fresh(now) {
		st := f.cached.status
		st.Cached = true
		return f.cached.value, st
	}

	roster, err := f.src.Crew()
	if err != nil {
		log.Printf("[fetch] %s failed for crew: %v, serving demo roster", f.src.Name(), err)
		st := Status{Fallback: true, FetchedAt: now}
		f.cached = &entry[source.CrewRoster]{value: fallbackCrew(), status: st, fetchedAt: now, ttl: f.ttl}
		return f.cached.value, st
	}

	st := Status{Source: f.src.Name(), FetchedAt: now}
	f.cached = &entry[source.CrewRoster]{value: roster, status: st, fetchedAt: now, ttl: f.ttl}
	return roster, st
}

// Invalidate drops the cached roster so the next Fetch bypasses the TTL.
func (f *CrewFetcher) Invalidate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cached = nil
}
