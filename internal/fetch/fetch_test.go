package fetch

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/soumitra/isstracker/internal/source"
)

// stubPosition is a scripted position source that counts calls.
type stubPosition struct {
	name  string
	pos   source.Coordinate
	err   error
	calls int
}

func (s *stubPosition) Name() string { return s.name }

func (s *stubPosition) Position() (source.Coordinate, error) {
	s.calls++
	return s.pos, s.err
}

// stubCrew is a scripted crew source that counts calls.
type stubCrew struct {
	name   string
	roster source.CrewRoster
	err    error
	calls  int
}

func (s *stubCrew) Name() string { return s.name }

func (s *stubCrew) Crew() (source.CrewRoster, error) {
	s.calls++
	return s.roster, s.err
}

// fakeClock drives the fetchers' notion of time in TTL tests.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)}
}

func TestPositionFirstSourceWins(t *testing.T) {
	a := &stubPosition{name: "a", pos: source.Coordinate{Latitude: 10, Longitude: 20}}
	b := &stubPosition{name: "b", pos: source.Coordinate{Latitude: 30, Longitude: 40}}

	f := NewPositionFetcher(DefaultPositionTTL, a, b)
	pos, st := f.Fetch()

	if pos != a.pos {
		t.Errorf("expected a's position %v, got %v", a.pos, pos)
	}
	if st.Source != "a" || st.Fallback || st.Cached {
		t.Errorf("unexpected status %+v", st)
	}
	if b.calls != 0 {
		t.Errorf("b should not be called when a succeeds, got %d calls", b.calls)
	}
}

func TestPositionPriorityOrderFallsThrough(t *testing.T) {
	a := &stubPosition{name: "a", err: errors.New("connection refused")}
	b := &stubPosition{name: "b", pos: source.Coordinate{Latitude: -51.25, Longitude: 170.01}}

	f := NewPositionFetcher(DefaultPositionTTL, a, b)
	pos, st := f.Fetch()

	if pos != b.pos {
		t.Errorf("expected b's position %v, got %v", b.pos, pos)
	}
	if st.Source != "b" || st.Fallback {
		t.Errorf("unexpected status %+v", st)
	}
	if a.calls != 1 {
		t.Errorf("a should have been tried exactly once, got %d calls", a.calls)
	}
}

func TestPositionFallbackTotality(t *testing.T) {
	a := &stubPosition{name: "a", err: errors.New("timeout")}
	b := &stubPosition{name: "b", err: errors.New("HTTP 500")}

	f := NewPositionFetcher(DefaultPositionTTL, a, b)
	pos, st := f.Fetch()

	if pos != FallbackPosition {
		t.Errorf("expected fallback %v, got %v", FallbackPosition, pos)
	}
	if pos.Latitude != 28.6139 || pos.Longitude != 77.2090 {
		t.Errorf("fallback coordinate changed: %v", pos)
	}
	if !pos.Valid() {
		t.Error("fallback coordinate must be within valid bounds")
	}
	if !st.Fallback {
		t.Error("status must flag the fallback as non-authoritative")
	}
}

func TestPositionNoSourcesConfigured(t *testing.T) {
	f := NewPositionFetcher(DefaultPositionTTL)
	pos, st := f.Fetch()
	if pos != FallbackPosition || !st.Fallback {
		t.Errorf("expected fallback, got %v %+v", pos, st)
	}
}

func TestPositionOutOfRangeFallsThrough(t *testing.T) {
	// A structurally present but out-of-range coordinate is a per-source
	// failure, same as a transport error.
	a := &stubPosition{name: "a", pos: source.Coordinate{Latitude: 200, Longitude: 0}}
	b := &stubPosition{name: "b", pos: source.Coordinate{Latitude: 5, Longitude: 6}}

	f := NewPositionFetcher(DefaultPositionTTL, a, b)
	pos, st := f.Fetch()

	if pos != b.pos || st.Source != "b" {
		t.Errorf("expected b's position, got %v %+v", pos, st)
	}
}

func TestPositionCacheFreshness(t *testing.T) {
	clock := newFakeClock()
	a := &stubPosition{name: "a", pos: source.Coordinate{Latitude: 1, Longitude: 2}}

	f := NewPositionFetcher(60*time.Second, a)
	f.now = clock.now

	f.Fetch()
	clock.advance(30 * time.Second)
	pos, st := f.Fetch()

	if a.calls != 1 {
		t.Errorf("expected one network call inside the TTL, got %d", a.calls)
	}
	if !st.Cached || st.Source != "a" {
		t.Errorf("second fetch should be served from cache, got %+v", st)
	}
	if pos != a.pos {
		t.Errorf("cached value mismatch: %v", pos)
	}

	// Past the TTL the entry is stale and must not be reused.
	clock.advance(31 * time.Second)
	_, st = f.Fetch()
	if a.calls != 2 {
		t.Errorf("expected a new network call after TTL expiry, got %d calls", a.calls)
	}
	if st.Cached {
		t.Error("fetch after expiry must not report a cached value")
	}
}

func TestPositionFallbackIsCached(t *testing.T) {
	clock := newFakeClock()
	a := &stubPosition{name: "a", err: errors.New("down")}

	f := NewPositionFetcher(60*time.Second, a)
	f.now = clock.now

	f.Fetch()
	clock.advance(10 * time.Second)
	pos, st := f.Fetch()

	if a.calls != 1 {
		t.Errorf("fallback must be cached; sources re-hit %d times", a.calls)
	}
	if pos != FallbackPosition || !st.Fallback || !st.Cached {
		t.Errorf("expected cached fallback, got %v %+v", pos, st)
	}
}

func TestPositionManualInvalidation(t *testing.T) {
	clock := newFakeClock()
	a := &stubPosition{name: "a", pos: source.Coordinate{Latitude: 1, Longitude: 2}}

	f := NewPositionFetcher(60*time.Second, a)
	f.now = clock.now

	f.Fetch()
	f.Invalidate()
	_, st := f.Fetch()

	if a.calls != 2 {
		t.Errorf("fetch after Invalidate must hit the network, got %d calls", a.calls)
	}
	if st.Cached {
		t.Error("fetch after Invalidate must not be served from cache")
	}
}

func TestPositionRateLimitedSourceSkipped(t *testing.T) {
	a := &stubPosition{name: "a", pos: source.Coordinate{Latitude: 1, Longitude: 2}}
	b := &stubPosition{name: "b", pos: source.Coordinate{Latitude: 3, Longitude: 4}}

	f := NewPositionFetcher(DefaultPositionTTL, a, b)
	f.SetRateLimit("a", 1, time.Minute)

	_, st := f.Fetch()
	if st.Source != "a" {
		t.Fatalf("first fetch should use a, got %+v", st)
	}

	// a's budget (1 per minute) is spent; the next cache miss must skip to b.
	f.Invalidate()
	_, st = f.Fetch()
	if st.Source != "b" {
		t.Errorf("rate-limited a should be skipped in favor of b, got %+v", st)
	}
	if a.calls != 1 {
		t.Errorf("a should not be called past its budget, got %d calls", a.calls)
	}
}

func TestRateLimitWindow(t *testing.T) {
	rl := NewRateLimit(2, 50*time.Millisecond)

	if !rl.Allow() {
		t.Fatal("fresh limiter should allow")
	}
	rl.Record()
	rl.Record()
	if rl.Allow() {
		t.Error("limiter at capacity should not allow")
	}
	if rl.Remaining() != 0 {
		t.Errorf("expected 0 remaining, got %d", rl.Remaining())
	}

	time.Sleep(60 * time.Millisecond)
	if !rl.Allow() {
		t.Error("limiter should allow after the window slides")
	}
	if rl.Remaining() != 2 {
		t.Errorf("expected full budget back, got %d", rl.Remaining())
	}
}

func TestCrewFetch(t *testing.T) {
	src := &stubCrew{name: "open-notify", roster: source.CrewRoster{
		Number: 2,
		People: []source.CrewMember{
			{Name: "A", Craft: "ISS"},
			{Name: "B", Craft: "Tiangong"},
		},
	}}

	f := NewCrewFetcher(DefaultCrewTTL, src)
	roster, st := f.Fetch()

	if roster.Number != 2 || len(roster.People) != 2 {
		t.Errorf("unexpected roster %+v", roster)
	}
	if st.Source != "open-notify" || st.Fallback {
		t.Errorf("unexpected status %+v", st)
	}
}

func TestCrewFallback(t *testing.T) {
	src := &stubCrew{name: "open-notify", err: errors.New("timeout")}

	f := NewCrewFetcher(DefaultCrewTTL, src)
	roster, st := f.Fetch()

	if !st.Fallback {
		t.Error("status must flag the fallback roster")
	}
	if roster.Number != 3 {
		t.Errorf("expected demo roster count 3, got %d", roster.Number)
	}
	if len(roster.People) != 3 {
		t.Fatalf("expected 3 demo members, got %d", len(roster.People))
	}
	for i, m := range roster.People {
		want := fmt.Sprintf("Demo Astronaut %d", i+1)
		if m.Name != want {
			t.Errorf("member %d: expected %q, got %q", i, want, m.Name)
		}
		if m.Craft != "ISS" {
			t.Errorf("member %d: expected craft ISS, got %q", i, m.Craft)
		}
	}
}

func TestCrewFallbackIsCached(t *testing.T) {
	clock := newFakeClock()
	src := &stubCrew{name: "open-notify", err: errors.New("down")}

	f := NewCrewFetcher(time.Hour, src)
	f.now = clock.now

	f.Fetch()
	clock.advance(30 * time.Minute)
	f.Fetch()

	if src.calls != 1 {
		t.Errorf("failing crew call must not repeat inside the TTL, got %d calls", src.calls)
	}
}

func TestCrewCacheExpiryAndInvalidate(t *testing.T) {
	clock := newFakeClock()
	src := &stubCrew{name: "open-notify", roster: source.CrewRoster{Number: 1}}

	f := NewCrewFetcher(time.Hour, src)
	f.now = clock.now

	f.Fetch()
	clock.advance(61 * time.Minute)
	f.Fetch()
	if src.calls != 2 {
		t.Errorf("expected refetch after TTL expiry, got %d calls", src.calls)
	}

	f.Invalidate()
	f.Fetch()
	if src.calls != 3 {
		t.Errorf("expected refetch after Invalidate, got %d calls", src.calls)
	}
}

func TestStatusLabel(t *testing.T) {
	cases := []struct {
		st   Status
		want string
	}{
		{Status{Source: "open-notify"}, "LIVE · open-notify"},
		{Status{Source: "open-notify", Cached: true}, "CACHED · open-notify"},
		{Status{Fallback: true}, "DEMO DATA"},
		{Status{Fallback: true, Cached: true}, "DEMO DATA"},
	}
	for _, c := range cases {
		if got := c.st.Label(); got != c.want {
			t.Errorf("Label(%+v) = %q, want %q", c.st, got, c.want)
		}
	}
}
