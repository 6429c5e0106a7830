package dashboard

import (
	"log"
	"sync"
	"time"

	"github.com/soumitra/isstracker/internal/fetch"
	"github.com/soumitra/isstracker/internal/source"
)

// State holds a snapshot of the latest fetch results for the UI to read.
type State struct {
	Position   source.Coordinate
	PosStatus  fetch.Status
	Crew       source.CrewRoster
	CrewStatus fetch.Status
	UpdatedAt  time.Time
}

// Dashboard drives the render cycle: one position fetch and one crew fetch
// per refresh, published as an immutable snapshot. Auto-refresh re-runs the
// cycle on a fixed interval; a manual refresh clears both caches first.
type Dashboard struct {
	positions *fetch.PositionFetcher
	crew      *fetch.CrewFetcher
	interval  time.Duration

	mu    sync.RWMutex
	state State
	auto  bool

	refreshCh chan struct{}
}

// New creates a Dashboard over the given fetchers. interval is the
// auto-refresh period; auto sets the initial toggle state.
func New(positions *fetch.PositionFetcher, crew *fetch.CrewFetcher, interval time.Duration, auto bool) *Dashboard {
	return &Dashboard{
		positions: positions,
		crew:      crew,
		interval:  interval,
		auto:      auto,
		refreshCh: make(chan struct{}, 1),
	}
}

// GetState returns a copy of the current snapshot (thread-safe).
func (d *Dashboard) GetState() State {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

// Interval returns the auto-refresh period.
func (d *Dashboard) Interval() time.Duration {
	return d.interval
}

// AutoRefresh reports whether the auto-refresh toggle is on.
func (d *Dashboard) AutoRefresh() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.auto
}

// ToggleAutoRefresh flips the auto-refresh toggle and returns the new state.
func (d *Dashboard) ToggleAutoRefresh() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.auto = !d.auto
	log.Printf("[dashboard] auto-refresh %v", d.auto)
	return d.auto
}

// Refresh runs one fetch cycle: position, then crew, sequentially. Both
// fetchers are total, so a refresh always produces a complete snapshot.
func (d *Dashboard) Refresh() {
	pos, posSt := d.positions.Fetch()
	roster, crewSt := d.crew.Fetch()

	d.mu.Lock()
	d.state = State{
		Position:   pos,
		PosStatus:  posSt,
		Crew:       roster,
		CrewStatus: crewSt,
		UpdatedAt:  time.Now(),
	}
	d.mu.Unlock()
}

// ForceRefresh invalidates both caches and runs a fetch cycle, bypassing
// the TTL check exactly once. This backs the manual refresh button.
func (d *Dashboard) ForceRefresh() {
	d.positions.Invalidate()
	d.crew.Invalidate()
	d.Refresh()
}

// RequestRefresh queues a manual refresh without blocking the caller.
// Safe to call from the UI loop; a refresh already queued is not doubled.
func (d *Dashboard) RequestRefresh() {
	select {
	case d.refreshCh <- struct{}{}:
	default:
	}
}

// Run performs an initial refresh, then serves manual refresh requests and
// auto-refresh ticks. It blocks forever — run in a goroutine.
func (d *Dashboard) Run() {
	d.Refresh()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-d.refreshCh:
			log.Printf("[dashboard] manual refresh")
			d.ForceRefresh()
		case <-ticker.C:
			if d.AutoRefresh() {
				d.Refresh()
			}
		}
	}
}
