package fetch

import (
	"sync"
	"time"
)

// RateLimit tracks request consumption against a sliding window.
// Public ISS APIs ask for roughly one request per second; a source whose
// budget is exhausted is skipped for the rest of the window.
type RateLimit struct {
	mu       sync.Mutex
	window   time.Duration
	maxReqs  int
	requests []time.Time
}

// NewRateLimit creates a rate limiter allowing maxReqs requests per window.
func NewRateLimit(maxReqs int, window time.Duration) *RateLimit {
	return &RateLimit{
		window:  window,
		maxReqs: maxReqs,
	}
}

// prune drops timestamps older than the window. Must be called with mu held.
func (r *RateLimit) prune() {
	cutoff := time.Now().Add(-r.window)
	keep := r.requests[:0]
	for _, ts := range r.requests {
		if ts.After(cutoff) {
			keep = append(keep, ts)
		}
	}
	r.requests = keep
}

// Allow returns true if a request can be made without exceeding the limit.
func (r *RateLimit) Allow() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prune()
	return len(r.requests) < r.maxReqs
}

// Record records that a request was just made.
func (r *RateLimit) Record() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, time.Now())
}

// Remaining returns how many requests are left in the current window.
func (r *RateLimit) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prune()
	if rem := r.maxReqs - len(r.requests); rem > 0 {
		return rem
	}
	return 0
}
