package kbbi

import (
	"sync"
	"time"
)

// SlidingWindowLimiter caps requests per client identity over a trailing
// time window. Each check prunes the client's timestamp list to the window,
// compares the count against the max, and records the current instant only
// when the request is allowed.
//
// The number of tracked clients is unbounded; idle buckets are never
// evicted. The HTTP edge limiter in internal/http/middleware bounds overall
// growth for this deployment.
type SlidingWindowLimiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	buckets map[string][]time.Time

	now func() time.Time // test seam
}

// NewSlidingWindowLimiter creates a limiter allowing max requests per
// client within the trailing window.
func NewSlidingWindowLimiter(max int, window time.Duration) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		max:     max,
		window:  window,
		buckets: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Allow reports whether clientID may issue a request now. A denied request
// is not recorded against the window.
func (l *SlidingWindowLimiter) Allow(clientID string) bool {
	now := l.now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	bucket := l.buckets[clientID]
	kept := bucket[:0]
	for _, ts := range bucket {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) >= l.max {
		l.buckets[clientID] = kept
		return false
	}
	l.buckets[clientID] = append(kept, now)
	return true
}
