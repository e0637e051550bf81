package engine

import "time"

// RateLimiter admits at most one frame per interval
// Skipped calls do not move the reference point, so a late call executes immediately
type RateLimiter struct {
	interval time.Duration
	last     time.Time
	started  bool
}

// NewRateLimiter creates a limiter for the given frames per second
func NewRateLimiter(fps int) *RateLimiter {
	if fps <= 0 {
		fps = 1
	}
	return &RateLimiter{interval: time.Second / time.Duration(fps)}
}

// Interval returns the minimum time between executed frames
func (r *RateLimiter) Interval() time.Duration {
	return r.interval
}

// Ready reports whether a frame may execute at now and records it if so
func (r *RateLimiter) Ready(now time.Time) bool {
	if r.started && now.Sub(r.last) < r.interval {
		return false
	}
	r.last = now
	r.started = true
	return true
}
