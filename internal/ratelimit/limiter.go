package ratelimit

import (
	"sync"
	"time"
)

// Limiter enforces a single Policy per key using a sliding log of admission
// timestamps.
type Limiter struct {
	policy Policy
	now    func() time.Time

	mu      sync.Mutex
	windows map[string][]time.Time
}

// Option customizes a Limiter.
type Option func(*Limiter)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

// New creates a Limiter for policy.
func New(policy Policy, opts ...Option) (*Limiter, error) {
	if err := policy.validate(); err != nil {
		return nil, err
	}

	l := &Limiter{
		policy:  policy,
		now:     time.Now,
		windows: make(map[string][]time.Time),
	}
	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// Policy returns the budget enforced by l.
func (l *Limiter) Policy() Policy {
	return l.policy
}

// Allow reports whether a request for key is admitted and records it if so.
// Purge, check and append happen in one critical section, so concurrent
// callers can never admit more than MaxRequests per window for a key.
func (l *Limiter) Allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	window := purge(l.windows[key], now.Add(-l.policy.Window))
	if len(window) >= l.policy.MaxRequests {
		l.windows[key] = window
		return false
	}

	l.windows[key] = append(window, now)
	return true
}

// Check is Allow returning ErrRateLimited on rejection.
func (l *Limiter) Check(key string) error {
	if !l.Allow(key) {
		return ErrRateLimited
	}
	return nil
}

// Remaining is the number of requests key may still make in the current
// window. It does not record anything.
func (l *Limiter) Remaining(key string) int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	window := purge(l.windows[key], now.Add(-l.policy.Window))
	l.store(key, window)

	remaining := l.policy.MaxRequests - len(window)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RetryAfter is the time until the oldest admission of key leaves the
// window, or zero if key has budget left.
func (l *Limiter) RetryAfter(key string) time.Duration {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	window := purge(l.windows[key], now.Add(-l.policy.Window))
	l.store(key, window)

	if len(window) < l.policy.MaxRequests {
		return 0
	}

	return window[0].Add(l.policy.Window).Sub(now)
}

// Sweep drops keys with no admissions left in the window and returns how
// many were removed.
func (l *Limiter) Sweep() int {
	now := l.now()
	windowStart := now.Add(-l.policy.Window)

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, window := range l.windows {
		window = purge(window, windowStart)
		if len(window) == 0 {
			delete(l.windows, key)
			removed++
			continue
		}
		l.windows[key] = window
	}

	return removed
}

// Keys is the number of keys currently tracked.
func (l *Limiter) Keys() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.windows)
}

func (l *Limiter) store(key string, window []time.Time) {
	if len(window) == 0 {
		delete(l.windows, key)
		return
	}
	l.windows[key] = window
}

// purge drops the leading timestamps that are not after windowStart.
// Timestamps are appended in order, so the first one after windowStart
// marks the start of the live part of the window.
func purge(window []time.Time, windowStart time.Time) []time.Time {
	i := 0
	for i < len(window) && !window[i].After(windowStart) {
		i++
	}
	if i == 0 {
		return window
	}
	if i == len(window) {
		return nil
	}

	live := make([]time.Time, len(window)-i)
	copy(live, window[i:])
	return live
}
