package ratelimit

import (
	"sort"
	"sync"
	"time"
)

// Registry owns one Limiter per route so that every route is limited
// independently.
type Registry struct {
	opts []Option

	mu       sync.Mutex
	limiters map[string]*Limiter
}

// NewRegistry creates an empty Registry. opts are applied to every Limiter
// it creates.
func NewRegistry(opts ...Option) *Registry {
	return &Registry{
		opts:     opts,
		limiters: make(map[string]*Limiter),
	}
}

// For returns the limiter of route, creating it with policy on first use.
// A later call with a different policy for the same route keeps the
// first limiter.
func (r *Registry) For(route string, policy Policy) (*Limiter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.limiters[route]; ok {
		return l, nil
	}

	l, err := New(policy, r.opts...)
	if err != nil {
		return nil, err
	}
	r.limiters[route] = l

	return l, nil
}

// Routes returns the registered route names in sorted order.
func (r *Registry) Routes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	routes := make([]string, 0, len(r.limiters))
	for route := range r.limiters {
		routes = append(routes, route)
	}
	sort.Strings(routes)

	return routes
}

// Sweep runs Limiter.Sweep on every registered limiter and returns the total
// number of keys removed. The registry lock is released before sweeping.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	limiters := make([]*Limiter, 0, len(r.limiters))
	for _, l := range r.limiters {
		limiters = append(limiters, l)
	}
	r.mu.Unlock()

	removed := 0
	for _, l := range limiters {
		removed += l.Sweep()
	}

	return removed
}

// SweepEvery returns the interval to use for periodic sweeping when none is
// configured: the longest window among registered limiters.
func (r *Registry) SweepEvery() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	var longest time.Duration
	for _, l := range r.limiters {
		if w := l.policy.Window; w > longest {
			longest = w
		}
	}

	return longest
}
