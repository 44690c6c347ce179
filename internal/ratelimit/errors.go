package ratelimit

import "errors"

var (
	// ErrRateLimited is returned by Limiter.Check when the key has used up
	// its window budget.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvalidPolicy is returned when a policy has a non-positive limit or window.
	ErrInvalidPolicy = errors.New("invalid rate limit policy")
)
