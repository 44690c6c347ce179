package metrics

import "errors"

var (
	// ErrEmptyName is returned when a metric is recorded without a name.
	ErrEmptyName = errors.New("metric name is empty")

	// ErrNegativeDelta is returned when a counter increment is negative.
	ErrNegativeDelta = errors.New("counter increment is negative")

	// ErrKindMismatch is returned when a series is recorded with a kind
	// different from the one it was created with.
	ErrKindMismatch = errors.New("metric kind mismatch")
)
