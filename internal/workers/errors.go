package workers

import "errors"

// ErrNonPositiveInterval is returned by a periodic worker started without a
// usable interval.
var ErrNonPositiveInterval = errors.New("worker interval must be positive")
