package ratelimit

import (
	"fmt"
	"time"
)

// Policy is the admission budget of one route: at most MaxRequests per
// trailing Window for each key.
type Policy struct {
	MaxRequests int
	Window      time.Duration
}

// PerMinute is a shorthand for a policy over a 60 second window.
func PerMinute(maxRequests int) Policy {
	return Policy{MaxRequests: maxRequests, Window: time.Minute}
}

func (p Policy) validate() error {
	if p.MaxRequests <= 0 || p.Window <= 0 {
		return fmt.Errorf("%w: %d requests per %s", ErrInvalidPolicy, p.MaxRequests, p.Window)
	}
	return nil
}

func (p Policy) String() string {
	return fmt.Sprintf("%d/%s", p.MaxRequests, p.Window)
}
