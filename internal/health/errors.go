package health

import "errors"

var (
	// ErrNoCPUSample is returned when the CPU probe yields no reading.
	ErrNoCPUSample = errors.New("no cpu sample")

	// ErrNilSampler is returned by NewMonitor when no Sampler is given.
	ErrNilSampler = errors.New("sampler is nil")
)
