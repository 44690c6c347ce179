package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a non-positive request timeout or body limit).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidHealthConfigs indicates invalid health probe settings
	// (for example, a CPU sample window not shorter than the probe period).
	ErrInvalidHealthConfigs = errors.New("invalid health configuration")
	// ErrInvalidLimitsConfigs indicates invalid rate limiter settings.
	ErrInvalidLimitsConfigs = errors.New("invalid limits configuration")
)
