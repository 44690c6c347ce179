package config

import "time"

// Defaults applied to fields no source has set.
const (
	DefaultVersion           = "0.1.0"
	DefaultEnvironment       = "development"
	DefaultHTTPAddress       = "0.0.0.0:8000"
	DefaultGRPCAddress       = "0.0.0.0:9090"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultMaxBodyBytes      = 16 << 20
	DefaultLogLevel          = "info"
	DefaultDiskPath          = "/"
	DefaultCPUSampleInterval = time.Second
	DefaultProbeInterval     = 30 * time.Second
	DefaultSweepInterval     = time.Minute
)

func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.App.Version, DefaultVersion)
	setDefault(&cfg.App.Environment, DefaultEnvironment)

	setDefault(&cfg.Server.HTTPAddress, DefaultHTTPAddress)
	setDefault(&cfg.Server.GRPCAddress, DefaultGRPCAddress)
	setDefault(&cfg.Server.RequestTimeout, DefaultRequestTimeout)
	setDefault(&cfg.Server.MaxBodyBytes, DefaultMaxBodyBytes)

	if cfg.App.Debug {
		setDefault(&cfg.Log.Level, "debug")
	}
	setDefault(&cfg.Log.Level, DefaultLogLevel)

	setDefault(&cfg.Health.DiskPath, DefaultDiskPath)
	setDefault(&cfg.Health.CPUSampleInterval, DefaultCPUSampleInterval)
	setDefault(&cfg.Health.ProbeInterval, DefaultProbeInterval)

	setDefault(&cfg.Limits.SweepInterval, DefaultSweepInterval)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
