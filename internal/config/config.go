// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/netip"
	"os"
	"strings"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-futures-backend service. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings reported by the health and
	// metrics endpoints.
	App App `envPrefix:"APP_"`

	// Server holds network address, timeout and body size settings for the
	// HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Log holds the minimum log level and the optional log file.
	Log Log `envPrefix:"LOG_"`

	// Health holds host sampling and probe settings.
	Health Health `envPrefix:"HEALTH_"`

	// Limits holds rate limiter housekeeping settings.
	Limits Limits `envPrefix:"LIMITS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "0.1.0"). Exported as the version label of the app_info metric.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Environment names the deployment (e.g. "development", "production").
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// Debug enables debug-level logging and is reported in health snapshots.
	// Env: APP_DEBUG
	Debug bool `env:"DEBUG"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC health server listens,
	// in "host:port" format (e.g. "0.0.0.0:9090").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxBodyBytes caps the size of request bodies; larger bodies are
	// answered with 413.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`

	// TrustedProxies lists the peers, as IPs or CIDR ranges, whose
	// X-Real-IP / X-Forwarded-For headers name the client. Requests from any
	// other peer are attributed to the socket address.
	// Env: SERVER_TRUSTED_PROXIES (comma separated)
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// TrustedProxyPrefixes parses TrustedProxies. A bare IP becomes a
// single-address prefix.
func (s Server) TrustedProxyPrefixes() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(s.TrustedProxies))
	for _, raw := range s.TrustedProxies {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		if strings.Contains(raw, "/") {
			prefix, err := netip.ParsePrefix(raw)
			if err != nil {
				return nil, fmt.Errorf("trusted proxy %q: %w", raw, err)
			}
			prefixes = append(prefixes, prefix.Masked())
			continue
		}

		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", raw, err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}

	return prefixes, nil
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is an optional path log entries are appended to in addition to
	// stdout.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Health holds host sampling settings.
type Health struct {
	// DiskPath is the mount point whose usage is reported.
	// Env: HEALTH_DISK_PATH
	DiskPath string `env:"DISK_PATH"`

	// CPUSampleInterval is the window CPU usage is measured over.
	// Env: HEALTH_CPU_SAMPLE_INTERVAL
	CPUSampleInterval time.Duration `env:"CPU_SAMPLE_INTERVAL"`

	// ProbeInterval is the period of the background health probe.
	// Env: HEALTH_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}

// Limits holds rate limiter settings.
type Limits struct {
	// SweepInterval is the period idle client windows are dropped at.
	// Env: LIMITS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the service
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
