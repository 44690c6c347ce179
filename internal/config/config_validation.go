// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-futures-backend/internal/logger"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// service invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// the ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.MaxBodyBytes <= 0 {
		return ErrInvalidServerConfigs
	}

	if _, err := cfg.Server.TrustedProxyPrefixes(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	if cfg.Health.CPUSampleInterval <= 0 || cfg.Health.ProbeInterval <= cfg.Health.CPUSampleInterval {
		return ErrInvalidHealthConfigs
	}

	if cfg.Limits.SweepInterval <= 0 {
		return ErrInvalidLimitsConfigs
	}

	return nil
}
