// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Variable names are the
// group prefix plus the field tag, so Server.MaxBodyBytes is read from
// SERVER_MAX_BODY_BYTES and Server.TrustedProxies from the comma separated
// SERVER_TRUSTED_PROXIES.
//
// A malformed value fails the whole source; the error names the config
// fields that could not be parsed.
func parseEnv(cfg *StructuredConfig) error {
	err := env.Parse(cfg)
	if err == nil {
		return nil
	}

	if fields := failedFields(err); len(fields) > 0 {
		return fmt.Errorf("error getting env configs for %s: %w", strings.Join(fields, ", "), err)
	}
	return fmt.Errorf("error getting env configs: %w", err)
}

func failedFields(err error) []string {
	var aggregate env.AggregateError
	if !errors.As(err, &aggregate) {
		return nil
	}

	var fields []string
	for _, e := range aggregate.Errors {
		var parseErr env.ParseError
		if errors.As(e, &parseErr) {
			fields = append(fields, parseErr.Name)
		}
	}
	return fields
}
