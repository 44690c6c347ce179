// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package health tracks the liveness of the service: host resource usage,
// the outcome of every served request and a bounded history of checks.
//
// [Monitor] combines a [Sampler] reading for CPU, memory and disk with the
// request success rate into a [Snapshot] whose status is one of healthy,
// degraded, unhealthy or error. Sampling failures never escape as errors;
// they become snapshots with status error.
package health

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/health_sampler_mock.go -package=mock

// Sampler reads host and process resource usage. Implementations may block
// (CPU usage is measured over an interval) and must honour ctx.
type Sampler interface {
	// Sample returns CPU, memory and disk usage of the host.
	Sample(ctx context.Context) (SystemSample, error)

	// Process describes the current process.
	Process(ctx context.Context) (ProcessInfo, error)

	// Network returns host-wide network counters.
	Network(ctx context.Context) (NetworkInfo, error)
}
