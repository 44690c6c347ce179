// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-futures-backend/internal/health"
	"github.com/MKhiriev/go-futures-backend/internal/logger"
	"github.com/MKhiriev/go-futures-backend/internal/metrics"
)

// HealthProbeWorker runs a health check every interval, publishes host CPU
// and memory usage as gauges and forwards the verdict to the publishers.
type HealthProbeWorker struct {
	monitor    *health.Monitor
	collector  *metrics.Collector
	publishers []ServingStatusPublisher
	interval   time.Duration

	logger *logger.Logger
}

func NewHealthProbeWorker(monitor *health.Monitor, collector *metrics.Collector, interval time.Duration,
	logger *logger.Logger, publishers ...ServingStatusPublisher) *HealthProbeWorker {
	return &HealthProbeWorker{
		monitor:    monitor,
		collector:  collector,
		publishers: publishers,
		interval:   interval,
		logger:     logger,
	}
}

// Run probes once immediately and then on every tick until ctx is done.
func (w *HealthProbeWorker) Run(ctx context.Context) error {
	if w.interval <= 0 {
		return ErrNonPositiveInterval
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("health probe worker stopped")
			return nil
		case <-ticker.C:
			w.probe(ctx)
		}
	}
}

func (w *HealthProbeWorker) probe(ctx context.Context) {
	snapshot := w.monitor.CheckHealth(ctx)

	if snapshot.System != nil {
		w.collector.SetCPUUsage(snapshot.System.CPUPercent)
		w.collector.SetMemoryUsage(snapshot.System.MemoryUsedBytes)
	}

	for _, p := range w.publishers {
		p.SetServingStatus(snapshot.Status)
	}

	w.logger.Debug().Str("status", string(snapshot.Status)).Msg("health probe finished")
}
