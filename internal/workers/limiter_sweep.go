package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-futures-backend/internal/logger"
	"github.com/MKhiriev/go-futures-backend/internal/ratelimit"
)

// LimiterSweepWorker periodically drops idle clients from every route
// limiter so that memory stays bounded by active clients.
type LimiterSweepWorker struct {
	registry *ratelimit.Registry
	interval time.Duration

	logger *logger.Logger
}

// NewLimiterSweepWorker creates a sweeper. A zero interval falls back to the
// longest window among the registered limiters, read when Run starts.
func NewLimiterSweepWorker(registry *ratelimit.Registry, interval time.Duration, logger *logger.Logger) *LimiterSweepWorker {
	return &LimiterSweepWorker{
		registry: registry,
		interval: interval,
		logger:   logger,
	}
}

func (w *LimiterSweepWorker) Run(ctx context.Context) error {
	interval := w.interval
	if interval == 0 {
		interval = w.registry.SweepEvery()
	}
	if interval <= 0 {
		return ErrNonPositiveInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("limiter sweep worker stopped")
			return nil
		case <-ticker.C:
			if removed := w.registry.Sweep(); removed > 0 {
				w.logger.Debug().Int("removed", removed).Msg("idle rate limit keys swept")
			}
		}
	}
}
