package service

import (
	"fmt"

	"github.com/MKhiriev/go-futures-backend/internal/config"
	"github.com/MKhiriev/go-futures-backend/internal/health"
	"github.com/MKhiriev/go-futures-backend/internal/logger"
	"github.com/MKhiriev/go-futures-backend/internal/metrics"
	"github.com/MKhiriev/go-futures-backend/internal/ratelimit"
)

// Services is the service container shared by the transport handlers and
// the background workers. Limits, Metrics and Health are the process-wide
// governance singletons; they are created here once and never replaced.
type Services struct {
	AppInfoService    AppInfoService
	ValidationService ValidationService
	UploadService     UploadService
	ConfigService     ConfigService

	Limits  *ratelimit.Registry
	Metrics *metrics.Collector
	Health  *health.Monitor
}

func NewServices(cfg config.StructuredConfig, sampler health.Sampler, logger *logger.Logger) (*Services, error) {
	if sampler == nil {
		return nil, ErrNoSamplerProvided
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	collector := metrics.NewCollector(
		metrics.WithVersion(cfg.App.Version),
		metrics.WithLogger(logger),
	)

	monitor, err := health.NewMonitor(sampler,
		health.WithLogger(logger),
		health.WithEnvironment(cfg.App.Environment, cfg.App.Debug),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating health monitor: %w", err)
	}

	return &Services{
		AppInfoService:    appInfo,
		ValidationService: NewValidationService(collector, logger),
		UploadService:     NewUploadMetricsService(collector).Wrap(NewUploadService(logger)),
		ConfigService:     NewConfigService(logger),
		Limits:            ratelimit.NewRegistry(),
		Metrics:           collector,
		Health:            monitor,
	}, nil
}
