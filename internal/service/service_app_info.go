package service

import (
	"context"

	"github.com/MKhiriev/go-futures-backend/internal/config"
	"github.com/MKhiriev/go-futures-backend/internal/logger"
	"github.com/MKhiriev/go-futures-backend/models"
)

const serviceBanner = "RL Futures Trading System Backend"

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// ServiceInfo returns the banner served on the root endpoint.
func (s *appInfoService) ServiceInfo(ctx context.Context) models.ServiceInfo {
	return models.ServiceInfo{
		Message: serviceBanner,
		Status:  "running",
		Version: s.appVersion,
		Endpoints: map[string]string{
			"health": "/health",
			"upload": "/api/upload",
			"config": "/api/config",
		},
	}
}
