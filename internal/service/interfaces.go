package service

import (
	"context"

	"github.com/MKhiriev/go-futures-backend/internal/validators"
	"github.com/MKhiriev/go-futures-backend/models"
)

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	ServiceInfo(ctx context.Context) models.ServiceInfo
}

// ValidationService sanitizes arbitrary client data for POST /api/validate.
type ValidationService interface {
	Validate(ctx context.Context, data validators.Value) (models.ValidationResult, error)
}

// UploadService accepts a named blob of string or array data.
type UploadService interface {
	Upload(ctx context.Context, filename, data validators.Value) (models.UploadResult, error)
}

type ConfigService interface {
	GetConfig(ctx context.Context) models.TradingConfig
	UpdateConfig(ctx context.Context, data validators.Value) (models.ConfigUpdateResult, error)
}

// UploadServiceWrapper defines middleware composition for UploadService.
// Implementations wrap an existing UploadService to add behavior such as
// instrumentation.
type UploadServiceWrapper interface {
	Wrap(UploadService) UploadService // returns a decorated UploadService applying additional behavior
}
