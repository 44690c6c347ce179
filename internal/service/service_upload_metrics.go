package service

import (
	"context"

	"github.com/MKhiriev/go-futures-backend/internal/metrics"
	"github.com/MKhiriev/go-futures-backend/internal/validators"
	"github.com/MKhiriev/go-futures-backend/models"
)

// UploadMetricsService counts every upload attempt and records the size of
// accepted ones.
type UploadMetricsService struct {
	inner   UploadService
	metrics *metrics.Collector
}

func NewUploadMetricsService(collector *metrics.Collector) UploadServiceWrapper {
	return &UploadMetricsService{
		metrics: collector,
	}
}

func (u *UploadMetricsService) Upload(ctx context.Context, filename, data validators.Value) (models.UploadResult, error) {
	result, err := u.inner.Upload(ctx, filename, data)

	u.metrics.RecordFileUpload(err == nil, fileType(filename), int64(result.Size))

	return result, err
}

func (u *UploadMetricsService) Wrap(wrapper UploadService) UploadService {
	u.inner = wrapper
	return u
}
