package service

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-futures-backend/internal/logger"
	"github.com/MKhiriev/go-futures-backend/internal/metrics"
	"github.com/MKhiriev/go-futures-backend/internal/validators"
	"github.com/MKhiriev/go-futures-backend/models"
)

const (
	warnDataTooLong = "Data length exceeds recommended limit"

	validationTypeDeep = "sanitize_deep"
)

type validationService struct {
	metrics *metrics.Collector

	logger *logger.Logger
}

func NewValidationService(collector *metrics.Collector, logger *logger.Logger) ValidationService {
	return &validationService{
		metrics: collector,
		logger:  logger,
	}
}

// Validate deep-sanitizes data. A sanitized string longer than
// validators.DefaultMaxStringLength is still valid but carries a warning;
// escaping can push a string that passed the length check over the limit.
func (s *validationService) Validate(ctx context.Context, data validators.Value) (models.ValidationResult, error) {
	start := time.Now()
	sanitized, err := validators.SanitizeDeep(data)
	s.metrics.RecordValidationDuration(validationTypeDeep, time.Since(start))
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("data validation failed")
		return models.ValidationResult{}, err
	}

	warnings := []string{}
	if str, ok := sanitized.Str(); ok && utf8.RuneCountInString(str) > validators.DefaultMaxStringLength {
		warnings = append(warnings, warnDataTooLong)
	}

	return models.ValidationResult{
		Valid:         true,
		SanitizedData: sanitized,
		Warnings:      warnings,
	}, nil
}
