package service

import (
	"context"

	"github.com/MKhiriev/go-futures-backend/internal/logger"
	"github.com/MKhiriev/go-futures-backend/internal/validators"
	"github.com/MKhiriev/go-futures-backend/models"
)

const configUpdatedMessage = "Configuration updated successfully"

type configService struct {
	logger *logger.Logger
}

func NewConfigService(logger *logger.Logger) ConfigService {
	return &configService{logger: logger}
}

func (s *configService) GetConfig(ctx context.Context) models.TradingConfig {
	return models.DefaultTradingConfig()
}

// UpdateConfig sanitizes and echoes data. Updates are not persisted.
func (s *configService) UpdateConfig(ctx context.Context, data validators.Value) (models.ConfigUpdateResult, error) {
	if isEmpty(data) {
		return models.ConfigUpdateResult{}, &validators.ValidationError{
			Kind:    validators.ErrMissing,
			Message: "No configuration data provided",
		}
	}

	sanitized, err := validators.SanitizeDeep(data)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("configuration validation failed")
		return models.ConfigUpdateResult{}, err
	}

	logger.FromContext(ctx).Info().Interface("config", sanitized).Msg("configuration updated")

	return models.ConfigUpdateResult{
		Message: configUpdatedMessage,
		Data:    sanitized,
	}, nil
}

// isEmpty reports whether v carries no configuration: null, false, zero,
// an empty string, an empty object or an empty array.
func isEmpty(v validators.Value) bool {
	switch v.Kind() {
	case validators.KindNull:
		return true
	case validators.KindBool:
		b, _ := v.Bool()
		return !b
	case validators.KindNumber:
		n, _ := v.Number()
		return n == 0
	case validators.KindString:
		s, _ := v.Str()
		return s == ""
	default:
		return v.Len() == 0
	}
}
