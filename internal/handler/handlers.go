package handler

import (
	"github.com/MKhiriev/go-futures-backend/internal/config"
	"github.com/MKhiriev/go-futures-backend/internal/handler/grpc"
	"github.com/MKhiriev/go-futures-backend/internal/handler/http"
	"github.com/MKhiriev/go-futures-backend/internal/logger"
	"github.com/MKhiriev/go-futures-backend/internal/service"
)

// Handlers holds the transport handlers enabled by the server
// configuration. A nil field means the transport is disabled.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
