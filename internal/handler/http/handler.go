package http

import (
	"sync/atomic"

	"github.com/MKhiriev/go-futures-backend/internal/config"
	"github.com/MKhiriev/go-futures-backend/internal/logger"
	"github.com/MKhiriev/go-futures-backend/internal/service"
	"github.com/MKhiriev/go-futures-backend/internal/utils"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	traceIDs *utils.UUIDGenerator
	inFlight atomic.Int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
