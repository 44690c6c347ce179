package grpc

import (
	"github.com/MKhiriev/go-futures-backend/internal/health"
	"github.com/MKhiriev/go-futures-backend/internal/logger"
	"github.com/MKhiriev/go-futures-backend/internal/service"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the name under which the backend reports its serving
// status. The empty name reports the status of the whole server.
const ServiceName = "rlfutures.Backend"

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1.Health service whose serving
// status mirrors the last Health Monitor verdict. A handler instance is
// created once at startup and shared by the gRPC server and the health
// probe worker.
type Handler struct {
	// services provides access to the health monitor.
	services *service.Services

	// health holds the serving status reported to gRPC health clients.
	health *grpchealth.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger. Until the first probe the service reports SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   grpchealth.NewServer(),
		logger:   logger,
	}
}

// Register attaches the health and reflection services to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	reflection.Register(server)
}

// SetServingStatus publishes a Health Monitor status: healthy and degraded
// are SERVING, anything else NOT_SERVING.
func (h *Handler) SetServingStatus(status health.Status) {
	serving := healthpb.HealthCheckResponse_NOT_SERVING
	if status.Serving() {
		serving = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", serving)
	h.health.SetServingStatus(ServiceName, serving)

	h.logger.Debug().Str("status", string(status)).Str("serving", serving.String()).Msg("gRPC serving status updated")
}

// Shutdown reports NOT_SERVING to all watchers; later status updates are
// ignored.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
