package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/MKhiriev/go-futures-backend/internal/health"
	"github.com/MKhiriev/go-futures-backend/internal/logger"
	"github.com/MKhiriev/go-futures-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

// newTestClient serves h over an in-memory listener and returns a health
// client connected to it.
func newTestClient(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	h.Register(server)
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func check(t *testing.T, client healthpb.HealthClient, name string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, logger.Nop())

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.NotNil(t, h.health)
}

func TestHandler_ServingByDefault(t *testing.T) {
	client := newTestClient(t, NewHandler(&service.Services{}, logger.Nop()))

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ""))
}

func TestHandler_SetServingStatus(t *testing.T) {
	tests := []struct {
		status health.Status
		want   healthpb.HealthCheckResponse_ServingStatus
	}{
		{health.StatusHealthy, healthpb.HealthCheckResponse_SERVING},
		{health.StatusDegraded, healthpb.HealthCheckResponse_SERVING},
		{health.StatusUnhealthy, healthpb.HealthCheckResponse_NOT_SERVING},
		{health.StatusError, healthpb.HealthCheckResponse_NOT_SERVING},
	}

	h := NewHandler(&service.Services{}, logger.Nop())
	client := newTestClient(t, h)

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			h.SetServingStatus(tt.status)

			assert.Equal(t, tt.want, check(t, client, ""))
			assert.Equal(t, tt.want, check(t, client, ServiceName))
		})
	}
}

func TestHandler_Shutdown(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	client := newTestClient(t, h)

	h.Shutdown()
	h.SetServingStatus(health.StatusHealthy)

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ""))
}
