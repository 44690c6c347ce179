package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-futures-backend/internal/config"
	"github.com/MKhiriev/go-futures-backend/internal/health"
	"github.com/MKhiriev/go-futures-backend/internal/logger"
	"github.com/MKhiriev/go-futures-backend/internal/mock"
	"github.com/MKhiriev/go-futures-backend/internal/service"
	"github.com/MKhiriev/go-futures-backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var nominalSample = health.SystemSample{
	CPUPercent:           10,
	MemoryPercent:        40,
	MemoryAvailableBytes: 3 << 30,
	DiskPercent:          50,
	DiskFreeBytes:        100 << 30,
}

// newTestHandler creates a Handler with a nop logger and no services, for
// middleware that does not touch them.
func newTestHandler() *Handler {
	return &Handler{
		logger:   logger.Nop(),
		traceIDs: utils.NewUUIDGenerator(),
	}
}

// newTestServices builds real services over a mocked host sampler that
// always reports nominal resources.
func newTestServices(t *testing.T) *service.Services {
	t.Helper()

	ctrl := gomock.NewController(t)
	sampler := mock.NewMockSampler(ctrl)
	sampler.EXPECT().Sample(gomock.Any()).Return(nominalSample, nil).AnyTimes()
	sampler.EXPECT().Process(gomock.Any()).Return(health.ProcessInfo{PID: 42}, nil).AnyTimes()
	sampler.EXPECT().Network(gomock.Any()).Return(health.NetworkInfo{BytesSent: 1}, nil).AnyTimes()

	cfg := config.StructuredConfig{App: config.App{Version: "0.1.0", Environment: "test"}}
	services, err := service.NewServices(cfg, sampler, logger.Nop())
	require.NoError(t, err)

	return services
}

func newTestRouter(t *testing.T, cfg config.Server) (*chi.Mux, *service.Services) {
	t.Helper()

	services := newTestServices(t)
	router, err := NewHandler(services, cfg, logger.Nop()).Init()
	require.NoError(t, err)

	return router, services
}

func defaultServerConfig() config.Server {
	return config.Server{MaxBodyBytes: config.DefaultMaxBodyBytes}
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), "body: %s", rr.Body.String())
	return out
}
