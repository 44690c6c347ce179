package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const unknownEndpoint = "unknown"

// withMetrics feeds every completed request into the metrics collector and
// the health monitor, and tracks in-flight requests. Only 5xx responses
// count as failures for health purposes.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.services.Metrics.SetActiveConnections(int(h.inFlight.Add(1)))
		defer func() {
			h.services.Metrics.SetActiveConnections(int(h.inFlight.Add(-1)))
		}()

		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(mw, r)

		duration := time.Since(start)
		status := mw.statusOrOK()

		h.services.Metrics.RecordRequest(r.Method, routePattern(r), status, duration)
		h.services.Health.RecordOutcome(status < http.StatusInternalServerError, duration)
	})
}

// routePattern is the matched chi pattern, so that metrics are labelled by
// route rather than by raw path. It is only complete once routing is done.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unknownEndpoint
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unknownEndpoint
}
