package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-futures-backend/internal/logger"
)

const securityEventRequestFailed = "request_failed"

// withLogging writes one access log entry per request at a level chosen by
// the response status. Failed requests also produce a security event.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)
		status := lw.statusOrOK()
		endpoint := routePattern(r)

		log.Request(status, duration).
			Str("uri", uri).
			Str("method", method).
			Str("endpoint", endpoint).
			Str("ip_address", r.RemoteAddr).
			Str("user_agent", r.UserAgent()).
			Int("size", lw.size).
			Send()

		if status >= http.StatusBadRequest {
			risk := logger.RiskLow
			if status >= http.StatusInternalServerError {
				risk = logger.RiskMedium
			}
			log.Security(r, endpoint, risk).Warn().
				Int("status_code", status).
				Msgf("Request failed: %s %s", method, endpoint)
			h.services.Metrics.IncrementSecurityEvent(securityEventRequestFailed, risk)
		}
	})
}
