package http

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-futures-backend/internal/logger"
	"github.com/MKhiriev/go-futures-backend/internal/ratelimit"
)

const (
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRetryAfter         = "Retry-After"

	securityEventRateLimit = "rate_limit"
)

// withRateLimit admits requests through limiter keyed by client IP.
// Rejections are answered with 429 and are never recorded in the window.
func (h *Handler) withRateLimit(limiter *ratelimit.Limiter) func(http.Handler) http.Handler {
	limit := strconv.Itoa(limiter.Policy().MaxRequests)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)

			w.Header().Set(headerRateLimitLimit, limit)

			if err := limiter.Check(key); err != nil {
				retryAfter := int(math.Ceil(limiter.RetryAfter(key).Seconds()))
				w.Header().Set(headerRateLimitRemaining, "0")
				w.Header().Set(headerRetryAfter, strconv.Itoa(retryAfter))

				endpoint := routePattern(r)
				logger.FromRequest(r).Security(r, endpoint, logger.RiskMedium).Warn().
					Str("client", key).
					Msg("Rate limit exceeded")
				h.services.Metrics.IncrementSecurityEvent(securityEventRateLimit, logger.RiskMedium)

				writeErrorMessage(w, r, errRateLimitExceeded, http.StatusTooManyRequests)
				return
			}

			w.Header().Set(headerRateLimitRemaining, strconv.Itoa(limiter.Remaining(key)))
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port from RemoteAddr. For a trusted proxy peer
// withTrustedRealIP has already replaced it with the forwarded address.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
