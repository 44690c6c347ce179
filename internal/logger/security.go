package logger

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Risk levels attached to security events.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Security returns a child logger whose entries are marked as security
// events and carry the client address, user agent and endpoint of r.
func (l *Logger) Security(r *http.Request, endpoint, riskLevel string) *Logger {
	return &Logger{l.With().
		Bool("security_event", true).
		Str("ip_address", r.RemoteAddr).
		Str("user_agent", r.UserAgent()).
		Str("endpoint", endpoint).
		Str("risk_level", riskLevel).
		Logger()}
}

// LevelForStatus maps an HTTP status to the level its access log entry is
// written at.
func LevelForStatus(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// Request starts an access log entry for a completed request at the level
// chosen by LevelForStatus.
func (l *Logger) Request(status int, elapsed time.Duration) *zerolog.Event {
	return l.WithLevel(LevelForStatus(status)).
		Int("status_code", status).
		Float64("response_time_ms", float64(elapsed.Microseconds())/1000)
}
