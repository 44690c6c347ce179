package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-futures-backend/internal/utils"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader   = "X-Trace-ID"
	requestIDHeader = "X-Request-ID"

	maxTraceIDLength = 128
)

// withTraceID tags every request with an id that follows it through the
// logs. A caller-supplied X-Trace-ID or X-Request-ID is kept when it is a
// plain token; otherwise a v7 UUID is generated. The id is echoed back in
// X-Trace-ID.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := incomingTraceID(r)
		if traceID == "" {
			traceID = h.traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		ctx := context.WithValue(r.Context(), utils.TraceIDCtxKey, traceID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

func incomingTraceID(r *http.Request) string {
	for _, header := range []string{traceIDHeader, requestIDHeader} {
		if id := r.Header.Get(header); validTraceID(id) {
			return id
		}
	}
	return ""
}

// validTraceID accepts ids of up to maxTraceIDLength characters from
// [A-Za-z0-9._-], so nothing a client sends can break a log line.
func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}
