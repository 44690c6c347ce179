package http

import (
	"context"
	"io"
	"net/http"

	"github.com/MKhiriev/go-futures-backend/internal/utils"
	"github.com/MKhiriev/go-futures-backend/internal/validators"
)

// withBodyLimit caps request bodies at the configured size. Reading past
// the cap fails with *http.MaxBytesError, which maps to 413.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.cfg.MaxBodyBytes > 0 {
			if r.ContentLength > h.cfg.MaxBodyBytes {
				writeErrorMessage(w, r, errFileTooLarge, http.StatusRequestEntityTooLarge)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes)
		}

		next.ServeHTTP(w, r)
	})
}

// withRequiredFields parses the body as a JSON object, rejects it with 400
// when one of fields is missing and stores it in the request context.
func (h *Handler) withRequiredFields(fields ...string) func(http.Handler) http.Handler {
	validator := validators.NewRequestBodyValidator()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := io.ReadAll(r.Body)
			if err != nil {
				writeError(w, r, err)
				return
			}

			object, err := validators.ValidateJSON(raw, h.maxJSONSize())
			if err != nil {
				writeError(w, r, err)
				return
			}

			body, err := validators.FromAny(object)
			if err != nil {
				writeError(w, r, err)
				return
			}

			if err = validator.Validate(r.Context(), body, fields...); err != nil {
				writeError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), utils.BodyCtxKey, body)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (h *Handler) maxJSONSize() int {
	if h.cfg.MaxBodyBytes > 0 {
		return int(h.cfg.MaxBodyBytes)
	}
	return validators.DefaultMaxJSONSize
}
