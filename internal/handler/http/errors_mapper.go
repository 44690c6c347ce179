package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-futures-backend/internal/logger"
	"github.com/MKhiriev/go-futures-backend/internal/ratelimit"
	"github.com/MKhiriev/go-futures-backend/internal/service"
	"github.com/MKhiriev/go-futures-backend/internal/utils"
	"github.com/MKhiriev/go-futures-backend/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrUnsupportedType: http.StatusBadRequest,
	validators.ErrInvalidType:     http.StatusBadRequest,
	validators.ErrTooLong:         http.StatusBadRequest,
	validators.ErrMissing:         http.StatusBadRequest,
	validators.ErrInvalidFormat:   http.StatusBadRequest,
	validators.ErrNotNumeric:      http.StatusBadRequest,
	validators.ErrOutOfRange:      http.StatusBadRequest,
	validators.ErrTooLarge:        http.StatusRequestEntityTooLarge,
	validators.ErrMalformedJSON:   http.StatusBadRequest,
	validators.ErrNotAnObject:     http.StatusBadRequest,
	validators.ErrInvalid:         http.StatusBadRequest,
	validators.ErrTooDeep:         http.StatusBadRequest,
	validators.ErrMissingField:    http.StatusBadRequest,

	ratelimit.ErrRateLimited: http.StatusTooManyRequests,

	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Validation messages
// are returned to the client verbatim; anything else gets a generic body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	message := errInternalServerError
	var vErr *validators.ValidationError
	switch {
	case status == http.StatusRequestEntityTooLarge:
		message = errFileTooLarge
	case status == http.StatusTooManyRequests:
		message = errRateLimitExceeded
	case errors.As(err, &vErr):
		message = vErr.Message
	}

	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
	} else {
		logger.FromRequest(r).Warn().Err(err).Msg("request rejected")
	}

	writeErrorMessage(w, r, message, status)
}

func writeErrorMessage(w http.ResponseWriter, r *http.Request, message string, status int) {
	if _, err := utils.WriteError(w, message, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}
