package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-futures-backend/internal/logger"
	"github.com/MKhiriev/go-futures-backend/internal/utils"
	"github.com/MKhiriev/go-futures-backend/internal/validators"
)

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	body, ok := utils.GetBodyFromContext(r.Context())
	if !ok {
		writeErrorMessage(w, r, errInternalServerError, http.StatusInternalServerError)
		return
	}

	filename, _ := body.Field("filename")
	data, _ := body.Field("data")

	result, err := h.services.UploadService.Upload(r.Context(), filename, data)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.respondJSON(w, r, result)
}

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, r, h.services.ConfigService.GetConfig(r.Context()))
}

func (h *Handler) updateConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	// An empty body decodes to null and is rejected by the service.
	var body validators.Value
	if len(raw) > 0 {
		if err = json.Unmarshal(raw, &body); err != nil {
			log.Warn().Err(err).Str("func", "*Handler.updateConfig").Msg("Invalid JSON was passed")
			writeErrorMessage(w, r, errInvalidJSON, http.StatusBadRequest)
			return
		}
	}

	result, err := h.services.ConfigService.UpdateConfig(r.Context(), body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.respondJSON(w, r, result)
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	body, ok := utils.GetBodyFromContext(r.Context())
	if !ok {
		writeErrorMessage(w, r, errInternalServerError, http.StatusInternalServerError)
		return
	}

	data, _ := body.Field("data")

	result, err := h.services.ValidationService.Validate(r.Context(), data)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.respondJSON(w, r, result)
}
