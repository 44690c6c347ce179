package http

import (
	"net/http"

	"github.com/MKhiriev/go-futures-backend/internal/logger"
	"github.com/MKhiriev/go-futures-backend/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	if _, err := utils.WriteText(w, serverVersion, "text/plain", http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerVersion").Msg("error writing version")
	}
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, r, h.services.AppInfoService.ServiceInfo(r.Context()))
}

// respondJSON writes data with 200 and logs a failed write.
func (h *Handler) respondJSON(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing JSON response")
	}
}
