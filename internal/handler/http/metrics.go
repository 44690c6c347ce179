package http

import (
	"net/http"

	"github.com/MKhiriev/go-futures-backend/internal/logger"
	"github.com/MKhiriev/go-futures-backend/internal/metrics"
	"github.com/MKhiriev/go-futures-backend/internal/utils"
)

func (h *Handler) metrics(w http.ResponseWriter, r *http.Request) {
	exposition := h.services.Metrics.ExportText()

	if _, err := utils.WriteText(w, exposition, metrics.ContentType, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.metrics").Msg("error writing metrics")
	}
}

func (h *Handler) metricsSummary(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, r, h.services.Metrics.Summary())
}
