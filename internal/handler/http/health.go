package http

import (
	"net/http"
)

// health always answers 200; the status field carries the verdict.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, r, h.services.Health.CheckHealth(r.Context()))
}

func (h *Handler) detailedHealth(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, r, h.services.Health.DetailedHealth(r.Context()))
}
