package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-futures-backend/internal/ratelimit"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Admission budgets per route.
var (
	defaultPolicy  = ratelimit.PerMinute(100)
	detailedPolicy = ratelimit.PerMinute(50)
	uploadPolicy   = ratelimit.PerMinute(10)
)

// Init builds the router. Every route gets its own limiter from the
// service registry, so budgets are never shared between routes.
func (h *Handler) Init() (*chi.Mux, error) {
	trusted, err := h.cfg.TrustedProxyPrefixes()
	if err != nil {
		return nil, fmt.Errorf("error parsing trusted proxies: %w", err)
	}

	router := chi.NewRouter()
	router.Use(withTrustedRealIP(trusted))
	router.Use(h.withTraceID)
	router.Use(h.withSecurityHeaders)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	router.Use(h.withBodyLimit)

	limited := func(route string, policy ratelimit.Policy) (chi.Router, error) {
		limiter, err := h.services.Limits.For(route, policy)
		if err != nil {
			return nil, fmt.Errorf("error creating limiter for %s: %w", route, err)
		}
		return router.With(h.withRateLimit(limiter)), nil
	}

	routes := []struct {
		route    string
		policy   ratelimit.Policy
		register func(r chi.Router)
	}{
		{"/", defaultPolicy, func(r chi.Router) { r.Get("/", h.index) }},
		{"/version", defaultPolicy, func(r chi.Router) { r.Get("/version", h.getServerVersion) }},
		{"/health", defaultPolicy, func(r chi.Router) { r.Get("/health", h.health) }},
		{"/health/detailed", detailedPolicy, func(r chi.Router) { r.Get("/health/detailed", h.detailedHealth) }},
		{"/metrics", defaultPolicy, func(r chi.Router) { r.Get("/metrics", h.metrics) }},
		{"/metrics/summary", detailedPolicy, func(r chi.Router) { r.Get("/metrics/summary", h.metricsSummary) }},
		{"/api/upload", uploadPolicy, func(r chi.Router) {
			r.With(h.withRequiredFields("filename", "data")).Post("/api/upload", h.upload)
		}},
		{"/api/config", detailedPolicy, func(r chi.Router) {
			r.Get("/api/config", h.getConfig)
			r.Post("/api/config", h.updateConfig)
		}},
		{"/api/validate", defaultPolicy, func(r chi.Router) {
			r.With(h.withRequiredFields("data")).Post("/api/validate", h.validate)
		}},
	}

	for _, rt := range routes {
		r, err := limited(rt.route, rt.policy)
		if err != nil {
			return nil, err
		}
		rt.register(r)
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router, nil
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeErrorMessage(w, r, errEndpointNotFound, http.StatusNotFound)
}
