// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// It answers 405 with a JSON error body and an Allow header listing the
// methods registered for the matched route. The lookup compares each
// route's pattern against the raw request path ([http.Request.URL.Path]);
// parameterised or wildcard segments are not expanded during this check.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path

		// Search for a route whose pattern exactly matches the requested path.
		for _, route := range router.Routes() {
			if route.Pattern != requestedURL {
				continue
			}

			methods := make([]string, 0, len(route.Handlers))
			for method := range route.Handlers {
				methods = append(methods, method)
			}
			sort.Strings(methods)
			w.Header().Set("Allow", strings.Join(methods, ", "))
			break
		}

		writeErrorMessage(w, r, errMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}
