// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Client-facing messages of the JSON error body.
const (
	errEndpointNotFound    = "Endpoint not found"
	errMethodNotAllowed    = "Method not allowed"
	errFileTooLarge        = "File too large"
	errRateLimitExceeded   = "Rate limit exceeded"
	errInternalServerError = "Internal server error"
	errInvalidJSON         = "Invalid JSON"
)
