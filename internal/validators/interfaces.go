// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation and sanitization used by the
// request governance layer.
//
// Core concepts:
//   - Pure functions (SanitizeString, ValidateEmail, ValidateNumeric,
//     ValidateJSON, SanitizeFilename, SanitizeDeep) that either return a
//     cleaned value or a *ValidationError carrying a human-readable reason.
//   - Validator: checks a decoded request body, optionally only for the
//     named fields. RequestBodyValidator uses it to enforce required fields
//     such as "filename" and "data" before a handler runs.
//
// Nothing in this package holds state; every function is safe for concurrent
// use.
package validators

import "context"

// Validator checks a request body. fields, when given, names the keys the
// body must carry; a failure is a *ValidationError.
type Validator interface {
	Validate(ctx context.Context, body any, fields ...string) error
}
