// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, trace
// identifiers, HTTP response writing, HTTP client initialization and other
// common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-futures-backend/internal/validators"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// BodyCtxKey is the key under which a decoded JSON request body is stored
// once the required-fields stage has parsed it.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.BodyCtxKey, body)
var BodyCtxKey = contextKey("body")

// TraceIDCtxKey is the key used to store the request trace identifier.
var TraceIDCtxKey = contextKey("traceID")

// GetBodyFromContext retrieves the decoded request body from the context.
//
// Returns the body and an ok flag:
//   - ok == true: value is found and has the validators.Value type
//   - ok == false: value is missing or has an unexpected type
func GetBodyFromContext(ctx context.Context) (validators.Value, bool) {
	body, ok := ctx.Value(BodyCtxKey).(validators.Value)
	return body, ok
}

// GetTraceIDFromContext retrieves the trace identifier from the context.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
