// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request governance is applied here as a chain of middleware stages
// that short-circuit: tracing, security headers, access and security
// logging, metrics, per-route rate limiting, body size limits and
// required-field validation run before requests reach the service layer.
package http
