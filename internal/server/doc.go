// Package server runs the backend: the HTTP API, the gRPC health service and
// the background workers share one errgroup, so the first failure or a
// SIGINT/SIGTERM/SIGQUIT stops all of them. Shutdown drains in-flight HTTP
// requests and lets gRPC health streams finish within a bounded timeout.
package server
