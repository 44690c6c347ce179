package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations are expected to block in [RunServer] until the server
// stops and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// A server stopped through Shutdown returns nil.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server, giving in-flight work until ctx
	// is done.
	Shutdown(ctx context.Context) error
}
