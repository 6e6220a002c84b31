package server

import "context"

// Server defines the lifecycle contract of the servers managed by this
// package.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled
	// or the process receives a stop signal, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting new connections and waits for in-flight
	// requests until ctx expires.
	Shutdown(ctx context.Context) error
}
