package server

// Server is the lifecycle contract of the transport server.
type Server interface {
	// RunServer starts serving requests and blocks until a termination
	// signal has been handled.
	RunServer()

	// Shutdown gracefully stops the server within the configured shutdown
	// timeout.
	Shutdown()
}
