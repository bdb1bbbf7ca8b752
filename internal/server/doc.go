// Package server runs the HTTP transport of the bridge: startup, signal
// handling and graceful shutdown bounded by the configured timeout.
package server
