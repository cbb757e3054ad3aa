// Package server runs the HTTP API of the authentication service.
//
// It owns the listener lifecycle: startup, waiting for SIGTERM, SIGINT or
// SIGQUIT, and graceful shutdown bounded by a timeout.
package server
