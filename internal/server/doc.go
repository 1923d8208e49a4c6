// Package server runs the HTTP transport of the service.
//
// It owns the listener lifecycle: startup, OS signal handling and graceful
// shutdown bounded by the configured timeout.
package server
