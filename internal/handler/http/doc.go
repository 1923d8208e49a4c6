// Package http implements the REST transport of the user service.
//
// It wires chi routes to the [service.UserManager] and renders every failure
// as a [models.ErrorResponse] envelope. Request tracing, access logging,
// panic recovery and response compression are applied as middleware before a
// request reaches a handler.
package http
