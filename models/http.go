// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON envelope written for every failed request.
//
// Exactly one of Error or Errors is populated: Error carries a single
// human-readable message, Errors carries field-level validation messages.
type ErrorResponse struct {
	// Status mirrors the HTTP status code of the response.
	Status int `json:"status"`

	// Timestamp is the moment the error was produced, in RFC 3339 format.
	Timestamp string `json:"timestamp"`

	// Error is a single message describing the failure.
	Error string `json:"error,omitempty"`

	// Errors maps a field name to its validation message.
	Errors map[string]string `json:"errores,omitempty"`

	// Message holds optional extra detail that is safe to show to the caller.
	Message string `json:"message,omitempty"`

	// Path is the request path that produced the error.
	Path string `json:"path"`
}
