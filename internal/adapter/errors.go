package adapter

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/go-auth-service/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrInvalidAddress = errors.New("invalid server address")
)

// APIError is a non-2xx response of the user service.
type APIError struct {
	// Status is the HTTP status code of the response.
	Status int
	// Response is the decoded error envelope. It is zero when the body was
	// not an envelope.
	Response models.ErrorResponse

	kind error
	body string
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "http %d", e.Status)

	switch {
	case e.Response.Error != "":
		b.WriteString(": " + e.Response.Error)
	case e.body != "":
		b.WriteString(": " + e.body)
	}

	for _, field := range slices.Sorted(maps.Keys(e.Response.Errors)) {
		fmt.Fprintf(&b, "; %s: %s", field, e.Response.Errors[field])
	}
	if e.Response.Message != "" {
		b.WriteString(" (" + e.Response.Message + ")")
	}
	return b.String()
}

func (e *APIError) Unwrap() error {
	return e.kind
}
