package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-service/internal/app"
	"github.com/MKhiriev/go-auth-service/internal/validators"
)

var (
	// ErrValidationFailed is the sentinel matched by every [*ValidationError].
	ErrValidationFailed = errors.New("validation failed")

	ErrDuplicateEmail    = errors.New(app.MsgEmailAlreadyRegistered)
	ErrDuplicateUsername = errors.New(app.MsgUsernameAlreadyRegistered)

	// ErrUserNotFound is the sentinel matched by every [*NotFoundError].
	ErrUserNotFound = errors.New("user not found")

	// ErrAuthenticationFailed is returned for an unknown username and for a
	// wrong password alike.
	ErrAuthenticationFailed = errors.New(app.MsgInvalidCredentials)

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ValidationError carries the per-field violations of a rejected candidate.
type ValidationError struct {
	Violations validators.Violations
}

func (e *ValidationError) Error() string {
	return e.Violations.Error()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NotFoundError reports that no user has the requested id.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(app.MsgUserNotFoundWithID, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrUserNotFound
}
