package http

import "errors"

var (
	errInvalidJSON   = errors.New("invalid JSON body")
	errInvalidUserID = errors.New("invalid user id")
	errPanic         = errors.New("handler panicked")
)
