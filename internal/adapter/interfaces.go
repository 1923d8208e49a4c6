// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the user service REST API.
//
// Error envelopes returned by the server are decoded into [*APIError] values
// that unwrap to the status sentinels in errors.go, so callers can use
// [errors.Is] (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_api_mock.go -package=mock

// UserAPI is the remote counterpart of the server's user endpoints.
// Returned users never carry a password digest.
type UserAPI interface {
	// Register creates a user from candidate and returns the persisted record.
	Register(ctx context.Context, candidate models.User) (models.User, error)

	// Login checks the credentials and returns the matching user.
	Login(ctx context.Context, username, password string) (models.User, error)

	// ListUsers returns every user ordered by id.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUser returns the user with id, or an error matching [ErrNotFound].
	GetUser(ctx context.Context, id int64) (models.User, error)

	// UpdateUser replaces the user with user.ID. A blank password keeps the
	// stored one.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)

	// DeleteUser removes the user. Deleting a missing user succeeds.
	DeleteUser(ctx context.Context, id int64) error

	// ServerVersion returns the build version reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
