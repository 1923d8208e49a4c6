// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the service: registration,
// login and user administration. It never writes transport responses; every
// failure is an error value from errors.go.
package service

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

// UserManager orchestrates the user lifecycle on top of a
// [store.UserRepository], a [crypto.PasswordHasher] and a
// [validators.Validator].
//
// Returned records carry the stored password digest; the transport layer is
// responsible for stripping it.
type UserManager interface {
	// Register validates candidate, rejects duplicate email or username,
	// hashes the password and persists the user.
	Register(ctx context.Context, candidate models.User) (models.User, error)

	// Login returns the stored user when username and password match, and
	// [ErrAuthenticationFailed] otherwise.
	Login(ctx context.Context, username, password string) (models.User, error)

	// Update replaces the stored user with candidate.ID. A blank password
	// keeps the stored digest.
	Update(ctx context.Context, candidate models.User) (models.User, error)

	// DeleteByID removes the user. Deleting a missing user is not an error.
	DeleteByID(ctx context.Context, id int64) error

	// FindByID returns the user or a [*NotFoundError].
	FindByID(ctx context.Context, id int64) (models.User, error)

	// FindAll returns every user ordered by id.
	FindAll(ctx context.Context) ([]models.User, error)
}

// AppInfoService exposes build information of the running application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
