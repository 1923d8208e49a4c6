// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the persistence layer of the service.
//
// [UserRepository] is the only abstraction the service layer depends on.
// Three adapters implement it: an in-memory map (tests, local runs), and a
// shared SQL repository running on PostgreSQL (pgx) or SQLite (go-sqlite3).
// The backend is chosen from the DSN by [NewStorages].
//
// Every adapter enforces email and username uniqueness itself; the service
// layer's existence checks are only an early rejection.
package store

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository persists [models.User] records.
type UserRepository interface {
	// ExistsByEmail reports whether a user with exactly this email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByUsername reports whether a user with exactly this username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// FindByID returns the user with the given id or [ErrNoUserWasFound].
	FindByID(ctx context.Context, id int64) (models.User, error)

	// FindByUsername returns the user with the given username or [ErrNoUserWasFound].
	FindByUsername(ctx context.Context, username string) (models.User, error)

	// FindByEmail returns the user with the given email or [ErrNoUserWasFound].
	FindByEmail(ctx context.Context, email string) (models.User, error)

	// Save inserts user when user.ID is zero and returns it with the assigned
	// id; otherwise it replaces the stored record with the same id, returning
	// [ErrNoUserWasFound] if there is none.
	//
	// A uniqueness conflict yields [ErrEmailAlreadyExists] or
	// [ErrUsernameAlreadyExists].
	Save(ctx context.Context, user models.User) (models.User, error)

	// DeleteByID removes the user with the given id. Deleting a missing id
	// is not an error.
	DeleteByID(ctx context.Context, id int64) error

	// FindAll returns every stored user ordered by id.
	FindAll(ctx context.Context) ([]models.User, error)
}
