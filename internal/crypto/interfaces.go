// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the credential hashing primitives of the service.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher produces and checks one-way password digests.
//
// Implementations must be safe for concurrent use and keep no state between
// calls apart from their configuration.
type PasswordHasher interface {
	// Hash returns a salted, adaptive digest of plaintext. Every call uses a
	// fresh salt, so hashing the same plaintext twice yields different digests.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches digest. The salt and cost are
	// read from digest itself and the comparison is constant-time.
	// A malformed digest yields false, never a panic.
	Verify(plaintext, digest string) bool
}
