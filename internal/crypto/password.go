// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordHashCost is the bcrypt work factor used when the
// configuration does not specify one. Each increment doubles hashing time.
const DefaultPasswordHashCost = 10

// bcryptHasher is the bcrypt implementation of [PasswordHasher].
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a [PasswordHasher] using bcrypt with the given
// cost. A zero cost selects [DefaultPasswordHashCost].
//
// Returns [ErrInvalidHashCost] if cost is outside
// [bcrypt.MinCost, bcrypt.MaxCost].
func NewBcryptHasher(cost int) (PasswordHasher, error) {
	if cost == 0 {
		cost = DefaultPasswordHashCost
	}

	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d (allowed %d..%d)", ErrInvalidHashCost, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &bcryptHasher{cost: cost}, nil
}

// Hash implements [PasswordHasher].
func (b *bcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	return string(digest), nil
}

// Verify implements [PasswordHasher].
func (b *bcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
