package crypto

import "errors"

var (
	// ErrInvalidHashCost is returned by [NewBcryptHasher] when the requested
	// cost is outside the range accepted by bcrypt.
	ErrInvalidHashCost = errors.New("invalid password hash cost")

	// ErrHashingPassword wraps any failure of the underlying hash function.
	ErrHashingPassword = errors.New("error hashing password")
)
