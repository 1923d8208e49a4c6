package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-auth-service/internal/crypto"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/internal/validators"
	"github.com/MKhiriev/go-auth-service/models"
)

// userManager is the concrete implementation of [UserManager].
// It is safe for concurrent use.
type userManager struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator

	// dummyDigest is compared against on unknown usernames so both login
	// failures cost one hash verification. Computed on first use.
	dummyDigest func() string

	logger *logger.Logger
}

// dummyPassword is hashed once into userManager.dummyDigest.
const dummyPassword = "not-a-real-password"

// NewUserManager constructs a [UserManager] from its collaborators.
func NewUserManager(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	logger *logger.Logger,
) UserManager {
	m := &userManager{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		logger:         logger,
	}
	m.dummyDigest = sync.OnceValue(func() string {
		digest, err := m.hasher.Hash(dummyPassword)
		if err != nil {
			m.logger.Err(err).Str("func", "*userManager.dummyDigest").Msg("error hashing dummy password")
			return ""
		}
		return digest
	})

	return m
}

// Register creates a new user.
//
// The existence checks only reject early; the store's unique constraint
// decides concurrent registrations, and its conflict errors are mapped to the
// same [ErrDuplicateEmail] / [ErrDuplicateUsername].
func (m *userManager) Register(ctx context.Context, candidate models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := m.validate(ctx, candidate); err != nil {
		log.Debug().Err(err).Str("func", "*userManager.Register").Msg("candidate rejected")
		return models.User{}, err
	}

	exists, err := m.userRepository.ExistsByEmail(ctx, candidate.Email)
	if err != nil {
		return models.User{}, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return models.User{}, ErrDuplicateEmail
	}

	exists, err = m.userRepository.ExistsByUsername(ctx, candidate.Username)
	if err != nil {
		return models.User{}, fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return models.User{}, ErrDuplicateUsername
	}

	if strings.TrimSpace(candidate.Role) == "" {
		candidate.Role = models.DefaultRole
	}

	candidate.ID = 0
	candidate.Password, err = m.hasher.Hash(candidate.Password)
	if err != nil {
		log.Err(err).Str("func", "*userManager.Register").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := m.userRepository.Save(ctx, candidate)
	if err != nil {
		return models.User{}, m.mapSaveError(ctx, "*userManager.Register", err)
	}

	log.Info().Str("func", "*userManager.Register").Int64("id", user.ID).Msg("user registered")
	return user, nil
}

// Login authenticates by username and plaintext password. Both failure causes
// return the same [ErrAuthenticationFailed].
func (m *userManager) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := m.userRepository.FindByUsername(ctx, username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		m.hasher.Verify(password, m.dummyDigest())
		log.Debug().Str("func", "*userManager.Login").Msg("unknown username")
		return models.User{}, ErrAuthenticationFailed
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error finding user: %w", err)
	}

	if !m.hasher.Verify(password, user.Password) {
		log.Debug().Str("func", "*userManager.Login").Int64("id", user.ID).Msg("wrong password")
		return models.User{}, ErrAuthenticationFailed
	}

	return user, nil
}

// Update replaces every field of the stored user with candidate's, except the
// password: a blank one keeps the stored digest, a non-blank one is validated
// and rehashed.
func (m *userManager) Update(ctx context.Context, candidate models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	stored, err := m.FindByID(ctx, candidate.ID)
	if err != nil {
		return models.User{}, err
	}

	fields := []string{validators.FieldRUT, validators.FieldEmail, validators.FieldUsername}
	changePassword := strings.TrimSpace(candidate.Password) != ""
	if changePassword {
		fields = append(fields, validators.FieldPassword)
	}
	if err := m.validate(ctx, candidate, fields...); err != nil {
		log.Debug().Err(err).Str("func", "*userManager.Update").Int64("id", candidate.ID).Msg("candidate rejected")
		return models.User{}, err
	}

	if changePassword {
		candidate.Password, err = m.hasher.Hash(candidate.Password)
		if err != nil {
			log.Err(err).Str("func", "*userManager.Update").Msg("error hashing password")
			return models.User{}, fmt.Errorf("error hashing password: %w", err)
		}
	} else {
		candidate.Password = stored.Password
	}

	if strings.TrimSpace(candidate.Role) == "" {
		candidate.Role = models.DefaultRole
	}

	user, err := m.userRepository.Save(ctx, candidate)
	if errors.Is(err, store.ErrNoUserWasFound) {
		// deleted between FindByID and Save
		return models.User{}, &NotFoundError{ID: candidate.ID}
	}
	if err != nil {
		return models.User{}, m.mapSaveError(ctx, "*userManager.Update", err)
	}

	log.Info().Str("func", "*userManager.Update").Int64("id", user.ID).Msg("user updated")
	return user, nil
}

func (m *userManager) DeleteByID(ctx context.Context, id int64) error {
	if err := m.userRepository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "*userManager.DeleteByID").Int64("id", id).Msg("user deleted")
	return nil
}

func (m *userManager) FindByID(ctx context.Context, id int64) (models.User, error) {
	user, err := m.userRepository.FindByID(ctx, id)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, &NotFoundError{ID: id}
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error finding user: %w", err)
	}

	return user, nil
}

func (m *userManager) FindAll(ctx context.Context) ([]models.User, error) {
	users, err := m.userRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return users, nil
}

// validate runs the validator and wraps field violations into a
// [*ValidationError].
func (m *userManager) validate(ctx context.Context, candidate models.User, fields ...string) error {
	err := m.validator.Validate(ctx, candidate, fields...)
	if err == nil {
		return nil
	}

	var violations validators.Violations
	if errors.As(err, &violations) {
		return &ValidationError{Violations: violations}
	}

	return fmt.Errorf("error validating user: %w", err)
}

// mapSaveError translates store conflicts into service errors.
func (m *userManager) mapSaveError(ctx context.Context, fn string, err error) error {
	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return ErrDuplicateEmail
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return ErrDuplicateUsername
	}

	logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error saving user")
	return fmt.Errorf("error saving user: %w", err)
}
