package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/models"
)

// userRepository is the SQL implementation of [UserRepository]. The same code
// runs on PostgreSQL and SQLite; the [DB] it wraps supplies the placeholder
// style and the driver error classification.
//
// All methods obtain a context-scoped logger via [logger.FromContext] and run
// their statements through [DB.withRetry].
type userRepository struct {
	logger  *logger.Logger
	db      *DB
	queries userQueries
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("dialect", string(db.Dialect())).Msg("creating user repository")
	return &userRepository{
		db:      db,
		logger:  logger,
		queries: newUserQueries(db.Dialect()),
	}
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, columnEmail, email)
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, columnUsername, username)
}

func (r *userRepository) exists(ctx context.Context, column string, value string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.buildExistsQuery(column, value)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.exists").Msg("error building query")
		return false, err
	}

	var exists bool
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&exists)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.exists").Str("column", column).Msg("error checking existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (models.User, error) {
	return r.findBy(ctx, columnID, id)
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findBy(ctx, columnUsername, username)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findBy(ctx, columnEmail, email)
}

// findBy returns the single user whose column equals value.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped [ErrScanningRow].
func (r *userRepository) findBy(ctx context.Context, column string, value any) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.buildFindByQuery(column, value)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findBy").Msg("error building query")
		return models.User{}, err
	}

	var user models.User
	err = r.db.withRetry(ctx, func() error {
		return scanUser(r.db.QueryRowContext(ctx, query, args...), &user)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findBy").Str("column", column).Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// Save inserts or replaces user. See [UserRepository.Save].
func (r *userRepository) Save(ctx context.Context, user models.User) (models.User, error) {
	if user.ID == 0 {
		return r.insert(ctx, user)
	}
	return r.update(ctx, user)
}

func (r *userRepository) insert(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.buildInsertQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.insert").Msg("error building query")
		return models.User{}, err
	}

	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID)
	})
	if err != nil {
		if conflict := r.uniqueConflict(err); conflict != nil {
			log.Debug().Err(err).Str("func", "*userRepository.insert").Msg("unique constraint violated")
			return models.User{}, conflict
		}
		log.Err(err).Str("func", "*userRepository.insert").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

func (r *userRepository) update(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.buildUpdateQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.update").Msg("error building query")
		return models.User{}, err
	}

	var affected int64
	err = r.db.withRetry(ctx, func() error {
		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		if conflict := r.uniqueConflict(err); conflict != nil {
			log.Debug().Err(err).Str("func", "*userRepository.update").Msg("unique constraint violated")
			return models.User{}, conflict
		}
		log.Err(err).Str("func", "*userRepository.update").Int64("id", user.ID).Msg("error updating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return models.User{}, ErrNoUserWasFound
	}

	return user, nil
}

// uniqueConflict translates a unique constraint violation into the matching
// sentinel error. It returns nil for any other error.
func (r *userRepository) uniqueConflict(err error) error {
	column, ok := r.db.errorClassificator.UniqueViolation(err)
	if !ok {
		return nil
	}

	switch column {
	case columnUsername:
		return ErrUsernameAlreadyExists
	default:
		return ErrEmailAlreadyExists
	}
}

func (r *userRepository) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.buildDeleteQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteByID").Msg("error building query")
		return err
	}

	err = r.db.withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteByID").Int64("id", id).Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.buildFindAllQuery()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindAll").Msg("error building query")
		return nil, err
	}

	var users []models.User
	err = r.db.withRetry(ctx, func() error {
		users = users[:0]

		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			var user models.User
			if err := scanUser(rows, &user); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			users = append(users, user)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindAll").Msg("error listing users")
		return nil, err
	}

	if users == nil {
		users = []models.User{}
	}

	return users, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads a row selected with [userColumns].
func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(
		&user.ID,
		&user.Name,
		&user.FirstLastname,
		&user.SecondLastname,
		&user.Email,
		&user.Username,
		&user.Password,
		&user.Role,
		&user.RUT,
	)
}
