package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/models"
)

var testUserColumns = []string{"id", "name", "first_lastname", "second_lastname", "email", "username", "password", "role", "rut"}

func newTestUserRepo(t *testing.T, dialect Dialect) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var classifier ErrorClassificator = NewPostgresErrorClassifier()
	if dialect == DialectSQLite {
		classifier = NewSQLiteErrorClassifier()
	}

	l := logger.Nop()
	repo := NewUserRepository(&DB{
		DB:                 db,
		dialect:            dialect,
		errorClassificator: classifier,
		logger:             l,
	}, l)

	return repo, mock
}

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func testUser() models.User {
	return models.User{
		Name:           "Ana",
		FirstLastname:  "Pérez",
		SecondLastname: "Soto",
		Email:          "ana@example.com",
		Username:       "ana",
		Password:       "$2a$10$digest",
		Role:           "users",
		RUT:            "12345678-5",
	}
}

func userRow(id int64, u models.User) *sqlmock.Rows {
	return sqlmock.NewRows(testUserColumns).
		AddRow(id, u.Name, u.FirstLastname, u.SecondLastname, u.Email, u.Username, u.Password, u.Role, u.RUT)
}

func TestUserRepository_Save_Insert(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		query   string
	}{
		{
			name:    "postgres placeholders",
			dialect: DialectPostgres,
			query:   `INSERT INTO users \(name,first_lastname,second_lastname,email,username,password,role,rut\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8\) RETURNING id`,
		},
		{
			name:    "sqlite placeholders",
			dialect: DialectSQLite,
			query:   `INSERT INTO users \(name,first_lastname,second_lastname,email,username,password,role,rut\) VALUES \(\?,\?,\?,\?,\?,\?,\?,\?\) RETURNING id`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t, tt.dialect)
			user := testUser()

			mock.ExpectQuery(tt.query).
				WithArgs(user.Name, user.FirstLastname, user.SecondLastname, user.Email, user.Username, user.Password, user.Role, user.RUT).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

			saved, err := repo.Save(context.Background(), user)
			require.NoError(t, err)
			assert.Equal(t, int64(7), saved.ID)
			assert.Equal(t, user.Email, saved.Email)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_Save_InsertUniqueViolation(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		err     error
		want    error
	}{
		{
			name:    "postgres email",
			dialect: DialectPostgres,
			err:     pgError(pgerrcode.UniqueViolation, "users_email_key"),
			want:    ErrEmailAlreadyExists,
		},
		{
			name:    "postgres username",
			dialect: DialectPostgres,
			err:     pgError(pgerrcode.UniqueViolation, "users_username_key"),
			want:    ErrUsernameAlreadyExists,
		},
		{
			name:    "sqlite email",
			dialect: DialectSQLite,
			err:     errors.New("UNIQUE constraint failed: users.email"),
			want:    ErrEmailAlreadyExists,
		},
		{
			name:    "sqlite username",
			dialect: DialectSQLite,
			err:     errors.New("UNIQUE constraint failed: users.username"),
			want:    ErrUsernameAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t, tt.dialect)

			mock.ExpectQuery("INSERT INTO users").WillReturnError(tt.err)

			_, err := repo.Save(context.Background(), testUser())
			require.ErrorIs(t, err, tt.want)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_Save_InsertDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectPostgres)

	mock.ExpectQuery("INSERT INTO users").WillReturnError(errors.New("boom"))

	_, err := repo.Save(context.Background(), testUser())
	require.ErrorIs(t, err, ErrExecutingStatement)
}

func TestUserRepository_Save_Update(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectPostgres)
	user := testUser()
	user.ID = 3

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET name = $1, first_lastname = $2, second_lastname = $3, email = $4, username = $5, password = $6, role = $7, rut = $8 WHERE id = $9`)).
		WithArgs(user.Name, user.FirstLastname, user.SecondLastname, user.Email, user.Username, user.Password, user.Role, user.RUT, user.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	saved, err := repo.Save(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, user, saved)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Save_UpdateMissing(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectSQLite)
	user := testUser()
	user.ID = 99

	mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Save(context.Background(), user)
	require.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestUserRepository_Save_UpdateConflict(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectPostgres)
	user := testUser()
	user.ID = 3

	mock.ExpectExec("UPDATE users").WillReturnError(pgError(pgerrcode.UniqueViolation, "users_username_key"))

	_, err := repo.Save(context.Background(), user)
	require.ErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestUserRepository_FindByID(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectPostgres)
	user := testUser()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, first_lastname, second_lastname, email, username, password, role, rut FROM users WHERE id = $1`)).
		WithArgs(int64(5)).
		WillReturnRows(userRow(5, user))

	found, err := repo.FindByID(context.Background(), 5)
	require.NoError(t, err)

	user.ID = 5
	assert.Equal(t, user, found)
}

func TestUserRepository_FindBy_NotFound(t *testing.T) {
	tests := []struct {
		name string
		call func(UserRepository) error
	}{
		{
			name: "by id",
			call: func(r UserRepository) error { _, err := r.FindByID(context.Background(), 1); return err },
		},
		{
			name: "by username",
			call: func(r UserRepository) error { _, err := r.FindByUsername(context.Background(), "ana"); return err },
		},
		{
			name: "by email",
			call: func(r UserRepository) error { _, err := r.FindByEmail(context.Background(), "a@b.c"); return err },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t, DialectSQLite)
			mock.ExpectQuery("SELECT (.+) FROM users WHERE").WillReturnError(sql.ErrNoRows)

			require.ErrorIs(t, tt.call(repo), ErrNoUserWasFound)
		})
	}
}

func TestUserRepository_FindByUsername_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectSQLite)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE username = ?`)).
		WithArgs("ana").
		WillReturnError(errors.New("broken"))

	_, err := repo.FindByUsername(context.Background(), "ana")
	require.ErrorIs(t, err, ErrScanningRow)
}

func TestUserRepository_Exists(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectPostgres)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS ( SELECT 1 FROM users WHERE email = $1 )`)).
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS ( SELECT 1 FROM users WHERE username = $1 )`)).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ExistsByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_DeleteByID(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectPostgres)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteByID(context.Background(), 4))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindAll(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectPostgres)
	first, second := testUser(), testUser()
	second.Email, second.Username = "bob@example.com", "bob"

	rows := sqlmock.NewRows(testUserColumns).
		AddRow(1, first.Name, first.FirstLastname, first.SecondLastname, first.Email, first.Username, first.Password, first.Role, first.RUT).
		AddRow(2, second.Name, second.FirstLastname, second.SecondLastname, second.Email, second.Username, second.Password, second.Role, second.RUT)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users ORDER BY id`)).WillReturnRows(rows)

	users, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int64(1), users[0].ID)
	assert.Equal(t, "bob", users[1].Username)
}

func TestUserRepository_FindAll_Empty(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectSQLite)

	mock.ExpectQuery("FROM users ORDER BY id").WillReturnRows(sqlmock.NewRows(testUserColumns))

	users, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserRepository_FindAll_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectPostgres)

	mock.ExpectQuery("FROM users ORDER BY id").WillReturnError(errors.New("boom"))

	_, err := repo.FindAll(context.Background())
	require.ErrorIs(t, err, ErrExecutingQuery)
}

func TestDB_WithRetry(t *testing.T) {
	t.Run("retries retryable error then succeeds", func(t *testing.T) {
		db := &DB{
			errorClassificator: NewPostgresErrorClassifier(),
			retryDelays:        []time.Duration{time.Millisecond, time.Millisecond},
			logger:             logger.Nop(),
		}

		calls := 0
		err := db.withRetry(context.Background(), func() error {
			calls++
			if calls < 3 {
				return pgError(pgerrcode.SerializationFailure, "")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after schedule", func(t *testing.T) {
		db := &DB{
			errorClassificator: NewSQLiteErrorClassifier(),
			retryDelays:        []time.Duration{time.Millisecond},
			logger:             logger.Nop(),
		}

		calls := 0
		err := db.withRetry(context.Background(), func() error {
			calls++
			return errors.New("database is locked")
		})
		require.Error(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("does not retry non-retryable error", func(t *testing.T) {
		db := &DB{
			errorClassificator: NewPostgresErrorClassifier(),
			retryDelays:        []time.Duration{time.Millisecond},
			logger:             logger.Nop(),
		}

		calls := 0
		err := db.withRetry(context.Background(), func() error {
			calls++
			return pgError(pgerrcode.UniqueViolation, "users_email_key")
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		db := &DB{
			errorClassificator: NewPostgresErrorClassifier(),
			retryDelays:        []time.Duration{time.Hour},
			logger:             logger.Nop(),
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := db.withRetry(ctx, func() error { return driver.ErrBadConn })
		require.ErrorIs(t, err, context.Canceled)
		require.ErrorIs(t, err, driver.ErrBadConn)
	})
}

func TestRetryDelays(t *testing.T) {
	assert.Empty(t, retryDelays(0))
	assert.Equal(t,
		[]time.Duration{100 * time.Millisecond, 300 * time.Millisecond, 500 * time.Millisecond},
		retryDelays(3),
	)
}
