package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-service/models"
)

const (
	columnID             = "id"
	columnName           = "name"
	columnFirstLastname  = "first_lastname"
	columnSecondLastname = "second_lastname"
	columnEmail          = "email"
	columnUsername       = "username"
	columnPassword       = "password"
	columnRole           = "role"
	columnRUT            = "rut"
)

// userColumns is the scan order used by every SELECT on users.
var userColumns = []string{
	columnID,
	columnName,
	columnFirstLastname,
	columnSecondLastname,
	columnEmail,
	columnUsername,
	columnPassword,
	columnRole,
	columnRUT,
}

// userQueries builds the SQL statements of the user repository for one
// placeholder style: $N for PostgreSQL, ? for SQLite.
type userQueries struct {
	builder sq.StatementBuilderType
	table   string
}

func newUserQueries(dialect Dialect) userQueries {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == DialectPostgres {
		placeholder = sq.Dollar
	}

	return userQueries{
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
		table:   models.User{}.TableName(),
	}
}

// buildExistsQuery returns SELECT EXISTS (SELECT 1 FROM users WHERE column = value).
func (q userQueries) buildExistsQuery(column string, value any) (string, []any, error) {
	query, args, err := q.builder.
		Select("1").
		From(q.table).
		Where(sq.Eq{column: value}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func (q userQueries) buildFindByQuery(column string, value any) (string, []any, error) {
	query, args, err := q.builder.
		Select(userColumns...).
		From(q.table).
		Where(sq.Eq{column: value}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func (q userQueries) buildFindAllQuery() (string, []any, error) {
	query, args, err := q.builder.
		Select(userColumns...).
		From(q.table).
		OrderBy(columnID).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildInsertQuery inserts every column but id and returns the generated id.
// Both PostgreSQL and SQLite (3.35+) support RETURNING.
func (q userQueries) buildInsertQuery(user models.User) (string, []any, error) {
	query, args, err := q.builder.
		Insert(q.table).
		Columns(userColumns[1:]...).
		Values(
			user.Name,
			user.FirstLastname,
			user.SecondLastname,
			user.Email,
			user.Username,
			user.Password,
			user.Role,
			user.RUT,
		).
		Suffix("RETURNING " + columnID).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateQuery replaces every mutable column of the row with user.ID.
func (q userQueries) buildUpdateQuery(user models.User) (string, []any, error) {
	query, args, err := q.builder.
		Update(q.table).
		Set(columnName, user.Name).
		Set(columnFirstLastname, user.FirstLastname).
		Set(columnSecondLastname, user.SecondLastname).
		Set(columnEmail, user.Email).
		Set(columnUsername, user.Username).
		Set(columnPassword, user.Password).
		Set(columnRole, user.Role).
		Set(columnRUT, user.RUT).
		Where(sq.Eq{columnID: user.ID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func (q userQueries) buildDeleteQuery(id int64) (string, []any, error) {
	query, args, err := q.builder.
		Delete(q.table).
		Where(sq.Eq{columnID: id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
