package store

import (
	"database/sql/driver"
	"errors"
	"strings"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
//
// go-sqlite3 exposes typed errors only in cgo builds, so classification is
// done on the sqlite3_errmsg text, which is stable across SQLite versions.
type SQLiteErrorClassifier struct{}

const sqliteUniqueFailedPrefix = "UNIQUE constraint failed: "

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Lock contention is retryable.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	if errors.Is(err, driver.ErrBadConn) {
		return Retryable
	}

	msg := err.Error()
	if strings.Contains(msg, "database is locked") || strings.Contains(msg, "database table is locked") {
		return Retryable
	}

	return NonRetryable
}

// UniqueViolation implements [ErrorClassificator]. SQLite reports the
// violation as "UNIQUE constraint failed: users.email".
func (c *SQLiteErrorClassifier) UniqueViolation(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	_, target, ok := strings.Cut(err.Error(), sqliteUniqueFailedPrefix)
	if !ok {
		return "", false
	}

	// composite constraints list several columns; the first one is enough
	target, _, _ = strings.Cut(target, ",")
	_, column, found := strings.Cut(strings.TrimSpace(target), ".")
	if !found {
		return "", true
	}

	return column, true
}
