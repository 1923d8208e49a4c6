// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/migrations"
)

// Dialect names the SQL engine behind a [DB]. The value doubles as the goose
// dialect name used by migrations.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It indicates whether a failed database operation should be retried or abandoned.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors, constraint
	// violations, syntax errors, and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss or a deadlock rollback).
	Retryable
)

// ErrorClassificator translates engine-specific driver errors into the few
// facts the repository layer acts on.
type ErrorClassificator interface {
	// Classify reports whether err is worth retrying.
	Classify(err error) ErrorClassification

	// UniqueViolation reports whether err is a unique constraint violation
	// and, if so, which column caused it.
	UniqueViolation(err error) (column string, ok bool)
}

// DB is a database handle bound to its dialect, error classifier and retry
// schedule.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	retryDelays        []time.Duration
	logger             *logger.Logger
}

// Dialect returns the SQL dialect of db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies all pending schema migrations for the dialect of db.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect), db.logger)
}

// retryDelays builds the backoff schedule for maxRetries attempts:
// 100ms, 300ms, 500ms, ...
func retryDelays(maxRetries int) []time.Duration {
	delays := make([]time.Duration, 0, maxRetries)
	for i := range maxRetries {
		delays = append(delays, time.Duration(2*i+1)*100*time.Millisecond)
	}
	return delays
}

// withRetry runs fn and re-runs it after each delay of the retry schedule
// while it keeps failing with a [Retryable] error.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	log := logger.FromContext(ctx)

	err := fn()
	for attempt, delay := range db.retryDelays {
		if err == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		log.Warn().Err(err).
			Str("func", "*DB.withRetry").
			Int("attempt", attempt+1).
			Dur("delay", delay).
			Msg("retryable database error")

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w (retry aborted: %w)", err, ctx.Err())
		case <-time.After(delay):
		}

		err = fn()
	}

	return err
}
