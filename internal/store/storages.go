package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
)

// Storages aggregates the repositories used by the service layer together
// with the database handle backing them, if any.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages selects the backend from cfg.DB.DSN:
//   - "" or "memory" → in-memory repository;
//   - "postgres://" or "postgresql://" → PostgreSQL via pgx;
//   - "sqlite://<path>" or "file:" URI → SQLite via go-sqlite3.
//
// SQL backends are migrated to the latest schema unless
// cfg.DB.SkipMigrations is set.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	dsn := cfg.DB.DSN

	var (
		db  *DB
		err error
	)
	switch {
	case dsn == "" || dsn == "memory":
		log.Info().Str("func", "NewStorages").Msg("using in-memory storage")
		return &Storages{UserRepository: NewMemoryUserRepository(log)}, nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case strings.HasPrefix(dsn, sqliteDSNPrefix), strings.HasPrefix(dsn, "file:"):
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, ErrUnsupportedDSN
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if !cfg.DB.SkipMigrations {
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
			db.Close()
			return nil, err
		}
		log.Info().Str("func", "NewStorages").Str("dialect", string(db.Dialect())).Msg("database migrated")
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		db:             db,
	}, nil
}

// Close releases the database handle. It is a no-op for in-memory storage.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
