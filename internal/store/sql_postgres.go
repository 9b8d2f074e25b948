package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"recipekeep/internal/config"
	"recipekeep/internal/logger"
	"recipekeep/migrations"
)

// DB wraps the shared *sql.DB connection together with the error
// classificator used to tell transient store outages from ordinary
// statement failures.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens the PostgreSQL connection described by cfg,
// verifies it with a ping, and returns the wrapped handle. The connection is
// constructed once at process start and reused by every repository.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	return db, nil
}

// Migrate applies the embedded goose migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// classify wraps err in [ErrStoreUnavailable] when the classificator reports
// a connectivity-level failure, and returns it unchanged otherwise.
func (db *DB) classify(err error) error {
	if err == nil {
		return nil
	}
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Unavailable {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return err
}
