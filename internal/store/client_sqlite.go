package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"recipekeep/internal/config"
	"recipekeep/internal/logger"
)

const createPendingUploadsTable = `
	CREATE TABLE IF NOT EXISTS pending_uploads (
		temp_id    TEXT PRIMARY KEY,
		recipe_id  INTEGER NOT NULL,
		timestamp  INTEGER NOT NULL,
		filename   TEXT NOT NULL,
		status     TEXT NOT NULL,
		photo_path TEXT NOT NULL DEFAULT '',
		error      TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_pending_uploads_recipe
		ON pending_uploads (recipe_id);`

// NewConnectSQLite opens (creating if necessary) the client-local SQLite
// database holding the pending-upload table.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, createPendingUploadsTable); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating pending uploads table")
		return nil, fmt.Errorf("error creating pending uploads table: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to local database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
