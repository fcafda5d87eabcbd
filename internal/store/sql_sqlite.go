package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/zentask/zentask-server/internal/config"
	"github.com/zentask/zentask-server/internal/logger"
)

// SQLite DDL executed at connect time. The Postgres path uses goose
// migrations instead; the embedded backend keeps its schema inline so that
// a local development run needs nothing but a writable file path.
const (
	sqliteCreateUsersTable = `CREATE TABLE IF NOT EXISTS users (
		user_id       INTEGER PRIMARY KEY AUTOINCREMENT,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'USER',
		created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	sqliteCreateTasksTable = `CREATE TABLE IF NOT EXISTS tasks (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL,
		priority    TEXT NOT NULL,
		due_date    DATE,
		user_id     INTEGER NOT NULL REFERENCES users (user_id),
		created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	sqliteCreateTasksOwnerIndex = `CREATE INDEX IF NOT EXISTS idx_tasks_user_id ON tasks (user_id);`
)

// NewConnectSQLite opens (creating the file if needed) a SQLite database,
// bootstraps the schema, and wraps the connection in a [DB] configured for
// the SQLite dialect. Intended for local development and demos.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DSN+"?_foreign_keys=on")
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}

	// bootstrap schema
	for _, ddl := range []string{sqliteCreateUsersTable, sqliteCreateTasksTable, sqliteCreateTasksOwnerIndex} {
		if _, err = conn.ExecContext(ctx, ddl); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error bootstrapping schema")
			return nil, fmt.Errorf("error bootstrapping sqlite schema: %w", err)
		}
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	db := &DB{
		DB:         conn,
		dialect:    DialectSQLite,
		builder:    builderFor(DialectSQLite),
		classifier: NewSQLiteErrorClassifier(),
		logger:     log,
	}

	return db, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
