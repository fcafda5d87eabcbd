// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/zentask/zentask-server/internal/config"
	"github.com/zentask/zentask-server/internal/logger"
	"github.com/zentask/zentask-server/migrations"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository
	TaskRepository
}

// NewStorages connects to the configured database backend and wires the
// repositories on top of it.
//
// The backend is chosen by the DSN scheme: postgres:// and postgresql://
// select the PostgreSQL backend (with goose migrations applied at startup);
// anything else is treated as a SQLite file path for local development.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		TaskRepository: NewTaskRepository(db, log),
	}, nil
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		db, err := NewConnectPostgres(ctx, cfg, log)
		if err != nil {
			return nil, fmt.Errorf("error connecting to postgres: %w", err)
		}

		if err := migrations.Migrate(db.DB); err != nil {
			log.Err(err).Str("func", "connect").Msg("error applying migrations")
			return nil, fmt.Errorf("error applying migrations: %w", err)
		}

		return db, nil
	}

	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to sqlite: %w", err)
	}

	return db, nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
