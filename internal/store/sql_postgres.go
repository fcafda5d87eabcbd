package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/zentask/zentask-server/internal/config"
	"github.com/zentask/zentask-server/internal/logger"
)

// NewConnectPostgres opens and pings a PostgreSQL connection using the pgx
// stdlib driver and wraps it in a [DB] configured for the Postgres dialect.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	db := &DB{
		DB:         conn,
		dialect:    DialectPostgres,
		builder:    builderFor(DialectPostgres),
		classifier: NewPostgresErrorClassifier(),
		logger:     log,
	}

	return db, nil
}
