package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/zentask/zentask-server/internal/logger"
)

// Dialect identifies the SQL backend behind a [DB] connection.
type Dialect string

const (
	// DialectPostgres is the production backend (pgx driver).
	DialectPostgres Dialect = "postgres"
	// DialectSQLite is the embedded development backend (mattn driver).
	DialectSQLite Dialect = "sqlite3"
)

// DB bundles a live database connection with everything the repositories
// need to stay dialect-agnostic: a squirrel statement builder configured
// with the backend's placeholder format and an [ErrorClassifier] that
// recognises the backend's driver errors.
type DB struct {
	*sql.DB

	dialect    Dialect
	builder    sq.StatementBuilderType
	classifier ErrorClassifier
	logger     *logger.Logger
}

// Dialect returns the SQL dialect of the underlying connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Builder returns the squirrel statement builder configured for the
// connection's placeholder format ($N for Postgres, ? for SQLite).
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}

// builderFor returns the statement builder matching the given dialect.
func builderFor(dialect Dialect) sq.StatementBuilderType {
	if dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
