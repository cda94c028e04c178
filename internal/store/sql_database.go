package store

import (
	"database/sql"
	"strings"

	"github.com/medinventory/medinv/internal/logger"
	"github.com/medinventory/medinv/migrations"
)

// DB wraps *sql.DB with the application logger and the dialect the
// connection speaks ("postgres" or "sqlite3"). Repositories embed it and use
// the dialect to map driver-specific errors.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// Migrate runs the embedded goose migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// isPostgresDSN reports whether the DSN targets PostgreSQL; everything else
// is treated as an SQLite file path.
func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
