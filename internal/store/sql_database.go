package store

import (
	"database/sql"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/migrations"
)

// Supported database driver names. The driver selects both the sql.Open
// driver and the matching [ErrorClassificator].
const (
	// DriverPostgres is the pgx stdlib driver used in production.
	DriverPostgres = "pgx"

	// DriverSQLite is the file-backed driver used for local development.
	DriverSQLite = "sqlite3"
)

// DB wraps the shared *sql.DB connection with the driver-specific error
// classifier and a logger. All repositories operate through a single DB.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all embedded goose migrations for the DB's driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
