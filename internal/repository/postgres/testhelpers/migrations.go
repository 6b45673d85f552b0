package testhelpers

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/trip-aggregator/internal/repository/postgres"
)

// ApplyMigrations runs the project migrations through golang-migrate
func ApplyMigrations(db *sql.DB, migrationsPath string) error {
	return postgres.MigrateDB(db, migrationsPath, zap.NewNop())
}
