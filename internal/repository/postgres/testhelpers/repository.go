package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/trip-aggregator/internal/domain/repository"
	"github.com/trip-aggregator/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewFareRecordRepositoryForTest creates a fare record repository with test database and logger
func NewFareRecordRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.FareRecordRepository {
	return postgres.NewFareRecordRepository(NewDBForTest(db, logger))
}

// NewCORSOriginRepositoryForTest creates a CORS origin repository with test database and logger
func NewCORSOriginRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.CORSOriginRepository {
	return postgres.NewCORSOriginRepository(NewDBForTest(db, logger))
}
