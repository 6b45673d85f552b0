package testhelpers

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/trip-aggregator/internal/domain"
)

// InsertFareRecord inserts a record directly, bypassing the repository
func InsertFareRecord(ctx context.Context, db *sqlx.DB, record domain.FareRecord) (int64, error) {
	var id int64
	err := db.QueryRowxContext(ctx, `
		INSERT INTO fare_records (
			origin_address, destination_address, vehicle_type, distance_km,
			travel_time_minutes, expected_fare, base_fare, distance_rate_per_km
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		record.OriginAddress, record.DestinationAddress, string(record.VehicleType),
		record.DistanceKm, record.TravelTimeMinutes, record.ExpectedFare,
		record.BaseFare, record.DistanceRatePerKm,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert fare record: %w", err)
	}
	return id, nil
}

// InsertCORSOrigins seeds the allowlist table
func InsertCORSOrigins(ctx context.Context, db *sqlx.DB, origins ...string) error {
	for _, origin := range origins {
		if _, err := db.ExecContext(ctx, `INSERT INTO cors_origins (origin) VALUES ($1)`, origin); err != nil {
			return fmt.Errorf("insert cors origin %s: %w", origin, err)
		}
	}
	return nil
}
