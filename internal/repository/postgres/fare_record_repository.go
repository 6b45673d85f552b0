package postgres

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/trip-aggregator/internal/domain"
	"github.com/trip-aggregator/internal/domain/repository"
)

const fareRecordColumns = `id, origin_address, destination_address, vehicle_type, distance_km,
	travel_time_minutes, expected_fare, base_fare, distance_rate_per_km, created_at, updated_at`

type fareRecordRepository struct {
	db *DB
}

// NewFareRecordRepository создает репозиторий записей тарифов
func NewFareRecordRepository(db *DB) repository.FareRecordRepository {
	return &fareRecordRepository{db: db}
}

func (r *fareRecordRepository) Create(ctx context.Context, record *domain.FareRecord) error {
	query := `
		INSERT INTO fare_records (
			origin_address, destination_address, vehicle_type, distance_km,
			travel_time_minutes, expected_fare, base_fare, distance_rate_per_km
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		record.OriginAddress,
		record.DestinationAddress,
		string(record.VehicleType),
		record.DistanceKm,
		record.TravelTimeMinutes,
		record.ExpectedFare,
		record.BaseFare,
		record.DistanceRatePerKm,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return r.fail("create", err)
	}
	return nil
}

func (r *fareRecordRepository) GetByID(ctx context.Context, id int64) (*domain.FareRecord, error) {
	query := `SELECT ` + fareRecordColumns + ` FROM fare_records WHERE id = $1`

	var record domain.FareRecord
	if err := r.db.GetContext(ctx, &record, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFareRecordNotFound
		}
		return nil, r.fail("get", err)
	}
	return &record, nil
}

func (r *fareRecordRepository) List(ctx context.Context, limit, offset int) ([]*domain.FareRecord, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM fare_records`); err != nil {
		return nil, 0, r.fail("count", err)
	}

	query := `SELECT ` + fareRecordColumns + `
		FROM fare_records
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`

	records := []*domain.FareRecord{}
	if err := r.db.SelectContext(ctx, &records, query, limit, offset); err != nil {
		return nil, 0, r.fail("list", err)
	}
	return records, total, nil
}

// Update: NULL параметр оставляет колонку без изменений
func (r *fareRecordRepository) Update(ctx context.Context, id int64, update domain.FareRecordUpdate) (*domain.FareRecord, error) {
	query := `
		UPDATE fare_records SET
			origin_address       = COALESCE($1, origin_address),
			destination_address  = COALESCE($2, destination_address),
			vehicle_type         = COALESCE($3, vehicle_type),
			distance_km          = COALESCE($4, distance_km),
			travel_time_minutes  = COALESCE($5, travel_time_minutes),
			expected_fare        = COALESCE($6, expected_fare),
			base_fare            = COALESCE($7, base_fare),
			distance_rate_per_km = COALESCE($8, distance_rate_per_km),
			updated_at           = NOW()
		WHERE id = $9
		RETURNING ` + fareRecordColumns

	var vehicleType *string
	if update.VehicleType != nil {
		vt := string(*update.VehicleType)
		vehicleType = &vt
	}

	var record domain.FareRecord
	err := r.db.GetContext(ctx, &record, query,
		update.OriginAddress,
		update.DestinationAddress,
		vehicleType,
		update.DistanceKm,
		update.TravelTimeMinutes,
		update.ExpectedFare,
		update.BaseFare,
		update.DistanceRatePerKm,
		id,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFareRecordNotFound
		}
		return nil, r.fail("update", err)
	}
	return &record, nil
}

func (r *fareRecordRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM fare_records WHERE id = $1`, id)
	if err != nil {
		return false, r.fail("delete", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, r.fail("delete", err)
	}
	return affected > 0, nil
}

func (r *fareRecordRepository) fail(operation string, err error) error {
	r.db.logger.Error("Fare record query failed",
		zap.String("operation", operation),
		zap.Error(err))
	return &domain.PersistenceError{Operation: operation, Err: err}
}
