package domain

import "time"

// FareRecord - сохранённый расчёт тарифа
type FareRecord struct {
	ID                 int64       `json:"id" db:"id"`
	OriginAddress      string      `json:"origin_address" db:"origin_address"`
	DestinationAddress string      `json:"destination_address" db:"destination_address"`
	VehicleType        VehicleType `json:"vehicle_type" db:"vehicle_type"`
	DistanceKm         float64     `json:"distance_km" db:"distance_km"`
	TravelTimeMinutes  int         `json:"travel_time_minutes" db:"travel_time_minutes"`
	ExpectedFare       float64     `json:"expected_fare" db:"expected_fare"`
	BaseFare           float64     `json:"base_fare" db:"base_fare"`
	DistanceRatePerKm  float64     `json:"distance_rate_per_km" db:"distance_rate_per_km"`
	CreatedAt          time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at" db:"updated_at"`
}

// FareRecordUpdate - частичное обновление, nil поля не меняются
type FareRecordUpdate struct {
	OriginAddress      *string
	DestinationAddress *string
	VehicleType        *VehicleType
	DistanceKm         *float64
	TravelTimeMinutes  *int
	ExpectedFare       *float64
	BaseFare           *float64
	DistanceRatePerKm  *float64
}

// IsEmpty reports an update that changes nothing.
func (u FareRecordUpdate) IsEmpty() bool {
	return u.OriginAddress == nil && u.DestinationAddress == nil && u.VehicleType == nil &&
		u.DistanceKm == nil && u.TravelTimeMinutes == nil && u.ExpectedFare == nil &&
		u.BaseFare == nil && u.DistanceRatePerKm == nil
}

// Fare record lifecycle event types.
const (
	FareRecordCreated = "fare_record.created"
	FareRecordUpdated = "fare_record.updated"
	FareRecordDeleted = "fare_record.deleted"
)

// FareRecordEvent is published after a fare record changes.
type FareRecordEvent struct {
	Type       string      `json:"type"`
	RecordID   int64       `json:"record_id"`
	Record     *FareRecord `json:"record,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}
