package handler

import (
	"context"

	"github.com/trip-aggregator/internal/domain"
	"github.com/trip-aggregator/internal/usecase/dto"
)

// TripService - агрегатор поездки (*usecase.TripAggregator)
type TripService interface {
	ComputeTripDetails(ctx context.Context, origin, destination string, vehicleType domain.VehicleType, placesQuery string) (*domain.TripDetails, error)
	ComputeFare(ctx context.Context, origin, destination string, vehicleType domain.VehicleType) (*dto.FareEstimateResponse, error)
}

// FareRecordService - CRUD сохранённых тарифов (*usecase.FareRecordUseCase)
type FareRecordService interface {
	Create(ctx context.Context, req dto.CreateFareRecordRequest) (*domain.FareRecord, error)
	Get(ctx context.Context, id int64) (*domain.FareRecord, error)
	List(ctx context.Context, req dto.ListFareRecordsRequest) (*dto.FareRecordListResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateFareRecordRequest) (*domain.FareRecord, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// LookupService - прямые запросы к провайдерам (*usecase.LookupUseCase)
type LookupService interface {
	Geocode(ctx context.Context, address string) (*dto.GeocodeResponse, error)
	Weather(ctx context.Context, city string) domain.WeatherReport
	News(ctx context.Context, query string) domain.NewsFeed
	Places(ctx context.Context, req dto.PlacesRequest) (domain.NearbyPlaces, error)
}

// HealthChecker is satisfied by the postgres and redis wrappers.
type HealthChecker interface {
	Health(ctx context.Context) error
}
