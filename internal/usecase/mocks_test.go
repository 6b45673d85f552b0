package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/trip-aggregator/internal/domain"
)

type mockGeocoder struct {
	mock.Mock
}

func (m *mockGeocoder) Geocode(ctx context.Context, address string) (domain.GeocodeResult, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(domain.GeocodeResult), args.Error(1)
}

func (m *mockGeocoder) GetDirections(ctx context.Context, origin, destination domain.Coordinate) (domain.RouteSummary, error) {
	args := m.Called(ctx, origin, destination)
	return args.Get(0).(domain.RouteSummary), args.Error(1)
}

type mockRouter struct {
	mock.Mock
}

func (m *mockRouter) CalculateRoute(
	ctx context.Context,
	origin, destination domain.Coordinate,
	opts domain.RouteOptions,
) (domain.RouteSummary, error) {
	args := m.Called(ctx, origin, destination, opts)
	return args.Get(0).(domain.RouteSummary), args.Error(1)
}

type mockWeather struct {
	mock.Mock
}

func (m *mockWeather) CurrentWeather(ctx context.Context, address string) domain.WeatherReport {
	args := m.Called(ctx, address)
	return args.Get(0).(domain.WeatherReport)
}

type mockNews struct {
	mock.Mock
}

func (m *mockNews) SearchNews(ctx context.Context, query string) domain.NewsFeed {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.NewsFeed)
}

type mockPlaces struct {
	mock.Mock
}

func (m *mockPlaces) NearbyPlaces(ctx context.Context, query domain.PlacesQuery) domain.NearbyPlaces {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.NearbyPlaces)
}

type mockFareRecordRepo struct {
	mock.Mock
}

func (m *mockFareRecordRepo) Create(ctx context.Context, record *domain.FareRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockFareRecordRepo) GetByID(ctx context.Context, id int64) (*domain.FareRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FareRecord), args.Error(1)
}

func (m *mockFareRecordRepo) List(ctx context.Context, limit, offset int) ([]*domain.FareRecord, int, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.FareRecord), args.Int(1), args.Error(2)
}

func (m *mockFareRecordRepo) Update(ctx context.Context, id int64, update domain.FareRecordUpdate) (*domain.FareRecord, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FareRecord), args.Error(1)
}

func (m *mockFareRecordRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishFareEvent(ctx context.Context, event domain.FareRecordEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockPublisher) Close() error {
	return nil
}
