package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/trip-aggregator/internal/domain"
	"github.com/trip-aggregator/internal/domain/repository"
	"github.com/trip-aggregator/internal/usecase/dto"
)

// LookupUseCase - прямые запросы к отдельным провайдерам (геокодер, погода, новости, места)
type LookupUseCase struct {
	geocoder repository.GeocodingRepository
	weather  repository.WeatherRepository
	news     repository.NewsRepository
	places   repository.PlacesRepository
	settings TripSettings
	logger   *zap.Logger
}

func NewLookupUseCase(
	geocoder repository.GeocodingRepository,
	weather repository.WeatherRepository,
	news repository.NewsRepository,
	places repository.PlacesRepository,
	settings TripSettings,
	logger *zap.Logger,
) *LookupUseCase {
	return &LookupUseCase{
		geocoder: geocoder,
		weather:  weather,
		news:     news,
		places:   places,
		settings: settings.withDefaults(),
		logger:   logger,
	}
}

// Geocode ошибки оборачиваются в GeocodeFailure, чтобы ответ содержал адрес
func (uc *LookupUseCase) Geocode(ctx context.Context, address string) (*dto.GeocodeResponse, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, domain.NewInvalidInput("address", "is required")
	}

	result, err := uc.geocoder.Geocode(ctx, address)
	if err != nil {
		uc.logger.Warn("Geocode lookup failed", zap.String("address", address), zap.Error(err))
		return nil, &domain.GeocodeFailure{Role: "requested", Address: address, Err: err}
	}

	return &dto.GeocodeResponse{
		Address:     address,
		DisplayName: result.DisplayName,
		Lat:         result.Coordinate.Lat,
		Lon:         result.Coordinate.Lon,
	}, nil
}

func (uc *LookupUseCase) Weather(ctx context.Context, city string) domain.WeatherReport {
	return uc.weather.CurrentWeather(ctx, strings.TrimSpace(city))
}

func (uc *LookupUseCase) News(ctx context.Context, query string) domain.NewsFeed {
	return uc.news.SearchNews(ctx, strings.TrimSpace(query))
}

// Places: нулевые radius/limit заменяются настройками по умолчанию, остальное ограничивает клиент
func (uc *LookupUseCase) Places(ctx context.Context, req dto.PlacesRequest) (domain.NearbyPlaces, error) {
	if req.Lat == nil || req.Lon == nil {
		return domain.NearbyPlaces{}, domain.NewInvalidInput("lat,lon", "are required")
	}

	query := domain.PlacesQuery{
		Center:  domain.Coordinate{Lat: *req.Lat, Lon: *req.Lon},
		Query:   strings.TrimSpace(req.Query),
		RadiusM: req.Radius,
		Limit:   req.Limit,
	}
	if query.Query == "" {
		query.Query = uc.settings.PlacesQuery
	}
	if query.RadiusM == 0 {
		query.RadiusM = uc.settings.PlacesRadius
	}
	if query.Limit == 0 {
		query.Limit = uc.settings.PlacesLimit
	}

	return uc.places.NearbyPlaces(ctx, query), nil
}
