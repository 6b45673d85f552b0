package repository

import (
	"context"

	"github.com/trip-aggregator/internal/domain"
)

// GeocodingRepository определяет методы геокодера.
// Ошибки: domain.ErrInvalidInput для пустого адреса (без сетевого вызова),
// domain.ErrNotFound при нуле совпадений, *domain.ProviderError для ошибок провайдера.
type GeocodingRepository interface {
	// Geocode возвращает первое совпадение для адреса
	Geocode(ctx context.Context, address string) (domain.GeocodeResult, error)

	// GetDirections - резервный источник маршрута
	GetDirections(ctx context.Context, origin, destination domain.Coordinate) (domain.RouteSummary, error)
}

// RoutingRepository - основной источник маршрута. Не делает повторных попыток.
type RoutingRepository interface {
	CalculateRoute(
		ctx context.Context,
		origin, destination domain.Coordinate,
		opts domain.RouteOptions,
	) (domain.RouteSummary, error)
}

// WeatherRepository never fails; provider errors become an unavailable report.
type WeatherRepository interface {
	CurrentWeather(ctx context.Context, address string) domain.WeatherReport
}

// NewsRepository never fails; provider errors become an unavailable feed.
type NewsRepository interface {
	SearchNews(ctx context.Context, query string) domain.NewsFeed
}

// PlacesRepository never fails; radius and limit are clamped before the upstream call.
type PlacesRepository interface {
	NearbyPlaces(ctx context.Context, query domain.PlacesQuery) domain.NearbyPlaces
}
