package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/trip-aggregator/internal/config"
	"github.com/trip-aggregator/internal/domain/repository"
	"github.com/trip-aggregator/internal/infrastructure/foursquare"
	"github.com/trip-aggregator/internal/infrastructure/gnews"
	"github.com/trip-aggregator/internal/infrastructure/googlemaps"
	"github.com/trip-aggregator/internal/infrastructure/locationiq"
	"github.com/trip-aggregator/internal/infrastructure/openweather"
	"github.com/trip-aggregator/internal/infrastructure/tomtom"
	"github.com/trip-aggregator/internal/usecase"
)

// Providers - клиенты внешних API, общие для api и worker
type Providers struct {
	Geocoder repository.GeocodingRepository
	Router   repository.RoutingRepository
	Weather  repository.WeatherRepository
	News     repository.NewsRepository
	Places   repository.PlacesRepository
}

// NewProviders создаёт клиентов; геокодер выбирается по GEOCODER_PROVIDER.
// Исходящие запросы идут через transport New Relic, без агента это обычный DefaultTransport.
func NewProviders(cfg *config.Config, logger *zap.Logger) (*Providers, error) {
	geocoder, err := newGeocoder(cfg, logger)
	if err != nil {
		return nil, err
	}

	router, err := tomtom.NewTomTomClient(&cfg.TomTom, nil, logger)
	if err != nil {
		return nil, fmt.Errorf("tomtom: %w", err)
	}

	weather, err := openweather.NewOpenWeatherClient(&cfg.OpenWeather, nil, logger)
	if err != nil {
		return nil, fmt.Errorf("openweather: %w", err)
	}

	news, err := gnews.NewGNewsClient(&cfg.GNews, nil, logger)
	if err != nil {
		return nil, fmt.Errorf("gnews: %w", err)
	}

	places, err := foursquare.NewFoursquareClient(&cfg.Foursquare, nil, logger)
	if err != nil {
		return nil, fmt.Errorf("foursquare: %w", err)
	}

	logger.Info("Provider clients initialized", zap.String("geocoder", cfg.Geocoder))

	return &Providers{
		Geocoder: geocoder,
		Router:   router,
		Weather:  weather,
		News:     news,
		Places:   places,
	}, nil
}

func newGeocoder(cfg *config.Config, logger *zap.Logger) (repository.GeocodingRepository, error) {
	switch cfg.Geocoder {
	case config.GeocoderGoogle:
		client, err := googlemaps.NewGoogleMapsClient(&cfg.GoogleMaps, nil, logger)
		if err != nil {
			return nil, fmt.Errorf("google maps: %w", err)
		}
		return client, nil
	case config.GeocoderLocationIQ, "":
		client, err := locationiq.NewLocationIQClient(&cfg.LocationIQ, nil, logger)
		if err != nil {
			return nil, fmt.Errorf("locationiq: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown geocoder %q", cfg.Geocoder)
	}
}

// TripSettings переводит конфигурацию в настройки агрегатора
func TripSettings(cfg config.TripConfig) usecase.TripSettings {
	return usecase.TripSettings{
		Timeout:      cfg.Timeout,
		PlacesQuery:  cfg.PlacesQuery,
		PlacesRadius: cfg.PlacesRadius,
		PlacesLimit:  cfg.PlacesLimit,
	}
}

// NewTripAggregator собирает агрегатор поездки из провайдеров и таблицы тарифов
func NewTripAggregator(cfg *config.Config, p *Providers, logger *zap.Logger) *usecase.TripAggregator {
	fares := usecase.NewFareEstimator(usecase.NewRateTable(cfg.Fare), logger)

	return usecase.NewTripAggregator(
		p.Geocoder,
		p.Router,
		p.Weather,
		p.News,
		p.Places,
		fares,
		TripSettings(cfg.Trip),
		logger,
	)
}

// NewLookupUseCase - прямые запросы к тем же провайдерам
func NewLookupUseCase(cfg *config.Config, p *Providers, logger *zap.Logger) *usecase.LookupUseCase {
	return usecase.NewLookupUseCase(p.Geocoder, p.Weather, p.News, p.Places, TripSettings(cfg.Trip), logger)
}
