package googlemaps

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"googlemaps.github.io/maps"

	"github.com/trip-aggregator/internal/config"
	"github.com/trip-aggregator/internal/domain"
	"github.com/trip-aggregator/internal/pkg/telemetry"
)

const source = "googlemaps"

// Client - альтернативный геокодер и источник маршрута на Google Maps Platform
type Client struct {
	maps   *maps.Client
	logger *zap.Logger
}

// NewGoogleMapsClient создает клиент Google Maps. Пустой BaseURL означает адрес по умолчанию библиотеки.
func NewGoogleMapsClient(cfg *config.ProviderConfig, transport http.RoundTripper, logger *zap.Logger) (*Client, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, fmt.Errorf("googlemaps: api key is not configured")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	opts := []maps.ClientOption{
		maps.WithAPIKey(cfg.APIKey),
		maps.WithHTTPClient(&http.Client{
			Timeout:   timeout,
			Transport: telemetry.Transport(transport),
		}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, maps.WithBaseURL(strings.TrimRight(cfg.BaseURL, "/")))
	}

	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}

	return &Client{
		maps:   client,
		logger: logger.With(zap.String("provider", source)),
	}, nil
}

// Geocode возвращает первый результат Geocoding API
func (c *Client) Geocode(ctx context.Context, address string) (domain.GeocodeResult, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return domain.GeocodeResult{}, domain.NewInvalidInput("address", "is required")
	}

	results, err := c.maps.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		if isZeroResults(err) {
			return domain.GeocodeResult{}, domain.ErrNotFound
		}
		return domain.GeocodeResult{}, c.providerError("geocode", err)
	}
	if len(results) == 0 {
		return domain.GeocodeResult{}, domain.ErrNotFound
	}

	first := results[0]
	return domain.GeocodeResult{
		Coordinate: domain.Coordinate{
			Lat: first.Geometry.Location.Lat,
			Lon: first.Geometry.Location.Lng,
		},
		DisplayName: first.FormattedAddress,
	}, nil
}

// GetDirections суммирует участки первого маршрута Directions API
func (c *Client) GetDirections(ctx context.Context, origin, destination domain.Coordinate) (domain.RouteSummary, error) {
	routes, _, err := c.maps.Directions(ctx, &maps.DirectionsRequest{
		Origin:      origin.String(),
		Destination: destination.String(),
		Mode:        maps.TravelModeDriving,
	})
	if err != nil {
		return domain.RouteSummary{}, c.providerError("directions", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return domain.RouteSummary{}, &domain.ProviderError{
			Provider:  source,
			Operation: "directions",
			Message:   "no routes returned",
		}
	}

	var summary domain.RouteSummary
	for _, leg := range routes[0].Legs {
		summary.DistanceMeters += float64(leg.Distance.Meters)
		summary.TravelTimeSeconds += leg.Duration.Seconds()
	}
	summary.Source = source

	return summary, nil
}

func (c *Client) providerError(operation string, err error) error {
	c.logger.Warn("Google Maps call failed",
		zap.String("operation", operation),
		zap.Error(err))
	return &domain.ProviderError{
		Provider:  source,
		Operation: operation,
		Message:   "request failed",
		Err:       err,
	}
}

func isZeroResults(err error) bool {
	return strings.Contains(err.Error(), "ZERO_RESULTS")
}
