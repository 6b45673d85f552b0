package locationiq

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/trip-aggregator/internal/config"
	"github.com/trip-aggregator/internal/domain"
	"github.com/trip-aggregator/internal/infrastructure/provider"
)

const source = "locationiq"

// Client - геокодер LocationIQ, также используется как резервный источник маршрута
type Client struct {
	api *provider.Client
}

// NewLocationIQClient создает клиент LocationIQ
func NewLocationIQClient(cfg *config.ProviderConfig, transport http.RoundTripper, logger *zap.Logger) (*Client, error) {
	api, err := provider.NewClient(cfg, transport, logger)
	if err != nil {
		return nil, err
	}
	return &Client{api: api}, nil
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode возвращает первое совпадение для адреса
func (c *Client) Geocode(ctx context.Context, address string) (domain.GeocodeResult, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return domain.GeocodeResult{}, domain.NewInvalidInput("address", "is required")
	}

	query := url.Values{
		"key":    {c.api.APIKey()},
		"q":      {address},
		"format": {"json"},
		"limit":  {"1"},
	}

	var results []searchResult
	err := c.api.GetJSON(ctx, "geocode", c.api.BaseURL()+"/search", query, nil, &results)
	if err != nil {
		var perr *domain.ProviderError
		// LocationIQ отвечает 404 "Unable to geocode", когда совпадений нет
		if errors.As(err, &perr) && perr.StatusCode == http.StatusNotFound {
			return domain.GeocodeResult{}, domain.ErrNotFound
		}
		return domain.GeocodeResult{}, err
	}

	if len(results) == 0 {
		return domain.GeocodeResult{}, domain.ErrNotFound
	}

	first := results[0]
	lat, latErr := strconv.ParseFloat(first.Lat, 64)
	lon, lonErr := strconv.ParseFloat(first.Lon, 64)
	if latErr != nil || lonErr != nil {
		return domain.GeocodeResult{}, &domain.ProviderError{
			Provider:  source,
			Operation: "geocode",
			Message:   "malformed coordinates",
			Err:       errors.Join(latErr, lonErr),
		}
	}

	return domain.GeocodeResult{
		Coordinate:  domain.Coordinate{Lat: lat, Lon: lon},
		DisplayName: first.DisplayName,
	}, nil
}

type directionsResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// GetDirections возвращает маршрут для автомобиля между двумя точками
func (c *Client) GetDirections(ctx context.Context, origin, destination domain.Coordinate) (domain.RouteSummary, error) {
	// LocationIQ, как и OSRM, ожидает порядок lon,lat
	endpoint := fmt.Sprintf("%s/directions/driving/%f,%f;%f,%f",
		c.api.BaseURL(), origin.Lon, origin.Lat, destination.Lon, destination.Lat)

	query := url.Values{
		"key":      {c.api.APIKey()},
		"overview": {"false"},
	}

	var resp directionsResponse
	if err := c.api.GetJSON(ctx, "directions", endpoint, query, nil, &resp); err != nil {
		return domain.RouteSummary{}, err
	}

	if resp.Code != "" && resp.Code != "Ok" {
		return domain.RouteSummary{}, &domain.ProviderError{
			Provider:  source,
			Operation: "directions",
			Message:   "route code " + resp.Code,
		}
	}
	if len(resp.Routes) == 0 {
		return domain.RouteSummary{}, &domain.ProviderError{
			Provider:  source,
			Operation: "directions",
			Message:   "no routes returned",
		}
	}

	route := resp.Routes[0]
	if route.Distance < 0 || route.Duration < 0 {
		return domain.RouteSummary{}, &domain.ProviderError{
			Provider:  source,
			Operation: "directions",
			Message:   "negative route metrics",
		}
	}

	return domain.RouteSummary{
		DistanceMeters:    route.Distance,
		TravelTimeSeconds: route.Duration,
		Source:            source,
	}, nil
}
