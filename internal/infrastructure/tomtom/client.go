package tomtom

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/trip-aggregator/internal/config"
	"github.com/trip-aggregator/internal/domain"
	"github.com/trip-aggregator/internal/infrastructure/provider"
)

const source = "tomtom"

// Client - основной источник маршрута (TomTom Routing API)
type Client struct {
	api *provider.Client
}

// NewTomTomClient создает клиент TomTom
func NewTomTomClient(cfg *config.ProviderConfig, transport http.RoundTripper, logger *zap.Logger) (*Client, error) {
	api, err := provider.NewClient(cfg, transport, logger)
	if err != nil {
		return nil, err
	}
	return &Client{api: api}, nil
}

type calculateRouteResponse struct {
	Routes []struct {
		Summary struct {
			LengthInMeters      float64 `json:"lengthInMeters"`
			TravelTimeInSeconds float64 `json:"travelTimeInSeconds"`
		} `json:"summary"`
	} `json:"routes"`
}

// CalculateRoute возвращает сводку первого маршрута. Повторных попыток нет.
func (c *Client) CalculateRoute(
	ctx context.Context,
	origin, destination domain.Coordinate,
	opts domain.RouteOptions,
) (domain.RouteSummary, error) {
	opts = opts.WithDefaults()

	endpoint := fmt.Sprintf("%s/routing/1/calculateRoute/%s:%s/json",
		c.api.BaseURL(), origin.String(), destination.String())

	query := url.Values{
		"key":        {c.api.APIKey()},
		"travelMode": {opts.TravelMode},
		"traffic":    {strconv.FormatBool(opts.Traffic)},
		"departAt":   {opts.DepartAt},
	}

	var resp calculateRouteResponse
	if err := c.api.GetJSON(ctx, "calculate_route", endpoint, query, nil, &resp); err != nil {
		return domain.RouteSummary{}, err
	}

	if len(resp.Routes) == 0 {
		return domain.RouteSummary{}, &domain.ProviderError{
			Provider:  source,
			Operation: "calculate_route",
			Message:   "no routes returned",
		}
	}

	summary := resp.Routes[0].Summary
	if summary.LengthInMeters < 0 || summary.TravelTimeInSeconds < 0 {
		return domain.RouteSummary{}, &domain.ProviderError{
			Provider:  source,
			Operation: "calculate_route",
			Message:   "negative route metrics",
		}
	}

	c.api.Logger().Debug("Route calculated",
		zap.Float64("distance_m", summary.LengthInMeters),
		zap.Float64("travel_time_s", summary.TravelTimeInSeconds))

	return domain.RouteSummary{
		DistanceMeters:    summary.LengthInMeters,
		TravelTimeSeconds: summary.TravelTimeInSeconds,
		Source:            source,
	}, nil
}
