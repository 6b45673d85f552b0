package openweather

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/trip-aggregator/internal/config"
	"github.com/trip-aggregator/internal/domain"
	"github.com/trip-aggregator/internal/infrastructure/provider"
)

// Client - текущая погода через OpenWeather Current Weather API
type Client struct {
	api *provider.Client
}

// NewOpenWeatherClient создает клиент OpenWeather. BaseURL - полный адрес эндпоинта.
func NewOpenWeatherClient(cfg *config.ProviderConfig, transport http.RoundTripper, logger *zap.Logger) (*Client, error) {
	api, err := provider.NewClient(cfg, transport, logger)
	if err != nil {
		return nil, err
	}
	return &Client{api: api}, nil
}

type weatherResponse struct {
	Name    string `json:"name"`
	Dt      int64  `json:"dt"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main *struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// CurrentWeather никогда не возвращает ошибку: сбой провайдера превращается в отчёт "unavailable"
func (c *Client) CurrentWeather(ctx context.Context, address string) domain.WeatherReport {
	address = strings.TrimSpace(address)
	if address == "" {
		return domain.UnavailableWeather("no location given")
	}

	query := url.Values{
		"q":     {address},
		"appid": {c.api.APIKey()},
		"units": {"metric"},
	}

	var resp weatherResponse
	if err := c.api.GetJSON(ctx, "current_weather", c.api.BaseURL(), query, nil, &resp); err != nil {
		return domain.UnavailableWeather("weather provider error: " + err.Error())
	}
	if resp.Main == nil {
		return domain.UnavailableWeather("weather provider returned no readings")
	}

	snapshot := &domain.WeatherSnapshot{
		City:               resp.Name,
		TemperatureCelsius: resp.Main.Temp,
		FeelsLikeCelsius:   resp.Main.FeelsLike,
		HumidityPct:        resp.Main.Humidity,
		WindSpeedMS:        resp.Wind.Speed,
	}
	if len(resp.Weather) > 0 {
		snapshot.Condition = resp.Weather[0].Main
		snapshot.Description = resp.Weather[0].Description
	}
	if resp.Dt > 0 {
		snapshot.ObservedAt = time.Unix(resp.Dt, 0).UTC()
	}

	return domain.WeatherReport{Status: domain.EnrichmentOK, Snapshot: snapshot}
}
