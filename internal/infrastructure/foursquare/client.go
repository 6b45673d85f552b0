package foursquare

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

// Client - поиск мест рядом с точкой через Foursquare Places API
type Client struct {
	api *provider.Client
}

// NewFoursquareClient создает клиент Foursquare
func NewFoursquareClient(cfg *config.ProviderConfig, transport http.RoundTripper, logger *zap.Logger) (*Client, error) {
	api, err := provider.NewClient(cfg, transport, logger)
	if err != nil {
		return nil, err
	}
	return &Client{api: api}, nil
}

type searchResponse struct {
	Results []struct {
		FsqID      string  `json:"fsq_id"`
		Name       string  `json:"name"`
		Distance   float64 `json:"distance"`
		Categories []struct {
			Name string `json:"name"`
		} `json:"categories"`
		Location struct {
			FormattedAddress string `json:"formatted_address"`
		} `json:"location"`
		Geocodes struct {
			Main struct {
				Latitude  float64 `json:"latitude"`
				Longitude float64 `json:"longitude"`
			} `json:"main"`
		} `json:"geocodes"`
	} `json:"results"`
}

// NearbyPlaces ограничивает radius и limit допустимыми значениями и никогда не возвращает ошибку
func (c *Client) NearbyPlaces(ctx context.Context, q domain.PlacesQuery) domain.NearbyPlaces {
	q = q.Clamped()

	params := url.Values{
		"ll":     {fmt.Sprintf("%f,%f", q.Center.Lat, q.Center.Lon)},
		"radius": {strconv.Itoa(q.RadiusM)},
		"limit":  {strconv.Itoa(q.Limit)},
	}
	if q.Query != "" {
		params.Set("query", q.Query)
	}

	header := http.Header{"Authorization": {c.api.APIKey()}}

	var resp searchResponse
	if err := c.api.GetJSON(ctx, "search_places", c.api.BaseURL()+"/search", params, header, &resp); err != nil {
		return domain.UnavailablePlaces("places provider error: " + err.Error())
	}

	places := make([]domain.Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		categories := make([]string, 0, len(r.Categories))
		for _, cat := range r.Categories {
			categories = append(categories, cat.Name)
		}
		places = append(places, domain.Place{
			ID:         r.FsqID,
			Name:       r.Name,
			Categories: categories,
			Address:    r.Location.FormattedAddress,
			DistanceM:  r.Distance,
			Coordinate: domain.Coordinate{
				Lat: r.Geocodes.Main.Latitude,
				Lon: r.Geocodes.Main.Longitude,
			},
		})
	}

	return domain.NearbyPlaces{Status: domain.EnrichmentOK, Places: places}
}
