package tomtom

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-aggregator/internal/config"
	"github.com/trip-aggregator/internal/domain"
)

func newClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewTomTomClient(&config.ProviderConfig{
		Name:    "tomtom",
		APIKey:  "tt_key",
		BaseURL: baseURL,
		Timeout: time.Second,
	}, nil, zap.NewNop())
	require.NoError(t, err)
	return c
}

func TestClient_CalculateRoute(t *testing.T) {
	origin := domain.Coordinate{Lat: 8.4772, Lon: 124.6459}
	dest := domain.Coordinate{Lat: 8.5, Lon: 124.7}

	t.Run("successful request with default options", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/routing/1/calculateRoute/8.477200,124.645900:8.500000,124.700000/json", r.URL.Path)
			q := r.URL.Query()
			assert.Equal(t, "tt_key", q.Get("key"))
			assert.Equal(t, "car", q.Get("travelMode"))
			assert.Equal(t, "true", q.Get("traffic"))
			assert.Equal(t, "now", q.Get("departAt"))
			w.Write([]byte(`{"routes":[{"summary":{"lengthInMeters":12000,"travelTimeInSeconds":1530}}]}`))
		}))
		defer server.Close()

		route, err := newClient(t, server.URL).CalculateRoute(context.Background(), origin, dest, domain.RouteOptions{Traffic: true})
		require.NoError(t, err)
		assert.Equal(t, 12000.0, route.DistanceMeters)
		assert.Equal(t, 1530.0, route.TravelTimeSeconds)
		assert.Equal(t, 12.0, route.DistanceKm())
		assert.Equal(t, "tomtom", route.Source)
	})

	t.Run("custom options", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "bus", r.URL.Query().Get("travelMode"))
			assert.Equal(t, "false", r.URL.Query().Get("traffic"))
			w.Write([]byte(`{"routes":[{"summary":{"lengthInMeters":1,"travelTimeInSeconds":1}}]}`))
		}))
		defer server.Close()

		_, err := newClient(t, server.URL).CalculateRoute(context.Background(), origin, dest,
			domain.RouteOptions{TravelMode: "bus", Traffic: false})
		require.NoError(t, err)
	})

	t.Run("upstream error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		_, err := newClient(t, server.URL).CalculateRoute(context.Background(), origin, dest, domain.DefaultRouteOptions())
		var perr *domain.ProviderError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, http.StatusForbidden, perr.StatusCode)
	})

	t.Run("no routes", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"routes":[]}`))
		}))
		defer server.Close()

		_, err := newClient(t, server.URL).CalculateRoute(context.Background(), origin, dest, domain.DefaultRouteOptions())
		assert.Error(t, err)
	})
}
