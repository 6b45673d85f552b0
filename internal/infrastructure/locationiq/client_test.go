package locationiq

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
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
	c, err := NewLocationIQClient(&config.ProviderConfig{
		Name:    "locationiq",
		APIKey:  "test_key",
		BaseURL: baseURL,
		Timeout: time.Second,
	}, nil, zap.NewNop())
	require.NoError(t, err)
	return c
}

func TestClient_Geocode(t *testing.T) {
	t.Run("first match", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search", r.URL.Path)
			assert.Equal(t, "test_key", r.URL.Query().Get("key"))
			assert.Equal(t, "Divisoria, Cagayan de Oro", r.URL.Query().Get("q"))
			assert.Equal(t, "json", r.URL.Query().Get("format"))
			w.Write([]byte(`[
				{"lat": "8.4772", "lon": "124.6459", "display_name": "Divisoria, Cagayan de Oro"},
				{"lat": "1", "lon": "2", "display_name": "other"}
			]`))
		}))
		defer server.Close()

		result, err := newClient(t, server.URL).Geocode(context.Background(), "Divisoria, Cagayan de Oro")
		require.NoError(t, err)
		assert.InDelta(t, 8.4772, result.Coordinate.Lat, 1e-9)
		assert.InDelta(t, 124.6459, result.Coordinate.Lon, 1e-9)
		assert.Equal(t, "Divisoria, Cagayan de Oro", result.DisplayName)
	})

	t.Run("empty address makes no call", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
		}))
		defer server.Close()

		_, err := newClient(t, server.URL).Geocode(context.Background(), "   ")
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		assert.Zero(t, atomic.LoadInt32(&calls))
	})

	t.Run("empty array is not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		_, err := newClient(t, server.URL).Geocode(context.Background(), "nowhere")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("404 is not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"Unable to geocode"}`))
		}))
		defer server.Close()

		_, err := newClient(t, server.URL).Geocode(context.Background(), "nowhere")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("server error is provider error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		_, err := newClient(t, server.URL).Geocode(context.Background(), "CDO")
		var perr *domain.ProviderError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, http.StatusTooManyRequests, perr.StatusCode)
	})

	t.Run("unparsable coordinates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"lat": "north", "lon": "124.6", "display_name": "x"}]`))
		}))
		defer server.Close()

		_, err := newClient(t, server.URL).Geocode(context.Background(), "CDO")
		var perr *domain.ProviderError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "geocode", perr.Operation)
	})
}

func TestClient_GetDirections(t *testing.T) {
	origin := domain.Coordinate{Lat: 8.4772, Lon: 124.6459}
	dest := domain.Coordinate{Lat: 8.8046, Lon: 124.7797}

	t.Run("first route", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/directions/driving/124.645900,8.477200;124.779700,8.804600", r.URL.Path)
			assert.Equal(t, "test_key", r.URL.Query().Get("key"))
			w.Write([]byte(`{"code":"Ok","routes":[{"distance":41250.5,"duration":3120},{"distance":1,"duration":1}]}`))
		}))
		defer server.Close()

		route, err := newClient(t, server.URL).GetDirections(context.Background(), origin, dest)
		require.NoError(t, err)
		assert.Equal(t, 41250.5, route.DistanceMeters)
		assert.Equal(t, 3120.0, route.TravelTimeSeconds)
		assert.Equal(t, "locationiq", route.Source)
	})

	t.Run("no routes", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
		}))
		defer server.Close()

		_, err := newClient(t, server.URL).GetDirections(context.Background(), origin, dest)
		var perr *domain.ProviderError
		assert.True(t, errors.As(err, &perr))
	})
}
