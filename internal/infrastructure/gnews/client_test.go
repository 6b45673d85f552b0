package gnews

import (
	"context"
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
	c, err := NewGNewsClient(&config.ProviderConfig{
		Name:    "gnews",
		APIKey:  "gn_token",
		BaseURL: baseURL,
		Timeout: time.Second,
	}, nil, zap.NewNop())
	require.NoError(t, err)
	return c
}

func TestClient_SearchNews(t *testing.T) {
	t.Run("articles", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "Balingasag", q.Get("q"))
			assert.Equal(t, "en", q.Get("lang"))
			assert.Equal(t, "ph", q.Get("country"))
			assert.Equal(t, "gn_token", q.Get("token"))
			assert.Equal(t, "10", q.Get("max"))
			w.Write([]byte(`{"totalArticles":1,"articles":[{
				"title":"Road works in Balingasag",
				"description":"Lane closures",
				"url":"https://news.example/1",
				"image":"https://news.example/1.jpg",
				"publishedAt":"2024-05-01T08:00:00Z",
				"source":{"name":"Mindanao Daily"}
			}]}`))
		}))
		defer server.Close()

		feed := newClient(t, server.URL).SearchNews(context.Background(), "Balingasag")
		require.Equal(t, domain.EnrichmentOK, feed.Status)
		require.Len(t, feed.Articles, 1)
		assert.Equal(t, "Road works in Balingasag", feed.Articles[0].Title)
		assert.Equal(t, "Mindanao Daily", feed.Articles[0].Source)
		assert.Equal(t, time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC), feed.Articles[0].PublishedAt)
	})

	t.Run("no articles is ok and not nil", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"totalArticles":0,"articles":[]}`))
		}))
		defer server.Close()

		feed := newClient(t, server.URL).SearchNews(context.Background(), "Claveria")
		assert.Equal(t, domain.EnrichmentOK, feed.Status)
		assert.NotNil(t, feed.Articles)
		assert.Empty(t, feed.Articles)
	})

	t.Run("provider failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		feed := newClient(t, server.URL).SearchNews(context.Background(), "Claveria")
		assert.Equal(t, domain.EnrichmentUnavailable, feed.Status)
		assert.NotNil(t, feed.Articles)
	})
}
