package gnews

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/trip-aggregator/internal/config"
	"github.com/trip-aggregator/internal/domain"
	"github.com/trip-aggregator/internal/infrastructure/provider"
)

const maxArticles = 10

// Client - новости по пункту назначения через GNews Search API
type Client struct {
	api *provider.Client
}

// NewGNewsClient создает клиент GNews. BaseURL - полный адрес эндпоинта поиска.
func NewGNewsClient(cfg *config.ProviderConfig, transport http.RoundTripper, logger *zap.Logger) (*Client, error) {
	api, err := provider.NewClient(cfg, transport, logger)
	if err != nil {
		return nil, err
	}
	return &Client{api: api}, nil
}

type searchResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Image       string `json:"image"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// SearchNews никогда не возвращает ошибку. Пустой список при статусе "ok" - легитимный результат.
func (c *Client) SearchNews(ctx context.Context, query string) domain.NewsFeed {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.UnavailableNews("no query given")
	}

	params := url.Values{
		"q":       {query},
		"lang":    {"en"},
		"country": {"ph"},
		"token":   {c.api.APIKey()},
		"max":     {strconv.Itoa(maxArticles)},
	}

	var resp searchResponse
	if err := c.api.GetJSON(ctx, "search_news", c.api.BaseURL(), params, nil, &resp); err != nil {
		return domain.UnavailableNews("news provider error: " + err.Error())
	}

	articles := make([]domain.NewsArticle, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		article := domain.NewsArticle{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			ImageURL:    a.Image,
			Source:      a.Source.Name,
		}
		if ts, err := time.Parse(time.RFC3339, a.PublishedAt); err == nil {
			article.PublishedAt = ts.UTC()
		}
		articles = append(articles, article)
	}

	return domain.NewsFeed{Status: domain.EnrichmentOK, Articles: articles}
}
