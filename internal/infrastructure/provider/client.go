// Package provider holds the HTTP plumbing shared by the external API clients.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/trip-aggregator/internal/config"
	"github.com/trip-aggregator/internal/domain"
	"github.com/trip-aggregator/internal/pkg/telemetry"
)

const (
	defaultTimeout = 5 * time.Second
	// maxErrorBody limits how much of an upstream error payload ends up in logs
	maxErrorBody = 512
)

// Client - базовый HTTP клиент внешнего API
type Client struct {
	name       string
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient validates the provider config and builds an http.Client with its own timeout.
// A nil transport falls back to http.DefaultTransport; either way it is wrapped for APM.
func NewClient(cfg *config.ProviderConfig, transport http.RoundTripper, logger *zap.Logger) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("provider config is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s: api key is not configured", cfg.Name)
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%s: base url is not configured", cfg.Name)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		name:    cfg.Name,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: telemetry.Transport(transport),
		},
		logger: logger.With(zap.String("provider", cfg.Name)),
	}, nil
}

func (c *Client) Name() string        { return c.name }
func (c *Client) BaseURL() string     { return c.baseURL }
func (c *Client) APIKey() string      { return c.apiKey }
func (c *Client) Logger() *zap.Logger { return c.logger }

// GetJSON performs a GET and decodes a 200 response into out.
// Every failure is returned as *domain.ProviderError; the upstream body is logged, never returned.
func (c *Client) GetJSON(
	ctx context.Context,
	operation string,
	endpoint string,
	query url.Values,
	header http.Header,
	out interface{},
) error {
	rawURL := endpoint
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}

	c.logger.Debug("Calling provider API",
		zap.String("operation", operation),
		zap.String("endpoint", endpoint))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return c.fail(operation, 0, "failed to create request", err)
	}
	req.Header.Set("Accept", "application/json")
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return c.fail(operation, 0, "request cancelled", ctxErr)
		}
		return c.fail(operation, 0, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Warn("Provider API returned error",
			zap.String("operation", operation),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return &domain.ProviderError{
			Provider:   c.name,
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return c.fail(operation, resp.StatusCode, "malformed response", err)
	}

	return nil
}

func (c *Client) fail(operation string, status int, message string, err error) error {
	c.logger.Warn("Provider call failed",
		zap.String("operation", operation),
		zap.Int("status_code", status),
		zap.String("reason", message),
		zap.Error(err))
	return &domain.ProviderError{
		Provider:   c.name,
		Operation:  operation,
		StatusCode: status,
		Message:    message,
		Err:        err,
	}
}
