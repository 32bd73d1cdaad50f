package openrouter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	gocache "github.com/patrickmn/go-cache"

	"github.com/Crashthatch/openroutermodeltable/pkg/constants"
	"github.com/Crashthatch/openroutermodeltable/pkg/errors"
)

// Client talks to the OpenRouter public and frontend APIs.
type Client struct {
	baseURL     string
	frontendURL string
	userAgent   string
	http        *http.Client
	cache       *gocache.Cache
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the public API base URL. Used in tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithFrontendURL overrides the frontend API base URL. Used in tests.
func WithFrontendURL(url string) Option {
	return func(c *Client) { c.frontendURL = url }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithoutCache disables response caching.
func WithoutCache() Option {
	return func(c *Client) { c.cache = nil }
}

// NewClient creates an OpenRouter API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:     constants.DefaultAPIBaseURL,
		frontendURL: constants.DefaultFrontendBaseURL,
		userAgent:   constants.UserAgent,
		http:        &http.Client{Timeout: constants.DefaultHTTPTimeout},
		cache:       gocache.New(constants.CacheTTL, constants.CacheCleanupInterval),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListModels fetches the full model list. Failures here are fatal to a
// generation run, so errors are returned rather than degraded.
func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	body, err := c.get(ctx, c.baseURL+"/models")
	if err != nil {
		return nil, err
	}

	var resp ModelsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.WrapParse("json", c.baseURL+"/models", err)
	}
	return resp.Data, nil
}

// Analytics fetches aggregate per-model token counts, keyed by whatever
// identifier variant the API chose for each model.
func (c *Client) Analytics(ctx context.Context) (map[string]TokenCounts, error) {
	url := c.frontendURL + "/models/analytics"
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Data map[string]TokenCounts `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.WrapParse("json", url, err)
	}
	return resp.Data, nil
}

// get performs a GET request against the API, consulting the response cache
// first. The request carries the client's User-Agent and accepts JSON.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if c.cache != nil {
		if cached, ok := c.cache.Get(url); ok {
			return cached.([]byte), nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "GET "+url, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &errors.APIError{
			Endpoint: url,
			Message:  "request failed",
			Err:      err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &errors.APIError{
			Endpoint:   url,
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errors.APIError{
			Endpoint: url,
			Message:  "failed to read response body",
			Err:      err,
		}
	}

	if c.cache != nil {
		c.cache.Set(url, body, gocache.DefaultExpiration)
	}
	return body, nil
}
