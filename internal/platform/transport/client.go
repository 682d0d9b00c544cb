// Package transport performs the live-path HTTP calls against the upstream
// admin backend. Every failure it reports is a *shared.TransportError, which
// is what the fallback policy treats as "switch to local data".
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/meridian-console/meridian-console/internal/platform/cache"
	"github.com/meridian-console/meridian-console/internal/shared"
)

// Config collects the dependencies for a Client.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	Logger  *slog.Logger
	// Cache, when set, is consulted for list reads only.
	Cache *cache.ResponseCache
}

// Client is the transport capability every live entity client is built on.
type Client struct {
	base   *url.URL
	httpc  *http.Client
	token  string
	logger *slog.Logger
	cache  *cache.ResponseCache
}

// New validates the base URL and builds a Client.
func New(cfg Config) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("transport: parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("transport: base url %q must be absolute", cfg.BaseURL)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		base:   base,
		httpc:  &http.Client{Timeout: timeout},
		token:  cfg.Token,
		logger: logger,
		cache:  cfg.Cache,
	}, nil
}

// Do performs one JSON round trip. A nil out discards the response body.
func (c *Client) Do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	raw, err := c.roundTrip(ctx, method, path, params, body)
	if err != nil {
		return err
	}
	return c.decode(method, path, raw, out)
}

// GetCached performs a GET through the response cache when one is
// configured. Used for list reads, where a short-lived stale page is
// preferable to an extra upstream round trip.
func (c *Client) GetCached(ctx context.Context, path string, params url.Values, out any) error {
	if c.cache == nil {
		return c.Do(ctx, http.MethodGet, path, params, nil, out)
	}
	key := cacheKey(path, params)
	raw, err := c.cache.GetOrFetch(ctx, key, func(ctx context.Context) ([]byte, error) {
		return c.roundTrip(ctx, http.MethodGet, path, params, nil)
	})
	if err != nil {
		return err
	}
	return c.decode(http.MethodGet, path, raw, out)
}

func (c *Client) roundTrip(ctx context.Context, method, path string, params url.Values, body any) ([]byte, error) {
	target := *c.base
	target.Path = strings.TrimRight(target.Path, "/") + path
	if len(params) > 0 {
		target.RawQuery = params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &shared.TransportError{Op: method, Path: path, Kind: shared.KindUnexpected, Err: fmt.Errorf("encode body: %w", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return nil, &shared.TransportError{Op: method, Path: path, Kind: shared.KindUnexpected, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &shared.TransportError{Op: method, Path: path, Kind: shared.KindUnexpected, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &shared.TransportError{Op: method, Path: path, Kind: shared.KindUnexpected, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &shared.TransportError{
			Op:     method,
			Path:   path,
			Status: resp.StatusCode,
			Kind:   shared.ClassifyStatus(resp.StatusCode),
		}
	}
	return raw, nil
}

func (c *Client) decode(method, path string, raw []byte, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &shared.TransportError{Op: method, Path: path, Kind: shared.KindUnexpected, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func cacheKey(path string, params url.Values) string {
	if len(params) == 0 {
		return "live:" + path
	}
	return "live:" + path + "?" + params.Encode()
}
