// Package remote talks to the external dealership/review and sentiment services.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	dr "dealership_review"

	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 4 << 20 // 4 MB
)

// Options configures a remote client.
type Options struct {
	BaseURL    string
	HTTPClient *http.Client // nil means a client with Timeout
	Timeout    time.Duration
	RateLimit  float64 // requests per second; 0 disables limiting
}

// client issues JSON requests against one base URL. No retries, no caching.
type client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func newClient(opts Options) *client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}

	return &client{
		baseURL:    opts.BaseURL,
		httpClient: httpClient,
		limiter:    limiter,
	}
}

func (c *client) getJSON(ctx context.Context, path string, dst any) error {
	return c.do(ctx, http.MethodGet, path, nil, dst)
}

func (c *client) postJSON(ctx context.Context, path string, body, dst any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, data, dst)
}

// do sends one request and decodes a 2xx JSON body into dst (if non-nil).
// Transport failures, non-2xx statuses and undecodable bodies are reported as
// dr.ErrUpstreamUnavailable, except 404 which is dr.ErrNotFound.
func (c *client) do(ctx context.Context, method, path string, body []byte, dst any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: %s %s: rate limiter: %v", dr.ErrUpstreamUnavailable, method, path, err)
		}
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", dr.ErrUpstreamUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: %s %s: read response: %v", dr.ErrUpstreamUnavailable, method, path, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", dr.ErrNotFound, method, path)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: %s %s: status %d", dr.ErrUpstreamUnavailable, method, path, resp.StatusCode)
	}

	if dst == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %s %s: decode response: %v", dr.ErrUpstreamUnavailable, method, path, err)
	}
	return nil
}
