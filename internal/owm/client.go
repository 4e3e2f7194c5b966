// Copyright 2025 The Weather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

// Package owm is the upstream OpenWeatherMap client. It performs the actual
// HTTP calls, injects the API key, and classifies failures into the typed
// taxonomy in errors.go. It knows nothing about caching or tool shapes.
package owm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

// Default endpoint roots for the free-tier APIs.
const (
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
	DefaultGeoURL  = "http://api.openweathermap.org/geo/1.0"
)

// DefaultTimeout is the fixed per-call network timeout. There is no retry
// and no dispatcher-level deadline on top of it.
const DefaultTimeout = 10 * time.Second

// Client fetches JSON documents from the weather provider.
type Client struct {
	apiKey string
	http   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the per-call network timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client entirely.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// NewClient creates an upstream client. An empty apiKey is legal: every
// Fetch will then fail with KindConfiguration until the process is
// restarted with a key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey: apiKey,
		http:   &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Fetch performs a GET against endpoint with params plus the API key and
// returns the raw JSON body. All failures come back as *Error.
func (c *Client) Fetch(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, &Error{
			Kind:    KindConfiguration,
			Message: "API key not configured. Please set OPENWEATHER_API_KEY environment variable.",
		}
	}

	// Copy before injecting the key so the caller's params (and any
	// fingerprint derived from them) never carry the secret.
	q := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: fmt.Sprintf("Request failed: %v", err)}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &Error{Kind: KindTransport, Message: fmt.Sprintf("Request failed: %v", err)}
		}
		if !json.Valid(body) {
			return nil, &Error{
				Kind:    KindUpstream,
				Status:  resp.StatusCode,
				Message: "API error: malformed response body",
			}
		}
		return body, nil
	case http.StatusUnauthorized:
		return nil, &Error{Kind: KindUnauthorized, Status: resp.StatusCode, Message: "Invalid API key"}
	case http.StatusNotFound:
		return nil, &Error{Kind: KindNotFound, Status: resp.StatusCode, Message: "Location not found"}
	default:
		return nil, &Error{
			Kind:    KindUpstream,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("API error: %d", resp.StatusCode),
		}
	}
}

func classifyTransport(err error) *Error {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return &Error{Kind: KindTimeout, Message: "Request timed out"}
	}
	return &Error{Kind: KindTransport, Message: fmt.Sprintf("Request failed: %v", err)}
}
