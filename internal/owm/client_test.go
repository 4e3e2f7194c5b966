// Copyright 2025 The Weather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

package owm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSuccess(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"London"}`))
	}))
	defer srv.Close()

	c := NewClient("secret")
	body, err := c.Fetch(context.Background(), srv.URL+"/weather", url.Values{"q": {"London,UK"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"London"}`, string(body))

	assert.Equal(t, "secret", gotQuery.Get("appid"), "API key should be injected")
	assert.Equal(t, "London,UK", gotQuery.Get("q"))
}

func TestFetchDoesNotMutateCallerParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	params := url.Values{"q": {"Paris,FR"}}
	c := NewClient("secret")
	_, err := c.Fetch(context.Background(), srv.URL, params)
	require.NoError(t, err)

	assert.Empty(t, params.Get("appid"), "fingerprint params must never carry the key")
}

func TestFetchMissingAPIKey(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	c := NewClient("")
	assert.False(t, c.Configured())

	_, err := c.Fetch(context.Background(), srv.URL, url.Values{})
	oe, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindConfiguration, oe.Kind)
	assert.Contains(t, oe.Message, "OPENWEATHER_API_KEY")
	assert.Zero(t, calls, "no network call without a key")
}

func TestFetchStatusClassification(t *testing.T) {
	tests := []struct {
		status   int
		wantKind Kind
		wantMsg  string
	}{
		{http.StatusUnauthorized, KindUnauthorized, "Invalid API key"},
		{http.StatusNotFound, KindNotFound, "Location not found"},
		{http.StatusInternalServerError, KindUpstream, "API error: 500"},
		{http.StatusTooManyRequests, KindUpstream, "API error: 429"},
	}

	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))

		c := NewClient("secret")
		_, err := c.Fetch(context.Background(), srv.URL, url.Values{})
		srv.Close()

		oe, ok := AsError(err)
		require.True(t, ok, "status %d", tt.status)
		assert.Equal(t, tt.wantKind, oe.Kind)
		assert.Equal(t, tt.status, oe.Status)
		assert.Equal(t, tt.wantMsg, oe.Message)
	}
}

func TestFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient("secret", WithTimeout(20*time.Millisecond))
	_, err := c.Fetch(context.Background(), srv.URL, url.Values{})

	oe, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindTimeout, oe.Kind)
	assert.Equal(t, "Request timed out", oe.Message)
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	c := NewClient("secret")
	_, err := c.Fetch(context.Background(), srv.URL, url.Values{})

	oe, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindTransport, oe.Kind)
	assert.Contains(t, oe.Message, "Request failed")
}

func TestFetchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := NewClient("secret")
	_, err := c.Fetch(context.Background(), srv.URL, url.Values{})

	oe, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindUpstream, oe.Kind)
}
