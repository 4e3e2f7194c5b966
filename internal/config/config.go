// Copyright 2025 The Weather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

// Package config reads process configuration from the environment, once,
// at startup. A missing API key is not an error here: it surfaces as a
// per-request configuration failure so the server stays up and reports the
// problem on every call.
package config

import (
	"os"
	"strconv"
	"time"

	"weathermcp/internal/cache"
	"weathermcp/internal/owm"
)

// Config is the process configuration shared by all entrypoints.
type Config struct {
	APIKey   string
	CacheTTL time.Duration
	Host     string
	Port     int
	BaseURL  string
	GeoURL   string
}

// FromEnv builds a Config from environment variables, applying defaults
// for everything but the API key.
func FromEnv() Config {
	cfg := Config{
		APIKey:   os.Getenv("OPENWEATHER_API_KEY"),
		CacheTTL: cache.DefaultTTL,
		Host:     "0.0.0.0",
		Port:     8000,
		BaseURL:  owm.DefaultBaseURL,
		GeoURL:   owm.DefaultGeoURL,
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.CacheTTL = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			cfg.Port = p
		}
	}
	if v := os.Getenv("OPENWEATHER_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("OPENWEATHER_GEO_URL"); v != "" {
		cfg.GeoURL = v
	}
	return cfg
}

// Addr is the host:port listen address for the HTTP entrypoints.
func (c Config) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
