// Copyright 2025 The Weather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "")
	t.Setenv("CACHE_TTL", "")
	t.Setenv("HOST", "")
	t.Setenv("PORT", "")

	cfg := FromEnv()
	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, 600*time.Second, cfg.CacheTTL)
	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
	assert.Equal(t, "https://api.openweathermap.org/data/2.5", cfg.BaseURL)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "k")
	t.Setenv("CACHE_TTL", "30")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9100")

	cfg := FromEnv()
	assert.Equal(t, "k", cfg.APIKey)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, "127.0.0.1:9100", cfg.Addr())
}

func TestFromEnvIgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")
	t.Setenv("PORT", "-1")

	cfg := FromEnv()
	assert.Equal(t, 600*time.Second, cfg.CacheTTL)
	assert.Equal(t, 8000, cfg.Port)
}
