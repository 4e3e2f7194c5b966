// Weather MCP server over plain HTTP: a JSON/REST surface mirroring the
// MCP tool and resource listings, plus /health and /metrics.
//
// Run:
//
//	OPENWEATHER_API_KEY=... PORT=8000 go run ./cmd/weathermcp-http
package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"weathermcp/internal/cache"
	"weathermcp/internal/config"
	"weathermcp/internal/httpapi"
	"weathermcp/internal/metrics"
	"weathermcp/internal/owm"
	"weathermcp/internal/weather"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	cfg := config.FromEnv()

	reg := prometheus.NewRegistry()
	svc := weather.NewService(
		owm.NewClient(cfg.APIKey),
		cache.New(cfg.CacheTTL),
		weather.WithLogger(log),
		weather.WithMetrics(metrics.New(reg)),
		weather.WithBaseURL(cfg.BaseURL),
		weather.WithGeoURL(cfg.GeoURL),
	)

	srv := httpapi.New(cfg, svc, reg, log)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server exited", "err", err)
		os.Exit(1)
	}
}
