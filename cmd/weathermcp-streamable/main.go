// Weather MCP server over streamable HTTP for multiple concurrent clients.
// MCP traffic is served at /mcp; /health and /metrics sit alongside it.
//
// Run:
//
//	OPENWEATHER_API_KEY=... PORT=8000 go run ./cmd/weathermcp-streamable
//
// Then connect any MCP client to http://localhost:8000/mcp.
package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"weathermcp/internal/cache"
	"weathermcp/internal/config"
	"weathermcp/internal/mcpserver"
	"weathermcp/internal/metrics"
	"weathermcp/internal/owm"
	"weathermcp/internal/weather"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	cfg := config.FromEnv()

	reg := prometheus.NewRegistry()
	responseCache := cache.New(cfg.CacheTTL)
	svc := weather.NewService(
		owm.NewClient(cfg.APIKey),
		responseCache,
		weather.WithLogger(log),
		weather.WithMetrics(metrics.New(reg)),
		weather.WithBaseURL(cfg.BaseURL),
		weather.WithGeoURL(cfg.GeoURL),
	)

	srv := mcpserver.New(svc, cfg)
	handler := mcp.NewStreamableHTTPHandler(
		func(*http.Request) *mcp.Server { return srv },
		nil,
	)

	mux := http.NewServeMux()
	mux.Handle("/mcp", handler)
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})

	log.Info("listening", "addr", cfg.Addr())
	if err := http.ListenAndServe(cfg.Addr(), mux); err != nil {
		log.Error("server exited", "err", err)
		os.Exit(1)
	}
}
