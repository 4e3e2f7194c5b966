// Weather MCP server over stdio. Connect any MCP client to this binary's
// stdin/stdout; logs go to stderr.
//
// Run:
//
//	OPENWEATHER_API_KEY=... go run ./cmd/weathermcp
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"weathermcp/internal/cache"
	"weathermcp/internal/config"
	"weathermcp/internal/mcpserver"
	"weathermcp/internal/owm"
	"weathermcp/internal/weather"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	cfg := config.FromEnv()

	// No metrics endpoint over stdio; counters live on the HTTP entrypoints.
	svc := weather.NewService(
		owm.NewClient(cfg.APIKey),
		cache.New(cfg.CacheTTL),
		weather.WithLogger(log),
		weather.WithBaseURL(cfg.BaseURL),
		weather.WithGeoURL(cfg.GeoURL),
	)

	srv := mcpserver.New(svc, cfg)
	if err := srv.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Error("server exited", "err", err)
		os.Exit(1)
	}
}
