// Copyright 2025 The Weather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"weathermcp/internal/config"
)

// ResourceInfo is the JSON body served for the weather:// usage resources.
type ResourceInfo struct {
	Description string `json:"description"`
	Usage       string `json:"usage"`
}

// ServerConfigResource is the config://server resource body.
type ServerConfigResource struct {
	ServerName    string `json:"server_name"`
	APIConfigured bool   `json:"api_configured"`
	BaseURL       string `json:"base_url"`
	CacheTTL      int    `json:"cache_ttl"`
}

func addResources(srv *mcp.Server, cfg config.Config) {
	infos := []struct {
		uri, name, desc string
		body            ResourceInfo
	}{
		{
			uri: "weather://current", name: "Current Weather",
			desc: "Access current weather data for any location",
			body: ResourceInfo{Description: "Current weather resource", Usage: "Use get_current_weather tool"},
		},
		{
			uri: "weather://forecast", name: "Weather Forecast",
			desc: "Get 5-day weather forecast",
			body: ResourceInfo{Description: "Weather forecast resource", Usage: "Use get_forecast tool"},
		},
		{
			uri: "weather://alerts", name: "Weather Alerts",
			desc: "Get severe weather alerts and warnings",
			body: ResourceInfo{Description: "Weather alerts resource", Usage: "Use get_weather_alerts tool with city name or coordinates"},
		},
		{
			uri: "weather://history", name: "Weather History",
			desc: "Historical weather data access",
			body: ResourceInfo{Description: "Historical weather resource", Usage: "Requires paid OpenWeatherMap subscription"},
		},
	}

	for _, info := range infos {
		srv.AddResource(&mcp.Resource{
			URI:         info.uri,
			Name:        info.name,
			MIMEType:    "application/json",
			Description: info.desc,
		}, jsonResourceHandler(info.uri, info.body))
	}

	srv.AddResource(&mcp.Resource{
		URI:         "config://server",
		Name:        "Server Configuration",
		MIMEType:    "application/json",
		Description: "Server configuration and upstream status",
	}, jsonResourceHandler("config://server", ServerConfigResource{
		ServerName:    serverName,
		APIConfigured: cfg.APIKey != "",
		BaseURL:       cfg.BaseURL,
		CacheTTL:      int(cfg.CacheTTL.Seconds()),
	}))
}

func jsonResourceHandler(uri string, body any) mcp.ResourceHandler {
	return func(_ context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(b),
			}},
		}, nil
	}
}
