// Copyright 2025 The Weather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

// Package mcpserver assembles the MCP server: it declares the weather tools
// and resources over a weather.Service. The same *mcp.Server is served over
// stdio or streamable HTTP depending on the entrypoint.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"weathermcp/internal/config"
	"weathermcp/internal/weather"
)

const (
	serverName    = "weather-mcp-server"
	serverVersion = "1.0.0"
)

// New builds the MCP server with all tools and resources registered.
func New(svc *weather.Service, cfg config.Config) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_current_weather",
		Description: "Get current weather conditions for a specific location",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in weather.CurrentWeatherInput) (*mcp.CallToolResult, weather.CurrentWeatherOutput, error) {
		return nil, svc.CurrentWeather(ctx, in), nil
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_forecast",
		Description: "Get 5-day weather forecast with 3-hour intervals",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in weather.ForecastInput) (*mcp.CallToolResult, weather.ForecastOutput, error) {
		return nil, svc.Forecast(ctx, in), nil
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "search_location",
		Description: "Search for a location and get its coordinates",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in weather.SearchLocationInput) (*mcp.CallToolResult, weather.SearchLocationOutput, error) {
		return nil, svc.SearchLocation(ctx, in), nil
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_weather_by_coordinates",
		Description: "Get current weather by latitude and longitude",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in weather.CoordinatesInput) (*mcp.CallToolResult, weather.CoordinatesWeatherOutput, error) {
		return nil, svc.WeatherByCoordinates(ctx, in), nil
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_air_quality",
		Description: "Get air quality index and pollutant components for coordinates",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in weather.AirQualityInput) (*mcp.CallToolResult, weather.AirQualityOutput, error) {
		return nil, svc.AirQuality(ctx, in), nil
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "compare_weather",
		Description: "Compare current weather between multiple locations (2-5 cities)",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in weather.CompareWeatherInput) (*mcp.CallToolResult, weather.CompareWeatherOutput, error) {
		return nil, svc.CompareWeather(ctx, in), nil
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_weather_alerts",
		Description: "Get severe weather alerts for a location",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in weather.WeatherAlertsInput) (*mcp.CallToolResult, weather.WeatherAlertsOutput, error) {
		return nil, svc.WeatherAlerts(ctx, in), nil
	})

	addResources(srv, cfg)

	return srv
}
