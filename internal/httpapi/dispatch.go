// Copyright 2025 The Weather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

package httpapi

import (
	"context"
	"encoding/json"
	"fmt"

	"weathermcp/internal/weather"
)

// dispatch routes a named tool call to the service. An unknown tool or a
// malformed argument body is a request error; tool-level failures (bad
// location, missing key) come back inside the result with success=false.
func (h *handlers) dispatch(ctx context.Context, tool string, args json.RawMessage) (any, error) {
	decode := func(in any) error {
		if err := json.Unmarshal(args, in); err != nil {
			return fmt.Errorf("invalid arguments for %s: %w", tool, err)
		}
		return nil
	}

	switch tool {
	case "get_current_weather":
		var in weather.CurrentWeatherInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return h.svc.CurrentWeather(ctx, in), nil
	case "get_forecast":
		var in weather.ForecastInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return h.svc.Forecast(ctx, in), nil
	case "search_location":
		var in weather.SearchLocationInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return h.svc.SearchLocation(ctx, in), nil
	case "get_weather_by_coordinates":
		var in weather.CoordinatesInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return h.svc.WeatherByCoordinates(ctx, in), nil
	case "get_air_quality":
		var in weather.AirQualityInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return h.svc.AirQuality(ctx, in), nil
	case "compare_weather":
		var in weather.CompareWeatherInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return h.svc.CompareWeather(ctx, in), nil
	case "get_weather_alerts":
		var in weather.WeatherAlertsInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return h.svc.WeatherAlerts(ctx, in), nil
	default:
		return nil, fmt.Errorf("Unknown tool: %s", tool)
	}
}
