// Copyright 2025 The Weather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

package httpapi

// toolDescriptor is the wire shape of one entry in GET /mcp/tools. The
// schemas are declared by hand, matching what the MCP transport infers
// from the input structs.
type toolDescriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

var unitsProperty = map[string]any{
	"type":        "string",
	"enum":        []string{"metric", "imperial", "standard"},
	"default":     "metric",
	"description": "Units of measurement",
}

var toolDescriptors = []toolDescriptor{
	{
		Name:        "get_current_weather",
		Description: "Get current weather conditions for a specific location",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"location": map[string]any{
					"type":        "string",
					"description": "City name (e.g., 'London,UK')",
				},
				"units": unitsProperty,
			},
			"required": []string{"location"},
		},
	},
	{
		Name:        "get_forecast",
		Description: "Get 5-day weather forecast",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"location": map[string]any{
					"type":        "string",
					"description": "City name",
				},
				"units": unitsProperty,
				"days": map[string]any{
					"type":    "integer",
					"default": 5,
					"minimum": 1,
					"maximum": 5,
				},
			},
			"required": []string{"location"},
		},
	},
	{
		Name:        "search_location",
		Description: "Search for a location",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "Location name",
				},
				"limit": map[string]any{
					"type":    "integer",
					"default": 5,
					"maximum": 10,
				},
			},
			"required": []string{"query"},
		},
	},
	{
		Name:        "get_weather_by_coordinates",
		Description: "Get weather by coordinates",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"latitude":  map[string]any{"type": "number"},
				"longitude": map[string]any{"type": "number"},
				"units":     unitsProperty,
			},
			"required": []string{"latitude", "longitude"},
		},
	},
	{
		Name:        "get_air_quality",
		Description: "Get air quality data",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"latitude":  map[string]any{"type": "number"},
				"longitude": map[string]any{"type": "number"},
			},
			"required": []string{"latitude", "longitude"},
		},
	},
	{
		Name:        "compare_weather",
		Description: "Compare weather across locations",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"locations": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 2,
					"maxItems": 5,
				},
				"units": unitsProperty,
			},
			"required": []string{"locations"},
		},
	},
	{
		Name:        "get_weather_alerts",
		Description: "Get severe weather alerts for a location",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"location": map[string]any{
					"type":        "string",
					"description": "City name",
				},
			},
			"required": []string{"location"},
		},
	},
}

// resourceDescriptor is one entry in GET /mcp/resources.
type resourceDescriptor struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	MimeType    string `json:"mimeType"`
	Description string `json:"description"`
}

var resourceDescriptors = []resourceDescriptor{
	{URI: "weather://current", Name: "Current Weather", MimeType: "application/json", Description: "Access current weather data for any location"},
	{URI: "weather://forecast", Name: "Weather Forecast", MimeType: "application/json", Description: "Get 5-day weather forecast"},
	{URI: "weather://alerts", Name: "Weather Alerts", MimeType: "application/json", Description: "Get weather alerts"},
}

var resourceBodies = map[string]map[string]string{
	"weather://current": {
		"description": "Current weather resource",
		"usage":       "Use get_current_weather tool",
	},
	"weather://forecast": {
		"description": "Weather forecast resource",
		"usage":       "Use get_forecast tool",
	},
	"weather://alerts": {
		"description": "Weather alerts resource",
		"usage":       "Use get_weather_alerts tool with city name or coordinates",
	},
}
