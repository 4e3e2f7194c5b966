// Copyright 2025 The Weather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

package weather

// Tool inputs. The jsonschema tags feed the MCP tool declarations; the REST
// transport decodes the same structs from request bodies.

// CurrentWeatherInput selects a location for current conditions.
type CurrentWeatherInput struct {
	Location string `json:"location" jsonschema:"city name, state code, and country code (e.g. 'London,UK' or 'New York,NY,US')"`
	Units    string `json:"units,omitempty" jsonschema:"units of measurement: metric (Celsius), imperial (Fahrenheit), or standard (Kelvin); default metric"`
}

// ForecastInput selects a location and horizon for the 5-day forecast.
type ForecastInput struct {
	Location string `json:"location" jsonschema:"city name, state code, and country code"`
	Units    string `json:"units,omitempty" jsonschema:"units of measurement: metric, imperial, or standard; default metric"`
	Days     int    `json:"days,omitempty" jsonschema:"number of days to forecast (1-5, default 5)"`
}

// SearchLocationInput is a geocoding query.
type SearchLocationInput struct {
	Query string `json:"query" jsonschema:"location name to search for"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results (max 10, default 5)"`
}

// CoordinatesInput selects a location by latitude/longitude.
type CoordinatesInput struct {
	Latitude  float64 `json:"latitude" jsonschema:"latitude coordinate"`
	Longitude float64 `json:"longitude" jsonschema:"longitude coordinate"`
	Units     string  `json:"units,omitempty" jsonschema:"units of measurement: metric, imperial, or standard; default metric"`
}

// AirQualityInput selects coordinates for air pollution data.
type AirQualityInput struct {
	Latitude  float64 `json:"latitude" jsonschema:"latitude coordinate"`
	Longitude float64 `json:"longitude" jsonschema:"longitude coordinate"`
}

// CompareWeatherInput lists the cities to compare.
type CompareWeatherInput struct {
	Locations []string `json:"locations" jsonschema:"list of city names to compare (2-5 cities)"`
	Units     string   `json:"units,omitempty" jsonschema:"units of measurement: metric, imperial, or standard; default metric"`
}

// WeatherAlertsInput selects a location for severe weather alerts.
type WeatherAlertsInput struct {
	Location string `json:"location" jsonschema:"city name to check for severe weather alerts"`
}

// Shared output fragments.

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location identifies a resolved place.
type Location struct {
	Name        string       `json:"name"`
	Country     string       `json:"country"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Wind is the current wind vector.
type Wind struct {
	Speed     float64 `json:"speed"`
	Direction int     `json:"direction"`
}

// CurrentConditions is the full current-weather payload.
type CurrentConditions struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	Pressure    int     `json:"pressure"`
	Humidity    int     `json:"humidity"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Wind        Wind    `json:"wind"`
	Clouds      int     `json:"clouds"`
	Visibility  int     `json:"visibility"`
}

// Tool outputs. Every output carries a success flag; failures set Error and
// leave the payload fields empty. Nothing is ever raised to the transport.

// CurrentWeatherOutput is the get_current_weather result.
type CurrentWeatherOutput struct {
	Success   bool               `json:"success"`
	Error     string             `json:"error,omitempty"`
	Location  *Location          `json:"location,omitempty"`
	Current   *CurrentConditions `json:"current,omitempty"`
	Timestamp string             `json:"timestamp,omitempty"`
	Sunrise   string             `json:"sunrise,omitempty"`
	Sunset    string             `json:"sunset,omitempty"`
	Units     string             `json:"units,omitempty"`
	FromCache bool               `json:"from_cache,omitempty"`
}

// ForecastEntry is one 3-hour forecast interval.
type ForecastEntry struct {
	Datetime    string  `json:"datetime"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	Pressure    int     `json:"pressure"`
	Humidity    int     `json:"humidity"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	WindSpeed   float64 `json:"wind_speed"`
	Clouds      int     `json:"clouds"`
	Pop         float64 `json:"pop"`
}

// ForecastOutput is the get_forecast result.
type ForecastOutput struct {
	Success   bool            `json:"success"`
	Error     string          `json:"error,omitempty"`
	Location  *Location       `json:"location,omitempty"`
	Forecast  []ForecastEntry `json:"forecast,omitempty"`
	Units     string          `json:"units,omitempty"`
	FromCache bool            `json:"from_cache,omitempty"`
}

// LocationMatch is one geocoding result.
type LocationMatch struct {
	Name        string            `json:"name"`
	LocalNames  map[string]string `json:"local_names,omitempty"`
	Country     string            `json:"country"`
	State       string            `json:"state,omitempty"`
	Coordinates Coordinates       `json:"coordinates"`
}

// SearchLocationOutput is the search_location result.
type SearchLocationOutput struct {
	Success   bool            `json:"success"`
	Error     string          `json:"error,omitempty"`
	Query     string          `json:"query,omitempty"`
	Results   []LocationMatch `json:"results,omitempty"`
	Count     int             `json:"count"`
	FromCache bool            `json:"from_cache,omitempty"`
}

// CoordinateConditions is the reduced condition set returned by
// get_weather_by_coordinates.
type CoordinateConditions struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	Pressure    int     `json:"pressure"`
	Description string  `json:"description"`
	WindSpeed   float64 `json:"wind_speed"`
	Clouds      int     `json:"clouds"`
}

// CoordinatesWeatherOutput is the get_weather_by_coordinates result.
type CoordinatesWeatherOutput struct {
	Success   bool                  `json:"success"`
	Error     string                `json:"error,omitempty"`
	Location  *Location             `json:"location,omitempty"`
	Current   *CoordinateConditions `json:"current,omitempty"`
	Timestamp string                `json:"timestamp,omitempty"`
	Units     string                `json:"units,omitempty"`
	FromCache bool                  `json:"from_cache,omitempty"`
}

// AirQualityOutput is the get_air_quality result.
type AirQualityOutput struct {
	Success         bool               `json:"success"`
	Error           string             `json:"error,omitempty"`
	Coordinates     *Coordinates       `json:"coordinates,omitempty"`
	AirQualityIndex int                `json:"air_quality_index,omitempty"`
	AQILevel        string             `json:"aqi_level,omitempty"`
	Components      map[string]float64 `json:"components,omitempty"`
	Timestamp       string             `json:"timestamp,omitempty"`
	FromCache       bool               `json:"from_cache,omitempty"`
}

// ComparisonConditions is the per-city condition set in a comparison.
type ComparisonConditions struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	Description string  `json:"description"`
	WindSpeed   float64 `json:"wind_speed"`
}

// ComparisonEntry is one city in a comparison. On success Location and
// Current are set; on failure Query echoes the requested city and Error
// carries the failure message.
type ComparisonEntry struct {
	Location *Location             `json:"location,omitempty"`
	Current  *ComparisonConditions `json:"current,omitempty"`
	Query    string                `json:"query,omitempty"`
	Error    string                `json:"error,omitempty"`
}

// CompareWeatherOutput is the compare_weather result.
type CompareWeatherOutput struct {
	Success        bool              `json:"success"`
	Error          string            `json:"error,omitempty"`
	Locations      []ComparisonEntry `json:"locations,omitempty"`
	Units          string            `json:"units,omitempty"`
	ComparisonTime string            `json:"comparison_time,omitempty"`
}

// WeatherAlertsOutput is the get_weather_alerts result. Alerts require the
// paid One Call API tier, so this is a static advisory.
type WeatherAlertsOutput struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	Alternative  string `json:"alternative"`
	FreeTierNote string `json:"free_tier_note"`
}
