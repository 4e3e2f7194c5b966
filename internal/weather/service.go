// Copyright 2025 The Weather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

// Package weather is the request dispatcher: it builds the upstream
// endpoint and query parameters for each logical operation, consults the
// shared response cache, delegates misses to the upstream client, and
// shapes provider JSON into tool outputs. All failures are converted to
// structured results at this boundary.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"weathermcp/internal/cache"
	"weathermcp/internal/metrics"
	"weathermcp/internal/owm"
)

const (
	defaultUnits    = "metric"
	maxForecastDays = 5
	maxSearchLimit  = 10
	minCompare      = 2
	maxCompare      = 5
)

// Upstream is the collaborator contract for the provider client.
type Upstream interface {
	Fetch(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error)
}

// Service dispatches weather operations. Construct one per process and
// share it across transports; it holds no per-request state.
type Service struct {
	upstream Upstream
	cache    *cache.Cache
	metrics  *metrics.Metrics
	log      *slog.Logger
	baseURL  string
	geoURL   string
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithMetrics attaches Prometheus counters.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithBaseURL overrides the data API root (tests, proxies).
func WithBaseURL(u string) Option {
	return func(s *Service) { s.baseURL = u }
}

// WithGeoURL overrides the geocoding API root.
func WithGeoURL(u string) Option {
	return func(s *Service) { s.geoURL = u }
}

// NewService creates a dispatcher over the given upstream client and cache.
func NewService(upstream Upstream, c *cache.Cache, opts ...Option) *Service {
	s := &Service{
		upstream: upstream,
		cache:    c,
		log:      slog.Default(),
		baseURL:  owm.DefaultBaseURL,
		geoURL:   owm.DefaultGeoURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cache exposes the shared cache (the REST health endpoint reports its size).
func (s *Service) Cache() *cache.Cache {
	return s.cache
}

// fetch resolves one upstream request through the cache. On a hit the
// cached payload is returned with fromCache set; on a miss exactly one
// upstream call is made and, only on success, the raw payload is stored.
// Failures are never cached.
func (s *Service) fetch(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, bool, error) {
	key := cache.Key(endpoint, params)
	if payload, ok := s.cache.Get(key); ok {
		s.metrics.Hit()
		s.log.Debug("cache hit", "endpoint", endpoint)
		return payload, true, nil
	}
	s.metrics.Miss()

	payload, err := s.upstream.Fetch(ctx, endpoint, params)
	if err != nil {
		if oe, ok := owm.AsError(err); ok {
			s.metrics.Upstream(string(oe.Kind))
		} else {
			s.metrics.Upstream(string(owm.KindUpstream))
		}
		s.log.Warn("upstream fetch failed", "endpoint", endpoint, "err", err)
		return nil, false, err
	}
	s.metrics.Upstream("success")
	s.cache.Put(key, payload)
	return payload, false, nil
}

// failureMessage converts an upstream error into the human-readable string
// surfaced on tool outputs.
func failureMessage(err error) string {
	if oe, ok := owm.AsError(err); ok {
		return oe.Message
	}
	return fmt.Sprintf("Unexpected error: %v", err)
}

func normalizeUnits(units string) string {
	if units == "" {
		return defaultUnits
	}
	return units
}

// CurrentWeather returns current conditions for a named location.
func (s *Service) CurrentWeather(ctx context.Context, in CurrentWeatherInput) CurrentWeatherOutput {
	s.metrics.Tool("get_current_weather")
	units := normalizeUnits(in.Units)

	params := url.Values{}
	params.Set("q", in.Location)
	params.Set("units", units)

	raw, fromCache, err := s.fetch(ctx, s.baseURL+"/weather", params)
	if err != nil {
		return CurrentWeatherOutput{Error: failureMessage(err)}
	}

	var doc owm.CurrentDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return CurrentWeatherOutput{Error: fmt.Sprintf("Unexpected error: %v", err)}
	}
	return shapeCurrentWeather(doc, units, fromCache)
}

// Forecast returns the 3-hour-interval forecast for up to five days.
func (s *Service) Forecast(ctx context.Context, in ForecastInput) ForecastOutput {
	s.metrics.Tool("get_forecast")
	units := normalizeUnits(in.Units)

	days := in.Days
	if days <= 0 || days > maxForecastDays {
		days = maxForecastDays
	}

	params := url.Values{}
	params.Set("q", in.Location)
	params.Set("units", units)
	params.Set("cnt", strconv.Itoa(days*8)) // 8 intervals per day

	raw, fromCache, err := s.fetch(ctx, s.baseURL+"/forecast", params)
	if err != nil {
		return ForecastOutput{Error: failureMessage(err)}
	}

	var doc owm.ForecastDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ForecastOutput{Error: fmt.Sprintf("Unexpected error: %v", err)}
	}
	return shapeForecast(doc, units, fromCache)
}

// SearchLocation resolves a free-form place name via geocoding.
func (s *Service) SearchLocation(ctx context.Context, in SearchLocationInput) SearchLocationOutput {
	s.metrics.Tool("search_location")

	limit := in.Limit
	if limit <= 0 {
		limit = 5
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	params := url.Values{}
	params.Set("q", in.Query)
	params.Set("limit", strconv.Itoa(limit))

	raw, fromCache, err := s.fetch(ctx, s.geoURL+"/direct", params)
	if err != nil {
		return SearchLocationOutput{Error: failureMessage(err)}
	}

	var docs []owm.GeoDocument
	if err := json.Unmarshal(raw, &docs); err != nil {
		return SearchLocationOutput{Error: fmt.Sprintf("Unexpected error: %v", err)}
	}
	return shapeSearchLocation(in.Query, docs, fromCache)
}

// WeatherByCoordinates returns current conditions for a lat/lon pair.
func (s *Service) WeatherByCoordinates(ctx context.Context, in CoordinatesInput) CoordinatesWeatherOutput {
	s.metrics.Tool("get_weather_by_coordinates")
	units := normalizeUnits(in.Units)

	params := url.Values{}
	params.Set("lat", formatCoord(in.Latitude))
	params.Set("lon", formatCoord(in.Longitude))
	params.Set("units", units)

	raw, fromCache, err := s.fetch(ctx, s.baseURL+"/weather", params)
	if err != nil {
		return CoordinatesWeatherOutput{Error: failureMessage(err)}
	}

	var doc owm.CurrentDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return CoordinatesWeatherOutput{Error: fmt.Sprintf("Unexpected error: %v", err)}
	}
	return shapeCoordinatesWeather(doc, in.Latitude, in.Longitude, units, fromCache)
}

// AirQuality returns the pollution index and component concentrations.
func (s *Service) AirQuality(ctx context.Context, in AirQualityInput) AirQualityOutput {
	s.metrics.Tool("get_air_quality")

	params := url.Values{}
	params.Set("lat", formatCoord(in.Latitude))
	params.Set("lon", formatCoord(in.Longitude))

	raw, fromCache, err := s.fetch(ctx, s.baseURL+"/air_pollution", params)
	if err != nil {
		return AirQualityOutput{Error: failureMessage(err)}
	}

	var doc owm.AirPollutionDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return AirQualityOutput{Error: fmt.Sprintf("Unexpected error: %v", err)}
	}
	return shapeAirQuality(doc, in.Latitude, in.Longitude, fromCache)
}

// CompareWeather fetches current conditions for 2-5 cities. The size check
// runs before any upstream call; per-city failures are isolated into their
// entry so one bad name does not fail the comparison.
func (s *Service) CompareWeather(ctx context.Context, in CompareWeatherInput) CompareWeatherOutput {
	s.metrics.Tool("compare_weather")

	if len(in.Locations) < minCompare {
		return CompareWeatherOutput{Error: "Please provide at least 2 locations to compare"}
	}
	if len(in.Locations) > maxCompare {
		return CompareWeatherOutput{Error: "Maximum 5 locations allowed for comparison"}
	}
	units := normalizeUnits(in.Units)

	entries := make([]ComparisonEntry, len(in.Locations))
	g, gctx := errgroup.WithContext(ctx)
	for i, loc := range in.Locations {
		g.Go(func() error {
			entries[i] = s.compareOne(gctx, loc, units)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures live in the entries

	return CompareWeatherOutput{
		Success:        true,
		Locations:      entries,
		Units:          units,
		ComparisonTime: time.Now().UTC().Format(time.RFC3339),
	}
}

func (s *Service) compareOne(ctx context.Context, location, units string) ComparisonEntry {
	params := url.Values{}
	params.Set("q", location)
	params.Set("units", units)

	raw, _, err := s.fetch(ctx, s.baseURL+"/weather", params)
	if err != nil {
		return ComparisonEntry{Query: location, Error: failureMessage(err)}
	}

	var doc owm.CurrentDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ComparisonEntry{Query: location, Error: fmt.Sprintf("Unexpected error: %v", err)}
	}
	return shapeComparison(doc)
}

// WeatherAlerts is a free-tier stub: severe weather alerts need the paid
// One Call API 3.0, so this reports the limitation instead of fetching.
func (s *Service) WeatherAlerts(_ context.Context, _ WeatherAlertsInput) WeatherAlertsOutput {
	s.metrics.Tool("get_weather_alerts")
	return WeatherAlertsOutput{
		Success:      true,
		Message:      "Weather alerts require OpenWeatherMap One Call API 3.0 (paid tier)",
		Alternative:  "Use get_current_weather to check current conditions",
		FreeTierNote: "Free tier does not include severe weather alerts",
	}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
