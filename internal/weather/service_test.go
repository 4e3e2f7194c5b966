// Copyright 2025 The Weather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

package weather

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weathermcp/internal/cache"
	"weathermcp/internal/owm"
)

// londonPayload is the canned /weather body for London,UK.
const londonPayload = `{
	"name": "London",
	"sys": {"country": "GB", "sunrise": 1697440920, "sunset": 1697480100},
	"coord": {"lat": 51.5074, "lon": -0.1278},
	"main": {"temp": 15.5, "feels_like": 14.2, "temp_min": 13.0, "temp_max": 17.0, "pressure": 1013, "humidity": 72},
	"weather": [{"description": "partly cloudy", "icon": "02d"}],
	"wind": {"speed": 5.2, "deg": 230},
	"clouds": {"all": 40},
	"visibility": 10000,
	"dt": 1697450000
}`

const parisForecastPayload = `{
	"city": {"name": "Paris", "country": "FR", "coord": {"lat": 48.8566, "lon": 2.3522}},
	"list": [{
		"dt": 1697450000,
		"main": {"temp": 18.5, "feels_like": 17.8, "temp_min": 17.0, "temp_max": 19.0, "pressure": 1015, "humidity": 65},
		"weather": [{"description": "clear sky", "icon": "01d"}],
		"wind": {"speed": 3.5},
		"clouds": {"all": 10},
		"pop": 0.2
	}]
}`

// fakeUpstream is a call-counting Upstream double. respond decides the
// payload (or error) per request.
type fakeUpstream struct {
	mu      sync.Mutex
	calls   int
	respond func(endpoint string, params url.Values) (json.RawMessage, error)
}

func (f *fakeUpstream) Fetch(_ context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.respond(endpoint, params)
}

func (f *fakeUpstream) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func fixedUpstream(payload string) *fakeUpstream {
	return &fakeUpstream{respond: func(string, url.Values) (json.RawMessage, error) {
		return json.RawMessage(payload), nil
	}}
}

func newTestService(up Upstream) (*Service, *cache.Cache) {
	c := cache.New(10 * time.Minute)
	svc := NewService(up, c, WithBaseURL("https://api.test/data/2.5"), WithGeoURL("http://api.test/geo/1.0"))
	return svc, c
}

func TestCurrentWeatherShaping(t *testing.T) {
	svc, _ := newTestService(fixedUpstream(londonPayload))

	out := svc.CurrentWeather(context.Background(), CurrentWeatherInput{Location: "London,UK"})

	require.True(t, out.Success)
	require.NotNil(t, out.Location)
	assert.Equal(t, "London", out.Location.Name)
	assert.Equal(t, "GB", out.Location.Country)
	assert.InDelta(t, 51.5074, out.Location.Coordinates.Latitude, 1e-9)

	require.NotNil(t, out.Current)
	assert.InDelta(t, 15.5, out.Current.Temperature, 1e-9)
	assert.Equal(t, 72, out.Current.Humidity)
	assert.Equal(t, "partly cloudy", out.Current.Description)
	assert.Equal(t, 230, out.Current.Wind.Direction)

	assert.Equal(t, "metric", out.Units, "units default to metric")
	assert.False(t, out.FromCache)
	assert.True(t, strings.HasPrefix(out.Timestamp, "2023-10-16T"))
}

func TestCurrentWeatherSecondCallServedFromCache(t *testing.T) {
	up := fixedUpstream(londonPayload)
	svc, _ := newTestService(up)
	in := CurrentWeatherInput{Location: "London,UK", Units: "metric"}

	first := svc.CurrentWeather(context.Background(), in)
	second := svc.CurrentWeather(context.Background(), in)

	assert.Equal(t, 1, up.callCount(), "fresh fingerprint must not reach upstream again")
	assert.False(t, first.FromCache)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.Current, second.Current)
}

func TestDistinctArgumentsMissIndependently(t *testing.T) {
	up := fixedUpstream(londonPayload)
	svc, _ := newTestService(up)

	svc.CurrentWeather(context.Background(), CurrentWeatherInput{Location: "London,UK", Units: "metric"})
	svc.CurrentWeather(context.Background(), CurrentWeatherInput{Location: "London,UK", Units: "imperial"})

	assert.Equal(t, 2, up.callCount())
}

func TestUpstreamFailureIsStructuredAndNotCached(t *testing.T) {
	up := &fakeUpstream{respond: func(string, url.Values) (json.RawMessage, error) {
		return nil, &owm.Error{Kind: owm.KindNotFound, Status: 404, Message: "Location not found"}
	}}
	svc, c := newTestService(up)

	out := svc.CurrentWeather(context.Background(), CurrentWeatherInput{Location: "Nowhereville"})
	assert.False(t, out.Success)
	assert.Equal(t, "Location not found", out.Error)
	assert.Nil(t, out.Current)
	assert.Equal(t, 0, c.Len(), "failures must not be cached")

	svc.CurrentWeather(context.Background(), CurrentWeatherInput{Location: "Nowhereville"})
	assert.Equal(t, 2, up.callCount(), "each miss retries upstream exactly once")
}

func TestMissingAPIKeyLeavesCacheEmpty(t *testing.T) {
	client := owm.NewClient("")
	c := cache.New(10 * time.Minute)
	svc := NewService(client, c)

	for range 3 {
		out := svc.CurrentWeather(context.Background(), CurrentWeatherInput{Location: "London,UK"})
		assert.False(t, out.Success)
		assert.Contains(t, out.Error, "API key not configured")
	}
	assert.Equal(t, 0, c.Len())
}

func TestForecastShapingAndDayClamping(t *testing.T) {
	var gotCnt string
	up := &fakeUpstream{respond: func(_ string, params url.Values) (json.RawMessage, error) {
		gotCnt = params.Get("cnt")
		return json.RawMessage(parisForecastPayload), nil
	}}
	svc, _ := newTestService(up)

	out := svc.Forecast(context.Background(), ForecastInput{Location: "Paris,FR", Days: 3})
	require.True(t, out.Success)
	assert.Equal(t, "24", gotCnt, "3 days of 3-hour intervals")
	assert.Equal(t, "Paris", out.Location.Name)
	require.Len(t, out.Forecast, 1)
	assert.InDelta(t, 18.5, out.Forecast[0].Temperature, 1e-9)
	assert.InDelta(t, 0.2, out.Forecast[0].Pop, 1e-9)

	svc.Forecast(context.Background(), ForecastInput{Location: "Paris,FR", Days: 9})
	assert.Equal(t, "40", gotCnt, "days above 5 clamp to 5")

	svc.Forecast(context.Background(), ForecastInput{Location: "Paris,FR"})
	assert.Equal(t, "40", gotCnt, "days defaults to 5")
}

func TestSearchLocation(t *testing.T) {
	var gotEndpoint, gotLimit string
	up := &fakeUpstream{respond: func(endpoint string, params url.Values) (json.RawMessage, error) {
		gotEndpoint = endpoint
		gotLimit = params.Get("limit")
		return json.RawMessage(`[{"name":"Springfield","country":"US","state":"Illinois","lat":39.7817,"lon":-89.6501}]`), nil
	}}
	svc, _ := newTestService(up)

	out := svc.SearchLocation(context.Background(), SearchLocationInput{Query: "Springfield"})
	require.True(t, out.Success)
	assert.Equal(t, "http://api.test/geo/1.0/direct", gotEndpoint)
	assert.Equal(t, "5", gotLimit, "limit defaults to 5")
	assert.Equal(t, 1, out.Count)
	assert.Equal(t, "Springfield", out.Results[0].Name)
	assert.Equal(t, "Illinois", out.Results[0].State)

	svc.SearchLocation(context.Background(), SearchLocationInput{Query: "Springfield", Limit: 25})
	assert.Equal(t, "10", gotLimit, "limit caps at 10")
}

func TestWeatherByCoordinates(t *testing.T) {
	var gotParams url.Values
	up := &fakeUpstream{respond: func(_ string, params url.Values) (json.RawMessage, error) {
		gotParams = params
		return json.RawMessage(londonPayload), nil
	}}
	svc, _ := newTestService(up)

	out := svc.WeatherByCoordinates(context.Background(), CoordinatesInput{Latitude: 51.5074, Longitude: -0.1278})
	require.True(t, out.Success)
	assert.Equal(t, "51.5074", gotParams.Get("lat"))
	assert.Equal(t, "-0.1278", gotParams.Get("lon"))
	assert.InDelta(t, 15.5, out.Current.Temperature, 1e-9)
	assert.InDelta(t, 51.5074, out.Location.Coordinates.Latitude, 1e-9)
}

func TestAirQuality(t *testing.T) {
	payload := `{"list":[{"dt":1697450000,"main":{"aqi":2},"components":{"co":201.94,"no2":0.77,"pm2_5":0.5}}]}`
	svc, _ := newTestService(fixedUpstream(payload))

	out := svc.AirQuality(context.Background(), AirQualityInput{Latitude: 51.5, Longitude: -0.12})
	require.True(t, out.Success)
	assert.Equal(t, 2, out.AirQualityIndex)
	assert.Equal(t, "Fair", out.AQILevel)
	assert.InDelta(t, 201.94, out.Components["co"], 1e-9)
}

func TestAirQualityUnknownIndex(t *testing.T) {
	svc, _ := newTestService(fixedUpstream(`{"list":[{"dt":1,"main":{"aqi":9},"components":{}}]}`))

	out := svc.AirQuality(context.Background(), AirQualityInput{})
	assert.Equal(t, "Unknown", out.AQILevel)
}

func TestCompareWeatherRejectsBadCardinality(t *testing.T) {
	up := fixedUpstream(londonPayload)
	svc, c := newTestService(up)

	one := svc.CompareWeather(context.Background(), CompareWeatherInput{Locations: []string{"London,UK"}})
	assert.False(t, one.Success)
	assert.Contains(t, one.Error, "at least 2")

	six := svc.CompareWeather(context.Background(), CompareWeatherInput{
		Locations: []string{"a", "b", "c", "d", "e", "f"},
	})
	assert.False(t, six.Success)
	assert.Contains(t, six.Error, "Maximum 5")

	assert.Zero(t, up.callCount(), "rejected before any upstream call")
	assert.Equal(t, 0, c.Len())
}

func TestCompareWeatherIsolatesPerCityFailures(t *testing.T) {
	up := &fakeUpstream{respond: func(_ string, params url.Values) (json.RawMessage, error) {
		if params.Get("q") == "Atlantis" {
			return nil, &owm.Error{Kind: owm.KindNotFound, Status: 404, Message: "Location not found"}
		}
		return json.RawMessage(londonPayload), nil
	}}
	svc, _ := newTestService(up)

	out := svc.CompareWeather(context.Background(), CompareWeatherInput{
		Locations: []string{"London,UK", "Atlantis"},
	})
	require.True(t, out.Success, "overall comparison succeeds despite a bad city")
	require.Len(t, out.Locations, 2)

	ok, bad := out.Locations[0], out.Locations[1]
	require.NotNil(t, ok.Location)
	assert.Equal(t, "London", ok.Location.Name)
	assert.InDelta(t, 15.5, ok.Current.Temperature, 1e-9)

	assert.Equal(t, "Atlantis", bad.Query)
	assert.Equal(t, "Location not found", bad.Error)
	assert.Nil(t, bad.Current)
}

func TestWeatherAlertsStub(t *testing.T) {
	svc, _ := newTestService(fixedUpstream(londonPayload))

	out := svc.WeatherAlerts(context.Background(), WeatherAlertsInput{Location: "London,UK"})
	assert.True(t, out.Success)
	assert.Contains(t, strings.ToLower(out.Message), "paid tier")
}
