// Copyright 2025 The Weather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

package weather

import (
	"time"

	"weathermcp/internal/owm"
)

// Shaping is pure field extraction from decoded provider documents into the
// tool output types. No errors here: malformed bodies are rejected before a
// document reaches these functions, and absent fields decode to zero values
// just as the original tolerated missing keys.

var aqiLevels = map[int]string{
	1: "Good",
	2: "Fair",
	3: "Moderate",
	4: "Poor",
	5: "Very Poor",
}

func isoTime(unix int64) string {
	return time.Unix(unix, 0).UTC().Format(time.RFC3339)
}

func description(weather []struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}) (string, string) {
	if len(weather) == 0 {
		return "", ""
	}
	return weather[0].Description, weather[0].Icon
}

func shapeCurrentWeather(doc owm.CurrentDocument, units string, fromCache bool) CurrentWeatherOutput {
	desc, icon := description(doc.Weather)
	return CurrentWeatherOutput{
		Success: true,
		Location: &Location{
			Name:    doc.Name,
			Country: doc.Sys.Country,
			Coordinates: &Coordinates{
				Latitude:  doc.Coord.Lat,
				Longitude: doc.Coord.Lon,
			},
		},
		Current: &CurrentConditions{
			Temperature: doc.Main.Temp,
			FeelsLike:   doc.Main.FeelsLike,
			TempMin:     doc.Main.TempMin,
			TempMax:     doc.Main.TempMax,
			Pressure:    doc.Main.Pressure,
			Humidity:    doc.Main.Humidity,
			Description: desc,
			Icon:        icon,
			Wind: Wind{
				Speed:     doc.Wind.Speed,
				Direction: doc.Wind.Deg,
			},
			Clouds:     doc.Clouds.All,
			Visibility: doc.Visibility,
		},
		Timestamp: isoTime(doc.Dt),
		Sunrise:   isoTime(doc.Sys.Sunrise),
		Sunset:    isoTime(doc.Sys.Sunset),
		Units:     units,
		FromCache: fromCache,
	}
}

func shapeForecast(doc owm.ForecastDocument, units string, fromCache bool) ForecastOutput {
	entries := make([]ForecastEntry, 0, len(doc.List))
	for _, item := range doc.List {
		desc, icon := description(item.Weather)
		entries = append(entries, ForecastEntry{
			Datetime:    isoTime(item.Dt),
			Temperature: item.Main.Temp,
			FeelsLike:   item.Main.FeelsLike,
			TempMin:     item.Main.TempMin,
			TempMax:     item.Main.TempMax,
			Pressure:    item.Main.Pressure,
			Humidity:    item.Main.Humidity,
			Description: desc,
			Icon:        icon,
			WindSpeed:   item.Wind.Speed,
			Clouds:      item.Clouds.All,
			Pop:         item.Pop,
		})
	}
	return ForecastOutput{
		Success: true,
		Location: &Location{
			Name:    doc.City.Name,
			Country: doc.City.Country,
			Coordinates: &Coordinates{
				Latitude:  doc.City.Coord.Lat,
				Longitude: doc.City.Coord.Lon,
			},
		},
		Forecast:  entries,
		Units:     units,
		FromCache: fromCache,
	}
}

func shapeSearchLocation(query string, docs []owm.GeoDocument, fromCache bool) SearchLocationOutput {
	matches := make([]LocationMatch, 0, len(docs))
	for _, d := range docs {
		matches = append(matches, LocationMatch{
			Name:       d.Name,
			LocalNames: d.LocalNames,
			Country:    d.Country,
			State:      d.State,
			Coordinates: Coordinates{
				Latitude:  d.Lat,
				Longitude: d.Lon,
			},
		})
	}
	return SearchLocationOutput{
		Success:   true,
		Query:     query,
		Results:   matches,
		Count:     len(matches),
		FromCache: fromCache,
	}
}

func shapeCoordinatesWeather(doc owm.CurrentDocument, lat, lon float64, units string, fromCache bool) CoordinatesWeatherOutput {
	desc, _ := description(doc.Weather)
	return CoordinatesWeatherOutput{
		Success: true,
		Location: &Location{
			Name:    doc.Name,
			Country: doc.Sys.Country,
			Coordinates: &Coordinates{
				Latitude:  lat,
				Longitude: lon,
			},
		},
		Current: &CoordinateConditions{
			Temperature: doc.Main.Temp,
			FeelsLike:   doc.Main.FeelsLike,
			Humidity:    doc.Main.Humidity,
			Pressure:    doc.Main.Pressure,
			Description: desc,
			WindSpeed:   doc.Wind.Speed,
			Clouds:      doc.Clouds.All,
		},
		Timestamp: isoTime(doc.Dt),
		Units:     units,
		FromCache: fromCache,
	}
}

func shapeAirQuality(doc owm.AirPollutionDocument, lat, lon float64, fromCache bool) AirQualityOutput {
	out := AirQualityOutput{
		Success: true,
		Coordinates: &Coordinates{
			Latitude:  lat,
			Longitude: lon,
		},
		AQILevel:  "Unknown",
		FromCache: fromCache,
	}
	if len(doc.List) > 0 {
		sample := doc.List[0]
		out.AirQualityIndex = sample.Main.AQI
		if level, ok := aqiLevels[sample.Main.AQI]; ok {
			out.AQILevel = level
		}
		out.Components = sample.Components
		out.Timestamp = isoTime(sample.Dt)
	}
	return out
}

func shapeComparison(doc owm.CurrentDocument) ComparisonEntry {
	desc, _ := description(doc.Weather)
	return ComparisonEntry{
		Location: &Location{
			Name:    doc.Name,
			Country: doc.Sys.Country,
		},
		Current: &ComparisonConditions{
			Temperature: doc.Main.Temp,
			FeelsLike:   doc.Main.FeelsLike,
			Humidity:    doc.Main.Humidity,
			Description: desc,
			WindSpeed:   doc.Wind.Speed,
		},
	}
}
