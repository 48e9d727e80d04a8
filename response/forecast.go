package response

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/devskill-org/openweathermap/weather"
)

// Forecast maps the 5 day / 3 hour forecast
func Forecast(data []byte, units weather.UnitSystem) (*weather.Forecast, error) {
	return forecast("forecast", data, units)
}

// HourlyForecast maps the hourly forecast; it shares the 5 day / 3 hour layout with 1h levels
func HourlyForecast(data []byte, units weather.UnitSystem) (*weather.Forecast, error) {
	return forecast("hourly forecast", data, units)
}

func forecast(endpoint string, data []byte, units weather.UnitSystem) (*weather.Forecast, error) {
	var body forecastJSON
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, parseError(endpoint, err)
	}
	if body.List == nil {
		return nil, parseError(endpoint, missing("list"))
	}

	// the city node is parsed once and shared by every entry
	city, err := extractCity(body.City)
	if err != nil {
		return nil, parseError(endpoint, err)
	}

	result := &weather.Forecast{
		Location: city,
		Entries:  make([]weather.ForecastEntry, 0, len(body.List)),
		Units:    units,
	}
	for i := range body.List {
		entry, err := assembleForecastEntry(&body.List[i], city, units)
		if err != nil {
			return nil, parseError(endpoint, at(fmt.Sprintf("list[%d]", i), err))
		}
		result.Entries = append(result.Entries, entry)
	}
	return result, nil
}

func assembleForecastEntry(node *forecastEntryJSON, city weather.Location, units weather.UnitSystem) (weather.ForecastEntry, error) {
	var entry weather.ForecastEntry
	var err error

	if entry.State, err = extractState(node.Weather); err != nil {
		return entry, err
	}
	if err := extractMain(node.Main, units, &entry.Conditions); err != nil {
		return entry, err
	}
	if entry.Wind, err = extractWind(node.Wind, units); err != nil {
		return entry, err
	}
	if entry.Rain, err = extractPrecipitation("rain", node.Rain); err != nil {
		return entry, err
	}
	if entry.Snow, err = extractPrecipitation("snow", node.Snow); err != nil {
		return entry, err
	}
	if entry.Clouds, err = extractClouds(node.Clouds); err != nil {
		return entry, err
	}
	entry.Visibility = node.Visibility
	entry.PrecipitationProbability = node.Pop

	if entry.ForecastedAt, err = requiredTime(node.Dt, city.Zone()); err != nil {
		return entry, err
	}
	entry.PartOfDay = partOfDay(node.Sys, entry.ForecastedAt, city)
	completeIcon(entry.State, entry.PartOfDay)
	return entry, nil
}

// DailyForecast maps the daily (16 day) and climate (30 day) forecasts
func DailyForecast(data []byte, units weather.UnitSystem) (*weather.DailyForecast, error) {
	var body dailyForecastJSON
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, parseError("daily forecast", err)
	}
	if body.List == nil {
		return nil, parseError("daily forecast", missing("list"))
	}

	city, err := extractCity(body.City)
	if err != nil {
		return nil, parseError("daily forecast", err)
	}

	result := &weather.DailyForecast{
		Location: city,
		Entries:  make([]weather.DailyEntry, 0, len(body.List)),
		Units:    units,
	}
	for i := range body.List {
		entry, err := assembleDailyEntry(&body.List[i], city.Zone(), units)
		if err != nil {
			return nil, parseError("daily forecast", at(fmt.Sprintf("list[%d]", i), err))
		}
		result.Entries = append(result.Entries, entry)
	}
	return result, nil
}

func assembleDailyEntry(node *dailyEntryJSON, zone *time.Location, units weather.UnitSystem) (weather.DailyEntry, error) {
	var entry weather.DailyEntry
	var err error

	if entry.State, err = extractState(node.Weather); err != nil {
		return entry, err
	}
	completeIcon(entry.State, weather.Day)

	if entry.Temperature, err = extractDailyTemperature(node.Temp, node.FeelsLike, units); err != nil {
		return entry, err
	}
	flat := &mainJSON{Pressure: node.Pressure, Humidity: node.Humidity}
	if entry.Pressure, err = extractPressure(flat); err != nil {
		return entry, err
	}
	if entry.Humidity, err = extractHumidity(flat); err != nil {
		return entry, err
	}
	entry.DewPoint = node.DewPoint

	if entry.Wind, err = extractWind(node.windNode(), units); err != nil {
		return entry, err
	}
	if node.Clouds != nil {
		if entry.Clouds, err = cloudsFromPercentage(*node.Clouds); err != nil {
			return entry, err
		}
	}
	entry.PrecipitationProbability = node.Pop
	entry.RainVolume = node.Rain
	entry.SnowVolume = node.Snow
	entry.UVIndex = node.UVI
	entry.MoonPhase = node.MoonPhase
	entry.Summary = node.Summary

	if entry.ForecastedAt, err = requiredTime(node.Dt, zone); err != nil {
		return entry, err
	}
	entry.Sunrise = unixPtr(node.Sunrise, zone)
	entry.Sunset = unixPtr(node.Sunset, zone)
	return entry, nil
}

// windNode picks whichever wind spelling the family uses
func (e *dailyEntryJSON) windNode() *windJSON {
	if e.Speed != nil || e.Deg != nil || e.Gust != nil {
		return &windJSON{Speed: e.Speed, Deg: e.Deg, Gust: e.Gust}
	}
	if e.WindSpeed != nil || e.WindDeg != nil || e.WindGust != nil {
		return &windJSON{Speed: e.WindSpeed, Deg: e.WindDeg, Gust: e.WindGust}
	}
	return nil
}
