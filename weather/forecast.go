package weather

import "time"

// ForecastEntry is one step of the 5 day / 3 hour and the hourly forecast families
type ForecastEntry struct {
	Conditions
	ForecastedAt             time.Time `json:"forecasted_at"`
	PrecipitationProbability *float64  `json:"pop,omitempty"` // 0..1
	PartOfDay                PartOfDay `json:"part_of_day,omitempty"`
}

// Forecast is a list of forecast steps sharing one location
type Forecast struct {
	Location Location        `json:"location"`
	Entries  []ForecastEntry `json:"entries"`
	Units    UnitSystem      `json:"units"`
}

// At returns the entry closest to t
func (f *Forecast) At(t time.Time) *ForecastEntry {
	if f == nil || len(f.Entries) == 0 {
		return nil
	}

	closest := &f.Entries[0]
	minDiff := absDuration(closest.ForecastedAt.Sub(t))
	for i := range f.Entries[1:] {
		entry := &f.Entries[i+1]
		if diff := absDuration(entry.ForecastedAt.Sub(t)); diff < minDiff {
			minDiff = diff
			closest = entry
		}
	}
	return closest
}

// Between returns the entries with start <= time <= end
func (f *Forecast) Between(start, end time.Time) []ForecastEntry {
	if f == nil {
		return nil
	}

	var out []ForecastEntry
	for _, entry := range f.Entries {
		if !entry.ForecastedAt.Before(start) && !entry.ForecastedAt.After(end) {
			out = append(out, entry)
		}
	}
	return out
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// DailyEntry is one day of the daily, climate and one call daily forecasts
type DailyEntry struct {
	ForecastedAt             time.Time           `json:"forecasted_at"`
	Sunrise                  *time.Time          `json:"sunrise,omitempty"`
	Sunset                   *time.Time          `json:"sunset,omitempty"`
	State                    *WeatherState       `json:"state,omitempty"`
	Temperature              DailyTemperature    `json:"temperature"`
	Pressure                 AtmosphericPressure `json:"pressure"`
	Humidity                 Humidity            `json:"humidity"`
	DewPoint                 *float64            `json:"dew_point,omitempty"`
	Wind                     *Wind               `json:"wind,omitempty"`
	Clouds                   *Clouds             `json:"clouds,omitempty"`
	PrecipitationProbability *float64            `json:"pop,omitempty"`
	RainVolume               *float64            `json:"rain,omitempty"` // mm per day
	SnowVolume               *float64            `json:"snow,omitempty"` // mm per day
	UVIndex                  *float64            `json:"uvi,omitempty"`
	MoonPhase                *float64            `json:"moon_phase,omitempty"`
	Summary                  string              `json:"summary,omitempty"`
}

// DailyForecast is a list of days sharing one location
type DailyForecast struct {
	Location Location     `json:"location"`
	Entries  []DailyEntry `json:"entries"`
	Units    UnitSystem   `json:"units"`
}
