// Package store persists current weather observations collected by the monitor.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/devskill-org/openweathermap/weather"
)

// Observation is the flattened, persistable form of one current weather reading
type Observation struct {
	RunID           uuid.UUID          `json:"run_id"`
	LocationID      int64              `json:"location_id"`
	LocationName    string             `json:"location_name"`
	CountryCode     string             `json:"country,omitempty"`
	ObservedAt      time.Time          `json:"observed_at"`
	Units           weather.UnitSystem `json:"units"`
	Temperature     float64            `json:"temperature"`
	TemperatureUnit string             `json:"temperature_unit"`
	FeelsLike       *float64           `json:"feels_like,omitempty"`
	Pressure        float64            `json:"pressure"`
	Humidity        int                `json:"humidity"`
	WindSpeed       *float64           `json:"wind_speed,omitempty"`
	WindDegrees     *float64           `json:"wind_deg,omitempty"`
	Clouds          *int               `json:"clouds,omitempty"`
	RainOneHour     *float64           `json:"rain_1h,omitempty"`
	SnowOneHour     *float64           `json:"snow_1h,omitempty"`
	ConditionID     *int               `json:"condition_id,omitempty"`
	Description     string             `json:"description,omitempty"`
	Icon            string             `json:"icon,omitempty"`
}

// NewObservation flattens a current weather aggregate collected during run
func NewObservation(run uuid.UUID, c *weather.CurrentWeather) Observation {
	o := Observation{
		RunID:           run,
		LocationID:      c.Location.ID,
		LocationName:    c.Location.Name,
		CountryCode:     c.Location.CountryCode,
		ObservedAt:      c.ObservedAt.UTC(),
		Units:           c.Units,
		Temperature:     c.Temperature.Value,
		TemperatureUnit: c.Temperature.Unit,
		FeelsLike:       c.Temperature.FeelsLike,
		Pressure:        c.Pressure.Value,
		Humidity:        c.Humidity.Percentage,
	}
	if c.Wind != nil {
		o.WindSpeed = weather.Float64Ptr(c.Wind.Speed)
		o.WindDegrees = c.Wind.Degrees
	}
	if c.Clouds != nil {
		o.Clouds = weather.IntPtr(int(c.Clouds.Coverage))
	}
	if c.Rain != nil {
		o.RainOneHour = c.Rain.OneHour
	}
	if c.Snow != nil {
		o.SnowOneHour = c.Snow.OneHour
	}
	if c.State != nil {
		o.ConditionID = weather.IntPtr(c.State.ConditionID)
		o.Description = c.State.Description
		o.Icon = c.State.Icon
	}
	return o
}

// Store is the persistence used by the monitor
type Store interface {
	SaveObservations(ctx context.Context, observations []Observation) error
	LatestObservations(ctx context.Context) ([]Observation, error)
	History(ctx context.Context, locationID int64, since time.Time) ([]Observation, error)
	Prune(ctx context.Context, before time.Time) (int64, error)
	Close() error
}
