package weather

import "time"

// Conditions is the set of measurements shared by current weather, forecast steps and one call entries
type Conditions struct {
	State       *WeatherState       `json:"state,omitempty"`
	Temperature Temperature         `json:"temperature"`
	Pressure    AtmosphericPressure `json:"pressure"`
	Humidity    Humidity            `json:"humidity"`
	Wind        *Wind               `json:"wind,omitempty"`
	Rain        *Precipitation      `json:"rain,omitempty"`
	Snow        *Precipitation      `json:"snow,omitempty"`
	Clouds      *Clouds             `json:"clouds,omitempty"`
	Visibility  *int                `json:"visibility,omitempty"` // metres
}

// HasPrecipitation reports whether rain or snow was reported with a positive level
func (c Conditions) HasPrecipitation() bool {
	return positive(c.Rain) || positive(c.Snow)
}

func positive(p *Precipitation) bool {
	if p == nil {
		return false
	}
	return (p.OneHour != nil && *p.OneHour > 0) || (p.ThreeHour != nil && *p.ThreeHour > 0)
}

// CurrentWeather is the aggregate returned by the current weather endpoints
type CurrentWeather struct {
	Conditions
	Location   Location   `json:"location"`
	ObservedAt time.Time  `json:"observed_at"`
	Units      UnitSystem `json:"units"`
}
