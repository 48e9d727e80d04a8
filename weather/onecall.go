package weather

import "time"

// OneCallEntry is the current or one hourly element of a one call response
type OneCallEntry struct {
	Conditions
	At                       time.Time  `json:"at"`
	Sunrise                  *time.Time `json:"sunrise,omitempty"`
	Sunset                   *time.Time `json:"sunset,omitempty"`
	UVIndex                  *float64   `json:"uvi,omitempty"`
	PrecipitationProbability *float64   `json:"pop,omitempty"`
}

// MinutelyPrecipitation is the precipitation volume forecast for one minute
type MinutelyPrecipitation struct {
	At            time.Time `json:"at"`
	Precipitation float64   `json:"precipitation"` // mm/h
}

// Alert is a national weather alert attached to a one call response
type Alert struct {
	SenderName  string    `json:"sender_name"`
	Event       string    `json:"event"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags,omitempty"`
}

// Active reports whether the alert covers t
func (a Alert) Active(t time.Time) bool {
	return !t.Before(a.Start) && !t.After(a.End)
}

// OneCall aggregates current, minutely, hourly and daily data for one point
type OneCall struct {
	Coordinates    Coordinates             `json:"coord"`
	Timezone       string                  `json:"timezone"`
	TimezoneOffset int                     `json:"timezone_offset"`
	Current        *OneCallEntry           `json:"current,omitempty"`
	Minutely       []MinutelyPrecipitation `json:"minutely,omitempty"`
	Hourly         []OneCallEntry          `json:"hourly,omitempty"`
	Daily          []DailyEntry            `json:"daily,omitempty"`
	Alerts         []Alert                 `json:"alerts,omitempty"`
	Units          UnitSystem              `json:"units"`
}
