package weather

// Temperature is a single temperature reading with its optional companions
type Temperature struct {
	Value     float64  `json:"value"`
	Unit      string   `json:"unit"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	FeelsLike *float64 `json:"feels_like,omitempty"`
	DewPoint  *float64 `json:"dew_point,omitempty"`
}

// NewTemperature creates a temperature tagged with unit
func NewTemperature(value float64, unit string) (Temperature, error) {
	t := Temperature{Value: value, Unit: unit}
	if err := t.Validate(); err != nil {
		return Temperature{}, err
	}
	return t, nil
}

// Validate checks the temperature invariants
func (t Temperature) Validate() error {
	if t.Unit == "" {
		return invalid("unit", "temperature unit cannot be empty")
	}
	return nil
}

// WithMin returns a copy of t with the minimum set
func (t Temperature) WithMin(v float64) Temperature {
	t.Min = &v
	return t
}

// WithMax returns a copy of t with the maximum set
func (t Temperature) WithMax(v float64) Temperature {
	t.Max = &v
	return t
}

// WithFeelsLike returns a copy of t with the perceived temperature set
func (t Temperature) WithFeelsLike(v float64) Temperature {
	t.FeelsLike = &v
	return t
}

// WithDewPoint returns a copy of t with the dew point set
func (t Temperature) WithDewPoint(v float64) Temperature {
	t.DewPoint = &v
	return t
}

// DailyTemperature holds the day-part buckets reported by the daily forecast families
type DailyTemperature struct {
	Morning float64  `json:"morning"`
	Day     float64  `json:"day"`
	Evening float64  `json:"evening"`
	Night   float64  `json:"night"`
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Unit    string   `json:"unit"`

	FeelsLikeMorning *float64 `json:"feels_like_morning,omitempty"`
	FeelsLikeDay     *float64 `json:"feels_like_day,omitempty"`
	FeelsLikeEvening *float64 `json:"feels_like_evening,omitempty"`
	FeelsLikeNight   *float64 `json:"feels_like_night,omitempty"`
}

// Validate checks the daily temperature invariants
func (t DailyTemperature) Validate() error {
	if t.Unit == "" {
		return invalid("unit", "temperature unit cannot be empty")
	}
	if t.Min != nil && t.Max != nil && *t.Min > *t.Max {
		return invalid("min", "minimum %v is above maximum %v", *t.Min, *t.Max)
	}
	return nil
}
