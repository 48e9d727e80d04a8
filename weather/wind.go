package weather

// Wind describes speed, direction and gusts
type Wind struct {
	Speed   float64  `json:"speed"`
	Unit    string   `json:"unit"`
	Degrees *float64 `json:"degrees,omitempty"`
	Gust    *float64 `json:"gust,omitempty"`
}

// NewWind creates a wind reading; speed must be non-negative and unit non-empty
func NewWind(speed float64, unit string) (Wind, error) {
	w := Wind{Speed: speed, Unit: unit}
	if err := w.Validate(); err != nil {
		return Wind{}, err
	}
	return w, nil
}

// Validate checks the wind invariants
func (w Wind) Validate() error {
	if w.Speed < 0 {
		return invalid("speed", "wind speed must be non-negative, got %v", w.Speed)
	}
	if w.Unit == "" {
		return invalid("unit", "wind speed unit cannot be empty")
	}
	if w.Degrees != nil && (*w.Degrees < 0 || *w.Degrees > 360) {
		return invalid("deg", "wind direction must be between 0 and 360, got %v", *w.Degrees)
	}
	if w.Gust != nil && *w.Gust < 0 {
		return invalid("gust", "wind gust must be non-negative, got %v", *w.Gust)
	}
	return nil
}

// WithSpeed returns a copy of w with a new speed
func (w Wind) WithSpeed(speed float64) (Wind, error) {
	w.Speed = speed
	if err := w.Validate(); err != nil {
		return Wind{}, err
	}
	return w, nil
}

// WithDegrees returns a copy of w with the direction set
func (w Wind) WithDegrees(deg float64) (Wind, error) {
	w.Degrees = &deg
	if err := w.Validate(); err != nil {
		return Wind{}, err
	}
	return w, nil
}

// WithGust returns a copy of w with the gust speed set
func (w Wind) WithGust(gust float64) (Wind, error) {
	w.Gust = &gust
	if err := w.Validate(); err != nil {
		return Wind{}, err
	}
	return w, nil
}

var compassPoints = [...]string{"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE", "S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW"}

// Direction returns the 16-point compass direction, or "" when no direction was reported
func (w Wind) Direction() string {
	if w.Degrees == nil {
		return ""
	}
	idx := int((*w.Degrees+11.25)/22.5) % len(compassPoints)
	return compassPoints[idx]
}
