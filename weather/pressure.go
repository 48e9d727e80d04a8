package weather

// AtmosphericPressure is measured in hPa
type AtmosphericPressure struct {
	Value       float64  `json:"value"`
	SeaLevel    *float64 `json:"sea_level,omitempty"`
	GroundLevel *float64 `json:"ground_level,omitempty"`
}

// PressureUnit is the unit of every pressure value returned by the API
const PressureUnit = "hPa"

// NewPressure creates a pressure reading
func NewPressure(value float64) (AtmosphericPressure, error) {
	p := AtmosphericPressure{Value: value}
	if err := p.Validate(); err != nil {
		return AtmosphericPressure{}, err
	}
	return p, nil
}

// Validate checks the pressure invariants
func (p AtmosphericPressure) Validate() error {
	if p.Value < 0 {
		return invalid("pressure", "must be non-negative, got %v", p.Value)
	}
	if p.SeaLevel != nil && *p.SeaLevel < 0 {
		return invalid("sea_level", "must be non-negative, got %v", *p.SeaLevel)
	}
	if p.GroundLevel != nil && *p.GroundLevel < 0 {
		return invalid("grnd_level", "must be non-negative, got %v", *p.GroundLevel)
	}
	return nil
}

// WithSeaLevel returns a copy of p with the sea level pressure set
func (p AtmosphericPressure) WithSeaLevel(v float64) (AtmosphericPressure, error) {
	p.SeaLevel = &v
	if err := p.Validate(); err != nil {
		return AtmosphericPressure{}, err
	}
	return p, nil
}

// WithGroundLevel returns a copy of p with the ground level pressure set
func (p AtmosphericPressure) WithGroundLevel(v float64) (AtmosphericPressure, error) {
	p.GroundLevel = &v
	if err := p.Validate(); err != nil {
		return AtmosphericPressure{}, err
	}
	return p, nil
}

// Humidity is a relative humidity percentage
type Humidity struct {
	Percentage int `json:"percentage"`
}

// NewHumidity creates a humidity reading in the 0-100 range
func NewHumidity(percentage int) (Humidity, error) {
	if percentage < 0 || percentage > 100 {
		return Humidity{}, invalid("humidity", "must be between 0 and 100, got %d", percentage)
	}
	return Humidity{Percentage: percentage}, nil
}
