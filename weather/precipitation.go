package weather

// PrecipitationUnit is the unit of every rain and snow level
const PrecipitationUnit = "mm"

// Precipitation is a rain or snow volume for the last hour and/or the last three hours.
// Hourly families fill OneHour, 3-hour step families fill ThreeHour and current weather may carry both.
type Precipitation struct {
	OneHour   *float64 `json:"1h,omitempty"`
	ThreeHour *float64 `json:"3h,omitempty"`
}

// NewPrecipitation creates a precipitation block from the levels that were reported
func NewPrecipitation(oneHour, threeHour *float64) (*Precipitation, error) {
	p := &Precipitation{OneHour: oneHour, ThreeHour: threeHour}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the precipitation invariants
func (p Precipitation) Validate() error {
	if p.OneHour != nil && *p.OneHour < 0 {
		return invalid("1h", "precipitation level must be non-negative, got %v", *p.OneHour)
	}
	if p.ThreeHour != nil && *p.ThreeHour < 0 {
		return invalid("3h", "precipitation level must be non-negative, got %v", *p.ThreeHour)
	}
	return nil
}

// Unit returns the precipitation unit
func (p Precipitation) Unit() string {
	return PrecipitationUnit
}

// Clouds is the cloud coverage percentage
type Clouds struct {
	Coverage uint8 `json:"coverage"`
}

// NewClouds creates a cloud coverage reading in the 0-100 range
func NewClouds(percentage int) (Clouds, error) {
	if percentage < 0 || percentage > 100 {
		return Clouds{}, invalid("clouds", "coverage must be between 0 and 100, got %d", percentage)
	}
	return Clouds{Coverage: uint8(percentage)}, nil
}
