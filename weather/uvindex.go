package weather

import "time"

// UVIndex is an ultraviolet index reading for a point
type UVIndex struct {
	Coordinates Coordinates `json:"coord"`
	At          time.Time   `json:"at"`
	Value       float64     `json:"value"`
}

// Validate checks the UV index invariants
func (u UVIndex) Validate() error {
	if u.Value < 0 {
		return invalid("value", "uv index must be non-negative, got %v", u.Value)
	}
	return u.Coordinates.Validate()
}

// RiskLevel returns the WHO exposure category of the reading
func (u UVIndex) RiskLevel() string {
	switch {
	case u.Value < 3:
		return "Low"
	case u.Value < 6:
		return "Moderate"
	case u.Value < 8:
		return "High"
	case u.Value < 11:
		return "Very High"
	default:
		return "Extreme"
	}
}
