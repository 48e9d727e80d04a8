package weather

import (
	"fmt"
	"strings"
)

// UnitSystem selects the measurement convention of a request
type UnitSystem string

const (
	Standard UnitSystem = "standard"
	Metric   UnitSystem = "metric"
	Imperial UnitSystem = "imperial"
)

type unitRow struct {
	temperature string
	windSpeed   string
}

var unitTable = map[UnitSystem]unitRow{
	Standard: {temperature: "K", windSpeed: "m/s"},
	Metric:   {temperature: "°C", windSpeed: "m/s"},
	Imperial: {temperature: "°F", windSpeed: "mph"},
}

func (u UnitSystem) row() unitRow {
	if row, ok := unitTable[u]; ok {
		return row
	}
	return unitTable[Standard]
}

// TemperatureUnit returns the display label for temperatures, unknown systems fall back to Kelvin
func (u UnitSystem) TemperatureUnit() string {
	return u.row().temperature
}

// WindSpeedUnit returns the display label for wind speeds, unknown systems fall back to m/s
func (u UnitSystem) WindSpeedUnit() string {
	return u.row().windSpeed
}

// IsValid reports whether u is one of the three systems known to the API
func (u UnitSystem) IsValid() bool {
	_, ok := unitTable[u]
	return ok
}

// ParseUnitSystem parses a unit system name case-insensitively
func ParseUnitSystem(s string) (UnitSystem, error) {
	u := UnitSystem(strings.ToLower(strings.TrimSpace(s)))
	if !u.IsValid() {
		return "", fmt.Errorf("unknown unit system %q, must be one of: standard, metric, imperial", s)
	}
	return u, nil
}
