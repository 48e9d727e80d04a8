package weather

import "time"

// AirQualityIndex is the 1 (good) to 5 (very poor) index reported by the air pollution API
type AirQualityIndex int

var aqiNames = map[AirQualityIndex]string{
	1: "Good",
	2: "Fair",
	3: "Moderate",
	4: "Poor",
	5: "Very Poor",
}

// String returns the qualitative name of the index
func (a AirQualityIndex) String() string {
	if name, ok := aqiNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Validate checks that the index is within 1..5
func (a AirQualityIndex) Validate() error {
	if a < 1 || a > 5 {
		return invalid("aqi", "air quality index must be between 1 and 5, got %d", int(a))
	}
	return nil
}

// PollutantConcentrations are surface concentrations in μg/m3
type PollutantConcentrations struct {
	CO   float64 `json:"co"`
	NO   float64 `json:"no"`
	NO2  float64 `json:"no2"`
	O3   float64 `json:"o3"`
	SO2  float64 `json:"so2"`
	PM25 float64 `json:"pm2_5"`
	PM10 float64 `json:"pm10"`
	NH3  float64 `json:"nh3"`
}

// AirPollutionEntry is the air quality at one point in time
type AirPollutionEntry struct {
	At         time.Time               `json:"at"`
	Index      AirQualityIndex         `json:"aqi"`
	Components PollutantConcentrations `json:"components"`
}

// AirPollution is the aggregate of the current, forecast and history air pollution endpoints
type AirPollution struct {
	Coordinates Coordinates         `json:"coord"`
	Entries     []AirPollutionEntry `json:"entries"`
}
