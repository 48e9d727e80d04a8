// Package weather defines the typed value objects produced from OpenWeatherMap responses.
//
// Every measurement is a small value type constructed through a validating factory:
//
//	wind, err := weather.NewWind(3.1, weather.Metric.WindSpeedUnit())
//	if err != nil {
//		log.Fatal(err)
//	}
//	wind, err = wind.WithDegrees(200)
//
// Optional measurements are pointers; a nil pointer means the API did not report the value,
// which is different from a reported zero. The With* methods return validated copies and never
// modify the receiver.
//
// The unit system selected for a request (standard, metric or imperial) only changes the unit
// labels attached to temperatures and wind speeds, the numeric values are stored as received.
package weather
