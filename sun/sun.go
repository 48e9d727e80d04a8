// Package sun resolves the part of day of an observation from the solar position.
package sun

import (
	"math"
	"time"

	"github.com/sixdouglas/suncalc"

	"github.com/devskill-org/openweathermap/weather"
)

// Elevation returns the altitude of the sun above the horizon in degrees
func Elevation(t time.Time, coord weather.Coordinates) float64 {
	pos := suncalc.GetPosition(t, coord.Latitude, coord.Longitude)
	return pos.Altitude * 180 / math.Pi
}

// Azimuth returns the sun azimuth in degrees, measured from south towards west
func Azimuth(t time.Time, coord weather.Coordinates) float64 {
	pos := suncalc.GetPosition(t, coord.Latitude, coord.Longitude)
	return pos.Azimuth * 180 / math.Pi
}

// PartOfDayAt returns Day when the sun is above the horizon at coord, Night otherwise
func PartOfDayAt(t time.Time, coord weather.Coordinates) weather.PartOfDay {
	if Elevation(t, coord) > 0 {
		return weather.Day
	}
	return weather.Night
}

// Resolve picks the part of day for t at loc. The solar position is used when loc has
// coordinates; otherwise t is checked against the reported sunrise and sunset, moved by whole
// days onto the cycle containing t. Without either, Day is assumed.
func Resolve(t time.Time, loc weather.Location) weather.PartOfDay {
	if loc.Coordinates != nil {
		return PartOfDayAt(t, *loc.Coordinates)
	}
	if loc.Sunrise == nil || loc.Sunset == nil {
		return weather.Day
	}

	rise, set := *loc.Sunrise, *loc.Sunset
	// a sunset reported before the sunrise belongs to the following day
	for !set.After(rise) {
		set = set.Add(day)
	}
	if set.Sub(rise) >= day {
		return weather.Day
	}

	shift := floorDays(t.Sub(rise))
	rise, set = rise.Add(shift), set.Add(shift)
	if !t.Before(rise) && t.Before(set) {
		return weather.Day
	}
	return weather.Night
}

const day = 24 * time.Hour

// floorDays rounds d down to a whole number of days
func floorDays(d time.Duration) time.Duration {
	n := d / day
	if d < 0 && d%day != 0 {
		n--
	}
	return n * day
}
