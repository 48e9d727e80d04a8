package weather

import (
	"fmt"
	"time"

	"github.com/devskill-org/openweathermap/utils"
)

// Coordinates is a geographic point
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// NewCoordinates creates coordinates after range validation
func NewCoordinates(lat, lon float64) (Coordinates, error) {
	c := Coordinates{Latitude: lat, Longitude: lon}
	if err := c.Validate(); err != nil {
		return Coordinates{}, err
	}
	return c, nil
}

// Validate checks that latitude and longitude are within acceptable ranges
func (c Coordinates) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return invalid("lat", "latitude must be between -90 and 90, got %f", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return invalid("lon", "longitude must be between -180 and 180, got %f", c.Longitude)
	}
	return nil
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Latitude, c.Longitude)
}

// Location identifies the place a response refers to
type Location struct {
	ID             int64        `json:"id"`
	Name           string       `json:"name"`
	CountryCode    string       `json:"country,omitempty"`
	Sunrise        *time.Time   `json:"sunrise,omitempty"`
	Sunset         *time.Time   `json:"sunset,omitempty"`
	TimezoneOffset *int         `json:"timezone_offset,omitempty"` // seconds east of UTC
	Coordinates    *Coordinates `json:"coord,omitempty"`
	Population     *int64       `json:"population,omitempty"`
}

// NewLocation creates a location. The name may be empty: coordinate lookups away from
// named places report "".
func NewLocation(id int64, name string) (Location, error) {
	l := Location{ID: id, Name: name}
	if err := l.Validate(); err != nil {
		return Location{}, err
	}
	return l, nil
}

// Validate checks the location invariants
func (l Location) Validate() error {
	if l.Coordinates != nil {
		if err := l.Coordinates.Validate(); err != nil {
			return err
		}
	}
	if l.Population != nil && *l.Population < 0 {
		return invalid("population", "must be non-negative, got %d", *l.Population)
	}
	return nil
}

// Zone returns the fixed zone of the location, or UTC when no offset was reported
func (l Location) Zone() *time.Location {
	if l.TimezoneOffset == nil {
		return time.UTC
	}
	return utils.FixedZone(*l.TimezoneOffset)
}

// IsDaylight reports whether t falls between sunrise and sunset.
// The second result is false when the location carries no sunrise/sunset pair.
func (l Location) IsDaylight(t time.Time) (bool, bool) {
	if l.Sunrise == nil || l.Sunset == nil {
		return false, false
	}
	return !t.Before(*l.Sunrise) && t.Before(*l.Sunset), true
}
