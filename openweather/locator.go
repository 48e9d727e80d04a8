package openweather

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/devskill-org/openweathermap/weather"
)

// Locator selects the place a request refers to
type Locator interface {
	apply(q url.Values) error
}

type cityName struct {
	city, state, country string
}

// ByCityName locates by city name with optional state (US only) and ISO 3166 country code
func ByCityName(city, state, country string) Locator {
	return cityName{city: city, state: state, country: country}
}

func (l cityName) apply(q url.Values) error {
	if strings.TrimSpace(l.city) == "" {
		return &ValidationError{Field: "q", Message: "city name cannot be empty"}
	}
	parts := []string{l.city}
	if l.state != "" {
		parts = append(parts, l.state)
	}
	if l.country != "" {
		parts = append(parts, l.country)
	}
	q.Set("q", strings.Join(parts, ","))
	return nil
}

type cityID int64

// ByCityID locates by the numeric city id of the API's city list
func ByCityID(id int64) Locator {
	return cityID(id)
}

func (l cityID) apply(q url.Values) error {
	if l <= 0 {
		return &ValidationError{Field: "id", Message: fmt.Sprintf("city id must be positive, got %d", int64(l))}
	}
	q.Set("id", strconv.FormatInt(int64(l), 10))
	return nil
}

type coordinates weather.Coordinates

// ByCoordinates locates by geographic point
func ByCoordinates(lat, lon float64) Locator {
	return coordinates{Latitude: lat, Longitude: lon}
}

func (l coordinates) apply(q url.Values) error {
	if err := ValidateCoordinates(weather.Coordinates(l)); err != nil {
		return err
	}
	q.Set("lat", formatFloat(l.Latitude))
	q.Set("lon", formatFloat(l.Longitude))
	return nil
}

type zipCode struct {
	zip, country string
}

// ByZipCode locates by zip/post code; the country defaults to US on the server side
func ByZipCode(zip, country string) Locator {
	return zipCode{zip: zip, country: country}
}

func (l zipCode) apply(q url.Values) error {
	if strings.TrimSpace(l.zip) == "" {
		return &ValidationError{Field: "zip", Message: "zip code cannot be empty"}
	}
	value := l.zip
	if l.country != "" {
		value += "," + l.country
	}
	q.Set("zip", value)
	return nil
}

// ValidateCoordinates validates that the coordinates are within acceptable ranges
func ValidateCoordinates(c weather.Coordinates) error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return &ValidationError{Field: "lat", Message: fmt.Sprintf("latitude must be between -90 and 90, got %f", c.Latitude)}
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return &ValidationError{Field: "lon", Message: fmt.Sprintf("longitude must be between -180 and 180, got %f", c.Longitude)}
	}
	return nil
}

func setCoordinates(q url.Values, c weather.Coordinates) error {
	return coordinates(c).apply(q)
}

// formatFloat formats a float64 to a string with appropriate precision
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
