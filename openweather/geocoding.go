package openweather

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/devskill-org/openweathermap/response"
	"github.com/devskill-org/openweathermap/weather"
)

const maxGeocodingLimit = 5

// Geocode resolves a place name ("city", "city,country" or "city,state,country") to coordinates
func (c *Client) Geocode(ctx context.Context, loc Locator, limit int) ([]weather.GeocodingPlace, error) {
	if _, ok := loc.(cityName); !ok {
		return nil, &ValidationError{Field: "q", Message: "direct geocoding needs a city name locator"}
	}
	q := url.Values{}
	if err := loc.apply(q); err != nil {
		return nil, err
	}
	if err := setLimit(q, limit); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/geo/1.0/direct", q)
	if err != nil {
		return nil, err
	}
	return response.Geocoding(body)
}

// ReverseGeocode lists the named places near point
func (c *Client) ReverseGeocode(ctx context.Context, point weather.Coordinates, limit int) ([]weather.GeocodingPlace, error) {
	q := url.Values{}
	if err := setCoordinates(q, point); err != nil {
		return nil, err
	}
	if err := setLimit(q, limit); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/geo/1.0/reverse", q)
	if err != nil {
		return nil, err
	}
	return response.Geocoding(body)
}

// GeocodeZip resolves a zip/post code to coordinates
func (c *Client) GeocodeZip(ctx context.Context, zip, country string) (*weather.ZipCodePlace, error) {
	q := url.Values{}
	if err := ByZipCode(zip, country).apply(q); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/geo/1.0/zip", q)
	if err != nil {
		return nil, err
	}
	return response.ZipCode(body)
}

func setLimit(q url.Values, limit int) error {
	if limit < 0 || limit > maxGeocodingLimit {
		return &ValidationError{Field: "limit", Message: fmt.Sprintf("limit must be between 0 and %d, got %d", maxGeocodingLimit, limit)}
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return nil
}
