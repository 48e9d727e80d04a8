package openweather

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/devskill-org/openweathermap/response"
	"github.com/devskill-org/openweathermap/weather"
)

const (
	maxFindCount  = 50
	maxGroupCount = 20
)

// CurrentWeather retrieves the current weather at loc
func (c *Client) CurrentWeather(ctx context.Context, loc Locator, opts Options) (*weather.CurrentWeather, error) {
	body, err := c.CurrentWeatherRaw(ctx, loc, opts, FormatJSON)
	if err != nil {
		return nil, err
	}
	return response.CurrentWeather(body, opts.units())
}

// CurrentWeatherXML retrieves the current weather at loc in the XML format
func (c *Client) CurrentWeatherXML(ctx context.Context, loc Locator, opts Options) (*weather.CurrentWeather, error) {
	body, err := c.CurrentWeatherRaw(ctx, loc, opts, FormatXML)
	if err != nil {
		return nil, err
	}
	return response.CurrentWeatherXML(body, opts.units())
}

// CurrentWeatherRaw returns the unmapped current weather body in the requested format
func (c *Client) CurrentWeatherRaw(ctx context.Context, loc Locator, opts Options, format Format) ([]byte, error) {
	if loc == nil {
		return nil, &ValidationError{Field: "location", Message: "a locator is required"}
	}
	q, err := request(loc, opts, -1)
	if err != nil {
		return nil, err
	}

	switch format {
	case "", FormatJSON:
	case FormatXML, FormatHTML:
		q.Set("mode", string(format))
	default:
		return nil, &ValidationError{Field: "mode", Message: fmt.Sprintf("unknown format %q", format)}
	}
	return c.get(ctx, "/data/2.5/weather", q)
}

// FindCities searches the cities around center; opts.Count limits the result to at most 50
func (c *Client) FindCities(ctx context.Context, center weather.Coordinates, opts Options) ([]weather.CurrentWeather, error) {
	q, err := request(ByCoordinates(center.Latitude, center.Longitude), opts, maxFindCount)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/data/2.5/find", q)
	if err != nil {
		return nil, err
	}
	return response.CurrentWeatherList(body, opts.units())
}

// BoundingBox is a rectangle of coordinates with the map zoom driving the city density
type BoundingBox struct {
	LonLeft, LatBottom, LonRight, LatTop float64
	Zoom                                 int
}

// Validate checks the box corners and zoom
func (b BoundingBox) Validate() error {
	if err := ValidateCoordinates(weather.Coordinates{Latitude: b.LatBottom, Longitude: b.LonLeft}); err != nil {
		return err
	}
	if err := ValidateCoordinates(weather.Coordinates{Latitude: b.LatTop, Longitude: b.LonRight}); err != nil {
		return err
	}
	if b.LatBottom > b.LatTop {
		return &ValidationError{Field: "bbox", Message: "bottom latitude is above top latitude"}
	}
	if b.Zoom <= 0 {
		return &ValidationError{Field: "bbox", Message: fmt.Sprintf("zoom must be positive, got %d", b.Zoom)}
	}
	return nil
}

func (b BoundingBox) String() string {
	return strings.Join([]string{
		formatFloat(b.LonLeft), formatFloat(b.LatBottom),
		formatFloat(b.LonRight), formatFloat(b.LatTop),
		strconv.Itoa(b.Zoom),
	}, ",")
}

// CitiesInBox retrieves the current weather of the cities within box
func (c *Client) CitiesInBox(ctx context.Context, box BoundingBox, opts Options) ([]weather.CurrentWeather, error) {
	if err := box.Validate(); err != nil {
		return nil, err
	}
	q, err := request(nil, opts, -1)
	if err != nil {
		return nil, err
	}
	q.Set("bbox", box.String())

	body, err := c.get(ctx, "/data/2.5/box/city", q)
	if err != nil {
		return nil, err
	}
	return response.CurrentWeatherList(body, opts.units())
}

// CitiesByID retrieves the current weather of up to 20 cities in one call
func (c *Client) CitiesByID(ctx context.Context, ids []int64, opts Options) ([]weather.CurrentWeather, error) {
	if len(ids) == 0 || len(ids) > maxGroupCount {
		return nil, &ValidationError{Field: "id", Message: fmt.Sprintf("between 1 and %d city ids are required, got %d", maxGroupCount, len(ids))}
	}
	q, err := request(nil, opts, -1)
	if err != nil {
		return nil, err
	}

	list := make([]string, len(ids))
	for i, id := range ids {
		list[i] = strconv.FormatInt(id, 10)
	}
	q.Set("id", strings.Join(list, ","))

	body, err := c.get(ctx, "/data/2.5/group", q)
	if err != nil {
		return nil, err
	}
	return response.CurrentWeatherList(body, opts.units())
}

// request builds the query of a located request; maxCount < 0 means the endpoint takes no count
func request(loc Locator, opts Options, maxCount int) (url.Values, error) {
	q := url.Values{}
	if loc != nil {
		if err := loc.apply(q); err != nil {
			return nil, err
		}
	}
	if maxCount < 0 {
		opts.Count = 0
	}
	if err := opts.apply(q, maxCount); err != nil {
		return nil, err
	}
	return q, nil
}
