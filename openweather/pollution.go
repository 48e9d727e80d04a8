package openweather

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/devskill-org/openweathermap/response"
	"github.com/devskill-org/openweathermap/utils"
	"github.com/devskill-org/openweathermap/weather"
)

const maxUVCount = 8

// AirPollution retrieves the current air quality at point
func (c *Client) AirPollution(ctx context.Context, point weather.Coordinates) (*weather.AirPollution, error) {
	return c.airPollution(ctx, "/data/2.5/air_pollution", point, nil)
}

// AirPollutionForecast retrieves the hourly air quality forecast for the next days
func (c *Client) AirPollutionForecast(ctx context.Context, point weather.Coordinates) (*weather.AirPollution, error) {
	return c.airPollution(ctx, "/data/2.5/air_pollution/forecast", point, nil)
}

// AirPollutionHistory retrieves the hourly air quality within [start, end]
func (c *Client) AirPollutionHistory(ctx context.Context, point weather.Coordinates, start, end time.Time) (*weather.AirPollution, error) {
	period, err := timeRange(start, end)
	if err != nil {
		return nil, err
	}
	return c.airPollution(ctx, "/data/2.5/air_pollution/history", point, period)
}

func (c *Client) airPollution(ctx context.Context, path string, point weather.Coordinates, extra url.Values) (*weather.AirPollution, error) {
	q := url.Values{}
	if err := setCoordinates(q, point); err != nil {
		return nil, err
	}
	for key := range extra {
		q.Set(key, extra.Get(key))
	}

	body, err := c.get(ctx, path, q)
	if err != nil {
		return nil, err
	}
	return response.AirPollution(body)
}

// UVIndex retrieves the current UV index at point
func (c *Client) UVIndex(ctx context.Context, point weather.Coordinates) (*weather.UVIndex, error) {
	q := url.Values{}
	if err := setCoordinates(q, point); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/data/2.5/uvi", q)
	if err != nil {
		return nil, err
	}
	return response.UVIndex(body)
}

// UVIndexForecast retrieves up to 8 days of daily UV index forecast
func (c *Client) UVIndexForecast(ctx context.Context, point weather.Coordinates, days int) ([]weather.UVIndex, error) {
	q, err := request(coordinates(point), Options{Count: days}, maxUVCount)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/data/2.5/uvi/forecast", q)
	if err != nil {
		return nil, err
	}
	return response.UVIndexList(body)
}

// UVIndexHistory retrieves the daily UV index readings within [start, end]
func (c *Client) UVIndexHistory(ctx context.Context, point weather.Coordinates, start, end time.Time) ([]weather.UVIndex, error) {
	q := url.Values{}
	if err := setCoordinates(q, point); err != nil {
		return nil, err
	}
	period, err := timeRange(start, end)
	if err != nil {
		return nil, err
	}
	q.Set("start", period.Get("start"))
	q.Set("end", period.Get("end"))

	body, err := c.get(ctx, "/data/2.5/uvi/history", q)
	if err != nil {
		return nil, err
	}
	return response.UVIndexList(body)
}

func timeRange(start, end time.Time) (url.Values, error) {
	if end.Before(start) {
		return nil, &ValidationError{Field: "end", Message: fmt.Sprintf("end %v is before start %v", end, start)}
	}
	return url.Values{
		"start": {utils.GetUnixString(start)},
		"end":   {utils.GetUnixString(end)},
	}, nil
}
