package openweather

import (
	"context"

	"github.com/devskill-org/openweathermap/response"
	"github.com/devskill-org/openweathermap/weather"
)

const (
	maxForecastCount = 40
	maxHourlyCount   = 96
	maxDailyCount    = 16
	maxClimateCount  = 30
)

// Forecast retrieves the 5 day / 3 hour forecast; opts.Count limits the number of steps
func (c *Client) Forecast(ctx context.Context, loc Locator, opts Options) (*weather.Forecast, error) {
	body, err := c.located(ctx, "/data/2.5/forecast", loc, opts, maxForecastCount)
	if err != nil {
		return nil, err
	}
	return response.Forecast(body, opts.units())
}

// HourlyForecast retrieves the 4 day hourly forecast
func (c *Client) HourlyForecast(ctx context.Context, loc Locator, opts Options) (*weather.Forecast, error) {
	body, err := c.located(ctx, "/data/2.5/forecast/hourly", loc, opts, maxHourlyCount)
	if err != nil {
		return nil, err
	}
	return response.HourlyForecast(body, opts.units())
}

// DailyForecast retrieves up to 16 days of daily forecast
func (c *Client) DailyForecast(ctx context.Context, loc Locator, opts Options) (*weather.DailyForecast, error) {
	body, err := c.located(ctx, "/data/2.5/forecast/daily", loc, opts, maxDailyCount)
	if err != nil {
		return nil, err
	}
	return response.DailyForecast(body, opts.units())
}

// ClimateForecast retrieves up to 30 days of climatic forecast
func (c *Client) ClimateForecast(ctx context.Context, loc Locator, opts Options) (*weather.DailyForecast, error) {
	body, err := c.located(ctx, "/data/2.5/forecast/climate", loc, opts, maxClimateCount)
	if err != nil {
		return nil, err
	}
	return response.DailyForecast(body, opts.units())
}

func (c *Client) located(ctx context.Context, path string, loc Locator, opts Options, maxCount int) ([]byte, error) {
	if loc == nil {
		return nil, &ValidationError{Field: "location", Message: "a locator is required"}
	}
	q, err := request(loc, opts, maxCount)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, path, q)
}
