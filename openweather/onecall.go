package openweather

import (
	"context"
	"time"

	"github.com/devskill-org/openweathermap/response"
	"github.com/devskill-org/openweathermap/utils"
	"github.com/devskill-org/openweathermap/weather"
)

// OneCall retrieves current, minutely, hourly and daily data plus alerts for a point.
// Parts listed in exclude are left out of the response.
func (c *Client) OneCall(ctx context.Context, point weather.Coordinates, opts Options, exclude ...OneCallPart) (*weather.OneCall, error) {
	q, err := request(coordinates(point), opts, -1)
	if err != nil {
		return nil, err
	}
	if len(exclude) > 0 {
		value, err := excludeValue(exclude)
		if err != nil {
			return nil, err
		}
		q.Set("exclude", value)
	}

	body, err := c.get(ctx, "/data/3.0/onecall", q)
	if err != nil {
		return nil, err
	}
	return response.OneCall(body, opts.units())
}

// OneCallTimeMachine retrieves the weather of a point at a historical or future instant
func (c *Client) OneCallTimeMachine(ctx context.Context, point weather.Coordinates, at time.Time, opts Options) (*weather.OneCall, error) {
	q, err := request(coordinates(point), opts, -1)
	if err != nil {
		return nil, err
	}
	q.Set("dt", utils.GetUnixString(at))

	body, err := c.get(ctx, "/data/3.0/onecall/timemachine", q)
	if err != nil {
		return nil, err
	}
	return response.OneCallTimeMachine(body, opts.units())
}
