package response

import (
	"encoding/json"
	"fmt"

	"github.com/devskill-org/openweathermap/sun"
	"github.com/devskill-org/openweathermap/weather"
)

// CurrentWeather maps a current weather JSON body
func CurrentWeather(data []byte, units weather.UnitSystem) (*weather.CurrentWeather, error) {
	var body currentJSON
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, parseError("current weather", err)
	}

	current, err := assembleCurrent(&body, units)
	if err != nil {
		return nil, parseError("current weather", err)
	}
	return current, nil
}

// CurrentWeatherList maps the find, box and group responses, which list current weather per city
func CurrentWeatherList(data []byte, units weather.UnitSystem) ([]weather.CurrentWeather, error) {
	var body currentListJSON
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, parseError("current weather list", err)
	}
	if body.List == nil {
		return nil, parseError("current weather list", missing("list"))
	}

	out := make([]weather.CurrentWeather, 0, len(body.List))
	for i := range body.List {
		current, err := assembleCurrent(&body.List[i], units)
		if err != nil {
			return nil, parseError("current weather list", at(fmt.Sprintf("list[%d]", i), err))
		}
		out = append(out, *current)
	}
	return out, nil
}

func assembleCurrent(body *currentJSON, units weather.UnitSystem) (*weather.CurrentWeather, error) {
	current := &weather.CurrentWeather{Units: units}
	var err error

	// 1. condition
	if current.State, err = extractState(body.Weather); err != nil {
		return nil, err
	}

	// 2. main block
	if err := extractMain(body.Main, units, &current.Conditions); err != nil {
		return nil, err
	}

	// 3. wind
	if current.Wind, err = extractWind(body.Wind, units); err != nil {
		return nil, err
	}

	// 4. optional blocks
	if current.Rain, err = extractPrecipitation("rain", body.Rain); err != nil {
		return nil, err
	}
	if current.Snow, err = extractPrecipitation("snow", body.Snow); err != nil {
		return nil, err
	}
	if current.Clouds, err = extractClouds(body.Clouds); err != nil {
		return nil, err
	}
	current.Visibility = body.Visibility

	// 5. location and timestamp
	if current.Location, err = extractLocation(locationNode{
		ID:       body.ID,
		Name:     body.Name,
		Coord:    body.Coord,
		Sys:      body.Sys,
		Timezone: body.Timezone,
	}); err != nil {
		return nil, err
	}
	if current.ObservedAt, err = requiredTime(body.Dt, current.Location.Zone()); err != nil {
		return nil, err
	}

	completeIcon(current.State, sun.Resolve(current.ObservedAt, current.Location))
	return current, nil
}
