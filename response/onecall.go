package response

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/devskill-org/openweathermap/sun"
	"github.com/devskill-org/openweathermap/utils"
	"github.com/devskill-org/openweathermap/weather"
)

// OneCall maps a one call response; excluded parts are simply absent from the result
func OneCall(data []byte, units weather.UnitSystem) (*weather.OneCall, error) {
	var body oneCallJSON
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, parseError("one call", err)
	}

	result, err := assembleOneCall(&body, units)
	if err != nil {
		return nil, parseError("one call", err)
	}
	return result, nil
}

// OneCallTimeMachine maps the historical one call layout; the data points land in Hourly
func OneCallTimeMachine(data []byte, units weather.UnitSystem) (*weather.OneCall, error) {
	var body timeMachineJSON
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, parseError("one call timemachine", err)
	}

	result, err := assembleOneCall(&oneCallJSON{
		Lat:            body.Lat,
		Lon:            body.Lon,
		Timezone:       body.Timezone,
		TimezoneOffset: body.TimezoneOffset,
		Hourly:         body.Data,
	}, units)
	if err != nil {
		return nil, parseError("one call timemachine", err)
	}
	return result, nil
}

func assembleOneCall(body *oneCallJSON, units weather.UnitSystem) (*weather.OneCall, error) {
	coord, err := requiredCoordinates(body.Lat, body.Lon)
	if err != nil {
		return nil, err
	}

	result := &weather.OneCall{
		Coordinates: coord,
		Timezone:    body.Timezone,
		Units:       units,
	}
	zone := time.UTC
	if body.TimezoneOffset != nil {
		result.TimezoneOffset = *body.TimezoneOffset
		zone = utils.FixedZone(result.TimezoneOffset)
	}
	point := weather.Location{Coordinates: &coord}

	if body.Current != nil {
		current, err := assembleOneCallEntry(body.Current, zone, point, units)
		if err != nil {
			return nil, at("current", err)
		}
		result.Current = &current
	}

	for i, m := range body.Minutely {
		t, err := requiredTime(m.Dt, zone)
		if err != nil {
			return nil, at(fmt.Sprintf("minutely[%d]", i), err)
		}
		if m.Precipitation == nil {
			return nil, at(fmt.Sprintf("minutely[%d]", i), missing("precipitation"))
		}
		result.Minutely = append(result.Minutely, weather.MinutelyPrecipitation{At: t, Precipitation: *m.Precipitation})
	}

	for i := range body.Hourly {
		entry, err := assembleOneCallEntry(&body.Hourly[i], zone, point, units)
		if err != nil {
			return nil, at(fmt.Sprintf("hourly[%d]", i), err)
		}
		result.Hourly = append(result.Hourly, entry)
	}

	for i := range body.Daily {
		entry, err := assembleDailyEntry(&body.Daily[i], zone, units)
		if err != nil {
			return nil, at(fmt.Sprintf("daily[%d]", i), err)
		}
		result.Daily = append(result.Daily, entry)
	}

	for i, a := range body.Alerts {
		alert, err := extractAlert(a, zone)
		if err != nil {
			return nil, at(fmt.Sprintf("alerts[%d]", i), err)
		}
		result.Alerts = append(result.Alerts, alert)
	}
	return result, nil
}

func assembleOneCallEntry(node *oneCallEntryJSON, zone *time.Location, point weather.Location, units weather.UnitSystem) (weather.OneCallEntry, error) {
	var entry weather.OneCallEntry
	var err error

	if entry.State, err = extractState(node.Weather); err != nil {
		return entry, err
	}

	flat := node.main()
	if entry.Temperature, err = extractTemperature(flat, units); err != nil {
		return entry, err
	}
	if entry.Pressure, err = extractPressure(flat); err != nil {
		return entry, err
	}
	if entry.Humidity, err = extractHumidity(flat); err != nil {
		return entry, err
	}

	if entry.Wind, err = extractWind(node.wind(), units); err != nil {
		return entry, err
	}
	if entry.Rain, err = extractPrecipitation("rain", node.Rain); err != nil {
		return entry, err
	}
	if entry.Snow, err = extractPrecipitation("snow", node.Snow); err != nil {
		return entry, err
	}
	if node.Clouds != nil {
		if entry.Clouds, err = cloudsFromPercentage(*node.Clouds); err != nil {
			return entry, err
		}
	}
	entry.Visibility = node.Visibility
	entry.UVIndex = node.UVI
	entry.PrecipitationProbability = node.Pop

	if entry.At, err = requiredTime(node.Dt, zone); err != nil {
		return entry, err
	}
	entry.Sunrise = unixPtr(node.Sunrise, zone)
	entry.Sunset = unixPtr(node.Sunset, zone)

	completeIcon(entry.State, sun.Resolve(entry.At, point))
	return entry, nil
}

func extractAlert(node alertJSON, zone *time.Location) (weather.Alert, error) {
	if node.Start == nil {
		return weather.Alert{}, missing("start")
	}
	if node.End == nil {
		return weather.Alert{}, missing("end")
	}
	return weather.Alert{
		SenderName:  node.SenderName,
		Event:       node.Event,
		Start:       utils.FromUnix(*node.Start, zone),
		End:         utils.FromUnix(*node.End, zone),
		Description: node.Description,
		Tags:        node.Tags,
	}, nil
}
