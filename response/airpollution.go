package response

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/devskill-org/openweathermap/utils"
	"github.com/devskill-org/openweathermap/weather"
)

// AirPollution maps the current, forecast and history air pollution responses
func AirPollution(data []byte) (*weather.AirPollution, error) {
	var body airPollutionJSON
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, parseError("air pollution", err)
	}
	if body.Coord == nil {
		return nil, parseError("air pollution", missing("coord"))
	}

	coord, err := requiredCoordinates(body.Coord.Lat, body.Coord.Lon)
	if err != nil {
		return nil, parseError("air pollution", at("coord", err))
	}

	result := &weather.AirPollution{
		Coordinates: coord,
		Entries:     make([]weather.AirPollutionEntry, 0, len(body.List)),
	}
	for i, node := range body.List {
		entry, err := extractAirEntry(node)
		if err != nil {
			return nil, parseError("air pollution", at(fmt.Sprintf("list[%d]", i), err))
		}
		result.Entries = append(result.Entries, entry)
	}
	return result, nil
}

func extractAirEntry(node airEntryJSON) (weather.AirPollutionEntry, error) {
	var entry weather.AirPollutionEntry

	if node.Main == nil || node.Main.AQI == nil {
		return entry, missing("main.aqi")
	}
	entry.Index = weather.AirQualityIndex(*node.Main.AQI)
	if err := entry.Index.Validate(); err != nil {
		return entry, err
	}

	if node.Components == nil {
		return entry, missing("components")
	}
	entry.Components = weather.PollutantConcentrations(*node.Components)

	t, err := requiredTime(node.Dt, time.UTC)
	if err != nil {
		return entry, err
	}
	entry.At = t
	return entry, nil
}

// UVIndex maps a single current UV index reading
func UVIndex(data []byte) (*weather.UVIndex, error) {
	var body uvIndexJSON
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, parseError("uv index", err)
	}

	uv, err := extractUVIndex(body)
	if err != nil {
		return nil, parseError("uv index", err)
	}
	return &uv, nil
}

// UVIndexList maps the forecast and history UV index responses, which are bare arrays
func UVIndexList(data []byte) ([]weather.UVIndex, error) {
	var body []uvIndexJSON
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, parseError("uv index list", err)
	}

	out := make([]weather.UVIndex, 0, len(body))
	for i, node := range body {
		uv, err := extractUVIndex(node)
		if err != nil {
			return nil, parseError("uv index list", at(fmt.Sprintf("[%d]", i), err))
		}
		out = append(out, uv)
	}
	return out, nil
}

func extractUVIndex(node uvIndexJSON) (weather.UVIndex, error) {
	coord, err := requiredCoordinates(node.Lat, node.Lon)
	if err != nil {
		return weather.UVIndex{}, err
	}
	if node.Value == nil {
		return weather.UVIndex{}, missing("value")
	}
	if node.Date == nil {
		return weather.UVIndex{}, missing("date")
	}

	uv := weather.UVIndex{
		Coordinates: coord,
		At:          utils.FromUnix(*node.Date, time.UTC),
		Value:       *node.Value,
	}
	if err := uv.Validate(); err != nil {
		return weather.UVIndex{}, err
	}
	return uv, nil
}
