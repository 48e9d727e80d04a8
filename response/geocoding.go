package response

import (
	"encoding/json"
	"fmt"

	"github.com/devskill-org/openweathermap/weather"
)

// Geocoding maps the direct and reverse geocoding responses
func Geocoding(data []byte) ([]weather.GeocodingPlace, error) {
	var body []geocodingJSON
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, parseError("geocoding", err)
	}

	out := make([]weather.GeocodingPlace, 0, len(body))
	for i, node := range body {
		if node.Name == nil {
			return nil, parseError("geocoding", at(fmt.Sprintf("[%d]", i), missing("name")))
		}
		coord, err := requiredCoordinates(node.Lat, node.Lon)
		if err != nil {
			return nil, parseError("geocoding", at(fmt.Sprintf("[%d]", i), err))
		}
		out = append(out, weather.GeocodingPlace{
			Name:        *node.Name,
			LocalNames:  node.LocalNames,
			Coordinates: coord,
			CountryCode: node.Country,
			State:       node.State,
		})
	}
	return out, nil
}

// ZipCode maps the zip/post code geocoding response
func ZipCode(data []byte) (*weather.ZipCodePlace, error) {
	var body zipCodeJSON
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, parseError("zip code", err)
	}
	if body.Name == nil {
		return nil, parseError("zip code", missing("name"))
	}

	coord, err := requiredCoordinates(body.Lat, body.Lon)
	if err != nil {
		return nil, parseError("zip code", err)
	}
	return &weather.ZipCodePlace{
		Zip:         body.Zip,
		Name:        *body.Name,
		Coordinates: coord,
		CountryCode: body.Country,
	}, nil
}
