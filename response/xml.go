package response

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/devskill-org/openweathermap/sun"
	"github.com/devskill-org/openweathermap/utils"
	"github.com/devskill-org/openweathermap/weather"
)

// valueAttr is the <element value="..."/> shape used throughout the XML mode
type valueAttr struct {
	Value *string `xml:"value,attr"`
}

func (v *valueAttr) float(name string) (*float64, error) {
	if v == nil || v.Value == nil || *v.Value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(*v.Value, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid number %q", name, *v.Value)
	}
	return &f, nil
}

type currentXML struct {
	XMLName xml.Name `xml:"current"`
	City    *struct {
		ID    *int64  `xml:"id,attr"`
		Name  *string `xml:"name,attr"`
		Coord *struct {
			Lon *float64 `xml:"lon,attr"`
			Lat *float64 `xml:"lat,attr"`
		} `xml:"coord"`
		Country  string `xml:"country"`
		Timezone *int   `xml:"timezone"`
		Sun      *struct {
			Rise string `xml:"rise,attr"`
			Set  string `xml:"set,attr"`
		} `xml:"sun"`
	} `xml:"city"`
	Temperature *struct {
		Value *string `xml:"value,attr"`
		Min   *string `xml:"min,attr"`
		Max   *string `xml:"max,attr"`
	} `xml:"temperature"`
	FeelsLike     *valueAttr `xml:"feels_like"`
	Humidity      *valueAttr `xml:"humidity"`
	Pressure      *valueAttr `xml:"pressure"`
	Wind          *windXML   `xml:"wind"`
	Clouds        *valueAttr `xml:"clouds"`
	Visibility    *valueAttr `xml:"visibility"`
	Precipitation *struct {
		Value *string `xml:"value,attr"`
		Mode  string  `xml:"mode,attr"`
		Unit  string  `xml:"unit,attr"`
	} `xml:"precipitation"`
	Weather *struct {
		Number *int   `xml:"number,attr"`
		Value  string `xml:"value,attr"`
		Icon   string `xml:"icon,attr"`
	} `xml:"weather"`
	LastUpdate *valueAttr `xml:"lastupdate"`
}

type windXML struct {
	Speed     *valueAttr `xml:"speed"`
	Gusts     *valueAttr `xml:"gusts"`
	Direction *valueAttr `xml:"direction"`
}

// CurrentWeatherXML maps the mode=xml current weather body
func CurrentWeatherXML(data []byte, units weather.UnitSystem) (*weather.CurrentWeather, error) {
	var body currentXML
	if err := xml.Unmarshal(data, &body); err != nil {
		return nil, parseError("current weather xml", err)
	}

	current, err := assembleCurrentXML(&body, units)
	if err != nil {
		return nil, parseError("current weather xml", err)
	}
	return current, nil
}

func assembleCurrentXML(body *currentXML, units weather.UnitSystem) (*weather.CurrentWeather, error) {
	current := &weather.CurrentWeather{Units: units}
	var err error

	if body.Weather != nil && body.Weather.Number != nil {
		current.State, err = extractState([]conditionJSON{{
			ID:          body.Weather.Number,
			Description: body.Weather.Value,
			Icon:        body.Weather.Icon,
		}})
		if err != nil {
			return nil, err
		}
	}

	// the XML layout carries the same values as attributes, lift them into the JSON main node
	flat := &mainJSON{}
	if body.Temperature == nil {
		return nil, missing("temperature")
	}
	if flat.Temp, err = (&valueAttr{Value: body.Temperature.Value}).float("temperature"); err != nil {
		return nil, err
	}
	if flat.TempMin, err = (&valueAttr{Value: body.Temperature.Min}).float("temperature.min"); err != nil {
		return nil, err
	}
	if flat.TempMax, err = (&valueAttr{Value: body.Temperature.Max}).float("temperature.max"); err != nil {
		return nil, err
	}
	if flat.FeelsLike, err = body.FeelsLike.float("feels_like"); err != nil {
		return nil, err
	}
	if flat.Pressure, err = body.Pressure.float("pressure"); err != nil {
		return nil, err
	}
	humidity, err := body.Humidity.float("humidity")
	if err != nil {
		return nil, err
	}
	if humidity != nil {
		h := int(*humidity)
		flat.Humidity = &h
	}
	if err := extractMain(flat, units, &current.Conditions); err != nil {
		return nil, err
	}

	if body.Wind != nil {
		wind := &windJSON{}
		if wind.Speed, err = body.Wind.Speed.float("wind.speed"); err != nil {
			return nil, err
		}
		if wind.Deg, err = body.Wind.Direction.float("wind.direction"); err != nil {
			return nil, err
		}
		if wind.Gust, err = body.Wind.Gusts.float("wind.gusts"); err != nil {
			return nil, err
		}
		if wind.Speed != nil {
			if current.Wind, err = extractWind(wind, units); err != nil {
				return nil, err
			}
		}
	}

	if err := assemblePrecipitationXML(body, current); err != nil {
		return nil, err
	}

	clouds, err := body.Clouds.float("clouds")
	if err != nil {
		return nil, err
	}
	if clouds != nil {
		if current.Clouds, err = cloudsFromPercentage(int(*clouds)); err != nil {
			return nil, err
		}
	}

	visibility, err := body.Visibility.float("visibility")
	if err != nil {
		return nil, err
	}
	if visibility != nil {
		v := int(*visibility)
		current.Visibility = &v
	}

	if current.Location, err = extractLocationXML(body); err != nil {
		return nil, err
	}
	if body.LastUpdate == nil || body.LastUpdate.Value == nil {
		return nil, missing("lastupdate")
	}
	observed, err := parseXMLTime(*body.LastUpdate.Value)
	if err != nil {
		return nil, at("lastupdate", err)
	}
	current.ObservedAt = observed.In(current.Location.Zone())

	completeIcon(current.State, sun.Resolve(current.ObservedAt, current.Location))
	return current, nil
}

func assemblePrecipitationXML(body *currentXML, current *weather.CurrentWeather) error {
	p := body.Precipitation
	if p == nil || p.Mode == "" || p.Mode == "no" {
		return nil
	}

	level, err := (&valueAttr{Value: p.Value}).float("precipitation")
	if err != nil || level == nil {
		return err
	}
	node := &precipitationJSON{}
	if p.Unit == "3h" {
		node.ThreeHour = level
	} else {
		node.OneHour = level
	}

	switch p.Mode {
	case "rain":
		current.Rain, err = extractPrecipitation("rain", node)
	case "snow":
		current.Snow, err = extractPrecipitation("snow", node)
	}
	return err
}

func extractLocationXML(body *currentXML) (weather.Location, error) {
	city := body.City
	if city == nil {
		return weather.Location{}, missing("city")
	}

	node := locationNode{
		ID:       city.ID,
		Name:     city.Name,
		Timezone: city.Timezone,
		Sys:      &sysJSON{Country: city.Country},
	}
	if city.Coord != nil {
		node.Coord = &coordJSON{Lat: city.Coord.Lat, Lon: city.Coord.Lon}
	}

	loc, err := extractLocation(node)
	if err != nil {
		return weather.Location{}, at("city", err)
	}

	if city.Sun != nil {
		zone := loc.Zone()
		if rise, err := parseXMLTime(city.Sun.Rise); err == nil {
			rise = rise.In(zone)
			loc.Sunrise = &rise
		}
		if set, err := parseXMLTime(city.Sun.Set); err == nil {
			set = set.In(zone)
			loc.Sunset = &set
		}
	}
	return loc, nil
}

// parseXMLTime parses the UTC timestamps of the XML mode, which carry no zone designator
func parseXMLTime(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if seconds, err := strconv.ParseInt(s, 10, 64); err == nil {
		return utils.FromUnix(seconds, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("unable to parse time string: %s", s)
}
