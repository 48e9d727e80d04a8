package response

import (
	"time"

	"github.com/devskill-org/openweathermap/sun"
	"github.com/devskill-org/openweathermap/utils"
	"github.com/devskill-org/openweathermap/weather"
)

// extractTemperature reads temp and its optional companions from a main node
func extractTemperature(node *mainJSON, units weather.UnitSystem) (weather.Temperature, error) {
	if node.Temp == nil {
		return weather.Temperature{}, missing("temp")
	}

	t, err := weather.NewTemperature(*node.Temp, units.TemperatureUnit())
	if err != nil {
		return weather.Temperature{}, err
	}
	if node.TempMin != nil {
		t = t.WithMin(*node.TempMin)
	}
	if node.TempMax != nil {
		t = t.WithMax(*node.TempMax)
	}
	if node.FeelsLike != nil {
		t = t.WithFeelsLike(*node.FeelsLike)
	}
	if node.DewPoint != nil {
		t = t.WithDewPoint(*node.DewPoint)
	}
	return t, nil
}

// extractPressure reads pressure and the optional sea and ground level values
func extractPressure(node *mainJSON) (weather.AtmosphericPressure, error) {
	if node.Pressure == nil {
		return weather.AtmosphericPressure{}, missing("pressure")
	}

	p, err := weather.NewPressure(*node.Pressure)
	if err != nil {
		return weather.AtmosphericPressure{}, err
	}
	if node.SeaLevel != nil {
		if p, err = p.WithSeaLevel(*node.SeaLevel); err != nil {
			return weather.AtmosphericPressure{}, err
		}
	}
	if node.GrndLevel != nil {
		if p, err = p.WithGroundLevel(*node.GrndLevel); err != nil {
			return weather.AtmosphericPressure{}, err
		}
	}
	return p, nil
}

func extractHumidity(node *mainJSON) (weather.Humidity, error) {
	if node.Humidity == nil {
		return weather.Humidity{}, missing("humidity")
	}
	return weather.NewHumidity(*node.Humidity)
}

// extractMain resolves temperature, pressure and humidity from one main node
func extractMain(node *mainJSON, units weather.UnitSystem, c *weather.Conditions) error {
	if node == nil {
		return missing("main")
	}

	var err error
	if c.Temperature, err = extractTemperature(node, units); err != nil {
		return at("main", err)
	}
	if c.Pressure, err = extractPressure(node); err != nil {
		return at("main", err)
	}
	if c.Humidity, err = extractHumidity(node); err != nil {
		return at("main", err)
	}
	return nil
}

// extractWind returns nil for an absent wind node
func extractWind(node *windJSON, units weather.UnitSystem) (*weather.Wind, error) {
	if node == nil {
		return nil, nil
	}
	if node.Speed == nil {
		return nil, at("wind", missing("speed"))
	}

	w, err := weather.NewWind(*node.Speed, units.WindSpeedUnit())
	if err != nil {
		return nil, at("wind", err)
	}
	if node.Deg != nil {
		if w, err = w.WithDegrees(*node.Deg); err != nil {
			return nil, at("wind", err)
		}
	}
	if node.Gust != nil {
		if w, err = w.WithGust(*node.Gust); err != nil {
			return nil, at("wind", err)
		}
	}
	return &w, nil
}

// extractPrecipitation returns nil for an absent rain/snow node, so "not reported" never turns
// into a zero level
func extractPrecipitation(name string, node *precipitationJSON) (*weather.Precipitation, error) {
	if node == nil {
		return nil, nil
	}
	p, err := weather.NewPrecipitation(node.OneHour, node.ThreeHour)
	if err != nil {
		return nil, at(name, err)
	}
	return p, nil
}

func extractClouds(node *cloudsJSON) (*weather.Clouds, error) {
	if node == nil {
		return nil, nil
	}
	if node.All == nil {
		return nil, at("clouds", missing("all"))
	}
	return cloudsFromPercentage(*node.All)
}

func cloudsFromPercentage(all int) (*weather.Clouds, error) {
	c, err := weather.NewClouds(all)
	if err != nil {
		return nil, at("clouds", err)
	}
	return &c, nil
}

// extractState reads the first element of a weather array. Keys present in the response win;
// gaps are filled from the condition table except the icon, whose part of day is only known
// once the location is resolved (see completeIcon).
func extractState(items []conditionJSON) (*weather.WeatherState, error) {
	if len(items) == 0 {
		return nil, nil
	}

	first := items[0]
	if first.ID == nil {
		return nil, at("weather[0]", missing("id"))
	}

	state := &weather.WeatherState{
		ConditionID: *first.ID,
		Group:       first.Main,
		Description: first.Description,
		Icon:        first.Icon,
	}
	if row, ok := weather.LookupCondition(state.ConditionID); ok {
		if state.Group == "" {
			state.Group = row.Group
		}
		if state.Description == "" {
			state.Description = row.Description
		}
	}
	return state, nil
}

// completeIcon derives a missing icon from the condition table and the part of day
func completeIcon(state *weather.WeatherState, pod weather.PartOfDay) {
	if state == nil || state.Icon != "" {
		return
	}
	if row, ok := weather.LookupCondition(state.ConditionID); ok {
		state.Icon = row.Icon(pod)
	}
}

func extractCoordinates(node *coordJSON) (*weather.Coordinates, error) {
	if node == nil || node.Lat == nil || node.Lon == nil {
		return nil, nil
	}
	c, err := weather.NewCoordinates(*node.Lat, *node.Lon)
	if err != nil {
		return nil, at("coord", err)
	}
	return &c, nil
}

func requiredCoordinates(lat, lon *float64) (weather.Coordinates, error) {
	if lat == nil {
		return weather.Coordinates{}, missing("lat")
	}
	if lon == nil {
		return weather.Coordinates{}, missing("lon")
	}
	return weather.NewCoordinates(*lat, *lon)
}

// locationNode collects the location keys that the endpoint families spread over different nodes
type locationNode struct {
	ID         *int64
	Name       *string
	Coord      *coordJSON
	Sys        *sysJSON
	Timezone   *int
	Population *int64
}

// extractLocation builds a location; the name key is required but may be empty, everything else is optional
func extractLocation(node locationNode) (weather.Location, error) {
	if node.Name == nil {
		return weather.Location{}, missing("name")
	}

	var id int64
	if node.ID != nil {
		id = *node.ID
	}
	loc, err := weather.NewLocation(id, *node.Name)
	if err != nil {
		return weather.Location{}, err
	}

	if loc.Coordinates, err = extractCoordinates(node.Coord); err != nil {
		return weather.Location{}, err
	}

	if node.Timezone != nil {
		offset := *node.Timezone
		loc.TimezoneOffset = &offset
	}
	zone := loc.Zone()

	if node.Sys != nil {
		loc.CountryCode = node.Sys.Country
		loc.Sunrise = unixPtr(node.Sys.Sunrise, zone)
		loc.Sunset = unixPtr(node.Sys.Sunset, zone)
	}

	if node.Population != nil {
		population := *node.Population
		loc.Population = &population
	}

	if err := loc.Validate(); err != nil {
		return weather.Location{}, err
	}
	return loc, nil
}

// extractCity reads the shared city node of the forecast families
func extractCity(node *cityJSON) (weather.Location, error) {
	if node == nil {
		return weather.Location{}, missing("city")
	}

	loc, err := extractLocation(locationNode{
		ID:    node.ID,
		Name:  node.Name,
		Coord: node.Coord,
		Sys: &sysJSON{
			Country: node.Country,
			Sunrise: node.Sunrise,
			Sunset:  node.Sunset,
		},
		Timezone:   node.Timezone,
		Population: node.Population,
	})
	if err != nil {
		return weather.Location{}, at("city", err)
	}
	return loc, nil
}

func extractDailyTemperature(temp, feelsLike *dailyTempJSON, units weather.UnitSystem) (weather.DailyTemperature, error) {
	if temp == nil {
		return weather.DailyTemperature{}, missing("temp")
	}
	if temp.Day == nil {
		return weather.DailyTemperature{}, at("temp", missing("day"))
	}

	t := weather.DailyTemperature{
		Day:  *temp.Day,
		Min:  temp.Min,
		Max:  temp.Max,
		Unit: units.TemperatureUnit(),
	}
	t.Morning = valueOr(temp.Morn, t.Day)
	t.Evening = valueOr(temp.Eve, t.Day)
	t.Night = valueOr(temp.Night, t.Day)

	if feelsLike != nil {
		t.FeelsLikeMorning = feelsLike.Morn
		t.FeelsLikeDay = feelsLike.Day
		t.FeelsLikeEvening = feelsLike.Eve
		t.FeelsLikeNight = feelsLike.Night
	}

	if err := t.Validate(); err != nil {
		return weather.DailyTemperature{}, at("temp", err)
	}
	return t, nil
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

func requiredTime(dt *int64, zone *time.Location) (time.Time, error) {
	if dt == nil {
		return time.Time{}, missing("dt")
	}
	return utils.FromUnix(*dt, zone), nil
}

func unixPtr(seconds *int64, zone *time.Location) *time.Time {
	if seconds == nil {
		return nil
	}
	t := utils.FromUnix(*seconds, zone)
	return &t
}

func partOfDay(sys *sysJSON, t time.Time, loc weather.Location) weather.PartOfDay {
	if sys != nil && sys.Pod != "" {
		return weather.ParsePartOfDay(sys.Pod)
	}
	return sun.Resolve(t, loc)
}
