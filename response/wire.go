package response

// Wire structs mirror the API JSON. Optional members are pointers so that an absent key
// stays distinguishable from a reported zero. encoding/json matches keys case-insensitively,
// which also covers the "Lat"/"Lon" spelling of the multi-city search responses.

type conditionJSON struct {
	ID          *int   `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type mainJSON struct {
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	TempMin   *float64 `json:"temp_min"`
	TempMax   *float64 `json:"temp_max"`
	DewPoint  *float64 `json:"dew_point"`
	Pressure  *float64 `json:"pressure"`
	SeaLevel  *float64 `json:"sea_level"`
	GrndLevel *float64 `json:"grnd_level"`
	Humidity  *int     `json:"humidity"`
}

type windJSON struct {
	Speed *float64 `json:"speed"`
	Deg   *float64 `json:"deg"`
	Gust  *float64 `json:"gust"`
}

type precipitationJSON struct {
	OneHour   *float64 `json:"1h"`
	ThreeHour *float64 `json:"3h"`
}

type cloudsJSON struct {
	All *int `json:"all"`
}

type coordJSON struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type sysJSON struct {
	Country string `json:"country"`
	Sunrise *int64 `json:"sunrise"`
	Sunset  *int64 `json:"sunset"`
	Pod     string `json:"pod"`
}

type currentJSON struct {
	Coord      *coordJSON         `json:"coord"`
	Weather    []conditionJSON    `json:"weather"`
	Main       *mainJSON          `json:"main"`
	Visibility *int               `json:"visibility"`
	Wind       *windJSON          `json:"wind"`
	Rain       *precipitationJSON `json:"rain"`
	Snow       *precipitationJSON `json:"snow"`
	Clouds     *cloudsJSON        `json:"clouds"`
	Dt         *int64             `json:"dt"`
	Sys        *sysJSON           `json:"sys"`
	Timezone   *int               `json:"timezone"`
	ID         *int64             `json:"id"`
	Name       *string            `json:"name"`
}

type currentListJSON struct {
	Count *int          `json:"cnt"`
	List  []currentJSON `json:"list"`
}

type cityJSON struct {
	ID         *int64     `json:"id"`
	Name       *string    `json:"name"`
	Coord      *coordJSON `json:"coord"`
	Country    string     `json:"country"`
	Population *int64     `json:"population"`
	Timezone   *int       `json:"timezone"`
	Sunrise    *int64     `json:"sunrise"`
	Sunset     *int64     `json:"sunset"`
}

type forecastEntryJSON struct {
	Dt         *int64             `json:"dt"`
	Main       *mainJSON          `json:"main"`
	Weather    []conditionJSON    `json:"weather"`
	Clouds     *cloudsJSON        `json:"clouds"`
	Wind       *windJSON          `json:"wind"`
	Visibility *int               `json:"visibility"`
	Pop        *float64           `json:"pop"`
	Rain       *precipitationJSON `json:"rain"`
	Snow       *precipitationJSON `json:"snow"`
	Sys        *sysJSON           `json:"sys"`
}

type forecastJSON struct {
	City *cityJSON           `json:"city"`
	List []forecastEntryJSON `json:"list"`
}

type dailyTempJSON struct {
	Day   *float64 `json:"day"`
	Min   *float64 `json:"min"`
	Max   *float64 `json:"max"`
	Night *float64 `json:"night"`
	Eve   *float64 `json:"eve"`
	Morn  *float64 `json:"morn"`
}

type dailyEntryJSON struct {
	Dt        *int64          `json:"dt"`
	Sunrise   *int64          `json:"sunrise"`
	Sunset    *int64          `json:"sunset"`
	MoonPhase *float64        `json:"moon_phase"`
	Summary   string          `json:"summary"`
	Temp      *dailyTempJSON  `json:"temp"`
	FeelsLike *dailyTempJSON  `json:"feels_like"`
	Pressure  *float64        `json:"pressure"`
	Humidity  *int            `json:"humidity"`
	DewPoint  *float64        `json:"dew_point"`
	Weather   []conditionJSON `json:"weather"`
	Clouds    *int            `json:"clouds"`
	Pop       *float64        `json:"pop"`
	Rain      *float64        `json:"rain"`
	Snow      *float64        `json:"snow"`
	UVI       *float64        `json:"uvi"`

	// 16 day forecast keys
	Speed *float64 `json:"speed"`
	Deg   *float64 `json:"deg"`
	Gust  *float64 `json:"gust"`

	// one call keys
	WindSpeed *float64 `json:"wind_speed"`
	WindDeg   *float64 `json:"wind_deg"`
	WindGust  *float64 `json:"wind_gust"`
}

type dailyForecastJSON struct {
	City *cityJSON        `json:"city"`
	List []dailyEntryJSON `json:"list"`
}

type oneCallEntryJSON struct {
	Dt         *int64             `json:"dt"`
	Sunrise    *int64             `json:"sunrise"`
	Sunset     *int64             `json:"sunset"`
	Temp       *float64           `json:"temp"`
	FeelsLike  *float64           `json:"feels_like"`
	Pressure   *float64           `json:"pressure"`
	Humidity   *int               `json:"humidity"`
	DewPoint   *float64           `json:"dew_point"`
	UVI        *float64           `json:"uvi"`
	Clouds     *int               `json:"clouds"`
	Visibility *int               `json:"visibility"`
	WindSpeed  *float64           `json:"wind_speed"`
	WindDeg    *float64           `json:"wind_deg"`
	WindGust   *float64           `json:"wind_gust"`
	Weather    []conditionJSON    `json:"weather"`
	Pop        *float64           `json:"pop"`
	Rain       *precipitationJSON `json:"rain"`
	Snow       *precipitationJSON `json:"snow"`
}

// main rebuilds the nested main node from the flat one call layout
func (e oneCallEntryJSON) main() *mainJSON {
	return &mainJSON{
		Temp:      e.Temp,
		FeelsLike: e.FeelsLike,
		DewPoint:  e.DewPoint,
		Pressure:  e.Pressure,
		Humidity:  e.Humidity,
	}
}

func (e oneCallEntryJSON) wind() *windJSON {
	if e.WindSpeed == nil && e.WindDeg == nil && e.WindGust == nil {
		return nil
	}
	return &windJSON{Speed: e.WindSpeed, Deg: e.WindDeg, Gust: e.WindGust}
}

type minutelyJSON struct {
	Dt            *int64   `json:"dt"`
	Precipitation *float64 `json:"precipitation"`
}

type alertJSON struct {
	SenderName  string   `json:"sender_name"`
	Event       string   `json:"event"`
	Start       *int64   `json:"start"`
	End         *int64   `json:"end"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type oneCallJSON struct {
	Lat            *float64           `json:"lat"`
	Lon            *float64           `json:"lon"`
	Timezone       string             `json:"timezone"`
	TimezoneOffset *int               `json:"timezone_offset"`
	Current        *oneCallEntryJSON  `json:"current"`
	Minutely       []minutelyJSON     `json:"minutely"`
	Hourly         []oneCallEntryJSON `json:"hourly"`
	Daily          []dailyEntryJSON   `json:"daily"`
	Alerts         []alertJSON        `json:"alerts"`
}

// timeMachineJSON is the one call historical layout, which lists data points under "data"
type timeMachineJSON struct {
	Lat            *float64           `json:"lat"`
	Lon            *float64           `json:"lon"`
	Timezone       string             `json:"timezone"`
	TimezoneOffset *int               `json:"timezone_offset"`
	Data           []oneCallEntryJSON `json:"data"`
}

type airComponentsJSON struct {
	CO   float64 `json:"co"`
	NO   float64 `json:"no"`
	NO2  float64 `json:"no2"`
	O3   float64 `json:"o3"`
	SO2  float64 `json:"so2"`
	PM25 float64 `json:"pm2_5"`
	PM10 float64 `json:"pm10"`
	NH3  float64 `json:"nh3"`
}

type airEntryJSON struct {
	Dt   *int64 `json:"dt"`
	Main *struct {
		AQI *int `json:"aqi"`
	} `json:"main"`
	Components *airComponentsJSON `json:"components"`
}

type airPollutionJSON struct {
	Coord *coordJSON     `json:"coord"`
	List  []airEntryJSON `json:"list"`
}

type uvIndexJSON struct {
	Lat   *float64 `json:"lat"`
	Lon   *float64 `json:"lon"`
	Date  *int64   `json:"date"`
	Value *float64 `json:"value"`
}

type geocodingJSON struct {
	Name       *string           `json:"name"`
	LocalNames map[string]string `json:"local_names"`
	Lat        *float64          `json:"lat"`
	Lon        *float64          `json:"lon"`
	Country    string            `json:"country"`
	State      string            `json:"state"`
}

type zipCodeJSON struct {
	Zip     string   `json:"zip"`
	Name    *string  `json:"name"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
	Country string   `json:"country"`
}
