package weather

import "strings"

// PartOfDay selects the day or night variant of a condition icon
type PartOfDay string

const (
	Day   PartOfDay = "d"
	Night PartOfDay = "n"
)

// ParsePartOfDay reads the "d"/"n" flag used by the API; anything else is treated as day
func ParsePartOfDay(s string) PartOfDay {
	if s == string(Night) {
		return Night
	}
	return Day
}

// Condition group names
const (
	GroupThunderstorm = "Thunderstorm"
	GroupDrizzle      = "Drizzle"
	GroupRain         = "Rain"
	GroupSnow         = "Snow"
	GroupAtmosphere   = "Atmosphere"
	GroupClear        = "Clear"
	GroupClouds       = "Clouds"
)

// Condition is a row of the weather condition table
type Condition struct {
	ID          int    `json:"id"`
	Group       string `json:"group"`
	Description string `json:"description"`
	IconID      string `json:"icon_id"` // without the part of day suffix
}

// Icon returns the icon identifier for the given part of day, e.g. "01d"
func (c Condition) Icon(pod PartOfDay) string {
	return c.IconID + string(pod)
}

// IconURL returns the icon location for the given part of day
func (c Condition) IconURL(pod PartOfDay) string {
	return IconURL(c.Icon(pod))
}

// Icons live at http://openweathermap.org/img/w/{icon}.png
const iconURLPrefix, iconURLSuffix = "http://openweathermap.org/img/w/", ".png"

// IconURL renders the icon location for an icon identifier such as "10n"
func IconURL(icon string) string {
	if icon == "" {
		return ""
	}
	return iconURLPrefix + icon + iconURLSuffix
}

var conditions = map[int]Condition{
	200: {200, GroupThunderstorm, "Thunderstorm with light rain", "11"},
	201: {201, GroupThunderstorm, "Thunderstorm with rain", "11"},
	202: {202, GroupThunderstorm, "Thunderstorm with heavy rain", "11"},
	210: {210, GroupThunderstorm, "Light thunderstorm", "11"},
	211: {211, GroupThunderstorm, "Thunderstorm", "11"},
	212: {212, GroupThunderstorm, "Heavy thunderstorm", "11"},
	221: {221, GroupThunderstorm, "Ragged thunderstorm", "11"},
	230: {230, GroupThunderstorm, "Thunderstorm with light drizzle", "11"},
	231: {231, GroupThunderstorm, "Thunderstorm with drizzle", "11"},
	232: {232, GroupThunderstorm, "Thunderstorm with heavy drizzle", "11"},

	300: {300, GroupDrizzle, "Light intensity drizzle", "09"},
	301: {301, GroupDrizzle, "Drizzle", "09"},
	302: {302, GroupDrizzle, "Heavy intensity drizzle", "09"},
	310: {310, GroupDrizzle, "Light intensity drizzle rain", "09"},
	311: {311, GroupDrizzle, "Drizzle rain", "09"},
	312: {312, GroupDrizzle, "Heavy intensity drizzle rain", "09"},
	313: {313, GroupDrizzle, "Shower rain and drizzle", "09"},
	314: {314, GroupDrizzle, "Heavy shower rain and drizzle", "09"},
	321: {321, GroupDrizzle, "Shower drizzle", "09"},

	500: {500, GroupRain, "Light rain", "10"},
	501: {501, GroupRain, "Moderate rain", "10"},
	502: {502, GroupRain, "Heavy intensity rain", "10"},
	503: {503, GroupRain, "Very heavy rain", "10"},
	504: {504, GroupRain, "Extreme rain", "10"},
	511: {511, GroupRain, "Freezing rain", "13"},
	520: {520, GroupRain, "Light intensity shower rain", "09"},
	521: {521, GroupRain, "Shower rain", "09"},
	522: {522, GroupRain, "Heavy intensity shower rain", "09"},
	531: {531, GroupRain, "Ragged shower rain", "09"},

	600: {600, GroupSnow, "Light snow", "13"},
	601: {601, GroupSnow, "Snow", "13"},
	602: {602, GroupSnow, "Heavy snow", "13"},
	611: {611, GroupSnow, "Sleet", "13"},
	612: {612, GroupSnow, "Light shower sleet", "13"},
	613: {613, GroupSnow, "Shower sleet", "13"},
	615: {615, GroupSnow, "Light rain and snow", "13"},
	616: {616, GroupSnow, "Rain and snow", "13"},
	620: {620, GroupSnow, "Light shower snow", "13"},
	621: {621, GroupSnow, "Shower snow", "13"},
	622: {622, GroupSnow, "Heavy shower snow", "13"},

	701: {701, GroupAtmosphere, "Mist", "50"},
	711: {711, GroupAtmosphere, "Smoke", "50"},
	721: {721, GroupAtmosphere, "Haze", "50"},
	731: {731, GroupAtmosphere, "Sand/dust whirls", "50"},
	741: {741, GroupAtmosphere, "Fog", "50"},
	751: {751, GroupAtmosphere, "Sand", "50"},
	761: {761, GroupAtmosphere, "Dust", "50"},
	762: {762, GroupAtmosphere, "Volcanic ash", "50"},
	771: {771, GroupAtmosphere, "Squalls", "50"},
	781: {781, GroupAtmosphere, "Tornado", "50"},

	800: {800, GroupClear, "Clear sky", "01"},

	801: {801, GroupClouds, "Few clouds: 11-25%", "02"},
	802: {802, GroupClouds, "Scattered clouds: 25-50%", "03"},
	803: {803, GroupClouds, "Broken clouds: 51-84%", "04"},
	804: {804, GroupClouds, "Overcast clouds: 85-100%", "04"},
}

// LookupCondition returns the table row for a condition code
func LookupCondition(id int) (Condition, bool) {
	c, ok := conditions[id]
	return c, ok
}

// WeatherState is the condition reported for one observation
type WeatherState struct {
	ConditionID int    `json:"id"`
	Group       string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// IconURL returns the icon location of the state
func (s WeatherState) IconURL() string {
	return IconURL(s.Icon)
}

// PartOfDay returns the part of day encoded in the icon suffix
func (s WeatherState) PartOfDay() PartOfDay {
	if strings.HasSuffix(s.Icon, string(Night)) {
		return Night
	}
	return Day
}

// HasPrecipitation reports whether the condition belongs to a group that implies falling water or snow
func (s WeatherState) HasPrecipitation() bool {
	switch s.Group {
	case GroupThunderstorm, GroupDrizzle, GroupRain, GroupSnow:
		return true
	}
	return false
}
