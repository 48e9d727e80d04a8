package response

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/devskill-org/openweathermap/weather"
)

const forecastFixture = `{
	"cod": "200",
	"cnt": 3,
	"list": [
		{"dt": 1661871600, "main": {"temp": 296.76, "feels_like": 296.98, "temp_min": 296.76, "temp_max": 297.87, "pressure": 1015, "sea_level": 1015, "grnd_level": 933, "humidity": 69},
		 "weather": [{"id": 500, "main": "Rain", "description": "light rain", "icon": "10d"}],
		 "clouds": {"all": 100}, "wind": {"speed": 0.62, "deg": 349, "gust": 1.18}, "visibility": 10000, "pop": 0.32,
		 "rain": {"3h": 0.26}, "sys": {"pod": "d"}},
		{"dt": 1661882400, "main": {"temp": 295.45, "pressure": 1015, "humidity": 71},
		 "weather": [{"id": 800}],
		 "clouds": {"all": 96}, "wind": {"speed": 1.97, "deg": 157}, "pop": 0.33, "sys": {"pod": "n"}},
		{"dt": 1661893200, "main": {"temp": 292.46, "pressure": 1015, "humidity": 80},
		 "weather": [{"id": 601, "main": "Snow", "description": "snow", "icon": "13n"}],
		 "snow": {"3h": 1.2}, "sys": {"pod": "n"}}
	],
	"city": {"id": 3163858, "name": "Zocca", "coord": {"lat": 44.34, "lon": 10.99}, "country": "IT",
	         "population": 4593, "timezone": 7200, "sunrise": 1661834187, "sunset": 1661882248}
}`

func TestForecast(t *testing.T) {
	f, err := Forecast([]byte(forecastFixture), weather.Metric)
	if err != nil {
		t.Fatalf("Forecast failed: %v", err)
	}
	if len(f.Entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(f.Entries))
	}

	want := weather.Location{
		ID:             3163858,
		Name:           "Zocca",
		CountryCode:    "IT",
		TimezoneOffset: weather.IntPtr(7200),
		Coordinates:    &weather.Coordinates{Latitude: 44.34, Longitude: 10.99},
		Population:     int64Ptr(4593),
	}
	got := f.Location
	if got.ID != want.ID || got.Name != want.Name || got.CountryCode != want.CountryCode {
		t.Errorf("Unexpected location %+v", got)
	}
	if !reflect.DeepEqual(got.Coordinates, want.Coordinates) || !reflect.DeepEqual(got.Population, want.Population) {
		t.Errorf("Unexpected coordinates/population %+v / %v", got.Coordinates, got.Population)
	}
	if got.Sunrise == nil || got.Sunrise.Unix() != 1661834187 || got.Sunset == nil || got.Sunset.Unix() != 1661882248 {
		t.Errorf("Unexpected sun times %v / %v", got.Sunrise, got.Sunset)
	}

	first := f.Entries[0]
	if first.Temperature.Value != 296.76 || *first.Temperature.Max != 297.87 || first.Temperature.Unit != "°C" {
		t.Errorf("Unexpected temperature %+v", first.Temperature)
	}
	if first.Pressure.GroundLevel == nil || *first.Pressure.GroundLevel != 933 {
		t.Errorf("Unexpected pressure %+v", first.Pressure)
	}
	if first.Rain == nil || first.Rain.ThreeHour == nil || *first.Rain.ThreeHour != 0.26 || first.Rain.OneHour != nil {
		t.Errorf("Unexpected rain %+v", first.Rain)
	}
	if first.PrecipitationProbability == nil || *first.PrecipitationProbability != 0.32 {
		t.Errorf("Unexpected pop %v", first.PrecipitationProbability)
	}
	if first.Visibility == nil || *first.Visibility != 10000 {
		t.Errorf("Unexpected visibility %v", first.Visibility)
	}
	if _, offset := first.ForecastedAt.Zone(); offset != 7200 {
		t.Errorf("Expected entries in the city zone, got offset %d", offset)
	}

	second := f.Entries[1]
	if second.PartOfDay != weather.Night || second.State.Icon != "01n" {
		t.Errorf("Expected night icon from sys.pod, got %q / %q", second.PartOfDay, second.State.Icon)
	}
	if second.Rain != nil || second.Snow != nil {
		t.Error("Expected no precipitation on the second entry")
	}

	third := f.Entries[2]
	if third.Snow == nil || *third.Snow.ThreeHour != 1.2 {
		t.Errorf("Unexpected snow %+v", third.Snow)
	}
	if third.Wind != nil || third.Clouds != nil {
		t.Error("Expected absent wind and clouds on the third entry")
	}
}

func TestHourlyForecastSharesLayout(t *testing.T) {
	data := strings.ReplaceAll(forecastFixture, `"3h"`, `"1h"`)

	f, err := HourlyForecast([]byte(data), weather.Imperial)
	if err != nil {
		t.Fatalf("HourlyForecast failed: %v", err)
	}
	if f.Entries[0].Rain.OneHour == nil || *f.Entries[0].Rain.OneHour != 0.26 {
		t.Errorf("Unexpected rain %+v", f.Entries[0].Rain)
	}
	if f.Entries[0].Wind.Unit != "mph" {
		t.Errorf("Expected mph, got %q", f.Entries[0].Wind.Unit)
	}
}

func TestForecastErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		path string
	}{
		{"missing city", strings.Replace(forecastFixture, `"city"`, `"town"`, 1), "city"},
		{"missing city name", strings.Replace(forecastFixture, `"name": "Zocca", `, ``, 1), "city"},
		{"missing list", `{"city": {"name": "Zocca"}}`, "list"},
		{"bad entry", strings.Replace(forecastFixture, `"temp": 295.45, `, ``, 1), "list[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Forecast([]byte(tt.data), weather.Metric)
			if !errors.Is(err, ErrCannotParse) {
				t.Fatalf("Expected ErrCannotParse, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.path) {
				t.Errorf("Expected %q in %q", tt.path, err.Error())
			}
		})
	}
}

const dailyJSON = `{
	"city": {"id": 2643743, "name": "London", "coord": {"lon": -0.1258, "lat": 51.5085}, "country": "GB", "population": 0, "timezone": 3600},
	"cod": "200",
	"cnt": 2,
	"list": [
		{"dt": 1661857200, "sunrise": 1661834187, "sunset": 1661882248,
		 "temp": {"day": 299.66, "min": 288.93, "max": 299.66, "night": 290.31, "eve": 297.16, "morn": 288.93},
		 "feels_like": {"day": 299.66, "night": 290.3, "eve": 297.1, "morn": 288.73},
		 "pressure": 1017, "humidity": 44,
		 "weather": [{"id": 500, "main": "Rain", "description": "light rain", "icon": "10d"}],
		 "speed": 2.7, "deg": 209, "gust": 3.58, "clouds": 53, "pop": 0.7, "rain": 2.51},
		{"dt": 1661943600, "temp": {"day": 295.76},
		 "pressure": 1014, "humidity": 60, "weather": [{"id": 601}], "snow": 4.2}
	]
}`

func TestDailyForecast(t *testing.T) {
	f, err := DailyForecast([]byte(dailyJSON), weather.Standard)
	if err != nil {
		t.Fatalf("DailyForecast failed: %v", err)
	}
	if len(f.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(f.Entries))
	}

	day := f.Entries[0]
	if day.Temperature.Day != 299.66 || day.Temperature.Night != 290.31 || day.Temperature.Morning != 288.93 {
		t.Errorf("Unexpected temperature %+v", day.Temperature)
	}
	if day.Temperature.Unit != "K" || day.Temperature.FeelsLikeEvening == nil || *day.Temperature.FeelsLikeEvening != 297.1 {
		t.Errorf("Unexpected temperature companions %+v", day.Temperature)
	}
	if day.Wind == nil || day.Wind.Speed != 2.7 || *day.Wind.Degrees != 209 || *day.Wind.Gust != 3.58 {
		t.Errorf("Unexpected wind %+v", day.Wind)
	}
	if day.Clouds == nil || day.Clouds.Coverage != 53 {
		t.Errorf("Unexpected clouds %+v", day.Clouds)
	}
	if day.RainVolume == nil || *day.RainVolume != 2.51 || day.SnowVolume != nil {
		t.Errorf("Unexpected volumes %v / %v", day.RainVolume, day.SnowVolume)
	}
	if day.Sunrise == nil || day.Sunrise.Unix() != 1661834187 {
		t.Errorf("Unexpected sunrise %v", day.Sunrise)
	}

	next := f.Entries[1]
	if next.Temperature.Evening != 295.76 || next.Temperature.Min != nil {
		t.Errorf("Expected day parts to default to the day value, got %+v", next.Temperature)
	}
	if next.State.Icon != "13d" {
		t.Errorf("Expected day icon from the table, got %q", next.State.Icon)
	}
	if next.SnowVolume == nil || *next.SnowVolume != 4.2 {
		t.Errorf("Unexpected snow volume %v", next.SnowVolume)
	}
	if next.Wind != nil {
		t.Errorf("Expected nil wind, got %+v", next.Wind)
	}
}

func TestDailyForecastRejectsInvertedRange(t *testing.T) {
	data := strings.Replace(dailyJSON, `"min": 288.93, "max": 299.66`, `"min": 300, "max": 299.66`, 1)

	_, err := DailyForecast([]byte(data), weather.Standard)
	var vErr *weather.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if !errors.Is(err, ErrCannotParse) {
		t.Errorf("Expected ErrCannotParse, got %v", err)
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}
