// Package openweather provides a Go client library for the OpenWeatherMap API.
//
// The client builds requests for the current weather, forecast, one call, air pollution,
// UV index and geocoding endpoints and maps the responses into the value objects of the
// weather package.
//
// Basic Usage:
//
//	client := openweather.NewClient(os.Getenv("OWM_API_KEY"))
//
//	current, err := client.CurrentWeather(ctx,
//		openweather.ByCityName("Riga", "", "LV"),
//		openweather.Options{Units: weather.Metric, Language: language.Latvian})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("%s: %.1f%s\n", current.Location.Name,
//		current.Temperature.Value, current.Temperature.Unit)
//
// Locators:
//
// - ByCityName(): city name with optional state and country code
// - ByCityID(): numeric city id
// - ByCoordinates(): latitude and longitude
// - ByZipCode(): zip/post code with optional country code
//
// Errors returned by the API are *APIError values; errors.Is matches ErrInvalidAPIKey
// and ErrNoDataFound. Bad request parameters are reported as *ValidationError before any
// request is made, transport failures as *NetworkError and unparsable bodies as
// *response.ParseError.
//
// For more information about the API, visit: https://openweathermap.org/api
package openweather
