// Package main provides an example of using the openweather client to fetch current weather and forecasts.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/text/language"

	"github.com/devskill-org/openweathermap/openweather"
	"github.com/devskill-org/openweathermap/response"
	"github.com/devskill-org/openweathermap/weather"
)

func main() {
	apiKey := os.Getenv("OWM_API_KEY")
	if apiKey == "" {
		log.Fatal("OWM_API_KEY is not set")
	}

	client := openweather.NewClient(apiKey)
	client.SetLogger(log.New(os.Stderr, "[OWM] ", log.LstdFlags))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Riga, Latvia
	loc := openweather.ByCoordinates(56.9496, 24.1052)
	opts := openweather.Options{Units: weather.Metric, Language: language.English}

	current, err := client.CurrentWeather(ctx, loc, opts)
	if err != nil {
		// Handle different error types
		var apiErr *openweather.APIError
		var valErr *openweather.ValidationError
		var netErr *openweather.NetworkError
		switch {
		case errors.Is(err, openweather.ErrInvalidAPIKey):
			log.Fatal("The API key was rejected")
		case errors.As(err, &apiErr):
			log.Fatalf("API error %d: %s", apiErr.StatusCode, apiErr.Message)
		case errors.As(err, &valErr):
			log.Fatalf("Validation error: %s", valErr.Message)
		case errors.As(err, &netErr):
			log.Fatalf("Network error: %v", netErr.Err)
		case errors.Is(err, response.ErrCannotParse):
			log.Fatalf("Unexpected response: %v", err)
		default:
			log.Fatalf("Unknown error: %v", err)
		}
	}

	fmt.Println("=== CURRENT WEATHER ===")
	fmt.Printf("Location: %s, %s\n", current.Location.Name, current.Location.CountryCode)
	fmt.Printf("Observed: %s\n", current.ObservedAt.Format("2006-01-02 15:04 MST"))
	fmt.Printf("Temperature: %.1f%s\n", current.Temperature.Value, current.Temperature.Unit)
	if current.Temperature.FeelsLike != nil {
		fmt.Printf("Feels like: %.1f%s\n", *current.Temperature.FeelsLike, current.Temperature.Unit)
	}
	fmt.Printf("Humidity: %d%%\n", current.Humidity.Percentage)
	fmt.Printf("Pressure: %.0f %s\n", current.Pressure.Value, weather.PressureUnit)

	if current.Wind != nil {
		fmt.Printf("Wind: %.1f %s %s\n", current.Wind.Speed, current.Wind.Unit, current.Wind.Direction())
	}
	if current.Clouds != nil {
		fmt.Printf("Cloud coverage: %d%%\n", current.Clouds.Coverage)
	}
	if current.State != nil {
		fmt.Printf("Weather condition: %s (%s)\n", current.State.Description, current.State.IconURL())
	}

	if current.HasPrecipitation() {
		fmt.Println("☔ Precipitation reported")
	} else {
		fmt.Println("☀️ No precipitation reported")
	}

	fmt.Println()

	forecast, err := client.Forecast(ctx, loc, opts)
	if err != nil {
		log.Fatalf("Forecast failed: %v", err)
	}

	now := time.Now()
	next24h := forecast.Between(now, now.Add(24*time.Hour))

	fmt.Println("=== NEXT 24 HOURS ===")
	for _, step := range next24h {
		fmt.Printf("%s | %.1f%s", step.ForecastedAt.Format("Mon 15:04"), step.Temperature.Value, step.Temperature.Unit)
		if step.HasPrecipitation() {
			fmt.Print(" | ☔")
		}
		if step.PrecipitationProbability != nil {
			fmt.Printf(" | %.0f%%", *step.PrecipitationProbability*100)
		}
		fmt.Println()
	}

	fmt.Println()

	air, err := client.AirPollution(ctx, weather.Coordinates{Latitude: 56.9496, Longitude: 24.1052})
	if err != nil {
		log.Fatalf("Air pollution failed: %v", err)
	}
	if len(air.Entries) > 0 {
		entry := air.Entries[0]
		fmt.Println("=== AIR QUALITY ===")
		fmt.Printf("Index: %d (%s)\n", entry.Index, entry.Index)
		fmt.Printf("PM2.5: %.1f μg/m3, PM10: %.1f μg/m3\n", entry.Components.PM25, entry.Components.PM10)
	}
}
