// Package main provides the weather monitor entry point and CLI interface.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devskill-org/openweathermap/monitor"
	"github.com/devskill-org/openweathermap/openweather"
	"github.com/devskill-org/openweathermap/store"
)

func main() {
	// Command line flags
	var (
		configFile = flag.String("config", "config.json", "Configuration file path")
		help       = flag.Bool("help", false, "Show help message")
		serverOnly = flag.Bool("serverOnly", false, "Run only web server without periodic polling")
		once       = flag.Bool("once", false, "Poll every location once, print the results and exit")
		verbose    = flag.Bool("verbose", false, "Log every API request")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	config, err := monitor.LoadConfig(*configFile)
	if err != nil {
		fmt.Println("Error loading configuration:", err)
		return
	}

	logger := log.New(os.Stdout, "[MONITOR] ", log.LstdFlags)

	client := openweather.NewClientWithHTTPClient(&http.Client{Timeout: config.APITimeout}, config.APIKey)
	client.SetBaseURL(config.BaseURL)
	client.SetUserAgent(config.UserAgent)
	if *verbose {
		client.SetLogger(log.New(os.Stdout, "[OWM] ", log.LstdFlags))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := openStore(ctx, config)
	if err != nil {
		fmt.Println("Error opening observation store:", err)
		return
	}
	if st != nil {
		defer st.Close()
	}

	if *once {
		runOnce(ctx, config, client, st, logger)
		return
	}

	fmt.Printf("Starting weather monitor with the following configuration:\n")
	fmt.Printf("  Locations: %d\n", len(config.Locations))
	for _, l := range config.Locations {
		fmt.Printf("    - %s\n", l)
	}
	fmt.Printf("  Units: %s\n", config.Units)
	fmt.Printf("  Poll Interval: %s\n", config.PollInterval)
	fmt.Printf("  Forecast Interval: %s\n", config.ForecastInterval)
	if config.ServerPort > 0 {
		fmt.Printf("  Web Server Port: %d\n", config.ServerPort)
	}
	fmt.Println()

	weatherMonitor := monitor.NewWithWebServer(config, client, st, logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := weatherMonitor.Start(ctx, *serverOnly); err != nil {
			if !errors.Is(err, context.Canceled) {
				logger.Printf("Monitor error: %v", err)
			}
		}
	}()

	logger.Printf("Monitor started. Press Ctrl+C to stop...")

	<-sigChan
	logger.Printf("Shutdown signal received, stopping monitor...")

	cancel()
	weatherMonitor.Stop()

	logger.Printf("Monitor stopped successfully")
}

// openStore opens the configured observation store; nil when none is configured
func openStore(ctx context.Context, config *monitor.Config) (store.Store, error) {
	switch {
	case config.PostgresConnString != "":
		return store.NewPostgres(ctx, config.PostgresConnString)
	case config.SQLitePath != "":
		return store.NewSQLite(ctx, config.SQLitePath)
	}
	return nil, nil
}

func runOnce(ctx context.Context, config *monitor.Config, client *openweather.Client, st store.Store, logger *log.Logger) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(len(config.Locations)+1)*2*config.APITimeout)
	defer cancel()

	weatherMonitor := monitor.New(config, client, st, logger)
	if err := weatherMonitor.PollCurrent(ctx); err != nil {
		logger.Printf("Current weather poll: %v", err)
	}
	if err := weatherMonitor.PollForecast(ctx); err != nil {
		logger.Printf("Forecast poll: %v", err)
	}

	fmt.Println("\n========================================")
	fmt.Println("CURRENT WEATHER")
	fmt.Println("========================================")
	fmt.Printf("%-10s %-20s %-3s %10s %8s %10s %-14s %s\n", "ID", "Location", "CC", "Temp", "Humid", "Wind", "Observed", "Conditions")

	for _, current := range weatherMonitor.CurrentWeather() {
		wind := "-"
		if current.Wind != nil {
			wind = fmt.Sprintf("%.1f %s", current.Wind.Speed, current.Wind.Direction())
		}
		conditions := "-"
		if current.State != nil {
			conditions = current.State.Description
		}
		fmt.Printf("%-10d %-20s %-3s %8.1f%-2s %7d%% %10s %-14s %s\n",
			current.Location.ID,
			current.Location.Name,
			current.Location.CountryCode,
			current.Temperature.Value,
			current.Temperature.Unit,
			current.Humidity.Percentage,
			wind,
			current.ObservedAt.Format("01-02 15:04"),
			conditions,
		)

		forecast, ok := weatherMonitor.ForecastByID(current.Location.ID)
		if !ok {
			continue
		}
		next := forecast.Between(time.Now(), time.Now().Add(24*time.Hour))
		for _, entry := range next {
			fmt.Printf("%-10s %-20s %-3s %8.1f%-2s %7d%% %10s %-14s\n",
				"", "  forecast", "",
				entry.Temperature.Value,
				entry.Temperature.Unit,
				entry.Humidity.Percentage,
				"",
				entry.ForecastedAt.Format("01-02 15:04"),
			)
		}
	}
	fmt.Println("========================================")
}

func showHelp() {
	fmt.Println("Weather Monitor - Poll OpenWeatherMap for a set of locations")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Periodically fetches the current weather and the 5 day / 3 hour forecast for the")
	fmt.Println("  configured locations, stores observations in PostgreSQL or SQLite and serves the")
	fmt.Println("  latest data over HTTP and a websocket.")
	fmt.Println()
	fmt.Println("  Environment:")
	fmt.Printf("  - %s overrides api_key\n", monitor.EnvAPIKey)
	fmt.Printf("  - %s overrides postgres_conn_string\n", monitor.EnvPostgresConn)
	fmt.Printf("  - %s overrides sqlite_path\n", monitor.EnvSQLitePath)
	fmt.Println("  A .env file in the working directory is loaded first.")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  owm-monitor [OPTIONS]")
	fmt.Println()
	fmt.Println("OPTIONS:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  # Basic usage with default settings")
	fmt.Println("  owm-monitor")
	fmt.Println()
	fmt.Println("  # Custom configuration")
	fmt.Println("  owm-monitor --config=config.json")
	fmt.Println()
	fmt.Println("  # Poll once and print a table")
	fmt.Println("  owm-monitor -once")
	fmt.Println()
	fmt.Println("  # Run only web server without periodic polling")
	fmt.Println("  owm-monitor -serverOnly")
	fmt.Println()
	fmt.Println("  # Show this help")
	fmt.Println("  owm-monitor -help")
}
