package monitor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/devskill-org/openweathermap/openweather"
	"github.com/devskill-org/openweathermap/weather"
)

// Environment variables that override the file configuration
const (
	EnvAPIKey       = "OWM_API_KEY"
	EnvPostgresConn = "OWM_POSTGRES_CONN"
	EnvSQLitePath   = "OWM_SQLITE_PATH"
)

// LocationConfig selects one monitored place. Exactly one of city, city_id,
// coordinates or zip must be set.
type LocationConfig struct {
	City      string   `json:"city,omitempty"`
	State     string   `json:"state,omitempty"`
	Country   string   `json:"country,omitempty"`
	CityID    int64    `json:"city_id,omitempty"`
	Latitude  *float64 `json:"lat,omitempty"`
	Longitude *float64 `json:"lon,omitempty"`
	Zip       string   `json:"zip,omitempty"`
}

// Locator converts the entry to a request locator
func (l LocationConfig) Locator() (openweather.Locator, error) {
	set := 0
	var loc openweather.Locator

	if l.City != "" {
		set++
		loc = openweather.ByCityName(l.City, l.State, l.Country)
	}
	if l.CityID != 0 {
		set++
		loc = openweather.ByCityID(l.CityID)
	}
	if l.Latitude != nil || l.Longitude != nil {
		if l.Latitude == nil || l.Longitude == nil {
			return nil, fmt.Errorf("both lat and lon are required")
		}
		set++
		coords := weather.Coordinates{Latitude: *l.Latitude, Longitude: *l.Longitude}
		if err := openweather.ValidateCoordinates(coords); err != nil {
			return nil, err
		}
		loc = openweather.ByCoordinates(coords.Latitude, coords.Longitude)
	}
	if l.Zip != "" {
		set++
		loc = openweather.ByZipCode(l.Zip, l.Country)
	}

	switch set {
	case 0:
		return nil, fmt.Errorf("one of city, city_id, lat/lon or zip is required")
	case 1:
		return loc, nil
	default:
		return nil, fmt.Errorf("only one of city, city_id, lat/lon or zip may be set")
	}
}

// String returns a short label for logs
func (l LocationConfig) String() string {
	switch {
	case l.City != "":
		parts := []string{l.City}
		if l.State != "" {
			parts = append(parts, l.State)
		}
		if l.Country != "" {
			parts = append(parts, l.Country)
		}
		return strings.Join(parts, ",")
	case l.CityID != 0:
		return fmt.Sprintf("id=%d", l.CityID)
	case l.Latitude != nil && l.Longitude != nil:
		return fmt.Sprintf("%.4f,%.4f", *l.Latitude, *l.Longitude)
	case l.Zip != "":
		return "zip=" + l.Zip
	}
	return "<empty>"
}

// Config represents the configuration of the weather monitor
type Config struct {
	// API settings
	APIKey     string        `json:"api_key"`     // OpenWeatherMap API key
	BaseURL    string        `json:"base_url"`    // API base URL
	APITimeout time.Duration `json:"api_timeout"` // Timeout for API calls
	UserAgent  string        `json:"user_agent"`  // User agent for API requests
	Units      string        `json:"units"`       // standard, metric or imperial
	Language   string        `json:"language"`    // BCP 47 tag, e.g. "en", "pt-BR"

	// Polling
	Locations        []LocationConfig `json:"locations"`
	PollInterval     time.Duration    `json:"poll_interval"`     // How often to fetch current weather
	ForecastInterval time.Duration    `json:"forecast_interval"` // How often to fetch forecasts
	Retention        time.Duration    `json:"retention"`         // How long observations are kept (0 = forever)

	// Storage
	PostgresConnString string `json:"postgres_conn_string"` // PostgreSQL connection string
	SQLitePath         string `json:"sqlite_path"`          // SQLite database file

	// Web server
	ServerPort int `json:"server_port"` // Port for the web server (0 = disabled)
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		BaseURL:          openweather.DefaultBaseURL,
		APITimeout:       30 * time.Second,
		UserAgent:        "openweathermap-monitor/1.0",
		Units:            string(weather.Metric),
		Language:         "en",
		PollInterval:     10 * time.Minute,
		ForecastInterval: 3 * time.Hour,
		Retention:        30 * 24 * time.Hour,
		ServerPort:       0,
	}
}

// LoadConfig loads configuration from a JSON file. A .env file in the working
// directory is loaded first, so its values can override the file.
func LoadConfig(filename string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader and applies the
// environment overrides
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	config := DefaultConfig()

	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config JSON: %w", err)
	}

	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvPostgresConn); v != "" {
		c.PostgresConnString = v
	}
	if v := os.Getenv(EnvSQLitePath); v != "" {
		c.SQLitePath = v
	}
}

// SaveConfigToWriter saves the configuration to an io.Writer
func (c *Config) SaveConfigToWriter(writer io.Writer) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config JSON: %w", err)
	}

	return nil
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key cannot be empty (or set %s)", EnvAPIKey)
	}

	if c.BaseURL == "" {
		return fmt.Errorf("base_url cannot be empty")
	}

	if c.APITimeout <= 0 {
		return fmt.Errorf("api_timeout must be greater than 0, got: %s", c.APITimeout)
	}

	if _, err := weather.ParseUnitSystem(c.Units); err != nil {
		return fmt.Errorf("invalid units: %w", err)
	}

	if _, err := c.Options(); err != nil {
		return err
	}

	if len(c.Locations) == 0 {
		return fmt.Errorf("locations cannot be empty")
	}
	for i, l := range c.Locations {
		if _, err := l.Locator(); err != nil {
			return fmt.Errorf("locations[%d]: %w", i, err)
		}
	}

	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be greater than 0, got: %s", c.PollInterval)
	}

	if c.ForecastInterval <= 0 {
		return fmt.Errorf("forecast_interval must be greater than 0, got: %s", c.ForecastInterval)
	}

	if c.Retention < 0 {
		return fmt.Errorf("retention must be non-negative, got: %s", c.Retention)
	}

	if c.PostgresConnString != "" && c.SQLitePath != "" {
		return fmt.Errorf("postgres_conn_string and sqlite_path cannot both be set")
	}

	if c.ServerPort < 0 || c.ServerPort > 65535 {
		return fmt.Errorf("server_port must be between 0 and 65535, got: %d", c.ServerPort)
	}

	return nil
}

// Options returns the request options described by the configuration
func (c *Config) Options() (openweather.Options, error) {
	units, err := weather.ParseUnitSystem(c.Units)
	if err != nil {
		return openweather.Options{}, fmt.Errorf("invalid units: %w", err)
	}

	opts := openweather.Options{Units: units}
	if c.Language != "" {
		tag, err := language.Parse(c.Language)
		if err != nil {
			return openweather.Options{}, fmt.Errorf("invalid language %q: %w", c.Language, err)
		}
		opts.Language = tag
	}
	if err := opts.Validate(); err != nil {
		return openweather.Options{}, fmt.Errorf("invalid language %q: %w", c.Language, err)
	}
	return opts, nil
}

// MarshalJSON implements custom JSON marshaling to handle durations
func (c *Config) MarshalJSON() ([]byte, error) {
	type Alias Config
	return json.Marshal(&struct {
		*Alias
		APITimeout       string `json:"api_timeout"`
		PollInterval     string `json:"poll_interval"`
		ForecastInterval string `json:"forecast_interval"`
		Retention        string `json:"retention"`
	}{
		Alias:            (*Alias)(c),
		APITimeout:       c.APITimeout.String(),
		PollInterval:     c.PollInterval.String(),
		ForecastInterval: c.ForecastInterval.String(),
		Retention:        c.Retention.String(),
	})
}

// UnmarshalJSON implements custom JSON unmarshaling to handle durations
func (c *Config) UnmarshalJSON(data []byte) error {
	type Alias Config
	aux := &struct {
		*Alias
		APITimeout       string `json:"api_timeout"`
		PollInterval     string `json:"poll_interval"`
		ForecastInterval string `json:"forecast_interval"`
		Retention        string `json:"retention"`
	}{
		Alias: (*Alias)(c),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var err error
	if aux.APITimeout != "" {
		if c.APITimeout, err = time.ParseDuration(aux.APITimeout); err != nil {
			return fmt.Errorf("invalid api_timeout: %w", err)
		}
	}

	if aux.PollInterval != "" {
		if c.PollInterval, err = time.ParseDuration(aux.PollInterval); err != nil {
			return fmt.Errorf("invalid poll_interval: %w", err)
		}
	}

	if aux.ForecastInterval != "" {
		if c.ForecastInterval, err = time.ParseDuration(aux.ForecastInterval); err != nil {
			return fmt.Errorf("invalid forecast_interval: %w", err)
		}
	}

	if aux.Retention != "" {
		if c.Retention, err = time.ParseDuration(aux.Retention); err != nil {
			return fmt.Errorf("invalid retention: %w", err)
		}
	}

	return nil
}

// String returns a string representation of the config with the API key redacted
func (c *Config) String() string {
	redacted := *c
	if len(redacted.APIKey) > 4 {
		redacted.APIKey = redacted.APIKey[:4] + "***"
	} else if redacted.APIKey != "" {
		redacted.APIKey = "***"
	}
	data, _ := json.MarshalIndent(&redacted, "", "  ")
	return string(data)
}
