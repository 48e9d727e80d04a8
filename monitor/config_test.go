package monitor

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/devskill-org/openweathermap/weather"
)

func floatPtr(f float64) *float64 { return &f }

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.PollInterval != 10*time.Minute {
		t.Errorf("Expected poll interval 10m, got %v", config.PollInterval)
	}
	if config.Units != "metric" {
		t.Errorf("Expected metric units, got %s", config.Units)
	}
	if err := config.Validate(); err == nil {
		t.Error("Expected default config without api key and locations to be invalid")
	}
}

func TestLoadConfigFromReader(t *testing.T) {
	input := `{
		"api_key": "abcdef123456",
		"units": "imperial",
		"language": "pt-BR",
		"locations": [
			{"city": "Riga", "country": "LV"},
			{"city_id": 2643743},
			{"lat": 59.437, "lon": 24.7536},
			{"zip": "94040", "country": "US"}
		],
		"poll_interval": "5m",
		"forecast_interval": "1h30m",
		"retention": "168h",
		"sqlite_path": "weather.db",
		"server_port": 8080
	}`
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvPostgresConn, "")
	t.Setenv(EnvSQLitePath, "")

	config, err := LoadConfigFromReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadConfigFromReader failed: %v", err)
	}

	if config.APIKey != "abcdef123456" {
		t.Errorf("Expected api key, got %s", config.APIKey)
	}
	if config.PollInterval != 5*time.Minute {
		t.Errorf("Expected 5m, got %v", config.PollInterval)
	}
	if config.ForecastInterval != 90*time.Minute {
		t.Errorf("Expected 1h30m, got %v", config.ForecastInterval)
	}
	if config.Retention != 7*24*time.Hour {
		t.Errorf("Expected 168h, got %v", config.Retention)
	}
	if config.APITimeout != 30*time.Second {
		t.Errorf("Expected default api timeout, got %v", config.APITimeout)
	}
	if len(config.Locations) != 4 {
		t.Fatalf("Expected 4 locations, got %d", len(config.Locations))
	}
	if config.Locations[2].Latitude == nil || *config.Locations[2].Latitude != 59.437 {
		t.Errorf("Unexpected coordinates location %+v", config.Locations[2])
	}

	opts, err := config.Options()
	if err != nil {
		t.Fatalf("Options failed: %v", err)
	}
	if opts.Units != weather.Imperial {
		t.Errorf("Expected imperial, got %s", opts.Units)
	}
	if opts.Language.String() != language.BrazilianPortuguese.String() {
		t.Errorf("Expected pt-BR, got %s", opts.Language)
	}
}

func TestLoadConfigFromReaderErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"malformed json", `{"api_key": `, "failed to decode"},
		{"bad duration", `{"api_key": "k", "poll_interval": "soon"}`, "invalid poll_interval"},
		{"missing locations", `{"api_key": "k"}`, "locations cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvAPIKey, "")
			_, err := LoadConfigFromReader(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvAPIKey, "from-env")
	t.Setenv(EnvSQLitePath, "/tmp/env.db")
	t.Setenv(EnvPostgresConn, "")

	input := `{"api_key": "from-file", "locations": [{"city": "Riga"}]}`
	config, err := LoadConfigFromReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadConfigFromReader failed: %v", err)
	}

	if config.APIKey != "from-env" {
		t.Errorf("Expected api key from environment, got %s", config.APIKey)
	}
	if config.SQLitePath != "/tmp/env.db" {
		t.Errorf("Expected sqlite path from environment, got %s", config.SQLitePath)
	}
}

func TestLoadConfigWithDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(EnvAPIKey, "")
	os.Unsetenv(EnvAPIKey)

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvAPIKey+"=dotenv-key\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(dir, "config.json")
	if err := os.WriteFile(configPath, []byte(`{"locations": [{"city_id": 456172}]}`), 0o600); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.APIKey != "dotenv-key" {
		t.Errorf("Expected api key from .env, got %s", config.APIKey)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := LoadConfig("does-not-exist.json"); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		c := DefaultConfig()
		c.APIKey = "key"
		c.Locations = []LocationConfig{{City: "Riga", Country: "LV"}}
		return c
	}

	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty api key", func(c *Config) { c.APIKey = "" }, "api_key"},
		{"empty base url", func(c *Config) { c.BaseURL = "" }, "base_url"},
		{"zero api timeout", func(c *Config) { c.APITimeout = 0 }, "api_timeout"},
		{"unknown units", func(c *Config) { c.Units = "kelvin" }, "units"},
		{"bad language tag", func(c *Config) { c.Language = "not a tag" }, "language"},
		{"unsupported language", func(c *Config) { c.Language = "am" }, "language"},
		{"no locations", func(c *Config) { c.Locations = nil }, "locations"},
		{"empty location", func(c *Config) { c.Locations = []LocationConfig{{}} }, "locations[0]"},
		{"zero poll interval", func(c *Config) { c.PollInterval = 0 }, "poll_interval"},
		{"zero forecast interval", func(c *Config) { c.ForecastInterval = 0 }, "forecast_interval"},
		{"negative retention", func(c *Config) { c.Retention = -time.Hour }, "retention"},
		{"zero retention", func(c *Config) { c.Retention = 0 }, ""},
		{"two stores", func(c *Config) { c.SQLitePath = "a.db"; c.PostgresConnString = "postgres://" }, "cannot both"},
		{"port out of range", func(c *Config) { c.ServerPort = 70000 }, "server_port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.modify(c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLocationConfigLocator(t *testing.T) {
	tests := []struct {
		name    string
		loc     LocationConfig
		label   string
		wantErr bool
	}{
		{"city", LocationConfig{City: "Springfield", State: "IL", Country: "US"}, "Springfield,IL,US", false},
		{"city id", LocationConfig{CityID: 456172}, "id=456172", false},
		{"coordinates", LocationConfig{Latitude: floatPtr(56.9496), Longitude: floatPtr(24.1052)}, "56.9496,24.1052", false},
		{"zip", LocationConfig{Zip: "94040", Country: "US"}, "zip=94040", false},
		{"empty", LocationConfig{}, "<empty>", true},
		{"latitude only", LocationConfig{Latitude: floatPtr(10)}, "<empty>", true},
		{"out of range", LocationConfig{Latitude: floatPtr(91), Longitude: floatPtr(0)}, "91.0000,0.0000", true},
		{"two selectors", LocationConfig{City: "Riga", CityID: 456172}, "Riga", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := tt.loc.Locator()
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error")
				}
			} else if err != nil || loc == nil {
				t.Errorf("Expected locator, got %v", err)
			}
			if got := tt.loc.String(); got != tt.label {
				t.Errorf("Expected label %q, got %q", tt.label, got)
			}
		})
	}
}

func TestConfigJSONRoundTrip(t *testing.T) {
	config := DefaultConfig()
	config.APIKey = "key"
	config.Locations = []LocationConfig{{City: "Riga"}}
	config.PollInterval = 2 * time.Minute

	var buf bytes.Buffer
	if err := config.SaveConfigToWriter(&buf); err != nil {
		t.Fatalf("SaveConfigToWriter failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"poll_interval": "2m0s"`) {
		t.Errorf("Expected duration encoded as string, got %s", buf.String())
	}

	t.Setenv(EnvAPIKey, "")
	loaded, err := LoadConfigFromReader(&buf)
	if err != nil {
		t.Fatalf("LoadConfigFromReader failed: %v", err)
	}
	if loaded.PollInterval != config.PollInterval || loaded.ForecastInterval != config.ForecastInterval {
		t.Errorf("Durations did not survive round trip: %v, %v", loaded.PollInterval, loaded.ForecastInterval)
	}
}

func TestConfigStringRedactsKey(t *testing.T) {
	config := DefaultConfig()
	config.APIKey = "abcdef123456"

	s := config.String()
	if strings.Contains(s, "abcdef123456") {
		t.Error("Expected api key to be redacted")
	}
	if !strings.Contains(s, "abcd***") {
		t.Errorf("Expected redacted prefix, got %s", s)
	}
	if config.APIKey != "abcdef123456" {
		t.Error("String must not modify the config")
	}
}
