package monitor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/devskill-org/openweathermap/store"
	"github.com/devskill-org/openweathermap/weather"
)

func newTestServer(t *testing.T, st store.Store) (*Monitor, *WebServer, *httptest.Server) {
	t.Helper()
	m, _ := newTestMonitor(t, st, "Riga,LV", "Tallinn,EE")
	ws := newWebServer(m)
	m.webServer = ws
	server := httptest.NewServer(ws.Handler())
	t.Cleanup(server.Close)
	return m, ws, server
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %s", ct)
	}
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("Failed to decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestNewWebServerDisabled(t *testing.T) {
	if ws := NewWebServer(nil, 0); ws != nil {
		t.Error("Expected nil web server for port 0")
	}

	var ws *WebServer
	if err := ws.Start(); err != nil {
		t.Errorf("Expected nil web server start to be a no-op, got %v", err)
	}
	if err := ws.Stop(context.Background()); err != nil {
		t.Errorf("Expected nil web server stop to be a no-op, got %v", err)
	}
}

func TestHealthHandler(t *testing.T) {
	m, _, server := newTestServer(t, nil)

	var health HealthResponse
	if code := getJSON(t, server.URL+"/api/health", &health); code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 while stopped, got %d", code)
	}
	if health.Status != "unhealthy" {
		t.Errorf("Expected unhealthy, got %s", health.Status)
	}
	if health.Monitor.LocationsCount != 2 {
		t.Errorf("Expected 2 locations, got %d", health.Monitor.LocationsCount)
	}

	m.mu.Lock()
	m.isRunning = true
	m.mu.Unlock()

	health = HealthResponse{}
	if code := getJSON(t, server.URL+"/api/health", &health); code != http.StatusOK {
		t.Errorf("Expected 200 while running, got %d", code)
	}
	if health.Status != "healthy" || health.Version != version {
		t.Errorf("Unexpected health %+v", health)
	}

	m.mu.Lock()
	m.lastError = "Atlantis: city not found"
	m.mu.Unlock()

	health = HealthResponse{}
	if code := getJSON(t, server.URL+"/api/health", &health); code != http.StatusOK {
		t.Errorf("Expected 200 while degraded, got %d", code)
	}
	if health.Status != "degraded" {
		t.Errorf("Expected degraded, got %s", health.Status)
	}
}

func TestHealthMethodNotAllowed(t *testing.T) {
	_, _, server := newTestServer(t, nil)

	resp, err := http.Post(server.URL+"/api/health", "application/json", strings.NewReader("{}"))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", resp.StatusCode)
	}
}

func TestWeatherHandlers(t *testing.T) {
	m, _, server := newTestServer(t, nil)

	var empty []weather.CurrentWeather
	if code := getJSON(t, server.URL+"/api/weather", &empty); code != http.StatusOK {
		t.Errorf("Expected 200, got %d", code)
	}
	if len(empty) != 0 {
		t.Errorf("Expected empty list before polling, got %d", len(empty))
	}

	if err := m.PollCurrent(context.Background()); err != nil {
		t.Fatalf("PollCurrent failed: %v", err)
	}
	if err := m.PollForecast(context.Background()); err != nil {
		t.Fatalf("PollForecast failed: %v", err)
	}

	var list []weather.CurrentWeather
	getJSON(t, server.URL+"/api/weather", &list)
	if len(list) != 2 || list[0].Location.Name != "Riga" {
		t.Fatalf("Unexpected list %+v", list)
	}

	var current weather.CurrentWeather
	if code := getJSON(t, server.URL+"/api/weather/588409", &current); code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	if current.Location.Name != "Tallinn" || current.Temperature.Value != 2.25 {
		t.Errorf("Unexpected current weather %+v", current)
	}
	if current.Wind == nil || current.Wind.Speed != 4.1 {
		t.Errorf("Unexpected wind %+v", current.Wind)
	}

	var forecast weather.Forecast
	if code := getJSON(t, server.URL+"/api/forecast/456172", &forecast); code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	if len(forecast.Entries) != 2 || forecast.Location.Name != "Riga" {
		t.Errorf("Unexpected forecast %+v", forecast)
	}

	tests := []struct {
		name string
		path string
		code int
	}{
		{"unknown weather id", "/api/weather/1", http.StatusNotFound},
		{"invalid weather id", "/api/weather/riga", http.StatusBadRequest},
		{"negative weather id", "/api/weather/-5", http.StatusBadRequest},
		{"unknown forecast id", "/api/forecast/1", http.StatusNotFound},
		{"history without store", "/api/history/456172", http.StatusNotImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body map[string]string
			if code := getJSON(t, server.URL+tt.path, &body); code != tt.code {
				t.Errorf("Expected %d, got %d", tt.code, code)
			}
			if body["error"] == "" {
				t.Error("Expected error message in body")
			}
		})
	}
}

func TestHistoryHandler(t *testing.T) {
	st := newTestStore(t)
	m, _, server := newTestServer(t, st)

	if err := m.PollCurrent(context.Background()); err != nil {
		t.Fatalf("PollCurrent failed: %v", err)
	}

	// the fake observations are from 2023, so the default window is empty
	var recent []store.Observation
	if code := getJSON(t, server.URL+"/api/history/456172", &recent); code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	if len(recent) != 0 {
		t.Errorf("Expected no recent observations, got %d", len(recent))
	}

	var all []store.Observation
	getJSON(t, server.URL+"/api/history/456172?since=87600h", &all)
	if len(all) != 1 || all[0].LocationName != "Riga" {
		t.Errorf("Unexpected history %+v", all)
	}

	var body map[string]string
	if code := getJSON(t, server.URL+"/api/history/456172?since=yesterday", &body); code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", code)
	}
}

func TestWebSocketStatus(t *testing.T) {
	m, ws, server := newTestServer(t, nil)
	go ws.handleBroadcasts()
	t.Cleanup(func() { ws.Stop(context.Background()) })

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var initial StatusUpdate
	if err := conn.ReadJSON(&initial); err != nil {
		t.Fatalf("Failed to read initial status: %v", err)
	}
	if initial.Type != "status_update" {
		t.Errorf("Expected status_update, got %s", initial.Type)
	}
	if len(initial.Weather) != 0 {
		t.Errorf("Expected no weather before polling, got %d", len(initial.Weather))
	}

	// a poll pushes an update to connected clients
	if err := m.PollCurrent(context.Background()); err != nil {
		t.Fatalf("PollCurrent failed: %v", err)
	}

	var update StatusUpdate
	if err := conn.ReadJSON(&update); err != nil {
		t.Fatalf("Failed to read status update: %v", err)
	}
	if len(update.Weather) != 2 {
		t.Errorf("Expected 2 locations in update, got %d", len(update.Weather))
	}
	if update.Health.Monitor.Polls != 1 {
		t.Errorf("Expected 1 poll, got %d", update.Health.Monitor.Polls)
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{42 * time.Second, "42s"},
		{1500 * time.Millisecond, "2s"},
		{3*time.Minute + 5*time.Second, "3m5s"},
		{26*time.Hour + 61*time.Second, "26h1m1s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatUptime(tt.d); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}
