// Package monitor polls OpenWeatherMap for a set of locations, caches the latest
// results, stores observations and serves them over HTTP.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/devskill-org/openweathermap/openweather"
	"github.com/devskill-org/openweathermap/store"
	"github.com/devskill-org/openweathermap/weather"
)

// task is one polling job of the monitor
type task struct {
	name  string
	first time.Duration // delay before the first run
	every time.Duration
	fn    func()
}

// run calls fn after the first delay and then on every tick until ctx is done or stop is closed
func (t *task) run(ctx context.Context, stop <-chan struct{}, logger *log.Logger) {
	if t.first > 0 {
		logger.Printf("%s: first run in %v", t.name, t.first.Round(time.Second))
		if reason := wait(ctx, stop, time.After(t.first)); reason != "" {
			logger.Printf("%s: %s before the first run", t.name, reason)
			return
		}
	}
	t.fn()

	ticker := time.NewTicker(t.every)
	defer ticker.Stop()
	logger.Printf("%s: running every %v", t.name, t.every)

	for {
		if reason := wait(ctx, stop, ticker.C); reason != "" {
			logger.Printf("%s: %s", t.name, reason)
			return
		}
		t.fn()
	}
}

// wait blocks until tick fires and returns ""; otherwise it returns why it gave up
func wait(ctx context.Context, stop <-chan struct{}, tick <-chan time.Time) string {
	select {
	case <-tick:
		return ""
	case <-ctx.Done():
		return "cancelled"
	case <-stop:
		return "stopped"
	}
}

// Monitor polls the configured locations, caches the latest results and
// persists observations
type Monitor struct {
	config *Config
	client *openweather.Client
	store  store.Store

	// State
	current   map[int64]*weather.CurrentWeather
	forecasts map[int64]*weather.Forecast
	lastPoll  time.Time
	lastRunID uuid.UUID
	lastError string
	polls     int
	isRunning bool
	stopChan  chan struct{}
	mu        sync.RWMutex

	webServer *WebServer
	logger    *log.Logger
}

// New creates a monitor. st may be nil, in which case nothing is persisted.
func New(config *Config, client *openweather.Client, st store.Store, logger *log.Logger) *Monitor {
	if logger == nil {
		logger = log.Default()
	}

	return &Monitor{
		config:    config,
		client:    client,
		store:     st,
		current:   make(map[int64]*weather.CurrentWeather),
		forecasts: make(map[int64]*weather.Forecast),
		stopChan:  make(chan struct{}),
		logger:    logger,
	}
}

// NewWithWebServer creates a monitor serving its state on config.ServerPort
func NewWithWebServer(config *Config, client *openweather.Client, st store.Store, logger *log.Logger) *Monitor {
	m := New(config, client, st, logger)
	m.webServer = NewWebServer(m, config.ServerPort)
	return m
}

// GetConfig returns the current configuration
func (m *Monitor) GetConfig() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// untilNextSlot returns how long after now the next multiple of every, counted from the
// top of the hour, begins
func untilNextSlot(now time.Time, every time.Duration) time.Duration {
	top := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, now.Location())
	if rem := now.Sub(top) % every; rem > 0 {
		return every - rem
	}
	return 0
}

// Start runs the polling tasks until ctx is cancelled or Stop is called. It returns
// ctx.Err() after a cancellation and nil after Stop. With serverOnly only the web
// server is started.
func (m *Monitor) Start(ctx context.Context, serverOnly bool) error {
	m.mu.Lock()
	if m.isRunning {
		m.mu.Unlock()
		return fmt.Errorf("monitor is already running")
	}
	m.isRunning = true
	m.stopChan = make(chan struct{})
	m.mu.Unlock()

	if m.webServer != nil {
		err := m.webServer.Start()
		if err != nil {
			m.logger.Printf("Failed to start web server: %v", err)
		} else {
			m.logger.Printf("Web server started on port %d", m.webServer.port)
		}
		if serverOnly {
			return err
		}
	}

	config := m.GetConfig()

	tasks := []task{
		{
			name:  "current weather",
			every: config.PollInterval,
			fn: func() {
				if err := m.PollCurrent(ctx); err != nil {
					m.logger.Printf("Current weather poll finished with errors: %v", err)
				}
			},
		},
		{
			name:  "forecast",
			every: config.ForecastInterval,
			fn: func() {
				if err := m.PollForecast(ctx); err != nil {
					m.logger.Printf("Forecast poll finished with errors: %v", err)
				}
			},
		},
	}

	if m.store != nil && config.Retention > 0 {
		tasks = append(tasks, task{
			name:  "prune",
			first: untilNextSlot(time.Now(), time.Hour),
			every: time.Hour,
			fn: func() {
				if _, err := m.Prune(ctx); err != nil {
					m.logger.Printf("Prune failed: %v", err)
				}
			},
		})
	}

	var wg sync.WaitGroup
	for _, t := range tasks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			t.run(ctx, m.stopChan, m.logger)
		}()
	}

	wg.Wait()

	m.logger.Printf("Polling stopped for %d locations", len(config.Locations))
	m.stop()
	return ctx.Err()
}

// Stop gracefully stops the monitor
func (m *Monitor) Stop() {
	m.stop()
}

func (m *Monitor) stop() {
	m.mu.Lock()
	if !m.isRunning {
		m.mu.Unlock()
		return
	}

	m.isRunning = false

	select {
	case <-m.stopChan:
	default:
		close(m.stopChan)
	}
	m.mu.Unlock()

	// handlers read the monitor state, so shut the server down unlocked
	if m.webServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := m.webServer.Stop(ctx); err != nil {
			m.logger.Printf("Error stopping web server: %v", err)
		}
	}
}

// IsRunning returns whether the monitor is currently running
func (m *Monitor) IsRunning() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.isRunning
}

// PollCurrent fetches the current weather of every configured location,
// refreshes the cache and saves one observation per location under a new run id.
// Failed locations are logged and reported together; the others are still stored.
func (m *Monitor) PollCurrent(ctx context.Context) error {
	config := m.GetConfig()
	opts, err := config.Options()
	if err != nil {
		return err
	}

	runID := uuid.New()
	var (
		fetched []*weather.CurrentWeather
		errs    []error
	)
	for _, l := range config.Locations {
		loc, err := l.Locator()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", l, err))
			continue
		}
		current, err := m.client.CurrentWeather(ctx, loc, opts)
		if err != nil {
			m.logger.Printf("Failed to fetch current weather for %s: %v", l, err)
			errs = append(errs, fmt.Errorf("%s: %w", l, err))
			continue
		}
		fetched = append(fetched, current)
	}

	observations := make([]store.Observation, 0, len(fetched))
	for _, current := range fetched {
		observations = append(observations, store.NewObservation(runID, current))
	}
	if m.store != nil && len(observations) > 0 {
		if err := m.store.SaveObservations(ctx, observations); err != nil {
			m.logger.Printf("Failed to save observations: %v", err)
			errs = append(errs, err)
		}
	}

	pollErr := errors.Join(errs...)

	m.mu.Lock()
	for _, current := range fetched {
		m.current[current.Location.ID] = current
	}
	m.lastPoll = time.Now()
	m.lastRunID = runID
	m.polls++
	m.lastError = ""
	if pollErr != nil {
		m.lastError = pollErr.Error()
	}
	m.mu.Unlock()

	m.logger.Printf("Polled %d/%d locations (run %s)", len(fetched), len(config.Locations), runID)

	if m.webServer != nil {
		m.webServer.publishStatus()
	}
	return pollErr
}

// PollForecast refreshes the cached 5 day / 3 hour forecast of every configured location
func (m *Monitor) PollForecast(ctx context.Context) error {
	config := m.GetConfig()
	opts, err := config.Options()
	if err != nil {
		return err
	}

	var errs []error
	for _, l := range config.Locations {
		loc, err := l.Locator()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", l, err))
			continue
		}
		forecast, err := m.client.Forecast(ctx, loc, opts)
		if err != nil {
			m.logger.Printf("Failed to fetch forecast for %s: %v", l, err)
			errs = append(errs, fmt.Errorf("%s: %w", l, err))
			continue
		}

		m.mu.Lock()
		m.forecasts[forecast.Location.ID] = forecast
		m.mu.Unlock()
	}
	return errors.Join(errs...)
}

// Prune deletes the observations older than the configured retention
func (m *Monitor) Prune(ctx context.Context) (int64, error) {
	if m.store == nil {
		return 0, nil
	}
	retention := m.GetConfig().Retention
	if retention <= 0 {
		return 0, nil
	}

	removed, err := m.store.Prune(ctx, time.Now().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("failed to prune observations: %w", err)
	}
	if removed > 0 {
		m.logger.Printf("Pruned %d observations older than %s", removed, retention)
	}
	return removed, nil
}

// CurrentWeather returns the cached current weather ordered by location id
func (m *Monitor) CurrentWeather() []weather.CurrentWeather {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]weather.CurrentWeather, 0, len(m.current))
	for _, current := range m.current {
		out = append(out, *current)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Location.ID < out[j].Location.ID })
	return out
}

// CurrentWeatherByID returns the cached current weather of one location
func (m *Monitor) CurrentWeatherByID(id int64) (*weather.CurrentWeather, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	current, ok := m.current[id]
	if !ok {
		return nil, false
	}
	cp := *current
	return &cp, true
}

// ForecastByID returns the cached forecast of one location
func (m *Monitor) ForecastByID(id int64) (*weather.Forecast, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	forecast, ok := m.forecasts[id]
	if !ok {
		return nil, false
	}
	cp := *forecast
	cp.Entries = append([]weather.ForecastEntry(nil), forecast.Entries...)
	return &cp, true
}

// History returns the stored observations of one location since the given time
func (m *Monitor) History(ctx context.Context, locationID int64, since time.Time) ([]store.Observation, error) {
	if m.store == nil {
		return nil, fmt.Errorf("no observation store configured")
	}
	return m.store.History(ctx, locationID, since)
}

// GetStatus returns the current status of the monitor
func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	status := Status{
		IsRunning:      m.isRunning,
		LocationsCount: len(m.config.Locations),
		CachedCurrent:  len(m.current),
		CachedForecast: len(m.forecasts),
		Polls:          m.polls,
		LastError:      m.lastError,
		HasStore:       m.store != nil,
	}
	if !m.lastPoll.IsZero() {
		lastPoll := m.lastPoll
		status.LastPoll = &lastPoll
		status.LastRunID = m.lastRunID.String()
	}
	return status
}

// Status represents the current status of the monitor
type Status struct {
	IsRunning      bool       `json:"is_running"`
	LocationsCount int        `json:"locations_count"`
	CachedCurrent  int        `json:"cached_current"`
	CachedForecast int        `json:"cached_forecast"`
	Polls          int        `json:"polls"`
	LastPoll       *time.Time `json:"last_poll,omitempty"`
	LastRunID      string     `json:"last_run_id,omitempty"`
	LastError      string     `json:"last_error,omitempty"`
	HasStore       bool       `json:"has_store"`
}
