package monitor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/devskill-org/openweathermap/weather"
)

const version = "1.0.0"

// WebServer exposes the monitor state over HTTP and a status websocket
type WebServer struct {
	monitor   *Monitor
	server    *http.Server
	router    chi.Router
	port      int
	startTime time.Time
	upgrader  websocket.Upgrader
	clients   sync.Map // *websocket.Conn -> *wsClient
	broadcast chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// wsClient serializes writes to one connection
type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsClient) write(message []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second)) //nolint:errcheck
	return c.conn.WriteMessage(websocket.TextMessage, message)
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string       `json:"status"`
	Timestamp string       `json:"timestamp"`
	Version   string       `json:"version,omitempty"`
	Monitor   Status       `json:"monitor"`
	System    SystemHealth `json:"system"`
}

// SystemHealth represents system-level health information
type SystemHealth struct {
	Uptime string `json:"uptime"`
}

// NewWebServer creates the web server; it returns nil when port is not positive
func NewWebServer(monitor *Monitor, port int) *WebServer {
	if port <= 0 {
		return nil
	}

	ws := newWebServer(monitor)
	ws.port = port
	ws.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      ws.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return ws
}

func newWebServer(monitor *Monitor) *WebServer {
	ws := &WebServer{
		monitor:   monitor,
		startTime: time.Now(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		broadcast: make(chan []byte, 256),
		done:      make(chan struct{}),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(10 * time.Second))
		r.Get("/api/health", ws.healthHandler)
		r.Get("/api/weather", ws.weatherListHandler)
		r.Get("/api/weather/{id}", ws.weatherHandler)
		r.Get("/api/forecast/{id}", ws.forecastHandler)
		r.Get("/api/history/{id}", ws.historyHandler)
	})
	r.Get("/api/ws", ws.wsHandler)

	ws.router = r
	return ws
}

// Handler returns the HTTP handler serving the API
func (ws *WebServer) Handler() http.Handler {
	return ws.router
}

// Start starts the web server
func (ws *WebServer) Start() error {
	if ws == nil {
		return nil
	}

	go ws.handleBroadcasts()
	go ws.broadcastStatus()

	go func() {
		if err := ws.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ws.monitor.logger.Printf("Web server error: %v", err)
		}
	}()

	return nil
}

// Stop gracefully stops the web server
func (ws *WebServer) Stop(ctx context.Context) error {
	if ws == nil {
		return nil
	}

	ws.closeOnce.Do(func() { close(ws.done) })

	ws.clients.Range(func(key, value any) bool {
		if conn, ok := key.(*websocket.Conn); ok {
			conn.Close()
		}
		return true
	})

	if ws.server == nil {
		return nil
	}
	return ws.server.Shutdown(ctx)
}

func (ws *WebServer) health() (HealthResponse, int) {
	status := ws.monitor.GetStatus()

	health := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   version,
		Monitor:   status,
		System: SystemHealth{
			Uptime: formatUptime(time.Since(ws.startTime)),
		},
	}

	code := http.StatusOK
	switch {
	case !status.IsRunning:
		health.Status = "unhealthy"
		code = http.StatusServiceUnavailable
	case status.LastError != "":
		health.Status = "degraded"
	}
	return health, code
}

// healthHandler handles the /api/health endpoint
func (ws *WebServer) healthHandler(w http.ResponseWriter, r *http.Request) {
	health, code := ws.health()
	writeJSON(w, code, health)
}

// weatherListHandler handles the /api/weather endpoint
func (ws *WebServer) weatherListHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ws.monitor.CurrentWeather())
}

// weatherHandler handles the /api/weather/{id} endpoint
func (ws *WebServer) weatherHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := locationID(w, r)
	if !ok {
		return
	}
	current, found := ws.monitor.CurrentWeatherByID(id)
	if !found {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no current weather for location %d", id))
		return
	}
	writeJSON(w, http.StatusOK, current)
}

// forecastHandler handles the /api/forecast/{id} endpoint
func (ws *WebServer) forecastHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := locationID(w, r)
	if !ok {
		return
	}
	forecast, found := ws.monitor.ForecastByID(id)
	if !found {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no forecast for location %d", id))
		return
	}
	writeJSON(w, http.StatusOK, forecast)
}

// historyHandler handles /api/history/{id}?since=24h
func (ws *WebServer) historyHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := locationID(w, r)
	if !ok {
		return
	}

	window := 24 * time.Hour
	if s := r.URL.Query().Get("since"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d <= 0 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid since duration %q", s))
			return
		}
		window = d
	}

	if !ws.monitor.GetStatus().HasStore {
		writeError(w, http.StatusNotImplemented, "no observation store configured")
		return
	}

	history, err := ws.monitor.History(r.Context(), id, time.Now().Add(-window))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, history)
}

// wsHandler handles WebSocket connections
func (ws *WebServer) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := ws.upgrader.Upgrade(w, r, nil)
	if err != nil {
		ws.monitor.logger.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := &wsClient{conn: conn}
	ws.clients.Store(conn, client)

	if message, err := json.Marshal(ws.buildStatusData()); err == nil {
		if err := client.write(message); err != nil {
			ws.monitor.logger.Printf("Failed to send initial data: %v", err)
		}
	}

	defer func() {
		ws.clients.Delete(conn)
		conn.Close()
	}()

	// Read until the client goes away
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				ws.monitor.logger.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}

// handleBroadcasts sends messages to all connected clients
func (ws *WebServer) handleBroadcasts() {
	for {
		select {
		case message := <-ws.broadcast:
			ws.clients.Range(func(key, value any) bool {
				client, ok := value.(*wsClient)
				if !ok {
					return true
				}
				if err := client.write(message); err != nil {
					ws.monitor.logger.Printf("WebSocket write error: %v", err)
					client.conn.Close()
					ws.clients.Delete(key)
				}
				return true
			})
		case <-ws.done:
			return
		}
	}
}

// broadcastStatus periodically broadcasts status updates
func (ws *WebServer) broadcastStatus() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ws.publishStatus()
		case <-ws.done:
			return
		}
	}
}

// publishStatus queues a status update when clients are connected. It never blocks.
func (ws *WebServer) publishStatus() {
	hasClients := false
	ws.clients.Range(func(key, value any) bool {
		hasClients = true
		return false
	})
	if !hasClients {
		return
	}

	message, err := json.Marshal(ws.buildStatusData())
	if err != nil {
		ws.monitor.logger.Printf("Failed to marshal status data: %v", err)
		return
	}
	select {
	case ws.broadcast <- message:
	default:
		ws.monitor.logger.Printf("Broadcast queue full, dropping status update")
	}
}

// StatusUpdate is the message pushed to websocket clients
type StatusUpdate struct {
	Type    string                   `json:"type"`
	Health  HealthResponse           `json:"health"`
	Weather []weather.CurrentWeather `json:"weather"`
}

func (ws *WebServer) buildStatusData() StatusUpdate {
	health, _ := ws.health()
	return StatusUpdate{
		Type:    "status_update",
		Health:  health,
		Weather: ws.monitor.CurrentWeather(),
	}
}

func locationID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid location id %q", raw))
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]string{"error": message})
}

// formatUptime formats a duration as a string with seconds rounded to integer
func formatUptime(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%dm%ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
