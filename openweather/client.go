package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the root of every OpenWeatherMap endpoint
const DefaultBaseURL = "https://api.openweathermap.org"

// Client represents a client for the OpenWeatherMap API
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	userAgent  string
	logger     *log.Logger
}

// NewClient creates a new client authenticated with apiKey
func NewClient(apiKey string) *Client {
	return NewClientWithHTTPClient(&http.Client{
		Timeout: 30 * time.Second,
	}, apiKey)
}

// NewClientWithHTTPClient creates a new client with a custom HTTP client
func NewClientWithHTTPClient(httpClient *http.Client, apiKey string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		userAgent:  "openweathermap-go/1.0",
	}
}

// SetBaseURL sets the base URL for the API (useful for testing)
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimSuffix(baseURL, "/")
}

// SetUserAgent sets the User-Agent header sent with every request
func (c *Client) SetUserAgent(userAgent string) {
	c.userAgent = userAgent
}

// SetLogger enables request logging; a nil logger silences the client
func (c *Client) SetLogger(logger *log.Logger) {
	c.logger = logger
}

func (c *Client) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

// get performs a GET request and returns the body of a successful response
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqURL, err := c.buildURL(path, query)
	if err != nil {
		return nil, fmt.Errorf("failed to build URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Operation: "GET " + path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Operation: "reading " + path, Err: err}
	}
	c.logf("GET %s -> %d (%d bytes, %v)", redact(reqURL), resp.StatusCode, len(body), time.Since(start).Round(time.Millisecond))

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body),
		}
	}
	return body, nil
}

// buildURL constructs the API URL with query parameters and the API key
func (c *Client) buildURL(path string, query url.Values) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + path

	q := u.Query()
	for key, values := range query {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	q.Set("appid", c.apiKey)

	u.RawQuery = q.Encode()
	return u.String(), nil
}

// redact hides the API key of a request URL
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid url>"
	}
	q := u.Query()
	if key := q.Get("appid"); key != "" {
		if len(key) > 4 {
			q.Set("appid", key[:4]+"***")
		} else {
			q.Set("appid", "***")
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// errorMessage extracts the message of an error body such as {"cod":401,"message":"..."}
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(body))
}
