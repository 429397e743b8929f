package metno

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Forecaster fetches a parsed compact forecast. *Client implements it.
type Forecaster interface {
	Compact(ctx context.Context) (*Forecast, error)
}

// Ensure Client implements Forecaster at compile time.
var _ Forecaster = (*Client)(nil)

const (
	DefaultEndpoint = "https://api.met.no/weatherapi/locationforecast/2.0/compact"
	defaultTimeout  = 10 * time.Second
	maxBodyBytes    = 4 << 20
)

// Options configure a Client.
type Options struct {
	Endpoint  string
	UserAgent string
	Latitude  float64
	Longitude float64
	Altitude  int
	Timeout   time.Duration

	// HTTPClient overrides the transport; Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client talks to the met.no locationforecast API.
type Client struct {
	forecastURL string
	http        *http.Client
	userAgent   string
}

// NewClient validates opts and builds a Client. Errors wrap ErrClient.
func NewClient(opts Options) (*Client, error) {
	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		return nil, wrap(ErrClient, errors.New("user agent is required by met.no"))
	}
	forecastURL, err := buildURL(opts)
	if err != nil {
		return nil, wrap(ErrClient, err)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		forecastURL: forecastURL,
		http:        httpClient,
		userAgent:   userAgent,
	}, nil
}

// URL returns the full forecast request URL.
func (c *Client) URL() string {
	return c.forecastURL
}

// Compact retrieves and parses the compact forecast for the configured point.
func (c *Client) Compact(ctx context.Context) (*Forecast, error) {
	if c == nil {
		return nil, wrap(ErrClient, errors.New("client is nil"))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.forecastURL, nil)
	if err != nil {
		return nil, wrap(ErrRequest, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, wrap(ErrRequest, fmt.Errorf("execute request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, wrap(ErrRequest, fmt.Errorf("api returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, wrap(ErrBody, err)
	}

	var forecast Forecast
	if err := json.Unmarshal(body, &forecast); err != nil {
		return nil, wrap(ErrParse, err)
	}
	return &forecast, nil
}

func buildURL(opts Options) (string, error) {
	endpoint := strings.TrimSpace(opts.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint %q: %w", opts.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("endpoint %q must be http or https", opts.Endpoint)
	}

	// met.no terms allow at most four decimals per coordinate.
	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(roundCoord(opts.Latitude), 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(roundCoord(opts.Longitude), 'f', -1, 64))
	values.Set("altitude", strconv.Itoa(opts.Altitude))
	u.RawQuery = values.Encode()
	u.Fragment = ""
	return u.String(), nil
}

func roundCoord(v float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 4, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}
