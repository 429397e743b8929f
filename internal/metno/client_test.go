package metno

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

const sampleCompact = `{
  "type": "Feature",
  "geometry": {"type": "Point", "coordinates": [10.8055, 59.8837, 166]},
  "properties": {
    "meta": {"updated_at": "2024-05-01T10:12:45Z", "units": {"air_temperature": "celsius"}},
    "timeseries": [
      {
        "time": "2024-05-01T11:00:00Z",
        "data": {
          "instant": {"details": {"air_temperature": 5.3, "wind_speed": 2.1}},
          "next_1_hours": {"summary": {"symbol_code": "clearsky_day"}, "details": {"precipitation_amount": 0}},
          "next_6_hours": {"summary": {"symbol_code": "cloudy"}, "details": {"precipitation_amount": 0.2}}
        }
      },
      {
        "time": "2024-05-01T12:00:00Z",
        "data": {"instant": {"details": {"air_temperature": 6.1}}}
      }
    ]
  }
}`

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	c, err := NewClient(Options{
		Endpoint:  serverURL + "/weatherapi/locationforecast/2.0/compact",
		UserAgent: "weatherpane-test/1.0",
		Latitude:  59.88369,
		Longitude: 10.80548,
		Altitude:  166,
		Timeout:   2 * time.Second,
	})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return c
}

func TestClient_CompactSendsQueryAndHeaders(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	var gotPath, gotUserAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleCompact))
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	forecast, err := c.Compact(ctx)
	if err != nil {
		t.Fatalf("Compact returned error: %v", err)
	}
	if gotPath != "/weatherapi/locationforecast/2.0/compact" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotQuery.Get("lat") != "59.8837" || gotQuery.Get("lon") != "10.8055" || gotQuery.Get("altitude") != "166" {
		t.Fatalf("query = %v, want lat=59.8837 lon=10.8055 altitude=166", gotQuery)
	}
	if gotUserAgent != "weatherpane-test/1.0" {
		t.Fatalf("User-Agent = %q", gotUserAgent)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q", gotAccept)
	}

	reading, err := Current(forecast)
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if reading.Temperature != 5.3 || reading.SymbolCode != "clearsky_day" {
		t.Fatalf("reading = %+v, want 5.3 clearsky_day", reading)
	}
	if want := time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC); !reading.Time.Equal(want) {
		t.Fatalf("reading time = %v, want %v", reading.Time, want)
	}
}

func TestClient_CompactErrorStages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    error
		stage   string
	}{
		{
			name: "status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "forbidden", http.StatusForbidden)
			},
			want:  ErrRequest,
			stage: "request",
		},
		{
			name: "truncated body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Length", "1000")
				_, _ = w.Write([]byte(`{"type":`))
			},
			want:  ErrBody,
			stage: "body",
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"properties": [`))
			},
			want:  ErrParse,
			stage: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(tt.handler)
			t.Cleanup(server.Close)

			_, err := newTestClient(t, server.URL).Compact(context.Background())
			if !errors.Is(err, tt.want) {
				t.Fatalf("Compact error = %v, want %v", err, tt.want)
			}
			if got := Stage(err); got != tt.stage {
				t.Fatalf("Stage = %q, want %q", got, tt.stage)
			}
		})
	}
}

func TestClient_CompactUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	serverURL := server.URL
	server.Close()

	_, err := newTestClient(t, serverURL).Compact(context.Background())
	if !errors.Is(err, ErrRequest) {
		t.Fatalf("Compact error = %v, want ErrRequest", err)
	}
}

func TestNewClient_Validation(t *testing.T) {
	if _, err := NewClient(Options{}); !errors.Is(err, ErrClient) {
		t.Fatalf("NewClient without user agent = %v, want ErrClient", err)
	}
	if _, err := NewClient(Options{UserAgent: "x", Endpoint: "ftp://example.com"}); !errors.Is(err, ErrClient) {
		t.Fatalf("NewClient with ftp endpoint = %v, want ErrClient", err)
	}
	if Stage(wrap(ErrClient, errors.New("x"))) != "client" {
		t.Fatal("Stage(ErrClient) != client")
	}

	c, err := NewClient(Options{UserAgent: "x", Latitude: 1.5, Longitude: -2.25, Altitude: 10})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	want := DefaultEndpoint + "?altitude=10&lat=1.5&lon=-2.25"
	if c.URL() != want {
		t.Fatalf("URL = %q, want %q", c.URL(), want)
	}
}

func TestCurrent_MissingFields(t *testing.T) {
	temp := 4.0
	tests := []struct {
		name     string
		forecast *Forecast
	}{
		{"nil", nil},
		{"empty timeseries", &Forecast{}},
		{"no temperature", &Forecast{Properties: Properties{Timeseries: []Timeseries{{
			Data: TimeseriesData{Next1Hours: &Period{Summary: Summary{SymbolCode: "fog"}}},
		}}}}},
		{"no next hour", &Forecast{Properties: Properties{Timeseries: []Timeseries{{
			Data: TimeseriesData{Instant: Instant{Details: InstantDetails{AirTemperature: &temp}}},
		}}}}},
		{"empty symbol", &Forecast{Properties: Properties{Timeseries: []Timeseries{{
			Data: TimeseriesData{
				Instant:    Instant{Details: InstantDetails{AirTemperature: &temp}},
				Next1Hours: &Period{},
			},
		}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Current(tt.forecast)
			if !errors.Is(err, ErrMissingField) {
				t.Fatalf("Current error = %v, want ErrMissingField", err)
			}
			if Stage(err) != "extract" {
				t.Fatalf("Stage = %q, want extract", Stage(err))
			}
		})
	}
}
