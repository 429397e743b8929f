package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Location.Latitude != 59.88369 || cfg.Location.Longitude != 10.80548 || cfg.Location.Altitude != 166 {
		t.Fatalf("Location = %+v, want reference point", cfg.Location)
	}
	if cfg.API.Endpoint != defaultEndpoint {
		t.Fatalf("Endpoint = %q, want %q", cfg.API.Endpoint, defaultEndpoint)
	}
	if cfg.Poll.Interval.Duration != time.Minute || cfg.Poll.Backoff.Duration != time.Minute {
		t.Fatalf("Poll = %+v, want 60s interval and backoff", cfg.Poll)
	}
	if cfg.Poll.QueueCapacity != defaultCapacity {
		t.Fatalf("QueueCapacity = %d, want %d", cfg.Poll.QueueCapacity, defaultCapacity)
	}
	if cfg.Display.Placeholder != "No Value" {
		t.Fatalf("Placeholder = %q, want No Value", cfg.Display.Placeholder)
	}

	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
	if !filepath.IsAbs(cfg.Display.AssetsDir) {
		t.Fatalf("AssetsDir = %q, want absolute path", cfg.Display.AssetsDir)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
log_file = "  ~/logs/wp.log  "

[location]
latitude = 60.39
longitude = 5.32
altitude = 12

[api]
user_agent = "  me/1.0 me@example.com  "
request_timeout = "5s"

[poll]
interval = "5m"
backoff = "30s"
queue_capacity = 4

[display]
assets_dir = "~/icons"
protocol = " Kitty "
start_fullscreen = true
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Location.Latitude != 60.39 || cfg.Location.Longitude != 5.32 || cfg.Location.Altitude != 12 {
		t.Fatalf("Location = %+v", cfg.Location)
	}
	if cfg.API.UserAgent != "me/1.0 me@example.com" {
		t.Fatalf("UserAgent = %q", cfg.API.UserAgent)
	}
	if cfg.API.RequestTimeout.Duration != 5*time.Second {
		t.Fatalf("RequestTimeout = %v, want 5s", cfg.API.RequestTimeout)
	}
	if cfg.Poll.Interval.Duration != 5*time.Minute || cfg.Poll.Backoff.Duration != 30*time.Second {
		t.Fatalf("Poll = %+v", cfg.Poll)
	}
	if cfg.Poll.QueueCapacity != 4 {
		t.Fatalf("QueueCapacity = %d, want 4", cfg.Poll.QueueCapacity)
	}
	if cfg.Display.Protocol != "kitty" {
		t.Fatalf("Protocol = %q, want kitty", cfg.Display.Protocol)
	}
	if !cfg.Display.StartFullscreen {
		t.Fatal("StartFullscreen = false, want true")
	}
	if cfg.Display.AssetsDir != filepath.Join(home, "icons") {
		t.Fatalf("AssetsDir = %q, want under HOME", cfg.Display.AssetsDir)
	}
	if cfg.LogFile != filepath.Join(home, "logs/wp.log") {
		t.Fatalf("LogFile = %q, want under HOME", cfg.LogFile)
	}
	// Untouched sections keep their defaults.
	if cfg.Display.FrameInterval.Duration != 250*time.Millisecond {
		t.Fatalf("FrameInterval = %v, want 250ms", cfg.Display.FrameInterval)
	}
	if cfg.API.Endpoint != defaultEndpoint {
		t.Fatalf("Endpoint = %q, want default", cfg.API.Endpoint)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
[api]
user_agent = "   "
endpoint = ""

[display]
protocol = "auto"
placeholder = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.API.UserAgent != defaultUserAgent {
		t.Fatalf("UserAgent = %q, want %q", cfg.API.UserAgent, defaultUserAgent)
	}
	if cfg.API.Endpoint != defaultEndpoint {
		t.Fatalf("Endpoint = %q, want %q", cfg.API.Endpoint, defaultEndpoint)
	}
	if cfg.Display.Protocol != defaultProtocol {
		t.Fatalf("Protocol = %q, want %q", cfg.Display.Protocol, defaultProtocol)
	}
	if cfg.Display.Placeholder != "No Value" {
		t.Fatalf("Placeholder = %q, want No Value", cfg.Display.Placeholder)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("WEATHERPANE_USER_AGENT", "env-agent/2.0")
	t.Setenv("WEATHERPANE_LATITUDE", "63.43")
	t.Setenv("WEATHERPANE_LONGITUDE", "10.39")
	t.Setenv("WEATHERPANE_ALTITUDE", "7")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.API.UserAgent != "env-agent/2.0" {
		t.Fatalf("UserAgent = %q, want env-agent/2.0", cfg.API.UserAgent)
	}
	if cfg.Location.Latitude != 63.43 || cfg.Location.Longitude != 10.39 || cfg.Location.Altitude != 7 {
		t.Fatalf("Location = %+v, want env values", cfg.Location)
	}
}

func TestLoad_InvalidEnvFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("WEATHERPANE_LATITUDE", "north")

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || !strings.Contains(err.Error(), "WEATHERPANE_LATITUDE") {
		t.Fatalf("Load error = %v, want WEATHERPANE_LATITUDE error", err)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`[location`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_InvalidDurationFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[poll]\ninterval = \"soon\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load returned nil error, want duration error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"latitude", func(c *Config) { c.Location.Latitude = 91 }, "Latitude"},
		{"longitude", func(c *Config) { c.Location.Longitude = -181 }, "Longitude"},
		{"user agent", func(c *Config) { c.API.UserAgent = "" }, "UserAgent"},
		{"endpoint", func(c *Config) { c.API.Endpoint = "not a url" }, "Endpoint"},
		{"capacity", func(c *Config) { c.Poll.QueueCapacity = 0 }, "QueueCapacity"},
		{"interval", func(c *Config) { c.Poll.Interval = Duration{} }, "Interval"},
		{"protocol", func(c *Config) { c.Display.Protocol = "ascii" }, "Protocol"},
	}

	if err := Validate(Default()); err != nil {
		t.Fatalf("Validate(Default()) = %v, want nil", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if err == nil {
				t.Fatal("Validate returned nil error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Fatalf("Validate error = %q, want it to mention %s", err.Error(), tt.field)
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestDuration_UnmarshalText(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("90s")); err != nil {
		t.Fatalf("UnmarshalText returned error: %v", err)
	}
	if d.Duration != 90*time.Second {
		t.Fatalf("Duration = %v, want 90s", d.Duration)
	}
	if err := d.UnmarshalText([]byte("-1s")); err == nil {
		t.Fatal("UnmarshalText accepted a negative duration")
	}
	text, _ := Duration{2 * time.Minute}.MarshalText()
	if string(text) != "2m0s" {
		t.Fatalf("MarshalText = %q, want 2m0s", text)
	}
}
