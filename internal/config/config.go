package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config is the full weatherpane configuration.
type Config struct {
	Location Location `toml:"location"`
	API      API      `toml:"api"`
	Poll     Poll     `toml:"poll"`
	Display  Display  `toml:"display"`
	LogFile  string   `toml:"log_file" validate:"required"`
}

// Location is the forecast point.
type Location struct {
	Latitude  float64 `toml:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `toml:"longitude" validate:"gte=-180,lte=180"`
	Altitude  int     `toml:"altitude" validate:"gte=-500,lte=9000"`
}

// API configures the met.no client.
type API struct {
	Endpoint       string   `toml:"endpoint" validate:"required,url"`
	UserAgent      string   `toml:"user_agent" validate:"required"`
	RequestTimeout Duration `toml:"request_timeout" validate:"gt=0"`
}

// Poll configures the background poller and its queue.
type Poll struct {
	Interval      Duration `toml:"interval" validate:"gt=0"`
	Backoff       Duration `toml:"backoff" validate:"gt=0"`
	QueueCapacity int      `toml:"queue_capacity" validate:"gte=1,lte=1000"`
}

// Display configures the terminal widget.
type Display struct {
	AssetsDir       string   `toml:"assets_dir" validate:"required"`
	FrameInterval   Duration `toml:"frame_interval" validate:"gt=0"`
	Placeholder     string   `toml:"placeholder"`
	Title           string   `toml:"title"`
	Protocol        string   `toml:"protocol" validate:"oneof=halfblocks kitty iterm2 sixel"`
	IconWidth       int      `toml:"icon_width" validate:"gte=4,lte=200"`
	IconHeight      int      `toml:"icon_height" validate:"gte=2,lte=100"`
	StartFullscreen bool     `toml:"start_fullscreen"`
}

const (
	defaultConfigPath = "~/.config/weatherpane/config.toml"
	defaultLogFile    = "~/.local/state/weatherpane/weatherpane.log"
	defaultEndpoint   = "https://api.met.no/weatherapi/locationforecast/2.0/compact"
	defaultUserAgent  = "weatherpane/0.1 github.com/five82/weatherpane"
	defaultAssetsDir  = "assets/png"
	defaultProtocol   = "halfblocks"
	defaultTitle      = "weatherpane"
	defaultCapacity   = 10

	envPrefix = "WEATHERPANE_"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Location: Location{
			Latitude:  59.88369,
			Longitude: 10.80548,
			Altitude:  166,
		},
		API: API{
			Endpoint:       defaultEndpoint,
			UserAgent:      defaultUserAgent,
			RequestTimeout: Duration{10 * time.Second},
		},
		Poll: Poll{
			Interval:      Duration{60 * time.Second},
			Backoff:       Duration{60 * time.Second},
			QueueCapacity: defaultCapacity,
		},
		Display: Display{
			AssetsDir:     defaultAssetsDir,
			FrameInterval: Duration{250 * time.Millisecond},
			Placeholder:   "No Value",
			Title:         defaultTitle,
			Protocol:      defaultProtocol,
			IconWidth:     32,
			IconHeight:    16,
		},
		LogFile: defaultLogFile,
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

// Load reads the config at path (or the default path when empty), applies
// .env and environment overrides and validates the result. A missing file
// is not an error; defaults are used instead.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if err := decodeFile(resolved, &cfg); err != nil {
		return Config{}, err
	}
	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	normalize(&cfg)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(bytes, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := getenv("USER_AGENT"); v != "" {
		cfg.API.UserAgent = v
	}
	if v := getenv("ASSETS_DIR"); v != "" {
		cfg.Display.AssetsDir = v
	}
	for _, f := range []struct {
		key string
		dst *float64
	}{
		{"LATITUDE", &cfg.Location.Latitude},
		{"LONGITUDE", &cfg.Location.Longitude},
	} {
		v := getenv(f.key)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s%s: %w", envPrefix, f.key, err)
		}
		*f.dst = parsed
	}
	if v := getenv("ALTITUDE"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sALTITUDE: %w", envPrefix, err)
		}
		cfg.Location.Altitude = parsed
	}
	return nil
}

func getenv(key string) string {
	return strings.TrimSpace(os.Getenv(envPrefix + key))
}

// normalize trims strings, restores defaults for blank values and expands paths.
func normalize(cfg *Config) {
	def := Default()
	trimOr := func(s *string, fallback string) {
		*s = strings.TrimSpace(*s)
		if *s == "" {
			*s = fallback
		}
	}
	trimOr(&cfg.API.Endpoint, def.API.Endpoint)
	trimOr(&cfg.API.UserAgent, def.API.UserAgent)
	trimOr(&cfg.Display.AssetsDir, def.Display.AssetsDir)
	trimOr(&cfg.Display.Placeholder, def.Display.Placeholder)
	trimOr(&cfg.Display.Title, def.Display.Title)
	trimOr(&cfg.LogFile, def.LogFile)

	cfg.Display.Protocol = strings.ToLower(strings.TrimSpace(cfg.Display.Protocol))
	if cfg.Display.Protocol == "" || cfg.Display.Protocol == "auto" {
		cfg.Display.Protocol = def.Display.Protocol
	}

	cfg.Display.AssetsDir = mustExpand(cfg.Display.AssetsDir)
	cfg.LogFile = mustExpand(cfg.LogFile)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(Duration); ok {
			return int64(d.Duration)
		}
		return nil
	}, Duration{})
	return v
}

// Validate checks ranges and required fields.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
