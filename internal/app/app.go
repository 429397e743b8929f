package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/five82/weatherpane/internal/config"
	"github.com/five82/weatherpane/internal/icons"
	"github.com/five82/weatherpane/internal/metno"
	"github.com/five82/weatherpane/internal/prefs"
	"github.com/five82/weatherpane/internal/sprite"
	"github.com/five82/weatherpane/internal/state"
	"github.com/five82/weatherpane/internal/ui"
	"github.com/five82/weatherpane/internal/weather"
)

// Options configure the weatherpane application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses ~/.config/weatherpane/prefs.toml
	AssetsDir  string // overrides display.assets_dir
	PollEvery  int    // seconds; zero uses poll.interval
	Verbose    bool
}

// Run boots the widget and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	if err := checkTerminal(os.Stdout); err != nil {
		return err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.AssetsDir != "" {
		cfg.Display.AssetsDir = opts.AssetsDir
	}
	if opts.PollEvery > 0 {
		cfg.Poll.Interval = config.Duration{Duration: time.Duration(opts.PollEvery) * time.Second}
	}

	logger, closeLog, err := openLogger(cfg.LogFile, opts.Verbose)
	if err != nil {
		return err
	}
	defer closeLog()

	catalog, err := icons.LoadDir(cfg.Display.AssetsDir, logger)
	if err != nil {
		return fmt.Errorf("load icons: %w", err)
	}
	logger.Info("weatherpane starting",
		"icons", catalog.Len(),
		"latitude", cfg.Location.Latitude,
		"longitude", cfg.Location.Longitude,
		"interval", cfg.Poll.Interval.Duration)

	protocol, err := sprite.ParseProtocol(cfg.Display.Protocol)
	if err != nil {
		return err
	}

	bridge := weather.NewBridge(cfg.Poll.QueueCapacity)
	defer bridge.Close()

	pollCtx, stopPoller := context.WithCancel(ctx)
	defer stopPoller()
	StartPoller(pollCtx, NewPoller(clientFactory(cfg), bridge, PollerOptions{
		Interval: cfg.Poll.Interval.Duration,
		Backoff:  cfg.Poll.Backoff.Duration,
		Logger:   logger,
	}))

	loop := newDisplayLoop(bridge, cfg.Display.Placeholder, catalog, logger)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	err = ui.Run(ctx, ui.Options{
		Loop:          loop,
		Renderer:      sprite.NewRenderer(protocol, cfg.Display.IconWidth, cfg.Display.IconHeight, termenv.EnvColorProfile()),
		FrameInterval: cfg.Display.FrameInterval.Duration,
		Title:         cfg.Display.Title,
		ThemeName:     userPrefs.Theme,
		Fullscreen:    cfg.Display.StartFullscreen || userPrefs.Fullscreen,
		PrefsPath:     prefsPath,
		LogPath:       cfg.LogFile,
		Logger:        logger,
	})
	logger.Info("weatherpane stopped", "updates", loop.Applied())
	return err
}

// newDisplayLoop wires the update loop to the bridge. Bubble Tea repaints
// after every message, the tick included, so the redraw hook only records
// that the display changed.
func newDisplayLoop(source state.Drainer, placeholder string, catalog *icons.Catalog, logger *slog.Logger) *state.Loop {
	return state.NewLoop(source, state.NewLabel(placeholder), catalog,
		state.WithRedraw(func() {
			logger.Debug("display updated")
		}))
}

// clientFactory builds a fresh met.no client from cfg for every poll cycle.
func clientFactory(cfg config.Config) ClientFactory {
	opts := metno.Options{
		Endpoint:  cfg.API.Endpoint,
		UserAgent: cfg.API.UserAgent,
		Latitude:  cfg.Location.Latitude,
		Longitude: cfg.Location.Longitude,
		Altitude:  cfg.Location.Altitude,
		Timeout:   cfg.API.RequestTimeout.Duration,
	}
	return func() (metno.Forecaster, error) {
		return metno.NewClient(opts)
	}
}

// checkTerminal refuses to start when f is not a terminal, since the widget
// draws with escape sequences.
func checkTerminal(f *os.File) error {
	fd := f.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return nil
	}
	return errors.New("stdout is not a terminal")
}

// openLogger opens the log file for appending. The terminal belongs to the
// UI, so nothing is logged to stderr.
func openLogger(path string, verbose bool) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return newLogger(file, verbose), func() { _ = file.Close() }, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
