package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/five82/weatherpane/internal/metno"
	"github.com/five82/weatherpane/internal/weather"
)

const (
	defaultPollInterval = 60 * time.Second
	defaultBackoff      = 60 * time.Second
)

// ClientFactory builds the forecast client used for one poll cycle.
type ClientFactory func() (metno.Forecaster, error)

// Sender is the producer end of the weather bridge.
type Sender interface {
	Send(ctx context.Context, s weather.Snapshot) error
}

// PollerOptions configure a Poller. Zero durations use the defaults.
type PollerOptions struct {
	Interval time.Duration
	Backoff  time.Duration
	Logger   *slog.Logger

	// Sleep waits d or until ctx ends, returning false in the latter case.
	Sleep func(ctx context.Context, d time.Duration) bool
}

// Poller fetches the forecast forever and publishes one snapshot per
// successful cycle.
type Poller struct {
	newClient ClientFactory
	out       Sender
	interval  time.Duration
	backoff   time.Duration
	logger    *slog.Logger
	sleep     func(ctx context.Context, d time.Duration) bool
}

// NewPoller creates a Poller that builds a client per cycle with newClient
// and publishes snapshots to out.
func NewPoller(newClient ClientFactory, out Sender, opts PollerOptions) *Poller {
	p := &Poller{
		newClient: newClient,
		out:       out,
		interval:  opts.Interval,
		backoff:   opts.Backoff,
		logger:    opts.Logger,
		sleep:     opts.Sleep,
	}
	if p.interval <= 0 {
		p.interval = defaultPollInterval
	}
	if p.backoff <= 0 {
		p.backoff = defaultBackoff
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.sleep == nil {
		p.sleep = sleepCtx
	}
	return p
}

// StartPoller launches p.Run in a background goroutine. It returns immediately.
func StartPoller(ctx context.Context, p *Poller) {
	go p.Run(ctx)
}

// Run polls until ctx ends. A failed cycle waits the backoff instead of the
// interval, never both.
func (p *Poller) Run(ctx context.Context) {
	for {
		wait := p.interval

		snap, err := p.Fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			p.logger.Warn("weather poll failed",
				"stage", metno.Stage(err),
				"error", err,
				"retry_in", p.backoff)
			wait = p.backoff
		} else if err := p.out.Send(ctx, snap); err != nil {
			if ctx.Err() != nil {
				return
			}
			p.logger.Warn("weather snapshot dropped", "error", err)
		}

		if !p.sleep(ctx, wait) {
			return
		}
	}
}

// Fetch runs one fetch-parse-extract cycle. Nothing from a failed cycle is
// kept.
func (p *Poller) Fetch(ctx context.Context) (weather.Snapshot, error) {
	client, err := p.newClient()
	if err != nil {
		return weather.Snapshot{}, clientError(err)
	}
	forecast, err := client.Compact(ctx)
	if err != nil {
		return weather.Snapshot{}, err
	}
	reading, err := metno.Current(forecast)
	if err != nil {
		return weather.Snapshot{}, err
	}
	p.logger.Debug("weather polled",
		"temperature", reading.Temperature,
		"icon", reading.SymbolCode,
		"forecast_time", reading.Time)
	return weather.NewSnapshot(reading.Temperature, reading.SymbolCode), nil
}

func clientError(err error) error {
	if metno.Stage(err) == "client" {
		return err
	}
	return fmt.Errorf("%w: %w", metno.ErrClient, err)
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
