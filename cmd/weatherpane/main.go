package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/weatherpane/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file path (optional, defaults to ~/.config/weatherpane/config.toml)")
	pollSeconds := flag.Int("poll", 0, "seconds between forecast fetches (optional, overrides poll.interval)")
	assetsDir := flag.String("assets", "", "icon directory (optional, overrides display.assets_dir)")
	verbose := flag.Bool("v", false, "log debug records")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		AssetsDir:  *assetsDir,
		Verbose:    *verbose,
	}
	if poll := *pollSeconds; poll > 0 {
		opts.PollEvery = poll
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "weatherpane: %v\n", err)
		return 1
	}
	return 0
}
