// Package config loads weatherpane's TOML configuration.
//
// # Overview
//
// Every setting has a built-in default matching the original widget: the
// forecast point in Oslo, a 60 second poll interval and backoff, and a
// queue of ten snapshots. A config file only needs the values it changes.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/weatherpane/config.toml
//  3. If the file doesn't exist, use Default()
//  4. Load a .env file from the working directory, if present
//  5. Apply WEATHERPANE_* environment overrides
//  6. Trim values, restore defaults for blanks, expand ~ in paths
//  7. Validate
//
// # TOML Format
//
//	log_file = "~/.local/state/weatherpane/weatherpane.log"
//
//	[location]
//	latitude = 59.88369
//	longitude = 10.80548
//	altitude = 166
//
//	[api]
//	endpoint = "https://api.met.no/weatherapi/locationforecast/2.0/compact"
//	user_agent = "weatherpane/0.1 you@example.com"
//	request_timeout = "10s"
//
//	[poll]
//	interval = "60s"
//	backoff = "60s"
//	queue_capacity = 10
//
//	[display]
//	assets_dir = "assets/png"
//	frame_interval = "250ms"
//	placeholder = "No Value"
//	title = "weatherpane"
//	protocol = "halfblocks"   # kitty, iterm2, sixel
//	icon_width = 32
//	icon_height = 16
//	start_fullscreen = false
//
// # Environment Overrides
//
//   - WEATHERPANE_USER_AGENT
//   - WEATHERPANE_LATITUDE, WEATHERPANE_LONGITUDE, WEATHERPANE_ALTITUDE
//   - WEATHERPANE_ASSETS_DIR
//
// Variables already set in the environment win over the .env file.
//
// # Error Handling
//
// Load returns errors for unreadable or malformed files, unparsable
// overrides and failed validation. A missing file is never an error.
package config
