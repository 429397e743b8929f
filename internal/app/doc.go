// Package app is the composition root of weatherpane.
//
// Run loads the configuration, opens the log file, loads the icon catalog
// and then starts two things:
//
//	┌──────────────┐   weather.Bridge   ┌──────────────┐
//	│  Poller      │ ─────────────────→ │  ui.Model    │
//	│  (goroutine) │   bounded channel  │  state.Loop  │
//	└──────────────┘                    └──────────────┘
//
// The Poller builds a met.no client, fetches the compact forecast, extracts
// the current temperature and next-hour symbol, and sends one snapshot per
// successful cycle. A successful cycle waits poll.interval before the next
// one; a failed cycle is logged with its stage and waits poll.backoff
// instead. A failure never ends the poller.
//
// The UI drains the bridge on every frame. When Run returns the poller's
// context is cancelled and the bridge closed, so a Send blocked on a full
// queue is released.
package app
