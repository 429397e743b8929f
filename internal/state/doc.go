// Package state holds the on-screen weather state and the per-frame loop
// that updates it.
//
// # Overview
//
// The display state is two things: the temperature Label and the opacities
// in an icons.Catalog. Both are owned by the UI goroutine. The only way data
// reaches them from the poller is the weather.Bridge, which Loop drains.
//
//	Producer (Poller):             Consumer (UI):
//	┌────────────────┐            ┌──────────────────┐
//	│ fetch forecast │            │ tickMsg          │
//	│      ↓         │            │      ↓           │
//	│ bridge.Send()  │───────────→│ loop.Tick()      │
//	│      ↓         │ (channel)  │      ↓           │
//	│  sleep...      │            │ label + catalog  │
//	└────────────────┘            └──────────────────┘
//
// # Tick Semantics
//
// Tick drains every queued snapshot without blocking and applies each one
// in arrival order:
//
//	label.Set(snapshot.TemperatureText())
//	catalog.Apply(icons.Select(catalog.IDs(), snapshot.IconID()))
//
// When several snapshots arrived since the previous frame, all are applied
// and the last one wins. No snapshot is kept once its tick returns. A tick
// that drains nothing leaves the display untouched.
//
// # Concurrency Model
//
// There is no lock in this package. Label, Catalog and Loop must only be
// touched from the goroutine that calls Tick; the bridge's channel is the
// sole point of contact with the poller goroutine.
//
// # Redraw
//
// WithRedraw registers a callback run once per tick that applied at least
// one snapshot. The Bubble Tea UI re-renders after every message anyway; the
// app uses the callback to log each display update at debug level.
package state
