// Package weather holds the data handed from the forecast poller to the
// display, and the channel that carries it.
//
// # Overview
//
// A Snapshot is an immutable reading: air temperature plus the met.no symbol
// code used to pick an icon. The poller builds one per successful fetch and
// sends it on a Bridge. The display side drains the Bridge once per frame.
//
//	Poller goroutine               Bubble Tea loop
//	┌─────────────────┐           ┌──────────────────┐
//	│ fetch forecast  │           │ tick             │
//	│ NewSnapshot()   │           │ bridge.TryDrain()│
//	│ bridge.Send()   │──────────→│ apply snapshot   │
//	│ sleep           │ (bounded) │ render           │
//	└─────────────────┘           └──────────────────┘
//
// # Backpressure
//
// The Bridge buffers DefaultCapacity snapshots. When it is full, Send blocks
// the poller goroutine until the display drains a slot, the bridge is closed
// or the poller's context ends. Snapshots are never dropped or reordered.
// TryDrain never blocks, so a stalled poller can never stall a frame.
//
// # Ownership
//
// Snapshots are passed by value. Once sent, the poller keeps no reference,
// and the display keeps none beyond the tick that applied it.
package weather
