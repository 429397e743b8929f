package weather

import (
	"context"
	"errors"
	"iter"
	"sync"
)

// DefaultCapacity is the number of snapshots the bridge buffers.
const DefaultCapacity = 10

// ErrClosed is returned by Send once the bridge has been closed.
var ErrClosed = errors.New("weather bridge closed")

// Bridge is a bounded FIFO carrying snapshots from a single producer to a
// single consumer. Send blocks the producer when the buffer is full; the
// consumer side never blocks.
type Bridge struct {
	ch        chan Snapshot
	done      chan struct{}
	closeOnce sync.Once
}

// NewBridge creates a bridge buffering up to capacity snapshots. A capacity
// below one is raised to one.
func NewBridge(capacity int) *Bridge {
	if capacity < 1 {
		capacity = 1
	}
	return &Bridge{
		ch:   make(chan Snapshot, capacity),
		done: make(chan struct{}),
	}
}

// Send enqueues s, waiting for a free slot when the buffer is full. It returns
// ErrClosed if the bridge is closed first, or ctx.Err() if ctx ends first.
func (b *Bridge) Send(ctx context.Context, s Snapshot) error {
	// A closed bridge rejects sends even when a slot is free.
	select {
	case <-b.done:
		return ErrClosed
	default:
	}

	select {
	case b.ch <- s:
		return nil
	case <-b.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryDrain returns a sequence over every queued snapshot in arrival order,
// removing each one as it is yielded. Iteration stops as soon as the buffer
// is empty and never waits for the producer.
func (b *Bridge) TryDrain() iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		for {
			select {
			case s := <-b.ch:
				if !yield(s) {
					return
				}
			default:
				return
			}
		}
	}
}

// Close stops the bridge. Pending and later sends fail with ErrClosed;
// snapshots already queued can still be drained. Close is idempotent.
func (b *Bridge) Close() {
	b.closeOnce.Do(func() { close(b.done) })
}

// Len reports the number of queued snapshots.
func (b *Bridge) Len() int {
	return len(b.ch)
}

// Cap reports the buffer capacity.
func (b *Bridge) Cap() int {
	return cap(b.ch)
}
