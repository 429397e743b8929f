package state

import (
	"iter"
	"time"

	"github.com/five82/weatherpane/internal/icons"
	"github.com/five82/weatherpane/internal/weather"
)

// Drainer is the consumer end of the weather bridge.
type Drainer interface {
	TryDrain() iter.Seq[weather.Snapshot]
}

// Ensure the bridge satisfies Drainer at compile time.
var _ Drainer = (*weather.Bridge)(nil)

// Loop applies drained snapshots to the display once per frame. It runs on
// the UI goroutine and owns the label and the catalog opacities.
type Loop struct {
	source  Drainer
	label   *Label
	catalog *icons.Catalog
	redraw  func()
	now     func() time.Time

	iconID      string
	lastUpdated time.Time
	applied     int
}

// LoopOption customises a Loop.
type LoopOption func(*Loop)

// WithRedraw registers fn to run once after any tick that applied a snapshot.
func WithRedraw(fn func()) LoopOption {
	return func(l *Loop) { l.redraw = fn }
}

// WithClock overrides the clock used for LastUpdated.
func WithClock(now func() time.Time) LoopOption {
	return func(l *Loop) { l.now = now }
}

// NewLoop wires the loop to its bridge, label and icon catalog.
func NewLoop(source Drainer, label *Label, catalog *icons.Catalog, opts ...LoopOption) *Loop {
	if label == nil {
		label = NewLabel("")
	}
	if catalog == nil {
		catalog = icons.NewCatalog()
	}
	l := &Loop{
		source:  source,
		label:   label,
		catalog: catalog,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Tick drains every pending snapshot and applies each in arrival order.
// Later snapshots overwrite earlier ones, so only the last of a burst stays
// visible. It returns how many snapshots were applied.
func (l *Loop) Tick() int {
	if l.source == nil {
		return 0
	}
	n := 0
	for s := range l.source.TryDrain() {
		l.apply(s)
		n++
	}
	if n > 0 && l.redraw != nil {
		l.redraw()
	}
	return n
}

func (l *Loop) apply(s weather.Snapshot) {
	l.label.Set(s.TemperatureText())
	l.catalog.Apply(icons.Select(l.catalog.IDs(), s.IconID()))
	l.iconID = s.IconID()
	l.lastUpdated = l.now()
	l.applied++
}

// Label returns the temperature label.
func (l *Loop) Label() *Label {
	return l.label
}

// Catalog returns the icon catalog.
func (l *Loop) Catalog() *icons.Catalog {
	return l.catalog
}

// IconID returns the symbol code of the last applied snapshot, even when
// no icon matched it.
func (l *Loop) IconID() string {
	return l.iconID
}

// LastUpdated returns when the last snapshot was applied; zero before the
// first one.
func (l *Loop) LastUpdated() time.Time {
	return l.lastUpdated
}

// Applied returns the total number of snapshots applied.
func (l *Loop) Applied() int {
	return l.applied
}
