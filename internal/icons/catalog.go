package icons

import (
	"image"
	"slices"
)

// Entry is one icon sprite known to the display.
type Entry struct {
	ID      string
	Image   image.Image
	Opacity float64
}

// Catalog is the fixed set of icons discovered at startup, keyed by id.
// It is owned by the display loop and is not safe for concurrent use.
type Catalog struct {
	entries map[string]*Entry
	ids     []string
}

// NewCatalog builds a catalog from entries. The first entry for a given id
// wins; every entry starts Transparent.
func NewCatalog(entries ...Entry) *Catalog {
	c := &Catalog{entries: make(map[string]*Entry, len(entries))}
	for _, e := range entries {
		if _, ok := c.entries[e.ID]; ok {
			continue
		}
		e.Opacity = Transparent
		c.entries[e.ID] = &e
		c.ids = append(c.ids, e.ID)
	}
	slices.Sort(c.ids)
	return c
}

// IDs returns the icon ids in sorted order.
func (c *Catalog) IDs() []string {
	return slices.Clone(c.ids)
}

// Len returns the number of icons.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// Apply sets every entry's opacity from assignment. Entries missing from
// assignment become Transparent.
func (c *Catalog) Apply(assignment map[string]float64) {
	for id, e := range c.entries {
		e.Opacity = assignment[id]
	}
}

// Opacity returns the current opacity of id, Transparent if unknown.
func (c *Catalog) Opacity(id string) float64 {
	if e, ok := c.entries[id]; ok {
		return e.Opacity
	}
	return Transparent
}

// Visible returns the first opaque entry in id order.
func (c *Catalog) Visible() (Entry, bool) {
	for _, id := range c.ids {
		if e := c.entries[id]; e.Opacity == Opaque {
			return *e, true
		}
	}
	return Entry{}, false
}
