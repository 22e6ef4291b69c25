// Package cache memoizes node computations keyed by their constraints.
package cache

import (
	"github.com/grindlemire/go-layout/internal/geom"
	"github.com/grindlemire/go-layout/internal/tree"
)

// SlotCount is the number of entries a node can hold.
const SlotCount = 5

// Entry is one memoized computation.
type Entry struct {
	KnownDimensions geom.Size[float64]
	AvailableSpace  geom.Size[geom.AvailableSpace]
	RunMode         tree.RunMode
	SizingMode      tree.SizingMode
	CachedSize      geom.Size[float64]
}

// Cache holds up to SlotCount entries for one node. Slots are overwritten
// individually but only ever cleared together.
type Cache struct {
	slots [SlotCount]Entry
	valid [SlotCount]bool
}

// Slot picks the slot for a constraint shape: both axes known, width known,
// height known, or neither (split by whether either axis is min-content).
func Slot(known geom.Size[float64], available geom.Size[geom.AvailableSpace]) int {
	hasWidth := geom.IsDefined(known.Width)
	hasHeight := geom.IsDefined(known.Height)
	switch {
	case hasWidth && hasHeight:
		return 0
	case hasWidth:
		return 1
	case hasHeight:
		return 2
	case available.Width.Kind == geom.KindMinContent || available.Height.Kind == geom.KindMinContent:
		return 3
	default:
		return 4
	}
}

// Get returns a cached size matching the query. A PerformLayout query only
// matches the entry whose child layouts are still written to the tree, and
// entries only answer queries with the same sizing mode.
func (c *Cache) Get(known geom.Size[float64], available geom.Size[geom.AvailableSpace], mode tree.RunMode, sizing tree.SizingMode) (geom.Size[float64], bool) {
	for i := range c.slots {
		if !c.valid[i] {
			continue
		}
		e := &c.slots[i]
		if mode == tree.PerformLayout && e.RunMode != tree.PerformLayout {
			continue
		}
		if e.SizingMode != sizing {
			continue
		}
		if !knownMatches(known.Width, e.KnownDimensions.Width, e.CachedSize.Width) ||
			!knownMatches(known.Height, e.KnownDimensions.Height, e.CachedSize.Height) {
			continue
		}
		if geom.IsUndefined(known.Width) && !available.Width.IsRoughlyEqual(e.AvailableSpace.Width) {
			continue
		}
		if geom.IsUndefined(known.Height) && !available.Height.IsRoughlyEqual(e.AvailableSpace.Height) {
			continue
		}
		return e.CachedSize, true
	}
	return geom.Size[float64]{}, false
}

// knownMatches accepts an identical known value, or a query pinned to the
// size the entry already produced.
func knownMatches(query, known, cached float64) bool {
	if geom.IsUndefined(query) {
		return geom.IsUndefined(known)
	}
	return query == known || query == cached
}

// Put stores an entry in the slot for its constraint shape. Storing a
// PerformLayout entry demotes any older one, since its child layouts have
// been overwritten.
func (c *Cache) Put(e Entry) {
	if e.RunMode == tree.PerformLayout {
		for i := range c.slots {
			if c.valid[i] && c.slots[i].RunMode == tree.PerformLayout {
				c.slots[i].RunMode = tree.ComputeSize
			}
		}
	}
	slot := Slot(e.KnownDimensions, e.AvailableSpace)
	c.slots[slot] = e
	c.valid[slot] = true
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.valid = [SlotCount]bool{}
}

// Len returns the number of occupied slots.
func (c *Cache) Len() int {
	n := 0
	for _, ok := range c.valid {
		if ok {
			n++
		}
	}
	return n
}
