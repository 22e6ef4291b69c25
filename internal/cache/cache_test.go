package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grindlemire/go-layout/internal/geom"
	"github.com/grindlemire/go-layout/internal/tree"
)

func avail(w, h geom.AvailableSpace) geom.Size[geom.AvailableSpace] {
	return geom.Size[geom.AvailableSpace]{Width: w, Height: h}
}

func TestSlot(t *testing.T) {
	type tc struct {
		known geom.Size[float64]
		space geom.Size[geom.AvailableSpace]
		want  int
	}

	u := geom.Undefined
	tests := map[string]tc{
		"both known":        {known: geom.NewSize(1.0, 2.0), space: avail(geom.MaxContent(), geom.MaxContent()), want: 0},
		"width known":       {known: geom.NewSize(1.0, u), space: avail(geom.MaxContent(), geom.MinContent()), want: 1},
		"height known":      {known: geom.NewSize(u, 2.0), space: avail(geom.MinContent(), geom.MaxContent()), want: 2},
		"none, min-content": {known: geom.UndefinedSize(), space: avail(geom.MinContent(), geom.Definite(5)), want: 3},
		"none, definite":    {known: geom.UndefinedSize(), space: avail(geom.Definite(5), geom.Definite(5)), want: 4},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slot(tt.known, tt.space))
		})
	}
}

func TestCache_GetPut(t *testing.T) {
	var c Cache
	known := geom.UndefinedSize()
	space := avail(geom.Definite(100), geom.MaxContent())

	_, ok := c.Get(known, space, tree.ComputeSize, tree.InherentSize)
	assert.False(t, ok, "empty cache should miss")

	c.Put(Entry{KnownDimensions: known, AvailableSpace: space, RunMode: tree.ComputeSize, CachedSize: geom.NewSize(100.0, 40.0)})

	got, ok := c.Get(known, avail(geom.Definite(100.0000001), geom.MaxContent()), tree.ComputeSize, tree.InherentSize)
	assert.True(t, ok, "roughly equal space should hit")
	assert.Equal(t, geom.NewSize(100.0, 40.0), got)

	_, ok = c.Get(known, avail(geom.Definite(90), geom.MaxContent()), tree.ComputeSize, tree.InherentSize)
	assert.False(t, ok, "different definite width should miss")

	_, ok = c.Get(known, space, tree.PerformLayout, tree.InherentSize)
	assert.False(t, ok, "size-only entry cannot satisfy a layout run")

	// A query pinned to the produced size reuses the entry.
	got, ok = c.Get(geom.NewSize(100.0, geom.Undefined), avail(geom.Definite(100), geom.MaxContent()), tree.ComputeSize, tree.InherentSize)
	assert.True(t, ok, "known width equal to the cached width should hit")
	assert.Equal(t, geom.NewSize(100.0, 40.0), got)
}

func TestCache_KnownMatchesCachedSize(t *testing.T) {
	var c Cache
	c.Put(Entry{
		KnownDimensions: geom.NewSize(50.0, geom.Undefined),
		AvailableSpace:  avail(geom.Definite(50), geom.MaxContent()),
		RunMode:         tree.ComputeSize,
		CachedSize:      geom.NewSize(50.0, 30.0),
	})

	got, ok := c.Get(geom.NewSize(50.0, 30.0), avail(geom.Definite(50), geom.Definite(30)), tree.ComputeSize, tree.InherentSize)
	assert.True(t, ok)
	assert.Equal(t, geom.NewSize(50.0, 30.0), got)
}

func TestCache_PerformLayoutDemotesOlderEntry(t *testing.T) {
	var c Cache
	first := avail(geom.Definite(100), geom.Definite(100))
	second := avail(geom.MaxContent(), geom.MaxContent())

	c.Put(Entry{KnownDimensions: geom.UndefinedSize(), AvailableSpace: first, RunMode: tree.PerformLayout, CachedSize: geom.NewSize(100.0, 100.0)})
	c.Put(Entry{KnownDimensions: geom.NewSize(10.0, 10.0), AvailableSpace: second, RunMode: tree.PerformLayout, CachedSize: geom.NewSize(10.0, 10.0)})

	_, ok := c.Get(geom.UndefinedSize(), first, tree.PerformLayout, tree.InherentSize)
	assert.False(t, ok, "overwritten layout should not be reused for a layout run")

	_, ok = c.Get(geom.UndefinedSize(), first, tree.ComputeSize, tree.InherentSize)
	assert.True(t, ok, "its size is still valid")
	assert.Equal(t, 2, c.Len())
}

func TestCache_SizingModeMustMatch(t *testing.T) {
	var c Cache
	space := avail(geom.MinContent(), geom.MaxContent())
	c.Put(Entry{
		KnownDimensions: geom.UndefinedSize(),
		AvailableSpace:  space,
		RunMode:         tree.ComputeSize,
		SizingMode:      tree.ContentSize,
		CachedSize:      geom.NewSize(0.0, 0.0),
	})

	_, ok := c.Get(geom.UndefinedSize(), space, tree.ComputeSize, tree.InherentSize)
	assert.False(t, ok, "content-sized entry must not answer an inherent query")

	got, ok := c.Get(geom.UndefinedSize(), space, tree.ComputeSize, tree.ContentSize)
	assert.True(t, ok)
	assert.Equal(t, geom.NewSize(0.0, 0.0), got)
}

func TestCache_Clear(t *testing.T) {
	var c Cache
	for i, w := range []float64{10, 20, 30} {
		c.Put(Entry{
			KnownDimensions: geom.UndefinedSize(),
			AvailableSpace:  avail(geom.Definite(w), geom.MinContent()),
			CachedSize:      geom.NewSize(w, float64(i)),
		})
	}
	// All three share the min-content slot.
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
}
