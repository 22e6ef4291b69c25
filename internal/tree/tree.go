// Package tree defines the node handle and the per-node results shared by
// the layout algorithms and the tree storage that hosts them.
package tree

import "github.com/grindlemire/go-layout/internal/geom"

// NodeID is an opaque handle into the tree storage.
type NodeID uint32

// Layout holds the computed position and size after layout calculation.
// Location is relative to the parent's border box.
type Layout struct {
	Order    uint32
	Size     geom.Size[float64]
	Location geom.Point[float64]
}

// RunMode selects whether a node computation only measures or also
// positions descendants.
type RunMode uint8

const (
	PerformLayout RunMode = iota // Compute size and write child layouts
	ComputeSize                  // Compute size only
)

func (m RunMode) String() string {
	if m == PerformLayout {
		return "perform-layout"
	}
	return "compute-size"
}

// SizingMode selects whether a node's own styled size is honored.
type SizingMode uint8

const (
	InherentSize SizingMode = iota // Apply the node's size styles
	ContentSize                    // Ignore them and size to content
)

// MeasureFunc measures a leaf's content under the given constraints.
// Known dimensions are undefined where the axis is free.
type MeasureFunc func(known geom.Size[float64], available geom.Size[geom.AvailableSpace]) geom.Size[float64]
