package compute

import (
	"github.com/grindlemire/go-layout/internal/cache"
	"github.com/grindlemire/go-layout/internal/geom"
	"github.com/grindlemire/go-layout/internal/style"
	"github.com/grindlemire/go-layout/internal/tree"
)

// LayoutTree is the capability interface the engine needs from the tree
// storage. The engine never allocates or links nodes itself.
type LayoutTree interface {
	// Style returns the node's style. The engine treats it as read-only.
	Style(node tree.NodeID) *style.Style

	// Children returns the node's children in document order.
	Children(node tree.NodeID) []tree.NodeID

	// ChildCount returns len(Children(node)).
	ChildCount(node tree.NodeID) int

	// UnroundedLayout returns the fractional layout last written by the engine.
	UnroundedLayout(node tree.NodeID) tree.Layout

	// SetUnroundedLayout stores the fractional layout for node.
	SetUnroundedLayout(node tree.NodeID, layout tree.Layout)

	// SetLayout stores the final, possibly rounded, layout for node.
	SetLayout(node tree.NodeID, layout tree.Layout)

	// Cache returns the node's memoization slots.
	Cache(node tree.NodeID) *cache.Cache

	// NeedsMeasure reports whether a leaf sizes itself through Measure.
	NeedsMeasure(node tree.NodeID) bool

	// Measure runs the node's measurement callback.
	Measure(node tree.NodeID, known geom.Size[float64], available geom.Size[geom.AvailableSpace]) geom.Size[float64]

	// SetDirty records whether the node needs recomputation.
	SetDirty(node tree.NodeID, dirty bool)
}

// NodeValidator is implemented by trees that can report whether a handle
// exists. ComputeLayout checks the root against it when available.
type NodeValidator interface {
	Contains(node tree.NodeID) bool
}
