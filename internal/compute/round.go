package compute

import (
	"math"

	"github.com/grindlemire/go-layout/internal/geom"
	"github.com/grindlemire/go-layout/internal/tree"
)

// roundLayout snaps node and its subtree to whole pixels. Edges are rounded
// in absolute coordinates and sizes are derived from the rounded edges, so
// boxes that touch before rounding still touch afterwards.
func (e *Engine) roundLayout(node tree.NodeID, parentAbsX, parentAbsY float64) {
	l := e.tree.UnroundedLayout(node)
	absX := parentAbsX + l.Location.X
	absY := parentAbsY + l.Location.Y

	e.tree.SetLayout(node, tree.Layout{
		Order: l.Order,
		Location: geom.Point[float64]{
			X: math.Round(absX) - math.Round(parentAbsX),
			Y: math.Round(absY) - math.Round(parentAbsY),
		},
		Size: geom.Size[float64]{
			Width:  math.Round(absX+l.Size.Width) - math.Round(absX),
			Height: math.Round(absY+l.Size.Height) - math.Round(absY),
		},
	})

	for _, child := range e.tree.Children(node) {
		e.roundLayout(child, absX, absY)
	}
}

// copyLayout publishes the unrounded layouts unchanged.
func (e *Engine) copyLayout(node tree.NodeID) {
	e.tree.SetLayout(node, e.tree.UnroundedLayout(node))
	for _, child := range e.tree.Children(node) {
		e.copyLayout(child)
	}
}
