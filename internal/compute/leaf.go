package compute

import (
	"github.com/grindlemire/go-layout/internal/geom"
	"github.com/grindlemire/go-layout/internal/style"
	"github.com/grindlemire/go-layout/internal/tree"
)

// computeLeaf sizes a childless node from its style or its measure callback.
func (e *Engine) computeLeaf(node tree.NodeID, known, parentSize geom.Size[float64], available geom.Size[geom.AvailableSpace], sizingMode tree.SizingMode) geom.Size[float64] {
	s := e.tree.Style(node)

	// Content sizing ignores the node's own size styles.
	nodeSize := known
	minSize := geom.UndefinedSize()
	maxSize := geom.UndefinedSize()
	if sizingMode == tree.InherentSize {
		styleSize := style.ApplyAspectRatio(style.ResolveSize(s.Size, parentSize), s.AspectRatio)
		nodeSize = geom.SizeOr(known, styleSize)
		minSize = style.ResolveSize(s.MinSize, parentSize)
		maxSize = style.ResolveSize(s.MaxSize, parentSize)
	}

	if geom.IsDefined(nodeSize.Width) && geom.IsDefined(nodeSize.Height) {
		return geom.SizeMaybeClamp(nodeSize, minSize, maxSize)
	}

	if e.tree.NeedsMeasure(node) {
		narrowed := geom.Size[geom.AvailableSpace]{
			Width:  available.Width.Or(nodeSize.Width),
			Height: available.Height.Or(nodeSize.Height),
		}
		measured := e.tree.Measure(node, known, narrowed)
		if geom.IsDefined(s.AspectRatio) && s.AspectRatio > 0 {
			measured.Height = geom.Max(measured.Height, measured.Width/s.AspectRatio)
		}
		return geom.SizeMaybeClamp(geom.SizeOr(nodeSize, measured), minSize, maxSize)
	}

	// Percentages of padding and border resolve against the parent's width.
	padding := style.ResolveEdges(s.Padding, parentSize.Width)
	border := style.ResolveEdges(s.Border, parentSize.Width)
	pb := geom.SumAxes(geom.AddEdges(padding, border))

	size := geom.Size[float64]{
		Width:  max(geom.Or(nodeSize.Width, 0), pb.Width),
		Height: max(geom.Or(nodeSize.Height, 0), pb.Height),
	}
	return geom.SizeMaybeClamp(size, minSize, maxSize)
}
