// Package grid implements CSS grid layout: item placement, the track sizing
// algorithm, and track and item alignment.
package grid

import (
	"github.com/grindlemire/go-layout/internal/compute/align"
	"github.com/grindlemire/go-layout/internal/geom"
	"github.com/grindlemire/go-layout/internal/style"
	"github.com/grindlemire/go-layout/internal/tree"
)

// Compute lays out node as a grid container and returns its border-box
// size. Under tree.ComputeSize children are measured but not positioned.
func Compute(t Tree, node tree.NodeID, known, parentSize geom.Size[float64], available geom.Size[geom.AvailableSpace], runMode tree.RunMode) geom.Size[float64] {
	s := t.Style(node)
	ratio := s.AspectRatio

	padding := style.ResolveEdges(s.Padding, parentSize.Width)
	border := style.ResolveEdges(s.Border, parentSize.Width)
	inset := geom.AddEdges(padding, border)
	insetSize := geom.SumAxes(inset)

	minSize := style.ApplyAspectRatio(style.ResolveSize(s.MinSize, parentSize), ratio)
	maxSize := style.ApplyAspectRatio(style.ResolveSize(s.MaxSize, parentSize), ratio)
	styleSize := style.ApplyAspectRatio(style.ResolveSize(s.Size, parentSize), ratio)

	outer := geom.SizeOr(known, geom.SizeMaybeClamp(styleSize, minSize, maxSize))
	outer = geom.SizeMaybeMax(outer, insetSize)
	if runMode == tree.ComputeSize && geom.IsDefined(outer.Width) && geom.IsDefined(outer.Height) {
		return outer
	}

	inner := geom.SizeMaybeSub(outer, insetSize)
	availGrid := geom.Size[geom.AvailableSpace]{
		Width:  gridSpace(outer.Width, inner.Width, available.Width, insetSize.Width),
		Height: gridSpace(outer.Height, inner.Height, available.Height, insetSize.Height),
	}
	gap := style.ResolveGap(s.Gap, inner)

	items, rowCounts, colCounts := place(t, t.Children(node), s)
	columns := initializeTracks(colCounts, s.GridTemplateColumns, s.GridAutoColumns, gap.Width)
	rows := initializeTracks(rowCounts, s.GridTemplateRows, s.GridAutoRows, gap.Height)
	for i := range items {
		it := &items[i]
		cs := t.Style(it.node)
		it.alignSelf = cs.ResolvedAlignSelf(*s)
		it.justifySelf = cs.ResolvedJustifySelf(*s)
		markCrossings(it, columns, rows, inner)
	}

	innerMin := geom.SizeMaybeSub(minSize, insetSize)
	innerMax := geom.SizeMaybeSub(maxSize, insetSize)

	cols := sizer{
		t:         t,
		axis:      geom.Horizontal,
		tracks:    columns,
		other:     rows,
		items:     items,
		inner:     inner,
		available: availGrid.Width,
		minSize:   innerMin.Width,
		maxSize:   innerMax.Width,
		alignment: s.JustifyContent,
		estimate: func(tr *track, inner float64) float64 {
			return tr.max.DefiniteValue(inner)
		},
	}
	cols.run()
	colSum := sumBase(columns)
	inner.Width = geom.Or(inner.Width, colSum)

	for i := range items {
		items[i].resetCache()
	}
	rowSizer := sizer{
		t:         t,
		axis:      geom.Vertical,
		tracks:    rows,
		other:     columns,
		items:     items,
		inner:     inner,
		available: availGrid.Height,
		minSize:   innerMin.Height,
		maxSize:   innerMax.Height,
		alignment: s.AlignContent,
		estimate: func(tr *track, _ float64) float64 {
			return tr.baseSize
		},
	}
	rowSizer.run()
	rowSum := sumBase(rows)

	resolved := geom.SizeOr(known, styleSize)
	container := geom.Size[float64]{
		Width:  max(geom.MaybeClamp(geom.Or(resolved.Width, colSum+insetSize.Width), minSize.Width, maxSize.Width), insetSize.Width),
		Height: max(geom.MaybeClamp(geom.Or(resolved.Height, rowSum+insetSize.Height), minSize.Height, maxSize.Height), insetSize.Height),
	}
	if runMode == tree.ComputeSize {
		return container
	}

	content := geom.Size[float64]{
		Width:  max(container.Width-insetSize.Width, 0),
		Height: max(container.Height-insetSize.Height, 0),
	}
	alignTracks(columns, content.Width, inset.Left, s.JustifyContent)
	alignTracks(rows, content.Height, inset.Top, s.AlignContent)

	for i := range items {
		it := &items[i]
		rs, re := it.trackRange(geom.Vertical)
		cs, ce := it.trackRange(geom.Horizontal)
		area := geom.Rect[float64]{
			Top:    rows[rs].offset,
			Bottom: rows[re].offset,
			Left:   columns[cs].offset,
			Right:  columns[ce].offset,
		}
		positionItem(t, it, area, s)
	}
	return container
}

// gridSpace is the space the tracks of one axis may fill.
func gridSpace(outer, inner float64, available geom.AvailableSpace, inset float64) geom.AvailableSpace {
	if geom.IsDefined(outer) {
		return geom.Definite(inner)
	}
	return available.MaybeSub(inset)
}

// markCrossings records whether the item spans flexible or intrinsic tracks
// in each axis.
func markCrossings(it *item, columns, rows []track, inner geom.Size[float64]) {
	check := func(tracks []track, start, end int, innerSize float64) (flexible, intrinsic bool) {
		for i := start; i < end; i++ {
			tr := &tracks[i]
			flexible = flexible || tr.isFlexible()
			intrinsic = intrinsic || tr.min.IsIntrinsic() || tr.max.IsIntrinsic() ||
				geom.IsUndefined(tr.min.DefiniteValue(innerSize))
		}
		return flexible, intrinsic
	}
	cs, ce := it.trackRange(geom.Horizontal)
	it.crossesFlexibleColumn, it.crossesIntrinsicColumn = check(columns, cs, ce, inner.Width)
	rs, re := it.trackRange(geom.Vertical)
	it.crossesFlexibleRow, it.crossesIntrinsicRow = check(rows, rs, re, inner.Height)
}

// alignTracks assigns each track its offset from the container's border
// edge. Gutters are tracks themselves, so no gap is passed to the alignment.
func alignTracks(tracks []track, contentSize, origin float64, mode style.Justify) {
	count := 0
	for i := range tracks {
		if tracks[i].kind == kindTrack {
			count++
		}
	}
	free := contentSize - sumBase(tracks)

	offset := origin
	for i := range tracks {
		tr := &tracks[i]
		shift := 0.0
		if tr.kind == kindTrack {
			shift = align.ContentOffset(free, count, 0, mode, false, i == 1)
		}
		tr.offset = offset + shift
		offset += shift + tr.baseSize
	}
}

// positionItem sizes the item within its grid area, lays it out and stores
// its final location.
func positionItem(t Tree, it *item, area geom.Rect[float64], container *style.Style) {
	areaSize := geom.Size[float64]{Width: area.Right - area.Left, Height: area.Bottom - area.Top}
	cs := t.Style(it.node)
	ratio := cs.AspectRatio

	padding := style.ResolveEdges(cs.Padding, areaSize.Width)
	border := style.ResolveEdges(cs.Border, areaSize.Width)
	insetSize := geom.SumAxes(geom.AddEdges(padding, border))

	inherent := style.ApplyAspectRatio(style.ResolveSize(cs.Size, areaSize), ratio)
	minSize := geom.SizeOr(style.ResolveSize(cs.MinSize, areaSize), insetSize)
	minSize = style.ApplyAspectRatio(geom.SizeMaybeMax(minSize, insetSize), ratio)
	maxSize := style.ApplyAspectRatio(style.ResolveSize(cs.MaxSize, areaSize), ratio)

	justify := cs.JustifySelf
	if justify == style.AlignAuto {
		justify = container.JustifyItems
	}
	if justify == style.AlignAuto {
		justify = style.AlignStretch
		if geom.IsDefined(inherent.Width) {
			justify = style.AlignStart
		}
	}
	alignSelf := cs.AlignSelf
	if alignSelf == style.AlignAuto {
		alignSelf = container.AlignItems
	}
	if alignSelf == style.AlignAuto {
		alignSelf = style.AlignStretch
		if geom.IsDefined(inherent.Height) || (geom.IsDefined(ratio) && ratio != 0) {
			alignSelf = style.AlignStart
		}
	}

	// Both axes resolve margins against the area's width.
	margin := geom.Edges{
		Left:   cs.Margin.Left.Resolve(areaSize.Width),
		Right:  cs.Margin.Right.Resolve(areaSize.Width),
		Top:    cs.Margin.Top.Resolve(areaSize.Width),
		Bottom: cs.Margin.Bottom.Resolve(areaSize.Width),
	}
	room := geom.Size[float64]{
		Width:  geom.MaybeSub(geom.MaybeSub(areaSize.Width, margin.Left), margin.Right),
		Height: geom.MaybeSub(geom.MaybeSub(areaSize.Height, margin.Top), margin.Bottom),
	}

	size := inherent
	if geom.IsUndefined(size.Width) && geom.IsDefined(margin.Left) && geom.IsDefined(margin.Right) && justify == style.AlignStretch {
		size.Width = room.Width
	}
	size = style.ApplyAspectRatio(size, ratio)
	if geom.IsUndefined(size.Height) && geom.IsDefined(margin.Top) && geom.IsDefined(margin.Bottom) && alignSelf == style.AlignStretch {
		size.Height = room.Height
	}
	size = style.ApplyAspectRatio(size, ratio)
	size = geom.SizeMaybeClamp(size, minSize, maxSize)

	measured := t.ComputeChild(it.node, size, areaSize, geom.Size[geom.AvailableSpace]{
		Width:  geom.Definite(room.Width),
		Height: geom.Definite(room.Height),
	}, tree.PerformLayout, tree.InherentSize)
	final := geom.SizeMaybeClamp(geom.SizeOr(size, measured), minSize, maxSize)

	t.SetUnroundedLayout(it.node, tree.Layout{
		Order: it.order,
		Size:  final,
		Location: geom.Point[float64]{
			X: alignWithinArea(area.Left, area.Right, justify, final.Width, margin.Left, margin.Right),
			Y: alignWithinArea(area.Top, area.Bottom, alignSelf, final.Height, margin.Top, margin.Bottom),
		},
	})
}

// alignWithinArea returns the item's start coordinate along one axis. An
// undefined margin is auto and absorbs free space.
func alignWithinArea(start, end float64, mode style.Align, size, marginStart, marginEnd float64) float64 {
	areaSize := max(end-start, 0)
	free := max(areaSize-size-geom.Or(marginStart, 0)-geom.Or(marginEnd, 0), 0)

	autos := 0
	if geom.IsUndefined(marginStart) {
		autos++
	}
	if geom.IsUndefined(marginEnd) {
		autos++
	}
	autoSize := 0.0
	if autos > 0 {
		autoSize = free / float64(autos)
	}
	ms := geom.Or(marginStart, autoSize)
	me := geom.Or(marginEnd, autoSize)

	switch mode {
	case style.AlignEnd, style.AlignFlexEnd:
		return start + areaSize - size - me
	case style.AlignCenter:
		return start + (areaSize-size+ms-me)/2
	default:
		return start + ms
	}
}
