package grid

import (
	"math"

	"github.com/grindlemire/go-layout/internal/geom"
	"github.com/grindlemire/go-layout/internal/style"
	"github.com/grindlemire/go-layout/internal/tree"
)

// Tree is the subset of the layout tree the grid algorithm needs.
// ComputeChild lays out (or measures) a child through the caller's cache.
type Tree interface {
	Style(node tree.NodeID) *style.Style
	Children(node tree.NodeID) []tree.NodeID
	SetUnroundedLayout(node tree.NodeID, l tree.Layout)
	ComputeChild(node tree.NodeID, known, parentSize geom.Size[float64], available geom.Size[geom.AvailableSpace], runMode tree.RunMode, sizingMode tree.SizingMode) geom.Size[float64]
	HideNode(node tree.NodeID, order uint32)
}

type trackKind uint8

const (
	kindTrack trackKind = iota
	kindGutter
)

// track is one entry in an axis's track vector. The vector alternates
// gutters and tracks and starts and ends with a collapsed gutter, so a grid
// line n (origin-zero, shifted by the negative implicit count) sits at
// index 2n.
type track struct {
	kind        trackKind
	collapsed   bool
	min         style.MinTrackSizing
	max         style.MaxTrackSizing
	offset      float64
	baseSize    float64
	growthLimit float64

	infinitelyGrowable bool

	baseSizePlannedIncrease    float64
	growthLimitPlannedIncrease float64
	itemIncurredIncrease       float64
}

func newTrack(size style.TrackSize) track {
	return track{kind: kindTrack, min: size.Min, max: size.Max}
}

func newGutter(size float64) track {
	return track{
		kind: kindGutter,
		min:  style.MinTrackSizing{Kind: style.MinFixed, Value: style.Points(size)},
		max:  style.MaxTrackSizing{Kind: style.MaxFixed, Value: style.Points(size)},
	}
}

func (t *track) collapse() {
	t.collapsed = true
	t.min = style.MinTrackSizing{Kind: style.MinFixed}
	t.max = style.MaxTrackSizing{Kind: style.MaxFixed}
}

func (t *track) isFlexible() bool { return t.max.IsFlexible() }

func (t *track) flexFactor() float64 { return t.max.FlexFactor() }

// fitContentLimit is the fit-content() argument, or infinity for every other
// maximum.
func (t *track) fitContentLimit(inner float64) float64 {
	if t.max.Kind != style.MaxFitContent {
		return math.Inf(1)
	}
	return geom.Or(t.max.Value.Resolve(inner), math.Inf(1))
}

func (t *track) fitContentLimitedGrowthLimit(inner float64) float64 {
	return math.Min(t.growthLimit, t.fitContentLimit(inner))
}

// item is a placed, in-flow grid child.
type item struct {
	node  tree.NodeID
	order uint32

	// Origin-zero grid lines after shifting by the negative implicit count.
	row    geom.Line[int]
	column geom.Line[int]

	crossesFlexibleRow     bool
	crossesFlexibleColumn  bool
	crossesIntrinsicRow    bool
	crossesIntrinsicColumn bool

	alignSelf   style.Align
	justifySelf style.Align

	// Per-axis contribution caches, reset before each axis is sized.
	minContent  float64
	maxContent  float64
	minimum     float64
	cachedKnown float64
}

func (it *item) placement(axis geom.AbsoluteAxis) geom.Line[int] {
	if axis == geom.Horizontal {
		return it.column
	}
	return it.row
}

func (it *item) span(axis geom.AbsoluteAxis) int {
	p := it.placement(axis)
	return p.End - p.Start
}

// trackRange is the half-open range of track-vector indexes the item spans,
// excluding its bounding gutters.
func (it *item) trackRange(axis geom.AbsoluteAxis) (int, int) {
	p := it.placement(axis)
	return 2*p.Start + 1, 2 * p.End
}

func (it *item) crossesFlexible(axis geom.AbsoluteAxis) bool {
	if axis == geom.Horizontal {
		return it.crossesFlexibleColumn
	}
	return it.crossesFlexibleRow
}

func (it *item) crossesIntrinsic(axis geom.AbsoluteAxis) bool {
	if axis == geom.Horizontal {
		return it.crossesIntrinsicColumn
	}
	return it.crossesIntrinsicRow
}

func (it *item) resetCache() {
	it.minContent = geom.Undefined
	it.maxContent = geom.Undefined
	it.minimum = geom.Undefined
	it.cachedKnown = geom.Undefined
}
