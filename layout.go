// layout.go re-exports types from the internal packages.
// Any changes to internal/style, internal/geom or internal/tree types must be
// mirrored here.
package layout

import (
	"github.com/grindlemire/go-layout/internal/compute"
	"github.com/grindlemire/go-layout/internal/geom"
	"github.com/grindlemire/go-layout/internal/style"
	"github.com/grindlemire/go-layout/internal/tree"
)

// NodeID is a handle to a node in a Tree.
type NodeID = tree.NodeID

// Result holds a node's computed order, size and location.
type Result = tree.Layout

// MeasureFunc sizes a leaf from its content.
type MeasureFunc = tree.MeasureFunc

// Style holds the layout properties for a node.
type Style = style.Style

// Dimension is a length, a percentage or auto.
type Dimension = style.Dimension

// Display selects the layout algorithm for a node's children.
type Display = style.Display

const (
	DisplayFlex = style.DisplayFlex
	DisplayGrid = style.DisplayGrid
	DisplayNone = style.DisplayNone
)

// FlexDirection specifies the main axis for laying out children.
type FlexDirection = style.FlexDirection

const (
	Row           = style.Row
	Column        = style.Column
	RowReverse    = style.RowReverse
	ColumnReverse = style.ColumnReverse
)

// FlexWrap controls whether flex items may form multiple lines.
type FlexWrap = style.FlexWrap

const (
	NoWrap      = style.NoWrap
	Wrap        = style.Wrap
	WrapReverse = style.WrapReverse
)

// Align positions an item within its slot.
type Align = style.Align

const (
	AlignAuto      = style.AlignAuto
	AlignStart     = style.AlignStart
	AlignEnd       = style.AlignEnd
	AlignFlexStart = style.AlignFlexStart
	AlignFlexEnd   = style.AlignFlexEnd
	AlignCenter    = style.AlignCenter
	AlignBaseline  = style.AlignBaseline
	AlignStretch   = style.AlignStretch
)

// Justify distributes free space between lines, items or tracks.
type Justify = style.Justify

const (
	JustifyNormal       = style.JustifyNormal
	JustifyStart        = style.JustifyStart
	JustifyEnd          = style.JustifyEnd
	JustifyFlexStart    = style.JustifyFlexStart
	JustifyFlexEnd      = style.JustifyFlexEnd
	JustifyCenter       = style.JustifyCenter
	JustifyStretch      = style.JustifyStretch
	JustifySpaceBetween = style.JustifySpaceBetween
	JustifySpaceAround  = style.JustifySpaceAround
	JustifySpaceEvenly  = style.JustifySpaceEvenly
)

// TrackSize is a grid track's minmax() pair.
type TrackSize = style.TrackSize

// GridPlacement is one end of a grid item's placement.
type GridPlacement = style.GridPlacement

// Size is a width/height pair.
type Size[T any] = geom.Size[T]

// Line is a start/end pair.
type Line[T any] = geom.Line[T]

// Point is an x/y coordinate.
type Point[T any] = geom.Point[T]

// Rect holds one value per side of a box.
type Rect[T any] = geom.Rect[T]

// AvailableSpace is the space offered to a node along one axis.
type AvailableSpace = geom.AvailableSpace

// Stats counts the node computations of a layout pass.
type Stats = compute.Stats

// Option configures a layout pass.
type Option = compute.Option

// ErrInvalidNode is returned for handles that do not belong to the tree.
var ErrInvalidNode = compute.ErrInvalidNode

// Undefined marks an unset size.
var Undefined = geom.Undefined

// DefaultStyle returns a Style with CSS initial values.
func DefaultStyle() Style {
	return style.DefaultStyle()
}

// Points creates a fixed length.
func Points(v float64) Dimension {
	return style.Points(v)
}

// Percent creates a percentage (0-100) of the parent's size.
func Percent(p float64) Dimension {
	return style.Percent(p)
}

// Auto creates a Dimension resolved by the layout algorithm.
func Auto() Dimension {
	return style.Auto()
}

// Edges returns a Rect with d on every side.
func Edges(d Dimension) Rect[Dimension] {
	return style.Edges(d)
}

// EdgesTRBL creates edges following CSS order: top, right, bottom, left.
func EdgesTRBL(t, r, b, l Dimension) Rect[Dimension] {
	return style.EdgesTRBL(t, r, b, l)
}

// ParseTrackList parses a CSS grid track list such as "100px 1fr auto".
func ParseTrackList(s string) ([]TrackSize, error) {
	return style.ParseTrackList(s)
}

// FormatTrackList renders tracks back to CSS, one entry per track.
func FormatTrackList(tracks []TrackSize) string {
	return style.FormatTrackList(tracks)
}

// ParseGridLine parses a grid-row or grid-column value such as "1 / 3".
func ParseGridLine(s string) (Line[GridPlacement], error) {
	return style.ParseGridLine(s)
}

// Definite offers v pixels along one axis.
func Definite(v float64) AvailableSpace {
	return geom.Definite(v)
}

// MinContent sizes one axis under a min-content constraint.
func MinContent() AvailableSpace {
	return geom.MinContent()
}

// MaxContent sizes one axis under a max-content constraint.
func MaxContent() AvailableSpace {
	return geom.MaxContent()
}

// DefiniteSpace offers a definite width and height.
func DefiniteSpace(width, height float64) Size[AvailableSpace] {
	return Size[AvailableSpace]{Width: geom.Definite(width), Height: geom.Definite(height)}
}

// MaxContentSpace sizes the root under a max-content constraint.
func MaxContentSpace() Size[AvailableSpace] {
	return Size[AvailableSpace]{Width: geom.MaxContent(), Height: geom.MaxContent()}
}

// MinContentSpace sizes the root under a min-content constraint.
func MinContentSpace() Size[AvailableSpace] {
	return Size[AvailableSpace]{Width: geom.MinContent(), Height: geom.MinContent()}
}

// WithLogger, WithoutCache and WithRounding configure ComputeLayout.
var (
	WithLogger   = compute.WithLogger
	WithoutCache = compute.WithoutCache
	WithRounding = compute.WithRounding
)
