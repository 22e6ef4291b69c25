package style

import "github.com/grindlemire/go-layout/internal/geom"

// Display selects the layout algorithm for a node's children.
type Display uint8

const (
	DisplayFlex Display = iota // Children laid out with flexbox
	DisplayGrid                // Children laid out with grid
	DisplayNone                // Node and subtree take no space
)

func (d Display) String() string {
	switch d {
	case DisplayFlex:
		return "flex"
	case DisplayGrid:
		return "grid"
	default:
		return "none"
	}
}

// FlexDirection specifies the main axis for laying out children.
type FlexDirection uint8

const (
	Row           FlexDirection = iota // Children laid out left-to-right
	Column                             // Children laid out top-to-bottom
	RowReverse                         // Right-to-left
	ColumnReverse                      // Bottom-to-top
)

// IsRow reports whether the main axis is horizontal.
func (d FlexDirection) IsRow() bool {
	return d == Row || d == RowReverse
}

// IsReverse reports whether items run from the end of the main axis.
func (d FlexDirection) IsReverse() bool {
	return d == RowReverse || d == ColumnReverse
}

// FlexWrap controls whether flex items may form multiple lines.
type FlexWrap uint8

const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

// Align positions an item within its slot (align-items, align-self,
// justify-items, justify-self).
type Align uint8

const (
	AlignAuto      Align = iota // Inherit (self) or normal (items)
	AlignStart                  // Align to start
	AlignEnd                    // Align to end
	AlignFlexStart              // Start, honoring wrap-reverse
	AlignFlexEnd                // End, honoring wrap-reverse
	AlignCenter                 // Center
	AlignBaseline               // Treated as start
	AlignStretch                // Stretch to fill the slot
)

// Justify distributes free space between lines, items or tracks
// (justify-content, align-content).
type Justify uint8

const (
	JustifyNormal       Justify = iota // Algorithm default
	JustifyStart                       // Pack at start
	JustifyEnd                         // Pack at end
	JustifyFlexStart                   // Pack at start, honoring reverse
	JustifyFlexEnd                     // Pack at end, honoring reverse
	JustifyCenter                      // Center
	JustifyStretch                     // Grow lines or auto tracks
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each item
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Style contains all layout properties for a node.
type Style struct {
	Display Display

	// Sizing
	Size        geom.Size[Dimension]
	MinSize     geom.Size[Dimension]
	MaxSize     geom.Size[Dimension]
	AspectRatio float64 // width / height, undefined for none

	// Spacing
	Margin  geom.Rect[Dimension]
	Padding geom.Rect[Dimension]
	Border  geom.Rect[Dimension]
	Gap     geom.Size[Dimension] // Width is the column gap, Height the row gap

	// Flex container properties
	FlexDirection  FlexDirection
	FlexWrap       FlexWrap
	AlignItems     Align
	AlignContent   Justify
	JustifyContent Justify

	// Flex item properties
	FlexGrow   float64
	FlexShrink float64
	FlexBasis  Dimension
	AlignSelf  Align // AlignAuto inherits the parent's AlignItems

	// Grid container properties
	GridTemplateRows    []TrackSize
	GridTemplateColumns []TrackSize
	GridAutoRows        []TrackSize
	GridAutoColumns     []TrackSize
	JustifyItems        Align

	// Grid item properties
	GridRow     geom.Line[GridPlacement]
	GridColumn  geom.Line[GridPlacement]
	JustifySelf Align
}

// DefaultStyle returns a Style with CSS initial values.
func DefaultStyle() Style {
	return Style{
		Display:     DisplayFlex,
		Size:        geom.Size[Dimension]{Width: Auto(), Height: Auto()},
		MinSize:     geom.Size[Dimension]{Width: Auto(), Height: Auto()},
		MaxSize:     geom.Size[Dimension]{Width: Auto(), Height: Auto()}, // No maximum
		AspectRatio: geom.Undefined,
		FlexShrink:  1.0,
		FlexBasis:   Auto(),
		GridRow:     geom.Line[GridPlacement]{Start: GridAuto(), End: GridAuto()},
		GridColumn:  geom.Line[GridPlacement]{Start: GridAuto(), End: GridAuto()},
	}
}

// ResolvedAlignSelf returns the item's alignment, falling back to the
// parent's AlignItems and then to stretch.
func (s Style) ResolvedAlignSelf(parent Style) Align {
	if s.AlignSelf != AlignAuto {
		return s.AlignSelf
	}
	if parent.AlignItems != AlignAuto {
		return parent.AlignItems
	}
	return AlignStretch
}

// ResolvedJustifySelf is ResolvedAlignSelf for the inline axis of a grid.
func (s Style) ResolvedJustifySelf(parent Style) Align {
	if s.JustifySelf != AlignAuto {
		return s.JustifySelf
	}
	if parent.JustifyItems != AlignAuto {
		return parent.JustifyItems
	}
	return AlignStretch
}

// MarginIsAuto reports which sides carry an auto margin.
func (s Style) MarginIsAuto() geom.Rect[bool] {
	return geom.Rect[bool]{
		Left:   s.Margin.Left.IsAuto(),
		Right:  s.Margin.Right.IsAuto(),
		Top:    s.Margin.Top.IsAuto(),
		Bottom: s.Margin.Bottom.IsAuto(),
	}
}

// ApplyAspectRatio fills one undefined axis of s from the other.
func ApplyAspectRatio(s geom.Size[float64], ratio float64) geom.Size[float64] {
	if !geom.IsDefined(ratio) || ratio == 0 {
		return s
	}
	switch {
	case geom.IsDefined(s.Width) && geom.IsUndefined(s.Height):
		s.Height = s.Width / ratio
	case geom.IsDefined(s.Height) && geom.IsUndefined(s.Width):
		s.Width = s.Height * ratio
	}
	return s
}
