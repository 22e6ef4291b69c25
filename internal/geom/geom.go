package geom

// AbsoluteAxis names a physical axis.
type AbsoluteAxis uint8

const (
	Horizontal AbsoluteAxis = iota
	Vertical
)

// Other returns the perpendicular axis.
func (a AbsoluteAxis) Other() AbsoluteAxis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (a AbsoluteAxis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Size is a width/height pair.
type Size[T any] struct {
	Width  T
	Height T
}

// NewSize builds a Size from its components.
func NewSize[T any](width, height T) Size[T] {
	return Size[T]{Width: width, Height: height}
}

// Get returns the component along axis.
func (s Size[T]) Get(axis AbsoluteAxis) T {
	if axis == Horizontal {
		return s.Width
	}
	return s.Height
}

// Set returns a copy with the component along axis replaced.
func (s Size[T]) Set(axis AbsoluteAxis, v T) Size[T] {
	if axis == Horizontal {
		s.Width = v
	} else {
		s.Height = v
	}
	return s
}

// Main returns the main-axis component for a row (isRow) or column container.
func (s Size[T]) Main(isRow bool) T {
	if isRow {
		return s.Width
	}
	return s.Height
}

// Cross returns the cross-axis component.
func (s Size[T]) Cross(isRow bool) T {
	if isRow {
		return s.Height
	}
	return s.Width
}

// WithMain returns a copy with the main-axis component replaced.
func (s Size[T]) WithMain(isRow bool, v T) Size[T] {
	if isRow {
		s.Width = v
	} else {
		s.Height = v
	}
	return s
}

// WithCross returns a copy with the cross-axis component replaced.
func (s Size[T]) WithCross(isRow bool, v T) Size[T] {
	if isRow {
		s.Height = v
	} else {
		s.Width = v
	}
	return s
}

// FromMainCross builds a Size from main and cross components.
func FromMainCross[T any](isRow bool, main, cross T) Size[T] {
	if isRow {
		return Size[T]{Width: main, Height: cross}
	}
	return Size[T]{Width: cross, Height: main}
}

// Line is a start/end pair, used for grid placements and track ranges.
type Line[T any] struct {
	Start T
	End   T
}

// Point is an x/y coordinate.
type Point[T any] struct {
	X T
	Y T
}

// Rect holds one value per side of a box.
type Rect[T any] struct {
	Left   T
	Right  T
	Top    T
	Bottom T
}

// UniformRect returns a Rect with v on every side.
func UniformRect[T any](v T) Rect[T] {
	return Rect[T]{Left: v, Right: v, Top: v, Bottom: v}
}
