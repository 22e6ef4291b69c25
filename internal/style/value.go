package style

import (
	"math"
	"strconv"

	"github.com/grindlemire/go-layout/internal/geom"
)

// Unit specifies how a Dimension is interpreted.
type Unit uint8

const (
	UnitPoints  Unit = iota // Absolute pixels
	UnitPercent             // Percentage of the parent's size
	UnitAuto                // Size determined by content/flex
)

// Dimension represents a length that can be points, percent, or auto.
// The zero value is Points(0).
type Dimension struct {
	Amount float64
	Unit   Unit
}

// Points returns an absolute length.
func Points(v float64) Dimension {
	return Dimension{Amount: v, Unit: UnitPoints}
}

// Percent returns a length relative to the parent's size.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Dimension {
	return Dimension{Amount: p, Unit: UnitPercent}
}

// Auto returns a Dimension that should be computed from content/flex.
func Auto() Dimension {
	return Dimension{Unit: UnitAuto}
}

// IsAuto returns true if this value should be computed from content/flex.
func (d Dimension) IsAuto() bool {
	return d.Unit == UnitAuto
}

// Resolve computes the length against the parent size. Auto, and percent
// against an undefined parent, resolve to undefined.
func (d Dimension) Resolve(parent float64) float64 {
	switch d.Unit {
	case UnitPoints:
		return d.Amount
	case UnitPercent:
		if math.IsNaN(parent) {
			return geom.Undefined
		}
		return parent * d.Amount / 100.0
	default:
		return geom.Undefined
	}
}

// ResolveOrZero is Resolve with undefined mapped to zero.
func (d Dimension) ResolveOrZero(parent float64) float64 {
	return geom.Or(d.Resolve(parent), 0)
}

func (d Dimension) String() string {
	switch d.Unit {
	case UnitPoints:
		return strconv.FormatFloat(d.Amount, 'g', -1, 64) + "px"
	case UnitPercent:
		return strconv.FormatFloat(d.Amount, 'g', -1, 64) + "%"
	default:
		return "auto"
	}
}

// ResolveSize resolves both axes of s against the matching parent axis.
func ResolveSize(s geom.Size[Dimension], parent geom.Size[float64]) geom.Size[float64] {
	return geom.Size[float64]{Width: s.Width.Resolve(parent.Width), Height: s.Height.Resolve(parent.Height)}
}

// ResolveEdges resolves every side against the parent's width, as CSS does
// for margin, padding and border percentages. Auto sides resolve to zero.
func ResolveEdges(r geom.Rect[Dimension], parentWidth float64) geom.Edges {
	return geom.Edges{
		Left:   r.Left.ResolveOrZero(parentWidth),
		Right:  r.Right.ResolveOrZero(parentWidth),
		Top:    r.Top.ResolveOrZero(parentWidth),
		Bottom: r.Bottom.ResolveOrZero(parentWidth),
	}
}

// ResolveGap resolves column and row gaps against the matching parent axis.
func ResolveGap(gap geom.Size[Dimension], parent geom.Size[float64]) geom.Size[float64] {
	return geom.Size[float64]{Width: gap.Width.ResolveOrZero(parent.Width), Height: gap.Height.ResolveOrZero(parent.Height)}
}

// Edges builds a Rect with the same Dimension on all sides.
func Edges(d Dimension) geom.Rect[Dimension] {
	return geom.UniformRect(d)
}

// EdgesTRBL builds a Rect following CSS order: top, right, bottom, left.
func EdgesTRBL(t, r, b, l Dimension) geom.Rect[Dimension] {
	return geom.Rect[Dimension]{Top: t, Right: r, Bottom: b, Left: l}
}
