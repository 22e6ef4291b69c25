package geom

import (
	"math"
	"strconv"
)

// roughEpsilon is the tolerance for comparing definite spaces.
const roughEpsilon = 1.1920929e-07

// AvailableSpaceKind tags an AvailableSpace.
type AvailableSpaceKind uint8

const (
	KindDefinite   AvailableSpaceKind = iota // A definite pixel bound
	KindMinContent                           // Size under a min-content constraint
	KindMaxContent                           // Size under a max-content constraint
)

// AvailableSpace is the space offered to a node along one axis.
type AvailableSpace struct {
	Kind  AvailableSpaceKind
	Value float64 // Only meaningful for KindDefinite
}

// Definite returns a definite amount of space.
func Definite(v float64) AvailableSpace {
	return AvailableSpace{Kind: KindDefinite, Value: v}
}

// MinContent returns the min-content sizing constraint.
func MinContent() AvailableSpace {
	return AvailableSpace{Kind: KindMinContent}
}

// MaxContent returns the max-content sizing constraint.
func MaxContent() AvailableSpace {
	return AvailableSpace{Kind: KindMaxContent}
}

// FromSize returns Definite(v) for a defined v, otherwise fallback.
func FromSize(v float64, fallback AvailableSpace) AvailableSpace {
	if math.IsNaN(v) {
		return fallback
	}
	return Definite(v)
}

// IsDefinite reports whether the space is a definite bound.
func (a AvailableSpace) IsDefinite() bool {
	return a.Kind == KindDefinite
}

// AsSize returns the definite value or Undefined.
func (a AvailableSpace) AsSize() float64 {
	if a.Kind == KindDefinite {
		return a.Value
	}
	return Undefined
}

// UnwrapOr returns the definite value or fallback.
func (a AvailableSpace) UnwrapOr(fallback float64) float64 {
	if a.Kind == KindDefinite {
		return a.Value
	}
	return fallback
}

// Or replaces a with v when v is defined.
func (a AvailableSpace) Or(v float64) AvailableSpace {
	if math.IsNaN(v) {
		return a
	}
	return Definite(v)
}

// MaybeSub shrinks a definite space by v. Undefined v leaves it unchanged.
func (a AvailableSpace) MaybeSub(v float64) AvailableSpace {
	if a.Kind != KindDefinite || math.IsNaN(v) {
		return a
	}
	return Definite(a.Value - v)
}

// MaybeMin bounds the space by v. A content constraint bounded by a
// defined v becomes definite.
func (a AvailableSpace) MaybeMin(v float64) AvailableSpace {
	if math.IsNaN(v) {
		return a
	}
	if a.Kind == KindDefinite {
		return Definite(math.Min(a.Value, v))
	}
	return Definite(v)
}

// MaybeClamp clamps a definite space. Content constraints are unchanged.
func (a AvailableSpace) MaybeClamp(lo, hi float64) AvailableSpace {
	if a.Kind != KindDefinite {
		return a
	}
	return Definite(MaybeClamp(a.Value, lo, hi))
}

// MaybeMax raises a definite space to at least v.
func (a AvailableSpace) MaybeMax(v float64) AvailableSpace {
	if a.Kind != KindDefinite {
		return a
	}
	return Definite(MaybeMax(a.Value, v))
}

// ComputeFreeSpace returns the space left after used is consumed. A
// max-content constraint has unlimited free space, min-content has none.
func (a AvailableSpace) ComputeFreeSpace(used float64) float64 {
	switch a.Kind {
	case KindDefinite:
		return a.Value - used
	case KindMaxContent:
		return math.Inf(1)
	default:
		return 0
	}
}

// IsRoughlyEqual compares two spaces for cache lookups: definite values
// match within a small epsilon, content constraints match by kind.
func (a AvailableSpace) IsRoughlyEqual(b AvailableSpace) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == KindDefinite {
		return math.Abs(a.Value-b.Value) < roughEpsilon
	}
	return true
}

func (a AvailableSpace) String() string {
	switch a.Kind {
	case KindDefinite:
		return strconv.FormatFloat(a.Value, 'g', -1, 64)
	case KindMinContent:
		return "min-content"
	default:
		return "max-content"
	}
}

// AvailableFromSize converts a known size into definite space per axis,
// keeping fallback where the size is undefined.
func AvailableFromSize(s Size[float64], fallback Size[AvailableSpace]) Size[AvailableSpace] {
	return Size[AvailableSpace]{Width: FromSize(s.Width, fallback.Width), Height: FromSize(s.Height, fallback.Height)}
}

// DefiniteSize returns the definite values of s, Undefined elsewhere.
func DefiniteSize(s Size[AvailableSpace]) Size[float64] {
	return Size[float64]{Width: s.Width.AsSize(), Height: s.Height.AsSize()}
}
