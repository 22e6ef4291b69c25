package geom

import "math"

// Undefined is the sentinel for an unset size.
var Undefined = math.NaN()

// Inf is positive infinity, used for unbounded growth limits.
var Inf = math.Inf(1)

// IsDefined reports whether v holds a size.
func IsDefined(v float64) bool {
	return !math.IsNaN(v)
}

// IsUndefined reports whether v is the undefined sentinel.
func IsUndefined(v float64) bool {
	return math.IsNaN(v)
}

// Or returns v if defined, otherwise fallback.
func Or(v, fallback float64) float64 {
	if math.IsNaN(v) {
		return fallback
	}
	return v
}

// MaybeMin returns the smaller of a and b. An undefined b leaves a unchanged.
func MaybeMin(a, b float64) float64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return a
	}
	if b < a {
		return b
	}
	return a
}

// MaybeMax returns the larger of a and b. An undefined b leaves a unchanged.
func MaybeMax(a, b float64) float64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return a
	}
	if b > a {
		return b
	}
	return a
}

// MaybeClamp raises v to lo then lowers it to hi, skipping undefined bounds.
// If lo > hi, lo wins.
func MaybeClamp(v, lo, hi float64) float64 {
	return MaybeMax(MaybeMin(v, hi), lo)
}

// MaybeAdd returns a+b, treating an undefined b as zero.
func MaybeAdd(a, b float64) float64 {
	if math.IsNaN(b) {
		return a
	}
	return a + b
}

// MaybeSub returns a-b, treating an undefined b as zero.
func MaybeSub(a, b float64) float64 {
	if math.IsNaN(b) {
		return a
	}
	return a - b
}

// Max is the NaN-ignoring maximum of two values where either may be undefined.
func Max(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	case a > b:
		return a
	default:
		return b
	}
}

// FloatsEqual compares two sizes with a small tolerance. Two undefined
// values are equal.
func FloatsEqual(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return math.Abs(a-b) < 0.0001
}
