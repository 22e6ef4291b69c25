// Package geom holds the geometric primitives shared by the layout
// algorithms: generic sizes, lines, points and rects, the available space
// variant, and the helpers for working with undefined (NaN) sizes.
//
// An undefined size is represented as NaN. Arithmetic helpers prefixed with
// Maybe treat an undefined right-hand operand as absent and propagate an
// undefined left-hand operand, so an unset size never silently becomes zero.
package geom
