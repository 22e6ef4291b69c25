// Package style defines the per-node layout inputs consumed by the flex and
// grid algorithms: display mode, sizing, spacing, flex item properties,
// alignment, and grid track and placement definitions.
//
// Styles are plain data. The algorithms never mutate them.
package style
