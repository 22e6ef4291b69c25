// Package layout computes CSS flexbox and grid layouts for a tree of boxes.
//
// Build a tree with NewTree, NewLeaf and NewWithChildren, then call
// ComputeLayout with the space available to the root. Every node's position
// (relative to its parent) and size can then be read back with Layout.
//
//	t := layout.NewTree()
//	grow := layout.DefaultStyle()
//	grow.FlexGrow = 1
//	a := t.NewLeaf(grow)
//	root, _ := t.NewWithChildren(layout.DefaultStyle(), a)
//	_ = t.ComputeLayout(root, layout.DefiniteSpace(100, 100))
//
// Leaves can size themselves from content through a MeasureFunc.
package layout
