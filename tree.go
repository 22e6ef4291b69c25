package layout

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-layout/internal/cache"
	"github.com/grindlemire/go-layout/internal/compute"
	"github.com/grindlemire/go-layout/internal/style"
)

// ErrCycle is returned when linking a node under one of its descendants.
var ErrCycle = errors.New("node would become its own ancestor")

type node struct {
	style    style.Style
	children []NodeID
	parent   NodeID
	attached bool // parent is valid
	measure  MeasureFunc
	cache    cache.Cache

	unrounded Result
	final     Result
	dirty     bool
}

// Tree is an arena of nodes addressed by NodeID. It is not safe for
// concurrent use; independent trees may be laid out in parallel.
type Tree struct {
	nodes []node
	stats Stats
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

func (t *Tree) add(s Style, m MeasureFunc) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{style: s, measure: m, dirty: true})
	return id
}

// NewLeaf creates a childless node.
func (t *Tree) NewLeaf(s Style) NodeID {
	return t.add(s, nil)
}

// NewLeafWithMeasure creates a leaf sized by m.
func (t *Tree) NewLeafWithMeasure(s Style, m MeasureFunc) NodeID {
	return t.add(s, m)
}

// NewWithChildren creates a node and appends children to it.
func (t *Tree) NewWithChildren(s Style, children ...NodeID) (NodeID, error) {
	for _, c := range children {
		if !t.Contains(c) {
			return 0, fmt.Errorf("new node with child %d: %w", c, ErrInvalidNode)
		}
	}
	id := t.add(s, nil)
	for _, c := range children {
		if err := t.AddChild(id, c); err != nil {
			return 0, err
		}
	}
	return id, nil
}

// Len returns the number of nodes ever created.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Contains reports whether id belongs to the tree.
func (t *Tree) Contains(id NodeID) bool {
	return int(id) < len(t.nodes)
}

func (t *Tree) check(op string, ids ...NodeID) error {
	for _, id := range ids {
		if !t.Contains(id) {
			return fmt.Errorf("%s node %d: %w", op, id, ErrInvalidNode)
		}
	}
	return nil
}

// AddChild appends child to parent, detaching it from any previous parent.
func (t *Tree) AddChild(parent, child NodeID) error {
	if err := t.check("add child", parent, child); err != nil {
		return err
	}
	for n, ok := parent, true; ok; n, ok = t.nodes[n].parent, t.nodes[n].attached {
		if n == child {
			return fmt.Errorf("add child %d to %d: %w", child, parent, ErrCycle)
		}
	}

	c := &t.nodes[child]
	if c.attached {
		old := c.parent
		t.detach(old, child)
		c.attached = false
		t.markDirty(old)
	}
	c.parent, c.attached = parent, true
	t.nodes[parent].children = append(t.nodes[parent].children, child)
	t.markDirty(parent)
	return nil
}

// RemoveChild unlinks child from parent. It returns false if child was not
// one of parent's children.
func (t *Tree) RemoveChild(parent, child NodeID) (bool, error) {
	if err := t.check("remove child", parent, child); err != nil {
		return false, err
	}
	if !t.detach(parent, child) {
		return false, nil
	}
	t.nodes[child].attached = false
	t.markDirty(parent)
	return true, nil
}

func (t *Tree) detach(parent, child NodeID) bool {
	p := &t.nodes[parent]
	for i, c := range p.children {
		if c == child {
			p.children = append(p.children[:i], p.children[i+1:]...)
			return true
		}
	}
	return false
}

// Parent returns node's parent, if it has one.
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	if !t.Contains(id) {
		return 0, false
	}
	return t.nodes[id].parent, t.nodes[id].attached
}

// SetStyle replaces the node's style and marks it dirty.
func (t *Tree) SetStyle(id NodeID, s Style) error {
	if err := t.check("set style", id); err != nil {
		return err
	}
	t.nodes[id].style = s
	t.markDirty(id)
	return nil
}

// SetMeasure replaces the node's measure function (nil removes it) and
// marks it dirty.
func (t *Tree) SetMeasure(id NodeID, m MeasureFunc) error {
	if err := t.check("set measure", id); err != nil {
		return err
	}
	t.nodes[id].measure = m
	t.markDirty(id)
	return nil
}

// MarkDirty invalidates the cached results of node and all its ancestors.
func (t *Tree) MarkDirty(id NodeID) error {
	if err := t.check("mark dirty", id); err != nil {
		return err
	}
	t.markDirty(id)
	return nil
}

func (t *Tree) markDirty(id NodeID) {
	for n, ok := id, true; ok; n, ok = t.nodes[n].parent, t.nodes[n].attached {
		t.nodes[n].cache.Clear()
		t.nodes[n].dirty = true
	}
}

// Dirty reports whether node has changed since it was last laid out.
func (t *Tree) Dirty(id NodeID) (bool, error) {
	if err := t.check("dirty", id); err != nil {
		return false, err
	}
	return t.nodes[id].dirty, nil
}

// Layout returns the node's final layout from the last ComputeLayout.
func (t *Tree) Layout(id NodeID) (Result, error) {
	if err := t.check("layout", id); err != nil {
		return Result{}, err
	}
	return t.nodes[id].final, nil
}

// ComputeLayout lays out the subtree rooted at root within available space.
func (t *Tree) ComputeLayout(root NodeID, available Size[AvailableSpace], opts ...Option) error {
	stats, err := compute.ComputeLayout(t, root, available, opts...)
	if err != nil {
		return err
	}
	t.stats = stats
	return nil
}

// Stats returns the counters of the last ComputeLayout.
func (t *Tree) Stats() Stats {
	return t.stats
}

// The methods below implement compute.LayoutTree. Handles passed by the
// engine always come from this tree.

// Style returns the node's style.
func (t *Tree) Style(id NodeID) *Style { return &t.nodes[id].style }

// Children returns the node's children in order.
func (t *Tree) Children(id NodeID) []NodeID { return t.nodes[id].children }

// ChildCount returns the number of children of node.
func (t *Tree) ChildCount(id NodeID) int { return len(t.nodes[id].children) }

// UnroundedLayout returns the fractional layout of node.
func (t *Tree) UnroundedLayout(id NodeID) Result { return t.nodes[id].unrounded }

// SetUnroundedLayout stores the fractional layout of node.
func (t *Tree) SetUnroundedLayout(id NodeID, l Result) { t.nodes[id].unrounded = l }

// SetLayout stores the final layout of node.
func (t *Tree) SetLayout(id NodeID, l Result) { t.nodes[id].final = l }

// Cache returns the node's memoization slots.
func (t *Tree) Cache(id NodeID) *cache.Cache { return &t.nodes[id].cache }

// NeedsMeasure reports whether node has a measure function.
func (t *Tree) NeedsMeasure(id NodeID) bool { return t.nodes[id].measure != nil }

// Measure invokes the node's measure function.
func (t *Tree) Measure(id NodeID, known Size[float64], available Size[AvailableSpace]) Size[float64] {
	return t.nodes[id].measure(known, available)
}

// SetDirty records whether node needs recomputation.
func (t *Tree) SetDirty(id NodeID, dirty bool) { t.nodes[id].dirty = dirty }

var (
	_ compute.LayoutTree    = (*Tree)(nil)
	_ compute.NodeValidator = (*Tree)(nil)
)
