package scene

import (
	"fmt"

	"github.com/google/uuid"

	layout "github.com/grindlemire/go-layout"
)

// Built is a scene loaded into a layout tree.
type Built struct {
	Name      string
	Tree      *layout.Tree
	Root      layout.NodeID
	Available layout.Size[layout.AvailableSpace]

	ids map[layout.NodeID]string
}

// Build creates the scene's nodes in a fresh tree. Nodes without an id get
// a generated one. fallback supplies any viewport axis the scene omits.
func Build(s *Scene, fallback layout.Size[float64]) (*Built, error) {
	available, err := s.Available.resolve(fallback)
	if err != nil {
		return nil, err
	}
	b := &Built{
		Name:      s.Name,
		Tree:      layout.NewTree(),
		Available: available,
		ids:       make(map[layout.NodeID]string),
	}
	seen := make(map[string]bool)
	root, err := b.add(&s.Root, seen)
	if err != nil {
		return nil, err
	}
	b.Root = root
	return b, nil
}

func (b *Built) add(n *Node, seen map[string]bool) (layout.NodeID, error) {
	id := n.ID
	if id == "" {
		id = "node-" + uuid.NewString()[:8]
	}
	if seen[id] {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	seen[id] = true

	st, err := ParseStyle(n.Style)
	if err != nil {
		return 0, fmt.Errorf("node %q: %w", id, err)
	}

	var handle layout.NodeID
	switch {
	case len(n.Children) > 0:
		kids := make([]layout.NodeID, 0, len(n.Children))
		for i := range n.Children {
			k, err := b.add(&n.Children[i], seen)
			if err != nil {
				return 0, err
			}
			kids = append(kids, k)
		}
		if handle, err = b.Tree.NewWithChildren(st, kids...); err != nil {
			return 0, fmt.Errorf("node %q: %w", id, err)
		}
	case n.Text != "":
		handle = b.Tree.NewLeafWithMeasure(st, TextMeasure(n.Text))
	default:
		handle = b.Tree.NewLeaf(st)
	}
	b.ids[handle] = id
	return handle, nil
}

// ID returns the scene id of a node.
func (b *Built) ID(n layout.NodeID) string {
	return b.ids[n]
}

// Compute lays out the scene and returns its boxes.
func (b *Built) Compute(opts ...layout.Option) (Box, error) {
	if err := b.Tree.ComputeLayout(b.Root, b.Available, opts...); err != nil {
		return Box{}, fmt.Errorf("scene %q: %w", b.Name, err)
	}
	return b.box(b.Root)
}

// Box is a node's computed geometry, relative to its parent.
type Box struct {
	ID       string  `json:"id" yaml:"id"`
	X        float64 `json:"x" yaml:"x"`
	Y        float64 `json:"y" yaml:"y"`
	Width    float64 `json:"width" yaml:"width"`
	Height   float64 `json:"height" yaml:"height"`
	Children []Box   `json:"children,omitempty" yaml:"children,omitempty"`
}

func (b *Built) box(n layout.NodeID) (Box, error) {
	l, err := b.Tree.Layout(n)
	if err != nil {
		return Box{}, err
	}
	out := Box{
		ID:     b.ids[n],
		X:      l.Location.X,
		Y:      l.Location.Y,
		Width:  l.Size.Width,
		Height: l.Size.Height,
	}
	for _, c := range b.Tree.Children(n) {
		cb, err := b.box(c)
		if err != nil {
			return Box{}, err
		}
		out.Children = append(out.Children, cb)
	}
	return out, nil
}

func (v Viewport) resolve(fallback layout.Size[float64]) (layout.Size[layout.AvailableSpace], error) {
	w, err := axisSpace(v.Width, fallback.Width)
	if err != nil {
		return layout.Size[layout.AvailableSpace]{}, fmt.Errorf("available width: %w", err)
	}
	h, err := axisSpace(v.Height, fallback.Height)
	if err != nil {
		return layout.Size[layout.AvailableSpace]{}, fmt.Errorf("available height: %w", err)
	}
	return layout.Size[layout.AvailableSpace]{Width: w, Height: h}, nil
}

func axisSpace(v any, fallback float64) (layout.AvailableSpace, error) {
	if v == nil {
		return layout.Definite(fallback), nil
	}
	if k, ok := v.(string); ok {
		switch k {
		case "min-content":
			return layout.MinContent(), nil
		case "max-content":
			return layout.MaxContent(), nil
		}
		return layout.AvailableSpace{}, fmt.Errorf("%w: %q", ErrBadValue, k)
	}
	n, err := number(v)
	if err != nil {
		return layout.AvailableSpace{}, err
	}
	return layout.Definite(n), nil
}
