package layout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_AddChild(t *testing.T) {
	type tc struct {
		setup   func(tr *Tree) (parent, child NodeID)
		wantErr error
	}

	tests := map[string]tc{
		"appends leaf": {
			setup: func(tr *Tree) (NodeID, NodeID) {
				return tr.NewLeaf(DefaultStyle()), tr.NewLeaf(DefaultStyle())
			},
		},
		"self is a cycle": {
			setup: func(tr *Tree) (NodeID, NodeID) {
				n := tr.NewLeaf(DefaultStyle())
				return n, n
			},
			wantErr: ErrCycle,
		},
		"ancestor is a cycle": {
			setup: func(tr *Tree) (NodeID, NodeID) {
				leaf := tr.NewLeaf(DefaultStyle())
				mid, _ := tr.NewWithChildren(DefaultStyle(), leaf)
				top, _ := tr.NewWithChildren(DefaultStyle(), mid)
				return leaf, top
			},
			wantErr: ErrCycle,
		},
		"unknown child": {
			setup: func(tr *Tree) (NodeID, NodeID) {
				return tr.NewLeaf(DefaultStyle()), NodeID(42)
			},
			wantErr: ErrInvalidNode,
		},
		"unknown parent": {
			setup: func(tr *Tree) (NodeID, NodeID) {
				return NodeID(42), tr.NewLeaf(DefaultStyle())
			},
			wantErr: ErrInvalidNode,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tr := NewTree()
			parent, child := tt.setup(tr)
			err := tr.AddChild(parent, child)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []NodeID{child}, tr.Children(parent))
			p, ok := tr.Parent(child)
			assert.True(t, ok)
			assert.Equal(t, parent, p)
		})
	}
}

func TestTree_Reparent(t *testing.T) {
	tr := NewTree()
	child := tr.NewLeaf(DefaultStyle())
	first, err := tr.NewWithChildren(DefaultStyle(), child)
	require.NoError(t, err)
	second := tr.NewLeaf(DefaultStyle())

	require.NoError(t, tr.AddChild(second, child))
	assert.Empty(t, tr.Children(first))
	assert.Equal(t, []NodeID{child}, tr.Children(second))
	p, _ := tr.Parent(child)
	assert.Equal(t, second, p)
}

func TestTree_ReparentInvalidatesOldParent(t *testing.T) {
	tr := NewTree()
	child := tr.NewLeaf(sizedStyle(70, 10))
	first, err := tr.NewWithChildren(DefaultStyle(), child)
	require.NoError(t, err)
	second, err := tr.NewWithChildren(DefaultStyle())
	require.NoError(t, err)
	root, err := tr.NewWithChildren(DefaultStyle(), first, second)
	require.NoError(t, err)
	require.NoError(t, tr.ComputeLayout(root, MaxContentSpace()))
	require.Equal(t, Size[float64]{Width: 70, Height: 10}, mustLayout(t, tr, first).Size)

	require.NoError(t, tr.AddChild(second, child))
	for _, id := range []NodeID{first, second, root} {
		assert.Zero(t, tr.Cache(id).Len(), "node %d cleared", id)
		dirty, err := tr.Dirty(id)
		require.NoError(t, err)
		assert.True(t, dirty, "node %d dirty", id)
	}

	require.NoError(t, tr.ComputeLayout(root, MaxContentSpace()))
	assert.Zero(t, mustLayout(t, tr, first).Size.Width, "old parent is now empty")
	assert.Equal(t, Size[float64]{Width: 70, Height: 10}, mustLayout(t, tr, second).Size)
	assert.Zero(t, mustLayout(t, tr, second).Location.X)
}

func TestTree_RemoveChild(t *testing.T) {
	tr := NewTree()
	a := tr.NewLeaf(DefaultStyle())
	b := tr.NewLeaf(DefaultStyle())
	root, err := tr.NewWithChildren(DefaultStyle(), a, b)
	require.NoError(t, err)

	removed, err := tr.RemoveChild(root, a)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []NodeID{b}, tr.Children(root))
	_, ok := tr.Parent(a)
	assert.False(t, ok)

	removed, err = tr.RemoveChild(root, a)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = tr.RemoveChild(root, NodeID(99))
	assert.ErrorIs(t, err, ErrInvalidNode)
}

func TestTree_MarkDirtyClearsAncestorCaches(t *testing.T) {
	tr := NewTree()
	leaf := tr.NewLeaf(sizedStyle(10, 10))
	mid, err := tr.NewWithChildren(DefaultStyle(), leaf)
	require.NoError(t, err)
	sibling := tr.NewLeaf(sizedStyle(5, 5))
	root, err := tr.NewWithChildren(DefaultStyle(), mid, sibling)
	require.NoError(t, err)
	require.NoError(t, tr.ComputeLayout(root, DefiniteSpace(50, 50)))

	for _, id := range []NodeID{leaf, mid, sibling, root} {
		assert.NotZero(t, tr.Cache(id).Len(), "node %d cached", id)
	}

	require.NoError(t, tr.MarkDirty(leaf))
	for _, id := range []NodeID{leaf, mid, root} {
		assert.Zero(t, tr.Cache(id).Len(), "node %d cleared", id)
		dirty, err := tr.Dirty(id)
		require.NoError(t, err)
		assert.True(t, dirty, "node %d dirty", id)
	}
	assert.NotZero(t, tr.Cache(sibling).Len(), "sibling keeps its cache")

	assert.ErrorIs(t, tr.MarkDirty(NodeID(99)), ErrInvalidNode)
}

func TestTree_SetMeasure(t *testing.T) {
	tr := NewTree()
	leaf := tr.NewLeaf(DefaultStyle())
	require.NoError(t, tr.ComputeLayout(leaf, MaxContentSpace()))
	assert.Equal(t, Size[float64]{}, mustLayout(t, tr, leaf).Size)

	require.NoError(t, tr.SetMeasure(leaf, func(Size[float64], Size[AvailableSpace]) Size[float64] {
		return Size[float64]{Width: 12, Height: 3}
	}))
	require.NoError(t, tr.ComputeLayout(leaf, MaxContentSpace()))
	assert.Equal(t, Size[float64]{Width: 12, Height: 3}, mustLayout(t, tr, leaf).Size)
}

func TestTree_InvalidHandles(t *testing.T) {
	tr := NewTree()
	bad := NodeID(3)

	_, err := tr.Layout(bad)
	assert.ErrorIs(t, err, ErrInvalidNode)
	assert.ErrorIs(t, tr.SetStyle(bad, DefaultStyle()), ErrInvalidNode)
	_, err = tr.Dirty(bad)
	assert.ErrorIs(t, err, ErrInvalidNode)
	_, err = tr.NewWithChildren(DefaultStyle(), bad)
	assert.ErrorIs(t, err, ErrInvalidNode)
	assert.Equal(t, 0, tr.Len(), "failed creation adds no node")
}
