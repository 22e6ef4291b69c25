package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/grindlemire/go-layout/internal/geom"
)

func growStyle(grow float64) Style {
	s := DefaultStyle()
	s.FlexGrow = grow
	s.FlexBasis = Points(0)
	return s
}

func sizedStyle(w, h float64) Style {
	s := DefaultStyle()
	s.Size = Size[Dimension]{Width: Points(w), Height: Points(h)}
	return s
}

// wrappingText measures like a 60x10 run of text that wraps onto more lines
// when narrower, never below 20 wide.
func wrappingText(known Size[float64], available Size[AvailableSpace]) Size[float64] {
	width := known.Width
	if math.IsNaN(width) {
		switch {
		case available.Width.IsDefinite():
			width = math.Min(math.Max(available.Width.Value, 20), 60)
		case available.Width.Kind == geom.KindMinContent:
			width = 20
		default:
			width = 60
		}
	}
	height := known.Height
	if math.IsNaN(height) {
		height = math.Ceil(60/width) * 10
	}
	return Size[float64]{Width: width, Height: height}
}

func mustLayout(t *testing.T, tr *Tree, id NodeID) Result {
	t.Helper()
	l, err := tr.Layout(id)
	require.NoError(t, err)
	return l
}

func TestComputeLayout_RowGrowSplitsEvenly(t *testing.T) {
	tr := NewTree()
	a := tr.NewLeaf(growStyle(1))
	b := tr.NewLeaf(growStyle(1))
	rs := DefaultStyle()
	rs.Size.Width = Points(100)
	root, err := tr.NewWithChildren(rs, a, b)
	require.NoError(t, err)

	require.NoError(t, tr.ComputeLayout(root, DefiniteSpace(100, 100)))

	la, lb := mustLayout(t, tr, a), mustLayout(t, tr, b)
	assert.Equal(t, 50.0, la.Size.Width)
	assert.Equal(t, 50.0, lb.Size.Width)
	assert.Equal(t, 0.0, la.Location.X)
	assert.Equal(t, 50.0, lb.Location.X)
}

func TestComputeLayout_ColumnSumsChildHeights(t *testing.T) {
	tr := NewTree()
	child := DefaultStyle()
	child.Size.Height = Points(20)
	a := tr.NewLeaf(child)
	b := tr.NewLeaf(child)
	rs := DefaultStyle()
	rs.FlexDirection = Column
	root, err := tr.NewWithChildren(rs, a, b)
	require.NoError(t, err)

	for name, space := range map[string]Size[AvailableSpace]{
		"definite":    DefiniteSpace(100, 100),
		"max-content": MaxContentSpace(),
	} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, tr.ComputeLayout(root, space))
			assert.Equal(t, 40.0, mustLayout(t, tr, root).Size.Height)
			assert.Equal(t, 20.0, mustLayout(t, tr, b).Location.Y)
		})
	}
}

func TestComputeLayout_GridFractionColumns(t *testing.T) {
	tr := NewTree()
	a := tr.NewLeaf(DefaultStyle())
	b := tr.NewLeaf(DefaultStyle())
	gs := DefaultStyle()
	gs.Display = DisplayGrid
	gs.Size.Width = Points(200)
	cols, err := ParseTrackList("1fr 1fr")
	require.NoError(t, err)
	gs.GridTemplateColumns = cols
	root, err := tr.NewWithChildren(gs, a, b)
	require.NoError(t, err)

	require.NoError(t, tr.ComputeLayout(root, DefiniteSpace(800, 600)))
	assert.Equal(t, 100.0, mustLayout(t, tr, a).Size.Width)
	assert.Equal(t, 100.0, mustLayout(t, tr, b).Size.Width)
	assert.Equal(t, 100.0, mustLayout(t, tr, b).Location.X)
}

func TestComputeLayout_AutoWidthGridFillsAvailableSpace(t *testing.T) {
	tr := NewTree()
	a := tr.NewLeaf(DefaultStyle())
	b := tr.NewLeaf(DefaultStyle())
	gs := DefaultStyle()
	gs.Display = DisplayGrid
	cols, err := ParseTrackList("1fr 1fr")
	require.NoError(t, err)
	gs.GridTemplateColumns = cols
	root, err := tr.NewWithChildren(gs, a, b)
	require.NoError(t, err)

	require.NoError(t, tr.ComputeLayout(root, DefiniteSpace(200, 100)))
	assert.Equal(t, 200.0, mustLayout(t, tr, root).Size.Width)
	assert.Equal(t, 100.0, mustLayout(t, tr, a).Size.Width)
	assert.Equal(t, 100.0, mustLayout(t, tr, b).Location.X)
}

func TestComputeLayout_MeasuredLeaf(t *testing.T) {
	tr := NewTree()
	leaf := tr.NewLeafWithMeasure(DefaultStyle(), func(Size[float64], Size[AvailableSpace]) Size[float64] {
		return Size[float64]{Width: 30, Height: 10}
	})

	require.NoError(t, tr.ComputeLayout(leaf, MaxContentSpace()))
	assert.Equal(t, Size[float64]{Width: 30, Height: 10}, mustLayout(t, tr, leaf).Size)
}

func TestComputeLayout_InvalidNode(t *testing.T) {
	tr := NewTree()
	tr.NewLeaf(DefaultStyle())

	err := tr.ComputeLayout(NodeID(7), DefiniteSpace(10, 10))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidNode))
}

func TestComputeLayout_RoundingLeavesNoGaps(t *testing.T) {
	tr := NewTree()
	var kids []NodeID
	for range 3 {
		kids = append(kids, tr.NewLeaf(growStyle(1)))
	}
	rs := DefaultStyle()
	rs.Size.Width = Points(100)
	root, err := tr.NewWithChildren(rs, kids...)
	require.NoError(t, err)
	require.NoError(t, tr.ComputeLayout(root, DefiniteSpace(100, 100)))

	want := []struct{ x, w float64 }{{0, 33}, {33, 34}, {67, 33}}
	for i, k := range kids {
		l := mustLayout(t, tr, k)
		assert.Equal(t, want[i].x, l.Location.X, "x of child %d", i)
		assert.Equal(t, want[i].w, l.Size.Width, "width of child %d", i)
		if i > 0 {
			prev := mustLayout(t, tr, kids[i-1])
			assert.Equal(t, prev.Location.X+prev.Size.Width, l.Location.X, "gap before child %d", i)
		}
	}

	// Without rounding the fractional sizes are published as is.
	require.NoError(t, tr.ComputeLayout(root, DefiniteSpace(100, 100), WithRounding(false)))
	assert.InDelta(t, 100.0/3, mustLayout(t, tr, kids[1]).Size.Width, 1e-9)
}

func TestComputeLayout_GrowIsMonotonic(t *testing.T) {
	prev := -1.0
	for _, grow := range []float64{0, 0.5, 1, 2, 3, 8} {
		tr := NewTree()
		a := tr.NewLeaf(growStyle(grow))
		b := tr.NewLeaf(growStyle(1))
		rs := DefaultStyle()
		rs.Size.Width = Points(100)
		root, err := tr.NewWithChildren(rs, a, b)
		require.NoError(t, err)
		require.NoError(t, tr.ComputeLayout(root, DefiniteSpace(100, 100), WithRounding(false)))

		w := mustLayout(t, tr, a).Size.Width
		assert.GreaterOrEqual(t, w, prev, "grow %v", grow)
		prev = w
	}
}

// buildScene builds a tree mixing wrapped flex rows, a nested grid and
// measured text.
func buildScene(t *testing.T) (*Tree, NodeID, []NodeID) {
	t.Helper()
	tr := NewTree()
	var all []NodeID
	leaf := func(s Style) NodeID {
		id := tr.NewLeaf(s)
		all = append(all, id)
		return id
	}
	parent := func(s Style, kids ...NodeID) NodeID {
		id, err := tr.NewWithChildren(s, kids...)
		require.NoError(t, err)
		all = append(all, id)
		return id
	}

	text := tr.NewLeafWithMeasure(DefaultStyle(), wrappingText)
	all = append(all, text)

	wrapRow := DefaultStyle()
	wrapRow.FlexWrap = Wrap
	wrapRow.Gap = Size[Dimension]{Width: Points(3), Height: Points(2)}
	row := parent(wrapRow, leaf(sizedStyle(40, 12)), text, leaf(growStyle(1)), leaf(sizedStyle(55, 7)))

	gs := DefaultStyle()
	gs.Display = DisplayGrid
	cols, err := ParseTrackList("30px minmax(20px, 1fr) auto")
	require.NoError(t, err)
	gs.GridTemplateColumns = cols
	gs.Padding = Edges(Points(4))
	gridNode := parent(gs, leaf(sizedStyle(10, 10)), leaf(DefaultStyle()), leaf(sizedStyle(25, 5)), leaf(DefaultStyle()))

	rs := DefaultStyle()
	rs.FlexDirection = Column
	rs.Size.Width = Points(137)
	root := parent(rs, row, gridNode)
	return tr, root, all
}

func snapshot(t *testing.T, tr *Tree, ids []NodeID) map[NodeID]Result {
	out := make(map[NodeID]Result, len(ids))
	for _, id := range ids {
		out[id] = mustLayout(t, tr, id)
	}
	return out
}

func TestComputeLayout_Deterministic(t *testing.T) {
	tr1, root1, ids1 := buildScene(t)
	tr2, root2, ids2 := buildScene(t)
	require.NoError(t, tr1.ComputeLayout(root1, DefiniteSpace(137, 500)))
	require.NoError(t, tr2.ComputeLayout(root2, DefiniteSpace(137, 500)))

	if diff := cmp.Diff(snapshot(t, tr1, ids1), snapshot(t, tr2, ids2)); diff != "" {
		t.Errorf("layouts differ between identical trees (-first +second):\n%s", diff)
	}

	// Recomputing an unchanged tree is answered from the cache and changes nothing.
	before := snapshot(t, tr1, ids1)
	require.NoError(t, tr1.ComputeLayout(root1, DefiniteSpace(137, 500)))
	if diff := cmp.Diff(before, snapshot(t, tr1, ids1)); diff != "" {
		t.Errorf("second pass changed layouts (-before +after):\n%s", diff)
	}
	assert.Equal(t, 0, tr1.Stats().Computations)
}

func TestComputeLayout_CacheIsTransparent(t *testing.T) {
	cached, root1, ids1 := buildScene(t)
	uncached, root2, ids2 := buildScene(t)
	require.NoError(t, cached.ComputeLayout(root1, DefiniteSpace(137, 500)))
	require.NoError(t, uncached.ComputeLayout(root2, DefiniteSpace(137, 500), WithoutCache()))

	if diff := cmp.Diff(snapshot(t, cached, ids1), snapshot(t, uncached, ids2)); diff != "" {
		t.Errorf("cache changed the layout (-cached +uncached):\n%s", diff)
	}
	assert.Zero(t, uncached.Stats().CacheHits)
	assert.GreaterOrEqual(t, uncached.Stats().Computations, cached.Stats().Computations)

	require.NoError(t, cached.ComputeLayout(root1, DefiniteSpace(137, 500)))
	assert.Positive(t, cached.Stats().CacheHits)
}

func TestComputeLayout_MarkDirtyRecomputes(t *testing.T) {
	tr, root, _ := buildScene(t)
	require.NoError(t, tr.ComputeLayout(root, DefiniteSpace(137, 500)))

	first := tr.Children(root)[0]
	grown := tr.Children(first)[0]
	require.NoError(t, tr.SetStyle(grown, sizedStyle(40, 30)))
	dirty, err := tr.Dirty(root)
	require.NoError(t, err)
	assert.True(t, dirty, "ancestors become dirty")

	require.NoError(t, tr.ComputeLayout(root, DefiniteSpace(137, 500)))
	assert.Equal(t, 30.0, mustLayout(t, tr, grown).Size.Height)
	assert.Positive(t, tr.Stats().Computations)

	dirty, err = tr.Dirty(root)
	require.NoError(t, err)
	assert.False(t, dirty)
}

func TestComputeLayout_DisplayNone(t *testing.T) {
	tr := NewTree()
	hidden := growStyle(1)
	hidden.Display = DisplayNone
	inner := tr.NewLeaf(sizedStyle(10, 10))
	h, err := tr.NewWithChildren(hidden, inner)
	require.NoError(t, err)
	v := tr.NewLeaf(growStyle(1))
	rs := DefaultStyle()
	rs.Size.Width = Points(100)
	root, err := tr.NewWithChildren(rs, h, v)
	require.NoError(t, err)

	require.NoError(t, tr.ComputeLayout(root, DefiniteSpace(100, 100)))
	assert.Equal(t, 100.0, mustLayout(t, tr, v).Size.Width)
	assert.Equal(t, Size[float64]{}, mustLayout(t, tr, h).Size)
	assert.Equal(t, Size[float64]{}, mustLayout(t, tr, inner).Size)
}

func TestComputeLayout_LogsThroughZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tr, root, _ := buildScene(t)

	require.NoError(t, tr.ComputeLayout(root, DefiniteSpace(137, 500), WithLogger(zap.New(core))))
	assert.Equal(t, 1, logs.FilterMessage("layout complete").Len())
	assert.NotZero(t, logs.FilterMessage("computed node").Len())
}
