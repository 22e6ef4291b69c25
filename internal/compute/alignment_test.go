package compute_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	layout "github.com/grindlemire/go-layout"
)

// threeChildren lays out three 20x20 children in a 100x50 container and
// returns their boxes.
func threeChildren(t *testing.T, container layout.Style) []box {
	t.Helper()
	tr := layout.NewTree()
	var kids []layout.NodeID
	for range 3 {
		kids = append(kids, tr.NewLeaf(sized(20, 20)))
	}
	root, err := tr.NewWithChildren(container, kids...)
	require.NoError(t, err)
	require.NoError(t, tr.ComputeLayout(root, layout.DefiniteSpace(200, 200)))

	out := make([]box, len(kids))
	for i, k := range kids {
		out[i] = boxOf(t, tr, k)
	}
	return out
}

func TestJustifyContent(t *testing.T) {
	type tc struct {
		justify layout.Justify
		want    [3]float64
	}

	// Free space is 40.
	tests := map[string]tc{
		"normal":        {justify: layout.JustifyNormal, want: [3]float64{0, 20, 40}},
		"start":         {justify: layout.JustifyStart, want: [3]float64{0, 20, 40}},
		"flex-start":    {justify: layout.JustifyFlexStart, want: [3]float64{0, 20, 40}},
		"end":           {justify: layout.JustifyEnd, want: [3]float64{40, 60, 80}},
		"flex-end":      {justify: layout.JustifyFlexEnd, want: [3]float64{40, 60, 80}},
		"center":        {justify: layout.JustifyCenter, want: [3]float64{20, 40, 60}},
		"space-between": {justify: layout.JustifySpaceBetween, want: [3]float64{0, 40, 80}},
		"space-around":  {justify: layout.JustifySpaceAround, want: [3]float64{7, 40, 73}},
		"space-evenly":  {justify: layout.JustifySpaceEvenly, want: [3]float64{10, 40, 70}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := row(100, 50)
			s.JustifyContent = tt.justify
			got := threeChildren(t, s)
			for i := range got {
				assert.Equal(t, tt.want[i], got[i].X, "child %d", i)
			}
		})
	}

	t.Run("column", func(t *testing.T) {
		s := row(50, 100)
		s.FlexDirection = layout.Column
		s.JustifyContent = layout.JustifyCenter
		got := threeChildren(t, s)
		for i, y := range []float64{20, 40, 60} {
			assert.Equal(t, y, got[i].Y, "child %d", i)
		}
	})
}

func TestAlignItems(t *testing.T) {
	type tc struct {
		align  layout.Align
		auto   bool // child height left auto
		wantY  float64
		wantHt float64
	}

	tests := map[string]tc{
		"start":           {align: layout.AlignFlexStart, wantY: 0, wantHt: 20},
		"end":             {align: layout.AlignFlexEnd, wantY: 30, wantHt: 20},
		"center":          {align: layout.AlignCenter, wantY: 15, wantHt: 20},
		"stretch fixed":   {align: layout.AlignStretch, wantY: 0, wantHt: 20},
		"stretch auto":    {align: layout.AlignStretch, auto: true, wantY: 0, wantHt: 50},
		"center auto":     {align: layout.AlignCenter, auto: true, wantY: 25, wantHt: 0},
		"baseline as top": {align: layout.AlignBaseline, wantY: 0, wantHt: 20},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tr := layout.NewTree()
			cs := sized(20, 20)
			if tt.auto {
				cs.Size.Height = layout.Auto()
			}
			child := tr.NewLeaf(cs)
			s := row(100, 50)
			s.AlignItems = tt.align
			root, err := tr.NewWithChildren(s, child)
			require.NoError(t, err)
			require.NoError(t, tr.ComputeLayout(root, layout.DefiniteSpace(200, 200)))

			got := boxOf(t, tr, child)
			assert.Equal(t, tt.wantY, got.Y)
			assert.Equal(t, tt.wantHt, got.H)
		})
	}
}

func TestAlignSelfOverridesContainer(t *testing.T) {
	tr := layout.NewTree()
	plain := tr.NewLeaf(sized(20, 20))
	override := sized(20, 20)
	override.AlignSelf = layout.AlignFlexEnd
	moved := tr.NewLeaf(override)
	s := row(100, 50)
	s.AlignItems = layout.AlignCenter
	root, err := tr.NewWithChildren(s, plain, moved)
	require.NoError(t, err)
	require.NoError(t, tr.ComputeLayout(root, layout.DefiniteSpace(200, 200)))

	assert.Equal(t, 15.0, boxOf(t, tr, plain).Y)
	assert.Equal(t, 30.0, boxOf(t, tr, moved).Y)
}

func TestFlexShrinkIsWeightedByBasis(t *testing.T) {
	tr := layout.NewTree()
	a := sized(80, 50)
	a.FlexShrink = 1
	b := sized(80, 50)
	b.FlexShrink = 3
	na, nb := tr.NewLeaf(a), tr.NewLeaf(b)
	root, err := tr.NewWithChildren(row(100, 50), na, nb)
	require.NoError(t, err)
	require.NoError(t, tr.ComputeLayout(root, layout.DefiniteSpace(200, 200)))

	// A 60 deficit split 1:3.
	assert.Equal(t, 65.0, boxOf(t, tr, na).W)
	assert.Equal(t, 35.0, boxOf(t, tr, nb).W)
}

func TestMinSizeWinsOverMaxSize(t *testing.T) {
	tr := layout.NewTree()
	cs := sized(50, 50)
	cs.MinSize.Width = layout.Points(60)
	cs.MaxSize.Width = layout.Points(40)
	child := tr.NewLeaf(cs)
	root, err := tr.NewWithChildren(row(100, 50), child)
	require.NoError(t, err)
	require.NoError(t, tr.ComputeLayout(root, layout.DefiniteSpace(200, 200)))

	assert.Equal(t, 60.0, boxOf(t, tr, child).W)
}

func TestMarginsOffsetItems(t *testing.T) {
	tr := layout.NewTree()
	cs := sized(20, 20)
	cs.Margin = layout.EdgesTRBL(layout.Points(5), layout.Points(3), layout.Points(0), layout.Points(10))
	a := tr.NewLeaf(cs)
	b := tr.NewLeaf(sized(20, 20))
	root, err := tr.NewWithChildren(row(100, 0), a, b)
	require.NoError(t, err)
	require.NoError(t, tr.ComputeLayout(root, layout.DefiniteSpace(200, 200)))

	assert.Equal(t, box{10, 5, 20, 20}, boxOf(t, tr, a))
	assert.Equal(t, box{33, 0, 20, 20}, boxOf(t, tr, b))
	assert.Equal(t, 25.0, boxOf(t, tr, root).H, "cross size includes margins")
}
