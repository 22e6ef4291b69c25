package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-layout/internal/geom"
	"github.com/grindlemire/go-layout/internal/style"
	"github.com/grindlemire/go-layout/internal/tree"
)

// content is a fake leaf's intrinsic size: a width range it can wrap
// between and a fixed height.
type content struct {
	minW, maxW, h float64
}

type fakeTree struct {
	styles   map[tree.NodeID]*style.Style
	children map[tree.NodeID][]tree.NodeID
	content  map[tree.NodeID]content
	layouts  map[tree.NodeID]tree.Layout
	hidden   []tree.NodeID
	next     tree.NodeID
}

func newFakeTree() *fakeTree {
	return &fakeTree{
		styles:   map[tree.NodeID]*style.Style{},
		children: map[tree.NodeID][]tree.NodeID{},
		content:  map[tree.NodeID]content{},
		layouts:  map[tree.NodeID]tree.Layout{},
	}
}

func (f *fakeTree) leaf(s style.Style, c content) tree.NodeID {
	id := f.next
	f.next++
	f.styles[id] = &s
	f.content[id] = c
	return id
}

func (f *fakeTree) grid(s style.Style, kids ...tree.NodeID) tree.NodeID {
	s.Display = style.DisplayGrid
	id := f.leaf(s, content{})
	f.children[id] = kids
	return id
}

func (f *fakeTree) Style(node tree.NodeID) *style.Style { return f.styles[node] }

func (f *fakeTree) Children(node tree.NodeID) []tree.NodeID { return f.children[node] }

func (f *fakeTree) SetUnroundedLayout(n tree.NodeID, l tree.Layout) { f.layouts[n] = l }

func (f *fakeTree) HideNode(n tree.NodeID, order uint32) {
	f.hidden = append(f.hidden, n)
	f.layouts[n] = tree.Layout{Order: order}
}

func (f *fakeTree) ComputeChild(node tree.NodeID, known, _ geom.Size[float64], available geom.Size[geom.AvailableSpace], _ tree.RunMode, _ tree.SizingMode) geom.Size[float64] {
	c := f.content[node]
	w := known.Width
	if geom.IsUndefined(w) {
		switch available.Width.Kind {
		case geom.KindMinContent:
			w = c.minW
		case geom.KindMaxContent:
			w = c.maxW
		default:
			w = min(max(available.Width.Value, c.minW), c.maxW)
		}
	}
	return geom.Size[float64]{Width: w, Height: geom.Or(known.Height, c.h)}
}

func columns(tracks ...style.TrackSize) style.Style {
	s := style.DefaultStyle()
	s.GridTemplateColumns = tracks
	return s
}

func maxContent() geom.Size[geom.AvailableSpace] {
	return geom.Size[geom.AvailableSpace]{Width: geom.MaxContent(), Height: geom.MaxContent()}
}

func definite(w, h float64) geom.Size[geom.AvailableSpace] {
	return geom.Size[geom.AvailableSpace]{Width: geom.Definite(w), Height: geom.Definite(h)}
}

func run(f *fakeTree, root tree.NodeID, available geom.Size[geom.AvailableSpace]) geom.Size[float64] {
	return Compute(f, root, geom.UndefinedSize(), geom.UndefinedSize(), available, tree.PerformLayout)
}

func TestCompute_FractionColumns(t *testing.T) {
	tests := []struct {
		name   string
		width  float64
		tracks []style.TrackSize
		wantX  []float64
		wantW  []float64
	}{
		{
			name:   "equal fractions split evenly",
			width:  200,
			tracks: []style.TrackSize{style.Fr(1), style.Fr(1)},
			wantX:  []float64{0, 100},
			wantW:  []float64{100, 100},
		},
		{
			name:   "fractions are proportional",
			width:  300,
			tracks: []style.TrackSize{style.Fr(1), style.Fr(2)},
			wantX:  []float64{0, 100},
			wantW:  []float64{100, 200},
		},
		{
			name:   "fixed track is subtracted first",
			width:  210,
			tracks: []style.TrackSize{style.Length(60), style.Fr(1)},
			wantX:  []float64{0, 60},
			wantW:  []float64{60, 150},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeTree()
			a := f.leaf(style.DefaultStyle(), content{})
			b := f.leaf(style.DefaultStyle(), content{})
			s := columns(tt.tracks...)
			s.Size.Width = style.Points(tt.width)
			root := f.grid(s, a, b)

			size := run(f, root, definite(800, 600))
			assert.Equal(t, tt.width, size.Width)
			for i, n := range []tree.NodeID{a, b} {
				assert.InDelta(t, tt.wantX[i], f.layouts[n].Location.X, 0.001, "x of item %d", i)
				assert.InDelta(t, tt.wantW[i], f.layouts[n].Size.Width, 0.001, "width of item %d", i)
			}
		})
	}
}

func TestCompute_ColumnGap(t *testing.T) {
	f := newFakeTree()
	a := f.leaf(style.DefaultStyle(), content{})
	b := f.leaf(style.DefaultStyle(), content{})
	s := columns(style.Fr(1), style.Fr(1))
	s.Size.Width = style.Points(210)
	s.Gap.Width = style.Points(10)
	root := f.grid(s, a, b)

	run(f, root, definite(800, 600))
	assert.InDelta(t, 100, f.layouts[a].Size.Width, 0.001)
	assert.InDelta(t, 110, f.layouts[b].Location.X, 0.001)
}

func TestCompute_FlexibleTrackKeepsContentMinimum(t *testing.T) {
	f := newFakeTree()
	wide := f.leaf(style.DefaultStyle(), content{minW: 80, maxW: 80})
	narrow := f.leaf(style.DefaultStyle(), content{})
	s := columns(style.Fr(1), style.Fr(1))
	s.Size.Width = style.Points(100)
	root := f.grid(s, wide, narrow)

	run(f, root, definite(800, 600))
	assert.InDelta(t, 80, f.layouts[wide].Size.Width, 0.001)
	assert.InDelta(t, 80, f.layouts[narrow].Location.X, 0.001)
	assert.InDelta(t, 20, f.layouts[narrow].Size.Width, 0.001)
}

func TestCompute_AutoColumnsFitContent(t *testing.T) {
	f := newFakeTree()
	a := f.leaf(style.DefaultStyle(), content{minW: 10, maxW: 30, h: 5})
	b := f.leaf(style.DefaultStyle(), content{minW: 20, maxW: 50, h: 8})
	root := f.grid(columns(style.AutoTrack(), style.AutoTrack()), a, b)

	size := run(f, root, maxContent())
	assert.Equal(t, geom.Size[float64]{Width: 80, Height: 8}, size)
	assert.InDelta(t, 30, f.layouts[b].Location.X, 0.001)
	assert.InDelta(t, 8, f.layouts[a].Size.Height, 0.001, "items stretch to the row")
}

func TestCompute_AutoSizedGridFillsDefiniteSpace(t *testing.T) {
	t.Run("auto column stops at the available width", func(t *testing.T) {
		f := newFakeTree()
		text := f.leaf(style.DefaultStyle(), content{minW: 20, maxW: 300, h: 10})
		root := f.grid(columns(style.AutoTrack()), text)

		size := run(f, root, definite(100, 100))
		assert.Equal(t, geom.Size[float64]{Width: 100, Height: 10}, size)
		assert.InDelta(t, 100, f.layouts[text].Size.Width, 0.001)
	})

	t.Run("auto column keeps its max-content width when it fits", func(t *testing.T) {
		f := newFakeTree()
		text := f.leaf(style.DefaultStyle(), content{minW: 20, maxW: 60, h: 10})
		root := f.grid(columns(style.AutoTrack()), text)

		size := run(f, root, definite(100, 100))
		assert.InDelta(t, 60, size.Width, 0.001)
	})

	t.Run("fractions share the available width", func(t *testing.T) {
		f := newFakeTree()
		a := f.leaf(style.DefaultStyle(), content{h: 10})
		b := f.leaf(style.DefaultStyle(), content{h: 10})
		root := f.grid(columns(style.Fr(1), style.Fr(1)), a, b)

		size := run(f, root, definite(200, 100))
		assert.InDelta(t, 200, size.Width, 0.001)
		assert.InDelta(t, 100, f.layouts[a].Size.Width, 0.001)
		assert.InDelta(t, 100, f.layouts[b].Location.X, 0.001)
		assert.InDelta(t, 100, f.layouts[b].Size.Width, 0.001)
	})

	t.Run("fractions collapse under max-content", func(t *testing.T) {
		f := newFakeTree()
		a := f.leaf(style.DefaultStyle(), content{maxW: 30, h: 10})
		b := f.leaf(style.DefaultStyle(), content{maxW: 10, h: 10})
		root := f.grid(columns(style.Fr(1), style.Fr(1)), a, b)

		size := run(f, root, maxContent())
		assert.InDelta(t, 60, size.Width, 0.001, "both columns take the largest share")
	})
}

func TestCompute_SpanningItemSharesSpace(t *testing.T) {
	for _, available := range []geom.Size[geom.AvailableSpace]{maxContent(), definite(500, 500)} {
		f := newFakeTree()
		s := style.DefaultStyle()
		s.GridColumn = geom.Line[style.GridPlacement]{Start: style.GridSpan(2), End: style.GridAuto()}
		wide := f.leaf(s, content{minW: 40, maxW: 100})
		root := f.grid(columns(style.AutoTrack(), style.AutoTrack()), wide)

		size := run(f, root, available)
		assert.InDelta(t, 100, size.Width, 0.001)
		assert.InDelta(t, 100, f.layouts[wide].Size.Width, 0.001)
	}
}

func TestCompute_Placement(t *testing.T) {
	t.Run("auto items flow row-major", func(t *testing.T) {
		f := newFakeTree()
		var kids []tree.NodeID
		for range 3 {
			kids = append(kids, f.leaf(style.DefaultStyle(), content{h: 10}))
		}
		root := f.grid(columns(style.Length(50), style.Length(50)), kids...)

		size := run(f, root, maxContent())
		assert.Equal(t, geom.Size[float64]{Width: 100, Height: 20}, size)
		assert.Equal(t, geom.Point[float64]{X: 50, Y: 0}, f.layouts[kids[1]].Location)
		assert.Equal(t, geom.Point[float64]{X: 0, Y: 10}, f.layouts[kids[2]].Location)
	})

	t.Run("line -1 spans the explicit grid", func(t *testing.T) {
		f := newFakeTree()
		s := style.DefaultStyle()
		s.GridColumn = geom.Line[style.GridPlacement]{Start: style.GridLine(1), End: style.GridLine(-1)}
		item := f.leaf(s, content{})
		root := f.grid(columns(style.Length(50), style.Length(50)), item)

		run(f, root, maxContent())
		assert.InDelta(t, 100, f.layouts[item].Size.Width, 0.001)
	})

	t.Run("lines before the explicit grid add implicit tracks", func(t *testing.T) {
		f := newFakeTree()
		before := style.DefaultStyle()
		before.GridColumn = geom.Line[style.GridPlacement]{Start: style.GridLine(-4), End: style.GridAuto()}
		before.GridRow = geom.Line[style.GridPlacement]{Start: style.GridLine(1), End: style.GridAuto()}
		first := style.DefaultStyle()
		first.GridColumn = geom.Line[style.GridPlacement]{Start: style.GridLine(1), End: style.GridAuto()}
		first.GridRow = geom.Line[style.GridPlacement]{Start: style.GridLine(1), End: style.GridAuto()}

		a := f.leaf(before, content{minW: 30, maxW: 30})
		b := f.leaf(first, content{})
		root := f.grid(columns(style.Length(50), style.Length(50)), a, b)

		size := run(f, root, maxContent())
		assert.InDelta(t, 130, size.Width, 0.001)
		assert.InDelta(t, 0, f.layouts[a].Location.X, 0.001)
		assert.InDelta(t, 30, f.layouts[a].Size.Width, 0.001)
		assert.InDelta(t, 30, f.layouts[b].Location.X, 0.001)
	})
}

func TestCompute_ContentAlignment(t *testing.T) {
	tests := []struct {
		mode  style.Justify
		wantX [2]float64
	}{
		{style.JustifyStart, [2]float64{0, 50}},
		{style.JustifyEnd, [2]float64{100, 150}},
		{style.JustifyCenter, [2]float64{50, 100}},
		{style.JustifySpaceBetween, [2]float64{0, 150}},
		{style.JustifySpaceEvenly, [2]float64{100.0 / 3, 50 + 200.0/3}},
	}
	for _, tt := range tests {
		f := newFakeTree()
		a := f.leaf(style.DefaultStyle(), content{})
		b := f.leaf(style.DefaultStyle(), content{})
		s := columns(style.Length(50), style.Length(50))
		s.Size.Width = style.Points(200)
		s.JustifyContent = tt.mode
		root := f.grid(s, a, b)

		run(f, root, definite(800, 600))
		assert.InDelta(t, tt.wantX[0], f.layouts[a].Location.X, 0.001, "mode %d", tt.mode)
		assert.InDelta(t, tt.wantX[1], f.layouts[b].Location.X, 0.001, "mode %d", tt.mode)
	}
}

func TestCompute_SelfAlignment(t *testing.T) {
	f := newFakeTree()
	s := style.DefaultStyle()
	s.Size = geom.Size[style.Dimension]{Width: style.Points(20), Height: style.Points(10)}
	s.JustifySelf = style.AlignCenter
	s.AlignSelf = style.AlignEnd
	item := f.leaf(s, content{})

	gs := columns(style.Length(100))
	gs.GridTemplateRows = []style.TrackSize{style.Length(50)}
	root := f.grid(gs, item)

	run(f, root, maxContent())
	assert.Equal(t, geom.Point[float64]{X: 40, Y: 40}, f.layouts[item].Location)
	assert.Equal(t, geom.Size[float64]{Width: 20, Height: 10}, f.layouts[item].Size)
}

func TestCompute_HiddenChildren(t *testing.T) {
	f := newFakeTree()
	hidden := style.DefaultStyle()
	hidden.Display = style.DisplayNone
	h := f.leaf(hidden, content{minW: 500, maxW: 500, h: 500})
	v := f.leaf(style.DefaultStyle(), content{maxW: 10, h: 10})
	root := f.grid(columns(style.AutoTrack()), h, v)

	size := run(f, root, maxContent())
	require.Equal(t, []tree.NodeID{h}, f.hidden)
	assert.Equal(t, geom.Size[float64]{Width: 10, Height: 10}, size)
	assert.Equal(t, geom.Size[float64]{}, f.layouts[h].Size)
}

func TestCompute_ComputeSizeDoesNotPosition(t *testing.T) {
	f := newFakeTree()
	a := f.leaf(style.DefaultStyle(), content{maxW: 25, h: 5})
	root := f.grid(columns(style.AutoTrack()), a)

	size := Compute(f, root, geom.UndefinedSize(), geom.UndefinedSize(), maxContent(), tree.ComputeSize)
	assert.Equal(t, geom.Size[float64]{Width: 25, Height: 5}, size)
	assert.NotContains(t, f.layouts, a)
}

func TestFindFrSize(t *testing.T) {
	tracks := []track{
		newGutter(0),
		{kind: kindTrack, max: style.Fr(1).Max, baseSize: 0},
		newGutter(10),
		{kind: kindTrack, max: style.Fr(3).Max, baseSize: 0},
		newGutter(0),
	}
	tracks[2].baseSize = 10
	assert.InDelta(t, 25, findFrSize(tracks, 110), 0.0001)

	// A track whose share would drop below its base size turns inflexible.
	tracks[1].baseSize = 60
	assert.InDelta(t, 40.0/3, findFrSize(tracks, 110), 0.0001)
}
