package grid

import (
	"github.com/grindlemire/go-layout/internal/geom"
	"github.com/grindlemire/go-layout/internal/style"
	"github.com/grindlemire/go-layout/internal/tree"
)

// axisPlacement is one axis of a child's placement in origin-zero lines.
// When definite is false only span is meaningful.
type axisPlacement struct {
	definite bool
	start    int
	end      int
	span     int
}

// resolveAxis converts a start/end pair of CSS line placements into
// origin-zero lines. Line 1 is origin-zero line 0 and line -1 is the end of
// the explicit grid.
func resolveAxis(p geom.Line[style.GridPlacement], explicit int) axisPlacement {
	toLine := func(n int) int {
		if n > 0 {
			return n - 1
		}
		return explicit + 1 + n
	}
	isLine := func(g style.GridPlacement) bool { return g.Kind == style.PlacementLine && g.Value != 0 }
	spanOf := func(g style.GridPlacement) int {
		if g.Kind == style.PlacementSpan && g.Value > 0 {
			return g.Value
		}
		return 1
	}

	switch {
	case isLine(p.Start) && isLine(p.End):
		s, e := toLine(p.Start.Value), toLine(p.End.Value)
		if e < s {
			s, e = e, s
		}
		if e == s {
			e = s + 1
		}
		return axisPlacement{definite: true, start: s, end: e, span: e - s}
	case isLine(p.Start):
		s := toLine(p.Start.Value)
		n := spanOf(p.End)
		return axisPlacement{definite: true, start: s, end: s + n, span: n}
	case isLine(p.End):
		e := toLine(p.End.Value)
		n := spanOf(p.Start)
		return axisPlacement{definite: true, start: e - n, end: e, span: n}
	}
	n := spanOf(p.Start)
	if p.Start.Kind != style.PlacementSpan {
		n = spanOf(p.End)
	}
	return axisPlacement{span: n}
}

type cell struct{ row, col int }

// occupancy records the cells already claimed by placed items.
type occupancy map[cell]struct{}

func (o occupancy) free(rows, cols geom.Line[int]) bool {
	for r := rows.Start; r < rows.End; r++ {
		for c := cols.Start; c < cols.End; c++ {
			if _, ok := o[cell{r, c}]; ok {
				return false
			}
		}
	}
	return true
}

func (o occupancy) mark(rows, cols geom.Line[int]) {
	for r := rows.Start; r < rows.End; r++ {
		for c := cols.Start; c < cols.End; c++ {
			o[cell{r, c}] = struct{}{}
		}
	}
}

// trackCounts describes one axis of the implicit grid.
type trackCounts struct {
	negative int
	explicit int
	positive int
}

func (c trackCounts) total() int { return c.negative + c.explicit + c.positive }

type pending struct {
	node     tree.NodeID
	order    uint32
	row, col axisPlacement
}

// place assigns every child a grid area using row-major flow. Items with a
// definite position in both axes go first, then items locked to a row, then
// the rest in document order. Returned lines are shifted so the first
// implicit track starts at line 0.
func place(t Tree, children []tree.NodeID, s *style.Style) ([]item, trackCounts, trackCounts) {
	explicitRows := len(s.GridTemplateRows)
	explicitCols := len(s.GridTemplateColumns)

	var all []pending
	for i, child := range children {
		cs := t.Style(child)
		if cs.Display == style.DisplayNone {
			t.HideNode(child, uint32(i))
			continue
		}
		all = append(all, pending{
			node:  child,
			order: uint32(i),
			row:   resolveAxis(cs.GridRow, explicitRows),
			col:   resolveAxis(cs.GridColumn, explicitCols),
		})
	}

	occ := occupancy{}
	areas := make(map[int][2]geom.Line[int], len(all))
	put := func(i int, rows, cols geom.Line[int]) {
		occ.mark(rows, cols)
		areas[i] = [2]geom.Line[int]{rows, cols}
	}

	// Fully definite items.
	for i, p := range all {
		if p.row.definite && p.col.definite {
			put(i, geom.Line[int]{Start: p.row.start, End: p.row.end}, geom.Line[int]{Start: p.col.start, End: p.col.end})
		}
	}

	// Items locked to a row.
	for i, p := range all {
		if !p.row.definite || p.col.definite {
			continue
		}
		rows := geom.Line[int]{Start: p.row.start, End: p.row.end}
		for c := 0; ; c++ {
			cols := geom.Line[int]{Start: c, End: c + p.col.span}
			if occ.free(rows, cols) {
				put(i, rows, cols)
				break
			}
		}
	}

	// The auto-placement cursor wraps at the end of the widest column
	// extent seen so far.
	colEnd := explicitCols
	for _, a := range areas {
		colEnd = max(colEnd, a[1].End)
	}
	for _, p := range all {
		if !p.col.definite {
			colEnd = max(colEnd, p.col.span)
		} else {
			colEnd = max(colEnd, p.col.end)
		}
	}

	curRow, curCol := 0, 0
	for i, p := range all {
		if p.row.definite {
			continue
		}
		if p.col.definite {
			cols := geom.Line[int]{Start: p.col.start, End: p.col.end}
			if p.col.start < curCol {
				curRow++
			}
			curCol = p.col.start
			for {
				rows := geom.Line[int]{Start: curRow, End: curRow + p.row.span}
				if occ.free(rows, cols) {
					put(i, rows, cols)
					break
				}
				curRow++
			}
			continue
		}
		for {
			if curCol+p.col.span > colEnd && curCol > 0 {
				curRow++
				curCol = 0
			}
			rows := geom.Line[int]{Start: curRow, End: curRow + p.row.span}
			cols := geom.Line[int]{Start: curCol, End: curCol + p.col.span}
			if occ.free(rows, cols) {
				put(i, rows, cols)
				curCol += p.col.span
				break
			}
			curCol++
		}
	}

	rowCounts := trackCounts{explicit: explicitRows}
	colCounts := trackCounts{explicit: explicitCols}
	for _, a := range areas {
		rowCounts.negative = max(rowCounts.negative, -a[0].Start)
		rowCounts.positive = max(rowCounts.positive, a[0].End-explicitRows)
		colCounts.negative = max(colCounts.negative, -a[1].Start)
		colCounts.positive = max(colCounts.positive, a[1].End-explicitCols)
	}

	items := make([]item, len(all))
	for i, p := range all {
		a := areas[i]
		items[i] = item{
			node:  p.node,
			order: p.order,
			row:   geom.Line[int]{Start: a[0].Start + rowCounts.negative, End: a[0].End + rowCounts.negative},
			column: geom.Line[int]{
				Start: a[1].Start + colCounts.negative,
				End:   a[1].End + colCounts.negative,
			},
		}
		items[i].resetCache()
	}
	return items, rowCounts, colCounts
}

// initializeTracks builds an axis's track vector. Implicit tracks take their
// sizes from the auto track list, cycling forward after the explicit grid
// and backward before it.
func initializeTracks(counts trackCounts, template, auto []style.TrackSize, gap float64) []track {
	autoAt := func(i int) style.TrackSize {
		if len(auto) == 0 {
			return style.AutoTrack()
		}
		return auto[((i%len(auto))+len(auto))%len(auto)]
	}

	tracks := make([]track, 0, 2*counts.total()+1)
	tracks = append(tracks, newGutter(0))
	for i := counts.negative; i > 0; i-- {
		tracks = append(tracks, newTrack(autoAt(-i)), newGutter(gap))
	}
	for _, ts := range template {
		tracks = append(tracks, newTrack(ts), newGutter(gap))
	}
	for i := 0; i < counts.positive; i++ {
		tracks = append(tracks, newTrack(autoAt(i)), newGutter(gap))
	}
	tracks[0].collapse()
	tracks[len(tracks)-1].collapse()
	return tracks
}
