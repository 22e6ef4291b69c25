// Package canvas draws laid-out boxes into a grid of terminal cells.
package canvas

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is one terminal column. Wide characters occupy two cells: the first
// holds the rune, the second is a continuation with Width 0.
type Cell struct {
	Rune  rune
	Width uint8
}

var blank = Cell{Rune: ' ', Width: 1}

func (c Cell) continuation() bool {
	return c.Width == 0
}

// Rect is an integer cell rectangle.
type Rect struct {
	X, Y, Width, Height int
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Intersect returns the overlap of r and o.
func (r Rect) Intersect(o Rect) Rect {
	x, y := max(r.X, o.X), max(r.Y, o.Y)
	right, bottom := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if right <= x || bottom <= y {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Canvas is a fixed-size grid of cells, initially blank.
type Canvas struct {
	cells  []Cell
	width  int
	height int
}

// New returns a blank canvas. Negative sizes are treated as zero.
func New(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	c := &Canvas{cells: make([]Cell, width*height), width: width, height: height}
	for i := range c.cells {
		c.cells[i] = blank
	}
	return c
}

// Size returns the canvas width and height in cells.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Bounds returns the canvas as a Rect at the origin.
func (c *Canvas) Bounds() Rect {
	return Rect{Width: c.width, Height: c.height}
}

func (c *Canvas) at(x, y int) *Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return nil
	}
	return &c.cells[y*c.width+x]
}

// Cell returns the cell at (x, y), or a zero Cell outside the canvas.
func (c *Canvas) Cell(x, y int) Cell {
	if p := c.at(x, y); p != nil {
		return *p
	}
	return Cell{}
}

// SetRune writes r at (x, y). Any wide character it overlaps is blanked,
// and a wide rune that would cross the right edge is replaced by a space.
func (c *Canvas) SetRune(x, y int, r rune) {
	p := c.at(x, y)
	if p == nil {
		return
	}
	w := runewidth.RuneWidth(r)
	if w < 1 {
		w = 1
	}

	c.clearWide(x, y)
	if w == 2 {
		if x+1 >= c.width {
			*p = blank
			return
		}
		c.clearWide(x+1, y)
	}

	*p = Cell{Rune: r, Width: uint8(w)}
	if w == 2 {
		*c.at(x+1, y) = Cell{}
	}
}

// clearWide blanks both halves of a wide character covering (x, y).
func (c *Canvas) clearWide(x, y int) {
	p := c.at(x, y)
	switch {
	case p == nil:
	case p.continuation():
		if prev := c.at(x-1, y); prev != nil {
			*prev = blank
		}
		*p = blank
	case p.Width == 2:
		*p = blank
		if next := c.at(x+1, y); next != nil {
			*next = blank
		}
	}
}

// SetString writes s from (x, y) without wrapping, clipped to clip, and
// returns the number of columns written.
func (c *Canvas) SetString(x, y int, s string, clip Rect) int {
	clip = clip.Intersect(c.Bounds())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}
	written := 0
	for _, r := range s {
		w := max(runewidth.RuneWidth(r), 1)
		if x >= clip.Right() {
			break
		}
		if x >= clip.X && x+w <= clip.Right() {
			c.SetRune(x, y, r)
			written += w
		}
		x += w
	}
	return written
}

// Fill sets every cell of rect to r.
func (c *Canvas) Fill(rect Rect, r rune) {
	rect = rect.Intersect(c.Bounds())
	w := max(runewidth.RuneWidth(r), 1)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x += w {
			if x+w > rect.Right() {
				c.SetRune(x, y, ' ')
				break
			}
			c.SetRune(x, y, r)
		}
	}
}

// String returns the canvas rows joined by newlines with trailing spaces
// removed.
func (c *Canvas) String() string {
	var sb strings.Builder
	var line strings.Builder
	for y := 0; y < c.height; y++ {
		line.Reset()
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			if cell.continuation() {
				continue
			}
			line.WriteRune(cell.Rune)
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
