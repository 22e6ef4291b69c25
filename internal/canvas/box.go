package canvas

import "github.com/mattn/go-runewidth"

// Border selects the box-drawing characters of a frame.
type Border int

const (
	BorderNone Border = iota
	BorderSingle
	BorderDouble
	BorderRounded
	BorderThick
)

type borderChars struct {
	topLeft, top, topRight  rune
	left, right             rune
	bottomLeft, bottomRight rune
}

func (b Border) chars() borderChars {
	switch b {
	case BorderDouble:
		return borderChars{'╔', '═', '╗', '║', '║', '╚', '╝'}
	case BorderRounded:
		return borderChars{'╭', '─', '╮', '│', '│', '╰', '╯'}
	case BorderThick:
		return borderChars{'┏', '━', '┓', '┃', '┃', '┗', '┛'}
	default:
		return borderChars{'┌', '─', '┐', '│', '│', '└', '┘'}
	}
}

// DrawBox frames rect. Frames smaller than 2x2 are not drawn; the part of
// a frame outside the canvas is clipped.
func (c *Canvas) DrawBox(rect Rect, border Border) {
	if border == BorderNone || rect.Width < 2 || rect.Height < 2 {
		return
	}
	ch := border.chars()
	left, right := rect.X, rect.Right()-1
	top, bottom := rect.Y, rect.Bottom()-1

	c.SetRune(left, top, ch.topLeft)
	c.SetRune(right, top, ch.topRight)
	c.SetRune(left, bottom, ch.bottomLeft)
	c.SetRune(right, bottom, ch.bottomRight)
	for x := left + 1; x < right; x++ {
		c.SetRune(x, top, ch.top)
		c.SetRune(x, bottom, ch.top)
	}
	for y := top + 1; y < bottom; y++ {
		c.SetRune(left, y, ch.left)
		c.SetRune(right, y, ch.right)
	}
}

// DrawBoxWithTitle frames rect and writes title into the top edge after
// the corner, truncated to fit.
func (c *Canvas) DrawBoxWithTitle(rect Rect, border Border, title string) {
	c.DrawBox(rect, border)
	if border == BorderNone || rect.Width < 3 || rect.Height < 2 || title == "" {
		return
	}
	room := rect.Width - 2
	title = runewidth.Truncate(title, room, "")
	c.SetString(rect.X+1, rect.Y, title, Rect{X: rect.X + 1, Y: rect.Y, Width: room, Height: 1})
}
