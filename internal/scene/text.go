package scene

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	layout "github.com/grindlemire/go-layout"
	"github.com/grindlemire/go-layout/internal/geom"
)

// TextMeasure sizes text in terminal cells: one row per line and the
// display width of the widest line. Paragraphs break at newlines and words
// wrap greedily when the width is constrained.
func TextMeasure(text string) layout.MeasureFunc {
	var paragraphs [][]string
	for _, p := range strings.Split(text, "\n") {
		paragraphs = append(paragraphs, strings.Fields(p))
	}

	return func(known layout.Size[float64], available layout.Size[layout.AvailableSpace]) layout.Size[float64] {
		if geom.IsDefined(known.Width) && geom.IsDefined(known.Height) {
			return known
		}
		if strings.TrimSpace(text) == "" {
			return layout.Size[float64]{Width: geom.Or(known.Width, 0), Height: geom.Or(known.Height, 0)}
		}

		limit := known.Width
		if geom.IsUndefined(limit) {
			switch available.Width.Kind {
			case geom.KindDefinite:
				limit = available.Width.Value
			case geom.KindMinContent:
				limit = 0
			default:
				limit = math.Inf(1)
			}
		}

		width, lines := 0, 0
		for _, words := range paragraphs {
			for _, w := range wrap(words, limit) {
				width = max(width, w)
				lines++
			}
		}
		return layout.Size[float64]{
			Width:  geom.Or(known.Width, float64(width)),
			Height: geom.Or(known.Height, float64(lines)),
		}
	}
}

// wrap returns the width of each line when words are packed greedily into
// lines no wider than limit. A word wider than limit gets a line of its own.
func wrap(words []string, limit float64) []int {
	if len(words) == 0 {
		return []int{0}
	}
	var lines []int
	cur := -1
	for _, w := range words {
		ww := runewidth.StringWidth(w)
		switch {
		case cur < 0:
			cur = ww
		case float64(cur+1+ww) <= limit:
			cur += 1 + ww
		default:
			lines = append(lines, cur)
			cur = ww
		}
	}
	return append(lines, cur)
}
