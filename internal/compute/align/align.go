// Package align computes the offsets shared by flex line, flex item, grid
// track and grid item alignment.
package align

import "github.com/grindlemire/go-layout/internal/style"

// ContentOffset returns the offset placed before an item (or line, or track)
// when distributing freeSpace among n of them with the given mode. The first
// item gets the leading offset; every later item gets gap plus its share of
// the distributed space. Negative free space is never distributed between
// items. reversed flips the flex-start/flex-end sense.
func ContentOffset(freeSpace float64, n int, gap float64, mode style.Justify, reversed, isFirst bool) float64 {
	if isFirst {
		switch mode {
		case style.JustifyFlexStart:
			if reversed {
				return freeSpace
			}
			return 0
		case style.JustifyEnd:
			return freeSpace
		case style.JustifyFlexEnd:
			if reversed {
				return 0
			}
			return freeSpace
		case style.JustifyCenter:
			return freeSpace / 2
		case style.JustifySpaceAround:
			if freeSpace >= 0 {
				return freeSpace / float64(n) / 2
			}
			return freeSpace / 2
		case style.JustifySpaceEvenly:
			if freeSpace >= 0 {
				return freeSpace / float64(n+1)
			}
			return freeSpace / 2
		default: // Start, Normal, Stretch, SpaceBetween
			return 0
		}
	}

	freeSpace = max(freeSpace, 0)
	switch mode {
	case style.JustifySpaceBetween:
		return gap + freeSpace/float64(n-1)
	case style.JustifySpaceAround:
		return gap + freeSpace/float64(n)
	case style.JustifySpaceEvenly:
		return gap + freeSpace/float64(n+1)
	default:
		return gap
	}
}

// SelfOffset positions an item within its slot. wrapReverse flips the
// flex-start/flex-end sense.
func SelfOffset(mode style.Align, freeSpace float64, wrapReverse bool) float64 {
	switch mode {
	case style.AlignEnd:
		return freeSpace
	case style.AlignFlexEnd:
		if wrapReverse {
			return 0
		}
		return freeSpace
	case style.AlignCenter:
		return freeSpace / 2
	case style.AlignFlexStart, style.AlignStretch:
		if wrapReverse {
			return freeSpace
		}
		return 0
	default: // Start, Baseline
		return 0
	}
}
