package style

import (
	"strconv"
	"strings"

	"github.com/grindlemire/go-layout/internal/geom"
)

// MinTrackKind is the kind of a track's minimum sizing function.
type MinTrackKind uint8

const (
	MinAuto       MinTrackKind = iota // auto
	MinFixed                          // A length or percentage
	MinMinContent                     // min-content
	MinMaxContent                     // max-content
)

// MaxTrackKind is the kind of a track's maximum sizing function.
type MaxTrackKind uint8

const (
	MaxAuto       MaxTrackKind = iota // auto
	MaxFixed                          // A length or percentage
	MaxMinContent                     // min-content
	MaxMaxContent                     // max-content
	MaxFitContent                     // fit-content(limit)
	MaxFraction                       // Nfr
)

// MinTrackSizing is the lower bound of a track.
type MinTrackSizing struct {
	Kind  MinTrackKind
	Value Dimension // MinFixed only
}

// MaxTrackSizing is the upper bound of a track.
type MaxTrackSizing struct {
	Kind  MaxTrackKind
	Value Dimension // MaxFixed and MaxFitContent
	Fr    float64   // MaxFraction
}

// TrackSize is a single track's minmax() pair.
type TrackSize struct {
	Min MinTrackSizing
	Max MaxTrackSizing
}

// DefiniteValue resolves a fixed minimum against the grid's size, else undefined.
func (m MinTrackSizing) DefiniteValue(parent float64) float64 {
	if m.Kind == MinFixed {
		return m.Value.Resolve(parent)
	}
	return geom.Undefined
}

// IsIntrinsic reports whether the minimum depends on item content.
func (m MinTrackSizing) IsIntrinsic() bool {
	return m.Kind != MinFixed
}

// DefiniteValue resolves a fixed maximum against the grid's size, else undefined.
func (m MaxTrackSizing) DefiniteValue(parent float64) float64 {
	if m.Kind == MaxFixed {
		return m.Value.Resolve(parent)
	}
	return geom.Undefined
}

// IsIntrinsic reports whether the maximum depends on item content.
func (m MaxTrackSizing) IsIntrinsic() bool {
	switch m.Kind {
	case MaxAuto, MaxMinContent, MaxMaxContent, MaxFitContent:
		return true
	}
	return false
}

// IsMaxContentAlike reports maxima whose growth limit follows max-content
// contributions: auto, max-content and fit-content.
func (m MaxTrackSizing) IsMaxContentAlike() bool {
	return m.Kind == MaxAuto || m.Kind == MaxMaxContent || m.Kind == MaxFitContent
}

// DefiniteLimit is DefiniteValue extended to the fit-content argument.
func (m MaxTrackSizing) DefiniteLimit(parent float64) float64 {
	switch m.Kind {
	case MaxFixed, MaxFitContent:
		return m.Value.Resolve(parent)
	}
	return geom.Undefined
}

// IsFlexible reports an fr maximum.
func (m MaxTrackSizing) IsFlexible() bool {
	return m.Kind == MaxFraction
}

// FlexFactor returns the fr value, or zero for inflexible tracks.
func (m MaxTrackSizing) FlexFactor() float64 {
	if m.Kind == MaxFraction {
		return m.Fr
	}
	return 0
}

// Length returns a fixed track.
func Length(v float64) TrackSize {
	d := Points(v)
	return TrackSize{Min: MinTrackSizing{Kind: MinFixed, Value: d}, Max: MaxTrackSizing{Kind: MaxFixed, Value: d}}
}

// PercentTrack returns a track sized as a percentage of the grid.
func PercentTrack(p float64) TrackSize {
	d := Percent(p)
	return TrackSize{Min: MinTrackSizing{Kind: MinFixed, Value: d}, Max: MaxTrackSizing{Kind: MaxFixed, Value: d}}
}

// Fr returns a flexible track. Its minimum is auto, as for a bare fr in CSS.
func Fr(v float64) TrackSize {
	return TrackSize{Min: MinTrackSizing{Kind: MinAuto}, Max: MaxTrackSizing{Kind: MaxFraction, Fr: v}}
}

// AutoTrack returns an auto-sized track.
func AutoTrack() TrackSize {
	return TrackSize{Min: MinTrackSizing{Kind: MinAuto}, Max: MaxTrackSizing{Kind: MaxAuto}}
}

// MinContentTrack returns a min-content track.
func MinContentTrack() TrackSize {
	return TrackSize{Min: MinTrackSizing{Kind: MinMinContent}, Max: MaxTrackSizing{Kind: MaxMinContent}}
}

// MaxContentTrack returns a max-content track.
func MaxContentTrack() TrackSize {
	return TrackSize{Min: MinTrackSizing{Kind: MinMaxContent}, Max: MaxTrackSizing{Kind: MaxMaxContent}}
}

// FitContent returns fit-content(limit).
func FitContent(limit Dimension) TrackSize {
	return TrackSize{Min: MinTrackSizing{Kind: MinAuto}, Max: MaxTrackSizing{Kind: MaxFitContent, Value: limit}}
}

// MinMax returns minmax(min, max).
func MinMax(min MinTrackSizing, max MaxTrackSizing) TrackSize {
	return TrackSize{Min: min, Max: max}
}

// Repeat expands repeat(count, tracks...).
func Repeat(count int, tracks ...TrackSize) []TrackSize {
	out := make([]TrackSize, 0, count*len(tracks))
	for range count {
		out = append(out, tracks...)
	}
	return out
}

func (m MinTrackSizing) String() string {
	switch m.Kind {
	case MinFixed:
		return m.Value.String()
	case MinMinContent:
		return "min-content"
	case MinMaxContent:
		return "max-content"
	default:
		return "auto"
	}
}

func (m MaxTrackSizing) String() string {
	switch m.Kind {
	case MaxFixed:
		return m.Value.String()
	case MaxMinContent:
		return "min-content"
	case MaxMaxContent:
		return "max-content"
	case MaxFitContent:
		return "fit-content(" + m.Value.String() + ")"
	case MaxFraction:
		return strconv.FormatFloat(m.Fr, 'g', -1, 64) + "fr"
	default:
		return "auto"
	}
}

func (t TrackSize) String() string {
	switch {
	case t.Max.Kind == MaxFraction && t.Min.Kind == MinAuto:
		return t.Max.String()
	case t.Max.Kind == MaxFitContent && t.Min.Kind == MinAuto:
		return t.Max.String()
	case t.Min.String() == t.Max.String():
		return t.Min.String()
	}
	return "minmax(" + t.Min.String() + ", " + t.Max.String() + ")"
}

// FormatTrackList renders tracks as a CSS track list.
func FormatTrackList(tracks []TrackSize) string {
	parts := make([]string, len(tracks))
	for i, t := range tracks {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

// PlacementKind tags a GridPlacement.
type PlacementKind uint8

const (
	PlacementAuto PlacementKind = iota // Placed by the auto-placement fallback
	PlacementLine                      // A definite 1-based line, negative from the end
	PlacementSpan                      // Span a number of tracks
)

// GridPlacement is one end of an item's grid-row or grid-column.
type GridPlacement struct {
	Kind  PlacementKind
	Value int
}

// GridAuto returns an auto placement.
func GridAuto() GridPlacement { return GridPlacement{Kind: PlacementAuto} }

// GridLine returns a line placement. Line 0 is invalid and behaves as auto.
func GridLine(n int) GridPlacement { return GridPlacement{Kind: PlacementLine, Value: n} }

// GridSpan returns a span placement.
func GridSpan(n int) GridPlacement { return GridPlacement{Kind: PlacementSpan, Value: n} }

func (p GridPlacement) String() string {
	switch p.Kind {
	case PlacementLine:
		return strconv.Itoa(p.Value)
	case PlacementSpan:
		return "span " + strconv.Itoa(p.Value)
	default:
		return "auto"
	}
}
