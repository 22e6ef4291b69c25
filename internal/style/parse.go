package style

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/grindlemire/go-layout/internal/geom"
)

var (
	// ErrBadDimension is returned for a length that is not "auto", a number,
	// "Npx" or "N%".
	ErrBadDimension = errors.New("invalid dimension")

	// ErrBadTrackList is returned for a malformed grid track list.
	ErrBadTrackList = errors.New("invalid track list")

	// ErrBadPlacement is returned for a malformed grid-row/grid-column value.
	ErrBadPlacement = errors.New("invalid grid placement")
)

// ParseDimension parses "auto", "10", "10px" or "50%".
func ParseDimension(s string) (Dimension, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "auto":
		return Auto(), nil
	case strings.HasSuffix(s, "%"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return Dimension{}, fmt.Errorf("%w: %q", ErrBadDimension, s)
		}
		return Percent(v), nil
	default:
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
		if err != nil {
			return Dimension{}, fmt.Errorf("%w: %q", ErrBadDimension, s)
		}
		return Points(v), nil
	}
}

// ParseTrackList parses a CSS track list such as
// "100px minmax(50px, 1fr) repeat(2, auto) fit-content(40%)".
// repeat() with an integer count is expanded in place.
func ParseTrackList(s string) ([]TrackSize, error) {
	tokens, err := splitTopLevel(s, ' ')
	if err != nil {
		return nil, err
	}

	var tracks []TrackSize
	for _, tok := range tokens {
		if inner, ok := funcArgs(tok, "repeat"); ok {
			args, err := splitTopLevel(inner, ',')
			if err != nil {
				return nil, err
			}
			if len(args) != 2 {
				return nil, fmt.Errorf("%w: repeat needs 2 arguments in %q", ErrBadTrackList, tok)
			}
			count, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil || count < 1 {
				return nil, fmt.Errorf("%w: bad repeat count in %q", ErrBadTrackList, tok)
			}
			inside, err := ParseTrackList(args[1])
			if err != nil {
				return nil, err
			}
			tracks = append(tracks, Repeat(count, inside...)...)
			continue
		}

		t, err := parseTrack(tok)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}

func parseTrack(tok string) (TrackSize, error) {
	if inner, ok := funcArgs(tok, "minmax"); ok {
		args, err := splitTopLevel(inner, ',')
		if err != nil {
			return TrackSize{}, err
		}
		if len(args) != 2 {
			return TrackSize{}, fmt.Errorf("%w: minmax needs 2 arguments in %q", ErrBadTrackList, tok)
		}
		lo, err := parseMin(strings.TrimSpace(args[0]))
		if err != nil {
			return TrackSize{}, err
		}
		hi, err := parseMax(strings.TrimSpace(args[1]))
		if err != nil {
			return TrackSize{}, err
		}
		return MinMax(lo, hi), nil
	}
	if inner, ok := funcArgs(tok, "fit-content"); ok {
		d, err := ParseDimension(inner)
		if err != nil || d.IsAuto() {
			return TrackSize{}, fmt.Errorf("%w: %q", ErrBadTrackList, tok)
		}
		return FitContent(d), nil
	}

	switch tok {
	case "auto":
		return AutoTrack(), nil
	case "min-content":
		return MinContentTrack(), nil
	case "max-content":
		return MaxContentTrack(), nil
	}
	if strings.HasSuffix(tok, "fr") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(tok, "fr"), 64)
		if err != nil || v < 0 {
			return TrackSize{}, fmt.Errorf("%w: %q", ErrBadTrackList, tok)
		}
		return Fr(v), nil
	}
	d, err := ParseDimension(tok)
	if err != nil {
		return TrackSize{}, fmt.Errorf("%w: %q", ErrBadTrackList, tok)
	}
	return TrackSize{Min: MinTrackSizing{Kind: MinFixed, Value: d}, Max: MaxTrackSizing{Kind: MaxFixed, Value: d}}, nil
}

func parseMin(tok string) (MinTrackSizing, error) {
	switch tok {
	case "auto":
		return MinTrackSizing{Kind: MinAuto}, nil
	case "min-content":
		return MinTrackSizing{Kind: MinMinContent}, nil
	case "max-content":
		return MinTrackSizing{Kind: MinMaxContent}, nil
	}
	d, err := ParseDimension(tok)
	if err != nil {
		return MinTrackSizing{}, fmt.Errorf("%w: bad minimum %q", ErrBadTrackList, tok)
	}
	return MinTrackSizing{Kind: MinFixed, Value: d}, nil
}

func parseMax(tok string) (MaxTrackSizing, error) {
	switch tok {
	case "auto":
		return MaxTrackSizing{Kind: MaxAuto}, nil
	case "min-content":
		return MaxTrackSizing{Kind: MaxMinContent}, nil
	case "max-content":
		return MaxTrackSizing{Kind: MaxMaxContent}, nil
	}
	if strings.HasSuffix(tok, "fr") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(tok, "fr"), 64)
		if err != nil || v < 0 {
			return MaxTrackSizing{}, fmt.Errorf("%w: bad maximum %q", ErrBadTrackList, tok)
		}
		return MaxTrackSizing{Kind: MaxFraction, Fr: v}, nil
	}
	d, err := ParseDimension(tok)
	if err != nil {
		return MaxTrackSizing{}, fmt.Errorf("%w: bad maximum %q", ErrBadTrackList, tok)
	}
	return MaxTrackSizing{Kind: MaxFixed, Value: d}, nil
}

// funcArgs returns the text between "name(" and the trailing ")".
func funcArgs(tok, name string) (string, bool) {
	if !strings.HasPrefix(tok, name+"(") || !strings.HasSuffix(tok, ")") {
		return "", false
	}
	return tok[len(name)+1 : len(tok)-1], true
}

// splitTopLevel splits s on sep outside parentheses, dropping empty fields.
func splitTopLevel(s string, sep rune) ([]string, error) {
	var (
		out   []string
		depth int
		cur   strings.Builder
	)
	flush := func() {
		if f := strings.TrimSpace(cur.String()); f != "" {
			out = append(out, f)
		}
		cur.Reset()
	}

	for _, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%w: unbalanced parentheses in %q", ErrBadTrackList, s)
			}
		case r == sep && depth == 0:
			flush()
			continue
		case sep == ' ' && (r == '\t' || r == '\n') && depth == 0:
			flush()
			continue
		}
		cur.WriteRune(r)
	}
	if depth != 0 {
		return nil, fmt.Errorf("%w: unbalanced parentheses in %q", ErrBadTrackList, s)
	}
	flush()
	return out, nil
}

// ParseGridLine parses a grid-row/grid-column value: "auto", "2", "-1",
// "span 2", "1 / 3" or "2 / span 3".
func ParseGridLine(s string) (geom.Line[GridPlacement], error) {
	start, end, hasEnd := strings.Cut(s, "/")
	lo, err := parsePlacement(start)
	if err != nil {
		return geom.Line[GridPlacement]{}, err
	}
	hi := GridAuto()
	if hasEnd {
		if hi, err = parsePlacement(end); err != nil {
			return geom.Line[GridPlacement]{}, err
		}
	}
	return geom.Line[GridPlacement]{Start: lo, End: hi}, nil
}

func parsePlacement(s string) (GridPlacement, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "auto" {
		return GridAuto(), nil
	}
	if rest, ok := strings.CutPrefix(s, "span"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil || n < 1 {
			return GridPlacement{}, fmt.Errorf("%w: %q", ErrBadPlacement, s)
		}
		return GridSpan(n), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n == 0 {
		return GridPlacement{}, fmt.Errorf("%w: %q", ErrBadPlacement, s)
	}
	return GridLine(n), nil
}
