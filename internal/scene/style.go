package scene

import (
	"fmt"
	"sort"
	"strings"

	layout "github.com/grindlemire/go-layout"
	"github.com/grindlemire/go-layout/internal/style"
)

type setter func(s *layout.Style, v any) error

var properties = map[string]setter{
	"display":        setDisplay,
	"flex_direction": setFlexDirection,
	"flex_wrap":      setFlexWrap,

	"width":      dim(func(s *layout.Style) *layout.Dimension { return &s.Size.Width }),
	"height":     dim(func(s *layout.Style) *layout.Dimension { return &s.Size.Height }),
	"min_width":  dim(func(s *layout.Style) *layout.Dimension { return &s.MinSize.Width }),
	"min_height": dim(func(s *layout.Style) *layout.Dimension { return &s.MinSize.Height }),
	"max_width":  dim(func(s *layout.Style) *layout.Dimension { return &s.MaxSize.Width }),
	"max_height": dim(func(s *layout.Style) *layout.Dimension { return &s.MaxSize.Height }),
	"flex_basis": dim(func(s *layout.Style) *layout.Dimension { return &s.FlexBasis }),
	"row_gap":    dim(func(s *layout.Style) *layout.Dimension { return &s.Gap.Height }),
	"column_gap": dim(func(s *layout.Style) *layout.Dimension { return &s.Gap.Width }),

	"aspect_ratio": num(func(s *layout.Style) *float64 { return &s.AspectRatio }),
	"flex_grow":    num(func(s *layout.Style) *float64 { return &s.FlexGrow }),
	"flex_shrink":  num(func(s *layout.Style) *float64 { return &s.FlexShrink }),

	"margin":  edges(func(s *layout.Style) *layout.Rect[layout.Dimension] { return &s.Margin }),
	"padding": edges(func(s *layout.Style) *layout.Rect[layout.Dimension] { return &s.Padding }),
	"border":  edges(func(s *layout.Style) *layout.Rect[layout.Dimension] { return &s.Border }),
	"gap":     setGap,

	"align_items":     alignment(func(s *layout.Style) *layout.Align { return &s.AlignItems }),
	"align_self":      alignment(func(s *layout.Style) *layout.Align { return &s.AlignSelf }),
	"justify_items":   alignment(func(s *layout.Style) *layout.Align { return &s.JustifyItems }),
	"justify_self":    alignment(func(s *layout.Style) *layout.Align { return &s.JustifySelf }),
	"align_content":   justification(func(s *layout.Style) *layout.Justify { return &s.AlignContent }),
	"justify_content": justification(func(s *layout.Style) *layout.Justify { return &s.JustifyContent }),

	"grid_template_columns": tracks(func(s *layout.Style) *[]layout.TrackSize { return &s.GridTemplateColumns }),
	"grid_template_rows":    tracks(func(s *layout.Style) *[]layout.TrackSize { return &s.GridTemplateRows }),
	"grid_auto_columns":     tracks(func(s *layout.Style) *[]layout.TrackSize { return &s.GridAutoColumns }),
	"grid_auto_rows":        tracks(func(s *layout.Style) *[]layout.TrackSize { return &s.GridAutoRows }),
	"grid_row":              placement(func(s *layout.Style) *layout.Line[layout.GridPlacement] { return &s.GridRow }),
	"grid_column":           placement(func(s *layout.Style) *layout.Line[layout.GridPlacement] { return &s.GridColumn }),
}

// ParseStyle converts a scene style map to a Style, starting from CSS
// initial values. Keys are applied in sorted order so errors are stable.
func ParseStyle(props map[string]any) (layout.Style, error) {
	s := layout.DefaultStyle()
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		set, ok := properties[strings.ReplaceAll(k, "-", "_")]
		if !ok {
			return s, fmt.Errorf("%w: %q", ErrUnknownProperty, k)
		}
		if err := set(&s, props[k]); err != nil {
			return s, fmt.Errorf("%s: %w", k, err)
		}
	}
	return s, nil
}

func keyword(v any) (string, error) {
	str, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: want a keyword, got %v", ErrBadValue, v)
	}
	return strings.ToLower(strings.TrimSpace(str)), nil
}

func number(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float64:
		return n, nil
	}
	return 0, fmt.Errorf("%w: want a number, got %v", ErrBadValue, v)
}

func parseDimension(v any) (layout.Dimension, error) {
	if str, ok := v.(string); ok {
		d, err := style.ParseDimension(str)
		if err != nil {
			return d, fmt.Errorf("%w: %w", ErrBadValue, err)
		}
		return d, nil
	}
	n, err := number(v)
	if err != nil {
		return layout.Dimension{}, err
	}
	return layout.Points(n), nil
}

func setDisplay(s *layout.Style, v any) error {
	k, err := keyword(v)
	if err != nil {
		return err
	}
	switch k {
	case "flex":
		s.Display = layout.DisplayFlex
	case "grid":
		s.Display = layout.DisplayGrid
	case "none":
		s.Display = layout.DisplayNone
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDisplay, k)
	}
	return nil
}

var flexDirections = map[string]layout.FlexDirection{
	"row":            layout.Row,
	"column":         layout.Column,
	"row-reverse":    layout.RowReverse,
	"column-reverse": layout.ColumnReverse,
}

func setFlexDirection(s *layout.Style, v any) error {
	return lookup(v, flexDirections, &s.FlexDirection)
}

var flexWraps = map[string]layout.FlexWrap{
	"nowrap":       layout.NoWrap,
	"wrap":         layout.Wrap,
	"wrap-reverse": layout.WrapReverse,
}

func setFlexWrap(s *layout.Style, v any) error {
	return lookup(v, flexWraps, &s.FlexWrap)
}

var aligns = map[string]layout.Align{
	"auto":       layout.AlignAuto,
	"start":      layout.AlignStart,
	"end":        layout.AlignEnd,
	"flex-start": layout.AlignFlexStart,
	"flex-end":   layout.AlignFlexEnd,
	"center":     layout.AlignCenter,
	"baseline":   layout.AlignBaseline,
	"stretch":    layout.AlignStretch,
}

var justifies = map[string]layout.Justify{
	"normal":        layout.JustifyNormal,
	"start":         layout.JustifyStart,
	"end":           layout.JustifyEnd,
	"flex-start":    layout.JustifyFlexStart,
	"flex-end":      layout.JustifyFlexEnd,
	"center":        layout.JustifyCenter,
	"stretch":       layout.JustifyStretch,
	"space-between": layout.JustifySpaceBetween,
	"space-around":  layout.JustifySpaceAround,
	"space-evenly":  layout.JustifySpaceEvenly,
}

func lookup[T any](v any, table map[string]T, dst *T) error {
	k, err := keyword(v)
	if err != nil {
		return err
	}
	val, ok := table[strings.ReplaceAll(k, "_", "-")]
	if !ok {
		return fmt.Errorf("%w: %q", ErrBadValue, k)
	}
	*dst = val
	return nil
}

func alignment(field func(*layout.Style) *layout.Align) setter {
	return func(s *layout.Style, v any) error { return lookup(v, aligns, field(s)) }
}

func justification(field func(*layout.Style) *layout.Justify) setter {
	return func(s *layout.Style, v any) error { return lookup(v, justifies, field(s)) }
}

func dim(field func(*layout.Style) *layout.Dimension) setter {
	return func(s *layout.Style, v any) error {
		d, err := parseDimension(v)
		if err != nil {
			return err
		}
		*field(s) = d
		return nil
	}
}

func num(field func(*layout.Style) *float64) setter {
	return func(s *layout.Style, v any) error {
		n, err := number(v)
		if err != nil {
			return err
		}
		*field(s) = n
		return nil
	}
}

// dimensions accepts a single value, a whitespace separated string such as
// "1 2" or a list.
func dimensions(v any) ([]layout.Dimension, error) {
	var parts []any
	switch x := v.(type) {
	case []any:
		parts = x
	case string:
		for _, f := range strings.Fields(x) {
			parts = append(parts, f)
		}
	default:
		parts = []any{x}
	}
	out := make([]layout.Dimension, 0, len(parts))
	for _, p := range parts {
		d, err := parseDimension(p)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// edges expands the CSS shorthand: one value for all sides, two for
// vertical and horizontal, three for top, horizontal and bottom, four in
// top, right, bottom, left order.
func edges(field func(*layout.Style) *layout.Rect[layout.Dimension]) setter {
	return func(s *layout.Style, v any) error {
		d, err := dimensions(v)
		if err != nil {
			return err
		}
		var r layout.Rect[layout.Dimension]
		switch len(d) {
		case 1:
			r = layout.Edges(d[0])
		case 2:
			r = layout.EdgesTRBL(d[0], d[1], d[0], d[1])
		case 3:
			r = layout.EdgesTRBL(d[0], d[1], d[2], d[1])
		case 4:
			r = layout.EdgesTRBL(d[0], d[1], d[2], d[3])
		default:
			return fmt.Errorf("%w: want 1 to 4 values, got %d", ErrBadValue, len(d))
		}
		*field(s) = r
		return nil
	}
}

// setGap takes one value for both gaps or "row column".
func setGap(s *layout.Style, v any) error {
	d, err := dimensions(v)
	if err != nil {
		return err
	}
	switch len(d) {
	case 1:
		s.Gap = layout.Size[layout.Dimension]{Width: d[0], Height: d[0]}
	case 2:
		s.Gap = layout.Size[layout.Dimension]{Width: d[1], Height: d[0]}
	default:
		return fmt.Errorf("%w: want 1 or 2 gap values, got %d", ErrBadValue, len(d))
	}
	return nil
}

func tracks(field func(*layout.Style) *[]layout.TrackSize) setter {
	return func(s *layout.Style, v any) error {
		k, ok := v.(string)
		if !ok {
			return fmt.Errorf("%w: want a track list string, got %v", ErrBadValue, v)
		}
		list, err := layout.ParseTrackList(k)
		if err != nil {
			return err
		}
		*field(s) = list
		return nil
	}
}

func placement(field func(*layout.Style) *layout.Line[layout.GridPlacement]) setter {
	return func(s *layout.Style, v any) error {
		var text string
		switch x := v.(type) {
		case string:
			text = x
		default:
			n, err := number(x)
			if err != nil {
				return err
			}
			text = fmt.Sprint(int(n))
		}
		line, err := layout.ParseGridLine(text)
		if err != nil {
			return err
		}
		*field(s) = line
		return nil
	}
}
