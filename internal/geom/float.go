package geom

// Edges is a resolved per-side length such as margin, padding or border.
type Edges = Rect[float64]

// HorizontalSum returns left + right.
func HorizontalSum(e Edges) float64 { return e.Left + e.Right }

// VerticalSum returns top + bottom.
func VerticalSum(e Edges) float64 { return e.Top + e.Bottom }

// SumAxes returns the horizontal and vertical sums of e as a Size.
func SumAxes(e Edges) Size[float64] {
	return Size[float64]{Width: HorizontalSum(e), Height: VerticalSum(e)}
}

// MainStart returns the side where the main axis begins.
func MainStart(e Edges, isRow bool) float64 {
	if isRow {
		return e.Left
	}
	return e.Top
}

// MainEnd returns the side where the main axis ends.
func MainEnd(e Edges, isRow bool) float64 {
	if isRow {
		return e.Right
	}
	return e.Bottom
}

// CrossStart returns the side where the cross axis begins.
func CrossStart(e Edges, isRow bool) float64 {
	if isRow {
		return e.Top
	}
	return e.Left
}

// CrossEnd returns the side where the cross axis ends.
func CrossEnd(e Edges, isRow bool) float64 {
	if isRow {
		return e.Bottom
	}
	return e.Right
}

// MainSum returns the total of both main-axis sides.
func MainSum(e Edges, isRow bool) float64 {
	if isRow {
		return HorizontalSum(e)
	}
	return VerticalSum(e)
}

// CrossSum returns the total of both cross-axis sides.
func CrossSum(e Edges, isRow bool) float64 {
	if isRow {
		return VerticalSum(e)
	}
	return HorizontalSum(e)
}

// AddEdges adds two edge sets side by side.
func AddEdges(a, b Edges) Edges {
	return Edges{Left: a.Left + b.Left, Right: a.Right + b.Right, Top: a.Top + b.Top, Bottom: a.Bottom + b.Bottom}
}

// ZeroSize is the zero-area size.
func ZeroSize() Size[float64] { return Size[float64]{} }

// UndefinedSize has both axes undefined.
func UndefinedSize() Size[float64] {
	return Size[float64]{Width: Undefined, Height: Undefined}
}

// SizeOr fills each undefined component of s from fallback.
func SizeOr(s, fallback Size[float64]) Size[float64] {
	return Size[float64]{Width: Or(s.Width, fallback.Width), Height: Or(s.Height, fallback.Height)}
}

// SizeMaybeMin applies MaybeMin per axis.
func SizeMaybeMin(s, bound Size[float64]) Size[float64] {
	return Size[float64]{Width: MaybeMin(s.Width, bound.Width), Height: MaybeMin(s.Height, bound.Height)}
}

// SizeMaybeMax applies MaybeMax per axis.
func SizeMaybeMax(s, bound Size[float64]) Size[float64] {
	return Size[float64]{Width: MaybeMax(s.Width, bound.Width), Height: MaybeMax(s.Height, bound.Height)}
}

// SizeMaybeClamp applies MaybeClamp per axis.
func SizeMaybeClamp(s, lo, hi Size[float64]) Size[float64] {
	return Size[float64]{
		Width:  MaybeClamp(s.Width, lo.Width, hi.Width),
		Height: MaybeClamp(s.Height, lo.Height, hi.Height),
	}
}

// SizeMaybeAdd applies MaybeAdd per axis.
func SizeMaybeAdd(s, d Size[float64]) Size[float64] {
	return Size[float64]{Width: MaybeAdd(s.Width, d.Width), Height: MaybeAdd(s.Height, d.Height)}
}

// SizeMaybeSub applies MaybeSub per axis.
func SizeMaybeSub(s, d Size[float64]) Size[float64] {
	return Size[float64]{Width: MaybeSub(s.Width, d.Width), Height: MaybeSub(s.Height, d.Height)}
}

// SizeEqual compares two float sizes with FloatsEqual.
func SizeEqual(a, b Size[float64]) bool {
	return FloatsEqual(a.Width, b.Width) && FloatsEqual(a.Height, b.Height)
}
