package compute

import (
	"math"

	"github.com/grindlemire/go-layout/internal/compute/align"
	"github.com/grindlemire/go-layout/internal/geom"
	"github.com/grindlemire/go-layout/internal/style"
	"github.com/grindlemire/go-layout/internal/tree"
)

// flexItem holds intermediate calculation state for a child.
// This is allocated per layout call, not stored on nodes.
type flexItem struct {
	node  tree.NodeID
	order uint32

	// Resolved styles, undefined where unset.
	size    geom.Size[float64]
	minSize geom.Size[float64]
	maxSize geom.Size[float64]

	margin       geom.Edges
	marginIsAuto geom.Rect[bool]
	padding      geom.Edges
	border       geom.Edges
	alignSelf    style.Align
	flexGrow     float64
	flexShrink   float64

	flexBasis               float64
	innerFlexBasis          float64
	resolvedMinimumMainSize float64
	violation               float64
	frozen                  bool

	hypotheticalInnerSize geom.Size[float64]
	hypotheticalOuterSize geom.Size[float64]
	targetSize            geom.Size[float64]
	outerTargetSize       geom.Size[float64]

	offsetMain  float64
	offsetCross float64
}

// flexLine is a run of items laid out along the main axis. items aliases
// the backing array of the container's item slice.
type flexLine struct {
	items       []flexItem
	crossSize   float64
	offsetCross float64
}

// flexConstants are the container values shared by every step.
type flexConstants struct {
	dir           style.FlexDirection
	isRow         bool
	isWrap        bool
	isWrapReverse bool

	minSize geom.Size[float64]
	maxSize geom.Size[float64]
	margin  geom.Edges
	inset   geom.Edges // padding + border
	gap     geom.Size[float64]

	alignItems     style.Align
	alignContent   style.Justify
	justifyContent style.Justify

	// Outer and inner sizes as known so far, undefined where not yet known.
	nodeOuterSize geom.Size[float64]
	nodeInnerSize geom.Size[float64]

	// Final container sizes, filled in as the algorithm resolves them.
	containerSize      geom.Size[float64]
	innerContainerSize geom.Size[float64]
}

// computeFlexbox lays out a flex container.
func (e *Engine) computeFlexbox(node tree.NodeID, known, parentSize geom.Size[float64], available geom.Size[geom.AvailableSpace], runMode tree.RunMode) geom.Size[float64] {
	s := e.tree.Style(node)

	minSize := style.ApplyAspectRatio(style.ResolveSize(s.MinSize, parentSize), s.AspectRatio)
	maxSize := style.ApplyAspectRatio(style.ResolveSize(s.MaxSize, parentSize), s.AspectRatio)
	styleSize := geom.SizeMaybeClamp(style.ApplyAspectRatio(style.ResolveSize(s.Size, parentSize), s.AspectRatio), minSize, maxSize)

	// A max at or below the min pins the axis.
	pinned := geom.UndefinedSize()
	if geom.IsDefined(minSize.Width) && geom.IsDefined(maxSize.Width) && maxSize.Width <= minSize.Width {
		pinned.Width = minSize.Width
	}
	if geom.IsDefined(minSize.Height) && geom.IsDefined(maxSize.Height) && maxSize.Height <= minSize.Height {
		pinned.Height = minSize.Height
	}
	known = geom.SizeOr(geom.SizeOr(known, pinned), styleSize)

	if runMode == tree.ComputeSize && geom.IsDefined(known.Width) && geom.IsDefined(known.Height) {
		return known
	}
	return e.flexLayout(node, s, known, parentSize, available, runMode)
}

func (e *Engine) flexLayout(node tree.NodeID, s *style.Style, known, parentSize geom.Size[float64], available geom.Size[geom.AvailableSpace], runMode tree.RunMode) geom.Size[float64] {
	c := newFlexConstants(s, known, parentSize)

	// Generate flex items, hiding display:none children.
	items := e.generateFlexItems(node, &c)

	// Available main and cross space for the items.
	inner := determineAvailableSpace(known, available, &c)

	// Flex base size and hypothetical main size of each item.
	e.determineFlexBaseSize(&c, inner, items)

	// Collect items into lines.
	lines := collectFlexLines(&c, inner, items)

	// Container main size, then re-resolve percentage gaps against it.
	if main := c.nodeInnerSize.Main(c.isRow); geom.IsDefined(main) {
		c.innerContainerSize = c.innerContainerSize.WithMain(c.isRow, main)
		c.containerSize = c.containerSize.WithMain(c.isRow, main+geom.MainSum(c.inset, c.isRow))
	} else {
		e.determineContainerMainSize(&c, inner.Main(c.isRow), lines)
		c.nodeInnerSize = c.nodeInnerSize.WithMain(c.isRow, c.innerContainerSize.Main(c.isRow))
		c.nodeOuterSize = c.nodeOuterSize.WithMain(c.isRow, c.containerSize.Main(c.isRow))
		gap := s.Gap.Main(c.isRow).ResolveOrZero(c.innerContainerSize.Main(c.isRow))
		c.gap = c.gap.WithMain(c.isRow, gap)
	}

	// Resolve flexible lengths.
	for i := range lines {
		resolveFlexibleLengths(&lines[i], &c)
	}

	// Hypothetical cross size of each item.
	for i := range lines {
		e.determineHypotheticalCrossSize(&lines[i], &c, inner)
	}

	// Cross size of each line, then align-content: stretch.
	calculateCrossSize(lines, known, &c)
	handleAlignContentStretch(lines, known, &c)

	// Used cross size of each item.
	e.determineUsedCrossSize(lines, &c)

	// Main axis: auto margins or justify-content.
	distributeRemainingFreeSpace(lines, &c)

	// Cross axis: auto margins or align-self.
	resolveCrossAxisAutoMargins(lines, &c)

	// Container cross size.
	totalLineCross := determineContainerCrossSize(lines, known, &c)

	if runMode == tree.ComputeSize {
		return c.containerSize
	}

	alignFlexLines(lines, &c, totalLineCross)
	e.finalFlexLayoutPass(lines, &c)

	return c.containerSize
}

func newFlexConstants(s *style.Style, known, parentSize geom.Size[float64]) flexConstants {
	padding := style.ResolveEdges(s.Padding, parentSize.Width)
	border := style.ResolveEdges(s.Border, parentSize.Width)
	inset := geom.AddEdges(padding, border)
	innerSize := geom.SizeMaybeSub(known, geom.SumAxes(inset))

	alignItems := s.AlignItems
	if alignItems == style.AlignAuto {
		alignItems = style.AlignStretch
	}
	alignContent := s.AlignContent
	if alignContent == style.JustifyNormal {
		alignContent = style.JustifyStretch
	}
	justifyContent := s.JustifyContent
	if justifyContent == style.JustifyNormal {
		justifyContent = style.JustifyFlexStart
	}

	return flexConstants{
		dir:            s.FlexDirection,
		isRow:          s.FlexDirection.IsRow(),
		isWrap:         s.FlexWrap != style.NoWrap,
		isWrapReverse:  s.FlexWrap == style.WrapReverse,
		minSize:        style.ApplyAspectRatio(style.ResolveSize(s.MinSize, parentSize), s.AspectRatio),
		maxSize:        style.ApplyAspectRatio(style.ResolveSize(s.MaxSize, parentSize), s.AspectRatio),
		margin:         style.ResolveEdges(s.Margin, parentSize.Width),
		inset:          inset,
		gap:            style.ResolveGap(s.Gap, geom.SizeOr(innerSize, geom.ZeroSize())),
		alignItems:     alignItems,
		alignContent:   alignContent,
		justifyContent: justifyContent,
		nodeOuterSize:  known,
		nodeInnerSize:  innerSize,
	}
}

func (e *Engine) generateFlexItems(node tree.NodeID, c *flexConstants) []flexItem {
	children := e.tree.Children(node)
	items := make([]flexItem, 0, len(children))
	for i, child := range children {
		cs := e.tree.Style(child)
		if cs.Display == style.DisplayNone {
			e.tree.SetUnroundedLayout(child, tree.Layout{Order: uint32(i)})
			e.tree.SetDirty(child, false)
			e.hideChildren(child)
			continue
		}

		alignSelf := cs.AlignSelf
		if alignSelf == style.AlignAuto {
			alignSelf = c.alignItems
		}
		items = append(items, flexItem{
			node:         child,
			order:        uint32(i),
			size:         style.ApplyAspectRatio(style.ResolveSize(cs.Size, c.nodeInnerSize), cs.AspectRatio),
			minSize:      style.ApplyAspectRatio(style.ResolveSize(cs.MinSize, c.nodeInnerSize), cs.AspectRatio),
			maxSize:      style.ApplyAspectRatio(style.ResolveSize(cs.MaxSize, c.nodeInnerSize), cs.AspectRatio),
			margin:       style.ResolveEdges(cs.Margin, c.nodeInnerSize.Width),
			marginIsAuto: cs.MarginIsAuto(),
			padding:      style.ResolveEdges(cs.Padding, c.nodeInnerSize.Width),
			border:       style.ResolveEdges(cs.Border, c.nodeInnerSize.Width),
			alignSelf:    alignSelf,
			flexGrow:     cs.FlexGrow,
			flexShrink:   cs.FlexShrink,
		})
	}
	return items
}

func determineAvailableSpace(known geom.Size[float64], outer geom.Size[geom.AvailableSpace], c *flexConstants) geom.Size[geom.AvailableSpace] {
	width := outer.Width.MaybeSub(geom.HorizontalSum(c.margin)).MaybeSub(geom.HorizontalSum(c.inset))
	if geom.IsDefined(known.Width) {
		width = geom.Definite(known.Width - geom.HorizontalSum(c.inset))
	}
	height := outer.Height.MaybeSub(geom.VerticalSum(c.margin)).MaybeSub(geom.VerticalSum(c.inset))
	if geom.IsDefined(known.Height) {
		height = geom.Definite(known.Height - geom.VerticalSum(c.inset))
	}
	return geom.Size[geom.AvailableSpace]{Width: width, Height: height}
}

// determineFlexBaseSize resolves each item's flex basis, its hypothetical
// main size and its automatic minimum size.
func (e *Engine) determineFlexBaseSize(c *flexConstants, available geom.Size[geom.AvailableSpace], items []flexItem) {
	isRow := c.isRow
	for i := range items {
		child := &items[i]
		cs := e.tree.Style(child.node)

		crossParent := c.nodeInnerSize.Cross(isRow)
		childParentSize := geom.FromMainCross(isRow, geom.Undefined, crossParent)

		crossAvailable := available.Cross(isRow)
		if crossAvailable.IsDefinite() && geom.IsDefined(crossParent) {
			crossAvailable = geom.Definite(crossParent)
		}
		crossAvailable = crossAvailable.MaybeClamp(
			geom.MaybeAdd(child.minSize.Cross(isRow), geom.CrossSum(child.margin, isRow)),
			geom.MaybeAdd(child.maxSize.Cross(isRow), geom.CrossSum(child.margin, isRow)),
		)

		childKnown := child.size.WithMain(isRow, geom.Undefined)
		if child.alignSelf == style.AlignStretch && geom.IsUndefined(childKnown.Cross(isRow)) {
			childKnown = childKnown.WithCross(isRow, geom.MaybeSub(crossAvailable.AsSize(), geom.CrossSum(child.margin, isRow)))
		}

		child.flexBasis = e.flexBasis(child, cs, c, available, childKnown, childParentSize, crossAvailable)

		// Floor the basis at padding + border so the inner basis is never negative.
		pbMain := geom.MainSum(child.padding, isRow) + geom.MainSum(child.border, isRow)
		child.flexBasis = max(child.flexBasis, pbMain)
		child.innerFlexBasis = child.flexBasis - pbMain

		pbAxes := geom.SumAxes(geom.AddEdges(child.padding, child.border))
		hypotheticalMin := geom.MaybeMax(child.minSize.Main(isRow), pbAxes.Main(isRow))
		hypotheticalInner := geom.MaybeClamp(child.flexBasis, hypotheticalMin, child.maxSize.Main(isRow))
		child.hypotheticalInnerSize = child.hypotheticalInnerSize.WithMain(isRow, hypotheticalInner)
		child.hypotheticalOuterSize = child.hypotheticalOuterSize.WithMain(isRow, hypotheticalInner+geom.MainSum(child.margin, isRow))

		// Automatic minimum size: the content-based minimum, capped by any
		// specified size and max size.
		if minMain := child.minSize.Main(isRow); geom.IsDefined(minMain) {
			child.resolvedMinimumMainSize = minMain
			continue
		}
		minContent := e.computeNode(child.node, childKnown, childParentSize,
			geom.FromMainCross(isRow, geom.MinContent(), crossAvailable), tree.ComputeSize, tree.ContentSize)
		minContent = geom.SizeMaybeMin(geom.SizeMaybeMin(minContent, child.size), child.maxSize)
		child.resolvedMinimumMainSize = max(minContent.Main(isRow), pbAxes.Main(isRow))
	}
}

// flexBasis applies the basis fallback chain: a definite flex-basis or main
// size (aspect ratio already folded in), else the item's content size under
// the container's sizing constraint, else its max-content size.
func (e *Engine) flexBasis(child *flexItem, cs *style.Style, c *flexConstants, available geom.Size[geom.AvailableSpace], childKnown, childParentSize geom.Size[float64], crossAvailable geom.AvailableSpace) float64 {
	isRow := c.isRow
	if basis := cs.FlexBasis.Resolve(c.nodeInnerSize.Main(isRow)); geom.IsDefined(basis) {
		return basis
	}
	if main := child.size.Main(isRow); geom.IsDefined(main) {
		return main
	}

	mainAvailable := geom.MaxContent()
	if available.Main(isRow).Kind == geom.KindMinContent {
		mainAvailable = geom.MinContent()
	}
	measured := e.computeNode(child.node, childKnown, childParentSize,
		geom.FromMainCross(isRow, mainAvailable, crossAvailable), tree.ComputeSize, tree.ContentSize)
	basis := measured.Main(isRow)

	// Content that could not be measured under an unbounded main axis
	// falls back to the space actually offered.
	if !geom.IsDefined(basis) || math.IsInf(basis, 0) {
		measured = e.computeNode(child.node, childKnown, childParentSize,
			geom.FromMainCross(isRow, available.Main(isRow), crossAvailable), tree.ComputeSize, tree.ContentSize)
		basis = geom.Or(measured.Main(isRow), 0)
	}
	return basis
}

func collectFlexLines(c *flexConstants, available geom.Size[geom.AvailableSpace], items []flexItem) []flexLine {
	if !c.isWrap {
		return []flexLine{{items: items}}
	}

	mainSpace := available.Main(c.isRow)
	switch mainSpace.Kind {
	case geom.KindMaxContent:
		// Nothing forces a break under max-content.
		return []flexLine{{items: items}}
	case geom.KindMinContent:
		// Every break opportunity is taken.
		lines := make([]flexLine, 0, len(items))
		for i := range items {
			lines = append(lines, flexLine{items: items[i : i+1]})
		}
		return lines
	}

	var lines []flexLine
	gap := c.gap.Main(c.isRow)
	for len(items) > 0 {
		lineLength := 0.0
		end := len(items)
		for i := range items {
			if i > 0 {
				lineLength += gap
			}
			lineLength += items[i].hypotheticalOuterSize.Main(c.isRow)
			// An empty line always takes its first item.
			if lineLength > mainSpace.Value && i != 0 {
				end = i
				break
			}
		}
		lines = append(lines, flexLine{items: items[:end]})
		items = items[end:]
	}
	return lines
}

func sumGaps(gap float64, count int) float64 {
	if count <= 1 {
		return 0
	}
	return gap * float64(count-1)
}

// determineContainerMainSize sizes an auto main axis: the longest line
// under a definite constraint, otherwise the largest sum of item content
// contributions.
func (e *Engine) determineContainerMainSize(c *flexConstants, mainSpace geom.AvailableSpace, lines []flexLine) {
	isRow := c.isRow
	mainInset := geom.MainSum(c.inset, isRow)
	gap := c.gap.Main(isRow)

	lineLength := func(line *flexLine) float64 {
		total := sumGaps(gap, len(line.items))
		for i := range line.items {
			item := &line.items[i]
			pb := geom.MainSum(item.padding, isRow) + geom.MainSum(item.border, isRow)
			total += max(item.hypotheticalOuterSize.Main(isRow), pb)
		}
		return total
	}

	var outer float64
	switch {
	case mainSpace.IsDefinite():
		longest := 0.0
		for i := range lines {
			longest = max(longest, lineLength(&lines[i]))
		}
		outer = longest + mainInset
		if len(lines) > 1 {
			outer = max(outer, mainSpace.Value)
		}
	case mainSpace.Kind == geom.KindMinContent && c.isWrap:
		longest := 0.0
		for i := range lines {
			longest = max(longest, lineLength(&lines[i]))
		}
		outer = longest + mainInset
	default:
		longest := 0.0
		for i := range lines {
			line := &lines[i]
			total := sumGaps(gap, len(line.items))
			for j := range line.items {
				total += e.contentContribution(&line.items[j], c, mainSpace)
			}
			longest = max(longest, total)
		}
		outer = longest + mainInset
	}

	outer = max(geom.MaybeClamp(outer, c.minSize.Main(isRow), c.maxSize.Main(isRow)), mainInset)
	innerMain := max(outer-mainInset, 0)
	c.containerSize = c.containerSize.WithMain(isRow, outer)
	c.innerContainerSize = c.innerContainerSize.WithMain(isRow, innerMain)
	c.nodeInnerSize = c.nodeInnerSize.WithMain(isRow, innerMain)
}

// contentContribution is an item's outer min- or max-content contribution
// to its container's main size, clamped by its used min and max main sizes.
func (e *Engine) contentContribution(item *flexItem, c *flexConstants, mainSpace geom.AvailableSpace) float64 {
	isRow := c.isRow
	styleMin := item.minSize.Main(isRow)
	stylePreferred := item.size.Main(isRow)
	styleMax := item.maxSize.Main(isRow)
	margin := geom.MainSum(item.margin, isRow)
	pb := geom.MainSum(item.padding, isRow) + geom.MainSum(item.border, isRow)

	// An item that cannot shrink never contributes less than its basis, one
	// that cannot grow never contributes more.
	clampingBasis := geom.MaybeMax(item.flexBasis, stylePreferred)
	minMain := item.resolvedMinimumMainSize
	if item.flexShrink == 0 {
		minMain = max(minMain, clampingBasis)
	}
	maxMain := geom.Or(styleMax, math.Inf(1))
	if item.flexGrow == 0 {
		maxMain = min(maxMain, clampingBasis)
	}

	if geom.IsDefined(stylePreferred) && (maxMain <= minMain || maxMain <= stylePreferred) {
		return max(min(stylePreferred, maxMain), minMain) + margin
	}
	if maxMain <= minMain {
		return minMain + margin
	}

	content := e.computeNode(item.node, geom.UndefinedSize(), c.nodeInnerSize,
		geom.Size[geom.AvailableSpace]{Width: mainSpace, Height: mainSpace}, tree.ComputeSize, tree.InherentSize).Main(isRow)
	if !isRow {
		content = max(content, item.flexBasis)
	}
	content = max(geom.MaybeClamp(content, styleMin, styleMax), pb)
	return max(min(content, maxMain), minMain) + margin
}

// resolveFlexibleLengths grows or shrinks the items of one line by
// iterative freezing until every item is frozen.
func resolveFlexibleLengths(line *flexLine, c *flexConstants) {
	isRow := c.isRow
	innerMain := c.nodeInnerSize.Main(isRow)
	totalGap := sumGaps(c.gap.Main(isRow), len(line.items))

	// Grow when the hypothetical sizes leave room, otherwise shrink.
	totalHypothetical := totalGap
	for i := range line.items {
		totalHypothetical += line.items[i].hypotheticalOuterSize.Main(isRow)
	}
	growing := totalHypothetical < geom.Or(innerMain, 0)

	// Freeze inflexible items at their hypothetical size.
	for i := range line.items {
		child := &line.items[i]
		hypothetical := child.hypotheticalInnerSize.Main(isRow)
		child.targetSize = child.targetSize.WithMain(isRow, hypothetical)
		child.frozen = false

		factor := child.flexShrink
		if growing {
			factor = child.flexGrow
		}
		if factor == 0 ||
			(growing && child.flexBasis > hypothetical) ||
			(!growing && child.flexBasis < hypothetical) {
			child.frozen = true
			child.outerTargetSize = child.outerTargetSize.WithMain(isRow, hypothetical+geom.MainSum(child.margin, isRow))
		}
	}

	// Frozen items count at their outer target size, others at their outer basis.
	usedSpace := func() float64 {
		used := totalGap
		for i := range line.items {
			child := &line.items[i]
			if child.frozen {
				used += child.outerTargetSize.Main(isRow)
			} else {
				used += child.flexBasis + geom.MainSum(child.margin, isRow)
			}
		}
		return used
	}
	initialFreeSpace := geom.Or(geom.MaybeSub(innerMain, usedSpace()), 0)

	for {
		unfrozen := 0
		sumGrow, sumShrink := 0.0, 0.0
		for i := range line.items {
			if !line.items[i].frozen {
				unfrozen++
				sumGrow += line.items[i].flexGrow
				sumShrink += line.items[i].flexShrink
			}
		}
		if unfrozen == 0 {
			break
		}

		// Remaining free space, scaled down when the factors sum below one.
		freeSpace := geom.Or(geom.MaybeSub(innerMain, usedSpace()), totalHypothetical-usedSpace())
		sumFactors := sumShrink
		if growing {
			sumFactors = sumGrow
		}
		if sumFactors < 1 {
			if scaled := initialFreeSpace * sumFactors; math.Abs(scaled) < math.Abs(freeSpace) {
				freeSpace = scaled
			}
		}

		if freeSpace != 0 && !math.IsInf(freeSpace, 0) && !math.IsNaN(freeSpace) {
			switch {
			case growing && sumGrow > 0:
				for i := range line.items {
					child := &line.items[i]
					if !child.frozen {
						child.targetSize = child.targetSize.WithMain(isRow, child.flexBasis+freeSpace*(child.flexGrow/sumGrow))
					}
				}
			case !growing && sumShrink > 0:
				sumScaled := 0.0
				for i := range line.items {
					if child := &line.items[i]; !child.frozen {
						sumScaled += child.innerFlexBasis * child.flexShrink
					}
				}
				if sumScaled > 0 {
					for i := range line.items {
						child := &line.items[i]
						if !child.frozen {
							ratio := child.innerFlexBasis * child.flexShrink / sumScaled
							child.targetSize = child.targetSize.WithMain(isRow, child.flexBasis+freeSpace*ratio)
						}
					}
				}
			}
		}

		// Clamp to min/max and record each item's violation.
		totalViolation := 0.0
		for i := range line.items {
			child := &line.items[i]
			if child.frozen {
				continue
			}
			target := child.targetSize.Main(isRow)
			clamped := max(geom.MaybeClamp(target, child.resolvedMinimumMainSize, child.maxSize.Main(isRow)), 0)
			child.violation = clamped - target
			child.targetSize = child.targetSize.WithMain(isRow, clamped)
			child.outerTargetSize = child.outerTargetSize.WithMain(isRow, clamped+geom.MainSum(child.margin, isRow))
			totalViolation += child.violation
		}

		// Freeze the items whose violation matches the aggregate direction.
		for i := range line.items {
			child := &line.items[i]
			if child.frozen {
				continue
			}
			switch {
			case totalViolation > 0:
				child.frozen = child.violation > 0
			case totalViolation < 0:
				child.frozen = child.violation < 0
			default:
				child.frozen = true
			}
		}
	}
}

func (e *Engine) determineHypotheticalCrossSize(line *flexLine, c *flexConstants, available geom.Size[geom.AvailableSpace]) {
	isRow := c.isRow
	for i := range line.items {
		child := &line.items[i]
		pbCross := geom.CrossSum(child.padding, isRow) + geom.CrossSum(child.border, isRow)
		minCross := child.minSize.Cross(isRow)
		maxCross := child.maxSize.Cross(isRow)

		childCross := geom.MaybeMax(geom.MaybeClamp(child.size.Cross(isRow), minCross, maxCross), pbCross)
		availableCross := available.Cross(isRow).
			MaybeSub(geom.CrossSum(child.margin, isRow)).
			MaybeClamp(minCross, maxCross).
			MaybeMax(pbCross)

		innerCross := childCross
		if geom.IsUndefined(innerCross) {
			knownMain := child.targetSize.Main(isRow)
			measured := e.computeNode(child.node,
				geom.FromMainCross(isRow, knownMain, childCross),
				c.nodeInnerSize,
				geom.FromMainCross(isRow, geom.FromSize(c.containerSize.Main(isRow), geom.MaxContent()), availableCross),
				tree.ComputeSize, tree.ContentSize)
			innerCross = max(geom.MaybeClamp(measured.Cross(isRow), minCross, maxCross), pbCross)
		}

		child.hypotheticalInnerSize = child.hypotheticalInnerSize.WithCross(isRow, innerCross)
		child.hypotheticalOuterSize = child.hypotheticalOuterSize.WithCross(isRow, innerCross+geom.CrossSum(child.margin, isRow))
	}
}

func calculateCrossSize(lines []flexLine, known geom.Size[float64], c *flexConstants) {
	// A single-line container with a definite cross size gives it to its line.
	if !c.isWrap && len(lines) == 1 && geom.IsDefined(known.Cross(c.isRow)) {
		lines[0].crossSize = max(known.Cross(c.isRow)-geom.CrossSum(c.inset, c.isRow), 0)
		return
	}
	for i := range lines {
		line := &lines[i]
		line.crossSize = 0
		for j := range line.items {
			line.crossSize = max(line.crossSize, line.items[j].hypotheticalOuterSize.Cross(c.isRow))
		}
	}
}

func handleAlignContentStretch(lines []flexLine, known geom.Size[float64], c *flexConstants) {
	if c.alignContent != style.JustifyStretch || len(lines) == 0 {
		return
	}
	isRow := c.isRow
	minCross := c.minSize.Cross(isRow)
	maxCross := c.maxSize.Cross(isRow)
	target := geom.MaybeSub(geom.MaybeClamp(geom.Or(known.Cross(isRow), minCross), minCross, maxCross), geom.CrossSum(c.inset, isRow))
	target = geom.Or(geom.MaybeMax(target, 0), 0)

	total := sumGaps(c.gap.Cross(isRow), len(lines))
	for i := range lines {
		total += lines[i].crossSize
	}
	if total < target {
		extra := (target - total) / float64(len(lines))
		for i := range lines {
			lines[i].crossSize += extra
		}
	}
}

func (e *Engine) determineUsedCrossSize(lines []flexLine, c *flexConstants) {
	isRow := c.isRow
	for i := range lines {
		line := &lines[i]
		for j := range line.items {
			child := &line.items[j]
			cs := e.tree.Style(child.node)

			cross := child.hypotheticalInnerSize.Cross(isRow)
			if child.alignSelf == style.AlignStretch &&
				!crossStartAuto(child.marginIsAuto, isRow) &&
				!crossEndAuto(child.marginIsAuto, isRow) &&
				cs.Size.Cross(isRow).IsAuto() {
				// Stretching ignores the aspect ratio transfer on max size.
				maxSize := style.ResolveSize(cs.MaxSize, c.nodeInnerSize)
				cross = geom.MaybeClamp(line.crossSize-geom.CrossSum(child.margin, isRow), child.minSize.Cross(isRow), maxSize.Cross(isRow))
			}
			child.targetSize = child.targetSize.WithCross(isRow, cross)
			child.outerTargetSize = child.outerTargetSize.WithCross(isRow, cross+geom.CrossSum(child.margin, isRow))
		}
	}
}

func crossStartAuto(r geom.Rect[bool], isRow bool) bool {
	if isRow {
		return r.Top
	}
	return r.Left
}

func crossEndAuto(r geom.Rect[bool], isRow bool) bool {
	if isRow {
		return r.Bottom
	}
	return r.Right
}

func mainStartAuto(r geom.Rect[bool], isRow bool) bool {
	if isRow {
		return r.Left
	}
	return r.Top
}

func mainEndAuto(r geom.Rect[bool], isRow bool) bool {
	if isRow {
		return r.Right
	}
	return r.Bottom
}

func distributeRemainingFreeSpace(lines []flexLine, c *flexConstants) {
	isRow := c.isRow
	for i := range lines {
		line := &lines[i]
		used := sumGaps(c.gap.Main(isRow), len(line.items))
		autoMargins := 0
		for j := range line.items {
			child := &line.items[j]
			used += child.outerTargetSize.Main(isRow)
			if mainStartAuto(child.marginIsAuto, isRow) {
				autoMargins++
			}
			if mainEndAuto(child.marginIsAuto, isRow) {
				autoMargins++
			}
		}
		freeSpace := c.innerContainerSize.Main(isRow) - used

		if freeSpace > 0 && autoMargins > 0 {
			share := freeSpace / float64(autoMargins)
			for j := range line.items {
				child := &line.items[j]
				if mainStartAuto(child.marginIsAuto, isRow) {
					if isRow {
						child.margin.Left = share
					} else {
						child.margin.Top = share
					}
				}
				if mainEndAuto(child.marginIsAuto, isRow) {
					if isRow {
						child.margin.Right = share
					} else {
						child.margin.Bottom = share
					}
				}
			}
			continue
		}

		n := len(line.items)
		reverse := c.dir.IsReverse()
		for j := range line.items {
			idx := j
			if reverse {
				idx = n - 1 - j
			}
			line.items[idx].offsetMain = align.ContentOffset(freeSpace, n, c.gap.Main(isRow), c.justifyContent, reverse, j == 0)
		}
	}
}

func resolveCrossAxisAutoMargins(lines []flexLine, c *flexConstants) {
	isRow := c.isRow
	for i := range lines {
		line := &lines[i]
		for j := range line.items {
			child := &line.items[j]
			freeSpace := line.crossSize - child.outerTargetSize.Cross(isRow)
			startAuto := crossStartAuto(child.marginIsAuto, isRow)
			endAuto := crossEndAuto(child.marginIsAuto, isRow)

			switch {
			case startAuto && endAuto:
				if isRow {
					child.margin.Top, child.margin.Bottom = freeSpace/2, freeSpace/2
				} else {
					child.margin.Left, child.margin.Right = freeSpace/2, freeSpace/2
				}
			case startAuto:
				if isRow {
					child.margin.Top = freeSpace
				} else {
					child.margin.Left = freeSpace
				}
			case endAuto:
				if isRow {
					child.margin.Bottom = freeSpace
				} else {
					child.margin.Right = freeSpace
				}
			default:
				child.offsetCross = align.SelfOffset(child.alignSelf, freeSpace, c.isWrapReverse)
			}
		}
	}
}

func determineContainerCrossSize(lines []flexLine, known geom.Size[float64], c *flexConstants) float64 {
	isRow := c.isRow
	totalLineCross := 0.0
	for i := range lines {
		totalLineCross += lines[i].crossSize
	}
	insetCross := geom.CrossSum(c.inset, isRow)
	outer := geom.Or(known.Cross(isRow), totalLineCross+sumGaps(c.gap.Cross(isRow), len(lines))+insetCross)
	outer = max(geom.MaybeClamp(outer, c.minSize.Cross(isRow), c.maxSize.Cross(isRow)), insetCross)

	c.containerSize = c.containerSize.WithCross(isRow, outer)
	c.innerContainerSize = c.innerContainerSize.WithCross(isRow, max(outer-insetCross, 0))
	return totalLineCross
}

func alignFlexLines(lines []flexLine, c *flexConstants, totalLineCross float64) {
	n := len(lines)
	gap := c.gap.Cross(c.isRow)
	freeSpace := c.innerContainerSize.Cross(c.isRow) - totalLineCross - sumGaps(gap, n)
	for j := range lines {
		idx := j
		if c.isWrapReverse {
			idx = n - 1 - j
		}
		lines[idx].offsetCross = align.ContentOffset(freeSpace, n, gap, c.alignContent, c.isWrapReverse, j == 0)
	}
}

// finalFlexLayoutPass lays out every item at its exact size and writes its
// position, accumulating the main offset per line and the cross offset
// across lines.
func (e *Engine) finalFlexLayoutPass(lines []flexLine, c *flexConstants) {
	isRow := c.isRow
	totalCross := geom.CrossStart(c.inset, isRow)

	layoutLine := func(line *flexLine) {
		totalMain := geom.MainStart(c.inset, isRow)
		place := func(item *flexItem) {
			size := e.computeNode(item.node, item.targetSize, c.nodeInnerSize,
				geom.AvailableFromSize(c.containerSize, geom.Size[geom.AvailableSpace]{Width: geom.MaxContent(), Height: geom.MaxContent()}),
				tree.PerformLayout, tree.ContentSize)

			offsetMain := totalMain + item.offsetMain + geom.MainStart(item.margin, isRow)
			offsetCross := totalCross + item.offsetCross + line.offsetCross + geom.CrossStart(item.margin, isRow)
			loc := geom.Point[float64]{X: offsetCross, Y: offsetMain}
			if isRow {
				loc = geom.Point[float64]{X: offsetMain, Y: offsetCross}
			}
			e.tree.SetUnroundedLayout(item.node, tree.Layout{Order: item.order, Size: size, Location: loc})

			totalMain += item.offsetMain + geom.MainSum(item.margin, isRow) + size.Main(isRow)
		}

		if c.dir.IsReverse() {
			for i := len(line.items) - 1; i >= 0; i-- {
				place(&line.items[i])
			}
		} else {
			for i := range line.items {
				place(&line.items[i])
			}
		}
		totalCross += line.offsetCross + line.crossSize
	}

	if c.isWrapReverse {
		for i := len(lines) - 1; i >= 0; i-- {
			layoutLine(&lines[i])
		}
	} else {
		for i := range lines {
			layoutLine(&lines[i])
		}
	}
}
