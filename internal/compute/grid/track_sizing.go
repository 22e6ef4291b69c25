package grid

import (
	"cmp"
	"math"
	"slices"

	"github.com/grindlemire/go-layout/internal/geom"
	"github.com/grindlemire/go-layout/internal/style"
	"github.com/grindlemire/go-layout/internal/tree"
)

// distributionThreshold stops space distribution once the remainder is
// lost in float noise.
const distributionThreshold = 0.000001

// sizer runs the track sizing algorithm for one axis.
type sizer struct {
	t    Tree
	axis geom.AbsoluteAxis

	tracks []track // axis being sized
	other  []track // the other axis, used to estimate item sizes
	items  []item

	inner     geom.Size[float64] // container content box, possibly undefined
	available geom.AvailableSpace
	minSize   float64 // container content-box min size in this axis
	maxSize   float64

	// alignment is the content alignment of this axis; auto tracks only
	// stretch under normal or stretch.
	alignment style.Justify

	// estimate returns a track's size for sizing items in the other axis.
	estimate func(t *track, inner float64) float64
}

// run sizes s.tracks, leaving the result in each track's baseSize.
func (s *sizer) run() {
	s.initializeTrackSizes()
	if len(s.tracks) == 1 {
		return
	}

	settled := true
	for i := range s.tracks {
		if s.tracks[i].baseSize != s.tracks[i].growthLimit {
			settled = false
			break
		}
	}
	if settled {
		return
	}

	s.resolveIntrinsicTrackSizes()

	// Free space for maximizing and fr expansion is the available grid
	// space, which is the content box when the container size is known.
	s.maximizeTracks(s.available)
	s.expandFlexibleTracks(s.available)

	// Auto tracks only stretch into space the container's own size creates.
	stretch := geom.Definite(s.axisInner())
	if geom.IsUndefined(s.axisInner()) {
		stretch = geom.MaxContent()
		if s.available.Kind == geom.KindMinContent {
			stretch = geom.MinContent()
		}
	}
	if s.alignment == style.JustifyNormal || s.alignment == style.JustifyStretch {
		s.stretchAutoTracks(stretch)
	}
}

func (s *sizer) axisInner() float64 { return s.inner.Get(s.axis) }

// initializeTrackSizes gives fixed minimums their length as base size and
// fixed maximums their length as growth limit. Everything else starts at
// zero and infinity respectively.
func (s *sizer) initializeTrackSizes() {
	inner := s.axisInner()
	last := len(s.tracks) - 1
	for i := range s.tracks {
		tr := &s.tracks[i]
		if i == 0 || i == last {
			tr.baseSize, tr.growthLimit = 0, 0
			continue
		}
		tr.baseSize = geom.Or(tr.min.DefiniteValue(inner), 0)
		tr.growthLimit = geom.Or(tr.max.DefiniteValue(inner), math.Inf(1))
		if tr.growthLimit < tr.baseSize {
			tr.growthLimit = tr.baseSize
		}
	}
}

// otherAxisSize estimates the item's size in the other axis from the tracks
// it spans there.
func (s *sizer) otherAxisSize(it *item) float64 {
	other := s.axis.Other()
	start, end := it.trackRange(other)
	sum := 0.0
	for i := start; i < end; i++ {
		v := s.estimate(&s.other[i], s.inner.Get(other))
		if geom.IsUndefined(v) {
			return geom.Undefined
		}
		sum += v
	}
	return sum
}

func (s *sizer) refresh(it *item) float64 {
	o := s.otherAxisSize(it)
	same := o == it.cachedKnown || (geom.IsUndefined(o) && geom.IsUndefined(it.cachedKnown))
	if !same {
		it.resetCache()
		it.cachedKnown = o
	}
	return o
}

// contribution measures the item under a content constraint in this axis,
// margins included.
func (s *sizer) contribution(it *item, kind geom.AvailableSpaceKind) float64 {
	otherSize := s.refresh(it)
	cached := &it.maxContent
	if kind == geom.KindMinContent {
		cached = &it.minContent
	}
	if geom.IsDefined(*cached) {
		return *cached
	}

	other := s.axis.Other()
	cs := s.t.Style(it.node)
	area := geom.UndefinedSize().Set(other, otherSize)
	known := itemKnownSize(cs, it, area, s.inner.Width)

	constraint := geom.AvailableSpace{Kind: kind}
	avail := geom.Size[geom.AvailableSpace]{Width: constraint, Height: constraint}
	avail = avail.Set(other, geom.FromSize(otherSize, constraint))

	size := s.t.ComputeChild(it.node, known, s.inner, avail, tree.ComputeSize, tree.InherentSize)
	margin := style.ResolveEdges(cs.Margin, s.inner.Width)
	*cached = size.Get(s.axis) + axisMargin(margin, s.axis)
	return *cached
}

func (s *sizer) minContent(it *item) float64 { return s.contribution(it, geom.KindMinContent) }
func (s *sizer) maxContent(it *item) float64 { return s.contribution(it, geom.KindMaxContent) }

// minimum is the item's minimum contribution: its preferred size if
// definite, else its min size, else its automatic minimum size.
func (s *sizer) minimum(it *item) float64 {
	s.refresh(it)
	if geom.IsDefined(it.minimum) {
		return it.minimum
	}
	cs := s.t.Style(it.node)
	inner := s.axisInner()
	margin := axisMargin(style.ResolveEdges(cs.Margin, s.inner.Width), s.axis)

	size := cs.Size.Get(s.axis).Resolve(inner)
	if geom.IsUndefined(size) {
		size = cs.MinSize.Get(s.axis).Resolve(inner)
	}
	if geom.IsDefined(size) {
		size += margin
	} else {
		// The automatic minimum is content-based only when the item spans an
		// auto-minimum track, and a multi-track span crosses no flexible
		// track.
		start, end := it.trackRange(s.axis)
		spansAuto, spansFlex, count := false, false, 0
		for i := start; i < end; i++ {
			tr := &s.tracks[i]
			if tr.kind != kindTrack {
				continue
			}
			count++
			spansAuto = spansAuto || tr.min.Kind == style.MinAuto
			spansFlex = spansFlex || tr.isFlexible()
		}
		size = 0
		if spansAuto && (count == 1 || !spansFlex) {
			size = s.minContent(it)
		}
	}

	it.minimum = geom.MaybeMin(size, s.spannedFixedLimit(it))
	return it.minimum
}

// spannedFixedLimit sums the fixed maxima of the item's tracks, or is
// undefined if any is not fixed.
func (s *sizer) spannedFixedLimit(it *item) float64 {
	start, end := it.trackRange(s.axis)
	sum := 0.0
	for i := start; i < end; i++ {
		v := s.tracks[i].max.DefiniteValue(s.axisInner())
		if geom.IsUndefined(v) {
			return geom.Undefined
		}
		sum += v
	}
	return sum
}

// spannedLimit is spannedFixedLimit also counting fit-content arguments.
func (s *sizer) spannedLimit(it *item) float64 {
	start, end := it.trackRange(s.axis)
	sum := 0.0
	for i := start; i < end; i++ {
		v := s.tracks[i].max.DefiniteLimit(s.axisInner())
		if geom.IsUndefined(v) {
			return geom.Undefined
		}
		sum += v
	}
	return sum
}

// limitedMinContent is the min-content contribution capped by the spanned
// tracks' limits and floored at the minimum contribution.
func (s *sizer) limitedMinContent(it *item) float64 {
	return math.Max(geom.MaybeMin(s.minContent(it), s.spannedLimit(it)), s.minimum(it))
}

// resolveIntrinsicTrackSizes sizes content-based tracks from the items in
// them. Single-span items not crossing a flexible track are handled first,
// then larger spans in increasing order, then all items crossing a flexible
// track together.
func (s *sizer) resolveIntrinsicTrackSizes() {
	flexSum := 0.0
	for i := range s.tracks {
		flexSum += s.tracks[i].flexFactor()
	}

	ordered := make([]*item, len(s.items))
	for i := range s.items {
		ordered[i] = &s.items[i]
	}
	slices.SortStableFunc(ordered, func(a, b *item) int {
		af, bf := a.crossesFlexible(s.axis), b.crossesFlexible(s.axis)
		if af != bf {
			if af {
				return 1
			}
			return -1
		}
		return cmp.Compare(a.span(s.axis), b.span(s.axis))
	})

	for i := 0; i < len(ordered); {
		isFlex := ordered[i].crossesFlexible(s.axis)
		span := ordered[i].span(s.axis)
		j := i + 1
		for j < len(ordered) && ordered[j].crossesFlexible(s.axis) == isFlex && (isFlex || ordered[j].span(s.axis) == span) {
			j++
		}
		batch := ordered[i:j]
		i = j

		if !isFlex && span == 1 {
			s.sizeSingleSpanBatch(batch)
			continue
		}
		s.sizeSpanningBatch(batch, isFlex, isFlex && flexSum != 0)
	}

	for i := range s.tracks {
		if math.IsInf(s.tracks[i].growthLimit, 1) {
			s.tracks[i].growthLimit = s.tracks[i].baseSize
		}
	}
}

func (s *sizer) sizeSingleSpanBatch(batch []*item) {
	inner := s.axisInner()
	contentConstrained := s.available.Kind != geom.KindDefinite

	for _, it := range batch {
		idx, _ := it.trackRange(s.axis)
		tr := &s.tracks[idx]

		switch tr.min.Kind {
		case style.MinMinContent:
			tr.baseSize = math.Max(tr.baseSize, s.minContent(it))
		case style.MinMaxContent:
			tr.baseSize = math.Max(tr.baseSize, s.maxContent(it))
		case style.MinAuto:
			if contentConstrained {
				tr.baseSize = math.Max(tr.baseSize, s.limitedMinContent(it))
			} else {
				tr.baseSize = math.Max(tr.baseSize, s.minimum(it))
			}
		case style.MinFixed:
			// Percentages against an unresolved container act as min-content.
			if tr.min.Value.Unit == style.UnitPercent && geom.IsUndefined(inner) {
				tr.baseSize = math.Max(tr.baseSize, s.minContent(it))
			}
		}

		switch {
		case tr.max.Kind == style.MaxFitContent:
			tr.growthLimitPlannedIncrease = math.Max(tr.growthLimitPlannedIncrease, s.minContent(it))
			limited := math.Min(s.maxContent(it), tr.fitContentLimit(inner))
			tr.growthLimitPlannedIncrease = math.Max(tr.growthLimitPlannedIncrease, limited)
		case tr.max.IsMaxContentAlike() || (tr.max.Kind == style.MaxFixed && tr.max.Value.Unit == style.UnitPercent && geom.IsUndefined(inner)):
			tr.growthLimitPlannedIncrease = math.Max(tr.growthLimitPlannedIncrease, s.maxContent(it))
		case tr.max.IsIntrinsic():
			tr.growthLimitPlannedIncrease = math.Max(tr.growthLimitPlannedIncrease, s.minContent(it))
		}
	}

	for i := range s.tracks {
		tr := &s.tracks[i]
		if tr.growthLimitPlannedIncrease > 0 {
			if math.IsInf(tr.growthLimit, 1) {
				tr.growthLimit = tr.growthLimitPlannedIncrease
			} else {
				tr.growthLimit = math.Max(tr.growthLimit, tr.growthLimitPlannedIncrease)
			}
		}
		tr.infinitelyGrowable = false
		tr.growthLimitPlannedIncrease = 0
		if tr.growthLimit < tr.baseSize {
			tr.growthLimit = tr.baseSize
		}
	}
}

type contributionKind uint8

const (
	minimumContribution contributionKind = iota
	maximumContribution
)

func (s *sizer) sizeSpanningBatch(batch []*item, isFlex, useFlexFactor bool) {
	inner := s.axisInner()

	// Intrinsic minimums.
	intrinsicMin := func(tr *track) bool { return geom.IsUndefined(tr.min.DefiniteValue(inner)) }
	for _, it := range batch {
		if !it.crossesIntrinsic(s.axis) {
			continue
		}
		var space float64
		if s.available.Kind == geom.KindDefinite {
			space = s.minimum(it)
		} else {
			space = s.limitedMinContent(it)
		}
		s.distributeToBaseSize(it, space, isFlex, useFlexFactor, intrinsicMin, minimumContribution)
	}
	s.flushBaseSizes()

	// Content-based minimums.
	contentMin := func(tr *track) bool {
		return tr.min.Kind == style.MinMinContent || tr.min.Kind == style.MinMaxContent
	}
	for _, it := range batch {
		s.distributeToBaseSize(it, s.minContent(it), isFlex, useFlexFactor, contentMin, minimumContribution)
	}
	s.flushBaseSizes()

	// Max-content minimums.
	if s.available.Kind == geom.KindMaxContent {
		autoOrMaxMin := func(tr *track) bool {
			return tr.min.Kind == style.MinAuto || tr.min.Kind == style.MinMaxContent
		}
		for _, it := range batch {
			space := geom.MaybeMin(s.maxContent(it), s.spannedLimit(it))
			s.distributeToBaseSize(it, space, isFlex, useFlexFactor, autoOrMaxMin, maximumContribution)
		}
		s.flushBaseSizes()
	}
	maxMin := func(tr *track) bool { return tr.min.Kind == style.MinMaxContent }
	for _, it := range batch {
		s.distributeToBaseSize(it, s.maxContent(it), isFlex, useFlexFactor, maxMin, maximumContribution)
	}
	s.flushBaseSizes()

	for i := range s.tracks {
		if s.tracks[i].growthLimit < s.tracks[i].baseSize {
			s.tracks[i].growthLimit = s.tracks[i].baseSize
		}
	}

	// Flexible tracks have no intrinsic maximum.
	if isFlex {
		return
	}

	// Intrinsic maximums.
	intrinsicMax := func(tr *track) bool { return geom.IsUndefined(tr.max.DefiniteValue(inner)) }
	for _, it := range batch {
		s.distributeToGrowthLimit(it, s.minContent(it), intrinsicMax)
	}
	s.flushGrowthLimits(true)

	// Max-content maximums.
	maxContentMax := func(tr *track) bool {
		return tr.max.IsMaxContentAlike() ||
			(tr.max.Kind == style.MaxFixed && tr.max.Value.Unit == style.UnitPercent && geom.IsUndefined(inner))
	}
	for _, it := range batch {
		s.distributeToGrowthLimit(it, s.maxContent(it), maxContentMax)
	}
	s.flushGrowthLimits(false)
}

// distributeToBaseSize plans base size increases across the item's tracks
// so they accommodate space.
func (s *sizer) distributeToBaseSize(it *item, space float64, isFlex, useFlexFactor bool, affected func(*track) bool, kind contributionKind) {
	if space <= 0 {
		return
	}
	start, end := it.trackRange(s.axis)
	tracks := s.tracks[start:end]

	filter := affected
	if isFlex {
		filter = func(tr *track) bool { return tr.isFlexible() && affected(tr) }
	}
	proportion := func(*track) float64 { return 1 }
	if useFlexFactor {
		proportion = func(tr *track) float64 { return tr.flexFactor() }
	}

	if !anyTrack(tracks, filter) {
		return
	}

	used := 0.0
	for i := range tracks {
		used += tracks[i].baseSize
	}
	extra := math.Max(0, space-used)

	base := func(tr *track) float64 { return tr.baseSize }
	limit := func(tr *track) float64 { return tr.growthLimit }
	extra = distributeUpToLimits(extra, tracks, filter, proportion, base, limit)

	if extra > distributionThreshold {
		beyond := func(tr *track) bool { return tr.max.IsIntrinsic() }
		beyondLimit := func(*track) float64 { return math.Inf(1) }
		if kind == maximumContribution {
			beyond = func(tr *track) bool { return tr.max.IsMaxContentAlike() || tr.min.Kind == style.MinMaxContent }
			beyondLimit = func(tr *track) float64 { return tr.fitContentLimit(s.axisInner()) }
		}
		both := func(tr *track) bool { return filter(tr) && beyond(tr) }
		if !anyTrack(tracks, both) {
			both = filter
		}
		distributeUpToLimits(extra, tracks, both, proportion, base, beyondLimit)
	}

	for i := range tracks {
		tr := &tracks[i]
		tr.baseSizePlannedIncrease = math.Max(tr.baseSizePlannedIncrease, tr.itemIncurredIncrease)
		tr.itemIncurredIncrease = 0
	}
}

// distributeToGrowthLimit plans growth limit increases across the item's
// tracks so they accommodate space.
func (s *sizer) distributeToGrowthLimit(it *item, space float64, affected func(*track) bool) {
	if space <= 0 {
		return
	}
	start, end := it.trackRange(s.axis)
	tracks := s.tracks[start:end]
	if !anyTrack(tracks, affected) {
		return
	}
	inner := s.axisInner()

	current := func(tr *track) float64 {
		if math.IsInf(tr.growthLimit, 1) {
			return tr.baseSize
		}
		return tr.growthLimit
	}
	used := 0.0
	for i := range tracks {
		used += current(&tracks[i])
	}
	extra := math.Max(0, space-used)

	one := func(*track) float64 { return 1 }
	limit := func(tr *track) float64 {
		if tr.infinitelyGrowable {
			return math.Inf(1)
		}
		return tr.fitContentLimitedGrowthLimit(inner)
	}
	extra = distributeUpToLimits(extra, tracks, affected, one, current, limit)
	if extra > distributionThreshold {
		fit := func(tr *track) float64 { return tr.fitContentLimit(inner) }
		distributeUpToLimits(extra, tracks, affected, one, current, fit)
	}

	for i := range tracks {
		tr := &tracks[i]
		tr.growthLimitPlannedIncrease = math.Max(tr.growthLimitPlannedIncrease, tr.itemIncurredIncrease)
		tr.itemIncurredIncrease = 0
	}
}

// distributeUpToLimits grows each affected track's item-incurred increase
// in proportion, freezing tracks as they reach their limit, and returns the
// space left over.
func distributeUpToLimits(space float64, tracks []track, affected func(*track) bool, proportion, property, limit func(*track) float64) float64 {
	for space > distributionThreshold {
		growable := func(tr *track) bool {
			return affected(tr) && property(tr)+tr.itemIncurredIncrease+distributionThreshold < limit(tr)
		}

		sum := 0.0
		step := math.Inf(1)
		for i := range tracks {
			tr := &tracks[i]
			if !growable(tr) || proportion(tr) == 0 {
				continue
			}
			sum += proportion(tr)
			step = math.Min(step, (limit(tr)-property(tr)-tr.itemIncurredIncrease)/proportion(tr))
		}
		if sum == 0 {
			break
		}
		step = math.Min(step, space/sum)

		for i := range tracks {
			tr := &tracks[i]
			if !growable(tr) {
				continue
			}
			inc := step * proportion(tr)
			tr.itemIncurredIncrease += inc
			space -= inc
		}
	}
	return space
}

func anyTrack(tracks []track, pred func(*track) bool) bool {
	for i := range tracks {
		if pred(&tracks[i]) {
			return true
		}
	}
	return false
}

func (s *sizer) flushBaseSizes() {
	for i := range s.tracks {
		s.tracks[i].baseSize += s.tracks[i].baseSizePlannedIncrease
		s.tracks[i].baseSizePlannedIncrease = 0
	}
}

// flushGrowthLimits applies planned growth limit increases. Tracks whose
// limit went from infinite to finite are marked infinitely growable when
// markGrowable is set.
func (s *sizer) flushGrowthLimits(markGrowable bool) {
	for i := range s.tracks {
		tr := &s.tracks[i]
		if tr.growthLimitPlannedIncrease > 0 {
			if math.IsInf(tr.growthLimit, 1) {
				tr.growthLimit = tr.baseSize + tr.growthLimitPlannedIncrease
				tr.infinitelyGrowable = markGrowable
			} else {
				tr.growthLimit += tr.growthLimitPlannedIncrease
				tr.infinitelyGrowable = false
			}
		} else {
			tr.infinitelyGrowable = false
		}
		tr.growthLimitPlannedIncrease = 0
	}
}

// maximizeTracks hands positive free space to every track up to its growth
// limit.
func (s *sizer) maximizeTracks(space geom.AvailableSpace) {
	free := space.ComputeFreeSpace(sumBase(s.tracks))
	switch {
	case math.IsInf(free, 1):
		for i := range s.tracks {
			s.tracks[i].baseSize = s.tracks[i].growthLimit
		}
	case free > 0:
		inner := s.axisInner()
		all := func(*track) bool { return true }
		one := func(*track) float64 { return 1 }
		base := func(tr *track) float64 { return tr.baseSize }
		limit := func(tr *track) float64 { return tr.fitContentLimitedGrowthLimit(inner) }
		distributeUpToLimits(free, s.tracks, all, one, base, limit)
		for i := range s.tracks {
			s.tracks[i].baseSize += s.tracks[i].itemIncurredIncrease
			s.tracks[i].itemIncurredIncrease = 0
		}
	}
}

// expandFlexibleTracks sizes fr tracks from the largest fr size that fits.
func (s *sizer) expandFlexibleTracks(space geom.AvailableSpace) {
	if !anyTrack(s.tracks, (*track).isFlexible) {
		return
	}

	var fr float64
	switch space.Kind {
	case geom.KindDefinite:
		if space.Value-sumBase(s.tracks) > 0 {
			fr = findFrSize(s.tracks, space.Value)
		}
	case geom.KindMinContent:
		fr = 0
	case geom.KindMaxContent:
		for i := range s.tracks {
			tr := &s.tracks[i]
			if !tr.isFlexible() {
				continue
			}
			if f := tr.flexFactor(); f > 1 {
				fr = math.Max(fr, tr.baseSize/f)
			} else {
				fr = math.Max(fr, tr.baseSize)
			}
		}
		for i := range s.items {
			it := &s.items[i]
			if !it.crossesFlexible(s.axis) {
				continue
			}
			start, end := it.trackRange(s.axis)
			fr = math.Max(fr, findFrSize(s.tracks[start:end], s.maxContent(it)))
		}

		// Re-solve against the container's min or max size if the
		// hypothetical grid would violate it.
		hypothetical := 0.0
		for i := range s.tracks {
			tr := &s.tracks[i]
			if tr.isFlexible() {
				hypothetical += math.Max(tr.baseSize, tr.flexFactor()*fr)
			} else {
				hypothetical += tr.baseSize
			}
		}
		minSize := geom.Or(s.minSize, 0)
		maxSize := geom.Or(s.maxSize, math.Inf(1))
		if hypothetical < minSize {
			fr = findFrSize(s.tracks, minSize)
		} else if hypothetical > maxSize {
			fr = findFrSize(s.tracks, maxSize)
		}
	}

	for i := range s.tracks {
		tr := &s.tracks[i]
		if tr.isFlexible() {
			tr.baseSize = math.Max(tr.baseSize, tr.flexFactor()*fr)
		}
	}
}

// findFrSize finds the size of 1fr that fills space with the given tracks.
// Flexible tracks whose share would fall below their base size are treated
// as inflexible and the size is re-solved until it is consistent.
func findFrSize(tracks []track, space float64) float64 {
	if space == 0 {
		return 0
	}

	fr := math.Inf(1)
	for range len(tracks) + 1 {
		used, factors := 0.0, 0.0
		for i := range tracks {
			tr := &tracks[i]
			if tr.isFlexible() && tr.flexFactor()*fr >= tr.baseSize {
				factors += tr.flexFactor()
			} else {
				used += tr.baseSize
			}
		}
		prev := fr
		fr = (space - used) / math.Max(factors, 1)

		valid := true
		for i := range tracks {
			tr := &tracks[i]
			if !tr.isFlexible() {
				continue
			}
			f := tr.flexFactor()
			if f*fr < tr.baseSize && f*prev >= tr.baseSize {
				valid = false
				break
			}
		}
		if valid {
			break
		}
	}
	return fr
}

// stretchAutoTracks shares remaining definite free space equally between
// tracks with an auto maximum.
func (s *sizer) stretchAutoTracks(space geom.AvailableSpace) {
	count := 0
	for i := range s.tracks {
		if s.tracks[i].kind == kindTrack && s.tracks[i].max.Kind == style.MaxAuto {
			count++
		}
	}
	if count == 0 {
		return
	}

	used := sumBase(s.tracks)
	var free float64
	switch {
	case space.IsDefinite():
		free = space.ComputeFreeSpace(used)
	case geom.IsDefined(s.minSize):
		free = s.minSize - used
	}
	if free <= 0 {
		return
	}
	per := free / float64(count)
	for i := range s.tracks {
		if s.tracks[i].kind == kindTrack && s.tracks[i].max.Kind == style.MaxAuto {
			s.tracks[i].baseSize += per
		}
	}
}

func sumBase(tracks []track) float64 {
	sum := 0.0
	for i := range tracks {
		sum += tracks[i].baseSize
	}
	return sum
}

func axisMargin(m geom.Edges, axis geom.AbsoluteAxis) float64 {
	if axis == geom.Horizontal {
		return geom.HorizontalSum(m)
	}
	return geom.VerticalSum(m)
}

// itemKnownSize resolves the sizes an item is forced to within area: its
// preferred size, or the area minus margins when it stretches.
func itemKnownSize(cs *style.Style, it *item, area geom.Size[float64], innerWidth float64) geom.Size[float64] {
	ratio := cs.AspectRatio
	margin := style.ResolveEdges(cs.Margin, innerWidth)
	auto := cs.MarginIsAuto()
	inherent := style.ApplyAspectRatio(style.ResolveSize(cs.Size, area), ratio)
	minSize := style.ApplyAspectRatio(style.ResolveSize(cs.MinSize, area), ratio)
	maxSize := style.ApplyAspectRatio(style.ResolveSize(cs.MaxSize, area), ratio)

	size := inherent
	if geom.IsUndefined(size.Width) && !auto.Left && !auto.Right && it.justifySelf == style.AlignStretch {
		size.Width = area.Width - geom.HorizontalSum(margin)
	}
	size = style.ApplyAspectRatio(size, ratio)
	if geom.IsUndefined(size.Height) && !auto.Top && !auto.Bottom && it.alignSelf == style.AlignStretch {
		size.Height = area.Height - geom.VerticalSum(margin)
	}
	size = style.ApplyAspectRatio(size, ratio)
	return geom.SizeMaybeClamp(size, minSize, maxSize)
}
