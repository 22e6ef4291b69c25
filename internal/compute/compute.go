package compute

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/grindlemire/go-layout/internal/cache"
	"github.com/grindlemire/go-layout/internal/compute/grid"
	"github.com/grindlemire/go-layout/internal/geom"
	"github.com/grindlemire/go-layout/internal/style"
	"github.com/grindlemire/go-layout/internal/tree"
)

// ErrInvalidNode is returned when a handle does not belong to the tree.
var ErrInvalidNode = errors.New("invalid node")

// Stats counts the work done by an Engine.
type Stats struct {
	Computations int // Node computations that missed the cache
	CacheHits    int // Node computations answered from the cache
}

// Engine lays out one tree.
type Engine struct {
	tree     LayoutTree
	logger   *zap.Logger
	useCache bool
	rounding bool
	stats    Stats
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for per-node debug tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithoutCache disables memoization. Results are unchanged; only the
// amount of recomputation differs.
func WithoutCache() Option {
	return func(e *Engine) { e.useCache = false }
}

// WithRounding toggles the final pixel rounding pass (on by default).
func WithRounding(enabled bool) Option {
	return func(e *Engine) { e.rounding = enabled }
}

// New returns an Engine over t.
func New(t LayoutTree, opts ...Option) *Engine {
	e := &Engine{
		tree:     t,
		logger:   zap.NewNop(),
		useCache: true,
		rounding: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Stats returns counters accumulated since the Engine was created.
func (e *Engine) Stats() Stats {
	return e.stats
}

// ComputeLayout lays out the tree rooted at root within available space,
// writes every node's layout and, unless disabled, rounds it to whole pixels.
func ComputeLayout(t LayoutTree, root tree.NodeID, available geom.Size[geom.AvailableSpace], opts ...Option) (Stats, error) {
	e := New(t, opts...)
	if err := e.ComputeLayout(root, available); err != nil {
		return Stats{}, err
	}
	return e.Stats(), nil
}

// ComputeLayout lays out the tree rooted at root. The root is placed at (0, 0).
func (e *Engine) ComputeLayout(root tree.NodeID, available geom.Size[geom.AvailableSpace]) error {
	if v, ok := e.tree.(NodeValidator); ok && !v.Contains(root) {
		return fmt.Errorf("compute layout for node %d: %w", root, ErrInvalidNode)
	}

	size := e.ComputeNodeLayout(root, geom.UndefinedSize(), available, tree.PerformLayout, tree.InherentSize)
	e.tree.SetUnroundedLayout(root, tree.Layout{Size: size})

	if e.rounding {
		e.roundLayout(root, 0, 0)
	} else {
		e.copyLayout(root)
	}

	e.logger.Debug("layout complete",
		zap.Uint32("root", uint32(root)),
		zap.Float64("width", size.Width),
		zap.Float64("height", size.Height),
		zap.Int("computations", e.stats.Computations),
		zap.Int("cache_hits", e.stats.CacheHits),
	)
	return nil
}

// ComputeNodeLayout sizes node under the given constraints, consulting and
// filling its cache. With PerformLayout, the layouts of node's descendants
// are written as a side effect.
func (e *Engine) ComputeNodeLayout(node tree.NodeID, known geom.Size[float64], available geom.Size[geom.AvailableSpace], runMode tree.RunMode, sizingMode tree.SizingMode) geom.Size[float64] {
	return e.computeNode(node, known, geom.DefiniteSize(available), available, runMode, sizingMode)
}

// computeNode is ComputeNodeLayout with an explicit parent size used to
// resolve percentages.
func (e *Engine) computeNode(node tree.NodeID, known, parentSize geom.Size[float64], available geom.Size[geom.AvailableSpace], runMode tree.RunMode, sizingMode tree.SizingMode) geom.Size[float64] {
	s := e.tree.Style(node)
	hasChildren := e.tree.ChildCount(node) > 0

	// A leaf writes no child layouts, so a size-only entry serves either mode.
	// Only leaves read the sizing mode; containers always honor their styles.
	cacheMode := runMode
	cacheSizing := tree.InherentSize
	if !hasChildren {
		cacheMode = tree.PerformLayout
		cacheSizing = sizingMode
	}

	if e.useCache {
		if size, ok := e.tree.Cache(node).Get(known, available, cacheMode, cacheSizing); ok {
			e.stats.CacheHits++
			if ce := e.logger.Check(zapcore.DebugLevel, "cache hit"); ce != nil {
				ce.Write(zap.Uint32("node", uint32(node)), zap.Stringer("run_mode", runMode))
			}
			return size
		}
	}
	e.stats.Computations++

	var size geom.Size[float64]
	switch {
	case s.Display == style.DisplayNone:
		e.hideChildren(node)
	case !hasChildren:
		size = e.computeLeaf(node, known, parentSize, available, sizingMode)
	case s.Display == style.DisplayGrid:
		size = grid.Compute(e.gridTree(), node, known, parentSize, available, runMode)
	default:
		size = e.computeFlexbox(node, known, parentSize, available, runMode)
	}

	if ce := e.logger.Check(zapcore.DebugLevel, "computed node"); ce != nil {
		ce.Write(
			zap.Uint32("node", uint32(node)),
			zap.Stringer("display", s.Display),
			zap.Stringer("run_mode", runMode),
			zap.Stringer("available_width", available.Width),
			zap.Stringer("available_height", available.Height),
			zap.Float64("width", size.Width),
			zap.Float64("height", size.Height),
		)
	}

	if e.useCache {
		e.tree.Cache(node).Put(cache.Entry{
			KnownDimensions: known,
			AvailableSpace:  available,
			RunMode:         cacheMode,
			SizingMode:      cacheSizing,
			CachedSize:      size,
		})
	}
	if runMode == tree.PerformLayout {
		e.tree.SetDirty(node, false)
	}
	return size
}

// hideChildren zeroes the layout of every descendant of a display:none node.
func (e *Engine) hideChildren(node tree.NodeID) {
	for i, child := range e.tree.Children(node) {
		e.tree.SetUnroundedLayout(child, tree.Layout{Order: uint32(i)})
		e.tree.SetDirty(child, false)
		e.hideChildren(child)
	}
}

// gridTree adapts the engine to the narrow interface the grid package uses.
func (e *Engine) gridTree() grid.Tree {
	return gridAdapter{e}
}

type gridAdapter struct{ e *Engine }

func (g gridAdapter) Style(node tree.NodeID) *style.Style { return g.e.tree.Style(node) }
func (g gridAdapter) Children(node tree.NodeID) []tree.NodeID { return g.e.tree.Children(node) }
func (g gridAdapter) SetUnroundedLayout(node tree.NodeID, l tree.Layout) {
	g.e.tree.SetUnroundedLayout(node, l)
}

func (g gridAdapter) ComputeChild(node tree.NodeID, known, parentSize geom.Size[float64], available geom.Size[geom.AvailableSpace], runMode tree.RunMode, sizingMode tree.SizingMode) geom.Size[float64] {
	return g.e.computeNode(node, known, parentSize, available, runMode, sizingMode)
}

func (g gridAdapter) HideNode(node tree.NodeID, order uint32) {
	g.e.tree.SetUnroundedLayout(node, tree.Layout{Order: order})
	g.e.hideChildren(node)
}
