package fred

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// distanceObjectSize approximates the in-memory footprint of one PDistance
// cell, used by the memory-gating heuristic in prepare.
const distanceObjectSize = 64

// ClusteringContext is an explicit, caller-owned handle holding two lazily
// populated caches: the distance matrix and the simplification store.
// Passing the same ClusteringContext into repeated clustering calls reuses
// both caches; a freshly constructed ClusteringContext starts cold.
//
// A ClusteringContext is not safe for concurrent use: concurrent clustering
// calls sharing one are forbidden.
type ClusteringContext struct {
	distances       *cache.Cache // key "i,j" -> PDistance, input curve i to simplification of input curve j
	simplifications  *cache.Cache // key "j" -> Curve
	inputSize        int
	memoryDisabled   bool
}

// NewClusteringContext returns an empty context with no memoization limit
// beyond the process-wide configured memory budget.
func NewClusteringContext() *ClusteringContext {
	return &ClusteringContext{
		distances:       cache.New(cache.NoExpiration, cache.NoExpiration),
		simplifications: cache.New(cache.NoExpiration, cache.NoExpiration),
	}
}

// Reset discards all cached distances and simplifications.
func (ctx *ClusteringContext) Reset() {
	ctx.distances.Flush()
	ctx.simplifications.Flush()
	ctx.inputSize = 0
	ctx.memoryDisabled = false
}

// defaultContext is a convenience facade for callers who do not want to
// manage a ClusteringContext themselves. Go has no thread-local storage, and
// since ClusteringContext already forbids concurrent use, a single
// package-level instance serves callers just as well as one scoped per
// goroutine would.
var defaultContext = NewClusteringContext()

// DefaultClusteringContext returns the package-level convenience context.
// Concurrent clustering calls sharing it are forbidden, exactly as for any
// other ClusteringContext.
func DefaultClusteringContext() *ClusteringContext {
	return defaultContext
}

// prepare validates consecutiveCall against the cached input size: a
// mismatched size is reported with a diagnostic and transparently repaired
// by resetting the cache. It also applies the memory-gating heuristic that
// disables caching when a full distance matrix would not fit comfortably in
// the configured memory budget.
func (ctx *ClusteringContext) prepare(n int, consecutiveCall bool) {
	if consecutiveCall && n != ctx.inputSize {
		diagnosticf(1, "fred: consecutive_call used with a differently sized input (cached %d, got %d); reallocating", ctx.inputSize, n)
		consecutiveCall = false
	}
	if !consecutiveCall {
		ctx.Reset()
	}
	ctx.inputSize = n

	cfg := GetConfig()
	predicted := int64(n) * int64(n) * distanceObjectSize
	budget := (cfg.AvailableMemory * 2) / 3
	if cfg.UseDistanceMatrix && predicted > budget {
		diagnosticf(1, "fred: predicted distance matrix footprint %d exceeds 2/3 of available memory %d; disabling cache", predicted, cfg.AvailableMemory)
		ctx.memoryDisabled = true
	} else {
		ctx.memoryDisabled = !cfg.UseDistanceMatrix
	}
}

// simplification returns the cached ell-vertex simplification of input
// curve j, computing and (unless memory-gated) caching it lazily on first
// reference.
func (ctx *ClusteringContext) simplification(curves Curves, j, ell int, fast bool) Curve {
	key := fmt.Sprintf("%d", j)
	if cached, ok := ctx.simplifications.Get(key); ok {
		return cached.(Curve)
	}

	c := curves.Get(j)
	var simp Curve
	if fast {
		simp = ApproximateMinimumErrorSimplification(c, ell)
	} else {
		simp = NewShortcutGraph(c).MinimumErrorSimplification(ell)
	}
	simp = NewCurve(fmt.Sprintf("Simplification of %s", c.Name()), simp.Points())

	if !ctx.memoryDisabled {
		ctx.simplifications.Set(key, simp, cache.NoExpiration)
	}
	return simp
}

// distance returns the chosen distance between input curve i and the
// simplification of input curve j, computing and (unless memory-gated)
// caching it lazily.
func (ctx *ClusteringContext) distance(curves Curves, i, j, ell int, fast bool, kind DistanceKind) PDistance {
	key := fmt.Sprintf("%d,%d", i, j)
	if cached, ok := ctx.distances.Get(key); ok {
		return cached.(PDistance)
	}

	simp := ctx.simplification(curves, j, ell, fast)
	start := time.Now()
	d := ComputeDistance(kind, curves.Get(i), simp)
	d.Time = time.Since(start).Seconds()

	if !ctx.memoryDisabled {
		ctx.distances.Set(key, d, cache.NoExpiration)
	}
	return d
}
