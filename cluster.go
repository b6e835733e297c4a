package fred

import (
	"math"
	"time"
)

// ClusterAssignment maps each chosen center's input index to the ordered
// list of input-curve indices assigned to it.
type ClusterAssignment map[int][]int

// ClusteringResult is returned by KLCenter and KLMedian.
type ClusteringResult struct {
	Centers      Curves
	CenterIndices []int
	Value        float64
	RunningTime  float64
	Assignment   ClusterAssignment
	DistanceFunc DistanceKind
}

// KLCenter solves the (k, ℓ)-center problem: find k curves of complexity at
// most ℓ, drawn from the ℓ-vertex simplifications of the input curves,
// minimizing the maximum distance from any input curve to its nearest
// center.
func KLCenter(ctx *ClusteringContext, curves Curves, k, ell, localSearch int, consecutiveCall, randomStart, fastSimplification bool, kind DistanceKind) ClusteringResult {
	return klCluster(ctx, curves, k, ell, localSearch, false, consecutiveCall, randomStart, fastSimplification, kind)
}

// KLMedian solves the (k, ℓ)-median problem via gamma-improvement local
// search after farthest-first seeding with a random start.
func KLMedian(ctx *ClusteringContext, curves Curves, k, ell int, consecutiveCall, fastSimplification bool, kind DistanceKind) ClusteringResult {
	return klCluster(ctx, curves, k, ell, 0, true, consecutiveCall, true, fastSimplification, kind)
}

func klCluster(ctx *ClusteringContext, curves Curves, k, ell, localSearch int, median, consecutiveCall, randomStart, fastSimplification bool, kind DistanceKind) ClusteringResult {
	start := time.Now()

	n := curves.Size()
	if n == 0 {
		diagnosticf(1, "fred: clustering an empty input yields an empty result")
		return ClusteringResult{DistanceFunc: kind}
	}
	if k > n {
		k = n
	}

	ctx.prepare(n, consecutiveCall)

	centerIndices := seedCenters(ctx, curves, k, ell, randomStart, fastSimplification, kind)

	var value float64
	if median {
		centerIndices, value = medianLocalSearch(ctx, curves, centerIndices, ell, fastSimplification, kind)
	} else {
		value = centerCostMax(ctx, curves, centerIndices, ell, fastSimplification, kind)
		if localSearch > 0 {
			centerIndices, value = centerLocalSearch(ctx, curves, centerIndices, ell, localSearch, fastSimplification, kind, value)
		}
	}

	if value == 0 {
		diagnosticf(1, "fred: clustering cost is zero, all input curves collapse to the same center")
	}

	centers := NewCurves()
	for _, idx := range centerIndices {
		_ = centers.Add(ctx.simplification(curves, idx, ell, fastSimplification))
	}

	return ClusteringResult{
		Centers:       centers,
		CenterIndices: centerIndices,
		Value:         value,
		RunningTime:   time.Since(start).Seconds(),
		DistanceFunc:  kind,
	}
}

// seedCenters runs Gonzalez farthest-first seeding: the first center is
// index 0 when randomStart is false, otherwise a single uniform draw; each
// subsequent center is the input curve with maximum distance to its
// nearest current center, first occurrence wins ties.
func seedCenters(ctx *ClusteringContext, curves Curves, k, ell int, randomStart, fastSimplification bool, kind DistanceKind) []int {
	n := curves.Size()

	first := 0
	if randomStart {
		first = NewUniformRandomGenerator(0, 1).GetInt(n)
	}
	centerIndices := []int{first}
	ctx.simplification(curves, first, ell, fastSimplification)

	for len(centerIndices) < k {
		bestJ := -1
		bestDist := -1.0
		for j := 0; j < n; j++ {
			if containsInt(centerIndices, j) {
				continue
			}
			nearest := math.Inf(1)
			for _, c := range centerIndices {
				if d := ctx.distance(curves, j, c, ell, fastSimplification, kind).Value; d < nearest {
					nearest = d
				}
			}
			if nearest > bestDist {
				bestDist = nearest
				bestJ = j
			}
		}
		if bestJ == -1 {
			break
		}
		centerIndices = append(centerIndices, bestJ)
		ctx.simplification(curves, bestJ, ell, fastSimplification)
	}
	return centerIndices
}

// centerCostMax returns the (k,ℓ)-center objective: the maximum, over all
// input curves, of the distance to the nearest center.
func centerCostMax(ctx *ClusteringContext, curves Curves, centers []int, ell int, fastSimplification bool, kind DistanceKind) float64 {
	maxDist := 0.0
	for j := 0; j < curves.Size(); j++ {
		if d := nearestCenterDistance(ctx, curves, j, centers, ell, fastSimplification, kind); d > maxDist {
			maxDist = d
		}
	}
	return maxDist
}

// centerCostSum returns the (k,ℓ)-median objective: the sum, over all input
// curves, of the distance to the nearest center.
func centerCostSum(ctx *ClusteringContext, curves Curves, centers []int, ell int, fastSimplification bool, kind DistanceKind) float64 {
	sum := 0.0
	for j := 0; j < curves.Size(); j++ {
		sum += nearestCenterDistance(ctx, curves, j, centers, ell, fastSimplification, kind)
	}
	return sum
}

func nearestCenterDistance(ctx *ClusteringContext, curves Curves, j int, centers []int, ell int, fastSimplification bool, kind DistanceKind) float64 {
	nearest := math.Inf(1)
	for _, c := range centers {
		if d := ctx.distance(curves, j, c, ell, fastSimplification, kind).Value; d < nearest {
			nearest = d
		}
	}
	return nearest
}

// centerLocalSearch runs localSearch passes of swap-any-center-against-any-
// simplification, committing any strict improvement.
func centerLocalSearch(ctx *ClusteringContext, curves Curves, centers []int, ell, localSearch int, fastSimplification bool, kind DistanceKind, cost float64) ([]int, float64) {
	n := curves.Size()
	for iter := 0; iter < localSearch; iter++ {
		improved := false
		for slot := range centers {
			for j := 0; j < n; j++ {
				if containsInt(centers, j) {
					continue
				}
				ctx.simplification(curves, j, ell, fastSimplification)
				trial := swapAt(centers, slot, j)
				trialCost := centerCostMax(ctx, curves, trial, ell, fastSimplification, kind)
				if trialCost < cost {
					centers = trial
					cost = trialCost
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}
	return centers, cost
}

// medianLocalSearch runs gamma-improvement local search for the (k,ℓ)-median
// objective: a swap commits only if it improves cost by at least
// γ · approx_cost, with γ = 1/(10k) and approx_cost held at the cost after
// seeding.
func medianLocalSearch(ctx *ClusteringContext, curves Curves, centers []int, ell int, fastSimplification bool, kind DistanceKind) ([]int, float64) {
	n := curves.Size()
	k := len(centers)
	cost := centerCostSum(ctx, curves, centers, ell, fastSimplification, kind)
	approxCost := cost
	gamma := 1.0 / (10.0 * float64(k))

	for {
		improved := false
		for slot := 0; slot < k && !improved; slot++ {
			for j := 0; j < n; j++ {
				if containsInt(centers, j) {
					continue
				}
				ctx.simplification(curves, j, ell, fastSimplification)
				trial := swapAt(centers, slot, j)
				trialCost := centerCostSum(ctx, curves, trial, ell, fastSimplification, kind)
				if trialCost < cost-gamma*approxCost {
					centers = trial
					cost = trialCost
					improved = true
					break
				}
			}
		}
		if !improved {
			break
		}
	}
	return centers, cost
}

// ComputeAssignment assigns each input curve to the index of its nearest
// center, storing the result on r.
func (r *ClusteringResult) ComputeAssignment(ctx *ClusteringContext, curves Curves, ell int, fastSimplification bool) {
	assignment := make(ClusterAssignment, len(r.CenterIndices))
	for _, c := range r.CenterIndices {
		assignment[c] = nil
	}
	for j := 0; j < curves.Size(); j++ {
		best := r.CenterIndices[0]
		bestDist := math.Inf(1)
		for _, c := range r.CenterIndices {
			if d := ctx.distance(curves, j, c, ell, fastSimplification, r.DistanceFunc).Value; d < bestDist {
				bestDist = d
				best = c
			}
		}
		assignment[best] = append(assignment[best], j)
	}
	r.Assignment = assignment
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func swapAt(xs []int, i, v int) []int {
	out := make([]int, len(xs))
	copy(out, xs)
	out[i] = v
	return out
}
