package fred

import (
	"math"
	"time"
)

// ContinuousFrechetDistance is the result of a continuous Fréchet distance
// computation.
type ContinuousFrechetDistance struct {
	Value          float64
	TimeBounds     float64
	TimeSearches   float64
	NumberSearches int
}

// fsdTables holds the free-space diagram's free intervals and reachability
// tables for a pair of curves, reused across the binary search's candidate
// distances (grounded in original_source/src/frechet.cpp, which allocates
// these once outside the search loop and reinitializes them per candidate).
type fsdTables struct {
	free1      [][]Interval // free1[j][i]: j in [0,m-1], i in [0,n-2]
	free2      [][]Interval // free2[i][j]: i in [0,n-1], j in [0,m-2]
	reachable1 [][]float64  // reachable1[i][j]: i in [0,n-2], j in [0,m-1]
	reachable2 [][]float64  // reachable2[i][j]: i in [0,n-1], j in [0,m-2]
}

func newFSDTables(n, m int) *fsdTables {
	r1Rows := n - 1
	if r1Rows < 0 {
		r1Rows = 0
	}
	r2Cols := m - 1
	if r2Cols < 0 {
		r2Cols = 0
	}

	free1 := make([][]Interval, m)
	for j := range free1 {
		free1[j] = make([]Interval, r1Rows)
	}
	free2 := make([][]Interval, n)
	for i := range free2 {
		free2[i] = make([]Interval, r2Cols)
	}
	reachable1 := make([][]float64, r1Rows)
	for i := range reachable1 {
		reachable1[i] = make([]float64, m)
	}
	reachable2 := make([][]float64, n)
	for i := range reachable2 {
		reachable2[i] = make([]float64, r2Cols)
	}
	return &fsdTables{free1: free1, free2: free2, reachable1: reachable1, reachable2: reachable2}
}

// validCurvePairForDistance reports whether p and q may participate in a
// distance computation: both at least two vertices, matching dimension.
func validCurvePairForDistance(p, q Curve) bool {
	return p.Complexity() >= 2 && q.Complexity() >= 2 && p.Dimensions() == q.Dimensions()
}

// greedyUpperBound walks both curves simultaneously, advancing the pointer
// pair with the smallest of the three candidate squared distances and
// tracking the maximum witnessed.
func greedyUpperBound(p, q Curve) float64 {
	n, m := p.Complexity(), q.Complexity()
	i, j := 0, 0
	result := 0.0

	for i < n-1 && j < m-1 {
		d1 := p.At(i + 1).SquaredDistance(q.At(j))
		d2 := p.At(i).SquaredDistance(q.At(j + 1))
		d3 := p.At(i + 1).SquaredDistance(q.At(j + 1))

		switch {
		case d1 <= d2 && d1 <= d3:
			if d1 > result {
				result = d1
			}
			i++
		case d2 <= d1 && d2 <= d3:
			if d2 > result {
				result = d2
			}
			j++
		default:
			if d3 > result {
				result = d3
			}
			i++
			j++
		}
	}
	for i < n-1 {
		i++
		if d := p.At(i).SquaredDistance(q.At(j)); d > result {
			result = d
		}
	}
	for j < m-1 {
		j++
		if d := p.At(i).SquaredDistance(q.At(j)); d > result {
			result = d
		}
	}
	return math.Sqrt(result)
}

// minDistanceToSegments returns the minimum distance from v to any segment
// of c, falling back to point-to-point distance for degenerate segments.
func minDistanceToSegments(v Point, c Curve) float64 {
	minSqr := math.Inf(1)
	for k := 0; k < c.Complexity()-1; k++ {
		if d := v.SquaredDistanceToSegment(c.At(k), c.At(k+1)); d < minSqr {
			minSqr = d
		}
	}
	return math.Sqrt(minSqr)
}

// projectiveLowerBound computes the maximum, over all vertices of either
// curve, of the minimum distance to the other curve's segments, including
// the mandatory endpoint-to-endpoint distances.
func projectiveLowerBound(p, q Curve) float64 {
	n, m := p.Complexity(), q.Complexity()
	lb := math.Max(p.At(0).Distance(q.At(0)), p.At(n-1).Distance(q.At(m-1)))

	for i := 0; i < n; i++ {
		if d := minDistanceToSegments(p.At(i), q); d > lb {
			lb = d
		}
	}
	for j := 0; j < m; j++ {
		if d := minDistanceToSegments(q.At(j), p); d > lb {
			lb = d
		}
	}
	return lb
}

// feasible decides whether the free-space diagram of p and q at the given
// distance admits a monotone path from (0,0) to (n-1,m-1), building the free
// intervals and propagating reachability through them.
func feasible(distance float64, p, q Curve, t *fsdTables) bool {
	n, m := p.Complexity(), q.Complexity()
	distSqr := distance * distance

	if p.At(0).SquaredDistance(q.At(0)) > distSqr || p.At(n-1).SquaredDistance(q.At(m-1)) > distSqr {
		return false
	}

	for i := range t.reachable1 {
		for j := range t.reachable1[i] {
			t.reachable1[i][j] = math.Inf(1)
		}
	}
	for i := range t.reachable2 {
		for j := range t.reachable2[i] {
			t.reachable2[i][j] = math.Inf(1)
		}
	}
	for j := range t.free1 {
		for i := range t.free1[j] {
			t.free1[j][i] = EmptyInterval()
		}
	}
	for i := range t.free2 {
		for j := range t.free2[i] {
			t.free2[i][j] = EmptyInterval()
		}
	}

	for i := 0; i < n-1; i++ {
		t.reachable1[i][0] = 0
		if q.At(0).SquaredDistance(p.At(i+1)) > distSqr {
			break
		}
	}
	for j := 0; j < m-1; j++ {
		t.reachable2[0][j] = 0
		if p.At(0).SquaredDistance(q.At(j+1)) > distSqr {
			break
		}
	}

	parallelFor(m, func(j int) {
		for i := 0; i < n-1; i++ {
			t.free1[j][i] = q.At(j).BallSegmentIntersectionInterval(distSqr, p.At(i), p.At(i+1))
		}
	})
	parallelFor(n, func(i int) {
		for j := 0; j < m-1; j++ {
			t.free2[i][j] = p.At(i).BallSegmentIntersectionInterval(distSqr, q.At(j), q.At(j+1))
		}
	})

	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if i <= n-2 && j >= 1 {
				fi := t.free1[j][i]
				if !fi.IsEmpty() {
					if t.reachable2[i][j-1] < math.Inf(1) {
						t.reachable1[i][j] = fi.Begin
					} else if t.reachable1[i][j-1] <= fi.End {
						t.reachable1[i][j] = math.Max(fi.Begin, t.reachable1[i][j-1])
					}
				}
			}
			if j <= m-2 && i >= 1 {
				fj := t.free2[i][j]
				if !fj.IsEmpty() {
					if t.reachable1[i-1][j] < math.Inf(1) {
						t.reachable2[i][j] = fj.Begin
					} else if t.reachable2[i-1][j] <= fj.End {
						t.reachable2[i][j] = math.Max(fj.Begin, t.reachable2[i-1][j])
					}
				}
			}
		}
	}

	return t.reachable1[n-2][m-1] < math.Inf(1)
}

// roundToPrecision rounds value to ceil(-log10(relativeError)) decimal
// places (two for a relativeError of 0.01). The number of decimal places is
// fixed and does not depend on the magnitude of value, so this is not
// rounding to significant digits: a value below half a unit in the last
// kept place rounds to zero.
func roundToPrecision(value, relativeError float64) float64 {
	if relativeError <= 0 || relativeError >= 1 {
		return value
	}
	decimals := math.Ceil(-math.Log10(relativeError))
	if decimals < 0 {
		decimals = 0
	}
	scale := math.Pow(10, decimals)
	return math.Round(value*scale) / scale
}

// ContinuousFrechet computes the continuous Fréchet distance between p and
// q up to the process-wide configured relative error.
func ContinuousFrechet(p, q Curve) ContinuousFrechetDistance {
	if !validCurvePairForDistance(p, q) {
		diagnosticf(1, "fred: continuous Frechet distance requires curves of at least 2 vertices and matching dimension")
		return ContinuousFrechetDistance{Value: quietNaN()}
	}

	cfg := GetConfig()

	boundsStart := time.Now()
	lb := projectiveLowerBound(p, q)
	ub := greedyUpperBound(p, q)
	timeBounds := time.Since(boundsStart).Seconds()

	tables := newFSDTables(p.Complexity(), q.Complexity())

	searchStart := time.Now()
	searches := 0
	tolerance := func() float64 {
		return math.Max(lb*cfg.ContinuousFrechetError, machineEpsilon)
	}
	for ub-lb > tolerance() {
		mid := (ub + lb) / 2
		searches++
		if feasible(mid, p, q, tables) {
			ub = mid
		} else {
			lb = mid
		}
	}
	timeSearches := time.Since(searchStart).Seconds()

	value := (ub + lb) / 2
	if cfg.ContinuousFrechetRounding {
		value = roundToPrecision(value, cfg.ContinuousFrechetError)
	}

	return ContinuousFrechetDistance{
		Value:          value,
		TimeBounds:     timeBounds,
		TimeSearches:   timeSearches,
		NumberSearches: searches,
	}
}

// VerticesMatchingPoints recovers, for each vertex of p, the point on q at
// which the free space first opens on the outgoing row of the free-space
// diagram built at distance. Endpoints map to endpoints.
func VerticesMatchingPoints(p, q Curve, distance float64) Points {
	n, m := p.Complexity(), q.Complexity()
	if !validCurvePairForDistance(p, q) {
		return nil
	}

	tables := newFSDTables(n, m)
	feasible(distance, p, q, tables)

	matches := make(Points, n)
	matches[0] = q.At(0)
	matches[n-1] = q.At(m - 1)
	for i := 1; i < n-1; i++ {
		matches[i] = matchOnRow(q, tables, i, m)
	}
	return matches
}

// matchOnRow returns the convex-combination point on q corresponding to the
// first column at which reachable2[i][*] opens.
func matchOnRow(q Curve, t *fsdTables, i, m int) Point {
	for j := 0; j < m-1; j++ {
		if t.reachable2[i][j] < math.Inf(1) {
			lambda := t.reachable2[i][j]
			return q.At(j).Add(q.At(j + 1).Sub(q.At(j)).Scale(lambda))
		}
	}
	return q.At(0)
}
