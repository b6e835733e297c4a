package fred

import "math"

// ShortcutGraph is the complete DAG on the vertices of a curve whose edge
// (i, j) weights the continuous Fréchet distance between the chord
// (C[i], C[j]) and the subcurve C[i..j].
type ShortcutGraph struct {
	curve Curve
	edges [][]float64 // edges[i][j], defined for i < j; math.Inf(1) elsewhere
}

// NewShortcutGraph builds the all-pairs edge-weight matrix of c, computing
// each entry via the continuous Fréchet engine.
func NewShortcutGraph(c Curve) *ShortcutGraph {
	n := c.Complexity()
	edges := make([][]float64, n)
	for i := range edges {
		edges[i] = make([]float64, n)
		for j := range edges[i] {
			edges[i][j] = math.Inf(1)
		}
	}

	type pair struct{ i, j int }
	var pairs []pair
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, pair{i, j})
		}
	}

	parallelFor(len(pairs), func(idx int) {
		i, j := pairs[idx].i, pairs[idx].j
		sub := c.Subcurve(i, j)
		chord := NewCurve("chord", Points{c.At(i), c.At(j)})
		edges[i][j] = ContinuousFrechet(sub, chord).Value
	})

	return &ShortcutGraph{curve: c, edges: edges}
}

// MinimumErrorSimplification solves the exact minimum-error simplification
// to ll vertices via a DP over link count. When ll <= 2 the result is
// exactly [front, back]; when ll covers the curve's full complexity the
// curve is returned as-is.
func (g *ShortcutGraph) MinimumErrorSimplification(ll int) Curve {
	n := g.curve.Complexity()
	if ll >= n {
		return g.curve
	}
	if ll <= 2 {
		return NewCurve(g.curve.Name()+" simplification", Points{g.curve.Front(), g.curve.Back()})
	}

	l := ll - 1
	distances := make([][]float64, n)
	predecessors := make([][]int, n)
	for j := range distances {
		distances[j] = make([]float64, l)
		predecessors[j] = make([]int, l)
	}

	for j := 0; j < n; j++ {
		distances[j][0] = g.edges[0][j]
		predecessors[j][0] = 0
	}

	for stage := 1; stage < l; stage++ {
		for j := 0; j < n; j++ {
			best := -1
			bestVal := math.Inf(1)
			for k := 0; k < j; k++ {
				v := math.Max(distances[k][stage-1], g.edges[k][j])
				if v < bestVal {
					bestVal = v
					best = k
				}
			}
			distances[j][stage] = bestVal
			predecessors[j][stage] = best
		}
	}

	indices := []int{n - 1}
	cur := n - 1
	for stage := l - 1; stage >= 0; stage-- {
		pred := predecessors[cur][stage]
		indices = append(indices, pred)
		cur = pred
	}

	pts := make(Points, len(indices))
	for idx, vi := range indices {
		pts[len(indices)-1-idx] = g.curve.At(vi)
	}
	return NewCurve(g.curve.Name()+" simplification", pts)
}
