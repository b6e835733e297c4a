// Package jl implements Johnson-Lindenstrauss random projection for curves,
// a preprocessing step that only consumes the fred.Curve/fred.Points
// contracts and lives outside the core distance and clustering engines.
// Grounded in original_source/include/jl_transform.hpp's
// JLTransform::transform_naive.
package jl

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/dennisrohde/fred-go"
)

// Transform projects every point of every curve in curves into a lower
// dimension k via a dense Gaussian random matrix, dividing by sqrt(k), and
// returns the projected collection. k is chosen from the total point count
// N across all curves: k = ceil(2 ln(N) / epsilon^2) when empiricalK is
// true, or the tighter k = ceil(4 ln(N) / (epsilon^2/2 - epsilon^3/3))
// otherwise, matching JLTransform::transform_naive exactly.
func Transform(curves fred.Curves, epsilon float64, empiricalK bool) fred.Curves {
	n := totalPoints(curves)
	if n == 0 {
		return curves
	}

	k := targetDimension(n, epsilon, empiricalK)
	matrix := randomProjectionMatrix(k, curves.Dimensions())

	all := curves.All()
	projectedCurves := make([]fred.Points, len(all))

	var wg sync.WaitGroup
	wg.Add(len(all))
	for idx, c := range all {
		idx, c := idx, c
		go func() {
			defer wg.Done()
			pts := c.Points()
			projected := make(fred.Points, len(pts))
			for i, p := range pts {
				projected[i] = projectPoint(matrix, p, k)
			}
			projectedCurves[idx] = projected
		}()
	}
	wg.Wait()

	out := fred.NewCurves()
	for idx, c := range all {
		_ = out.Add(fred.NewCurve(c.Name(), projectedCurves[idx]))
	}
	return out
}

func totalPoints(curves fred.Curves) int {
	total := 0
	for _, c := range curves.All() {
		total += c.Complexity()
	}
	return total
}

func targetDimension(n int, epsilon float64, empiricalK bool) int {
	nf := float64(n)
	var k float64
	if empiricalK {
		k = 2 * math.Log(nf) / (epsilon * epsilon)
	} else {
		k = 4 * math.Log(nf) / (epsilon*epsilon/2 - epsilon*epsilon*epsilon/3)
	}
	return int(math.Ceil(k))
}

// randomProjectionMatrix builds a dense k x d matrix of independent
// standard-normal entries.
func randomProjectionMatrix(k, d int) [][]float64 {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	matrix := make([][]float64, k)
	for i := range matrix {
		row := make([]float64, d)
		for j := range row {
			row[j] = rng.NormFloat64()
		}
		matrix[i] = row
	}
	return matrix
}

func projectPoint(matrix [][]float64, p fred.Point, k int) fred.Point {
	out := make(fred.Point, len(matrix))
	for i, row := range matrix {
		var sum float64
		for j, v := range row {
			sum += v * p[j]
		}
		out[i] = sum / math.Sqrt(float64(k))
	}
	return out
}
