package fred

import (
	"math"
	"time"
)

// DiscreteFrechetDistance is the result of a discrete Fréchet distance
// computation.
type DiscreteFrechetDistance struct {
	Value float64
	Time  float64
}

// DiscreteFrechet computes the discrete Fréchet distance between p and q via
// the standard bottom-up dynamic program.
func DiscreteFrechet(p, q Curve) DiscreteFrechetDistance {
	if !validCurvePairForDistance(p, q) {
		diagnosticf(1, "fred: discrete Frechet distance requires curves of at least 2 vertices and matching dimension")
		return DiscreteFrechetDistance{Value: quietNaN()}
	}

	start := time.Now()
	n, m := p.Complexity(), q.Complexity()

	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, m)
	}

	a[0][0] = p.At(0).Distance(q.At(0))
	for i := 1; i < n; i++ {
		a[i][0] = math.Max(a[i-1][0], p.At(i).Distance(q.At(0)))
	}
	for j := 1; j < m; j++ {
		a[0][j] = math.Max(a[0][j-1], p.At(0).Distance(q.At(j)))
	}
	for i := 1; i < n; i++ {
		for j := 1; j < m; j++ {
			least := math.Min(a[i-1][j], math.Min(a[i][j-1], a[i-1][j-1]))
			a[i][j] = math.Max(least, p.At(i).Distance(q.At(j)))
		}
	}

	return DiscreteFrechetDistance{Value: a[n-1][m-1], Time: time.Since(start).Seconds()}
}
