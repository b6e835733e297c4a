package fred

import (
	"math"
	"time"
)

// DTWDistance is the result of a discrete dynamic time warping computation.
type DTWDistance struct {
	Value    float64
	Time     float64
	Matching [][2]int
}

const (
	dtwDirDiag = iota
	dtwDirUp
	dtwDirLeft
)

type dtwCandidate struct {
	total float64
	dir   int
}

// DiscreteDTW computes the DTW distance and an optimal warping matching
// between p and q. When GetConfig().DTWContingency is set, per-axis warp
// counters cap consecutive repeated matches at ⌈√n⌉ + max(0, m−n+1) on the
// P-axis and the symmetric bound on the Q-axis.
func DiscreteDTW(p, q Curve) DTWDistance {
	if !validCurvePairForDistance(p, q) {
		diagnosticf(1, "fred: DTW distance requires curves of at least 2 vertices and matching dimension")
		return DTWDistance{Value: quietNaN()}
	}

	start := time.Now()
	n, m := p.Complexity(), q.Complexity()
	cfg := GetConfig()

	a := make([][]float64, n+1)
	dir := make([][]int, n+1)
	var runLeft, runUp [][]int
	if cfg.DTWContingency {
		runLeft = make([][]int, n+1)
		runUp = make([][]int, n+1)
	}
	for i := range a {
		a[i] = make([]float64, m+1)
		dir[i] = make([]int, m+1)
		if cfg.DTWContingency {
			runLeft[i] = make([]int, m+1)
			runUp[i] = make([]int, m+1)
		}
		for j := range a[i] {
			if i != 0 || j != 0 {
				a[i][j] = math.Inf(1)
			}
		}
	}

	capP := int(math.Ceil(math.Sqrt(float64(n)))) + max(0, m-n+1)
	capQ := int(math.Ceil(math.Sqrt(float64(m)))) + max(0, n-m+1)

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := p.At(i - 1).Distance(q.At(j - 1))

			cands := [3]dtwCandidate{
				{a[i-1][j-1] + cost, dtwDirDiag},
				{a[i-1][j] + cost, dtwDirUp},
				{a[i][j-1] + cost, dtwDirLeft},
			}

			best := -1
			for idx, c := range cands {
				if math.IsInf(c.total, 1) {
					continue
				}
				if cfg.DTWContingency {
					switch c.dir {
					case dtwDirUp:
						if runUp[i-1][j]+1 > capQ {
							continue
						}
					case dtwDirLeft:
						if runLeft[i][j-1]+1 > capP {
							continue
						}
					}
				}
				if best == -1 || c.total < cands[best].total {
					best = idx
				}
			}
			if best == -1 {
				best = dtwDirDiag
			}

			a[i][j] = cands[best].total
			dir[i][j] = cands[best].dir

			if cfg.DTWContingency {
				switch cands[best].dir {
				case dtwDirDiag:
					runLeft[i][j] = 0
					runUp[i][j] = 0
				case dtwDirUp:
					runLeft[i][j] = 0
					runUp[i][j] = runUp[i-1][j] + 1
				case dtwDirLeft:
					runLeft[i][j] = runLeft[i][j-1] + 1
					runUp[i][j] = 0
				}
			}
		}
	}

	return DTWDistance{
		Value:    a[n][m],
		Time:     time.Since(start).Seconds(),
		Matching: reconstructDTWMatching(dir, n, m),
	}
}

// reconstructDTWMatching walks the predecessor table from (n, m) back to
// (1, 1), emitting (i-1, j-1) pairs, then prepends the explicit (0, 0) first
// match.
func reconstructDTWMatching(dir [][]int, n, m int) [][2]int {
	var rev [][2]int
	i, j := n, m
	for i > 1 || j > 1 {
		rev = append(rev, [2]int{i - 1, j - 1})
		switch dir[i][j] {
		case dtwDirDiag:
			i--
			j--
		case dtwDirUp:
			i--
		case dtwDirLeft:
			j--
		}
	}
	rev = append(rev, [2]int{0, 0})

	matching := make([][2]int, len(rev))
	for idx, pair := range rev {
		matching[len(rev)-1-idx] = pair
	}
	return matching
}
