package fred

import "math"

// ApproximateMinimumLinkSimplification produces a simplification of c whose
// chords each stay within epsilon (continuous Fréchet distance to the
// subcurve they shortcut), using exponential doubling followed by a binary
// search for the largest feasible offset at each step.
func ApproximateMinimumLinkSimplification(c Curve, epsilon float64) Curve {
	n := c.Complexity()
	if n == 0 {
		return c
	}

	indices := []int{0}
	i := 0
	for i < n-1 {
		limit := n - 1 - i

		low := 0
		offset := 1
		for offset <= limit && chordWithinError(c, i, offset, epsilon) {
			low = offset
			offset *= 2
		}

		high := offset
		if high > limit {
			high = limit
		}
		for low < high {
			mid := low + (high-low+1)/2
			if chordWithinError(c, i, mid, epsilon) {
				low = mid
			} else {
				high = mid - 1
			}
		}
		if low == 0 {
			// Guarantees forward progress even when even the shortest
			// shortcut from i exceeds epsilon.
			low = 1
		}

		indices = append(indices, i+low)
		i += low
	}

	pts := make(Points, len(indices))
	for idx, vi := range indices {
		pts[idx] = c.At(vi)
	}
	return NewCurve(c.Name()+" simplification", pts)
}

// chordWithinError reports whether the continuous Fréchet distance from the
// subcurve c[i..i+offset] to its chord is at most epsilon.
func chordWithinError(c Curve, i, offset int, epsilon float64) bool {
	sub := c.Subcurve(i, i+offset)
	chord := NewCurve("chord", Points{c.At(i), c.At(i + offset)})
	return ContinuousFrechet(sub, chord).Value <= epsilon
}

// ApproximateMinimumErrorSimplification binary-searches the smallest error
// bound for which ApproximateMinimumLinkSimplification produces a curve of
// complexity at most ell, padding the result by repeating the last vertex
// if it is strictly shorter.
func ApproximateMinimumErrorSimplification(c Curve, ell int) Curve {
	n := c.Complexity()
	if ell >= n {
		return c
	}
	if ell <= 2 {
		return NewCurve(c.Name()+" simplification", Points{c.Front(), c.Back()})
	}

	endpoints := NewCurve("chord", Points{c.Front(), c.Back()})
	lo := 0.0
	hi := DiscreteFrechet(c, endpoints).Value + 1
	for ApproximateMinimumLinkSimplification(c, hi).Complexity() > ell {
		hi *= 2
	}

	cfg := GetConfig()
	tolerance := math.Max(hi*cfg.ContinuousFrechetError, machineEpsilon)

	best := ApproximateMinimumLinkSimplification(c, hi)
	for hi-lo > tolerance {
		mid := (lo + hi) / 2
		candidate := ApproximateMinimumLinkSimplification(c, mid)
		if candidate.Complexity() <= ell {
			hi = mid
			best = candidate
		} else {
			lo = mid
		}
	}

	return padSimplification(best, ell)
}

// padSimplification repeats c's last vertex until it reaches complexity
// ell, used when an approximate simplification undershoots the target.
func padSimplification(c Curve, ell int) Curve {
	if c.Complexity() >= ell {
		return c
	}
	pts := c.Points()
	for len(pts) < ell {
		pts = append(pts, c.Back())
	}
	return NewCurve(c.Name(), pts)
}
