package fred

import "math"

// machineEpsilon is the float64 machine epsilon, matching
// std::numeric_limits<double>::epsilon() in original_source/include/types.hpp.
const machineEpsilon = 2.220446049250313e-16

// nearlyEqual reports whether a and b are equal up to a relative ULP
// tolerance, grounded in original_source/include/types.hpp's near_eq
// template: |x-y| <= min(|x|,|y|) * epsilon.
func nearlyEqual(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	diff := math.Abs(a - b)
	smaller := math.Min(math.Abs(a), math.Abs(b))
	return diff <= smaller*machineEpsilon
}

// ulpEpsilon returns an absolute tolerance suitable for comparing values
// near a and b, used by Interval.IsEmpty to decide whether a near-zero
// width should be treated as empty.
func ulpEpsilon(a, b float64) float64 {
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale == 0 {
		return math.SmallestNonzeroFloat64
	}
	return scale * machineEpsilon
}

// quietNaN returns a NaN value used to signal invalid input to a caller that
// inspects the result rather than an error return.
func quietNaN() float64 {
	return math.NaN()
}

// boundingSphere computes a two-pass approximate minimum enclosing ball of
// points, grounded line-for-line on original_source/src/bounding.cpp
// (Ritter's algorithm). It is a constant-factor approximation, not the
// exact minimum enclosing ball.
func boundingSphere(points Points) (center Point, radius float64) {
	if len(points) < 1 {
		return Point{}, 0
	}
	if len(points) < 2 {
		return points[0].Clone(), 0
	}

	x := points[0]
	y := x
	maxDistSqr := -1.0
	for _, p := range points {
		if d := x.SquaredDistance(p); d > maxDistSqr {
			maxDistSqr = d
			y = p
		}
	}

	if len(points) < 3 {
		return x.Add(y).Scale(0.5), x.Distance(y) / 2
	}

	z := y
	maxDistSqr = -1.0
	for _, p := range points {
		if d := y.SquaredDistance(p); d > maxDistSqr {
			maxDistSqr = d
			z = p
		}
	}

	center = y.Add(z).Scale(0.5)
	radius = y.Distance(z) / 2

	for _, p := range points {
		dist := center.Distance(p)
		if dist > radius {
			radius = (radius + dist) / 2
			center = center.Scale(radius).Add(p.Scale(dist - radius)).Div(dist)
		}
	}

	return center, radius
}
