package fred

import (
	"fmt"
	"math"
	"strings"
)

// Point is a point in d-dimensional Euclidean space, represented as a dense
// slice of coordinates. All points participating in the same computation
// must share the same dimension; the package does not check this on every
// arithmetic operation, only at a few boundaries such as Curves.Add and the
// top-level distance functions.
type Point []float64

// Vector is an alias for Point, used where a value is conceptually a
// displacement rather than a position.
type Vector = Point

// NewPoint returns a Point holding a copy of coords.
func NewPoint(coords ...float64) Point {
	p := make(Point, len(coords))
	copy(p, coords)
	return p
}

// Dimensions returns the number of coordinates of p.
func (p Point) Dimensions() int {
	return len(p)
}

func (p Point) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = fmt.Sprintf("%g", c)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	q := make(Point, len(p))
	copy(q, p)
	return q
}

// Add returns p + o.
func (p Point) Add(o Point) Point {
	r := make(Point, len(p))
	for i := range p {
		r[i] = p[i] + o[i]
	}
	return r
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	r := make(Point, len(p))
	for i := range p {
		r[i] = p[i] - o[i]
	}
	return r
}

// Scale returns p * f.
func (p Point) Scale(f float64) Point {
	r := make(Point, len(p))
	for i := range p {
		r[i] = p[i] * f
	}
	return r
}

// Div returns p / f.
func (p Point) Div(f float64) Point {
	r := make(Point, len(p))
	for i := range p {
		r[i] = p[i] / f
	}
	return r
}

// Dot returns the dot product of p and o.
func (p Point) Dot(o Point) float64 {
	var sum float64
	for i := range p {
		sum += p[i] * o[i]
	}
	return sum
}

// SquaredLength returns the squared Euclidean norm of p, treated as a
// vector from the origin.
func (p Point) SquaredLength() float64 {
	return p.Dot(p)
}

// Length returns the Euclidean norm of p.
func (p Point) Length() float64 {
	return math.Sqrt(p.SquaredLength())
}

// SquaredDistance returns the squared Euclidean distance between p and o.
func (p Point) SquaredDistance(o Point) float64 {
	var sum float64
	for i := range p {
		d := p[i] - o[i]
		sum += d * d
	}
	return sum
}

// Distance returns the Euclidean distance between p and o.
func (p Point) Distance(o Point) float64 {
	return math.Sqrt(p.SquaredDistance(o))
}

// Equal reports whether p and o have the same dimension and ULP-nearly-equal
// coordinates.
func (p Point) Equal(o Point) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if !nearlyEqual(p[i], o[i]) {
			return false
		}
	}
	return true
}

// SquaredDistanceToSegment returns the squared distance from p to the
// segment [a, b]. When a and b coincide the segment degenerates to a point
// and the result falls back to the point-to-point squared distance (the
// projective lower bound's zero-length-segment fallback, see DESIGN.md).
func (p Point) SquaredDistanceToSegment(a, b Point) float64 {
	ab := b.Sub(a)
	abLenSqr := ab.SquaredLength()
	if abLenSqr == 0 {
		return p.SquaredDistance(a)
	}
	t := p.Sub(a).Dot(ab) / abLenSqr
	switch {
	case t <= 0:
		return p.SquaredDistance(a)
	case t >= 1:
		return p.SquaredDistance(b)
	default:
		proj := a.Add(ab.Scale(t))
		return p.SquaredDistance(proj)
	}
}

// BallSegmentIntersectionInterval computes the closed sub-interval of the
// segment parameter λ ∈ [0,1] for the segment from a to b such that
// ‖a + λ(b−a) − q‖² ≤ radiusSqr, where q is the receiver.
//
// When a == b the segment degenerates to a point: the result is the full
// [0,1] interval if that point lies within radius of q, otherwise empty.
func (q Point) BallSegmentIntersectionInterval(radiusSqr float64, a, b Point) Interval {
	u := b.Sub(a)
	uLenSqr := u.SquaredLength()
	if uLenSqr == 0 {
		if a.SquaredDistance(q) <= radiusSqr {
			return Interval{Begin: 0, End: 1}
		}
		return Interval{}
	}

	aq := q.Sub(a)
	p := -2 * aq.Dot(u) / uLenSqr
	c := (aq.SquaredLength() - radiusSqr) / uLenSqr

	discriminant := p*p/4 - c
	if discriminant < 0 {
		return Interval{}
	}

	sqrtDisc := math.Sqrt(discriminant)
	lambda1 := -p/2 - sqrtDisc
	lambda2 := -p/2 + sqrtDisc

	begin := math.Max(0, lambda1)
	end := math.Min(1, lambda2)
	return Interval{Begin: begin, End: end}
}

// Centroid returns the arithmetic mean of points. An empty sequence yields
// the zero-dimensional point; callers are not expected to pass one under
// normal use.
func Centroid(points Points) Point {
	if len(points) == 0 {
		return Point{}
	}
	sum := make(Point, points[0].Dimensions())
	for _, p := range points {
		for i, c := range p {
			sum[i] += c
		}
	}
	return sum.Scale(1 / float64(len(points)))
}
