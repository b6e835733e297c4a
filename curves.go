package fred

import "errors"

// ErrDimensionMismatch is returned by Curves.Add when the curve being added
// does not share the collection's dimension.
var ErrDimensionMismatch = errors.New("fred: curve dimension does not match collection dimension")

// Points is an ordered sequence of Point sharing a dimension.
type Points []Point

// Curves is an ordered sequence of Curve, caching the maximum complexity and
// the dimension shared by all members.
type Curves struct {
	curves        []Curve
	maxComplexity int
	dimensions    int
}

// NewCurves returns an empty Curves collection.
func NewCurves() Curves {
	return Curves{}
}

// Add appends c to the collection. If the collection already holds curves
// of a different dimension, c is rejected and ErrDimensionMismatch is
// returned; the collection is left unchanged.
func (cs *Curves) Add(c Curve) error {
	if len(cs.curves) > 0 && c.Dimensions() != cs.dimensions {
		return ErrDimensionMismatch
	}
	if len(cs.curves) == 0 {
		cs.dimensions = c.Dimensions()
	}
	cs.curves = append(cs.curves, c)
	if c.Complexity() > cs.maxComplexity {
		cs.maxComplexity = c.Complexity()
	}
	return nil
}

// Size returns the number of curves in the collection.
func (cs Curves) Size() int {
	return len(cs.curves)
}

// Empty reports whether the collection has no curves.
func (cs Curves) Empty() bool {
	return len(cs.curves) == 0
}

// Get returns the i-th curve.
func (cs Curves) Get(i int) Curve {
	return cs.curves[i]
}

// Dimensions returns the dimension shared by all curves in the collection.
func (cs Curves) Dimensions() int {
	return cs.dimensions
}

// MaxComplexity returns the largest complexity among the collection's
// curves, cached at Add time.
func (cs Curves) MaxComplexity() int {
	return cs.maxComplexity
}

// All returns the curves in the collection in index order. The returned
// slice is the collection's own backing slice, not a copy.
func (cs Curves) All() []Curve {
	return cs.curves
}
