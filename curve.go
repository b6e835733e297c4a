package fred

import "fmt"

// Curve is a borrow-free view over a Points sequence: a name, the underlying
// points, and a subcurve window [vstart, vend] (inclusive) that restricts
// indexed access, iteration, and size without copying or mutating the
// underlying sequence.
type Curve struct {
	points Points
	name   string
	vstart int
	vend   int
}

// NewCurve returns a Curve over points with the window covering the whole
// sequence.
func NewCurve(name string, points Points) Curve {
	c := Curve{points: points, name: name}
	c.Reset()
	return c
}

// Name returns the curve's name.
func (c Curve) Name() string {
	return c.name
}

// Dimensions returns the dimension shared by the curve's points, or 0 for an
// empty curve.
func (c Curve) Dimensions() int {
	if len(c.points) == 0 {
		return 0
	}
	return c.points[0].Dimensions()
}

// Complexity returns the number of vertices visible through the current
// window.
func (c Curve) Complexity() int {
	if len(c.points) == 0 {
		return 0
	}
	return c.vend - c.vstart + 1
}

// Empty reports whether the curve has no vertices.
func (c Curve) Empty() bool {
	return len(c.points) == 0
}

// At returns the i-th vertex visible through the current window.
func (c Curve) At(i int) Point {
	return c.points[c.vstart+i]
}

// Front returns the first vertex visible through the current window.
func (c Curve) Front() Point {
	return c.points[c.vstart]
}

// Back returns the last vertex visible through the current window.
func (c Curve) Back() Point {
	return c.points[c.vend]
}

// Points returns the vertices visible through the current window, as a
// freshly allocated slice; mutating it never affects the curve.
func (c Curve) Points() Points {
	out := make(Points, c.Complexity())
	copy(out, c.points[c.vstart:c.vend+1])
	return out
}

// SetSubcurve restricts the window to [i, j] (indices relative to the full
// underlying sequence). The caller is responsible for 0 <= i <= j <
// len(underlying points); out-of-range windows are not validated here, in
// keeping with the engine's internal callers always supplying valid bounds.
func (c *Curve) SetSubcurve(i, j int) {
	c.vstart = i
	c.vend = j
}

// Subcurve returns a new Curve with the window restricted to [i, j],
// leaving c itself untouched.
func (c Curve) Subcurve(i, j int) Curve {
	sub := c
	sub.SetSubcurve(i, j)
	return sub
}

// Reset restores the window to the full underlying sequence.
func (c *Curve) Reset() {
	c.vstart = 0
	if len(c.points) == 0 {
		c.vend = -1
		return
	}
	c.vend = len(c.points) - 1
}

// Append adds a point to the underlying sequence and repositions the window
// to cover the full sequence, including the newly added point.
func (c *Curve) Append(p Point) {
	c.points = append(c.points, p)
	c.Reset()
}

func (c Curve) String() string {
	return fmt.Sprintf("%s%v", c.name, c.Points())
}

// Equal reports whether c and o have the same visible vertices, within ULP
// tolerance, ignoring name.
func (c Curve) Equal(o Curve) bool {
	if c.Complexity() != o.Complexity() {
		return false
	}
	for i := 0; i < c.Complexity(); i++ {
		if !c.At(i).Equal(o.At(i)) {
			return false
		}
	}
	return true
}
