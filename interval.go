package fred

// Interval is a closed sub-interval of [0,1], used to represent free-space
// cells of the Fréchet free-space diagram and reachability windows on its
// edges. The zero value {0, 0} counts as empty under IsEmpty, like the
// canonical empty interval returned by EmptyInterval.
type Interval struct {
	Begin float64
	End   float64
}

// EmptyInterval returns the canonical empty interval {1, 0}, matching
// original_source/include/interval.hpp's default-constructed Interval.
func EmptyInterval() Interval {
	return Interval{Begin: 1, End: 0}
}

// IsEmpty reports whether the interval is empty. Emptiness is decided with
// ULP tolerance: a width that is not clearly positive counts as empty, even
// if Begin is not literally greater than End.
func (iv Interval) IsEmpty() bool {
	if iv.End-iv.Begin >= ulpEpsilon(iv.Begin, iv.End) {
		return iv.Begin > iv.End
	}
	return true
}

// Reset clears iv to the canonical empty interval.
func (iv *Interval) Reset() {
	*iv = EmptyInterval()
}

// Less orders intervals lexicographically on (Begin, End).
func (iv Interval) Less(other Interval) bool {
	if iv.Begin != other.Begin {
		return iv.Begin < other.Begin
	}
	return iv.End < other.End
}

// Intersects reports whether iv and other share at least one point, treating
// either as empty per IsEmpty.
func (iv Interval) Intersects(other Interval) bool {
	if iv.IsEmpty() || other.IsEmpty() {
		return false
	}
	return iv.Begin <= other.End && other.Begin <= iv.End
}

// Intersection returns the intersection of iv and other, or the empty
// interval if they do not intersect.
func (iv Interval) Intersection(other Interval) Interval {
	if !iv.Intersects(other) {
		return EmptyInterval()
	}
	begin := iv.Begin
	if other.Begin > begin {
		begin = other.Begin
	}
	end := iv.End
	if other.End < end {
		end = other.End
	}
	return Interval{Begin: begin, End: end}
}
