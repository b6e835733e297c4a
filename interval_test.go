package fred

import "testing"

func TestIntervalDefaultIsEmpty(t *testing.T) {
	var iv Interval
	if !iv.IsEmpty() {
		t.Error("zero value Interval should be empty")
	}
	if !EmptyInterval().IsEmpty() {
		t.Error("EmptyInterval() should be empty")
	}
}

func TestIntervalNonEmpty(t *testing.T) {
	iv := Interval{Begin: 0.2, End: 0.8}
	if iv.IsEmpty() {
		t.Error("[0.2, 0.8] should not be empty")
	}
}

func TestIntervalReset(t *testing.T) {
	iv := Interval{Begin: 0.2, End: 0.8}
	iv.Reset()
	if !iv.IsEmpty() {
		t.Error("Reset should produce an empty interval")
	}
}

func TestIntervalLess(t *testing.T) {
	a := Interval{Begin: 0.1, End: 0.5}
	b := Interval{Begin: 0.1, End: 0.6}
	c := Interval{Begin: 0.2, End: 0.3}
	if !a.Less(b) {
		t.Error("expected a < b (same Begin, smaller End)")
	}
	if !a.Less(c) {
		t.Error("expected a < c (smaller Begin)")
	}
}

func TestIntervalIntersection(t *testing.T) {
	a := Interval{Begin: 0.0, End: 0.5}
	b := Interval{Begin: 0.25, End: 0.75}
	got := a.Intersection(b)
	if got.Begin != 0.25 || got.End != 0.5 {
		t.Errorf("got [%v,%v], want [0.25,0.5]", got.Begin, got.End)
	}

	disjoint := Interval{Begin: 0.6, End: 0.9}
	if !a.Intersection(disjoint).IsEmpty() {
		t.Error("disjoint intervals should intersect to empty")
	}
}
