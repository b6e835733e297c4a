package fred

import (
	"math"
	"testing"
)

func TestMinimumErrorSimplificationRightAngle(t *testing.T) {
	c := NewCurve("c", line2D(0, 0, 2, 0, 2, 2))
	g := NewShortcutGraph(c)
	simplified := g.MinimumErrorSimplification(2)

	if simplified.Complexity() != 2 {
		t.Fatalf("got complexity %d, want 2", simplified.Complexity())
	}
	if !simplified.Front().Equal(NewPoint(0, 0)) || !simplified.Back().Equal(NewPoint(2, 2)) {
		t.Errorf("got [%v,%v], want [(0,0),(2,2)]", simplified.Front(), simplified.Back())
	}
}

func TestMinimumErrorSimplificationStraightLine(t *testing.T) {
	c := NewCurve("c", line2D(0, 0, 1, 0, 2, 0, 3, 0, 4, 0))
	g := NewShortcutGraph(c)
	simplified := g.MinimumErrorSimplification(2)

	if simplified.Complexity() != 2 {
		t.Fatalf("got complexity %d, want 2", simplified.Complexity())
	}
	if !simplified.Front().Equal(NewPoint(0, 0)) || !simplified.Back().Equal(NewPoint(4, 0)) {
		t.Errorf("got [%v,%v], want [(0,0),(4,0)]", simplified.Front(), simplified.Back())
	}

	chord := NewCurve("chord", Points{simplified.Front(), simplified.Back()})
	err := ContinuousFrechet(c, chord).Value
	if err > 1e-9 {
		t.Errorf("collinear simplification should have zero error, got %v", err)
	}
}

func TestMinimumErrorSimplificationLLAtMostTwoReturnsEndpoints(t *testing.T) {
	c := NewCurve("c", line2D(0, 0, 1, 5, 2, 0, 3, 5, 4, 0))
	g := NewShortcutGraph(c)
	simplified := g.MinimumErrorSimplification(2)

	if simplified.Complexity() != 2 {
		t.Fatalf("got complexity %d, want 2", simplified.Complexity())
	}
	if !simplified.Front().Equal(c.Front()) || !simplified.Back().Equal(c.Back()) {
		t.Errorf("ll<=2 must return exactly [front, back]")
	}
}

func TestMinimumErrorSimplificationLLCoversComplexityReturnsUnchanged(t *testing.T) {
	c := NewCurve("c", line2D(0, 0, 1, 5, 2, 0))
	g := NewShortcutGraph(c)
	simplified := g.MinimumErrorSimplification(c.Complexity())

	if !simplified.Equal(c) {
		t.Errorf("ll >= complexity should return the curve unchanged")
	}
}

func TestMinimumErrorSimplificationMonotoneInLinkCount(t *testing.T) {
	c := NewCurve("c", line2D(0, 0, 1, 3, 2, -1, 3, 4, 4, 0, 5, 2))
	g := NewShortcutGraph(c)

	chord := func(simplified Curve) float64 {
		return ContinuousFrechet(c, simplified).Value
	}

	errAt3 := chord(g.MinimumErrorSimplification(3))
	errAt5 := chord(g.MinimumErrorSimplification(5))
	if errAt5 > errAt3+1e-9 {
		t.Errorf("more links should not increase the simplification error: err(3)=%v err(5)=%v", errAt3, errAt5)
	}
}

func TestShortcutGraphEdgesAreUpperTriangular(t *testing.T) {
	c := NewCurve("c", line2D(0, 0, 1, 2, 2, 0))
	g := NewShortcutGraph(c)
	if math.IsInf(g.edges[0][2], 1) {
		t.Error("edge (0,2) should have a finite weight")
	}
	if g.edges[1][0] != math.Inf(1) {
		t.Error("edge (1,0) with i>j should remain +Inf")
	}
}
