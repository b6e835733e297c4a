package fred

import (
	"testing"
)

func TestApproximateMinimumLinkSimplificationRespectsEpsilon(t *testing.T) {
	c := NewCurve("c", line2D(0, 0, 1, 0.01, 2, -0.01, 3, 0.01, 4, 0))
	simplified := ApproximateMinimumLinkSimplification(c, 0.5)

	if simplified.Complexity() < 2 {
		t.Fatalf("simplification must keep at least the two endpoints")
	}
	if !simplified.Front().Equal(c.Front()) || !simplified.Back().Equal(c.Back()) {
		t.Errorf("simplification must preserve the curve's endpoints")
	}
	if simplified.Complexity() >= c.Complexity() {
		t.Errorf("a generous epsilon should simplify a near-straight curve, got complexity %d", simplified.Complexity())
	}
}

func TestApproximateMinimumLinkSimplificationTightEpsilonKeepsAllVertices(t *testing.T) {
	c := NewCurve("c", line2D(0, 0, 1, 5, 2, -5, 3, 5, 4, -5))
	simplified := ApproximateMinimumLinkSimplification(c, 1e-9)

	if simplified.Complexity() != c.Complexity() {
		t.Errorf("a near-zero epsilon should keep every vertex, got complexity %d want %d", simplified.Complexity(), c.Complexity())
	}
}

func TestApproximateMinimumErrorSimplificationHitsTargetComplexity(t *testing.T) {
	c := NewCurve("c", line2D(0, 0, 1, 3, 2, -1, 3, 4, 4, 0, 5, 2))
	simplified := ApproximateMinimumErrorSimplification(c, 3)

	if simplified.Complexity() != 3 {
		t.Fatalf("got complexity %d, want 3", simplified.Complexity())
	}
}

func TestApproximateMinimumErrorSimplificationLLAtMostTwoReturnsEndpoints(t *testing.T) {
	c := NewCurve("c", line2D(0, 0, 1, 5, 2, 0, 3, 5, 4, 0))
	simplified := ApproximateMinimumErrorSimplification(c, 2)

	if !simplified.Front().Equal(c.Front()) || !simplified.Back().Equal(c.Back()) {
		t.Errorf("ll<=2 must return exactly [front, back]")
	}
}

func TestApproximateMinimumErrorSimplificationLLCoversComplexityReturnsUnchanged(t *testing.T) {
	c := NewCurve("c", line2D(0, 0, 1, 5, 2, 0))
	simplified := ApproximateMinimumErrorSimplification(c, c.Complexity())

	if !simplified.Equal(c) {
		t.Errorf("ll >= complexity should return the curve unchanged")
	}
}

func TestApproximateErrorIsAtLeastExactError(t *testing.T) {
	c := NewCurve("c", line2D(0, 0, 1, 3, 2, -1, 3, 4, 4, 0, 5, 2))
	ll := 3

	exact := NewShortcutGraph(c).MinimumErrorSimplification(ll)
	approx := ApproximateMinimumErrorSimplification(c, ll)

	exactErr := ContinuousFrechet(c, exact).Value
	approxErr := ContinuousFrechet(c, approx).Value

	if approxErr < exactErr-1e-6 {
		t.Errorf("approximate error (%v) should not undercut the exact optimum (%v)", approxErr, exactErr)
	}
}

func TestPadSimplificationRepeatsLastVertex(t *testing.T) {
	c := NewCurve("c", line2D(0, 0, 1, 1))
	padded := padSimplification(c, 4)

	if padded.Complexity() != 4 {
		t.Fatalf("got complexity %d, want 4", padded.Complexity())
	}
	if !padded.At(2).Equal(c.Back()) || !padded.At(3).Equal(c.Back()) {
		t.Errorf("padding must repeat the last vertex")
	}
}
