package fred

import (
	"math"
	"testing"
)

func squareAt(dx, dy float64) Curve {
	return NewCurve("square", Points{
		NewPoint(dx+0, dy+0),
		NewPoint(dx+1, dy+0),
		NewPoint(dx+1, dy+1),
		NewPoint(dx+0, dy+1),
	})
}

func TestKLCenterThreeDistinctSquares(t *testing.T) {
	curves := NewCurves()
	_ = curves.Add(squareAt(0, 0))
	_ = curves.Add(squareAt(10, 0))
	_ = curves.Add(squareAt(20, 0))

	ctx := NewClusteringContext()
	result := KLCenter(ctx, curves, 3, 5, 10, false, false, false, DistanceDiscreteFrechet)

	if len(result.CenterIndices) != 3 {
		t.Fatalf("got %d centers, want 3", len(result.CenterIndices))
	}
	seen := map[int]bool{}
	for _, c := range result.CenterIndices {
		if seen[c] {
			t.Errorf("center index %d chosen more than once", c)
		}
		seen[c] = true
	}
	if result.Value > 1e-6 {
		t.Errorf("identical-shape clusters should have objective ~0, got %v", result.Value)
	}
}

func TestKLMedianNoisySineCurves(t *testing.T) {
	base := make(Points, 8)
	for i := range base {
		x := float64(i)
		base[i] = NewPoint(x, math.Sin(x))
	}
	rng := NewUniformRandomGenerator(-0.01, 0.01)
	curves := NewCurves()
	for n := 0; n < 50; n++ {
		pts := make(Points, len(base))
		for i, p := range base {
			pts[i] = NewPoint(p[0]+rng.Get(), p[1]+rng.Get())
		}
		_ = curves.Add(NewCurve("noisy", pts))
	}

	ctx := NewClusteringContext()
	result := KLMedian(ctx, curves, 1, 4, false, false, DistanceDiscreteFrechet)

	if len(result.CenterIndices) != 1 {
		t.Fatalf("got %d centers, want 1", len(result.CenterIndices))
	}

	sum := 0.0
	for j := 0; j < curves.Size(); j++ {
		sum += ctx.distance(curves, j, result.CenterIndices[0], 4, false, DistanceDiscreteFrechet).Value
	}
	if math.Abs(sum-result.Value) > 1e-6 {
		t.Errorf("objective %v should equal the sum of per-curve distances %v", result.Value, sum)
	}

	result.ComputeAssignment(ctx, curves, 4, false)
	balls := result.ComputeCenterEnclosingBalls(ctx, curves, 4, false)
	if len(balls) != 1 || len(balls[0]) != 4 {
		t.Fatalf("expected 1 center with 4 balls, got %d centers, first has %d balls", len(balls), len(balls[0]))
	}
}

func TestClusterAssignmentCoversEveryInputExactlyOnce(t *testing.T) {
	curves := NewCurves()
	_ = curves.Add(squareAt(0, 0))
	_ = curves.Add(squareAt(10, 0))
	_ = curves.Add(squareAt(0.1, 0.1))
	_ = curves.Add(squareAt(10.1, 0))

	ctx := NewClusteringContext()
	result := KLCenter(ctx, curves, 2, 4, 10, false, false, false, DistanceDiscreteFrechet)
	result.ComputeAssignment(ctx, curves, 4, false)

	seen := make(map[int]bool)
	for _, members := range result.Assignment {
		for _, m := range members {
			if seen[m] {
				t.Errorf("curve %d assigned to more than one cluster", m)
			}
			seen[m] = true
		}
	}
	if len(seen) != curves.Size() {
		t.Errorf("expected all %d curves assigned, got %d", curves.Size(), len(seen))
	}
}

func TestClusterAssignmentIsIdempotent(t *testing.T) {
	curves := NewCurves()
	_ = curves.Add(squareAt(0, 0))
	_ = curves.Add(squareAt(10, 0))

	ctx := NewClusteringContext()
	result := KLCenter(ctx, curves, 2, 4, 5, false, false, false, DistanceDiscreteFrechet)
	result.ComputeAssignment(ctx, curves, 4, false)
	first := result.Assignment

	result.ComputeAssignment(ctx, curves, 4, false)
	second := result.Assignment

	if len(first) != len(second) {
		t.Fatalf("repeated ComputeAssignment produced differently-sized assignments")
	}
	for c, members := range first {
		if len(members) != len(second[c]) {
			t.Errorf("cluster %d assignment changed across repeated calls", c)
		}
	}
}

func TestClusteringContextConsecutiveCallReusesCache(t *testing.T) {
	curves := NewCurves()
	_ = curves.Add(squareAt(0, 0))
	_ = curves.Add(squareAt(10, 0))

	ctx := NewClusteringContext()
	_ = KLCenter(ctx, curves, 2, 4, 5, false, false, false, DistanceDiscreteFrechet)
	if ctx.inputSize != curves.Size() {
		t.Fatalf("expected context to record input size %d, got %d", curves.Size(), ctx.inputSize)
	}
	ctx.simplifications.Set("sentinel", Curve{}, 0)

	_ = KLCenter(ctx, curves, 2, 4, 5, true, false, false, DistanceDiscreteFrechet)
	if ctx.inputSize != curves.Size() {
		t.Errorf("consecutive_call with matching input size should preserve cached state")
	}
	if _, ok := ctx.simplifications.Get("sentinel"); !ok {
		t.Errorf("consecutive_call with matching input size should keep previously cached entries")
	}
}

func TestClusteringContextMismatchedConsecutiveCallResets(t *testing.T) {
	small := NewCurves()
	_ = small.Add(squareAt(0, 0))

	large := NewCurves()
	_ = large.Add(squareAt(0, 0))
	_ = large.Add(squareAt(10, 0))
	_ = large.Add(squareAt(20, 0))

	ctx := NewClusteringContext()
	_ = KLCenter(ctx, small, 1, 4, 5, false, false, false, DistanceDiscreteFrechet)
	ctx.simplifications.Set("sentinel", Curve{}, 0)
	_ = KLCenter(ctx, large, 1, 4, 5, true, false, false, DistanceDiscreteFrechet)

	if ctx.inputSize != large.Size() {
		t.Errorf("a size-mismatched consecutive_call should reallocate to the new input size")
	}
	if _, ok := ctx.simplifications.Get("sentinel"); ok {
		t.Errorf("a size-mismatched consecutive_call should discard previously cached entries")
	}
}

func TestKLClusterKGreaterThanInputClampsToInputSize(t *testing.T) {
	curves := NewCurves()
	_ = curves.Add(squareAt(0, 0))
	_ = curves.Add(squareAt(10, 0))

	ctx := NewClusteringContext()
	result := KLCenter(ctx, curves, 5, 4, 5, false, false, false, DistanceDiscreteFrechet)

	if len(result.CenterIndices) != curves.Size() {
		t.Errorf("got %d centers, want %d (clamped to input size)", len(result.CenterIndices), curves.Size())
	}
}
