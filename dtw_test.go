package fred

import (
	"math"
	"testing"
)

func TestDTWUnitSquares(t *testing.T) {
	p := NewCurve("p", line2D(0, 0, 1, 0))
	q := NewCurve("q", line2D(0, 1, 1, 1))

	d := DiscreteDTW(p, q)
	if math.Abs(d.Value-2.0) > 1e-9 {
		t.Errorf("got %v, want 2.0", d.Value)
	}
}

func TestDTWMatchingStartsAtOrigin(t *testing.T) {
	p := NewCurve("p", line2D(0, 0, 1, 0))
	q := NewCurve("q", line2D(0, 1, 1, 1))

	d := DiscreteDTW(p, q)
	if len(d.Matching) == 0 {
		t.Fatal("expected a non-empty matching")
	}
	if d.Matching[0] != [2]int{0, 0} {
		t.Errorf("matching must start with the explicit (0,0) pair, got %v", d.Matching[0])
	}
	last := d.Matching[len(d.Matching)-1]
	if last != [2]int{1, 1} {
		t.Errorf("matching must end at the last vertex pair, got %v", last)
	}
}

func TestDTWMismatchedDimensionsIsNaN(t *testing.T) {
	p := NewCurve("p", Points{NewPoint(0, 0), NewPoint(1, 1)})
	q := NewCurve("q", Points{NewPoint(0, 0, 0), NewPoint(1, 1, 1)})

	d := DiscreteDTW(p, q)
	if !math.IsNaN(d.Value) {
		t.Errorf("mismatched dimensions should yield NaN, got %v", d.Value)
	}
}

func TestDTWContingencyCapsConsecutiveRepeats(t *testing.T) {
	cfg := GetConfig()
	cfg.DTWContingency = true
	SetConfig(cfg)
	defer SetConfig(DefaultConfig())

	n := 20
	pPoints := make(Points, n)
	for i := range pPoints {
		pPoints[i] = NewPoint(float64(i), 0)
	}
	qPoints := make(Points, n+15)
	for i := range qPoints {
		qPoints[i] = NewPoint(float64(i)/2, 0)
	}
	p := NewCurve("p", pPoints)
	q := NewCurve("q", qPoints)

	d := DiscreteDTW(p, q)

	capP := int(math.Ceil(math.Sqrt(float64(n)))) + max(0, len(qPoints)-n+1)
	run := 0
	maxRun := 0
	for i := 1; i < len(d.Matching); i++ {
		if d.Matching[i][0] == d.Matching[i-1][0] {
			run++
		} else {
			run = 0
		}
		if run > maxRun {
			maxRun = run
		}
	}
	if maxRun > capP {
		t.Errorf("got a run of %d consecutive repeats, want at most %d", maxRun, capP)
	}
}
