package traj

import (
	"math"
	"testing"
)

func TestInterpolateDensity(t *testing.T) {
	// Exactly 3 revolutions at 100 samples per orbit: 301 points covering
	// the sweep with both endpoints.
	h := makeSpiralHistory(3, 40)
	dense, err := InterpolateByLongitude(h, 100)
	if err != nil {
		t.Fatalf("InterpolateByLongitude: %v", err)
	}
	if got := dense.Len(); got != 301 {
		t.Errorf("expected 301 dense samples for 3 revolutions, got %d", got)
	}
}

func TestInterpolateLongitudeGrid(t *testing.T) {
	const segPerOrbit = 100
	h := makeSpiralHistory(3, 40)
	dense, err := InterpolateByLongitude(h, segPerOrbit)
	if err != nil {
		t.Fatalf("InterpolateByLongitude: %v", err)
	}

	step := 2 * math.Pi / segPerOrbit
	first := h.Y[0].L
	last := h.Y[h.Len()-1].L

	if dense.Y[0].L != first {
		t.Errorf("dense grid starts at %g, want %g", dense.Y[0].L, first)
	}
	if got := dense.Y[dense.Len()-1].L; math.Abs(got-last) > 1e-9 {
		t.Errorf("dense grid ends at %g, want %g", got, last)
	}
	for i := 1; i < dense.Len(); i++ {
		d := dense.Y[i].L - dense.Y[i-1].L
		if d <= 0 {
			t.Fatalf("dense longitude not strictly increasing at %d", i)
		}
		// Every interior step is the fixed angular resolution; only the
		// clamped final step may be shorter.
		if i < dense.Len()-1 && math.Abs(d-step) > 1e-9 {
			t.Errorf("step %d is %g, want %g", i, d, step)
		}
	}
}

func TestInterpolateTimeMonotone(t *testing.T) {
	h := makeSpiralHistory(5, 60)
	dense, err := InterpolateByLongitude(h, 64)
	if err != nil {
		t.Fatalf("InterpolateByLongitude: %v", err)
	}
	for i := 1; i < dense.Len(); i++ {
		if dense.T[i] < dense.T[i-1] {
			t.Fatalf("interpolated time decreases at %d: %g -> %g", i, dense.T[i-1], dense.T[i])
		}
	}
	if dense.T[0] != h.T[0] {
		t.Errorf("dense time starts at %g, want %g", dense.T[0], h.T[0])
	}
}

func TestInterpolatePreservesSlowElementRange(t *testing.T) {
	// Monotone interpolation must not overshoot the data range.
	h := makeSpiralHistory(4, 50)
	dense, err := InterpolateByLongitude(h, 128)
	if err != nil {
		t.Fatalf("InterpolateByLongitude: %v", err)
	}

	minP, maxP := h.Y[0].P, h.Y[h.Len()-1].P
	for i, el := range dense.Y {
		if el.P < minP-1 || el.P > maxP+1 {
			t.Errorf("sample %d: P=%g outside data range [%g, %g]", i, el.P, minP, maxP)
		}
	}
}

func TestInterpolateRejectsBadInput(t *testing.T) {
	h := makeSpiralHistory(2, 20)
	if _, err := InterpolateByLongitude(h, 0); err == nil {
		t.Error("accepted segPerOrbit=0")
	}

	bad := makeSpiralHistory(2, 20)
	bad.T = bad.T[:10]
	if _, err := InterpolateByLongitude(bad, 50); err == nil {
		t.Error("accepted mismatched history lengths")
	}
}
