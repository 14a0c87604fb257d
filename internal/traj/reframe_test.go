package traj

import (
	"math"
	"testing"

	"github.com/lowthrust-lab/trajplot/internal/astro"
	"github.com/lowthrust-lab/trajplot/internal/ephem"
	"github.com/lowthrust-lab/trajplot/internal/mee"
)

// buildMoonRelativeHistory constructs a geocentric history whose
// moon-relative motion is a prescribed orbit about the Moon, by adding the
// relative states onto a sampled lunar ephemeris.
func buildMoonRelativeHistory(t *testing.T, rel []mee.Elements, ts []float64) (History, []astro.StateRV) {
	t.Helper()

	moon, err := ephem.Sample(ephem.DefaultMoon(), ts)
	if err != nil {
		t.Fatalf("sampling moon ephemeris: %v", err)
	}

	cart := make([]astro.StateRV, len(ts))
	for i := range ts {
		rv := mee.ToCartesian(rel[i], astro.MuMoon)
		cart[i] = astro.StateRV{
			R: moon[i].R.Add(rv.R),
			V: moon[i].V.Add(rv.V),
		}
	}
	els, err := mee.BatchFromCartesian(cart, astro.MuEarth)
	if err != nil {
		t.Fatalf("converting to geocentric elements: %v", err)
	}
	return History{T: ts, Y: els}, moon
}

func TestShiftMatchedOrbitReadsZero(t *testing.T) {
	// A trajectory whose moon-relative orbit has unit semi-latus rectum is
	// "matched": after the normalization offset its first element must
	// read zero at every sample.
	n := 24
	ts := make([]float64, n)
	rel := make([]mee.Elements, n)
	for i := range ts {
		ts[i] = float64(i) * 3600
		rel[i] = mee.Elements{P: 1.0, L: float64(i) * 0.26}
	}

	h, moon := buildMoonRelativeHistory(t, rel, ts)
	shifted, err := ShiftToSecondary(h, moon, astro.MuEarth, astro.MuMoon)
	if err != nil {
		t.Fatalf("ShiftToSecondary: %v", err)
	}

	// Differencing ~4e8 m geocentric states to recover a 1 m relative
	// orbit leaves a few microns of cancellation noise.
	for i, el := range shifted.Y {
		if math.Abs(el.P) > 1e-4 {
			t.Errorf("sample %d: shifted P=%g, want 0", i, el.P)
		}
	}
}

func TestShiftRecoversRelativeOrbit(t *testing.T) {
	n := 16
	ts := make([]float64, n)
	rel := make([]mee.Elements, n)
	for i := range ts {
		ts[i] = float64(i) * 7200
		rel[i] = mee.Elements{P: 2.5e6, F: 0.1, G: -0.05, H: 0.02, K: 0.03, L: 0.4 * float64(i)}
	}

	h, moon := buildMoonRelativeHistory(t, rel, ts)
	shifted, err := ShiftToSecondary(h, moon, astro.MuEarth, astro.MuMoon)
	if err != nil {
		t.Fatalf("ShiftToSecondary: %v", err)
	}

	for i, el := range shifted.Y {
		if math.Abs(el.P-(rel[i].P-1.0)) > 1e-3*rel[i].P {
			t.Errorf("sample %d: P=%g, want %g", i, el.P, rel[i].P-1.0)
		}
		if math.Abs(el.F-rel[i].F) > 1e-5 {
			t.Errorf("sample %d: F=%g, want %g", i, el.F, rel[i].F)
		}
		if math.Abs(el.H-rel[i].H) > 1e-5 {
			t.Errorf("sample %d: H=%g, want %g", i, el.H, rel[i].H)
		}
	}
}

func TestShiftCoincidentPathDoesNotError(t *testing.T) {
	// A trajectory lying on the Moon's own path has (near) zero relative
	// angular momentum. The shifter must still return without error: the
	// singular geometry propagates as degraded output, it is not detected.
	n := 8
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = float64(i) * 3600
	}
	moon, err := ephem.Sample(ephem.DefaultMoon(), ts)
	if err != nil {
		t.Fatalf("sampling moon ephemeris: %v", err)
	}
	els, err := mee.BatchFromCartesian(moon, astro.MuEarth)
	if err != nil {
		t.Fatalf("BatchFromCartesian: %v", err)
	}

	shifted, err := ShiftToSecondary(History{T: ts, Y: els}, moon, astro.MuEarth, astro.MuMoon)
	if err != nil {
		t.Fatalf("ShiftToSecondary: %v", err)
	}
	if shifted.Len() != n {
		t.Errorf("expected %d samples, got %d", n, shifted.Len())
	}
}

func TestShiftRejectsMisalignedEphemeris(t *testing.T) {
	h := makeSpiralHistory(2, 20)
	moon, err := ephem.Sample(ephem.DefaultMoon(), h.T[:10])
	if err != nil {
		t.Fatalf("sampling moon ephemeris: %v", err)
	}
	if _, err := ShiftToSecondary(h, moon, astro.MuEarth, astro.MuMoon); err == nil {
		t.Error("accepted ephemeris shorter than history")
	}
}
