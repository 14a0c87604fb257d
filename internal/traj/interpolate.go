package traj

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/lowthrust-lab/trajplot/internal/mee"
)

// InterpolateByLongitude resamples a history at a fixed angular resolution
// of segPerOrbit samples per revolution of true longitude. The abscissa is
// L, not time: variable-step propagation leaves the time grid unevenly
// dense per revolution, while L increases strictly with motion, so an
// L-keyed grid gives uniform visual arc density. Time and the five slow
// elements are interpolated over L with a monotonicity-preserving cubic.
//
// The output covers the full longitude sweep; the final sample is clamped
// to the last input longitude so no extrapolation occurs. Non-monotonic
// input longitude is a precondition violation.
func InterpolateByLongitude(h History, segPerOrbit int) (History, error) {
	if err := h.Validate(); err != nil {
		return History{}, err
	}
	if segPerOrbit < 1 {
		return History{}, fmt.Errorf("segPerOrbit must be at least 1, got %d", segPerOrbit)
	}

	n := h.Len()
	ls := make([]float64, n)
	series := make([][]float64, 6) // t, p, f, g, h, k as functions of L
	for i := range series {
		series[i] = make([]float64, n)
	}
	for i, el := range h.Y {
		ls[i] = el.L
		series[0][i] = h.T[i]
		series[1][i] = el.P
		series[2][i] = el.F
		series[3][i] = el.G
		series[4][i] = el.H
		series[5][i] = el.K
	}

	preds := make([]interp.FritschButland, 6)
	for i := range preds {
		if err := preds[i].Fit(ls, series[i]); err != nil {
			return History{}, fmt.Errorf("fitting series %d over longitude: %w", i, err)
		}
	}

	sweep := ls[n-1] - ls[0]
	step := 2 * math.Pi / float64(segPerOrbit)
	// Epsilon keeps a sweep that is an exact multiple of the step from
	// picking up a spurious extra sample through rounding.
	count := int(math.Ceil(sweep/step-1e-9)) + 1

	out := History{
		T: make([]float64, count),
		Y: make([]mee.Elements, count),
	}
	for i := 0; i < count; i++ {
		l := ls[0] + float64(i)*step
		if l > ls[n-1] {
			l = ls[n-1]
		}
		out.T[i] = preds[0].Predict(l)
		out.Y[i] = mee.Elements{
			P: preds[1].Predict(l),
			F: preds[2].Predict(l),
			G: preds[3].Predict(l),
			H: preds[4].Predict(l),
			K: preds[5].Predict(l),
			L: l,
		}
	}
	return out, nil
}
