// Package ephem supplies secondary-body ephemerides to the trajectory
// pipeline. Evaluators are deterministic and side-effect free: the same
// time always yields the same state, so callers may sample them once per
// trajectory time point without caching concerns.
package ephem

import (
	"fmt"

	"github.com/lowthrust-lab/trajplot/internal/astro"
)

// Evaluator maps seconds past the simulation epoch to the body's Cartesian
// state in the primary-centred inertial frame.
type Evaluator interface {
	State(t float64) astro.StateRV
}

// GenerateArrays samples an evaluator over an explicit time grid of n
// points spanning [span0, span1], for overlay rendering. It is not part of
// the element pipeline, which samples the evaluator on the trajectory's
// own time grid.
func GenerateArrays(ev Evaluator, span0, span1 float64, n int) ([]float64, []astro.StateRV, error) {
	if ev == nil {
		return nil, nil, fmt.Errorf("nil ephemeris evaluator")
	}
	if n < 2 {
		return nil, nil, fmt.Errorf("ephemeris grid needs at least 2 points, got %d", n)
	}
	if span1 <= span0 {
		return nil, nil, fmt.Errorf("ephemeris span must be increasing, got [%g, %g]", span0, span1)
	}

	ts := make([]float64, n)
	states := make([]astro.StateRV, n)
	step := (span1 - span0) / float64(n-1)
	for i := range ts {
		ts[i] = span0 + float64(i)*step
		states[i] = ev.State(ts[i])
	}
	return ts, states, nil
}

// Sample evaluates ev on each point of an existing time grid, producing a
// series pointwise aligned with a trajectory history.
func Sample(ev Evaluator, ts []float64) ([]astro.StateRV, error) {
	if ev == nil {
		return nil, fmt.Errorf("nil ephemeris evaluator")
	}
	out := make([]astro.StateRV, len(ts))
	for i, t := range ts {
		out[i] = ev.State(t)
	}
	return out, nil
}
