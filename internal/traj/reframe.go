package traj

import (
	"fmt"

	"github.com/lowthrust-lab/trajplot/internal/astro"
	"github.com/lowthrust-lab/trajplot/internal/mee"
)

// ShiftToSecondary re-expresses a primary-centred history about a moving
// secondary body. Both the trajectory and the supplied ephemeris are
// converted to Cartesian in the primary frame, differenced pointwise, and
// the difference reconverted to equinoctial elements under the secondary's
// gravitational parameter. The first element then has 1.0 subtracted so a
// trajectory matching the canonical target orbit about the secondary reads
// as zero.
//
// The ephemeris must be pointwise time-aligned with the history; this
// function does not resample.
func ShiftToSecondary(h History, eph []astro.StateRV, muPrimary, muSecondary float64) (History, error) {
	if err := h.Validate(); err != nil {
		return History{}, err
	}
	if len(eph) != h.Len() {
		return History{}, fmt.Errorf("ephemeris length %d does not match history length %d", len(eph), h.Len())
	}

	cart, err := mee.BatchToCartesian(h.Y, muPrimary)
	if err != nil {
		return History{}, fmt.Errorf("converting trajectory to cartesian: %w", err)
	}

	rel := make([]astro.StateRV, len(cart))
	for i := range cart {
		rel[i] = cart[i].Sub(eph[i])
	}

	shifted, err := mee.BatchFromCartesian(rel, muSecondary)
	if err != nil {
		return History{}, fmt.Errorf("converting relative states to elements: %w", err)
	}
	for i := range shifted {
		shifted[i].P -= 1.0
	}

	return History{T: h.T, Y: shifted}, nil
}
