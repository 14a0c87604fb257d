package traj

import (
	"math"

	"github.com/lowthrust-lab/trajplot/internal/astro"
	"github.com/lowthrust-lab/trajplot/internal/mee"
)

// makeSpiralHistory builds a slowly raising low-thrust spiral spanning the
// given number of revolutions. The time grid is deliberately irregular to
// mimic a variable-step integrator: early revolutions are sampled densely,
// later ones coarsely.
func makeSpiralHistory(revs float64, n int) History {
	h := History{
		T: make([]float64, n),
		Y: make([]mee.Elements, n),
	}
	totalL := revs * 2 * math.Pi
	for i := 0; i < n; i++ {
		frac := float64(i) / float64(n-1)
		// Quadratic stretch: step size grows along the history.
		warped := frac * (0.4 + 0.6*frac)
		l := totalL * warped
		h.T[i] = 86400 * 10 * warped
		h.Y[i] = mee.Elements{
			P: 7000e3 * (1 + 0.3*frac),
			F: 0.01 + 0.02*frac,
			G: -0.005 * frac,
			H: 0.1,
			K: 0.05 * frac,
			L: l,
		}
	}
	return h
}

// makePath builds a recognisable dense Cartesian path of m points.
func makePath(m int) []astro.Vec3 {
	pts := make([]astro.Vec3, m)
	for i := range pts {
		theta := float64(i) * 0.01
		pts[i] = astro.Vec3{
			X: 7000e3 * math.Cos(theta),
			Y: 7000e3 * math.Sin(theta),
			Z: float64(i),
		}
	}
	return pts
}
