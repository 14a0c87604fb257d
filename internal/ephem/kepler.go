package ephem

import (
	"math"

	"github.com/lowthrust-lab/trajplot/internal/astro"
)

// Kepler is a two-body ephemeris evaluator propagating classical orbital
// elements analytically. Good enough for re-centering and overlays; replace
// with a table-driven evaluator when real ephemerides are available.
type Kepler struct {
	SemiMajorAxis float64 // a (m)
	Eccentricity  float64 // e
	Inclination   float64 // i (rad)
	AscendingNode float64 // capital omega (rad)
	ArgPeriapsis  float64 // omega (rad)
	MeanAnomaly0  float64 // M at t=0 (rad)
	Mu            float64 // gravitational parameter of the centre (m^3/s^2)
}

// DefaultMoon returns the mean lunar orbit about Earth.
func DefaultMoon() *Kepler {
	return &Kepler{
		SemiMajorAxis: astro.MoonSemiMajorAxis,
		Eccentricity:  astro.MoonEccentricity,
		Inclination:   astro.MoonInclination,
		AscendingNode: astro.MoonAscendingNode,
		ArgPeriapsis:  astro.MoonArgPerigee,
		MeanAnomaly0:  astro.MoonMeanAnomalyJ2k,
		Mu:            astro.MuEarth,
	}
}

// State implements Evaluator. t is seconds past epoch.
func (k *Kepler) State(t float64) astro.StateRV {
	n := math.Sqrt(k.Mu / (k.SemiMajorAxis * k.SemiMajorAxis * k.SemiMajorAxis))
	m := math.Mod(k.MeanAnomaly0+n*t, astro.TwoPi)

	e := k.solveKepler(m)
	sinE, cosE := math.Sincos(e)

	// Perifocal position and velocity.
	a := k.SemiMajorAxis
	ecc := k.Eccentricity
	b := a * math.Sqrt(1-ecc*ecc)
	r := a * (1 - ecc*cosE)

	xp := a * (cosE - ecc)
	yp := b * sinE
	vxp := -a * n * a / r * sinE
	vyp := b * n * a / r * cosE

	// Rotate perifocal -> inertial.
	cosO, sinO := math.Cos(k.AscendingNode), math.Sin(k.AscendingNode)
	cosI, sinI := math.Cos(k.Inclination), math.Sin(k.Inclination)
	cosW, sinW := math.Cos(k.ArgPeriapsis), math.Sin(k.ArgPeriapsis)

	r11 := cosO*cosW - sinO*sinW*cosI
	r12 := -cosO*sinW - sinO*cosW*cosI
	r21 := sinO*cosW + cosO*sinW*cosI
	r22 := -sinO*sinW + cosO*cosW*cosI
	r31 := sinW * sinI
	r32 := cosW * sinI

	return astro.StateRV{
		R: astro.Vec3{
			X: r11*xp + r12*yp,
			Y: r21*xp + r22*yp,
			Z: r31*xp + r32*yp,
		},
		V: astro.Vec3{
			X: r11*vxp + r12*vyp,
			Y: r21*vxp + r22*vyp,
			Z: r31*vxp + r32*vyp,
		},
	}
}

// solveKepler solves M = E - e*sin(E) for E by Newton-Raphson.
func (k *Kepler) solveKepler(m float64) float64 {
	e := m
	if k.Eccentricity > 0.8 {
		e = math.Pi
	}

	const tol = 1e-12
	for i := 0; i < 50; i++ {
		f := e - k.Eccentricity*math.Sin(e) - m
		fp := 1 - k.Eccentricity*math.Cos(e)
		d := f / fp
		e -= d
		if math.Abs(d) < tol {
			break
		}
	}
	return e
}
