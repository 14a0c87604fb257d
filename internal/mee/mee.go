// Package mee implements conversion between modified equinoctial elements
// and Cartesian states. The equinoctial set (p, f, g, h, k, L) stays
// regular for near-circular and near-equatorial orbits where the classical
// elements are singular; L is the true longitude and may accumulate beyond
// 2*pi across revolutions.
package mee

import (
	"fmt"
	"math"

	"github.com/lowthrust-lab/trajplot/internal/astro"
)

// Elements is one modified equinoctial state.
//
//	P: semi-latus rectum (m)
//	F, G: eccentricity vector components
//	H, K: inclination vector components
//	L: true longitude (rad)
type Elements struct {
	P, F, G, H, K, L float64
}

// Vector5 is the five slow elements of a target state, excluding L.
type Vector5 [5]float64

// Slow returns the five non-angle components of el.
func (el Elements) Slow() Vector5 {
	return Vector5{el.P, el.F, el.G, el.H, el.K}
}

// CheckMu validates a gravitational parameter. Every conversion requires a
// strictly positive, finite mu; the caller chooses the frame it refers to.
func CheckMu(mu float64) error {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return fmt.Errorf("gravitational parameter is not finite: %v", mu)
	}
	if mu <= 0 {
		return fmt.Errorf("gravitational parameter must be positive, got %v", mu)
	}
	return nil
}

// ToCartesian converts a single equinoctial state to a Cartesian state in
// the frame whose centre has gravitational parameter mu. Singular
// geometries (p <= 0) yield non-finite output rather than an error.
func ToCartesian(el Elements, mu float64) astro.StateRV {
	sinL, cosL := math.Sincos(el.L)

	alpha2 := el.H*el.H - el.K*el.K
	s2 := 1 + el.H*el.H + el.K*el.K
	w := 1 + el.F*cosL + el.G*sinL
	r := el.P / w

	pos := astro.Vec3{
		X: cosL + alpha2*cosL + 2*el.H*el.K*sinL,
		Y: sinL - alpha2*sinL + 2*el.H*el.K*cosL,
		Z: 2 * (el.H*sinL - el.K*cosL),
	}.Scale(r / s2)

	c := math.Sqrt(mu/el.P) / s2
	vel := astro.Vec3{
		X: -c * (sinL + alpha2*sinL - 2*el.H*el.K*cosL + el.G - 2*el.F*el.H*el.K + alpha2*el.G),
		Y: -c * (-cosL + alpha2*cosL + 2*el.H*el.K*sinL - el.F + 2*el.G*el.H*el.K + alpha2*el.F),
		Z: 2 * c * (el.H*cosL + el.K*sinL + el.F*el.H + el.G*el.K),
	}

	return astro.StateRV{R: pos, V: vel}
}

// FromCartesian converts a Cartesian state to modified equinoctial
// elements in the frame whose centre has gravitational parameter mu. The
// returned true longitude is the principal value in (-pi, pi]; callers
// tracking accumulated longitude must unwrap it themselves. Zero angular
// momentum makes the set undefined and propagates as NaN.
func FromCartesian(sv astro.StateRV, mu float64) Elements {
	rmag := sv.R.Norm()
	hvec := sv.R.Cross(sv.V)
	hmag := hvec.Norm()
	hhat := hvec.Scale(1 / hmag)

	p := hmag * hmag / mu
	k := hhat.X / (1 + hhat.Z)
	h := -hhat.Y / (1 + hhat.Z)

	// Equinoctial in-plane basis.
	s2 := 1 + h*h + k*k
	fhat := astro.Vec3{X: 1 - k*k + h*h, Y: 2 * k * h, Z: -2 * k}.Scale(1 / s2)
	ghat := astro.Vec3{X: 2 * k * h, Y: 1 + k*k - h*h, Z: 2 * h}.Scale(1 / s2)

	// Eccentricity vector projected onto the equinoctial basis.
	evec := sv.V.Cross(hvec).Scale(1 / mu).Sub(sv.R.Scale(1 / rmag))
	f := evec.Dot(fhat)
	g := evec.Dot(ghat)

	uhat := sv.R.Scale(1 / rmag)
	l := math.Atan2(uhat.Dot(ghat), uhat.Dot(fhat))

	return Elements{P: p, F: f, G: g, H: h, K: k, L: l}
}

// BatchToCartesian converts an ordered batch of equinoctial states,
// preserving order and length. All states must share the frame implied by
// mu; mixing frames silently produces physically wrong output.
func BatchToCartesian(els []Elements, mu float64) ([]astro.StateRV, error) {
	if err := CheckMu(mu); err != nil {
		return nil, err
	}
	out := make([]astro.StateRV, len(els))
	for i, el := range els {
		out[i] = ToCartesian(el, mu)
	}
	return out, nil
}

// BatchFromCartesian converts an ordered batch of Cartesian states,
// preserving order and length.
func BatchFromCartesian(svs []astro.StateRV, mu float64) ([]Elements, error) {
	if err := CheckMu(mu); err != nil {
		return nil, err
	}
	out := make([]Elements, len(svs))
	for i, sv := range svs {
		out[i] = FromCartesian(sv, mu)
	}
	return out, nil
}
