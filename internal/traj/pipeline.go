package traj

import (
	"fmt"

	"github.com/lowthrust-lab/trajplot/internal/astro"
	"github.com/lowthrust-lab/trajplot/internal/config"
	"github.com/lowthrust-lab/trajplot/internal/ephem"
	"github.com/lowthrust-lab/trajplot/internal/mee"
)

// Params carries the run collaborators the pipeline cannot derive from the
// history itself.
type Params struct {
	// MoonEphem evaluates the Moon's geocentric state at seconds past the
	// run epoch. Required when the steering law targets the Moon.
	MoonEphem ephem.Evaluator
}

// Frame identifies which body a comparison is centred on.
type Frame int

const (
	FrameGeocentric Frame = iota
	FrameSelenocentric
)

// String returns the frame name used in figure titles.
func (f Frame) String() string {
	if f == FrameSelenocentric {
		return "Selenocentric"
	}
	return "Geocentric"
}

// Comparison is the time-series comparison between a trajectory and its
// steering target, one slow element vector per sample on a shared time
// grid.
type Comparison struct {
	T          []float64
	Trajectory []mee.Elements
	Target     []mee.Vector5
	Frame      Frame
	Mode       TargetMode
}

// ElementsComparison builds the per-component trajectory-vs-target series
// for a run. When the steering law targets the Moon, wrtMoon selects
// whether the comparison is expressed about the Moon (re-centred
// trajectory against the constant target) or about Earth (raw trajectory
// against the Moon's own moving elements). For frame-fixed steering laws
// wrtMoon is ignored and the constant target is broadcast.
func ElementsComparison(h History, cfg *config.SimConfig, p *Params, wrtMoon bool) (*Comparison, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("nil sim config")
	}

	mode := ModeFor(cfg.TargetsMoon(), wrtMoon)

	cmp := &Comparison{
		T:          h.T,
		Trajectory: h.Y,
		Frame:      FrameGeocentric,
		Mode:       mode,
	}

	var moon []astro.StateRV
	if mode != TargetFixed {
		if p == nil || p.MoonEphem == nil {
			return nil, fmt.Errorf("steering law %q needs a moon ephemeris", cfg.SteeringLaw)
		}
		var err error
		moon, err = ephem.Sample(p.MoonEphem, h.T)
		if err != nil {
			return nil, fmt.Errorf("sampling moon ephemeris: %w", err)
		}
	}

	if mode == TargetSecondaryRelative {
		shifted, err := ShiftToSecondary(h, moon, astro.MuEarth, astro.MuMoon)
		if err != nil {
			return nil, fmt.Errorf("re-centering on moon: %w", err)
		}
		cmp.Trajectory = shifted.Y
		cmp.Frame = FrameSelenocentric
	}

	target, err := SynthesizeTarget(mode, cfg.TargetElements, h.Len(), moon, astro.MuEarth)
	if err != nil {
		return nil, fmt.Errorf("synthesizing target series: %w", err)
	}
	cmp.Target = target

	return cmp, nil
}

// SegmentedPath interpolates a history densely in true longitude, converts
// it to Cartesian under mu and partitions the result into numSegments
// colored arcs. The returned orbit count labels the color scale.
func SegmentedPath(h History, mu float64, segPerOrbit, numSegments int) (SegmentSet, error) {
	if err := h.Validate(); err != nil {
		return SegmentSet{}, err
	}

	dense, err := InterpolateByLongitude(h, segPerOrbit)
	if err != nil {
		return SegmentSet{}, fmt.Errorf("interpolating over longitude: %w", err)
	}

	cart, err := mee.BatchToCartesian(dense.Y, mu)
	if err != nil {
		return SegmentSet{}, fmt.Errorf("converting dense path to cartesian: %w", err)
	}

	points := make([]astro.Vec3, len(cart))
	for i, sv := range cart {
		points[i] = sv.R
	}

	return SegmentPath(points, numSegments, h.Y[h.Len()-1].L)
}
