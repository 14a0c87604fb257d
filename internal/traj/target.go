package traj

import (
	"fmt"

	"github.com/lowthrust-lab/trajplot/internal/astro"
	"github.com/lowthrust-lab/trajplot/internal/mee"
)

// TargetMode selects how the comparison target series is produced.
type TargetMode int

const (
	// TargetFixed broadcasts the configured constant target. Used whenever
	// the steering law does not track a moving body.
	TargetFixed TargetMode = iota

	// TargetSecondaryRelative broadcasts the constant target in the
	// secondary-centred frame: once the trajectory is re-centred on the
	// secondary, the desired end state is itself frame-fixed.
	TargetSecondaryRelative

	// TargetPrimaryMoving uses the secondary body's own elements about the
	// primary at each sample; the body's trajectory is the moving target.
	TargetPrimaryMoving
)

// String returns the mode name.
func (m TargetMode) String() string {
	switch m {
	case TargetFixed:
		return "fixed"
	case TargetSecondaryRelative:
		return "secondary-relative"
	case TargetPrimaryMoving:
		return "primary-moving"
	default:
		return fmt.Sprintf("TargetMode(%d)", int(m))
	}
}

// ModeFor maps a steering law and measurement frame to a target mode.
// Only the bbq law tracks the Moon; wrtSecondary selects which frame the
// comparison is expressed in.
func ModeFor(targetsSecondary, wrtSecondary bool) TargetMode {
	if !targetsSecondary {
		return TargetFixed
	}
	if wrtSecondary {
		return TargetSecondaryRelative
	}
	return TargetPrimaryMoving
}

// SynthesizeTarget produces the per-sample target series the trajectory is
// compared against. n is the history length. For TargetPrimaryMoving the
// time-aligned secondary ephemeris and the primary's gravitational
// parameter are required; the other modes ignore them.
func SynthesizeTarget(mode TargetMode, target [5]float64, n int, eph []astro.StateRV, muPrimary float64) ([]mee.Vector5, error) {
	if n <= 0 {
		return nil, fmt.Errorf("target series length must be positive, got %d", n)
	}

	switch mode {
	case TargetFixed, TargetSecondaryRelative:
		out := make([]mee.Vector5, n)
		for i := range out {
			out[i] = target
		}
		return out, nil

	case TargetPrimaryMoving:
		if len(eph) != n {
			return nil, fmt.Errorf("ephemeris length %d does not match history length %d", len(eph), n)
		}
		els, err := mee.BatchFromCartesian(eph, muPrimary)
		if err != nil {
			return nil, fmt.Errorf("converting secondary ephemeris to elements: %w", err)
		}
		out := make([]mee.Vector5, n)
		for i, el := range els {
			out[i] = el.Slow()
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unknown target mode %v", mode)
	}
}
