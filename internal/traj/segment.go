package traj

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"

	"github.com/lowthrust-lab/trajplot/internal/astro"
)

// DefaultSegmentCount is the number of colored arcs a rendered path is
// split into.
const DefaultSegmentCount = 50

// Segment is one colored arc of a dense Cartesian path. Consecutive
// segments share one boundary point so the rendered arcs stay contiguous.
type Segment struct {
	Points []astro.Vec3
	Color  color.Color
}

// SegmentSet is the full partition of a path plus the cumulative
// revolution count used to label the color scale by orbit number.
type SegmentSet struct {
	Segments []Segment
	Orbits   float64
}

// segmentColors returns the cyclic gradient used for arc coloring, blue
// through green and yellow to red. The color of arc i depends only on i
// and the arc count, never on the underlying path data.
func segmentColors(count int) []color.Color {
	return palette.Rainbow(count, palette.Blue, palette.Red, 1, 1, 1).Colors()
}

// SegmentPath partitions a dense Cartesian path of length M into count
// overlapping arcs. Breakpoints are count+1 evenly spaced indices over
// [0, M]; arc i spans breakpoint i through breakpoint i+1 inclusive, so
// every interior breakpoint belongs to two arcs and the total point count
// across arcs is M + count - 1. finalL is the last true longitude of the
// path, from which the revolution count is derived.
func SegmentPath(points []astro.Vec3, count int, finalL float64) (SegmentSet, error) {
	m := len(points)
	if count < 1 {
		return SegmentSet{}, fmt.Errorf("segment count must be at least 1, got %d", count)
	}
	if m < count+1 {
		return SegmentSet{}, fmt.Errorf("path of %d points cannot be split into %d segments", m, count)
	}

	colors := segmentColors(count)
	segs := make([]Segment, count)
	for i := 0; i < count; i++ {
		lo := i * m / count
		hi := (i+1)*m/count + 1
		if hi > m {
			hi = m
		}
		segs[i] = Segment{
			Points: points[lo:hi],
			Color:  colors[i],
		}
	}

	return SegmentSet{
		Segments: segs,
		Orbits:   math.Floor(finalL / (2 * math.Pi)),
	}, nil
}
