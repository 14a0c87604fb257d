package traj

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lowthrust-lab/trajplot/internal/astro"
)

func TestSegmentPathCoverage(t *testing.T) {
	const m, count = 1000, 50
	pts := makePath(m)

	set, err := SegmentPath(pts, count, 12*math.Pi)
	if err != nil {
		t.Fatalf("SegmentPath: %v", err)
	}
	if len(set.Segments) != count {
		t.Fatalf("expected %d segments, got %d", count, len(set.Segments))
	}

	// Total point count exceeds the path length by exactly the overlap
	// count.
	total := 0
	for _, s := range set.Segments {
		total += len(s.Points)
	}
	if want := m + count - 1; total != want {
		t.Errorf("total segment points %d, want %d", total, want)
	}

	// Concatenating the segments and dropping each segment's first point
	// after the first reconstructs the original path in order.
	rebuilt := make([]astro.Vec3, 0, m)
	for i, s := range set.Segments {
		pts := s.Points
		if i > 0 {
			pts = pts[1:]
		}
		rebuilt = append(rebuilt, pts...)
	}
	if diff := cmp.Diff(pts, rebuilt); diff != "" {
		t.Errorf("rebuilt path differs from original (-want +got):\n%s", diff)
	}
}

func TestSegmentPathBoundariesShared(t *testing.T) {
	pts := makePath(1000)
	set, err := SegmentPath(pts, 50, 0)
	if err != nil {
		t.Fatalf("SegmentPath: %v", err)
	}
	for i := 1; i < len(set.Segments); i++ {
		prev := set.Segments[i-1].Points
		if prev[len(prev)-1] != set.Segments[i].Points[0] {
			t.Errorf("segments %d and %d do not share a boundary point", i-1, i)
		}
	}
}

func TestSegmentColorsDeterministic(t *testing.T) {
	a, err := SegmentPath(makePath(1000), 50, 4*math.Pi)
	if err != nil {
		t.Fatalf("SegmentPath: %v", err)
	}
	// Different path data, different revolution count: same colors.
	other := makePath(600)
	for i := range other {
		other[i].X *= -3
	}
	b, err := SegmentPath(other, 50, 40*math.Pi)
	if err != nil {
		t.Fatalf("SegmentPath: %v", err)
	}

	for i := range a.Segments {
		if a.Segments[i].Color != b.Segments[i].Color {
			t.Errorf("segment %d color depends on path data", i)
		}
	}

	// The gradient actually varies along the arc sequence.
	if a.Segments[0].Color == a.Segments[25].Color {
		t.Error("expected distinct colors along the gradient")
	}
}

func TestSegmentOrbitCount(t *testing.T) {
	set, err := SegmentPath(makePath(200), 10, 7.9*math.Pi)
	if err != nil {
		t.Fatalf("SegmentPath: %v", err)
	}
	if set.Orbits != 3 {
		t.Errorf("expected 3 whole orbits for L=7.9pi, got %g", set.Orbits)
	}
}

func TestSegmentPathRejectsBadInput(t *testing.T) {
	if _, err := SegmentPath(makePath(100), 0, 0); err == nil {
		t.Error("accepted zero segment count")
	}
	if _, err := SegmentPath(makePath(10), 50, 0); err == nil {
		t.Error("accepted more segments than points")
	}
}
