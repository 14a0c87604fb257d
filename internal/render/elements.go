// Package render draws the figures fed by the trajectory pipeline: a
// stacked time-series comparison of the equinoctial elements and a
// segmented 3D view of the interpolated path.
package render

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/lowthrust-lab/trajplot/internal/astro"
	"github.com/lowthrust-lab/trajplot/internal/traj"
)

// Matplotlib default cycle, kept so figures match the ones produced during
// propagation runs.
var (
	colC0 = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	colC1 = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	colC2 = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	colC3 = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	colC4 = color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff}
)

// ElementsFigure renders the trajectory-vs-target comparison as three
// stacked panels (p; f and g; h and k) sharing a time axis in days, and
// writes the figure as a PNG.
func ElementsFigure(cmp *traj.Comparison, epochJD float64, path string) error {
	if cmp == nil {
		return fmt.Errorf("nil comparison")
	}
	n := len(cmp.T)
	if n == 0 || len(cmp.Trajectory) != n || len(cmp.Target) != n {
		return fmt.Errorf("comparison series misaligned: %d times, %d states, %d targets",
			n, len(cmp.Trajectory), len(cmp.Target))
	}

	days := make([]float64, n)
	for i, t := range cmp.T {
		days[i] = t / astro.SecondsPerDay
	}

	component := func(idx int) (trajXY, targetXY plotter.XYs) {
		trajXY = make(plotter.XYs, n)
		targetXY = make(plotter.XYs, n)
		for i := 0; i < n; i++ {
			el := cmp.Trajectory[i]
			vals := [5]float64{el.P, el.F, el.G, el.H, el.K}
			trajXY[i] = plotter.XY{X: days[i], Y: vals[idx]}
			targetXY[i] = plotter.XY{X: days[i], Y: cmp.Target[i][idx]}
		}
		return trajXY, targetXY
	}

	type series struct {
		label string
		idx   int
		color color.Color
	}
	panels := [][]series{
		{{"p (m)", 0, colC0}},
		{{"f", 1, colC1}, {"g", 2, colC2}},
		{{"h", 3, colC3}, {"k", 4, colC4}},
	}

	plots := make([][]*plot.Plot, len(panels))
	for pi, panel := range panels {
		p := plot.New()
		p.Add(plotter.NewGrid())
		if pi == 0 {
			p.Title.Text = fmt.Sprintf("Modified Equinoctial Elements (%s)", cmp.Frame)
		}
		if pi == len(panels)-1 {
			p.X.Label.Text = fmt.Sprintf("Time (days after JD %.2f)", epochJD)
		}

		for _, s := range panel {
			trajXY, targetXY := component(s.idx)

			line, err := plotter.NewLine(trajXY)
			if err != nil {
				return fmt.Errorf("building %s series: %w", s.label, err)
			}
			line.LineStyle.Width = vg.Points(1)
			line.LineStyle.Color = s.color
			p.Add(line)
			p.Legend.Add(s.label, line)

			target, err := plotter.NewLine(targetXY)
			if err != nil {
				return fmt.Errorf("building %s target series: %w", s.label, err)
			}
			target.LineStyle.Width = vg.Points(1)
			target.LineStyle.Color = s.color
			target.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
			p.Add(target)
		}
		p.Legend.Top = true
		plots[pi] = []*plot.Plot{p}
	}

	img := vgimg.New(6*vg.Inch, 6*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: len(panels),
		Cols: 1,
		PadY: vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating figure file: %w", err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("writing figure: %w", err)
	}
	return nil
}
