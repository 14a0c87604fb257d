package render

import (
	"fmt"
	"image/color"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/lowthrust-lab/trajplot/internal/astro"
	"github.com/lowthrust-lab/trajplot/internal/traj"
)

// hexColor formats a color as the #rrggbb string ECharts expects.
func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// Trajectory3D renders a segmented path as an interactive 3D line chart,
// one series per colored arc, and writes it as a standalone HTML file. An
// optional Moon overlay is drawn in gray when overlay is non-empty. The
// orbit count appears in the subtitle so the color gradient can be read as
// cumulative revolutions.
func Trajectory3D(set traj.SegmentSet, overlay []astro.StateRV, path string) error {
	if len(set.Segments) == 0 {
		return fmt.Errorf("no segments to render")
	}

	line3d := charts.NewLine3D()
	line3d.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Trajectory (Earth Inertial)",
			Theme:     "dark",
			Width:     "900px",
			Height:    "900px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Earth Inertial Coordinates",
			Subtitle: fmt.Sprintf("color gradient spans %.0f orbits across %d arcs", set.Orbits, len(set.Segments)),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "X (m)", Type: "value"}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "Y (m)", Type: "value"}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "Z (m)", Type: "value"}),
	)

	for i, seg := range set.Segments {
		data := make([]opts.Chart3DData, len(seg.Points))
		for j, pt := range seg.Points {
			data[j] = opts.Chart3DData{Value: []interface{}{pt.X, pt.Y, pt.Z}}
		}
		line3d.AddSeries(
			fmt.Sprintf("arc-%02d", i),
			data,
			charts.WithLineStyleOpts(opts.LineStyle{
				Color: hexColor(seg.Color),
				Width: 1.5,
			}),
		)
	}

	if len(overlay) > 0 {
		data := make([]opts.Chart3DData, len(overlay))
		for j, sv := range overlay {
			data[j] = opts.Chart3DData{Value: []interface{}{sv.R.X, sv.R.Y, sv.R.Z}}
		}
		line3d.AddSeries(
			"moon",
			data,
			charts.WithLineStyleOpts(opts.LineStyle{
				Color:   "#808080",
				Width:   1,
				Opacity: opts.Float(0.5),
			}),
		)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()

	if err := line3d.Render(f); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}
