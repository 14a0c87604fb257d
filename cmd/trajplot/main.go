// Command trajplot renders a propagated low-thrust state history as an
// equinoctial-element comparison figure and a segmented 3D trajectory
// chart. Runs are optionally recorded in a SQLite catalog for later
// listing.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/lowthrust-lab/trajplot/internal/astro"
	"github.com/lowthrust-lab/trajplot/internal/config"
	"github.com/lowthrust-lab/trajplot/internal/ephem"
	"github.com/lowthrust-lab/trajplot/internal/logging"
	"github.com/lowthrust-lab/trajplot/internal/render"
	"github.com/lowthrust-lab/trajplot/internal/runstore"
	"github.com/lowthrust-lab/trajplot/internal/traj"
	"github.com/lowthrust-lab/trajplot/internal/version"
)

func main() {
	var (
		historyPath = flag.String("history", "", "state history CSV (t,p,f,g,h,k,L)")
		configPath  = flag.String("config", "", "simulation config JSON")
		outDir      = flag.String("out", "plots", "output directory; each run gets a fresh subdirectory")
		wrtMoon     = flag.Bool("wrt-moon", false, "express the element comparison about the Moon")
		segments    = flag.Int("segments", traj.DefaultSegmentCount, "number of colored arcs in the 3D view")
		segPerOrbit = flag.Int("seg-per-orbit", 100, "interpolated samples per revolution")
		catalogPath = flag.String("catalog", "", "optional SQLite run catalog")
		listRuns    = flag.Bool("list", false, "list recorded runs from the catalog and exit")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	if *listRuns {
		if *catalogPath == "" {
			fatalf("-list requires -catalog")
		}
		listCatalog(*catalogPath)
		return
	}

	if *historyPath == "" || *configPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatalf("loading config: %v", err)
	}
	h, err := traj.LoadHistoryCSV(*historyPath)
	if err != nil {
		fatalf("loading history: %v", err)
	}
	logging.Logf("loaded %d samples spanning %.1f days, steering law %s",
		h.Len(), (h.T[h.Len()-1]-h.T[0])/astro.SecondsPerDay, cfg.SteeringLaw)

	moon := ephem.DefaultMoon()
	params := &traj.Params{MoonEphem: moon}

	runID := uuid.NewString()
	runDir := filepath.Join(*outDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		fatalf("creating run directory: %v", err)
	}

	// Element comparison figure.
	cmp, err := traj.ElementsComparison(h, cfg, params, *wrtMoon)
	if err != nil {
		fatalf("building element comparison: %v", err)
	}
	elementsPath := filepath.Join(runDir, "elements.png")
	if err := render.ElementsFigure(cmp, cfg.EpochJD, elementsPath); err != nil {
		fatalf("rendering elements figure: %v", err)
	}
	logging.Logf("wrote %s (%s, %s target)", elementsPath, cmp.Frame, cmp.Mode)

	// Segmented 3D trajectory.
	set, err := traj.SegmentedPath(h, astro.MuEarth, *segPerOrbit, *segments)
	if err != nil {
		fatalf("building segmented path: %v", err)
	}

	var overlay []astro.StateRV
	if cfg.HasPerturbation("moon_gravity") {
		_, overlay, err = ephem.GenerateArrays(moon, cfg.TSpan[0], cfg.TSpan[1], 1000)
		if err != nil {
			fatalf("generating moon overlay: %v", err)
		}
	}
	trajectoryPath := filepath.Join(runDir, "trajectory.html")
	if err := render.Trajectory3D(set, overlay, trajectoryPath); err != nil {
		fatalf("rendering trajectory chart: %v", err)
	}
	logging.Logf("wrote %s (%.0f orbits, %d arcs)", trajectoryPath, set.Orbits, len(set.Segments))

	if *catalogPath != "" {
		recordRun(*catalogPath, runstore.Run{
			ID:             runID,
			SteeringLaw:    cfg.SteeringLaw,
			Frame:          cmp.Frame.String(),
			Orbits:         set.Orbits,
			Samples:        h.Len(),
			DensePoints:    densePoints(set),
			ElementsPath:   elementsPath,
			TrajectoryPath: trajectoryPath,
		})
	}
}

// densePoints recovers the interpolated path length from a segment set by
// removing the shared boundary points.
func densePoints(set traj.SegmentSet) int {
	total := 0
	for _, s := range set.Segments {
		total += len(s.Points)
	}
	return total - (len(set.Segments) - 1)
}

func recordRun(catalogPath string, run runstore.Run) {
	store, err := runstore.Open(catalogPath)
	if err != nil {
		fatalf("opening run catalog: %v", err)
	}
	defer store.Close()

	if err := store.Record(run); err != nil {
		fatalf("recording run: %v", err)
	}
	logging.Logf("recorded run %s in %s", run.ID, catalogPath)
}

func listCatalog(catalogPath string) {
	store, err := runstore.Open(catalogPath)
	if err != nil {
		fatalf("opening run catalog: %v", err)
	}
	defer store.Close()

	runs, err := store.List(50)
	if err != nil {
		fatalf("listing runs: %v", err)
	}
	for _, r := range runs {
		fmt.Printf("%s  %s  %-12s %-14s %5.0f orbits  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04:05"), r.ID[:8],
			r.SteeringLaw, r.Frame, r.Orbits, r.TrajectoryPath)
	}
}

func fatalf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, "trajplot: "+format+"\n", v...)
	os.Exit(1)
}
