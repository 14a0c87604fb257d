// Package traj transforms an already-propagated low-thrust state history
// for visualization: re-centering between Earth and Moon frames, target
// series synthesis, dense true-longitude resampling and segmentation of
// the rendered path. All operations are pure batch transforms; a call
// either returns a fully formed result or fails on malformed input.
package traj

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/lowthrust-lab/trajplot/internal/mee"
)

// History is an ordered state history: one equinoctial state per time
// sample. T is strictly increasing; L accumulates across revolutions.
type History struct {
	T []float64
	Y []mee.Elements
}

// Len returns the number of samples.
func (h History) Len() int { return len(h.T) }

// Validate checks the structural invariants the pipeline relies on.
func (h History) Validate() error {
	if len(h.T) != len(h.Y) {
		return fmt.Errorf("history length mismatch: %d times, %d states", len(h.T), len(h.Y))
	}
	if len(h.T) < 2 {
		return fmt.Errorf("history needs at least 2 samples, got %d", len(h.T))
	}
	for i, t := range h.T {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return fmt.Errorf("sample %d: time is not finite: %v", i, t)
		}
		if i > 0 && t <= h.T[i-1] {
			return fmt.Errorf("sample %d: time not strictly increasing (%g after %g)", i, t, h.T[i-1])
		}
	}
	return nil
}

// Orbits returns the cumulative revolution count of the history, derived
// from the final true longitude.
func (h History) Orbits() float64 {
	if len(h.Y) == 0 {
		return 0
	}
	return math.Floor(h.Y[len(h.Y)-1].L / (2 * math.Pi))
}

// LoadHistoryCSV reads a state history from a CSV file with one sample per
// row: t, p, f, g, h, k, L. A header row is skipped if the first field
// does not parse as a number.
func LoadHistoryCSV(path string) (History, error) {
	f, err := os.Open(path)
	if err != nil {
		return History{}, fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 7

	records, err := r.ReadAll()
	if err != nil {
		return History{}, fmt.Errorf("failed to parse history CSV: %w", err)
	}
	if len(records) > 0 {
		if _, err := strconv.ParseFloat(records[0][0], 64); err != nil {
			records = records[1:]
		}
	}

	h := History{
		T: make([]float64, 0, len(records)),
		Y: make([]mee.Elements, 0, len(records)),
	}
	for i, rec := range records {
		var vals [7]float64
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return History{}, fmt.Errorf("row %d, column %d: %w", i+1, j+1, err)
			}
			vals[j] = v
		}
		h.T = append(h.T, vals[0])
		h.Y = append(h.Y, mee.Elements{
			P: vals[1], F: vals[2], G: vals[3], H: vals[4], K: vals[5], L: vals[6],
		})
	}

	if err := h.Validate(); err != nil {
		return History{}, err
	}
	return h, nil
}
