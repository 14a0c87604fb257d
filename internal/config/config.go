// Package config loads the simulation configuration consumed by the
// post-processing pipeline. The schema matches the JSON emitted alongside a
// propagation run, so the same file drives both the propagator and the
// plotting tools.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// SteeringLawBBQ is the steering law that targets the Moon. Every other
// law holds a frame-fixed target.
const SteeringLawBBQ = "bbq_law"

// SimConfig describes one propagation run.
type SimConfig struct {
	// SteeringLaw identifies the guidance law used by the run.
	SteeringLaw string `json:"steering_law"`

	// TargetElements is the desired terminal state, five slow equinoctial
	// elements (p, f, g, h, k) in the units of the run.
	TargetElements [5]float64 `json:"y_target"`

	// EpochJD is the Julian date of t=0.
	EpochJD float64 `json:"epoch_jd"`

	// Perturbations names the force-model effects enabled for the run
	// (e.g. "moon_gravity"). Order is not significant.
	Perturbations []string `json:"perturbations"`

	// TSpan is the propagation span in seconds past epoch.
	TSpan [2]float64 `json:"t_span"`
}

// TargetsMoon reports whether the run's steering law tracks the Moon
// rather than a frame-fixed target.
func (c *SimConfig) TargetsMoon() bool {
	return c.SteeringLaw == SteeringLawBBQ
}

// HasPerturbation reports whether the named effect was enabled.
func (c *SimConfig) HasPerturbation(name string) bool {
	for _, p := range c.Perturbations {
		if p == name {
			return true
		}
	}
	return false
}

// Validate checks the configuration for values the pipeline cannot work
// with. Fields omitted from the JSON keep their zero values; only actively
// wrong values are rejected.
func (c *SimConfig) Validate() error {
	if c.SteeringLaw == "" {
		return fmt.Errorf("steering_law must be set")
	}
	for i, v := range c.TargetElements {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("y_target[%d] is not finite: %v", i, v)
		}
	}
	if math.IsNaN(c.EpochJD) || math.IsInf(c.EpochJD, 0) {
		return fmt.Errorf("epoch_jd is not finite: %v", c.EpochJD)
	}
	if c.TSpan[1] <= c.TSpan[0] {
		return fmt.Errorf("t_span must be increasing, got [%g, %g]", c.TSpan[0], c.TSpan[1])
	}
	return nil
}

// Load reads a SimConfig from a JSON file. The path must carry a .json
// extension and stay under the size cap so a mistyped path can't pull in
// an arbitrary file.
func Load(path string) (*SimConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &SimConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
