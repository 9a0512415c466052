package flood

import (
	"fmt"
	"strconv"

	"floodgrid/internal/core"
)

// Params holds the tunable rates of the flood model.
type Params struct {
	// RainfallMM is the total rainfall in millimeters, spread evenly across
	// all steps.
	RainfallMM float64
	// InfiltrationM is the depth in meters lost to the soil per cell per step.
	InfiltrationM float64
	// EdgeOutflow lets a fraction of border-cell water drain out of the
	// domain each step.
	EdgeOutflow bool
	// Boundary selects the neighbor policy at the grid edge.
	Boundary Boundary
	// Workers partitions the per-step loops across this many goroutines.
	// Values below 2 run the step sequentially.
	Workers int
}

// Config controls a flood simulation run.
type Config struct {
	// Width and Height size the synthetic terrain when the sim builds its
	// own. When a caller supplies a terrain they must be zero or match it.
	Width  int
	Height int

	// Seed drives the synthetic terrain generator.
	Seed int64

	// Steps is the number of timesteps in a full run.
	Steps int

	Params Params
}

// DefaultConfig returns the standard configuration, matching the reference
// model's demo run.
func DefaultConfig() Config {
	return Config{
		Width:  120,
		Height: 120,
		Seed:   1,
		Steps:  250,
		Params: Params{
			RainfallMM:    120,
			InfiltrationM: 0.002,
			EdgeOutflow:   true,
			Boundary:      BoundaryPeriodic,
			Workers:       1,
		},
	}
}

// Validate reports a core.ErrConfig wrap for any out-of-range value.
func (c Config) Validate() error {
	if c.Steps < 1 {
		return fmt.Errorf("%w: steps must be at least 1, got %d", core.ErrConfig, c.Steps)
	}
	if c.Params.RainfallMM < 0 {
		return fmt.Errorf("%w: rainfall must be non-negative, got %g", core.ErrConfig, c.Params.RainfallMM)
	}
	if c.Params.InfiltrationM < 0 {
		return fmt.Errorf("%w: infiltration must be non-negative, got %g", core.ErrConfig, c.Params.InfiltrationM)
	}
	if !c.Params.Boundary.valid() {
		return fmt.Errorf("%w: unknown boundary policy %d", core.ErrConfig, int(c.Params.Boundary))
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values are ignored and the defaults kept.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Steps = parsed
		}
	}
	if v, ok := cfg["rainfall_mm"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.RainfallMM = parsed
		}
	}
	if v, ok := cfg["infiltration_m"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.InfiltrationM = parsed
		}
	}
	if v, ok := cfg["edge_outflow"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.EdgeOutflow = parsed
		}
	}
	if v, ok := cfg["boundary"]; ok {
		if parsed, err := ParseBoundary(v); err == nil {
			c.Params.Boundary = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Params.Workers = parsed
		}
	}
	return c
}
