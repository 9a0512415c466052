package terrain

import (
	"math"

	"floodgrid/internal/core"
)

// SyntheticConfig controls the demo surface generator: a bumpy slope falling
// from the top row to the bottom, crossed by sinusoidal ridges and seeded
// noise.
type SyntheticConfig struct {
	Rows int
	Cols int
	Seed int64

	// SlopeDrop is the elevation difference in meters between the top and
	// bottom rows.
	SlopeDrop float64
	// WaveAmp and WaveCycles shape the north-south ridges running across the
	// columns.
	WaveAmp    float64
	WaveCycles float64
	// Roughness scales the per-cell gaussian noise.
	Roughness float64
}

// DefaultSyntheticConfig returns the standard demo surface parameters.
func DefaultSyntheticConfig() SyntheticConfig {
	return SyntheticConfig{
		Rows:       120,
		Cols:       120,
		Seed:       1,
		SlopeDrop:  3.0,
		WaveAmp:    0.3,
		WaveCycles: 3.0,
		Roughness:  0.2,
	}
}

// Synthetic generates a deterministic demo elevation field from cfg.
// Non-positive dimensions are raised to 1.
func Synthetic(cfg SyntheticConfig) *Field {
	rows, cols := cfg.Rows, cfg.Cols
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	rng := core.NewRNG(cfg.Seed)

	g := core.NewGrid(cols, rows)
	data := g.Values()
	for r := 0; r < rows; r++ {
		slope := cfg.SlopeDrop
		if rows > 1 {
			slope = cfg.SlopeDrop * float64(rows-1-r) / float64(rows-1)
		}
		for c := 0; c < cols; c++ {
			wave := 0.0
			if cols > 1 {
				wave = cfg.WaveAmp * math.Sin(2*math.Pi*cfg.WaveCycles*float64(c)/float64(cols-1))
			}
			data[r*cols+c] = slope + wave + cfg.Roughness*rng.Norm()
		}
	}
	return &Field{grid: g}
}
