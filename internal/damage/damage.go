// Package damage turns a flood depth grid into an economic loss estimate by
// applying a piecewise depth-damage curve to building points on the grid.
package damage

import (
	"fmt"

	"floodgrid/internal/core"
)

// Building is a point asset on the grid with a replacement value.
type Building struct {
	ID       int
	Row, Col int
	ValueUSD float64
}

// Loss is the assessed outcome for one building.
type Loss struct {
	Building
	DepthM  float64
	LossUSD float64
}

// Fraction returns the loss fraction in [0, 1) for a flood depth in meters.
// The curve rises quickly through the first meter and flattens near total
// loss beyond two meters.
func Fraction(depthM float64) float64 {
	switch {
	case depthM <= 0:
		return 0
	case depthM < 0.2:
		return 0.1 * depthM / 0.2
	case depthM < 1.0:
		return 0.1 + 0.4*(depthM-0.2)/0.8
	case depthM < 2.0:
		return 0.5 + 0.4*(depthM-1.0)/1.0
	default:
		return 0.95
	}
}

// Estimate samples the depth grid at each building and applies the damage
// curve. Returns a core.ErrShape wrap when the grid is empty or ragged, or
// when a building lies outside it.
func Estimate(depths [][]float64, buildings []Building) ([]Loss, float64, error) {
	if len(depths) == 0 || len(depths[0]) == 0 {
		return nil, 0, fmt.Errorf("%w: depth grid needs at least one row and one column", core.ErrShape)
	}
	rows, cols := len(depths), len(depths[0])
	for r, row := range depths {
		if len(row) != cols {
			return nil, 0, fmt.Errorf("%w: depth row %d has %d columns, want %d", core.ErrShape, r, len(row), cols)
		}
	}

	losses := make([]Loss, 0, len(buildings))
	var total float64
	for _, b := range buildings {
		if b.Row < 0 || b.Row >= rows || b.Col < 0 || b.Col >= cols {
			return nil, 0, fmt.Errorf("%w: building %d at (%d,%d) outside %dx%d grid", core.ErrShape, b.ID, b.Row, b.Col, rows, cols)
		}
		d := depths[b.Row][b.Col]
		loss := Fraction(d) * b.ValueUSD
		losses = append(losses, Loss{Building: b, DepthM: d, LossUSD: loss})
		total += loss
	}
	return losses, total, nil
}

// RandomBuildings scatters n demo buildings across a rows x cols grid with
// values drawn uniformly from [minValue, maxValue).
func RandomBuildings(rng *core.RNG, rows, cols, n int, minValue, maxValue float64) []Building {
	if n < 0 {
		n = 0
	}
	buildings := make([]Building, n)
	for i := range buildings {
		buildings[i] = Building{
			ID:       i,
			Row:      rng.IntN(rows),
			Col:      rng.IntN(cols),
			ValueUSD: minValue + rng.Float64()*(maxValue-minValue),
		}
	}
	return buildings
}
