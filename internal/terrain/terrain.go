// Package terrain provides the immutable elevation field a flood simulation
// runs over, plus a deterministic synthetic generator for demo surfaces.
package terrain

import (
	"fmt"

	"floodgrid/internal/core"
)

// Field is an immutable grid of elevation samples in meters. Values may be
// negative. Once constructed a Field is never mutated.
type Field struct {
	grid *core.Grid
}

// NewField builds a Field from row-major elevation samples. The input is
// deep-copied so later mutation by the caller cannot leak into a running
// simulation. Returns a core.ErrShape wrap when the input is empty or rows
// have unequal length.
func NewField(elevation [][]float64) (*Field, error) {
	if len(elevation) == 0 || len(elevation[0]) == 0 {
		return nil, fmt.Errorf("%w: terrain needs at least one row and one column", core.ErrShape)
	}
	rows, cols := len(elevation), len(elevation[0])
	for r, row := range elevation {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: terrain row %d has %d columns, want %d", core.ErrShape, r, len(row), cols)
		}
	}
	g := core.NewGrid(cols, rows)
	data := g.Values()
	for r, row := range elevation {
		copy(data[r*cols:(r+1)*cols], row)
	}
	return &Field{grid: g}, nil
}

// Rows returns the number of rows in the field.
func (f *Field) Rows() int { return f.grid.H }

// Cols returns the number of columns in the field.
func (f *Field) Cols() int { return f.grid.W }

// At returns the elevation at row r, column c.
func (f *Field) At(r, c int) float64 {
	return f.grid.Values()[f.grid.Index(c, r)]
}

// Values exposes the backing row-major samples. Callers must not modify them.
func (f *Field) Values() []float64 { return f.grid.Values() }

// MinMax returns the lowest and highest elevation in the field.
func (f *Field) MinMax() (min, max float64) {
	data := f.grid.Values()
	min, max = data[0], data[0]
	for _, v := range data[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
