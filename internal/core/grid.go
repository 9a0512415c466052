package core

// Grid stores a 2D field of float64 samples in row-major order. It backs both
// the static elevation field and the evolving water-depth buffers.
type Grid struct {
	W, H int
	data []float64
}

// NewGrid allocates a zeroed grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]float64, w*h)}
}

// Values exposes the backing slice so callers can read/write samples directly.
func (g *Grid) Values() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Clamp pins out-of-range coordinates to the nearest edge cell.
func (g *Grid) Clamp(x, y int) (int, int) {
	if x < 0 {
		x = 0
	} else if x >= g.W {
		x = g.W - 1
	}
	if y < 0 {
		y = 0
	} else if y >= g.H {
		y = g.H - 1
	}
	return x, y
}

// Reflect mirrors out-of-range coordinates across the grid edge, so the
// out-of-range neighbor of an edge cell resolves to the cell one step inward.
func (g *Grid) Reflect(x, y int) (int, int) {
	return reflect(x, g.W), reflect(y, g.H)
}

func reflect(v, n int) int {
	if n == 1 {
		return 0
	}
	for v < 0 || v >= n {
		if v < 0 {
			v = -v
		}
		if v >= n {
			v = 2*(n-1) - v
		}
	}
	return v
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Sum returns the total of all samples in the grid.
func (g *Grid) Sum() float64 {
	var total float64
	for _, v := range g.data {
		total += v
	}
	return total
}

// Rows copies the grid into a freshly allocated [][]float64, detached from
// the backing slice.
func (g *Grid) Rows() [][]float64 {
	out := make([][]float64, g.H)
	for y := 0; y < g.H; y++ {
		row := make([]float64, g.W)
		copy(row, g.data[y*g.W:(y+1)*g.W])
		out[y] = row
	}
	return out
}
