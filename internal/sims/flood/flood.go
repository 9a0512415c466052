// Package flood implements a discrete-time grid model of rainfall pooling
// over a terrain surface: water falls uniformly, flows from higher to lower
// water surface between axis neighbors, soaks into the soil at a fixed rate,
// and optionally drains out at the domain border.
package flood

import (
	"context"
	"fmt"
	"sync"

	"floodgrid/internal/core"
	"floodgrid/internal/terrain"
)

const (
	// moveFraction of a cell's outflow potential leaves the cell each step,
	// limited to the water the cell holds.
	moveFraction = 0.2
	// shareFraction of the outflow potential arrives per neighbor direction;
	// the four shares together equal moveFraction, so what left one cell is
	// exactly what its neighbors receive.
	shareFraction = 0.05
	// edgeRetention is the depth fraction border cells keep when edge
	// outflow is enabled.
	edgeRetention = 0.7
)

// Von Neumann neighborhood (N, S, W, E) as (dx, dy) offsets.
var neighborOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Simulator owns the evolving water-depth grid for one terrain field. The
// update is double-buffered: every step reads the current buffer and writes
// the next, so neighbor reads always see the pre-step snapshot.
type Simulator struct {
	cfg   Config
	field *terrain.Field

	// ownsTerrain marks sims that generated their own synthetic surface and
	// may regenerate it on Reset.
	ownsTerrain bool

	w, h      int
	cur, nxt  *core.Grid
	surface   []float64
	moved     []float64
	neighbors [][4]int32
	// inflows[i] lists every cell whose outflow shares resolve to cell i,
	// with multiplicity. Under the periodic boundary these are exactly the
	// four neighbors; under clamped/reflective boundaries edge cells differ.
	inflows [][]int32

	elevMin  float64
	elevSpan float64

	display   []uint8
	stepsDone int
}

// New creates a Simulator over the provided terrain. Config dimensions, when
// set, must match the terrain; mismatches surface a core.ErrShape wrap and
// config violations a core.ErrConfig wrap. After construction a run cannot
// fail.
func New(field *terrain.Field, cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if field == nil {
		return nil, fmt.Errorf("%w: simulator requires a terrain field", core.ErrShape)
	}
	if cfg.Width != 0 && cfg.Width != field.Cols() {
		return nil, fmt.Errorf("%w: configured width %d, terrain has %d columns", core.ErrShape, cfg.Width, field.Cols())
	}
	if cfg.Height != 0 && cfg.Height != field.Rows() {
		return nil, fmt.Errorf("%w: configured height %d, terrain has %d rows", core.ErrShape, cfg.Height, field.Rows())
	}
	cfg.Width, cfg.Height = field.Cols(), field.Rows()
	if cfg.Params.Workers < 1 {
		cfg.Params.Workers = 1
	}

	w, h := field.Cols(), field.Rows()
	s := &Simulator{
		cfg:     cfg,
		field:   field,
		w:       w,
		h:       h,
		cur:     core.NewGrid(w, h),
		nxt:     core.NewGrid(w, h),
		surface: make([]float64, w*h),
		moved:   make([]float64, w*h),
		display: make([]uint8, w*h),
	}
	s.buildNeighbors()
	s.cacheElevationRange()
	s.refreshDisplay()
	return s, nil
}

// NewSynthetic creates a Simulator over a generated demo terrain sized and
// seeded by the config.
func NewSynthetic(cfg Config) (*Simulator, error) {
	tc := terrain.DefaultSyntheticConfig()
	tc.Rows, tc.Cols, tc.Seed = cfg.Height, cfg.Width, cfg.Seed
	s, err := New(terrain.Synthetic(tc), cfg)
	if err != nil {
		return nil, err
	}
	s.ownsTerrain = true
	return s, nil
}

// Name returns the simulation identifier.
func (s *Simulator) Name() string { return "flood" }

// Size reports the grid dimensions.
func (s *Simulator) Size() core.Size { return core.Size{W: s.w, H: s.h} }

// Cells exposes the current display buffer.
func (s *Simulator) Cells() []uint8 { return s.display }

// Terrain returns the elevation field the simulation runs over.
func (s *Simulator) Terrain() *terrain.Field { return s.field }

// Config returns the active configuration.
func (s *Simulator) Config() Config { return s.cfg }

// StepsDone reports how many steps have run since the last Reset.
func (s *Simulator) StepsDone() int { return s.stepsDone }

// Depths returns a copy of the current water-depth grid in meters.
func (s *Simulator) Depths() [][]float64 { return s.cur.Rows() }

// TotalDepth returns the sum of all cell depths in meters.
func (s *Simulator) TotalDepth() float64 { return s.cur.Sum() }

// MaxDepth returns the deepest cell value in meters.
func (s *Simulator) MaxDepth() float64 {
	var peak float64
	for _, v := range s.cur.Values() {
		if v > peak {
			peak = v
		}
	}
	return peak
}

// SetDepths replaces the water state with a copy of the provided grid, for
// resuming a run or starting from a measured state. Returns a core.ErrShape
// wrap when the grid does not match the terrain's shape or any depth is
// negative.
func (s *Simulator) SetDepths(depths [][]float64) error {
	if len(depths) != s.h {
		return fmt.Errorf("%w: depth grid has %d rows, terrain has %d", core.ErrShape, len(depths), s.h)
	}
	for r, row := range depths {
		if len(row) != s.w {
			return fmt.Errorf("%w: depth row %d has %d columns, terrain has %d", core.ErrShape, r, len(row), s.w)
		}
		for c, d := range row {
			if d < 0 {
				return fmt.Errorf("%w: negative depth %g at (%d,%d)", core.ErrConfig, d, r, c)
			}
		}
	}
	data := s.cur.Values()
	for r, row := range depths {
		copy(data[r*s.w:(r+1)*s.w], row)
	}
	s.refreshDisplay()
	return nil
}

// Reset drains the grid back to zero depth. Sims that own a synthetic
// terrain regenerate it from the seed (0 means the configured seed).
func (s *Simulator) Reset(seed int64) {
	if s.ownsTerrain {
		effective := seed
		if effective == 0 {
			effective = s.cfg.Seed
		}
		tc := terrain.DefaultSyntheticConfig()
		tc.Rows, tc.Cols, tc.Seed = s.h, s.w, effective
		s.field = terrain.Synthetic(tc)
		s.cacheElevationRange()
	}
	s.cur.Clear()
	s.nxt.Clear()
	s.stepsDone = 0
	s.refreshDisplay()
}

// Run advances the simulation through the configured number of steps and
// returns the final depth grid. Cancellation is only observed between steps;
// on cancellation the depths accumulated so far are returned along with the
// context error.
func (s *Simulator) Run(ctx context.Context) ([][]float64, error) {
	for s.stepsDone < s.cfg.Steps {
		if err := ctx.Err(); err != nil {
			return s.Depths(), err
		}
		s.Step()
	}
	return s.Depths(), nil
}

// Step advances the water state by one timestep: rainfall, downhill flow
// between neighbors, infiltration, then border drainage.
func (s *Simulator) Step() {
	rain := s.cfg.Params.RainfallMM / 1000.0 / float64(s.cfg.Steps)
	infil := s.cfg.Params.InfiltrationM
	edge := s.cfg.Params.EdgeOutflow
	w, h := s.w, s.h
	cur, nxt := s.cur.Values(), s.nxt.Values()
	elev := s.field.Values()

	// Rain lands before the driving surface is computed, as in the reference
	// model. Everything below reads this post-rain snapshot.
	s.forRows(func(y0, y1 int) {
		for i := y0 * w; i < y1*w; i++ {
			cur[i] += rain
			s.surface[i] = elev[i] + cur[i]
		}
	})

	// Outflow potential: the positive surface drop toward each neighbor.
	// A cell can move at most the water it holds, so the removal below never
	// clips and the four shares always return exactly what left.
	s.forRows(func(y0, y1 int) {
		for i := y0 * w; i < y1*w; i++ {
			pot := 0.0
			si := s.surface[i]
			for _, n := range s.neighbors[i] {
				if d := si - s.surface[n]; d > 0 {
					pot += d
				}
			}
			out := moveFraction * pot
			if out > cur[i] {
				out = cur[i]
			}
			s.moved[i] = out
		}
	})

	// Apply: removal, the incoming shares, infiltration (clamped), and
	// border drainage. Each cell writes only its own slot in the next
	// buffer, which is what makes the row fan-out race-free.
	s.forRows(func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			border := y == 0 || y == h-1
			for x := 0; x < w; x++ {
				i := y*w + x
				d := cur[i] - s.moved[i]
				for _, src := range s.inflows[i] {
					d += (shareFraction / moveFraction) * s.moved[src]
				}
				d -= infil
				if d < 0 {
					d = 0
				}
				if edge && (border || x == 0 || x == w-1) {
					d *= edgeRetention
				}
				nxt[i] = d
			}
		}
	})

	s.cur, s.nxt = s.nxt, s.cur
	s.stepsDone++
	s.refreshDisplay()
}

// buildNeighbors precomputes the resolved linear index of each cell's four
// neighbors under the configured boundary policy, and the reverse inflow
// map: one quarter of a cell's moved water goes out along each direction, so
// each resolved target later collects a quarter share back from its source.
func (s *Simulator) buildNeighbors() {
	b := s.cfg.Params.Boundary
	s.neighbors = make([][4]int32, s.w*s.h)
	s.inflows = make([][]int32, s.w*s.h)
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			i := y*s.w + x
			for d, off := range neighborOffsets {
				n := int32(b.resolve(s.cur, x+off[0], y+off[1]))
				s.neighbors[i][d] = n
				s.inflows[n] = append(s.inflows[n], int32(i))
			}
		}
	}
}

func (s *Simulator) cacheElevationRange() {
	min, max := s.field.MinMax()
	s.elevMin = min
	s.elevSpan = max - min
}

// forRows runs fn over [0, h) row ranges, fanned out across the configured
// worker count. Each call is a full barrier.
func (s *Simulator) forRows(fn func(y0, y1 int)) {
	workers := s.cfg.Params.Workers
	if workers > s.h {
		workers = s.h
	}
	if workers < 2 {
		fn(0, s.h)
		return
	}
	var wg sync.WaitGroup
	chunk := (s.h + workers - 1) / workers
	for y0 := 0; y0 < s.h; y0 += chunk {
		y1 := y0 + chunk
		if y1 > s.h {
			y1 = s.h
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			fn(y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}

func init() {
	core.Register("flood", func(cfg map[string]string) core.Sim {
		sim, err := NewSynthetic(FromMap(cfg))
		if err != nil {
			// FromMap only admits values that pass validation.
			panic(err)
		}
		return sim
	})
}
