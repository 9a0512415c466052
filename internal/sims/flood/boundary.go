package flood

import (
	"fmt"

	"floodgrid/internal/core"
)

// Boundary selects how neighbor lookups resolve beyond the grid edge.
type Boundary int

const (
	// BoundaryPeriodic treats the opposite edge as the neighbor, so the
	// domain wraps around like a torus. This is the default and matches the
	// circular-shift neighborhood of the reference model.
	BoundaryPeriodic Boundary = iota
	// BoundaryClamped resolves an out-of-range neighbor to the edge cell
	// itself, so edge cells see a flat continuation of the domain.
	BoundaryClamped
	// BoundaryReflective mirrors the domain across the edge.
	BoundaryReflective
)

// ParseBoundary converts a flag/config string into a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "periodic", "":
		return BoundaryPeriodic, nil
	case "clamped":
		return BoundaryClamped, nil
	case "reflective":
		return BoundaryReflective, nil
	}
	return 0, fmt.Errorf("%w: unknown boundary policy %q", core.ErrConfig, s)
}

func (b Boundary) String() string {
	switch b {
	case BoundaryPeriodic:
		return "periodic"
	case BoundaryClamped:
		return "clamped"
	case BoundaryReflective:
		return "reflective"
	}
	return fmt.Sprintf("boundary(%d)", int(b))
}

func (b Boundary) valid() bool {
	return b == BoundaryPeriodic || b == BoundaryClamped || b == BoundaryReflective
}

// resolve maps possibly out-of-range coordinates to a linear grid index.
func (b Boundary) resolve(g *core.Grid, x, y int) int {
	switch b {
	case BoundaryClamped:
		x, y = g.Clamp(x, y)
	case BoundaryReflective:
		x, y = g.Reflect(x, y)
	default:
		x, y = g.Wrap(x, y)
	}
	return g.Index(x, y)
}
