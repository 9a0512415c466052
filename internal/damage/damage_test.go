package damage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"floodgrid/internal/core"
)

func TestFractionCurve(t *testing.T) {
	cases := []struct {
		depth float64
		want  float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.1, 0.05},
		{0.2, 0.1},
		{0.6, 0.3},
		{1.0, 0.5},
		{1.5, 0.7},
		{2.0, 0.95},
		{10, 0.95},
	}
	for _, tc := range cases {
		require.InDeltaf(t, tc.want, Fraction(tc.depth), 1e-12, "depth %g", tc.depth)
	}
}

func TestFractionMonotonic(t *testing.T) {
	prev := Fraction(0)
	for d := 0.01; d <= 3.0; d += 0.01 {
		cur := Fraction(d)
		require.GreaterOrEqualf(t, cur, prev, "depth %g", d)
		require.Less(t, cur, 1.0)
		prev = cur
	}
}

func TestEstimate(t *testing.T) {
	depths := [][]float64{
		{0, 0.5, 2.5},
		{0.2, 0, 1.0},
	}
	buildings := []Building{
		{ID: 0, Row: 0, Col: 0, ValueUSD: 100000}, // dry
		{ID: 1, Row: 0, Col: 2, ValueUSD: 50000},  // deep water, capped at 95%
		{ID: 2, Row: 1, Col: 0, ValueUSD: 80000},  // 10% band edge
	}

	losses, total, err := Estimate(depths, buildings)
	require.NoError(t, err)
	require.Len(t, losses, 3)

	require.Zero(t, losses[0].LossUSD)
	require.InDelta(t, 47500, losses[1].LossUSD, 1e-9)
	require.InDelta(t, 8000, losses[2].LossUSD, 1e-9)
	require.InDelta(t, 55500, total, 1e-9)
	require.InDelta(t, 2.5, losses[1].DepthM, 1e-12)
}

func TestEstimateRejectsBadInput(t *testing.T) {
	_, _, err := Estimate(nil, nil)
	require.ErrorIs(t, err, core.ErrShape)

	_, _, err = Estimate([][]float64{{1, 2}, {3}}, nil)
	require.ErrorIs(t, err, core.ErrShape)

	_, _, err = Estimate([][]float64{{1, 2}}, []Building{{ID: 7, Row: 1, Col: 0}})
	require.ErrorIs(t, err, core.ErrShape)

	_, _, err = Estimate([][]float64{{1, 2}}, []Building{{ID: 8, Row: 0, Col: -1}})
	require.ErrorIs(t, err, core.ErrShape)
}

func TestRandomBuildingsStayOnGrid(t *testing.T) {
	rng := core.NewRNG(5)
	buildings := RandomBuildings(rng, 10, 8, 50, 10000, 200000)
	require.Len(t, buildings, 50)

	for _, b := range buildings {
		require.GreaterOrEqual(t, b.Row, 0)
		require.Less(t, b.Row, 10)
		require.GreaterOrEqual(t, b.Col, 0)
		require.Less(t, b.Col, 8)
		require.GreaterOrEqual(t, b.ValueUSD, 10000.0)
		require.Less(t, b.ValueUSD, 200000.0)
	}

	// Deterministic for a fixed seed.
	again := RandomBuildings(core.NewRNG(5), 10, 8, 50, 10000, 200000)
	require.Equal(t, buildings, again)
}
