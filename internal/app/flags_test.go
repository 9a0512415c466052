package app

import (
	"flag"
	"testing"

	"floodgrid/internal/sims/flood"
)

func TestBindAndSimOptions(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{
		"-size", "64",
		"-steps", "40",
		"-rainfall", "75",
		"-infiltration", "0.004",
		"-edge-outflow=false",
		"-boundary", "reflective",
		"-workers", "2",
		"-seed", "99",
	})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	got := flood.FromMap(cfg.SimOptions())
	if got.Width != 64 || got.Height != 64 {
		t.Errorf("size = %dx%d; want 64x64", got.Width, got.Height)
	}
	if got.Steps != 40 {
		t.Errorf("steps = %d; want 40", got.Steps)
	}
	if got.Seed != 99 {
		t.Errorf("seed = %d; want 99", got.Seed)
	}
	if got.Params.RainfallMM != 75 {
		t.Errorf("rainfall = %g; want 75", got.Params.RainfallMM)
	}
	if got.Params.InfiltrationM != 0.004 {
		t.Errorf("infiltration = %g; want 0.004", got.Params.InfiltrationM)
	}
	if got.Params.EdgeOutflow {
		t.Error("edge outflow should be disabled")
	}
	if got.Params.Boundary != flood.BoundaryReflective {
		t.Errorf("boundary = %v; want reflective", got.Params.Boundary)
	}
	if got.Params.Workers != 2 {
		t.Errorf("workers = %d; want 2", got.Params.Workers)
	}
}
