package flood

import "testing"

func TestFromMapDefaults(t *testing.T) {
	got := FromMap(nil)
	want := DefaultConfig()
	if got != want {
		t.Errorf("FromMap(nil) = %+v; want defaults %+v", got, want)
	}
}

func TestFromMapParsesValues(t *testing.T) {
	got := FromMap(map[string]string{
		"w":              "64",
		"h":              "48",
		"seed":           "-9",
		"steps":          "100",
		"rainfall_mm":    "80.5",
		"infiltration_m": "0.001",
		"edge_outflow":   "false",
		"boundary":       "clamped",
		"workers":        "4",
	})

	if got.Width != 64 || got.Height != 48 {
		t.Errorf("size = %dx%d; want 64x48", got.Width, got.Height)
	}
	if got.Seed != -9 {
		t.Errorf("seed = %d; want -9", got.Seed)
	}
	if got.Steps != 100 {
		t.Errorf("steps = %d; want 100", got.Steps)
	}
	if got.Params.RainfallMM != 80.5 {
		t.Errorf("rainfall = %g; want 80.5", got.Params.RainfallMM)
	}
	if got.Params.InfiltrationM != 0.001 {
		t.Errorf("infiltration = %g; want 0.001", got.Params.InfiltrationM)
	}
	if got.Params.EdgeOutflow {
		t.Error("edge outflow should be disabled")
	}
	if got.Params.Boundary != BoundaryClamped {
		t.Errorf("boundary = %v; want clamped", got.Params.Boundary)
	}
	if got.Params.Workers != 4 {
		t.Errorf("workers = %d; want 4", got.Params.Workers)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("parsed config should validate: %v", err)
	}
}

func TestFromMapIgnoresInvalidValues(t *testing.T) {
	got := FromMap(map[string]string{
		"w":           "zero",
		"steps":       "0",
		"rainfall_mm": "-5",
		"boundary":    "open",
		"workers":     "-1",
	})
	want := DefaultConfig()
	if got != want {
		t.Errorf("FromMap with junk = %+v; want defaults %+v", got, want)
	}
}
