package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	Size          int
	Steps         int
	RainfallMM    float64
	InfiltrationM float64
	EdgeOutflow   bool
	Boundary      string
	Workers       int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:           "flood",
		Scale:         4,
		TPS:           30,
		Seed:          1,
		Size:          120,
		Steps:         250,
		RainfallMM:    120,
		InfiltrationM: 0.002,
		EdgeOutflow:   true,
		Boundary:      "periodic",
		Workers:       1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "terrain seed")
	fs.IntVar(&c.Size, "size", c.Size, "grid rows and columns")
	fs.IntVar(&c.Steps, "steps", c.Steps, "timesteps in a full run")
	fs.Float64Var(&c.RainfallMM, "rainfall", c.RainfallMM, "total rainfall in mm")
	fs.Float64Var(&c.InfiltrationM, "infiltration", c.InfiltrationM, "water lost per cell per step in m")
	fs.BoolVar(&c.EdgeOutflow, "edge-outflow", c.EdgeOutflow, "drain water at the domain border")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "neighbor policy: periodic, clamped or reflective")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per simulation step")
}

// SimOptions flattens the simulation parameters into the key/value form the
// sim registry factories consume.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":              strconv.Itoa(c.Size),
		"h":              strconv.Itoa(c.Size),
		"seed":           strconv.FormatInt(c.Seed, 10),
		"steps":          strconv.Itoa(c.Steps),
		"rainfall_mm":    strconv.FormatFloat(c.RainfallMM, 'g', -1, 64),
		"infiltration_m": strconv.FormatFloat(c.InfiltrationM, 'g', -1, 64),
		"edge_outflow":   strconv.FormatBool(c.EdgeOutflow),
		"boundary":       c.Boundary,
		"workers":        strconv.Itoa(c.Workers),
	}
}
