package flood

import (
	"testing"

	"floodgrid/internal/terrain"
)

func TestDisplaySeparatesWetAndDry(t *testing.T) {
	elev := [][]float64{
		{0, 1, 2},
		{0, 1, 2},
		{0, 1, 2},
	}
	field, err := terrain.NewField(elev)
	if err != nil {
		t.Fatalf("terrain error: %v", err)
	}

	sim, err := New(field, baseConfig(5))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	depths := [][]float64{
		{0, 0, 0},
		{0, 0.3, 0},
		{0, 0, 1},
	}
	if err := sim.SetDepths(depths); err != nil {
		t.Fatalf("SetDepths error: %v", err)
	}

	cells := sim.Cells()
	w := sim.Size().W
	if got := cells[1*w+1]; got < displayLevels {
		t.Errorf("wet cell rendered dry: display %d", got)
	}
	if got := cells[2*w+2]; got != 2*displayLevels-1 {
		t.Errorf("deep cell display = %d; want deepest band %d", got, 2*displayLevels-1)
	}
	if got := cells[0]; got >= displayLevels {
		t.Errorf("dry low cell rendered wet: display %d", got)
	}
	if lowland, ridge := cells[0], cells[2]; lowland >= ridge {
		t.Errorf("elevation shading flat: low %d, high %d", lowland, ridge)
	}

	if got := len(sim.Palette()); got != 2*displayLevels {
		t.Errorf("palette size = %d; want %d", got, 2*displayLevels)
	}
}
