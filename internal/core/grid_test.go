package core

import "testing"

func TestWrap(t *testing.T) {
	g := NewGrid(4, 3)
	cases := []struct{ x, y, wantX, wantY int }{
		{0, 0, 0, 0},
		{-1, 0, 3, 0},
		{4, 0, 0, 0},
		{0, -1, 0, 2},
		{0, 3, 0, 0},
		{-5, -4, 3, 2},
	}
	for _, tc := range cases {
		if x, y := g.Wrap(tc.x, tc.y); x != tc.wantX || y != tc.wantY {
			t.Errorf("Wrap(%d,%d) = (%d,%d); want (%d,%d)", tc.x, tc.y, x, y, tc.wantX, tc.wantY)
		}
	}
}

func TestClamp(t *testing.T) {
	g := NewGrid(4, 3)
	cases := []struct{ x, y, wantX, wantY int }{
		{2, 1, 2, 1},
		{-1, 0, 0, 0},
		{4, 5, 3, 2},
		{-7, -7, 0, 0},
	}
	for _, tc := range cases {
		if x, y := g.Clamp(tc.x, tc.y); x != tc.wantX || y != tc.wantY {
			t.Errorf("Clamp(%d,%d) = (%d,%d); want (%d,%d)", tc.x, tc.y, x, y, tc.wantX, tc.wantY)
		}
	}
}

func TestReflect(t *testing.T) {
	g := NewGrid(4, 3)
	cases := []struct{ x, y, wantX, wantY int }{
		{2, 1, 2, 1},
		{-1, 0, 1, 0},
		{4, 0, 2, 0},
		{0, -1, 0, 1},
		{0, 3, 0, 1},
	}
	for _, tc := range cases {
		if x, y := g.Reflect(tc.x, tc.y); x != tc.wantX || y != tc.wantY {
			t.Errorf("Reflect(%d,%d) = (%d,%d); want (%d,%d)", tc.x, tc.y, x, y, tc.wantX, tc.wantY)
		}
	}

	// A single-cell axis always resolves to itself.
	one := NewGrid(1, 1)
	if x, y := one.Reflect(-1, 2); x != 0 || y != 0 {
		t.Errorf("Reflect(-1,2) on 1x1 = (%d,%d); want (0,0)", x, y)
	}
}

func TestSumAndRows(t *testing.T) {
	g := NewGrid(3, 2)
	data := g.Values()
	for i := range data {
		data[i] = float64(i + 1)
	}
	if got := g.Sum(); got != 21 {
		t.Errorf("Sum = %g; want 21", got)
	}

	rows := g.Rows()
	if len(rows) != 2 || len(rows[0]) != 3 {
		t.Fatalf("Rows shape = %dx%d; want 2x3", len(rows), len(rows[0]))
	}
	if rows[1][2] != 6 {
		t.Errorf("rows[1][2] = %g; want 6", rows[1][2])
	}

	// The copy is detached from the backing slice.
	rows[0][0] = 100
	if data[0] != 1 {
		t.Errorf("backing slice changed by Rows copy: %g", data[0])
	}

	g.Clear()
	if got := g.Sum(); got != 0 {
		t.Errorf("Sum after Clear = %g; want 0", got)
	}
}
