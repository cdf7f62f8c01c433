package world

import "testing"

func TestDistanceFieldSingleSolidCell(t *testing.T) {
	g := NewGrid(9, 9, TileEmpty)
	center := Position{X: 4, Y: 4}
	if err := g.Set(center, TileSolid); err != nil {
		t.Fatal(err)
	}

	f := ComputeDistanceField(g)

	// Every cell's value must equal its Chebyshev distance to the center.
	cases := []struct {
		pos  Position
		want int
	}{
		{Position{4, 4}, 0},
		{Position{5, 4}, 1},
		{Position{5, 5}, 1},
		{Position{6, 5}, 2},
		{Position{4, 0}, 4},
		{Position{0, 0}, 4},
		{Position{8, 8}, 4},
		{Position{8, 4}, 4},
		{Position{7, 1}, 3},
	}
	for _, tc := range cases {
		if got := f.At(tc.pos); got != tc.want {
			t.Errorf("distance at (%d,%d): got %d, want %d", tc.pos.X, tc.pos.Y, got, tc.want)
		}
	}
}

func TestDistanceFieldSolidCellsAreZero(t *testing.T) {
	g := NewGrid(6, 6, TileSolid)
	g.SetArea(Position{X: 2, Y: 2}, Position{X: 3, Y: 3}, TileEmpty)

	f := ComputeDistanceField(g)

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			p := Position{X: x, Y: y}
			if g.At(p) != TileEmpty && f.At(p) != 0 {
				t.Errorf("non-empty cell (%d,%d) has distance %d, want 0", x, y, f.At(p))
			}
		}
	}

	// The 2x2 empty pocket is surrounded by solid: every empty cell sits at
	// distance 1.
	for _, p := range []Position{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		if got := f.At(p); got != 1 {
			t.Errorf("pocket cell (%d,%d): got %d, want 1", p.X, p.Y, got)
		}
	}
}

func TestDistanceFieldHazardCountsAsOccupied(t *testing.T) {
	g := NewGrid(7, 7, TileEmpty)
	if err := g.Set(Position{X: 3, Y: 3}, TileHazard); err != nil {
		t.Fatal(err)
	}

	f := ComputeDistanceField(g)
	if got := f.At(Position{X: 3, Y: 3}); got != 0 {
		t.Errorf("hazard cell distance: got %d, want 0", got)
	}
	if got := f.At(Position{X: 6, Y: 3}); got != 3 {
		t.Errorf("distance at (6,3): got %d, want 3", got)
	}
}
