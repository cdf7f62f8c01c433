package world

import (
	"errors"
	"testing"
)

func TestGridBoundsChecking(t *testing.T) {
	g := NewGrid(10, 8, TileSolid)

	if _, err := g.Get(Position{X: 10, Y: 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Get outside width: got %v, want ErrOutOfBounds", err)
	}
	if _, err := g.Get(Position{X: 0, Y: -1}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Get negative y: got %v, want ErrOutOfBounds", err)
	}
	if err := g.Set(Position{X: -1, Y: 0}, TileEmpty); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Set outside bounds: got %v, want ErrOutOfBounds", err)
	}

	if err := g.Set(Position{X: 3, Y: 4}, TileEmpty); err != nil {
		t.Fatalf("Set in bounds: unexpected error %v", err)
	}
	tile, err := g.Get(Position{X: 3, Y: 4})
	if err != nil || tile != TileEmpty {
		t.Errorf("Get after Set: got (%v, %v), want (empty, nil)", tile, err)
	}
}

func TestGridAtTreatsOutsideAsSolid(t *testing.T) {
	g := NewGrid(4, 4, TileEmpty)
	if got := g.At(Position{X: -1, Y: 2}); got != TileSolid {
		t.Errorf("At outside bounds: got %v, want solid", got)
	}
}

func TestApplyKernelClipsAtCorner(t *testing.T) {
	g := NewGrid(8, 8, TileSolid)
	k := NewKernel(1.5, 1.0) // 3x3 square

	// Centered on the corner, only the in-bounds quadrant is carved.
	g.ApplyKernel(Position{X: 0, Y: 0}, k, TileEmpty)

	if got := g.Count(TileEmpty); got != 4 {
		t.Errorf("carved cell count: got %d, want 4", got)
	}
	for _, p := range []Position{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		if g.At(p) != TileEmpty {
			t.Errorf("cell (%d,%d) not carved", p.X, p.Y)
		}
	}
}

func TestSetAreaClips(t *testing.T) {
	g := NewGrid(6, 6, TileSolid)
	g.SetArea(Position{X: -2, Y: -2}, Position{X: 1, Y: 1}, TileEmpty)

	if got := g.Count(TileEmpty); got != 4 {
		t.Errorf("filled cell count: got %d, want 4", got)
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(5, 5, TileSolid)
	clone := g.Clone()

	if err := clone.Set(Position{X: 2, Y: 2}, TileEmpty); err != nil {
		t.Fatalf("Set on clone: %v", err)
	}
	if g.At(Position{X: 2, Y: 2}) != TileSolid {
		t.Error("mutating the clone leaked into the original")
	}
}

func TestGridFind(t *testing.T) {
	g := NewGrid(5, 5, TileSolid)
	if _, ok := g.Find(TileStart); ok {
		t.Error("Find on grid without start tile should report false")
	}

	want := Position{X: 3, Y: 1}
	if err := g.Set(want, TileStart); err != nil {
		t.Fatal(err)
	}
	got, ok := g.Find(TileStart)
	if !ok || got != want {
		t.Errorf("Find: got (%v, %v), want (%v, true)", got, ok, want)
	}
}
