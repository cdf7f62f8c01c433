package gen

import (
	"testing"

	"github.com/samdwyer/tunnelgen/internal/world"
)

func TestValidatorRejectsDisconnectedMap(t *testing.T) {
	cfg := Default(20, 20)
	v := NewValidator(&cfg)

	g := world.NewGrid(20, 20, world.TileSolid)
	g.SetArea(world.Position{X: 2, Y: 2}, world.Position{X: 5, Y: 5}, world.TileEmpty)
	g.SetArea(world.Position{X: 14, Y: 14}, world.Position{X: 17, Y: 17}, world.TileEmpty)

	start := world.Position{X: 3, Y: 3}
	finish := world.Position{X: 16, Y: 16}
	g.Set(start, world.TileStart)
	g.Set(finish, world.TileFinish)

	df := world.ComputeDistanceField(g)
	if got := v.Check(g, df, nil, start, finish); got != RejectConnectivity {
		t.Errorf("disconnected pockets: got %v, want connectivity rejection", got)
	}
}

func TestValidatorRejectsNarrowCorridor(t *testing.T) {
	cfg := Default(20, 20) // MinClearance 2
	v := NewValidator(&cfg)

	g := world.NewGrid(20, 20, world.TileSolid)
	start := world.Position{X: 2, Y: 10}
	finish := world.Position{X: 17, Y: 10}

	// One-cell-high corridor: every cell sits at distance 1 from the walls.
	path := make([]world.Position, 0, 16)
	for x := 2; x <= 17; x++ {
		p := world.Position{X: x, Y: 10}
		g.Set(p, world.TileEmpty)
		path = append(path, p)
	}
	g.Set(start, world.TileStart)
	g.Set(finish, world.TileFinish)

	df := world.ComputeDistanceField(g)
	if got := v.Check(g, df, path, start, finish); got != RejectClearance {
		t.Errorf("narrow corridor: got %v, want clearance rejection", got)
	}
}

func TestValidatorRejectsWideOpenPath(t *testing.T) {
	cfg := Default(40, 40)
	cfg.MaxClearance = 3
	v := NewValidator(&cfg)

	g := world.NewGrid(40, 40, world.TileSolid)
	g.SetArea(world.Position{X: 2, Y: 2}, world.Position{X: 37, Y: 37}, world.TileEmpty)

	start := world.Position{X: 3, Y: 3}
	finish := world.Position{X: 36, Y: 36}
	g.Set(start, world.TileStart)
	g.Set(finish, world.TileFinish)

	// Path through the middle of the open area, far from both rooms.
	path := []world.Position{{X: 20, Y: 20}}

	df := world.ComputeDistanceField(g)
	if got := v.Check(g, df, path, start, finish); got != RejectClearance {
		t.Errorf("degenerately wide area: got %v, want clearance rejection", got)
	}
}

func TestValidatorRejectsEnclosedIsland(t *testing.T) {
	cfg := Default(20, 20)
	cfg.MinClearance = 1
	cfg.MaxClearance = 100
	cfg.MaxEnclosedIsland = 4
	v := NewValidator(&cfg)

	g := world.NewGrid(20, 20, world.TileSolid)
	g.SetArea(world.Position{X: 1, Y: 1}, world.Position{X: 18, Y: 18}, world.TileEmpty)
	// 3x3 solid island floating inside the open area, larger than allowed.
	g.SetArea(world.Position{X: 8, Y: 8}, world.Position{X: 10, Y: 10}, world.TileSolid)

	start := world.Position{X: 2, Y: 2}
	finish := world.Position{X: 17, Y: 17}
	g.Set(start, world.TileStart)
	g.Set(finish, world.TileFinish)

	df := world.ComputeDistanceField(g)
	if got := v.Check(g, df, nil, start, finish); got != RejectEnclosure {
		t.Errorf("enclosed island: got %v, want enclosure rejection", got)
	}

	// The same island is fine when the threshold allows it.
	cfg.MaxEnclosedIsland = 16
	if got := v.Check(g, df, nil, start, finish); got != RejectNone {
		t.Errorf("island within threshold: got %v, want acceptance", got)
	}
}

func TestValidatorDerivesHazardBorder(t *testing.T) {
	cfg := Default(10, 10)
	cfg.PlatformClearance = 3
	cfg.PlatformStride = 4
	v := NewValidator(&cfg)

	g := world.NewGrid(10, 10, world.TileSolid)
	g.SetArea(world.Position{X: 1, Y: 1}, world.Position{X: 8, Y: 8}, world.TileEmpty)

	df := world.ComputeDistanceField(g)
	layers := v.DeriveLayers(g, df)

	// The ring of empty cells touching the solid frame is hazard.
	for _, p := range []world.Position{{X: 1, Y: 1}, {X: 4, Y: 1}, {X: 8, Y: 8}, {X: 1, Y: 5}} {
		if !layers.Hazard.At(p) {
			t.Errorf("cell (%d,%d) should be hazard", p.X, p.Y)
		}
	}
	// Interior cells are not.
	for _, p := range []world.Position{{X: 4, Y: 4}, {X: 3, Y: 5}} {
		if layers.Hazard.At(p) {
			t.Errorf("cell (%d,%d) should not be hazard", p.X, p.Y)
		}
	}
	// Hazard never lands on solid cells.
	if layers.Hazard.At(world.Position{X: 0, Y: 0}) {
		t.Error("hazard marked a solid cell")
	}
}

func TestValidatorRemovesSmallHazardBlobs(t *testing.T) {
	cfg := Default(12, 12)
	cfg.MinHazardBlob = 9
	v := NewValidator(&cfg)

	g := world.NewGrid(12, 12, world.TileSolid)
	g.SetArea(world.Position{X: 1, Y: 1}, world.Position{X: 10, Y: 10}, world.TileEmpty)
	// Lone solid cell: its hazard ring is exactly 8 cells.
	g.Set(world.Position{X: 5, Y: 5}, world.TileSolid)

	df := world.ComputeDistanceField(g)
	layers := v.DeriveLayers(g, df)

	// The 8-cell ring falls below the threshold and is dropped.
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			p := world.Position{X: 5 + dx, Y: 5 + dy}
			if layers.Hazard.At(p) {
				t.Errorf("ring cell (%d,%d) should have been filtered", p.X, p.Y)
			}
		}
	}
	// The 36-cell border ring survives.
	for _, p := range []world.Position{{X: 1, Y: 1}, {X: 10, Y: 10}, {X: 5, Y: 1}} {
		if !layers.Hazard.At(p) {
			t.Errorf("border cell (%d,%d) should stay hazard", p.X, p.Y)
		}
	}

	// The same ring is kept once the threshold admits it.
	cfg.MinHazardBlob = 8
	layers = v.DeriveLayers(g, df)
	if !layers.Hazard.At(world.Position{X: 4, Y: 4}) {
		t.Error("ring at the threshold size should be kept")
	}
}

func TestPlatformLedgesAvoidHazardCells(t *testing.T) {
	cfg := Default(10, 10)
	cfg.PlatformClearance = 1
	cfg.PlatformStride = 4
	v := NewValidator(&cfg)

	// Three-cell-wide shaft: the ledge around the stride cell (4,4) would
	// span the hazard columns lining both walls.
	g := world.NewGrid(10, 10, world.TileSolid)
	g.SetArea(world.Position{X: 3, Y: 1}, world.Position{X: 5, Y: 8}, world.TileEmpty)

	df := world.ComputeDistanceField(g)
	layers := v.DeriveLayers(g, df)

	if !layers.Platform.At(world.Position{X: 4, Y: 4}) {
		t.Error("shaft center should be a platform")
	}
	for _, p := range []world.Position{{X: 3, Y: 4}, {X: 5, Y: 4}} {
		if layers.Platform.At(p) {
			t.Errorf("ledge cell (%d,%d) overlaps the hazard border", p.X, p.Y)
		}
	}
	for _, p := range layers.Platform.Positions() {
		if layers.Hazard.At(p) {
			t.Fatalf("platform and hazard masks overlap at (%d,%d)", p.X, p.Y)
		}
	}
}

func TestValidatorDerivesPlatforms(t *testing.T) {
	cfg := Default(10, 10)
	cfg.PlatformClearance = 3
	cfg.PlatformStride = 4
	v := NewValidator(&cfg)

	g := world.NewGrid(10, 10, world.TileSolid)
	g.SetArea(world.Position{X: 1, Y: 1}, world.Position{X: 8, Y: 8}, world.TileEmpty)

	df := world.ComputeDistanceField(g)
	layers := v.DeriveLayers(g, df)

	// (4,4) is the only stride-aligned cell with enough clearance; the
	// derived ledge is three cells wide.
	for _, p := range []world.Position{{X: 3, Y: 4}, {X: 4, Y: 4}, {X: 5, Y: 4}} {
		if !layers.Platform.At(p) {
			t.Errorf("cell (%d,%d) should be platform", p.X, p.Y)
		}
	}
	if got := layers.Platform.Count(); got != 3 {
		t.Errorf("platform cell count: got %d, want 3", got)
	}
}
