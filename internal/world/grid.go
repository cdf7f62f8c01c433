package world

import "errors"

// ErrOutOfBounds indicates a grid access outside the grid dimensions. It is
// always a caller defect, never an expected runtime condition.
var ErrOutOfBounds = errors.New("world: position out of bounds")

// Grid is a dense, fixed-size 2D array of tiles stored in row-major order.
// A Grid is owned by a single generation attempt and is not safe for
// concurrent use.
type Grid struct {
	Width  int
	Height int
	tiles  []Tile
}

// NewGrid creates a grid of the given dimensions with every cell set to fill.
func NewGrid(width, height int, fill Tile) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		tiles:  make([]Tile, width*height),
	}
	if fill != 0 {
		g.Fill(fill)
	}
	return g
}

// Contains reports whether the position lies inside the grid.
func (g *Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

func (g *Grid) index(p Position) int {
	return p.Y*g.Width + p.X
}

// Get returns the tile at the given position.
func (g *Grid) Get(p Position) (Tile, error) {
	if !g.Contains(p) {
		return TileSolid, ErrOutOfBounds
	}
	return g.tiles[g.index(p)], nil
}

// Set writes the tile at the given position.
func (g *Grid) Set(p Position, t Tile) error {
	if !g.Contains(p) {
		return ErrOutOfBounds
	}
	g.tiles[g.index(p)] = t
	return nil
}

// At returns the tile at the given position, treating everything outside the
// grid as solid terrain. Use Get when out-of-bounds access must be a defect.
func (g *Grid) At(p Position) Tile {
	if !g.Contains(p) {
		return TileSolid
	}
	return g.tiles[g.index(p)]
}

// Fill sets every cell to the given tile.
func (g *Grid) Fill(t Tile) {
	for i := range g.tiles {
		g.tiles[i] = t
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{Width: g.Width, Height: g.Height, tiles: tiles}
}

// ApplyKernel writes the tile to every cell covered by the kernel centered
// on the given position. Cells outside the grid are skipped silently:
// partial application at the map edge is expected, not an error.
func (g *Grid) ApplyKernel(center Position, k *Kernel, t Tile) {
	for _, off := range k.Offsets() {
		p := center.Shifted(off.X, off.Y)
		if !g.Contains(p) {
			continue
		}
		g.tiles[g.index(p)] = t
	}
}

// SetArea writes the tile to every cell in the rectangle spanned by lo and
// hi (inclusive), clipped to the grid bounds.
func (g *Grid) SetArea(lo, hi Position, t Tile) {
	for y := max(lo.Y, 0); y <= min(hi.Y, g.Height-1); y++ {
		for x := max(lo.X, 0); x <= min(hi.X, g.Width-1); x++ {
			g.tiles[y*g.Width+x] = t
		}
	}
}

// AreaIs reports whether every in-bounds cell in the rectangle spanned by
// lo and hi (inclusive) holds the given tile.
func (g *Grid) AreaIs(lo, hi Position, t Tile) bool {
	for y := max(lo.Y, 0); y <= min(hi.Y, g.Height-1); y++ {
		for x := max(lo.X, 0); x <= min(hi.X, g.Width-1); x++ {
			if g.tiles[y*g.Width+x] != t {
				return false
			}
		}
	}
	return true
}

// Count returns the number of cells holding the given tile.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, tile := range g.tiles {
		if tile == t {
			n++
		}
	}
	return n
}

// Find returns the position of the first cell holding the given tile,
// scanning row by row, and whether one was found.
func (g *Grid) Find(t Tile) (Position, bool) {
	for i, tile := range g.tiles {
		if tile == t {
			return Position{X: i % g.Width, Y: i / g.Width}, true
		}
	}
	return Position{}, false
}
