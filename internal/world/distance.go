package world

// DistanceField holds, for every cell of a grid snapshot, the Chebyshev
// distance to the nearest non-empty cell. Non-empty cells have distance 0.
//
// The field is computed with a multi-source breadth-first sweep over
// 8-connected neighbors, which yields exact Chebyshev distances in a single
// pass over the cells. It never mutates the grid it was derived from.
type DistanceField struct {
	Width  int
	Height int
	dist   []int
}

// ComputeDistanceField derives the distance field for a grid snapshot.
func ComputeDistanceField(g *Grid) *DistanceField {
	f := &DistanceField{
		Width:  g.Width,
		Height: g.Height,
		dist:   make([]int, g.Width*g.Height),
	}

	// Seed the sweep with every non-empty cell at distance 0.
	queue := make([]Position, 0, g.Width*g.Height/4)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i := y*g.Width + x
			if g.tiles[i] == TileEmpty {
				f.dist[i] = -1
			} else {
				queue = append(queue, Position{X: x, Y: y})
			}
		}
	}

	for head := 0; head < len(queue); head++ {
		p := queue[head]
		d := f.dist[p.Y*f.Width+p.X]

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				n := p.Shifted(dx, dy)
				if n.X < 0 || n.X >= f.Width || n.Y < 0 || n.Y >= f.Height {
					continue
				}
				i := n.Y*f.Width + n.X
				if f.dist[i] >= 0 {
					continue
				}
				f.dist[i] = d + 1
				queue = append(queue, n)
			}
		}
	}

	// Unreachable cells only occur on an all-empty grid.
	for i := range f.dist {
		if f.dist[i] < 0 {
			f.dist[i] = f.Width + f.Height
		}
	}

	return f
}

// At returns the distance value for the position. Out-of-bounds positions
// report 0, matching the solid border implied by Grid.At.
func (f *DistanceField) At(p Position) int {
	if p.X < 0 || p.X >= f.Width || p.Y < 0 || p.Y >= f.Height {
		return 0
	}
	return f.dist[p.Y*f.Width+p.X]
}
