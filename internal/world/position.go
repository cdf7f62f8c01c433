package world

import "sort"

// Position is an integer grid coordinate. It is only meaningful inside the
// bounds of the Grid it refers to.
type Position struct {
	X, Y int
}

// Shifted returns a new position offset by dx and dy.
func (p Position) Shifted(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// DistanceSquared returns the squared euclidean distance to another position.
func (p Position) DistanceSquared(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// Direction is one of the four unit steps a walker can take.
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Offset returns the unit step for the direction.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	default:
		return -1, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "left"
	}
}

// Moved returns the position one step in the given direction.
func (p Position) Moved(d Direction) Position {
	dx, dy := d.Offset()
	return p.Shifted(dx, dy)
}

// RatedDirections returns all four directions ordered by how close a single
// step from p brings the walker to goal, best first. The ordering is
// deterministic: ties keep a fixed left-up-right-down precedence.
func RatedDirections(p, goal Position) [4]Direction {
	dirs := [4]Direction{DirLeft, DirUp, DirRight, DirDown}
	sort.SliceStable(dirs[:], func(i, j int) bool {
		return p.Moved(dirs[i]).DistanceSquared(goal) < p.Moved(dirs[j]).DistanceSquared(goal)
	})
	return dirs
}
