package world

// Mask is a boolean layer aligned to a grid, used for derived annotations
// such as the hazard border and platform placement.
type Mask struct {
	Width  int
	Height int
	bits   []bool
}

// NewMask creates an empty mask with the given dimensions.
func NewMask(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		bits:   make([]bool, width*height),
	}
}

// Mark sets the bit at the position. Out-of-bounds positions are ignored.
func (m *Mask) Mark(p Position) {
	if p.X < 0 || p.X >= m.Width || p.Y < 0 || p.Y >= m.Height {
		return
	}
	m.bits[p.Y*m.Width+p.X] = true
}

// Clear unsets the bit at the position. Out-of-bounds positions are ignored.
func (m *Mask) Clear(p Position) {
	if p.X < 0 || p.X >= m.Width || p.Y < 0 || p.Y >= m.Height {
		return
	}
	m.bits[p.Y*m.Width+p.X] = false
}

// At reports whether the bit at the position is set.
func (m *Mask) At(p Position) bool {
	if p.X < 0 || p.X >= m.Width || p.Y < 0 || p.Y >= m.Height {
		return false
	}
	return m.bits[p.Y*m.Width+p.X]
}

// Count returns the number of set bits.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Positions returns all set positions in row-major order.
func (m *Mask) Positions() []Position {
	out := make([]Position, 0, 64)
	for i, b := range m.bits {
		if b {
			out = append(out, Position{X: i % m.Width, Y: i / m.Width})
		}
	}
	return out
}
