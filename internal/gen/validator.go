package gen

import (
	"github.com/samdwyer/tunnelgen/internal/world"
)

// RejectReason enumerates why a candidate map was rejected. Rejections are
// expected, recoverable per-attempt conditions, not errors.
type RejectReason uint8

const (
	// RejectNone means the candidate passed all checks.
	RejectNone RejectReason = iota
	// RejectConnectivity means the finish is not reachable from the start.
	RejectConnectivity
	// RejectClearance means a path cell is too close to or too far from
	// the nearest wall.
	RejectClearance
	// RejectEnclosure means a fully enclosed solid island exceeds the
	// configured size threshold.
	RejectEnclosure
)

// String returns a human-readable rejection name.
func (r RejectReason) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectConnectivity:
		return "connectivity"
	case RejectClearance:
		return "clearance"
	default:
		return "enclosure"
	}
}

// Layers holds the annotations derived from an accepted candidate. They
// never overlap the carved solid/empty structure; they only mark empty
// cells.
type Layers struct {
	// Hazard marks every empty cell bordering solid terrain: the one-cell
	// freeze border lining the tunnel walls.
	Hazard *world.Mask
	// Platform marks ledges placed at a regular stride inside wide-open
	// areas.
	Platform *world.Mask
}

// Validator checks structural invariants of a carved grid and derives the
// hazard and platform layers. It never mutates the grid it inspects.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the given config.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// Check runs the structural checks in order, short-circuiting on the first
// failure: start-to-finish connectivity, path clearance bounds, and
// enclosed solid islands.
func (v *Validator) Check(g *world.Grid, df *world.DistanceField, path []world.Position, start, finish world.Position) RejectReason {
	if !v.connected(g, start, finish) {
		return RejectConnectivity
	}
	if !v.clearanceOK(g, df, path, start, finish) {
		return RejectClearance
	}
	if !v.enclosureOK(g) {
		return RejectEnclosure
	}
	return RejectNone
}

// connected reports whether finish is reachable from start through
// traversable tiles, via a 4-connected flood fill.
func (v *Validator) connected(g *world.Grid, start, finish world.Position) bool {
	if !g.At(start).IsTraversable() || !g.At(finish).IsTraversable() {
		return false
	}

	visited := world.NewMask(g.Width, g.Height)
	visited.Mark(start)
	queue := []world.Position{start}

	for head := 0; head < len(queue); head++ {
		p := queue[head]
		if p == finish {
			return true
		}
		for dir := world.DirUp; dir <= world.DirLeft; dir++ {
			n := p.Moved(dir)
			if !g.Contains(n) || visited.At(n) || !g.At(n).IsTraversable() {
				continue
			}
			visited.Mark(n)
			queue = append(queue, n)
		}
	}
	return false
}

// clearanceOK verifies every carved path cell keeps a wall distance within
// the configured bounds. Cells inside the start/finish rooms and cells
// overwritten by room fixtures are engineered geometry and exempt.
func (v *Validator) clearanceOK(g *world.Grid, df *world.DistanceField, path []world.Position, start, finish world.Position) bool {
	for _, p := range path {
		if g.At(p) != world.TileEmpty {
			continue
		}
		if chebyshev(p, start) <= v.cfg.StartRoomSize+1 || chebyshev(p, finish) <= v.cfg.FinishRoomSize+1 {
			continue
		}
		d := df.At(p)
		if d < v.cfg.MinClearance || d > v.cfg.MaxClearance {
			return false
		}
	}
	return true
}

func chebyshev(a, b world.Position) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// enclosureOK rejects grids containing a fully enclosed solid island larger
// than the configured threshold. Islands touching the map border are part
// of the outer terrain and always allowed.
func (v *Validator) enclosureOK(g *world.Grid) bool {
	visited := world.NewMask(g.Width, g.Height)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			seed := world.Position{X: x, Y: y}
			if visited.At(seed) || !g.At(seed).IsSolid() {
				continue
			}

			size := 0
			touchesBorder := false
			visited.Mark(seed)
			queue := []world.Position{seed}

			for head := 0; head < len(queue); head++ {
				p := queue[head]
				size++
				if p.X == 0 || p.X == g.Width-1 || p.Y == 0 || p.Y == g.Height-1 {
					touchesBorder = true
				}
				for dir := world.DirUp; dir <= world.DirLeft; dir++ {
					n := p.Moved(dir)
					if !g.Contains(n) || visited.At(n) || !g.At(n).IsSolid() {
						continue
					}
					visited.Mark(n)
					queue = append(queue, n)
				}
			}

			if !touchesBorder && size > v.cfg.MaxEnclosedIsland {
				return false
			}
		}
	}
	return true
}

// DeriveLayers computes the hazard border and the platform placement for an
// accepted candidate.
func (v *Validator) DeriveLayers(g *world.Grid, df *world.DistanceField) Layers {
	layers := Layers{
		Hazard:   world.NewMask(g.Width, g.Height),
		Platform: world.NewMask(g.Width, g.Height),
	}

	// Hazard border: any empty cell with a solid 8-neighbor. The implicit
	// solid frame outside the grid counts, so the map edge is lined as well.
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := world.Position{X: x, Y: y}
			if g.At(p) == world.TileEmpty && v.bordersSolid(g, p) {
				layers.Hazard.Mark(p)
			}
		}
	}
	v.removeSmallHazardBlobs(layers.Hazard)

	// Platforms: sample wide-open cells at the configured stride and stamp a
	// three-cell ledge. Runs after the hazard layer is final so ledges never
	// land on hazard cells; the two masks stay disjoint.
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := world.Position{X: x, Y: y}
			if g.At(p) != world.TileEmpty || layers.Hazard.At(p) {
				continue
			}
			if x%v.cfg.PlatformStride == 0 && y%v.cfg.PlatformStride == 0 &&
				df.At(p) >= v.cfg.PlatformClearance {
				for dx := -1; dx <= 1; dx++ {
					q := p.Shifted(dx, 0)
					if g.At(q) == world.TileEmpty && !layers.Hazard.At(q) {
						layers.Platform.Mark(q)
					}
				}
			}
		}
	}

	return layers
}

// removeSmallHazardBlobs drops 8-connected hazard patches smaller than
// MinHazardBlob. A hazard cell or two in isolation reads as noise rather
// than a freeze border worth respecting.
func (v *Validator) removeSmallHazardBlobs(hazard *world.Mask) {
	if v.cfg.MinHazardBlob < 2 {
		return
	}

	visited := world.NewMask(hazard.Width, hazard.Height)
	for _, seed := range hazard.Positions() {
		if visited.At(seed) {
			continue
		}

		visited.Mark(seed)
		blob := []world.Position{seed}
		for head := 0; head < len(blob); head++ {
			p := blob[head]
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					n := p.Shifted(dx, dy)
					if !hazard.At(n) || visited.At(n) {
						continue
					}
					visited.Mark(n)
					blob = append(blob, n)
				}
			}
		}

		if len(blob) < v.cfg.MinHazardBlob {
			for _, p := range blob {
				hazard.Clear(p)
			}
		}
	}
}

func (v *Validator) bordersSolid(g *world.Grid, p world.Position) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.At(p.Shifted(dx, dy)).IsSolid() {
				return true
			}
		}
	}
	return false
}
