package gen

import (
	"errors"

	"github.com/samdwyer/tunnelgen/internal/rng"
	"github.com/samdwyer/tunnelgen/internal/world"
)

// ErrWalkerStuck indicates the walker found no valid direction within the
// redraw budget. The session treats this as a rejected attempt, never as a
// fatal error.
var ErrWalkerStuck = errors.New("gen: walker stuck, no valid direction")

// WalkerState describes where the walker is in its lifecycle.
type WalkerState uint8

const (
	// WalkerWalking means the walker can take further steps.
	WalkerWalking WalkerState = iota
	// WalkerFinished means the path reached its target length or the last
	// waypoint was reached.
	WalkerFinished
	// WalkerStuck means no valid direction was found within the redraw
	// budget.
	WalkerStuck
)

// String returns a human-readable state name.
func (s WalkerState) String() string {
	switch s {
	case WalkerWalking:
		return "walking"
	case WalkerFinished:
		return "finished"
	default:
		return "stuck"
	}
}

// Walker advances a path one cell at a time, carving the grid with a
// slowly mutating kernel. Directions are drawn from a weighted distribution
// over goal-rated candidates, so the tunnel meanders toward the current
// waypoint instead of running straight at it.
type Walker struct {
	cfg *Config

	pos     world.Position
	path    []world.Position
	state   WalkerState
	lastDir world.Direction
	hasLast bool
	goalIdx int

	radius     float64
	squareness float64
}

// NewWalker creates a walker positioned at the first waypoint.
func NewWalker(cfg *Config) *Walker {
	start := cfg.Waypoints[0]
	return &Walker{
		cfg:        cfg,
		pos:        start,
		path:       []world.Position{start},
		state:      WalkerWalking,
		radius:     cfg.KernelRadiusMax,
		squareness: cfg.KernelSquarenessMax,
	}
}

// State returns the walker's current lifecycle state.
func (w *Walker) State() WalkerState {
	return w.state
}

// Pos returns the walker's current position.
func (w *Walker) Pos() world.Position {
	return w.pos
}

// Path returns the positions visited so far, in order. Consecutive entries
// always differ by exactly one unit step.
func (w *Walker) Path() []world.Position {
	return w.path
}

// Step advances the walker by one cell: the kernel parameters are perturbed,
// a direction is drawn, the position advances, and the kernel carves empty
// space into the grid. Returns ErrWalkerStuck once no valid direction can be
// found; any other error is a config defect.
func (w *Walker) Step(g *world.Grid, rnd *rng.Stream) error {
	if w.state != WalkerWalking {
		return nil
	}

	goal, done := w.currentGoal()
	if done {
		w.state = WalkerFinished
		return nil
	}

	w.mutateKernel(rnd)

	dir, err := w.chooseDirection(g, goal, rnd)
	if err != nil {
		return err
	}

	w.pos = w.pos.Moved(dir)
	w.lastDir = dir
	w.hasLast = true

	g.ApplyKernel(w.pos, world.NewKernel(w.radius, w.squareness), world.TileEmpty)

	w.path = append(w.path, w.pos)
	if len(w.path) >= w.cfg.TargetPathLength {
		w.state = WalkerFinished
	}

	return nil
}

// currentGoal advances through reached waypoints and returns the active
// goal, or done=true once the final waypoint has been reached.
func (w *Walker) currentGoal() (world.Position, bool) {
	r2 := w.cfg.WaypointRadius * w.cfg.WaypointRadius
	for w.pos.DistanceSquared(w.cfg.Waypoints[w.goalIdx]) <= r2 {
		if w.goalIdx+1 >= len(w.cfg.Waypoints) {
			return world.Position{}, true
		}
		w.goalIdx++
	}
	return w.cfg.Waypoints[w.goalIdx], false
}

// mutateKernel evolves radius and squareness. During the fade window the
// radius shrinks deterministically from max to min; afterwards both
// parameters follow a bounded random walk clamped to the config bounds.
func (w *Walker) mutateKernel(rnd *rng.Stream) {
	steps := len(w.path) - 1
	if steps < w.cfg.FadeSteps {
		t := float64(steps) / float64(w.cfg.FadeSteps)
		w.radius = w.cfg.KernelRadiusMax + (w.cfg.KernelRadiusMin-w.cfg.KernelRadiusMax)*t
		w.squareness = w.cfg.KernelSquarenessMax
		return
	}

	w.radius = min(max(w.radius+rnd.Delta(w.cfg.KernelRadiusStep),
		w.cfg.KernelRadiusMin), w.cfg.KernelRadiusMax)
	w.squareness = min(max(w.squareness+rnd.Delta(w.cfg.KernelSquarenessStep),
		w.cfg.KernelSquarenessMin), w.cfg.KernelSquarenessMax)
}

// chooseDirection draws a direction from the goal-rated candidates. A draw
// is rejected and retried if it would leave the grid or step back onto the
// immediately preceding cell; after MaxRedraws the walker is stuck.
func (w *Walker) chooseDirection(g *world.Grid, goal world.Position, rnd *rng.Stream) (world.Direction, error) {
	rated := world.RatedDirections(w.pos, goal)

	idx, err := rnd.WeightedIndex(w.cfg.DirectionWeights[:])
	if err != nil {
		return 0, err
	}
	dir := rated[idx]

	if w.hasLast && rnd.WithProbability(w.cfg.MomentumProb) {
		dir = w.lastDir
	}

	for redraw := 0; redraw < w.cfg.MaxRedraws; redraw++ {
		if w.stepValid(g, dir) {
			return dir, nil
		}
		idx, err = rnd.WeightedIndex(w.cfg.DirectionWeights[:])
		if err != nil {
			return 0, err
		}
		dir = rated[idx]
	}

	w.state = WalkerStuck
	return 0, ErrWalkerStuck
}

// stepValid rejects moves that leave the grid or oscillate back onto the
// previous cell.
func (w *Walker) stepValid(g *world.Grid, dir world.Direction) bool {
	if !g.Contains(w.pos.Moved(dir)) {
		return false
	}
	if w.hasLast && dir == w.lastDir.Opposite() {
		return false
	}
	return true
}
