// Package gen implements the map generation pipeline: a stochastic walker
// carves a tunnel through a solid grid, a validator enforces structural
// invariants, and a session retries until a candidate map is accepted.
package gen

import (
	"errors"
	"fmt"

	"github.com/samdwyer/tunnelgen/internal/world"
)

// ErrInvalidConfig indicates a configuration that cannot produce a map.
var ErrInvalidConfig = errors.New("gen: invalid config")

// Config holds all named generation parameters. A Config is immutable for
// the duration of a session; the walker and validator only read it.
type Config struct {
	// Width and Height are the grid dimensions in tiles.
	Width  int
	Height int

	// Waypoints shape the overall course of the tunnel. The walker starts
	// at the first waypoint and is biased toward the current goal. Left
	// empty, NewSession fills in a three-lane serpentine across the map.
	Waypoints []world.Position

	// WaypointRadius is the distance at which a waypoint counts as reached.
	WaypointRadius int

	// TargetPathLength finishes the walk once the path has this many steps,
	// whether or not the final waypoint was reached.
	TargetPathLength int

	// DirectionWeights select among the four directions ordered from best
	// to worst by distance to the current goal. Front-loaded weights keep
	// the tunnel on course; flatter weights produce more wander.
	DirectionWeights [4]float64

	// MomentumProb is the probability of repeating the previous direction
	// instead of the weighted draw, which straightens the tunnel.
	MomentumProb float64

	// MaxRedraws bounds how often a step may redraw an invalid direction
	// before the walker reports itself stuck.
	MaxRedraws int

	// Kernel radius and squareness evolve as a bounded random walk: each
	// step perturbs them by at most the configured step size and clamps
	// them into the configured bounds, so tunnel width changes gradually.
	KernelRadiusMin     float64
	KernelRadiusMax     float64
	KernelRadiusStep    float64
	KernelSquarenessMin float64
	KernelSquarenessMax float64
	KernelSquarenessStep float64

	// FadeSteps is the number of initial steps during which the kernel
	// radius fades deterministically from max to min, widening the area
	// around the start before the random walk takes over.
	FadeSteps int

	// StartRoomSize and FinishRoomSize are the half-extents of the rooms
	// carved around the path endpoints.
	StartRoomSize  int
	FinishRoomSize int

	// MinClearance and MaxClearance bound the distance-field value allowed
	// on path cells. Too narrow is unplayable, too wide looks degenerate.
	MinClearance int
	MaxClearance int

	// MaxEnclosedIsland is the largest fully-enclosed solid island allowed
	// before a candidate is rejected.
	MaxEnclosedIsland int

	// MinHazardBlob is the smallest connected hazard patch kept in the
	// derived hazard layer. Smaller patches read as visual noise and are
	// dropped. Values below 2 disable the filter.
	MinHazardBlob int

	// PlatformClearance is the distance-field value above which a cell
	// counts as wide open and becomes a platform candidate.
	PlatformClearance int

	// PlatformStride is the grid interval at which platform candidates are
	// sampled, so platforms break up open areas at a regular rhythm.
	PlatformStride int

	// MaxAttempts is the attempt budget before a session fails with
	// ErrGenerationExhausted.
	MaxAttempts int
}

// Default returns the tunable defaults for a map of the given size. The
// waypoints trace a serpentine with three horizontal lanes.
func Default(width, height int) Config {
	return Config{
		Width:  width,
		Height: height,
		Waypoints: []world.Position{
			{X: width / 6, Y: height * 5 / 6},
			{X: width * 5 / 6, Y: height * 5 / 6},
			{X: width * 5 / 6, Y: height / 2},
			{X: width / 6, Y: height / 2},
			{X: width / 6, Y: height / 6},
			{X: width * 5 / 6, Y: height / 6},
		},
		WaypointRadius:       5,
		TargetPathLength:     4 * (width + height),
		DirectionWeights:     [4]float64{0.4, 0.22, 0.2, 0.18},
		MomentumProb:         0.01,
		MaxRedraws:           16,
		KernelRadiusMin:      1.5,
		KernelRadiusMax:      3.5,
		KernelRadiusStep:     0.5,
		KernelSquarenessMin:  0.4,
		KernelSquarenessMax:  1.0,
		KernelSquarenessStep: 0.15,
		FadeSteps:            48,
		StartRoomSize:        5,
		FinishRoomSize:       4,
		MinClearance:         2,
		MaxClearance:         12,
		MaxEnclosedIsland:    24,
		MinHazardBlob:        8,
		PlatformClearance:    6,
		PlatformStride:       8,
		MaxAttempts:          50,
	}
}

// Validate returns ErrInvalidConfig (wrapped with detail) if the parameters
// are inconsistent or cannot produce a map.
func (c *Config) Validate() error {
	switch {
	case c.Width < 16 || c.Height < 16:
		return fmt.Errorf("%w: grid must be at least 16x16, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case len(c.Waypoints) == 0:
		return fmt.Errorf("%w: at least one waypoint required", ErrInvalidConfig)
	case c.TargetPathLength < 2:
		return fmt.Errorf("%w: target path length must be at least 2", ErrInvalidConfig)
	case c.KernelRadiusMin <= 0 || c.KernelRadiusMax < c.KernelRadiusMin:
		return fmt.Errorf("%w: kernel radius bounds [%g, %g]", ErrInvalidConfig, c.KernelRadiusMin, c.KernelRadiusMax)
	case c.KernelSquarenessMin < 0 || c.KernelSquarenessMax > 1 || c.KernelSquarenessMax < c.KernelSquarenessMin:
		return fmt.Errorf("%w: kernel squareness bounds [%g, %g]", ErrInvalidConfig, c.KernelSquarenessMin, c.KernelSquarenessMax)
	case c.MinClearance < 1 || c.MaxClearance < c.MinClearance:
		return fmt.Errorf("%w: clearance bounds [%d, %d]", ErrInvalidConfig, c.MinClearance, c.MaxClearance)
	case c.MaxRedraws < 1:
		return fmt.Errorf("%w: max redraws must be positive", ErrInvalidConfig)
	case c.MinHazardBlob < 0:
		return fmt.Errorf("%w: min hazard blob must be non-negative", ErrInvalidConfig)
	case c.PlatformStride < 1:
		return fmt.Errorf("%w: platform stride must be positive", ErrInvalidConfig)
	case c.MaxAttempts < 1:
		return fmt.Errorf("%w: max attempts must be positive", ErrInvalidConfig)
	}

	for _, wp := range c.Waypoints {
		if wp.X < 0 || wp.X >= c.Width || wp.Y < 0 || wp.Y >= c.Height {
			return fmt.Errorf("%w: waypoint (%d,%d) outside %dx%d grid", ErrInvalidConfig, wp.X, wp.Y, c.Width, c.Height)
		}
	}

	var weightSum float64
	for _, w := range c.DirectionWeights {
		if w < 0 {
			return fmt.Errorf("%w: direction weights must be non-negative", ErrInvalidConfig)
		}
		weightSum += w
	}
	if weightSum <= 0 {
		return fmt.Errorf("%w: direction weights must have a positive sum", ErrInvalidConfig)
	}

	return nil
}
