package gen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tunnelgen/internal/rng"
	"github.com/samdwyer/tunnelgen/internal/telemetry"
	"github.com/samdwyer/tunnelgen/internal/world"
)

// ErrGenerationExhausted is returned when the attempt budget runs out
// before any candidate map is accepted. It signals that the config/seed
// combination cannot produce a valid map and is the only failure a session
// surfaces to callers.
var ErrGenerationExhausted = errors.New("gen: generation attempts exhausted")

// rejectionError carries a validation rejection through the retry loop.
type rejectionError struct {
	reason RejectReason
}

func (e *rejectionError) Error() string {
	return "gen: candidate rejected: " + e.reason.String()
}

// Session drives repeated generation attempts for one seed and config:
// carve with the walker, compute the distance field, validate, and either
// accept or retry with a fresh sub-seed.
type Session struct {
	cfg       Config
	root      *rng.Stream
	validator *Validator
}

// NewSession creates a session. The config is validated once here and is
// immutable afterwards.
func NewSession(cfg Config, seed uint64) (*Session, error) {
	if len(cfg.Waypoints) == 0 && cfg.Width > 0 && cfg.Height > 0 {
		cfg.Waypoints = Default(cfg.Width, cfg.Height).Waypoints
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:  cfg,
		root: rng.New(seed),
	}
	s.validator = NewValidator(&s.cfg)
	return s, nil
}

// Config returns the session's validated config.
func (s *Session) Config() Config {
	return s.cfg
}

// Run generates a map, retrying rejected candidates with fresh sub-seeds
// until one is accepted or the attempt budget is exhausted. On exhaustion
// it returns a metadata-only Result alongside ErrGenerationExhausted.
func (s *Session) Run(ctx context.Context) (*Result, error) {
	tracer := telemetry.Tracer("gen")
	ctx, span := tracer.Start(ctx, "session.run")
	defer span.End()

	startTime := time.Now()
	attempts := 0
	lastReject := RejectNone

	operation := func() (*Result, error) {
		attempts++
		res, reason, err := s.attempt(ctx, s.root.SubSeed())
		if err != nil {
			if errors.Is(err, ErrWalkerStuck) {
				return nil, err
			}
			return nil, backoff.Permanent(err)
		}
		if reason != RejectNone {
			lastReject = reason
			return nil, &rejectionError{reason: reason}
		}
		return res, nil
	}

	res, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewConstantBackOff(0)),
		backoff.WithMaxTries(uint(s.cfg.MaxAttempts)),
	)

	span.SetAttributes(
		attribute.Int("gen.attempts", attempts),
		attribute.Int("map.width", s.cfg.Width),
		attribute.Int("map.height", s.cfg.Height),
		attribute.Int64("gen.duration_ms", time.Since(startTime).Milliseconds()),
	)

	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		// Only attempts that ended in a rejection or a stuck walker count
		// as exhaustion; anything else is a defect and surfaces as itself.
		var rejected *rejectionError
		if !errors.As(err, &rejected) && !errors.Is(err, ErrWalkerStuck) {
			return nil, err
		}

		span.SetAttributes(attribute.String("gen.outcome", OutcomeExhausted.String()))
		return &Result{
				Seed:     s.root.Seed(),
				Attempts: attempts,
				Outcome:  OutcomeExhausted,
				Reject:   lastReject,
			}, fmt.Errorf("%w: %d attempts, last rejection %q",
				ErrGenerationExhausted, attempts, lastReject)
	}

	res.Seed = s.root.Seed()
	res.Attempts = attempts
	res.Outcome = OutcomeAccepted
	res.ID = resultID(s.root.Seed(), &s.cfg)

	span.SetAttributes(
		attribute.String("gen.outcome", OutcomeAccepted.String()),
		attribute.Int("gen.path_length", len(res.Path)),
	)
	return res, nil
}

// attempt runs one full walker pass plus validation. It returns the raw
// result on acceptance, a rejection reason for expected failures, or an
// error when the walker got stuck.
func (s *Session) attempt(ctx context.Context, seed uint64) (*Result, RejectReason, error) {
	tracer := telemetry.Tracer("gen")
	_, span := tracer.Start(ctx, "session.attempt")
	defer span.End()

	rnd := rng.New(seed)
	grid := world.NewGrid(s.cfg.Width, s.cfg.Height, world.TileSolid)

	walker := NewWalker(&s.cfg)
	for walker.State() == WalkerWalking {
		if err := walker.Step(grid, rnd); err != nil {
			span.SetAttributes(attribute.String("gen.attempt_outcome", "stuck"))
			return nil, RejectNone, err
		}
	}

	start := walker.Path()[0]
	finish := walker.Pos()
	if start == finish {
		// Degenerate loop back onto the spawn; cannot host distinct
		// start/finish tiles.
		span.SetAttributes(attribute.String("gen.attempt_outcome", RejectConnectivity.String()))
		return nil, RejectConnectivity, nil
	}

	carveRoom(grid, start, s.cfg.StartRoomSize)
	carveRoom(grid, finish, s.cfg.FinishRoomSize)
	grid.Set(start, world.TileStart)
	grid.Set(finish, world.TileFinish)

	df := world.ComputeDistanceField(grid)

	if reason := s.validator.Check(grid, df, walker.Path(), start, finish); reason != RejectNone {
		span.SetAttributes(attribute.String("gen.attempt_outcome", reason.String()))
		return nil, reason, nil
	}

	layers := s.validator.DeriveLayers(grid, df)

	composite := grid.Clone()
	for _, p := range layers.Hazard.Positions() {
		composite.Set(p, world.TileHazard)
	}
	for _, p := range layers.Platform.Positions() {
		composite.Set(p, world.TilePlatform)
	}

	span.SetAttributes(
		attribute.String("gen.attempt_outcome", OutcomeAccepted.String()),
		attribute.Int("gen.hazard_cells", layers.Hazard.Count()),
		attribute.Int("gen.platform_cells", layers.Platform.Count()),
	)

	return &Result{
		AttemptSeed: seed,
		Grid:        composite,
		Hazard:      layers.Hazard,
		Platform:    layers.Platform,
		Path:        walker.Path(),
		Start:       start,
		Finish:      finish,
	}, RejectNone, nil
}

// carveRoom empties a square of the given half-extent around the center and
// places a landing platform near its floor. Rooms overlap the path
// endpoints, so the start/finish tiles always sit in engineered space.
func carveRoom(g *world.Grid, center world.Position, size int) {
	g.SetArea(center.Shifted(-size, -size), center.Shifted(size, size), world.TileEmpty)

	reach := max(size-3, 1)
	floor := center.Y + size - 1
	g.SetArea(world.Position{X: center.X - reach, Y: floor},
		world.Position{X: center.X + reach, Y: floor}, world.TilePlatform)
}
