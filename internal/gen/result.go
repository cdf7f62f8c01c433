package gen

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/tunnelgen/internal/world"
)

// Outcome enumerates how a generation session ended. Callers branch on the
// outcome instead of unwinding through errors.
type Outcome uint8

const (
	// OutcomeAccepted means a candidate passed validation.
	OutcomeAccepted Outcome = iota
	// OutcomeRejected means the most recent candidate failed validation.
	// It only appears on intermediate attempts, never on a final Result.
	OutcomeRejected
	// OutcomeExhausted means the attempt budget ran out before any
	// candidate was accepted.
	OutcomeExhausted
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeRejected:
		return "rejected"
	default:
		return "exhausted"
	}
}

// Result is the finished product of a generation session: the composite
// grid with layer annotations applied, the raw derived masks, and the
// metadata needed to reproduce or report the run.
type Result struct {
	// ID identifies the map. It is derived deterministically from the seed
	// and config, so reruns of the same inputs produce the same ID.
	ID uuid.UUID

	// Seed is the session seed; AttemptSeed is the sub-seed of the attempt
	// that produced the grid.
	Seed        uint64
	AttemptSeed uint64

	// Attempts counts every walker run, accepted or not.
	Attempts int

	// Outcome is OutcomeAccepted or OutcomeExhausted; Reject carries the
	// last rejection reason when exhausted.
	Outcome Outcome
	Reject  RejectReason

	// Grid is the composite map: carved structure plus hazard and platform
	// annotations. Nil when exhausted.
	Grid *world.Grid

	// Hazard and Platform are the derived layers as standalone masks.
	Hazard   *world.Mask
	Platform *world.Mask

	// Path is the walker trace of the accepted attempt.
	Path []world.Position

	// Start and Finish are the unique start/finish tile positions.
	Start  world.Position
	Finish world.Position
}

// resultID derives a stable UUID from the session inputs so that maps can
// be referenced by identity across tools.
func resultID(seed uint64, cfg *Config) uuid.UUID {
	fingerprint := xxhash.Sum64String(fmt.Sprintf("%d|%#v", seed, *cfg))
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], fingerprint)
	return uuid.NewSHA1(uuid.NameSpaceOID, buf[:])
}
