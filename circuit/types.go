package circuit

import (
	"errors"

	"github.com/katalvlaran/junctionbox/candidates"
	"github.com/katalvlaran/junctionbox/geom"
)

// Sentinel errors for construction.
var (
	// ErrEmptyInput indicates an empty point set.
	ErrEmptyInput = errors.New("circuit: no junction boxes")

	// ErrThreshold indicates a threshold that can never observe three circuits.
	ErrThreshold = errors.New("circuit: threshold unreachable for point count")

	// ErrTooFewComponents indicates fewer than three circuits at the threshold checkpoint.
	ErrTooFewComponents = errors.New("circuit: fewer than 3 circuits at threshold")

	// ErrExhausted indicates the candidate source ran dry before one circuit remained.
	ErrExhausted = errors.New("circuit: candidates exhausted before completion")

	// ErrCheckpointMissed indicates completion before the wire counter reached the threshold.
	ErrCheckpointMissed = errors.New("circuit: completed before reaching threshold")

	// ErrFinished indicates Step on a completed construction.
	ErrFinished = errors.New("circuit: construction already complete")
)

// State of a Construction.
type State int

const (
	// Running means more than one circuit remains.
	Running State = iota
	// Complete means exactly one circuit remains. Terminal.
	Complete
	// Failed means a step or the final check returned an error. Terminal.
	Failed
)

// String returns "running", "complete" or "failed".
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Complete:
		return "complete"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Step describes one examined candidate.
type Step struct {
	Edge       candidates.Edge
	Merged     bool // false when the pair was already in one circuit
	Wires      int  // wire counter after this step
	Examined   int  // candidates consumed so far, this one included
	Components int  // circuits remaining after this step
}

// ThresholdCheckpoint is captured once, when the wire counter reaches K.
type ThresholdCheckpoint struct {
	Wires      int
	Components int
	// Sizes holds the three largest circuit sizes, largest first.
	Sizes   [3]int
	Product int
}

// FinalCheckpoint is the merge that left a single circuit.
type FinalCheckpoint struct {
	Edge candidates.Edge
	A, B geom.Point
	// XProduct is A.X*B.X truncated toward zero and clamped to the int64
	// range; exact while |A.X*B.X| < 2⁵³.
	XProduct int64
}

// Result is the terminal snapshot of a construction.
type Result struct {
	Points []geom.Point
	State  State

	// Tree lists the merging edges in the order they were selected.
	Tree   []candidates.Edge
	Length float64

	Wires      int
	Merges     int
	Examined   int
	Components int

	Threshold *ThresholdCheckpoint // nil when the threshold is disabled
	Final     *FinalCheckpoint     // nil for a single box
}
