// Package circuit wires junction boxes together, shortest wire first, until
// every box sits in one circuit, and reports two checkpoints along the way.
// This is Kruskal's algorithm over the complete graph of a 3-D point set.
//
// What & Why
//
//   - A Construction owns the ordered candidate source (package candidates),
//     the component tracker (package disjointset) and the wire counter. Each
//     Step pops the globally shortest unexamined pair; if both boxes already
//     share a circuit the pair is discarded, otherwise the circuits merge.
//
//   - Threshold checkpoint: when the wire counter reaches K, the sizes of all
//     circuits are sorted descending and the three largest multiplied.
//
//   - Final checkpoint: the merge that leaves exactly one circuit is recorded
//     together with the product of its endpoints' X coordinates.
//
// State machine
//
//	Running ──Step()──▶ Running ──…──▶ Complete
//	   └──────────── error ────────────▶ Failed
//
//	Complete is entered when one circuit remains (immediately for a single
//	box) and is terminal: consumed edges are never revisited. Failed is
//	entered on the first error and is terminal too; Step and Run keep
//	returning that error.
//
// Counting policy
//
//   - CountMerges (default): only pairs that merge two circuits are wires.
//   - CountAttempts: every examined pair is a wire, cycles included. This is
//     how the puzzle statement counts its "connections".
//
// Error Conditions
//
//   - ErrEmptyInput       : no points.
//   - ErrThreshold        : K can never see three circuits (detected up front).
//   - ErrTooFewComponents : fewer than three circuits when the counter hit K.
//   - ErrExhausted        : candidates ran out with more than one circuit left.
//   - ErrCheckpointMissed : construction finished before the counter reached K.
//   - ErrFinished         : Step called on a Complete construction.
//   - candidates.ErrIncomparable, disjointset.ErrUnknownElement are passed through.
//
// Every error is fatal to the run; there is no partial result.
//
// Complexity: O(n² log n) time and O(n²) memory, dominated by candidate ordering.
package circuit
