// Package disjointset tracks how junction boxes are grouped into circuits.
//
// Elements are the integers 0..n-1 (indices into the caller's point slice).
// At any time they are partitioned into disjoint, non-empty components; every
// element belongs to exactly one. A component is identified by one of its
// members (its representative), which is what Find returns.
//
// Implementations:
//
//   - Forest — union-find over a parent array with path halving and union by
//     size. Find is O(α(n)) amortised, Merge O(α(n)).
//   - Lists  — an explicit list of member slices. Find is O(n), Merge O(n).
//     Slow, but trivially correct; kept as an interchangeable tracker and as a
//     reference in tests.
//
// Both satisfy Tracker and produce identical partitions for the same merge
// sequence; only representatives may differ.
//
// Errors:
//
//   - ErrUnknownElement: an index outside 0..n-1 was passed in. With a closed
//     point universe this is an internal-consistency fault.
package disjointset
