// Package candidates enumerates every possible wire between junction boxes and
// hands them out in ascending order of length.
//
// What:
//
//	For n points there are n·(n−1)/2 unordered pairs {I, J}, I < J, each
//	carrying its precomputed Euclidean distance. A Source yields them shortest
//	first, exactly once each.
//
// Two sources are provided:
//
//   - Sorted — eager: materialise all pairs, then sort.SliceStable by distance.
//     Predictable O(E log E) up front, O(1) per Next.
//   - Queue  — lazy: container/heap over the same pairs. O(E) heapify, then
//     O(log E) per Next; cheaper when the consumer stops early.
//
// Determinism:
//
//	Pairs are generated in lexicographic (I, J) order. Equal distances keep that
//	generation order (stable sort; the heap compares (Dist, I, J)), so both
//	sources yield the identical sequence for the same input slice.
//
// Errors:
//
//   - ErrIncomparable: a pair distance is NaN or infinite (non-finite input), so
//     no total order exists. Reported before any edge is handed out.
//
// Complexity:
//
//   - Generate: O(n²) time and memory.
//   - Sort:     O(n² log n).
//   - NewQueue: O(n²), Next O(log n).
package candidates
