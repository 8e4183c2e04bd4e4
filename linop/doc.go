// Package linop synthesizes the linear and boolean operators of the index
// algebra: group-by aggregation matrices, gating masks, and broadcast
// lookups over flat numeric vectors addressed by indexset.IndexSet.
//
// What:
//
//   - Sparse: a compressed-sparse-row matrix with MulVec, the carrier of
//     every aggregation operator this package builds.
//   - GroupBy: partitions a compound index by its retained positions and
//     returns a (groups × elements) 0/1 matrix whose application computes
//     per-group sums. Groups are numbered in first-occurrence order of
//     their sub-key — an explicit invariant, never hash order.
//   - Mask: builds a length-N gating vector from exactly one of an
//     explicit float array, a predicate over elements, or named-position
//     filters (filters AND across positions).
//   - Expand: the structural inverse of aggregation — copies a
//     lower-dimensional value across a higher-dimensional index by strict
//     sub-key lookup (every target key must exist in the source).
//
// Why:
//
//   - "supply per warehouse = sum of shipments leaving it" is one GroupBy;
//     "close route (W1,C2)" is one Mask; "every route inherits its
//     warehouse's cost" is one Expand. No raw offsets anywhere.
//
// Complexity:
//
//   - GroupBy: O(N·k) build (k = retained positions), O(NNZ) apply.
//   - Mask: O(N) for arrays/predicates, O(N·F) for F filters.
//   - Expand: O(T·k) for T target elements.
//
// Errors:
//
//   - ErrShapeMismatch: vector length disagrees with operator or index.
//   - ErrNoPositions: GroupBy/Expand called without positions.
//   - ErrAmbiguousCond / ErrMissingCond / ErrMissingIndex: malformed Mask.
//   - ErrNilIndex: a required IndexSet argument is nil.
//   - ErrOutOfRange: Sparse.At outside the matrix shape.
//   - indexset.ErrNotCompound, indexset.ErrUnknownPosition,
//     indexset.ErrKeyNotFound propagate from position resolution/lookup.
//
// All operators are pure functions over immutable inputs; outputs are
// freshly allocated on every call.
package linop
