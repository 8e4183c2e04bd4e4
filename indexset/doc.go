// Package indexset provides ordered, duplicate-free index sets that map
// labeled elements to dense integer positions, plus the cross-product
// builder that composes them into compound (tuple-keyed) sets.
//
// What:
//
//   - IndexSet wraps a finite element sequence with a bijective
//     element→position map; the construction order is the canonical "flat
//     vector order" for every numeric vector addressed by the set.
//   - Elements are scalar atoms (strings, ints, bools, floats) or
//     fixed-arity tuples of atoms; tuple positions may carry names so
//     callers write "origin" instead of 0.
//   - Cross builds the Cartesian product of two or more sets in nested
//     lexicographic order (first operand varies slowest). A compound
//     operand contributes its whole tuple as one component of the product
//     element; operand tuples are never flattened.
//
// Why:
//
//   - Optimization models address shipments[origin, dest, period] by
//     label; the solver sees a flat vector. IndexSet is the bridge.
//   - Deterministic ordering makes group indices and solver columns
//     reproducible across runs.
//
// Complexity:
//
//   - Construction: O(n·arity). Position/Contains: O(arity).
//   - Cross: O(|A|·|B|·…·arity) to enumerate the product.
//
// Errors:
//
//   - ErrEmptySet: construction from zero elements.
//   - ErrDuplicateElement: the same element appears twice at construction.
//   - ErrArity: tuple arity mismatch, names/arity mismatch, or Cross with
//     fewer than two operands.
//   - ErrUnsupportedAtom: an atom is not an encodable comparable kind.
//   - ErrKeyNotFound: Position called with an element not in the set.
//   - ErrUnknownPosition: ResolvePos cannot map a name or offset.
//   - ErrNotCompound: a tuple-only operation hit a scalar set.
//   - ErrOutOfRange: At called with a position outside [0, Size).
//
// IndexSets are immutable after construction and safe for concurrent
// readers without synchronization.
package indexset
