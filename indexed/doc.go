// Package indexed binds engine-owned expressions to the IndexSets that
// address them, so modelers read and write entries by label instead of by
// raw offset.
//
// What:
//
//   - Indexed: an expression plus its IndexSet. Key access (Value) and
//     positional access (At) are separate, explicitly named accessors;
//     everything arithmetic stays with the engine expression (composition
//     over inheritance — an Indexed never pretends to be an engine type).
//   - Variable: an unknown vector placeholder bound to an index.
//   - Parameter: a constant vector built from element→value entries,
//     zero-filled at unmapped positions, with an Expand facade that
//     broadcasts it onto a larger cross-product index.
//   - SumBy / Where methods structure aggregation and masking through the
//     engine and return the result re-bound to the right index (group keys
//     for SumBy, the same index for Where).
//
// Why:
//
//   - "ship.Value("W1","C2")" beats "x[1]" the moment a model has more
//     than one dimension; the binding also guarantees every composition
//     keeps vector order and index order in lockstep.
//
// Errors:
//
//   - ErrNilEngine / ErrNilIndex / ErrNilExpr: missing collaborators.
//   - ErrSizeMismatch: expression length != index size at binding.
//   - expr.ErrNoValues: key/positional reads before a snapshot exists.
//   - indexset.ErrKeyNotFound, indexset.ErrOutOfRange and the linop
//     sentinels propagate unchanged from lookups and operators.
//
// Indexed values are cheap handles; the numeric storage always belongs to
// the engine.
package indexed
