// Package expr pins the boundary between the index algebra and an
// external optimization/expression engine, and ships a self-contained
// reference engine so the algebra is exercisable end to end without a
// solver.
//
// What:
//
//   - Expr: the minimal contract the algebra needs from an engine-owned
//     vector — a fixed length and an optional numeric snapshot.
//   - Engine: constructs length-N placeholders (Variable = unknown vector,
//     Parameter = constant vector) and structures two compositions: a
//     sparse matrix–vector product (aggregation) and an elementwise
//     product (masking). Engines never get asked to solve anything here.
//   - Dense: the reference Engine. Variables hold no values until
//     DenseVar.SetValues (the "solver populates a snapshot" moment);
//     composed expressions materialize lazily once their inputs are known.
//
// Why:
//
//   - Keeping the algebra solver-agnostic: GroupBy/Mask/Expand produce
//     plain matrices and vectors; any engine that satisfies Engine can
//     carry them into a real optimization model.
//   - Composition instead of inheritance: indexed values wrap an Expr and
//     delegate arithmetic to the engine rather than subclassing its types.
//
// Errors:
//
//   - ErrBadLength: a placeholder with non-positive length.
//   - ErrShapeMismatch: composition operands disagree on length.
//   - ErrNoValues: a numeric snapshot requested before one exists.
//   - ErrNilExpr: a nil expression operand.
//
// The Dense engine performs O(NNZ) / O(N) work per materialization and is
// deterministic; it holds no global state.
package expr
