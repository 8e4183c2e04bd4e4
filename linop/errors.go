package linop

import "errors"

// Sentinel errors for linop operations. Position-resolution and key-lookup
// failures propagate the indexset sentinels (ErrNotCompound,
// ErrUnknownPosition, ErrKeyNotFound) unchanged; match everything with
// errors.Is.
var (
	// ErrShapeMismatch indicates a numeric vector whose length disagrees
	// with the operator shape or the index size.
	ErrShapeMismatch = errors.New("linop: shape mismatch")
	// ErrNoPositions indicates GroupBy or Expand called without any
	// position reference.
	ErrNoPositions = errors.New("linop: at least one position required")
	// ErrNilIndex indicates a required IndexSet argument was nil.
	ErrNilIndex = errors.New("linop: index is nil")
	// ErrAmbiguousCond indicates a Mask condition carrying more than one of
	// Values, Pred, Filters.
	ErrAmbiguousCond = errors.New("linop: ambiguous condition: supply exactly one of values, predicate, filters")
	// ErrMissingCond indicates a Mask condition carrying none of Values,
	// Pred, Filters.
	ErrMissingCond = errors.New("linop: missing condition")
	// ErrMissingIndex indicates a predicate or filter condition without the
	// index it must be evaluated against.
	ErrMissingIndex = errors.New("linop: index required for predicate or filter conditions")
	// ErrOutOfRange indicates a Sparse.At access outside the matrix shape.
	ErrOutOfRange = errors.New("linop: index out of range")
)
