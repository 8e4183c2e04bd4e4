package indexset

import "errors"

// Sentinel errors for indexset operations. All public entry points return
// these (possibly wrapped with call-site context via %w); match them with
// errors.Is. No function in this package panics on user input.
var (
	// ErrEmptySet indicates construction from an empty element sequence.
	ErrEmptySet = errors.New("indexset: set must have at least one element")
	// ErrDuplicateElement indicates the same element appeared twice in the
	// construction sequence; positions must stay bijective.
	ErrDuplicateElement = errors.New("indexset: duplicate element")
	// ErrArity indicates mismatched tuple arities, a names/arity length
	// mismatch, or a cross-product with fewer than two operands.
	ErrArity = errors.New("indexset: arity mismatch")
	// ErrUnsupportedAtom indicates an atom whose kind cannot be encoded
	// (only strings, integers, bools, floats and nested tuples are legal).
	ErrUnsupportedAtom = errors.New("indexset: unsupported atom kind")
	// ErrKeyNotFound indicates an element absent from the set's position map.
	ErrKeyNotFound = errors.New("indexset: element not in set")
	// ErrUnknownPosition indicates a position name or offset that cannot be
	// resolved for the given set.
	ErrUnknownPosition = errors.New("indexset: unknown position")
	// ErrNotCompound indicates a tuple-only operation applied to a scalar set.
	ErrNotCompound = errors.New("indexset: set is not compound")
	// ErrOutOfRange indicates a positional access outside [0, Size).
	ErrOutOfRange = errors.New("indexset: position out of range")
)
