package expr

import "errors"

// Sentinel errors for the engine boundary; match with errors.Is.
var (
	// ErrBadLength indicates a placeholder requested with length <= 0.
	ErrBadLength = errors.New("expr: length must be > 0")
	// ErrShapeMismatch indicates composition operands of incompatible length.
	ErrShapeMismatch = errors.New("expr: shape mismatch")
	// ErrNoValues indicates a numeric snapshot requested before the
	// expression has one (unsolved variable, unset composition input).
	ErrNoValues = errors.New("expr: no values available")
	// ErrNilExpr indicates a nil expression operand.
	ErrNilExpr = errors.New("expr: nil expression")
)
