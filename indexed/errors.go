package indexed

import "errors"

// Sentinel errors for indexed-value construction; match with errors.Is.
// Lookup and operator failures propagate the indexset/linop/expr sentinels.
var (
	// ErrNilEngine indicates a nil expr.Engine collaborator.
	ErrNilEngine = errors.New("indexed: engine is nil")
	// ErrNilIndex indicates a nil IndexSet collaborator.
	ErrNilIndex = errors.New("indexed: index is nil")
	// ErrNilExpr indicates a nil engine expression at binding.
	ErrNilExpr = errors.New("indexed: expression is nil")
	// ErrSizeMismatch indicates an expression whose length differs from the
	// index size it is bound to.
	ErrSizeMismatch = errors.New("indexed: expression length differs from index size")
)
