package expr

// Expr is an engine-owned vector-valued expression of fixed length. The
// index algebra never evaluates or differentiates expressions; it only
// reads lengths for shape checks and, after the engine has populated a
// solution, treats Values as a read-only positional snapshot.
type Expr interface {
	// Len returns the fixed element count of the expression.
	Len() int
	// Values returns the current numeric snapshot in canonical flat order,
	// or nil when no snapshot exists yet. Callers must not mutate the
	// returned slice.
	Values() []float64
}

// SparseMatrix is the minimal contract a sparse linear operator must
// satisfy to be composed with engine expressions. linop.Sparse satisfies
// it; engines may accept richer types via assertion but must work with
// this surface alone.
type SparseMatrix interface {
	Rows() int
	Cols() int
	MulVec(x []float64) ([]float64, error)
}

// Engine constructs and composes externally-owned expressions. The
// algebra calls it to allocate length-N placeholders and to structure a
// grouped sum or a mask application; how the engine stores, solves, or
// differentiates the result is its own business.
type Engine interface {
	// Variable allocates an unknown vector of length n (solver-determined).
	Variable(n int) (Expr, error)
	// Parameter allocates a constant vector of length n. A nil values slice
	// means all zeros; otherwise len(values) must equal n.
	Parameter(n int, values []float64) (Expr, error)
	// MulSparse structures y = m·x, an expression of length m.Rows().
	// m.Cols() must equal x.Len().
	MulSparse(m SparseMatrix, x Expr) (Expr, error)
	// MulElem structures y = coeffs ⊙ x, an expression of x.Len().
	// len(coeffs) must equal x.Len().
	MulElem(coeffs []float64, x Expr) (Expr, error)
}
