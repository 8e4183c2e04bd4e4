package expr

import "fmt"

// Dense is the reference Engine: flat []float64 storage, lazy composition.
// It exists so models built on the index algebra can be evaluated without
// an external solver; a production engine replaces it behind the Engine
// interface.
type Dense struct{}

// NewDense returns the stateless reference engine.
func NewDense() *Dense { return &Dense{} }

// DenseVar is an unknown vector placeholder. It carries no values until
// SetValues installs a solution snapshot.
type DenseVar struct {
	n    int
	vals []float64 // nil until solved
}

// Len returns the fixed length. Complexity: O(1).
func (v *DenseVar) Len() int { return v.n }

// Values returns the installed snapshot, or nil before SetValues.
func (v *DenseVar) Values() []float64 { return v.vals }

// SetValues installs a solution snapshot of exactly Len elements. The
// slice is copied; later caller mutation cannot corrupt the expression.
// Returns ErrShapeMismatch on length disagreement.
func (v *DenseVar) SetValues(values []float64) error {
	if len(values) != v.n {
		return fmt.Errorf("DenseVar.SetValues: %d values for length %d: %w",
			len(values), v.n, ErrShapeMismatch)
	}
	v.vals = make([]float64, v.n)
	copy(v.vals, values)

	return nil
}

// denseParam is a constant vector.
type denseParam struct {
	vals []float64
}

func (p *denseParam) Len() int          { return len(p.vals) }
func (p *denseParam) Values() []float64 { return p.vals }

// sparseMul is the deferred product m·x; it materializes once x has values.
type sparseMul struct {
	m SparseMatrix
	x Expr
}

// Len returns the product length, m.Rows. Complexity: O(1).
func (e *sparseMul) Len() int { return e.m.Rows() }

// Values materializes m·x, or nil while x has no snapshot. Shapes were
// validated at composition time, so MulVec cannot fail here.
func (e *sparseMul) Values() []float64 {
	xv := e.x.Values()
	if xv == nil {
		return nil
	}
	y, err := e.m.MulVec(xv)
	if err != nil {
		return nil
	}

	return y
}

// elemMul is the deferred elementwise product coeffs ⊙ x.
type elemMul struct {
	coeffs []float64
	x      Expr
}

// Len returns the operand length. Complexity: O(1).
func (e *elemMul) Len() int { return len(e.coeffs) }

// Values materializes coeffs ⊙ x, or nil while x has no snapshot.
func (e *elemMul) Values() []float64 {
	xv := e.x.Values()
	if xv == nil {
		return nil
	}
	out := make([]float64, len(e.coeffs))
	for i := range out {
		out[i] = e.coeffs[i] * xv[i]
	}

	return out
}

// Variable allocates an unknown vector of length n.
// Returns ErrBadLength when n <= 0.
func (d *Dense) Variable(n int) (Expr, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Dense.Variable(%d): %w", n, ErrBadLength)
	}

	return &DenseVar{n: n}, nil
}

// Parameter allocates a constant vector of length n; nil values means all
// zeros. Returns ErrBadLength / ErrShapeMismatch on misuse.
func (d *Dense) Parameter(n int, values []float64) (Expr, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Dense.Parameter(%d): %w", n, ErrBadLength)
	}
	vals := make([]float64, n)
	if values != nil {
		if len(values) != n {
			return nil, fmt.Errorf("Dense.Parameter(%d): %d values: %w", n, len(values), ErrShapeMismatch)
		}
		copy(vals, values)
	}

	return &denseParam{vals: vals}, nil
}

// MulSparse structures y = m·x after validating m.Cols == x.Len.
func (d *Dense) MulSparse(m SparseMatrix, x Expr) (Expr, error) {
	if m == nil || x == nil {
		return nil, fmt.Errorf("Dense.MulSparse: %w", ErrNilExpr)
	}
	if m.Cols() != x.Len() {
		return nil, fmt.Errorf("Dense.MulSparse: matrix %dx%d against length %d: %w",
			m.Rows(), m.Cols(), x.Len(), ErrShapeMismatch)
	}

	return &sparseMul{m: m, x: x}, nil
}

// MulElem structures y = coeffs ⊙ x after validating lengths.
func (d *Dense) MulElem(coeffs []float64, x Expr) (Expr, error) {
	if x == nil {
		return nil, fmt.Errorf("Dense.MulElem: %w", ErrNilExpr)
	}
	if len(coeffs) != x.Len() {
		return nil, fmt.Errorf("Dense.MulElem: %d coefficients against length %d: %w",
			len(coeffs), x.Len(), ErrShapeMismatch)
	}
	c := make([]float64, len(coeffs))
	copy(c, coeffs)

	return &elemMul{coeffs: c, x: x}, nil
}
