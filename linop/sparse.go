package linop

import "fmt"

// Sparse is an immutable compressed-sparse-row (CSR) matrix of float64
// values. Rows and columns are dense integer ranges; only non-zero entries
// are stored. Construction happens inside this package (GroupBy) in a
// deterministic order: within each row, column indices are strictly
// ascending.
type Sparse struct {
	rows, cols int
	rowPtr     []int     // len rows+1; row i spans [rowPtr[i], rowPtr[i+1])
	colIdx     []int     // column index per stored entry
	val        []float64 // value per stored entry
}

// newCSR assembles a Sparse from per-entry row assignments. rowOf[j] is the
// row of the single entry in column j with value vals[j]; every column has
// exactly one entry, which is the shape of a grouped-sum operator. Columns
// are visited in ascending order, so per-row column lists come out sorted.
// Complexity: O(rows + cols).
func newCSR(rows int, rowOf []int, vals []float64) *Sparse {
	cols := len(rowOf)
	m := &Sparse{
		rows:   rows,
		cols:   cols,
		rowPtr: make([]int, rows+1),
		colIdx: make([]int, cols),
		val:    make([]float64, cols),
	}

	// Count entries per row, then prefix-sum into rowPtr.
	for _, r := range rowOf {
		m.rowPtr[r+1]++
	}
	for i := 0; i < rows; i++ {
		m.rowPtr[i+1] += m.rowPtr[i]
	}

	// Scatter entries; next tracks the write cursor per row.
	next := make([]int, rows)
	copy(next, m.rowPtr[:rows])
	for j, r := range rowOf {
		at := next[r]
		m.colIdx[at] = j
		m.val[at] = vals[j]
		next[r]++
	}

	return m
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Sparse) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Sparse) Cols() int { return m.cols }

// NNZ returns the number of stored entries. Complexity: O(1).
func (m *Sparse) NNZ() int { return len(m.val) }

// At returns the value at (i, j), zero for unstored entries. Returns
// ErrOutOfRange when the coordinates lie outside the shape.
// Complexity: O(nnz(row i)).
func (m *Sparse) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("Sparse.At(%d,%d) of %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}
	for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
		if m.colIdx[k] == j {
			return m.val[k], nil
		}
	}

	return 0, nil
}

// MulVec computes y = M·x. Returns ErrShapeMismatch when len(x) != Cols.
// Deterministic accumulation order: rows ascending, stored entries in
// column order within each row.
// Complexity: O(rows + NNZ).
func (m *Sparse) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.cols {
		return nil, fmt.Errorf("Sparse.MulVec: vector length %d, want %d: %w", len(x), m.cols, ErrShapeMismatch)
	}
	y := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		sum := 0.0
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			sum += m.val[k] * x[m.colIdx[k]]
		}
		y[i] = sum
	}

	return y, nil
}

// RowSums returns the per-row sum of stored values. For a 0/1 aggregation
// operator this is the cardinality of each group.
// Complexity: O(rows + NNZ).
func (m *Sparse) RowSums() []float64 {
	sums := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			sums[i] += m.val[k]
		}
	}

	return sums
}

// Clone returns a deep copy, independent of the original.
// Complexity: O(rows + NNZ).
func (m *Sparse) Clone() *Sparse {
	c := &Sparse{
		rows:   m.rows,
		cols:   m.cols,
		rowPtr: make([]int, len(m.rowPtr)),
		colIdx: make([]int, len(m.colIdx)),
		val:    make([]float64, len(m.val)),
	}
	copy(c.rowPtr, m.rowPtr)
	copy(c.colIdx, m.colIdx)
	copy(c.val, m.val)

	return c
}
