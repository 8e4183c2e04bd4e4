package indexed

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/expr"
	"github.com/katalvlaran/lvlopt/indexset"
	"github.com/katalvlaran/lvlopt/linop"
)

// Indexed pairs an engine expression with the IndexSet addressing it. The
// expression is owned by the engine; Indexed only forwards label-based
// access and keeps vector order aligned with index order.
type Indexed struct {
	index *indexset.IndexSet
	x     expr.Expr
}

// Bind wraps an existing engine expression with its IndexSet.
// Returns ErrNilIndex / ErrNilExpr / ErrSizeMismatch on misuse.
// Complexity: O(1).
func Bind(index *indexset.IndexSet, x expr.Expr) (*Indexed, error) {
	if index == nil {
		return nil, fmt.Errorf("Bind: %w", ErrNilIndex)
	}
	if x == nil {
		return nil, fmt.Errorf("Bind(%q): %w", index.Label(), ErrNilExpr)
	}
	if x.Len() != index.Size() {
		return nil, fmt.Errorf("Bind(%q): expression length %d, index size %d: %w",
			index.Label(), x.Len(), index.Size(), ErrSizeMismatch)
	}

	return &Indexed{index: index, x: x}, nil
}

// Index returns the addressing IndexSet. Complexity: O(1).
func (iv *Indexed) Index() *indexset.IndexSet { return iv.index }

// Expr returns the underlying engine expression for further composition
// (objectives, constraints) outside this package. Complexity: O(1).
func (iv *Indexed) Expr() expr.Expr { return iv.x }

// Value reads the snapshot entry for an element by key — the explicit
// key-lookup accessor. Returns expr.ErrNoValues before a snapshot exists
// and indexset.ErrKeyNotFound for unknown elements.
// Complexity: O(arity).
func (iv *Indexed) Value(elem ...indexset.Atom) (float64, error) {
	pos, err := iv.index.Position(elem...)
	if err != nil {
		return 0, fmt.Errorf("Value(%q): %w", iv.index.Label(), err)
	}

	return iv.At(pos)
}

// At reads the snapshot entry at a flat position — the explicit positional
// accessor. Returns indexset.ErrOutOfRange outside [0, Size) and
// expr.ErrNoValues before a snapshot exists.
// Complexity: O(1).
func (iv *Indexed) At(i int) (float64, error) {
	if i < 0 || i >= iv.index.Size() {
		return 0, fmt.Errorf("At(%q): position %d of %d: %w",
			iv.index.Label(), i, iv.index.Size(), indexset.ErrOutOfRange)
	}
	vals := iv.x.Values()
	if vals == nil {
		return 0, fmt.Errorf("At(%q): %w", iv.index.Label(), expr.ErrNoValues)
	}

	return vals[i], nil
}

// SumBy structures the grouped sum of this value over the retained
// positions and returns it bound to the group IndexSet, so the aggregate
// stays label-addressable ("supply.Value("W1")").
// Errors propagate from linop.GroupBy and Engine.MulSparse.
// Complexity: O(N·k) synthesis + engine composition.
func (iv *Indexed) SumBy(eng expr.Engine, positions ...indexset.PosRef) (*Indexed, error) {
	if eng == nil {
		return nil, fmt.Errorf("SumBy(%q): %w", iv.index.Label(), ErrNilEngine)
	}
	agg, err := linop.GroupBy(iv.index, positions...)
	if err != nil {
		return nil, fmt.Errorf("SumBy(%q): %w", iv.index.Label(), err)
	}
	grouped, err := eng.MulSparse(agg.Matrix, iv.x)
	if err != nil {
		return nil, fmt.Errorf("SumBy(%q): %w", iv.index.Label(), err)
	}

	return &Indexed{index: agg.Groups, x: grouped}, nil
}

// Where structures the masked (gated) version of this value: entries not
// admitted by the condition are zeroed, the index stays the same.
// Errors propagate from linop.Mask and Engine.MulElem.
// Complexity: O(N) mask synthesis + engine composition.
func (iv *Indexed) Where(eng expr.Engine, cond linop.Cond) (*Indexed, error) {
	if eng == nil {
		return nil, fmt.Errorf("Where(%q): %w", iv.index.Label(), ErrNilEngine)
	}
	mask, err := linop.Mask(cond, iv.index)
	if err != nil {
		return nil, fmt.Errorf("Where(%q): %w", iv.index.Label(), err)
	}
	gated, err := eng.MulElem(mask, iv.x)
	if err != nil {
		return nil, fmt.Errorf("Where(%q): %w", iv.index.Label(), err)
	}

	return &Indexed{index: iv.index, x: gated}, nil
}
