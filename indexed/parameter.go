package indexed

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/expr"
	"github.com/katalvlaran/lvlopt/indexset"
	"github.com/katalvlaran/lvlopt/linop"
)

// Entry pairs one index element with its numeric value when building a
// Parameter. Scalar sets take one-atom tuples.
type Entry struct {
	Elem  indexset.Tuple
	Value float64
}

// Parameter is a constant vector bound to an IndexSet. Positions not named
// by any entry are zero. Parameter keeps its own dense copy of the data so
// Expand can re-index it without consulting the engine.
type Parameter struct {
	Indexed
	vals []float64
}

// NewParameter builds the dense vector from entries (unmapped positions
// zero-filled), allocates the engine parameter, and binds it.
// Duplicate entries for the same element are a caller error; the last
// write wins, matching flat-table ingestion order.
// Errors: ErrNilEngine / ErrNilIndex, indexset.ErrKeyNotFound for entries
// outside the index, plus whatever the engine reports.
// Complexity: O(N + E·arity) for E entries.
func NewParameter(eng expr.Engine, index *indexset.IndexSet, entries []Entry) (*Parameter, error) {
	if eng == nil {
		return nil, fmt.Errorf("NewParameter: %w", ErrNilEngine)
	}
	if index == nil {
		return nil, fmt.Errorf("NewParameter: %w", ErrNilIndex)
	}

	vals := make([]float64, index.Size())
	for _, e := range entries {
		pos, err := index.Position(e.Elem...)
		if err != nil {
			return nil, fmt.Errorf("NewParameter(%q): %w", index.Label(), err)
		}
		vals[pos] = e.Value
	}

	return bindParameter(eng, index, vals)
}

// NewParameterFromVector binds an already-dense vector as a parameter.
// Returns ErrSizeMismatch when the length disagrees with the index.
func NewParameterFromVector(eng expr.Engine, index *indexset.IndexSet, vals []float64) (*Parameter, error) {
	if eng == nil {
		return nil, fmt.Errorf("NewParameterFromVector: %w", ErrNilEngine)
	}
	if index == nil {
		return nil, fmt.Errorf("NewParameterFromVector: %w", ErrNilIndex)
	}
	if len(vals) != index.Size() {
		return nil, fmt.Errorf("NewParameterFromVector(%q): %d values for %d elements: %w",
			index.Label(), len(vals), index.Size(), ErrSizeMismatch)
	}
	dense := make([]float64, len(vals))
	copy(dense, vals)

	return bindParameter(eng, index, dense)
}

// bindParameter allocates the engine parameter over an owned dense slice.
func bindParameter(eng expr.Engine, index *indexset.IndexSet, vals []float64) (*Parameter, error) {
	x, err := eng.Parameter(index.Size(), vals)
	if err != nil {
		return nil, fmt.Errorf("NewParameter(%q): %w", index.Label(), err)
	}

	return &Parameter{
		Indexed: Indexed{index: index, x: x},
		vals:    vals,
	}, nil
}

// Vector returns a copy of the dense parameter data in canonical order.
// Complexity: O(N).
func (p *Parameter) Vector() []float64 {
	out := make([]float64, len(p.vals))
	copy(out, p.vals)

	return out
}

// Expand broadcasts this parameter onto a larger cross-product index: the
// returned Parameter is indexed by target, every target element carrying
// the value of its sub-key at the given positions in this parameter.
// Strict lookup semantics and errors follow linop.Expand.
// Complexity: O(T·k).
func (p *Parameter) Expand(eng expr.Engine, target *indexset.IndexSet, positions ...indexset.PosRef) (*Parameter, error) {
	if eng == nil {
		return nil, fmt.Errorf("Parameter.Expand(%q): %w", p.index.Label(), ErrNilEngine)
	}
	out, err := linop.Expand(p.vals, p.index, target, positions...)
	if err != nil {
		return nil, fmt.Errorf("Parameter.Expand(%q): %w", p.index.Label(), err)
	}

	return bindParameter(eng, target, out)
}
