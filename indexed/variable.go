package indexed

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/expr"
	"github.com/katalvlaran/lvlopt/indexset"
)

// Variable is an unknown decision vector bound to an IndexSet. The engine
// owns the storage and eventually the solution snapshot; Variable adds
// label addressing on top.
type Variable struct {
	Indexed
}

// NewVariable allocates an engine variable of the index's size and binds
// it. Returns ErrNilEngine / ErrNilIndex, plus whatever the engine reports.
// Complexity: O(1) + engine allocation.
func NewVariable(eng expr.Engine, index *indexset.IndexSet) (*Variable, error) {
	if eng == nil {
		return nil, fmt.Errorf("NewVariable: %w", ErrNilEngine)
	}
	if index == nil {
		return nil, fmt.Errorf("NewVariable: %w", ErrNilIndex)
	}
	x, err := eng.Variable(index.Size())
	if err != nil {
		return nil, fmt.Errorf("NewVariable(%q): %w", index.Label(), err)
	}

	return &Variable{Indexed: Indexed{index: index, x: x}}, nil
}
