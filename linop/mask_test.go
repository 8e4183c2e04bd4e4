package linop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/indexset"
	"github.com/katalvlaran/lvlopt/linop"
)

//----------------------------------------------------------------------------//
// Condition dispatch
//----------------------------------------------------------------------------//

// TestMask_ExactlyOneCondition verifies the ambiguous/missing guards.
func TestMask_ExactlyOneCondition(t *testing.T) {
	routes := buildRoutes(t)

	_, err := linop.Mask(linop.Cond{}, routes)
	assert.ErrorIs(t, err, linop.ErrMissingCond)

	both := linop.Cond{
		Values: []float64{1, 1, 1, 1},
		Pred:   func(indexset.Tuple) bool { return true },
	}
	_, err = linop.Mask(both, routes)
	assert.ErrorIs(t, err, linop.ErrAmbiguousCond)

	all := linop.Cond{
		Values:  []float64{1, 1, 1, 1},
		Pred:    func(indexset.Tuple) bool { return true },
		Filters: linop.Filters{"origin": {"W1"}},
	}
	_, err = linop.Mask(all, routes)
	assert.ErrorIs(t, err, linop.ErrAmbiguousCond)
}

//----------------------------------------------------------------------------//
// Values path
//----------------------------------------------------------------------------//

// TestMask_Values verifies pass-through semantics and shape validation.
func TestMask_Values(t *testing.T) {
	routes := buildRoutes(t)

	raw := []float64{1, 0, 0.5, 1} // weighted masks are legal
	mask, err := linop.Mask(linop.ByValues(raw), routes)
	require.NoError(t, err)
	assert.Equal(t, raw, mask)

	// Returned mask is a copy, not an alias.
	mask[0] = 42
	assert.Equal(t, 1.0, raw[0])

	_, err = linop.Mask(linop.ByValues([]float64{1, 0}), routes)
	assert.ErrorIs(t, err, linop.ErrShapeMismatch)

	// Without an index the vector is used as-is.
	free, err := linop.Mask(linop.ByValues([]float64{0, 1, 0}), nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0}, free)
}

// TestMask_IdentityAndAnnihilator checks the all-ones / all-zeros laws via
// ApplyMask.
func TestMask_IdentityAndAnnihilator(t *testing.T) {
	x := []float64{3, -1, 2.5, 7}

	kept, err := linop.ApplyMask([]float64{1, 1, 1, 1}, x)
	require.NoError(t, err)
	assert.Equal(t, x, kept, "all-ones mask must be the identity")

	gone, err := linop.ApplyMask([]float64{0, 0, 0, 0}, x)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, gone, "all-zeros mask must annihilate")

	_, err = linop.ApplyMask([]float64{1}, x)
	assert.ErrorIs(t, err, linop.ErrShapeMismatch)
}

//----------------------------------------------------------------------------//
// Predicate path
//----------------------------------------------------------------------------//

// TestMask_Predicate gates routes leaving W1 and requires an index.
func TestMask_Predicate(t *testing.T) {
	routes := buildRoutes(t)

	fromW1 := func(elem indexset.Tuple) bool { return elem[0] == "W1" }
	mask, err := linop.Mask(linop.ByPredicate(fromW1), routes)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 0, 0}, mask)

	_, err = linop.Mask(linop.ByPredicate(fromW1), nil)
	assert.ErrorIs(t, err, linop.ErrMissingIndex)
}

// TestMask_PredicateOnScalarSet evaluates one-atom tuples.
func TestMask_PredicateOnScalarSet(t *testing.T) {
	warehouses, err := indexset.New("warehouses", []indexset.Atom{"W1", "W2", "W3"})
	require.NoError(t, err)

	mask, err := linop.Mask(linop.ByPredicate(func(e indexset.Tuple) bool {
		return e[0] != "W2"
	}), warehouses)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 1}, mask)
}

//----------------------------------------------------------------------------//
// Filters path
//----------------------------------------------------------------------------//

// TestMask_FiltersSingle gates by one named position.
func TestMask_FiltersSingle(t *testing.T) {
	routes := buildRoutes(t)

	mask, err := linop.Mask(linop.ByFilters(linop.Filters{"origin": {"W1"}}), routes)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 0, 0}, mask)
}

// TestMask_FiltersANDAcrossPositions verifies conjunction semantics and
// multi-value membership.
func TestMask_FiltersANDAcrossPositions(t *testing.T) {
	routes := buildRoutes(t)

	mask, err := linop.Mask(linop.ByFilters(linop.Filters{
		"origin": {"W1", "W2"},
		"dest":   {"C2"},
	}), routes)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0, 1}, mask, "both filters must admit the element")
}

// TestMask_FiltersErrors verifies index requirements and name resolution.
func TestMask_FiltersErrors(t *testing.T) {
	routes := buildRoutes(t)
	scalar, err := indexset.New("warehouses", []indexset.Atom{"W1", "W2"})
	require.NoError(t, err)

	cond := linop.ByFilters(linop.Filters{"origin": {"W1"}})

	_, err = linop.Mask(cond, nil)
	assert.ErrorIs(t, err, linop.ErrMissingIndex)

	_, err = linop.Mask(cond, scalar)
	assert.ErrorIs(t, err, indexset.ErrNotCompound)

	_, err = linop.Mask(linop.ByFilters(linop.Filters{"period": {"Jan"}}), routes)
	assert.ErrorIs(t, err, indexset.ErrUnknownPosition)
}

// TestMask_FilterValueAbsentMatchesNothing: an allowed value outside the
// set's atoms simply excludes every element at that position.
func TestMask_FilterValueAbsentMatchesNothing(t *testing.T) {
	routes := buildRoutes(t)

	mask, err := linop.Mask(linop.ByFilters(linop.Filters{"origin": {"W9"}}), routes)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, mask)
}
