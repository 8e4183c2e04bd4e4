package linop

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/indexset"
)

// Predicate decides element inclusion for predicate-driven masks. It
// receives each element as a Tuple (one-atom for scalar sets) in index
// order.
type Predicate func(elem indexset.Tuple) bool

// Filters maps a position name to its allowed values. An element passes
// when, for EVERY named position, its atom at that position is one of the
// allowed values — filters compose by logical AND across positions.
type Filters map[string][]indexset.Atom

// Cond carries exactly one masking condition. Zero or multiple populated
// fields are rejected by Mask with ErrMissingCond / ErrAmbiguousCond.
type Cond struct {
	// Values is an explicit per-element vector, passed through verbatim
	// (weighted masks are legal). Length-checked against the index when one
	// is supplied.
	Values []float64
	// Pred is evaluated over every element in index order; true maps to
	// 1.0, false to 0.0. Requires an index.
	Pred Predicate
	// Filters gates compound elements by named-position membership.
	// Requires a compound index.
	Filters Filters
}

// ByValues wraps an explicit float vector as a condition.
func ByValues(values []float64) Cond { return Cond{Values: values} }

// ByPredicate wraps a predicate as a condition.
func ByPredicate(pred Predicate) Cond { return Cond{Pred: pred} }

// ByFilters wraps named-position filters as a condition.
func ByFilters(filters Filters) Cond { return Cond{Filters: filters} }

// Mask synthesizes a length-N gating vector from a condition.
//
// Behavior:
//   - Values path: copied verbatim; when index is non-nil the length must
//     equal index.Size() (ErrShapeMismatch). A nil index is legal here.
//   - Predicate path: requires index (ErrMissingIndex); evaluates the
//     predicate over every element in canonical order.
//   - Filters path: requires a compound index (ErrMissingIndex /
//     indexset.ErrNotCompound); each filter name resolves via ResolvePos
//     (indexset.ErrUnknownPosition); an entry is 1.0 only when every filter
//     admits the element's atom at its position.
//
// The result is a pure function of the inputs; applying it means
// elementwise-multiplying an expression by the mask (see ApplyMask).
// Complexity: O(N) / O(N·F) for F filters.
func Mask(cond Cond, index *indexset.IndexSet) ([]float64, error) {
	supplied := 0
	if cond.Values != nil {
		supplied++
	}
	if cond.Pred != nil {
		supplied++
	}
	if cond.Filters != nil {
		supplied++
	}
	if supplied > 1 {
		return nil, fmt.Errorf("Mask: %w", ErrAmbiguousCond)
	}

	switch {
	case cond.Values != nil:
		return maskFromValues(cond.Values, index)
	case cond.Pred != nil:
		return maskFromPredicate(cond.Pred, index)
	case cond.Filters != nil:
		return maskFromFilters(cond.Filters, index)
	default:
		return nil, fmt.Errorf("Mask: %w", ErrMissingCond)
	}
}

// maskFromValues validates and copies an explicit vector.
func maskFromValues(values []float64, index *indexset.IndexSet) ([]float64, error) {
	if index != nil && len(values) != index.Size() {
		return nil, fmt.Errorf("Mask(%q): %d values for %d elements: %w",
			index.Label(), len(values), index.Size(), ErrShapeMismatch)
	}
	out := make([]float64, len(values))
	copy(out, values)

	return out, nil
}

// maskFromPredicate evaluates pred over every element in index order.
func maskFromPredicate(pred Predicate, index *indexset.IndexSet) ([]float64, error) {
	if index == nil {
		return nil, fmt.Errorf("Mask: predicate condition: %w", ErrMissingIndex)
	}
	out := make([]float64, index.Size())
	for i := 0; i < index.Size(); i++ {
		elem, err := index.At(i)
		if err != nil {
			return nil, fmt.Errorf("Mask(%q): %w", index.Label(), err)
		}
		if pred(elem) {
			out[i] = 1.0
		}
	}

	return out, nil
}

// maskFromFilters ANDs named-position membership tests across positions.
// Allowed-value sets are compared by canonical key so nested tuple atoms
// participate like any other atom.
func maskFromFilters(filters Filters, index *indexset.IndexSet) ([]float64, error) {
	if index == nil {
		return nil, fmt.Errorf("Mask: filter condition: %w", ErrMissingIndex)
	}
	if !index.IsCompound() {
		return nil, fmt.Errorf("Mask(%q): filters need tuple elements: %w",
			index.Label(), indexset.ErrNotCompound)
	}

	out := make([]float64, index.Size())
	for i := range out {
		out[i] = 1.0
	}
	for name, allowed := range filters {
		p, err := index.ResolvePos(name)
		if err != nil {
			return nil, fmt.Errorf("Mask(%q): %w", index.Label(), err)
		}
		allowedKeys := make(map[string]struct{}, len(allowed))
		for _, a := range allowed {
			k, err := indexset.Key(a)
			if err != nil {
				return nil, fmt.Errorf("Mask(%q): filter %q: %w", index.Label(), name, err)
			}
			allowedKeys[k] = struct{}{}
		}
		for i := 0; i < index.Size(); i++ {
			elem, err := index.At(i)
			if err != nil {
				return nil, fmt.Errorf("Mask(%q): %w", index.Label(), err)
			}
			k, err := indexset.Key(elem[p])
			if err != nil {
				return nil, fmt.Errorf("Mask(%q): %w", index.Label(), err)
			}
			if _, ok := allowedKeys[k]; !ok {
				out[i] = 0.0
			}
		}
	}

	return out, nil
}

// ApplyMask returns the elementwise product mask ⊙ x — the numeric
// counterpart of gating an expression. Returns ErrShapeMismatch when the
// lengths disagree.
// Complexity: O(N).
func ApplyMask(mask, x []float64) ([]float64, error) {
	if len(mask) != len(x) {
		return nil, fmt.Errorf("ApplyMask: mask length %d, vector length %d: %w",
			len(mask), len(x), ErrShapeMismatch)
	}
	out := make([]float64, len(x))
	for i := range x {
		out[i] = mask[i] * x[i]
	}

	return out, nil
}
