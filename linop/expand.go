package linop

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/indexset"
)

// Expand broadcasts a lower-dimensional value vector onto a
// higher-dimensional target index — the structural inverse of GroupBy:
// aggregation folds many elements into one group value; Expand copies one
// source value into every target element carrying its key.
//
// Behavior:
//  1. Validate: indices non-nil, target compound, len(src) == source size,
//     at least one position; resolve the positions against the TARGET
//     index (they locate the source's key space inside target elements).
//  2. For every target element in target order, extract the sub-key at the
//     resolved positions (the atom itself for a single position, the tuple
//     of atoms otherwise), look it up in the source index, and copy the
//     source value into the output slot.
//  3. A single retained component that is itself a tuple (unflattened
//     cross-product operand) is spread into its atoms for the source
//     lookup, matching how GroupBy materializes such group sets.
//
// This is a strict broadcast: every target sub-key must exist in the
// source index (indexset.ErrKeyNotFound otherwise); there is no implicit
// default or fill.
//
// Errors: ErrNilIndex, ErrNoPositions, ErrShapeMismatch,
// indexset.ErrNotCompound, indexset.ErrUnknownPosition,
// indexset.ErrKeyNotFound.
// Complexity: O(T·k) for T target elements, Memory: O(T).
func Expand(src []float64, srcIndex, target *indexset.IndexSet, positions ...indexset.PosRef) ([]float64, error) {
	if srcIndex == nil || target == nil {
		return nil, fmt.Errorf("Expand: %w", ErrNilIndex)
	}
	if !target.IsCompound() {
		return nil, fmt.Errorf("Expand(%q): target must be compound: %w",
			target.Label(), indexset.ErrNotCompound)
	}
	if len(src) != srcIndex.Size() {
		return nil, fmt.Errorf("Expand(%q): %d values for %d source elements: %w",
			srcIndex.Label(), len(src), srcIndex.Size(), ErrShapeMismatch)
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("Expand(%q): %w", target.Label(), ErrNoPositions)
	}

	resolved := make([]int, len(positions))
	for i, ref := range positions {
		p, err := target.ResolvePos(ref)
		if err != nil {
			return nil, fmt.Errorf("Expand(%q): %w", target.Label(), err)
		}
		resolved[i] = p
	}

	out := make([]float64, target.Size())
	for i := 0; i < target.Size(); i++ {
		elem, err := target.At(i)
		if err != nil {
			return nil, fmt.Errorf("Expand(%q): %w", target.Label(), err)
		}

		var key indexset.Tuple
		if len(resolved) == 1 {
			if nested, ok := elem[resolved[0]].(indexset.Tuple); ok {
				key = nested
			} else {
				key = indexset.Tuple{elem[resolved[0]]}
			}
		} else {
			key = make(indexset.Tuple, len(resolved))
			for j, p := range resolved {
				key[j] = elem[p]
			}
		}

		pos, err := srcIndex.Position(key...)
		if err != nil {
			return nil, fmt.Errorf("Expand(%q): target element %d: %w", target.Label(), i, err)
		}
		out[i] = src[pos]
	}

	return out, nil
}
