package indexset

import "fmt"

// Cross builds the Cartesian product of two or more IndexSets as a new
// compound IndexSet. Operands are never mutated.
//
// Behavior:
//  1. Validate: at least two operands, all non-nil.
//  2. Enumerate the product in nested lexicographic order: the first
//     operand varies slowest, the last fastest. For sizes [2,3] the order
//     is (a0,b0),(a0,b1),(a0,b2),(a1,b0),(a1,b1),(a1,b2).
//  3. A scalar operand contributes its atom as one component; a compound
//     operand contributes its whole tuple as one component. Operand tuples
//     are NOT flattened, so the product arity equals the operand count and
//     later position resolution addresses operands, not leaf atoms.
//  4. Names: WithNames wins; otherwise, if every operand carries a
//     non-empty label, those labels become the position names (one per
//     operand); otherwise names stay absent.
//
// Errors: ErrArity (fewer than two operands or WithNames length mismatch,
// surfaced by NewCompound), ErrEmptySet cannot occur since operands are
// non-empty by construction.
// Complexity: O(∏ sizes), Memory: O(∏ sizes).
func Cross(sets []*IndexSet, optFns ...Option) (*IndexSet, error) {
	if len(sets) < 2 {
		return nil, fmt.Errorf("Cross: %d operands, need at least 2: %w", len(sets), ErrArity)
	}
	for i, s := range sets {
		if s == nil {
			return nil, fmt.Errorf("Cross: operand %d is nil: %w", i, ErrEmptySet)
		}
	}

	opts := gatherOptions(optFns...)
	total := 1
	for _, s := range sets {
		total *= s.Size()
	}

	// Odometer enumeration: counters[j] indexes operand j; the last counter
	// increments fastest, matching nested loops over the operands in order.
	counters := make([]int, len(sets))
	tuples := make([]Tuple, 0, total)
	for n := 0; n < total; n++ {
		elem := make(Tuple, len(sets))
		for j, s := range sets {
			src := s.elems[counters[j]]
			if s.compound {
				comp := make(Tuple, len(src))
				copy(comp, src)
				elem[j] = comp
			} else {
				elem[j] = src[0]
			}
		}
		tuples = append(tuples, elem)

		for j := len(sets) - 1; j >= 0; j-- {
			counters[j]++
			if counters[j] < sets[j].Size() {
				break
			}
			counters[j] = 0
		}
	}

	// Default position names from operand labels when all are labeled.
	if opts.names == nil {
		labels := make([]string, len(sets))
		labeled := true
		for j, s := range sets {
			labels[j] = s.label
			if s.label == "" {
				labeled = false

				break
			}
		}
		if labeled {
			opts.names = labels
		}
	}

	built := make([]Option, 0, 2)
	if opts.names != nil {
		built = append(built, WithNames(opts.names...))
	}

	return NewCompound(opts.label, tuples, built...)
}
