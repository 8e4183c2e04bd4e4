package linop

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlopt/indexset"
)

// Aggregation is the grouped-sum operator produced by GroupBy: a sparse
// 0/1 matrix of shape (Groups.Size() × index.Size()) together with the
// group keys as an IndexSet, so aggregated vectors stay label-addressable.
// Row g holds a 1 in every column whose element carries group g's sub-key.
type Aggregation struct {
	Groups *indexset.IndexSet // retained sub-keys in first-occurrence order
	Matrix *Sparse            // (G × N) one-hot grouped-sum operator
}

// Apply computes the per-group sums of a per-element vector: y = M·x.
// Returns ErrShapeMismatch when len(x) != index size.
// Complexity: O(N).
func (a *Aggregation) Apply(x []float64) ([]float64, error) {
	return a.Matrix.MulVec(x)
}

// GroupBy partitions a compound index by the values at the retained
// positions and synthesizes the grouped-sum operator.
//
// Behavior:
//  1. Validate: index non-nil and compound, at least one position; resolve
//     every position reference (int or name) via ResolvePos.
//  2. Scan elements in index order. Each element's sub-key is the atom at
//     the single retained position, or the tuple of atoms at the retained
//     positions. Groups are numbered in FIRST-OCCURRENCE order: group 0 is
//     the first element's sub-key, group 1 the next never-seen sub-key,
//     and so on. The ordering is a contract — downstream code binds group
//     g to vector position g and must see the same order on every run.
//  3. Assemble the (G × N) CSR matrix with M[g,e] = 1 iff element e's
//     sub-key equals group g's key, and build the group IndexSet.
//
// Duplicate position references are a caller error and are not rejected;
// they fold into the sub-key as repeated components.
//
// Errors: ErrNilIndex, ErrNoPositions, indexset.ErrNotCompound,
// indexset.ErrUnknownPosition.
// Complexity: O(N·k), Memory: O(N + G·k).
func GroupBy(index *indexset.IndexSet, positions ...indexset.PosRef) (*Aggregation, error) {
	if index == nil {
		return nil, fmt.Errorf("GroupBy: %w", ErrNilIndex)
	}
	if !index.IsCompound() {
		return nil, fmt.Errorf("GroupBy(%q): sum a scalar-indexed vector directly instead: %w",
			index.Label(), indexset.ErrNotCompound)
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("GroupBy(%q): %w", index.Label(), ErrNoPositions)
	}

	resolved := make([]int, len(positions))
	for i, ref := range positions {
		p, err := index.ResolvePos(ref)
		if err != nil {
			return nil, fmt.Errorf("GroupBy(%q): %w", index.Label(), err)
		}
		resolved[i] = p
	}

	n := index.Size()
	rowOf := make([]int, n)    // group row per element column
	ones := make([]float64, n) // one stored entry per element
	groupPos := make(map[string]int, n)
	var groupKeys []indexset.Tuple
	for e := 0; e < n; e++ {
		elem, err := index.At(e)
		if err != nil {
			return nil, fmt.Errorf("GroupBy(%q): %w", index.Label(), err)
		}
		sub := make(indexset.Tuple, len(resolved))
		for j, p := range resolved {
			sub[j] = elem[p]
		}
		key, err := indexset.Key(sub...)
		if err != nil {
			return nil, fmt.Errorf("GroupBy(%q): %w", index.Label(), err)
		}
		g, seen := groupPos[key]
		if !seen {
			g = len(groupKeys)
			groupPos[key] = g
			groupKeys = append(groupKeys, sub)
		}
		rowOf[e] = g
		ones[e] = 1.0
	}

	groups, err := buildGroupSet(index, resolved, groupKeys)
	if err != nil {
		return nil, fmt.Errorf("GroupBy(%q): %w", index.Label(), err)
	}

	return &Aggregation{
		Groups: groups,
		Matrix: newCSR(len(groupKeys), rowOf, ones),
	}, nil
}

// buildGroupSet materializes the group keys as an IndexSet. A single
// retained position yields a scalar set of the sub-key atoms — unless the
// atoms are themselves tuples (the retained component came from an
// unflattened cross-product), in which case the groups form a compound set
// of those tuples. Multiple retained positions always yield a compound set
// carrying the retained names when the source index is named.
func buildGroupSet(index *indexset.IndexSet, resolved []int, groupKeys []indexset.Tuple) (*indexset.IndexSet, error) {
	label := groupLabel(index, resolved)

	if len(resolved) == 1 {
		tuples := make([]indexset.Tuple, len(groupKeys))
		allNested := true
		for i, k := range groupKeys {
			t, nested := k[0].(indexset.Tuple)
			if !nested {
				allNested = false

				break
			}
			tuples[i] = t
		}
		if allNested {
			// Nested tuple sub-keys (the retained component came from an
			// unflattened cross-product): unwrap one level so the group set
			// has the component's own arity and stays addressable by atoms.
			return indexset.NewCompound(label, tuples)
		}
		atoms := make([]indexset.Atom, len(groupKeys))
		for i, k := range groupKeys {
			atoms[i] = k[0]
		}

		return indexset.New(label, atoms)
	}

	opts := make([]indexset.Option, 0, 1)
	if names := index.Names(); names != nil {
		retained := make([]string, len(resolved))
		for j, p := range resolved {
			retained[j] = names[p]
		}
		opts = append(opts, indexset.WithNames(retained...))
	}

	return indexset.NewCompound(label, groupKeys, opts...)
}

// groupLabel derives a deterministic diagnostic label for the group set:
// "<label>[p0,p1]" with names when available, "" when the source is
// unlabeled.
func groupLabel(index *indexset.IndexSet, resolved []int) string {
	if index.Label() == "" {
		return ""
	}
	names := index.Names()
	parts := make([]string, len(resolved))
	for j, p := range resolved {
		if names != nil {
			parts[j] = names[p]
		} else {
			parts[j] = fmt.Sprintf("%d", p)
		}
	}

	return fmt.Sprintf("%s[%s]", index.Label(), strings.Join(parts, ","))
}
