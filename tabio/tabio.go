package tabio

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvlopt/indexset"
)

// ErrBadRecord indicates a record of unexpected width, a missing column,
// or an unparsable numeric cell.
var ErrBadRecord = errors.New("tabio: bad record")

// SetFromRecords builds an IndexSet from rows of string labels: one row
// per element. Width-1 rows build a scalar set; wider rows build a
// compound set (pass indexset.WithNames to name the positions). Options
// are forwarded to the constructor either way, so WithNames on width-1
// rows fails with indexset.ErrArity. All rows must share the same width;
// duplicates are rejected by the constructor.
// Complexity: O(rows·width).
func SetFromRecords(label string, rows [][]string, optFns ...indexset.Option) (*indexset.IndexSet, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("SetFromRecords(%q): %w", label, indexset.ErrEmptySet)
	}

	width := len(rows[0])
	switch width {
	case 0:
		return nil, fmt.Errorf("SetFromRecords(%q): empty record: %w", label, ErrBadRecord)
	case 1:
		atoms := make([]indexset.Atom, len(rows))
		for i, row := range rows {
			if len(row) != 1 {
				return nil, recordWidthErr(label, i, len(row), 1)
			}
			atoms[i] = row[0]
		}

		return indexset.New(label, atoms, optFns...)
	default:
		tuples := make([]indexset.Tuple, len(rows))
		for i, row := range rows {
			if len(row) != width {
				return nil, recordWidthErr(label, i, len(row), width)
			}
			t := make(indexset.Tuple, width)
			for j, cell := range row {
				t[j] = cell
			}
			tuples[i] = t
		}

		return indexset.NewCompound(label, tuples, optFns...)
	}
}

// UniqueSetFromColumn builds a scalar IndexSet from the unique values of
// one column, in first-occurrence order.
// Complexity: O(rows).
func UniqueSetFromColumn(label string, rows [][]string, col int) (*indexset.IndexSet, error) {
	if col < 0 {
		return nil, fmt.Errorf("UniqueSetFromColumn(%q): column %d: %w", label, col, ErrBadRecord)
	}
	seen := make(map[string]struct{}, len(rows))
	atoms := make([]indexset.Atom, 0, len(rows))
	for i, row := range rows {
		if col >= len(row) {
			return nil, fmt.Errorf("UniqueSetFromColumn(%q): record %d has %d columns, need %d: %w",
				label, i, len(row), col+1, ErrBadRecord)
		}
		v := row[col]
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		atoms = append(atoms, v)
	}
	if len(atoms) == 0 {
		return nil, fmt.Errorf("UniqueSetFromColumn(%q): %w", label, indexset.ErrEmptySet)
	}

	return indexset.New(label, atoms)
}

// VectorFromRecords builds a dense vector over index from key/value rows:
// every row carries the element's label columns (index arity of them)
// followed by, at position valueCol, a float cell. Positions not named by
// any row stay zero; a later row for the same element overwrites.
//
// Errors: ErrBadRecord on width/parse problems, indexset.ErrKeyNotFound
// when a row names an element outside the index.
// Complexity: O(rows·arity + N).
func VectorFromRecords(index *indexset.IndexSet, rows [][]string, valueCol int) ([]float64, error) {
	if index == nil {
		return nil, fmt.Errorf("VectorFromRecords: %w", indexset.ErrEmptySet)
	}
	arity := index.Arity()
	if valueCol < arity {
		return nil, fmt.Errorf("VectorFromRecords(%q): value column %d overlaps the %d key columns: %w",
			index.Label(), valueCol, arity, ErrBadRecord)
	}

	out := make([]float64, index.Size())
	for i, row := range rows {
		if len(row) <= valueCol {
			return nil, fmt.Errorf("VectorFromRecords(%q): record %d has %d columns, need %d: %w",
				index.Label(), i, len(row), valueCol+1, ErrBadRecord)
		}
		elem := make(indexset.Tuple, arity)
		for j := 0; j < arity; j++ {
			elem[j] = row[j]
		}
		pos, err := index.Position(elem...)
		if err != nil {
			return nil, fmt.Errorf("VectorFromRecords(%q): record %d: %w", index.Label(), i, err)
		}
		v, err := strconv.ParseFloat(row[valueCol], 64)
		if err != nil {
			return nil, fmt.Errorf("VectorFromRecords(%q): record %d value %q: %w",
				index.Label(), i, row[valueCol], ErrBadRecord)
		}
		out[pos] = v
	}

	return out, nil
}

// VectorToRecords exports a dense vector as records in canonical element
// order: the element's label columns followed by the formatted value. The
// first returned record is a header built from the index's position names
// ("pos_0..." when unnamed, the set label for scalar sets) plus the value
// column name (default "value"; override via the optional argument).
//
// Scalar atoms are rendered with %v. Nested tuple components (an index
// crossed from compound operands) have no flat-cell form that survives a
// VectorFromRecords round trip and are rejected with ErrBadRecord; export
// such indices position by position instead.
// Complexity: O(N·arity).
func VectorToRecords(index *indexset.IndexSet, vec []float64, valueName ...string) ([][]string, error) {
	if index == nil {
		return nil, fmt.Errorf("VectorToRecords: %w", indexset.ErrEmptySet)
	}
	if len(vec) != index.Size() {
		return nil, fmt.Errorf("VectorToRecords(%q): %d values for %d elements: %w",
			index.Label(), len(vec), index.Size(), ErrBadRecord)
	}

	valCol := "value"
	if len(valueName) > 0 && valueName[0] != "" {
		valCol = valueName[0]
	}

	arity := index.Arity()
	header := make([]string, 0, arity+1)
	switch {
	case index.IsCompound() && index.Names() != nil:
		header = append(header, index.Names()...)
	case index.IsCompound():
		for j := 0; j < arity; j++ {
			header = append(header, fmt.Sprintf("pos_%d", j))
		}
	case index.Label() != "":
		header = append(header, index.Label())
	default:
		header = append(header, "index")
	}
	header = append(header, valCol)

	out := make([][]string, 0, index.Size()+1)
	out = append(out, header)
	for i := 0; i < index.Size(); i++ {
		elem, err := index.At(i)
		if err != nil {
			return nil, fmt.Errorf("VectorToRecords(%q): %w", index.Label(), err)
		}
		row := make([]string, 0, arity+1)
		for j, a := range elem {
			if _, nested := a.(indexset.Tuple); nested {
				return nil, fmt.Errorf("VectorToRecords(%q): element %d position %d is a nested tuple: %w",
					index.Label(), i, j, ErrBadRecord)
			}
			row = append(row, fmt.Sprintf("%v", a))
		}
		row = append(row, strconv.FormatFloat(vec[i], 'g', -1, 64))
		out = append(out, row)
	}

	return out, nil
}

// recordWidthErr formats the uniform ragged-record failure.
func recordWidthErr(label string, i, got, want int) error {
	return fmt.Errorf("SetFromRecords(%q): record %d has %d columns, want %d: %w",
		label, i, got, want, ErrBadRecord)
}
