package indexset

import (
	"fmt"
)

// setErrorf wraps a sentinel with call-site context, preserving errors.Is.
func setErrorf(op, label string, err error) error {
	if label == "" {
		return fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Errorf("%s(%q): %w", op, label, err)
}

// New constructs a scalar IndexSet from an ordered atom sequence.
// Stage 1 (Validate): non-empty input; atoms are legal scalar kinds.
// Stage 2 (Build): wrap each atom as a one-atom tuple, assign positions.
// Stage 3 (Finalize): return the immutable set.
//
// The input order is canonical and defines the flat vector order of every
// numeric vector addressed by this set. Duplicate atoms are rejected with
// ErrDuplicateElement; tuple atoms are rejected with ErrArity (scalar sets
// hold scalars — use NewCompound for tuple elements). Of the options only
// WithLabel applies; WithNames is rejected with ErrArity since scalar sets
// have no tuple positions to name.
// Complexity: O(n), Memory: O(n).
func New(label string, atoms []Atom, optFns ...Option) (*IndexSet, error) {
	opts := gatherOptions(optFns...)
	if opts.label != "" {
		label = opts.label
	}
	if opts.names != nil {
		return nil, fmt.Errorf("New(%q): %d names for a scalar set: %w",
			label, len(opts.names), ErrArity)
	}
	if len(atoms) == 0 {
		return nil, setErrorf("New", label, ErrEmptySet)
	}

	s := &IndexSet{
		label:    label,
		arity:    1,
		compound: false,
		elems:    make([]Tuple, 0, len(atoms)),
		pos:      make(map[string]int, len(atoms)),
	}
	for i, a := range atoms {
		if _, isTuple := a.(Tuple); isTuple {
			return nil, setErrorf("New", label, ErrArity)
		}
		k, err := Key(a)
		if err != nil {
			return nil, setErrorf("New", label, err)
		}
		if _, dup := s.pos[k]; dup {
			return nil, fmt.Errorf("New(%q): element %v: %w", label, a, ErrDuplicateElement)
		}
		s.pos[k] = i
		s.elems = append(s.elems, Tuple{a})
	}

	return s, nil
}

// NewCompound constructs a compound IndexSet from an ordered tuple
// sequence. All tuples must share the same arity (>= 1); position names,
// when supplied via WithNames, must match that arity.
// Duplicate tuples are rejected with ErrDuplicateElement.
// Complexity: O(n·arity), Memory: O(n·arity).
func NewCompound(label string, tuples []Tuple, optFns ...Option) (*IndexSet, error) {
	opts := gatherOptions(optFns...)
	if opts.label != "" {
		label = opts.label
	}
	if len(tuples) == 0 {
		return nil, setErrorf("NewCompound", label, ErrEmptySet)
	}

	arity := len(tuples[0])
	if arity == 0 {
		return nil, setErrorf("NewCompound", label, ErrArity)
	}
	if opts.names != nil && len(opts.names) != arity {
		return nil, fmt.Errorf("NewCompound(%q): %d names for arity %d: %w",
			label, len(opts.names), arity, ErrArity)
	}

	s := &IndexSet{
		label:    label,
		names:    opts.names,
		arity:    arity,
		compound: true,
		elems:    make([]Tuple, 0, len(tuples)),
		pos:      make(map[string]int, len(tuples)),
	}
	for i, t := range tuples {
		if len(t) != arity {
			return nil, fmt.Errorf("NewCompound(%q): element %d has arity %d, want %d: %w",
				label, i, len(t), arity, ErrArity)
		}
		k, err := Key(t...)
		if err != nil {
			return nil, setErrorf("NewCompound", label, err)
		}
		if _, dup := s.pos[k]; dup {
			return nil, fmt.Errorf("NewCompound(%q): element %v: %w", label, t, ErrDuplicateElement)
		}
		s.pos[k] = i
		elem := make(Tuple, arity)
		copy(elem, t)
		s.elems = append(s.elems, elem)
	}

	return s, nil
}

// Size returns the number of elements. Complexity: O(1).
func (s *IndexSet) Size() int { return len(s.elems) }

// Label returns the informational name ("" when unlabeled). Complexity: O(1).
func (s *IndexSet) Label() string { return s.label }

// IsCompound reports whether elements are tuples. Complexity: O(1).
func (s *IndexSet) IsCompound() bool { return s.compound }

// Arity returns the number of atoms per element (1 for scalar sets).
// Complexity: O(1).
func (s *IndexSet) Arity() int { return s.arity }

// Names returns a copy of the per-position names, or nil when the set is
// scalar or unnamed. Complexity: O(arity).
func (s *IndexSet) Names() []string {
	if s.names == nil {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)

	return out
}

// Position returns the integer offset of an element. Scalar sets take one
// atom; compound sets take arity atoms (or a spread Tuple). Returns
// ErrKeyNotFound when the element was never part of the construction
// sequence, including atoms of unencodable kinds.
// Complexity: O(arity).
func (s *IndexSet) Position(elem ...Atom) (int, error) {
	k, err := Key(elem...)
	if err != nil {
		return 0, fmt.Errorf("Position(%q): element %v: %w", s.label, elem, ErrKeyNotFound)
	}
	i, ok := s.pos[k]
	if !ok {
		return 0, fmt.Errorf("Position(%q): element %v: %w", s.label, elem, ErrKeyNotFound)
	}

	return i, nil
}

// Contains reports membership of an element. Complexity: O(arity).
func (s *IndexSet) Contains(elem ...Atom) bool {
	k, err := Key(elem...)
	if err != nil {
		return false
	}
	_, ok := s.pos[k]

	return ok
}

// At returns a copy of the element at position i — the explicit positional
// counterpart of key-based Position lookup. Returns ErrOutOfRange when i
// lies outside [0, Size).
// Complexity: O(arity).
func (s *IndexSet) At(i int) (Tuple, error) {
	if i < 0 || i >= len(s.elems) {
		return nil, fmt.Errorf("At(%q): position %d of %d: %w", s.label, i, len(s.elems), ErrOutOfRange)
	}
	out := make(Tuple, s.arity)
	copy(out, s.elems[i])

	return out, nil
}

// Elements returns a copy of all elements in canonical order. Scalar sets
// yield one-atom tuples. Complexity: O(n·arity).
func (s *IndexSet) Elements() []Tuple {
	out := make([]Tuple, len(s.elems))
	for i, e := range s.elems {
		t := make(Tuple, len(e))
		copy(t, e)
		out[i] = t
	}

	return out
}

// ResolvePos maps a position reference (int offset or name string) to a
// zero-based offset within a compound element. Fails with
// ErrUnknownPosition when the set is not compound, the offset is outside
// [0, arity), the set has no names, or the name is absent.
// Complexity: O(arity).
func (s *IndexSet) ResolvePos(ref PosRef) (int, error) {
	if !s.compound {
		return 0, fmt.Errorf("ResolvePos(%q): scalar set has no positions: %w", s.label, ErrUnknownPosition)
	}
	switch v := ref.(type) {
	case int:
		if v < 0 || v >= s.arity {
			return 0, fmt.Errorf("ResolvePos(%q): offset %d of arity %d: %w", s.label, v, s.arity, ErrUnknownPosition)
		}

		return v, nil
	case string:
		for i, n := range s.names {
			if n == v {
				return i, nil
			}
		}

		return 0, fmt.Errorf("ResolvePos(%q): name %q not in %v: %w", s.label, v, s.names, ErrUnknownPosition)
	default:
		return 0, fmt.Errorf("ResolvePos(%q): reference %v (%T): %w", s.label, ref, ref, ErrUnknownPosition)
	}
}

// String renders a short diagnostic form: label, size, arity.
func (s *IndexSet) String() string {
	if s.compound {
		return fmt.Sprintf("IndexSet(%q, %d elements, arity %d)", s.label, len(s.elems), s.arity)
	}

	return fmt.Sprintf("IndexSet(%q, %d elements)", s.label, len(s.elems))
}
