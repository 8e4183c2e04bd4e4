// Package indexset: domain types shared across constructors and operators.
package indexset

// Atom is one scalar label within an element. Atoms must be comparable and
// encodable: string, any int/uint width, bool, float32/float64, or a
// nested Tuple (produced by Cross over compound operands). Anything else
// is rejected at construction with ErrUnsupportedAtom.
type Atom = any

// Tuple is one compound element: a fixed-arity ordered sequence of atoms.
// Scalar sets store their elements as one-atom tuples internally, so every
// accessor returns Tuple regardless of arity.
type Tuple []Atom

// PosRef references a tuple position either by zero-based integer offset
// or by its name (string). Resolution happens in IndexSet.ResolvePos.
type PosRef = any

// IndexSet is an ordered, duplicate-free collection of elements with a
// bijective element→position map. Immutable once constructed; safe for
// concurrent readers.
type IndexSet struct {
	label    string         // informational name for diagnostics ("" = unlabeled)
	names    []string       // per-position names (compound sets only, may be nil)
	arity    int            // atoms per element (1 for scalar sets)
	compound bool           // true iff elements are tuples
	elems    []Tuple        // canonical order; defines the flat vector order
	pos      map[string]int // canonical element key -> position
}
