// Package indexset: functional configuration for set constructors.
//
// Design goals (mirrors the package-wide conventions):
//   - Deterministic behavior: no global state, options only set fields.
//   - Options fields are unexported; public APIs consume ...Option.
//   - Validation happens in constructors, which own the sentinel errors.
package indexset

// Option mutates constructor options. Applied in call order; the last
// write wins.
type Option func(*options)

// options is the internal option state gathered before construction.
type options struct {
	label string   // overriding label for Cross / NewCompound
	names []string // per-position names for compound sets
}

// WithLabel sets the informational label of the constructed set.
// An empty label means "unlabeled"; no identity-derived default is ever
// generated, so diagnostics stay deterministic across processes.
func WithLabel(label string) Option {
	return func(o *options) { o.label = label }
}

// WithNames sets per-position names for a compound set, enabling name
// references ("origin") wherever a PosRef is accepted. The name count must
// equal the set's arity; constructors enforce this with ErrArity.
func WithNames(names ...string) Option {
	return func(o *options) {
		o.names = make([]string, len(names))
		copy(o.names, names)
	}
}

// gatherOptions folds option functions into a fresh options value.
func gatherOptions(optFns ...Option) options {
	var o options
	for _, fn := range optFns {
		fn(&o)
	}

	return o
}
