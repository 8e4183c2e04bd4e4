package indexset

import (
	"strconv"
	"strings"
)

// Canonical element encoding.
//
// Position lookup hashes elements by a canonical string fingerprint rather
// than by the atoms themselves, because Go map keys cannot hold variable-
// arity tuples (slices are not comparable). The encoding is collision-free
// by construction:
//
//   - strings are length-framed ("s2:W1") so no separator can be forged,
//   - numeric kinds carry a kind tag ("i-3;", "u7;", "f0.5;", "b1;"),
//   - nested tuples are parenthesized recursively ("(s2:W1s2:C1)").
//
// The same fingerprint is exported through Key so downstream operators
// (grouping, masking) can deduplicate sub-keys with identical semantics.

// Key returns the canonical, collision-free string encoding of an element.
// It is exactly the encoding IndexSets use internally for position lookup,
// which makes it suitable for building group maps keyed by element value.
// Returns ErrUnsupportedAtom for atoms outside the legal kinds.
// Complexity: O(arity) including nested tuples.
func Key(elem ...Atom) (string, error) {
	var b strings.Builder
	for _, a := range elem {
		if err := appendAtom(&b, a); err != nil {
			return "", err
		}
	}

	return b.String(), nil
}

// appendAtom writes the canonical encoding of a single atom into b.
// Every branch emits a kind tag plus an unambiguous payload terminator.
func appendAtom(b *strings.Builder, a Atom) error {
	switch v := a.(type) {
	case string:
		b.WriteByte('s')
		b.WriteString(strconv.Itoa(len(v)))
		b.WriteByte(':')
		b.WriteString(v)
	case int:
		writeInt(b, int64(v))
	case int8:
		writeInt(b, int64(v))
	case int16:
		writeInt(b, int64(v))
	case int32:
		writeInt(b, int64(v))
	case int64:
		writeInt(b, v)
	case uint:
		writeUint(b, uint64(v))
	case uint8:
		writeUint(b, uint64(v))
	case uint16:
		writeUint(b, uint64(v))
	case uint32:
		writeUint(b, uint64(v))
	case uint64:
		writeUint(b, v)
	case bool:
		b.WriteByte('b')
		if v {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
		b.WriteByte(';')
	case float32:
		writeFloat(b, float64(v))
	case float64:
		writeFloat(b, v)
	case Tuple:
		b.WriteByte('(')
		for _, inner := range v {
			if err := appendAtom(b, inner); err != nil {
				return err
			}
		}
		b.WriteByte(')')
	default:
		return ErrUnsupportedAtom
	}

	return nil
}

// writeInt emits a signed integer atom: "i<decimal>;".
func writeInt(b *strings.Builder, v int64) {
	b.WriteByte('i')
	b.WriteString(strconv.FormatInt(v, 10))
	b.WriteByte(';')
}

// writeUint emits an unsigned integer atom: "u<decimal>;".
func writeUint(b *strings.Builder, v uint64) {
	b.WriteByte('u')
	b.WriteString(strconv.FormatUint(v, 10))
	b.WriteByte(';')
}

// writeFloat emits a float atom with the shortest round-trip form: "f<g>;".
func writeFloat(b *strings.Builder, v float64) {
	b.WriteByte('f')
	b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	b.WriteByte(';')
}
