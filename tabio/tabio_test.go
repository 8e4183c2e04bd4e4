package tabio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/indexset"
	"github.com/katalvlaran/lvlopt/tabio"
)

//----------------------------------------------------------------------------//
// Set construction from records
//----------------------------------------------------------------------------//

// TestSetFromRecords_Scalar builds a scalar set from width-1 records.
func TestSetFromRecords_Scalar(t *testing.T) {
	s, err := tabio.SetFromRecords("warehouses", [][]string{{"W1"}, {"W2"}, {"W3"}})
	require.NoError(t, err)

	assert.False(t, s.IsCompound())
	assert.Equal(t, 3, s.Size())
	pos, err := s.Position("W2")
	require.NoError(t, err)
	assert.Equal(t, 1, pos)
}

// TestSetFromRecords_Compound builds a named compound set from wide records.
func TestSetFromRecords_Compound(t *testing.T) {
	rows := [][]string{{"W1", "C1"}, {"W1", "C2"}, {"W2", "C1"}}
	s, err := tabio.SetFromRecords("routes", rows, indexset.WithNames("origin", "dest"))
	require.NoError(t, err)

	assert.True(t, s.IsCompound())
	assert.Equal(t, []string{"origin", "dest"}, s.Names())
	pos, err := s.Position("W1", "C2")
	require.NoError(t, err)
	assert.Equal(t, 1, pos)
}

// TestSetFromRecords_ScalarOptions verifies that options reach the scalar
// branch: WithLabel overrides, WithNames fails for want of positions.
func TestSetFromRecords_ScalarOptions(t *testing.T) {
	s, err := tabio.SetFromRecords("draft", [][]string{{"W1"}, {"W2"}},
		indexset.WithLabel("warehouses"))
	require.NoError(t, err)
	assert.Equal(t, "warehouses", s.Label())

	_, err = tabio.SetFromRecords("warehouses", [][]string{{"W1"}},
		indexset.WithNames("origin"))
	assert.ErrorIs(t, err, indexset.ErrArity)
}

// TestSetFromRecords_Errors verifies shape and duplicate enforcement.
func TestSetFromRecords_Errors(t *testing.T) {
	_, err := tabio.SetFromRecords("x", nil)
	assert.ErrorIs(t, err, indexset.ErrEmptySet)

	_, err = tabio.SetFromRecords("x", [][]string{{}})
	assert.ErrorIs(t, err, tabio.ErrBadRecord)

	_, err = tabio.SetFromRecords("x", [][]string{{"a", "b"}, {"c"}})
	assert.ErrorIs(t, err, tabio.ErrBadRecord)

	_, err = tabio.SetFromRecords("x", [][]string{{"a"}, {"a"}})
	assert.ErrorIs(t, err, indexset.ErrDuplicateElement)
}

// TestUniqueSetFromColumn dedupes in first-occurrence order.
func TestUniqueSetFromColumn(t *testing.T) {
	rows := [][]string{
		{"W1", "C1", "10"},
		{"W1", "C2", "15"},
		{"W2", "C1", "20"},
	}
	origins, err := tabio.UniqueSetFromColumn("origins", rows, 0)
	require.NoError(t, err)
	assert.Equal(t, []indexset.Tuple{{"W1"}, {"W2"}}, origins.Elements())

	dests, err := tabio.UniqueSetFromColumn("dests", rows, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, dests.Size())

	_, err = tabio.UniqueSetFromColumn("bad", rows, 5)
	assert.ErrorIs(t, err, tabio.ErrBadRecord)
}

//----------------------------------------------------------------------------//
// Vector import/export
//----------------------------------------------------------------------------//

// TestVectorFromRecords verifies placement, zero-fill, and error modes.
func TestVectorFromRecords(t *testing.T) {
	routes, err := tabio.SetFromRecords("routes",
		[][]string{{"W1", "C1"}, {"W1", "C2"}, {"W2", "C1"}, {"W2", "C2"}},
		indexset.WithNames("origin", "dest"))
	require.NoError(t, err)

	rows := [][]string{
		{"W1", "C1", "10"},
		{"W2", "C2", "25.5"},
	}
	vec, err := tabio.VectorFromRecords(routes, rows, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 0, 0, 25.5}, vec, "unmapped positions zero-fill")

	_, err = tabio.VectorFromRecords(routes, [][]string{{"W9", "C1", "1"}}, 2)
	assert.ErrorIs(t, err, indexset.ErrKeyNotFound)

	_, err = tabio.VectorFromRecords(routes, [][]string{{"W1", "C1", "ten"}}, 2)
	assert.ErrorIs(t, err, tabio.ErrBadRecord)

	_, err = tabio.VectorFromRecords(routes, [][]string{{"W1", "C1"}}, 2)
	assert.ErrorIs(t, err, tabio.ErrBadRecord, "missing value column")

	_, err = tabio.VectorFromRecords(routes, rows, 1)
	assert.ErrorIs(t, err, tabio.ErrBadRecord, "value column inside key columns")
}

// TestVectorToRecords verifies canonical order and header derivation.
func TestVectorToRecords(t *testing.T) {
	routes, err := tabio.SetFromRecords("routes",
		[][]string{{"W1", "C1"}, {"W1", "C2"}, {"W2", "C1"}},
		indexset.WithNames("origin", "dest"))
	require.NoError(t, err)

	rows, err := tabio.VectorToRecords(routes, []float64{10, 15, 20})
	require.NoError(t, err)
	want := [][]string{
		{"origin", "dest", "value"},
		{"W1", "C1", "10"},
		{"W1", "C2", "15"},
		{"W2", "C1", "20"},
	}
	assert.Equal(t, want, rows)

	_, err = tabio.VectorToRecords(routes, []float64{1})
	assert.ErrorIs(t, err, tabio.ErrBadRecord)
}

// TestVectorToRecords_Headers covers the fallback header forms.
func TestVectorToRecords_Headers(t *testing.T) {
	scalar, err := tabio.SetFromRecords("warehouses", [][]string{{"W1"}, {"W2"}})
	require.NoError(t, err)
	rows, err := tabio.VectorToRecords(scalar, []float64{1, 2}, "supply")
	require.NoError(t, err)
	assert.Equal(t, []string{"warehouses", "supply"}, rows[0])

	unnamed, err := tabio.SetFromRecords("pairs", [][]string{{"a", "x"}, {"b", "y"}})
	require.NoError(t, err)
	rows, err = tabio.VectorToRecords(unnamed, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"pos_0", "pos_1", "value"}, rows[0])
}

// TestVectorToRecords_NestedComponent rejects indices whose elements carry
// nested tuples: no flat cell survives an import round trip.
func TestVectorToRecords_NestedComponent(t *testing.T) {
	routes, err := indexset.NewCompound("routes",
		[]indexset.Tuple{{"W1", "C1"}, {"W2", "C1"}})
	require.NoError(t, err)
	periods, err := indexset.New("periods", []indexset.Atom{"Jan"})
	require.NoError(t, err)
	shipments, err := indexset.Cross(
		[]*indexset.IndexSet{routes, periods},
		indexset.WithLabel("shipments"),
	)
	require.NoError(t, err)

	_, err = tabio.VectorToRecords(shipments, []float64{1, 2})
	assert.ErrorIs(t, err, tabio.ErrBadRecord)
}

// TestRoundTrip_RecordsVectorRecords verifies export/import closure.
func TestRoundTrip_RecordsVectorRecords(t *testing.T) {
	routes, err := tabio.SetFromRecords("routes",
		[][]string{{"W1", "C1"}, {"W1", "C2"}, {"W2", "C1"}, {"W2", "C2"}},
		indexset.WithNames("origin", "dest"))
	require.NoError(t, err)

	vec := []float64{10, 15, 20, 25}
	rows, err := tabio.VectorToRecords(routes, vec)
	require.NoError(t, err)

	back, err := tabio.VectorFromRecords(routes, rows[1:], 2) // skip header
	require.NoError(t, err)
	assert.Equal(t, vec, back)
}

//----------------------------------------------------------------------------//
// CSV adapters
//----------------------------------------------------------------------------//

// TestCSV_RoundTrip verifies the encoding/csv adapters end to end.
func TestCSV_RoundTrip(t *testing.T) {
	in := "origin,dest,cost\nW1,C1,10\nW1,C2,15\n"
	rows, err := tabio.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"W1", "C2", "15"}, rows[2])

	var sb strings.Builder
	require.NoError(t, tabio.WriteCSV(&sb, rows))
	assert.Equal(t, in, sb.String())
}
