// File: indexset/example_test.go
package indexset_test

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/indexset"
)

////////////////////////////////////////////////////////////////////////////////
// Example: building and addressing a scalar set
////////////////////////////////////////////////////////////////////////////////

// ExampleNew demonstrates the canonical flat-vector addressing of a scalar
// index set: construction order defines positions.
func ExampleNew() {
	warehouses, _ := indexset.New("warehouses", []indexset.Atom{"W1", "W2", "W3"})

	fmt.Println("size:", warehouses.Size())
	for _, elem := range warehouses.Elements() {
		pos, _ := warehouses.Position(elem...)
		fmt.Printf("%v -> %d\n", elem[0], pos)
	}

	// Output:
	// size: 3
	// W1 -> 0
	// W2 -> 1
	// W3 -> 2
}

////////////////////////////////////////////////////////////////////////////////
// Example: cross-products with named positions
////////////////////////////////////////////////////////////////////////////////

// ExampleCross demonstrates the nested lexicographic product order and
// position names inherited from operand labels.
// Scenario:
//
//   - warehouses = {W1, W2}, customers = {C1, C2}
//   - routes = warehouses × customers, first operand varies slowest
func ExampleCross() {
	warehouses, _ := indexset.New("warehouses", []indexset.Atom{"W1", "W2"})
	customers, _ := indexset.New("customers", []indexset.Atom{"C1", "C2"})

	routes, _ := indexset.Cross(
		[]*indexset.IndexSet{warehouses, customers},
		indexset.WithLabel("routes"),
	)

	fmt.Println("names:", routes.Names())
	for i := 0; i < routes.Size(); i++ {
		elem, _ := routes.At(i)
		fmt.Printf("%d: (%v,%v)\n", i, elem[0], elem[1])
	}

	// Output:
	// names: [warehouses customers]
	// 0: (W1,C1)
	// 1: (W1,C2)
	// 2: (W2,C1)
	// 3: (W2,C2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: resolving positions by name
////////////////////////////////////////////////////////////////////////////////

// ExampleIndexSet_ResolvePos shows int and name references resolving to the
// same offset.
func ExampleIndexSet_ResolvePos() {
	routes, _ := indexset.NewCompound("routes",
		[]indexset.Tuple{{"W1", "C1"}, {"W2", "C1"}},
		indexset.WithNames("origin", "dest"),
	)

	byName, _ := routes.ResolvePos("dest")
	byOffset, _ := routes.ResolvePos(1)
	fmt.Println(byName == byOffset, byName)

	// Output:
	// true 1
}
