// File: linop/example_test.go
package linop_test

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/indexset"
	"github.com/katalvlaran/lvlopt/linop"
)

////////////////////////////////////////////////////////////////////////////////
// Example: GroupBy (sum_by)
////////////////////////////////////////////////////////////////////////////////

// ExampleGroupBy demonstrates folding per-route shipments into per-origin
// totals.
// Scenario:
//
//   - routes = warehouses × customers, named (origin, dest)
//   - ship = [1, 2, 3, 4] in route order
//   - sum_by origin: W1 collects 1+2, W2 collects 3+4
func ExampleGroupBy() {
	warehouses, _ := indexset.New("warehouses", []indexset.Atom{"W1", "W2"})
	customers, _ := indexset.New("customers", []indexset.Atom{"C1", "C2"})
	routes, _ := indexset.Cross(
		[]*indexset.IndexSet{warehouses, customers},
		indexset.WithLabel("routes"),
		indexset.WithNames("origin", "dest"),
	)

	agg, _ := linop.GroupBy(routes, "origin")
	sums, _ := agg.Apply([]float64{1, 2, 3, 4})

	for g, elem := range agg.Groups.Elements() {
		fmt.Printf("%v: %v\n", elem[0], sums[g])
	}

	// Output:
	// W1: 3
	// W2: 7
}

////////////////////////////////////////////////////////////////////////////////
// Example: Mask (where)
////////////////////////////////////////////////////////////////////////////////

// ExampleMask demonstrates zeroing shipments on closed routes via a named
// filter.
func ExampleMask() {
	warehouses, _ := indexset.New("warehouses", []indexset.Atom{"W1", "W2"})
	customers, _ := indexset.New("customers", []indexset.Atom{"C1", "C2"})
	routes, _ := indexset.Cross(
		[]*indexset.IndexSet{warehouses, customers},
		indexset.WithNames("origin", "dest"),
	)

	open, _ := linop.Mask(linop.ByFilters(linop.Filters{"origin": {"W1"}}), routes)
	ship := []float64{5, 6, 7, 8}
	kept, _ := linop.ApplyMask(open, ship)

	fmt.Println("mask:", open)
	fmt.Println("kept:", kept)

	// Output:
	// mask: [1 1 0 0]
	// kept: [5 6 0 0]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Expand
////////////////////////////////////////////////////////////////////////////////

// ExampleExpand demonstrates broadcasting per-warehouse handling costs onto
// every route leaving the warehouse — the structural inverse of GroupBy.
func ExampleExpand() {
	warehouses, _ := indexset.New("warehouses", []indexset.Atom{"W1", "W2"})
	customers, _ := indexset.New("customers", []indexset.Atom{"C1", "C2"})
	routes, _ := indexset.Cross(
		[]*indexset.IndexSet{warehouses, customers},
		indexset.WithNames("origin", "dest"),
	)

	perWarehouse := []float64{10, 20} // W1, W2
	perRoute, _ := linop.Expand(perWarehouse, warehouses, routes, "origin")

	fmt.Println(perRoute)

	// Output:
	// [10 10 20 20]
}
