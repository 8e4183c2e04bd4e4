// Package lvlopt is a named, multi-dimensional index algebra for the flat
// numeric vectors that carry decision variables and coefficients in a
// linear-optimization model.
//
// 🚀 What is lvlopt?
//
//	A deterministic, pure-Go toolkit that lets a modeler work with labels
//	instead of raw integer offsets:
//		• Index sets: ordered, duplicate-free label collections with O(1)
//		  element→position lookup
//		• Cross-products: Cartesian composition of sets into compound,
//		  position-named keys ("shipments[origin, dest, period]")
//		• Group-by aggregation: sparse 0/1 operators that fold a
//		  per-element vector into per-group sums (sum_by)
//		• Masks: 0/1 gating vectors from arrays, predicates, or named
//		  position filters (where)
//		• Broadcast: copy a lower-dimensional value across a
//		  higher-dimensional index by sub-key lookup (expand)
//
// ✨ Why choose lvlopt?
//
//   - Deterministic by contract – element and group orders are fixed and
//     reproducible across runs, never hash-dependent
//   - Rock-solid guarantees – immutable sets, sentinel errors, no panics
//     on user input
//   - Pure Go – no cgo, no hidden deps
//   - Solver-agnostic – the algebra only structures vectors and sparse
//     operators; any expression engine can evaluate them
//
// Everything is organized under five subpackages:
//
//	indexset/ — ordered sets, compound keys, cross-products
//	linop/    — aggregation matrices (GroupBy), masks (Mask), broadcast (Expand)
//	expr/     — the expression-engine boundary + a reference dense engine
//	indexed/  — Variable/Parameter facades addressed by label
//	tabio/    — flat table (records/CSV) import and export
//
// Quick ASCII example:
//
//	    warehouses × customers = routes
//	    {W1,W2}    × {C1,C2}   = {(W1,C1),(W1,C2),(W2,C1),(W2,C2)}
//
//	sum_by(ship, "origin") folds the 4 route entries into 2 per-warehouse
//	totals; expand(cost, routes, 0) copies per-warehouse costs back out.
//
// Dive into examples/ for full transportation, capacity-planning, and
// CSV-pipeline walkthroughs.
//
//	go get github.com/katalvlaran/lvlopt
package lvlopt
