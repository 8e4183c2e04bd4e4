// Package tabio converts between flat label/value tables (string records,
// CSV) and the index/vector representation of the algebra. Pure format
// conversion — no algebra lives here.
//
// What:
//
//   - SetFromRecords: one record per element; single-column records build
//     a scalar set, wider records build a compound set.
//   - UniqueSetFromColumn: first-occurrence unique values of one column.
//   - VectorFromRecords: key columns + one value column into a dense
//     vector over an existing IndexSet, zero-filling unmapped positions.
//   - VectorToRecords: a dense vector back into records in canonical
//     element order, with a header derived from position names.
//   - ReadCSV / WriteCSV: thin encoding/csv adapters over the record form.
//
// Why:
//
//   - Model data arrives as tables (costs per route, capacities per site);
//     solutions leave as tables. This package is that boundary.
//
// Errors:
//
//   - ErrBadRecord: ragged width, missing columns, or unparsable numbers.
//   - indexset sentinels propagate from set construction and key lookup
//     (ErrDuplicateElement, ErrKeyNotFound, ...).
//
// Atoms crossing this boundary are strings; numeric atom kinds are an
// in-memory concern of the indexset API.
package tabio
