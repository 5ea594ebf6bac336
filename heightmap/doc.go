// Package heightmap treats a rectangular buffer of elevation symbols as an
// immutable grid graph with orthogonal adjacency.
//
// What:
//
//   - Grid wraps a row-major copy of the input symbols plus their precomputed
//     elevation.Level values.
//   - Neighbors enumerates in-bounds cells in the fixed order up, down, left, right.
//   - Find locates a unique marker; FindAll and Lowest lazily scan for matches.
//
// Why:
//
//   - Search engines need O(1) elevation lookups and a deterministic adjacency order
//     so that traversal results are reproducible.
//
// Complexity:
//
//   - New, Parse, Read: O(R×C) time and memory.
//   - Elevation, InBounds, Neighbors: O(1).
//   - Find, FindAll, Lowest: O(R×C) per scan.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrIrregularGrid: rows have differing lengths.
//   - elevation.ErrInvalidSymbol: a cell holds an unknown byte.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
//   - ErrMissingMarker / ErrDuplicateMarker: Find could not locate a unique cell.
package heightmap
