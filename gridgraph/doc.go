// Package gridgraph models a finite rectangular grid of single-byte cell
// symbols and the movement primitives every grid search in this module is
// built on.
//
// What:
//
//   - Grid wraps a rectangular [][]byte parsed from puzzle text.
//   - Coord addresses a cell by (Row, Col); Direction names the four
//     orthogonal headings and their deltas.
//   - Move performs a bounds-checked step and reports ErrOutOfBounds
//     instead of wrapping or panicking.
//   - MoveWrapped/AtWrapped treat the grid as an infinitely repeated tile,
//     tracking true unbounded coordinates while indexing the backing grid
//     by Euclidean modulo.
//
// Why:
//
//   - Beam propagation, pipe loops, crucible routing and plot reachability
//     all reduce to "step from a cell in a direction, if the grid allows".
//   - Treating an off-grid step as a recoverable error keeps transition
//     functions total: a failed Move simply contributes no successor.
//
// Complexity:
//
//   - Parse/New/Clone: O(R×C) time and memory.
//   - At, Move, MoveWrapped, InBounds: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a movement left [0,Rows)×[0,Cols).
//   - ErrSymbolNotFound: Find could not locate the requested symbol.
package gridgraph
