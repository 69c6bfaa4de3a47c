package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a movement left the grid.
	ErrOutOfBounds = errors.New("gridgraph: moving out of grid bounds")
	// ErrSymbolNotFound indicates Find did not locate the requested symbol.
	ErrSymbolNotFound = errors.New("gridgraph: symbol not found")
)
