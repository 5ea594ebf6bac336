package heightmap

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hillclimb/elevation"
)

// Sentinel errors for heightmap operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("heightmap: input grid must have at least one row and one column")
	// ErrIrregularGrid indicates rows of differing lengths.
	ErrIrregularGrid = errors.New("heightmap: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("heightmap: coordinate out of bounds")
	// ErrMissingMarker indicates Find did not locate the requested symbol.
	ErrMissingMarker = errors.New("heightmap: marker not found")
	// ErrDuplicateMarker indicates Find located the requested symbol more than once.
	ErrDuplicateMarker = errors.New("heightmap: marker occurs more than once")
)

// Coordinate addresses a cell by zero-based row and column.
type Coordinate struct {
	Row, Col int
}

// String formats c as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// offsets lists orthogonal neighbor deltas as {dRow, dCol}: up, down, left, right.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is an immutable rectangular heightmap.
// symbols and levels are row-major; index = row*cols + col.
type Grid struct {
	rows, cols int
	symbols    []byte
	levels     []elevation.Level
}
