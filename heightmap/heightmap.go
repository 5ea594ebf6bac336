package heightmap

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"iter"
	"math"

	"github.com/katalvlaran/hillclimb/elevation"
)

// New constructs a Grid from a non-empty, rectangular set of rows.
// It deep-copies the input to ensure immutability and resolves every symbol
// to its elevation up front.
// Returns ErrEmptyGrid, ErrIrregularGrid, or a wrapped elevation.ErrInvalidSymbol.
// Complexity: O(R×C) time and memory.
func New(rows [][]byte) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrIrregularGrid, r, len(row), w)
		}
	}

	g := &Grid{
		rows:    h,
		cols:    w,
		symbols: make([]byte, 0, h*w),
		levels:  make([]elevation.Level, 0, h*w),
	}
	for r, row := range rows {
		for c, sym := range row {
			lvl, err := elevation.Of(sym)
			if err != nil {
				return nil, fmt.Errorf("heightmap: cell %v: %w", Coordinate{r, c}, err)
			}
			g.symbols = append(g.symbols, sym)
			g.levels = append(g.levels, lvl)
		}
	}

	return g, nil
}

// Parse builds a Grid from newline-delimited text.
// A trailing '\r' on each line is dropped and trailing blank lines are ignored.
func Parse(data []byte) (*Grid, error) {
	lines := bytes.Split(data, []byte{'\n'})
	for i, line := range lines {
		lines[i] = bytes.TrimSuffix(line, []byte{'\r'})
	}
	for len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}

	return New(lines)
}

// Read consumes r line by line and builds a Grid, as Parse does.
func Read(r io.Reader) (*Grid, error) {
	var lines [][]byte
	sc := bufio.NewScanner(r)
	// rows are not bounded by the default token size
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for sc.Scan() {
		// Scanner reuses its buffer
		line := bytes.Clone(sc.Bytes())
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("heightmap: read: %w", err)
	}
	for len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}

	return New(lines)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.cols }

// Len returns the number of cells, Rows()*Columns().
func (g *Grid) Len() int { return g.rows * g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index maps an in-bounds c to its row-major index: row*Columns + col.
// The result is meaningless for out-of-bounds coordinates.
func (g *Grid) Index(c Coordinate) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coordinate.
func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{Row: idx / g.cols, Col: idx % g.cols}
}

// Symbol returns the raw byte stored at c.
func (g *Grid) Symbol(c Coordinate) (byte, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	return g.symbols[g.Index(c)], nil
}

// Elevation returns the elevation of the cell at c.
// Returns ErrOutOfBounds if c is outside the grid.
func (g *Grid) Elevation(c Coordinate) (elevation.Level, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	return g.levels[g.Index(c)], nil
}

// LevelAt returns the elevation of an in-bounds coordinate without checking.
// Callers must only pass coordinates produced by this Grid.
func (g *Grid) LevelAt(c Coordinate) elevation.Level {
	return g.levels[g.Index(c)]
}

// Neighbors returns the in-bounds orthogonal neighbors of c in the order
// up, down, left, right. Corners yield 2 cells, edges 3, interior cells 4.
func (g *Grid) Neighbors(c Coordinate) []Coordinate {
	return g.AppendNeighbors(make([]Coordinate, 0, len(offsets)), c)
}

// AppendNeighbors appends the neighbors of c to dst and returns the extended slice.
// Hot loops reuse dst to stay allocation-free.
func (g *Grid) AppendNeighbors(dst []Coordinate, c Coordinate) []Coordinate {
	for _, d := range offsets {
		n := Coordinate{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

// Find locates the unique cell holding symbol.
// Returns ErrMissingMarker if it is absent and ErrDuplicateMarker if it
// appears more than once.
func (g *Grid) Find(symbol byte) (Coordinate, error) {
	idx := bytes.IndexByte(g.symbols, symbol)
	if idx < 0 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrMissingMarker, symbol)
	}
	if bytes.IndexByte(g.symbols[idx+1:], symbol) >= 0 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrDuplicateMarker, symbol)
	}
	return g.Coordinate(idx), nil
}

// FindAll yields every cell holding symbol in row-major order.
// Each iteration rescans the grid; nothing is cached.
func (g *Grid) FindAll(symbol byte) iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for i, s := range g.symbols {
			if s == symbol && !yield(g.Coordinate(i)) {
				return
			}
		}
	}
}

// Lowest yields every cell at elevation.Min in row-major order, which
// includes the start marker as well as every 'a'.
func (g *Grid) Lowest() iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for i, lvl := range g.levels {
			if lvl == elevation.Min && !yield(g.Coordinate(i)) {
				return
			}
		}
	}
}
