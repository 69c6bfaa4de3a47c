package gridgraph

import (
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later mutation of rows does not leak in.
// Returns ErrEmptyGrid or ErrNonRectangular on invalid shape.
// Complexity: O(R×C) time and memory.
func New(rows [][]byte) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([][]byte, h)
	for r, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells[r] = make([]byte, w)
		copy(cells[r], row)
	}

	return &Grid{Rows: h, Cols: w, Cells: cells}, nil
}

// Parse builds a Grid from newline-separated text. Each line is trimmed of
// surrounding whitespace and blank lines are skipped, so indented literals
// in tests parse the same as raw input files.
func Parse(text string) (*Grid, error) {
	var rows [][]byte
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, []byte(line))
	}

	return New(rows)
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(text string) *Grid {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}

// Dimensions returns (rows, cols).
func (g *Grid) Dimensions() (rows, cols int) {
	return g.Rows, g.Cols
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// At returns the symbol at c. The caller guarantees c is in bounds;
// coordinates obtained from Move always are.
func (g *Grid) At(c Coord) byte {
	return g.Cells[c.Row][c.Col]
}

// Set overwrites the symbol at c. Only the exclusive owner of g may call it.
func (g *Grid) Set(c Coord, v byte) {
	g.Cells[c.Row][c.Col] = v
}

// Move steps once from c in direction d.
// Returns ErrOutOfBounds if the target leaves [0,Rows)×[0,Cols).
func (g *Grid) Move(c Coord, d Direction) (Coord, error) {
	dr, dc := d.Delta()
	next := c.Add(dr, dc)
	if !g.InBounds(next) {
		return c, ErrOutOfBounds
	}
	return next, nil
}

// MoveWrapped steps once from c in direction d on the unbounded plane.
// The result is a true coordinate; use AtWrapped to read the tile under it.
func (g *Grid) MoveWrapped(c Coord, d Direction) Coord {
	dr, dc := d.Delta()
	return c.Add(dr, dc)
}

// AtWrapped returns the symbol under an unbounded coordinate, treating the
// grid as infinitely repeated in every direction.
func (g *Grid) AtWrapped(c Coord) byte {
	return g.Cells[mod(c.Row, g.Rows)][mod(c.Col, g.Cols)]
}

// Neighbors returns the in-bounds orthogonal neighbours of c in
// North, East, South, West order.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(Directions))
	for _, d := range Directions {
		if n, err := g.Move(c, d); err == nil {
			out = append(out, n)
		}
	}
	return out
}

// Find returns the first cell, in row-major order, holding symbol.
func (g *Grid) Find(symbol byte) (Coord, error) {
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.Cells[r][c] == symbol {
				return Coord{Row: r, Col: c}, nil
			}
		}
	}
	return Coord{}, ErrSymbolNotFound
}

// Clone returns a deep copy of g that the caller owns exclusively.
func (g *Grid) Clone() *Grid {
	cells := make([][]byte, g.Rows)
	for r := range g.Cells {
		cells[r] = make([]byte, g.Cols)
		copy(cells[r], g.Cells[r])
	}
	return &Grid{Rows: g.Rows, Cols: g.Cols, Cells: cells}
}

// String renders the grid as newline-separated rows without a trailing newline.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Rows * (g.Cols + 1))
	for r, row := range g.Cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(row)
	}
	return sb.String()
}

// mod is the Euclidean remainder, always in [0, m).
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
