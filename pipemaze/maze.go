package pipemaze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/snowops/bfs"
	"github.com/katalvlaran/snowops/gridgraph"
)

var (
	// ErrBadSymbol indicates a tile that is not a pipe, '.' or 'S'.
	ErrBadSymbol = errors.New("pipemaze: unexpected symbol")
	// ErrNoStart indicates the sketch has no 'S' tile.
	ErrNoStart = errors.New("pipemaze: no start tile")
	// ErrMultipleStarts indicates more than one 'S' tile.
	ErrMultipleStarts = errors.New("pipemaze: more than one start tile")
	// ErrOpenLoop indicates the pipes from the start do not close.
	ErrOpenLoop = errors.New("pipemaze: loop through start is not closed")
	// ErrStartShape indicates the start does not have exactly two
	// connecting neighbours.
	ErrStartShape = errors.New("pipemaze: cannot infer start shape")
)

// Start is the symbol of the start tile.
const Start = 'S'

// shapes maps each pipe to the two sides it connects.
var shapes = map[byte][2]gridgraph.Direction{
	'|': {gridgraph.North, gridgraph.South},
	'-': {gridgraph.East, gridgraph.West},
	'L': {gridgraph.North, gridgraph.East},
	'J': {gridgraph.North, gridgraph.West},
	'7': {gridgraph.South, gridgraph.West},
	'F': {gridgraph.East, gridgraph.South},
}

// connects reports whether pipe opens towards d.
func connects(pipe byte, d gridgraph.Direction) bool {
	sides, ok := shapes[pipe]
	return ok && (sides[0] == d || sides[1] == d)
}

// shapeOf returns the pipe symbol joining sides a and b.
func shapeOf(a, b gridgraph.Direction) (byte, bool) {
	for sym, sides := range shapes {
		if (sides[0] == a && sides[1] == b) || (sides[0] == b && sides[1] == a) {
			return sym, true
		}
	}
	return 0, false
}

// Maze is a parsed sketch with its loop already discovered.
type Maze struct {
	grid  *gridgraph.Grid
	start gridgraph.Coord
	shape byte
	loop  *bfs.Result[gridgraph.Coord]
}

// Parse reads a sketch, infers the start shape and finds the loop.
func Parse(text string) (*Maze, error) {
	g, err := gridgraph.Parse(text)
	if err != nil {
		return nil, err
	}
	m := &Maze{grid: g}
	found := false
	for r, row := range g.Cells {
		for c, b := range row {
			switch {
			case b == Start:
				if found {
					return nil, ErrMultipleStarts
				}
				found = true
				m.start = gridgraph.Coord{Row: r, Col: c}
			case b == '.':
			default:
				if _, ok := shapes[b]; ok {
					continue
				}
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrBadSymbol, b, r, c)
			}
		}
	}
	if !found {
		return nil, ErrNoStart
	}
	if m.shape, err = m.inferStart(); err != nil {
		return nil, err
	}

	m.loop, err = bfs.Explore([]gridgraph.Coord{m.start}, m.follow,
		bfs.WithOnVisit(func(c gridgraph.Coord, _ int) error {
			if len(m.follow(c)) != 2 {
				return fmt.Errorf("%w: dead end at %v", ErrOpenLoop, c)
			}
			return nil
		}))
	if err != nil {
		return nil, err
	}
	return m, nil
}

// inferStart picks the pipe shape for 'S' from the neighbours that open
// towards it.
func (m *Maze) inferStart() (byte, error) {
	var open []gridgraph.Direction
	for _, d := range gridgraph.Directions {
		nb, err := m.grid.Move(m.start, d)
		if err != nil {
			continue
		}
		if connects(m.grid.At(nb), d.Opposite()) {
			open = append(open, d)
		}
	}
	if len(open) != 2 {
		return 0, fmt.Errorf("%w: %d connecting neighbours at %v", ErrStartShape, len(open), m.start)
	}
	sym, _ := shapeOf(open[0], open[1])
	return sym, nil
}

// pipe returns the pipe symbol at c, substituting the inferred start shape.
func (m *Maze) pipe(c gridgraph.Coord) byte {
	if c == m.start {
		return m.shape
	}
	return m.grid.At(c)
}

// follow yields the neighbours of c joined to it from both sides.
func (m *Maze) follow(c gridgraph.Coord) []gridgraph.Coord {
	sides := shapes[m.pipe(c)]
	out := make([]gridgraph.Coord, 0, 2)
	for _, d := range sides {
		nb, err := m.grid.Move(c, d)
		if err != nil {
			continue
		}
		if connects(m.pipe(nb), d.Opposite()) {
			out = append(out, nb)
		}
	}
	return out
}

// StartShape returns the pipe inferred under 'S'.
func (m *Maze) StartShape() byte { return m.shape }

// LoopLen returns the number of tiles in the loop.
func (m *Maze) LoopLen() int { return m.loop.Len() }

// OnLoop reports whether c is part of the loop.
func (m *Maze) OnLoop(c gridgraph.Coord) bool { return m.loop.Visited(c) }

// FarthestPoint returns the number of steps along the loop from the start
// to the tile farthest from it.
func (m *Maze) FarthestPoint() int { return m.loop.MaxDepth() }

// Enclosed counts tiles strictly inside the loop.
func (m *Maze) Enclosed() int {
	count := 0
	for r := 0; r < m.grid.Rows; r++ {
		inside := false
		var opener byte
		for c := 0; c < m.grid.Cols; c++ {
			at := gridgraph.Coord{Row: r, Col: c}
			if !m.OnLoop(at) {
				if inside {
					count++
				}
				continue
			}
			switch p := m.pipe(at); p {
			case '|':
				inside = !inside
			case 'L', 'F':
				opener = p
			case '7':
				if opener == 'L' {
					inside = !inside
				}
			case 'J':
				if opener == 'F' {
					inside = !inside
				}
			}
		}
	}
	return count
}
