// Package beam traces light through a grid of mirrors ('/', '\') and
// splitters ('|', '-'). A beam state is a cell plus the heading it entered
// with; beams leaving the grid are dropped, and loops terminate because
// every state is explored once.
package beam

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/snowops/bfs"
	"github.com/katalvlaran/snowops/gridgraph"
)

// ErrBadSymbol indicates a cell other than '.', '/', '\', '|' or '-'.
var ErrBadSymbol = errors.New("beam: unexpected symbol")

// State is a beam at Pos travelling in Dir.
type State struct {
	Pos gridgraph.Coord
	Dir gridgraph.Direction
}

// Validate reports the first unexpected symbol in g.
func Validate(g *gridgraph.Grid) error {
	for r, row := range g.Cells {
		for c, b := range row {
			switch b {
			case '.', '/', '\\', '|', '-':
			default:
				return fmt.Errorf("%w %q at (%d,%d)", ErrBadSymbol, b, r, c)
			}
		}
	}
	return nil
}

// deflect returns the headings a beam leaves a cell with.
func deflect(cell byte, d gridgraph.Direction) []gridgraph.Direction {
	switch cell {
	case '/':
		// East <-> North, West <-> South
		if d.Vertical() {
			return []gridgraph.Direction{d.Right()}
		}
		return []gridgraph.Direction{d.Left()}
	case '\\':
		if d.Vertical() {
			return []gridgraph.Direction{d.Left()}
		}
		return []gridgraph.Direction{d.Right()}
	case '|':
		if !d.Vertical() {
			return []gridgraph.Direction{gridgraph.North, gridgraph.South}
		}
	case '-':
		if d.Vertical() {
			return []gridgraph.Direction{gridgraph.East, gridgraph.West}
		}
	}
	return []gridgraph.Direction{d}
}

// Trace explores every beam state reachable from start.
func Trace(g *gridgraph.Grid, start State) (*bfs.Result[State], error) {
	if err := Validate(g); err != nil {
		return nil, err
	}
	if !g.InBounds(start.Pos) {
		return nil, fmt.Errorf("%w: start %v", gridgraph.ErrOutOfBounds, start.Pos)
	}
	return bfs.Explore([]State{start}, func(s State) []State {
		var out []State
		for _, d := range deflect(g.At(s.Pos), s.Dir) {
			if p, err := g.Move(s.Pos, d); err == nil {
				out = append(out, State{Pos: p, Dir: d})
			}
		}
		return out
	})
}

// Energized counts the distinct cells a beam entering at start covers.
func Energized(g *gridgraph.Grid, start State) (int, error) {
	res, err := Trace(g, start)
	if err != nil {
		return 0, err
	}
	return bfs.CountDistinct(res, func(s State) gridgraph.Coord { return s.Pos }), nil
}

// EdgeStarts lists every beam entering the grid from outside: down from
// the top row, up from the bottom row, right from the left column and left
// from the right column.
func EdgeStarts(g *gridgraph.Grid) []State {
	starts := make([]State, 0, 2*(g.Rows+g.Cols))
	for c := 0; c < g.Cols; c++ {
		starts = append(starts,
			State{gridgraph.Coord{Row: 0, Col: c}, gridgraph.South},
			State{gridgraph.Coord{Row: g.Rows - 1, Col: c}, gridgraph.North})
	}
	for r := 0; r < g.Rows; r++ {
		starts = append(starts,
			State{gridgraph.Coord{Row: r, Col: 0}, gridgraph.East},
			State{gridgraph.Coord{Row: r, Col: g.Cols - 1}, gridgraph.West})
	}
	return starts
}

// MaxEnergized returns the best Energized count over EdgeStarts.
func MaxEnergized(g *gridgraph.Grid) (int, error) {
	best := 0
	for _, s := range EdgeStarts(g) {
		n, err := Energized(g, s)
		if err != nil {
			return 0, err
		}
		best = max(best, n)
	}
	return best, nil
}
