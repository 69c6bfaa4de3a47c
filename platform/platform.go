package platform

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/snowops/gridgraph"
)

// Cell symbols.
const (
	Round = 'O'
	Cube  = '#'
	Empty = '.'
)

// ErrBadSymbol indicates a cell other than 'O', '#' or '.'.
var ErrBadSymbol = errors.New("platform: unexpected symbol")

// Platform is a rectangular board of rocks. Tilt and SpinCycle mutate it
// in place; use Clone to keep a snapshot.
type Platform struct {
	grid *gridgraph.Grid
}

// Parse reads a board from newline-separated text.
func Parse(text string) (*Platform, error) {
	g, err := gridgraph.Parse(text)
	if err != nil {
		return nil, err
	}
	for r, row := range g.Cells {
		for c, b := range row {
			switch b {
			case Round, Cube, Empty:
			default:
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrBadSymbol, b, r, c)
			}
		}
	}
	return &Platform{grid: g}, nil
}

// Clone returns an independent copy.
func (p *Platform) Clone() *Platform {
	return &Platform{grid: p.grid.Clone()}
}

// String renders the board, one row per line.
func (p *Platform) String() string { return p.grid.String() }

// Tilt rolls every round rock toward d.
// Complexity: O(R×C).
func (p *Platform) Tilt(d gridgraph.Direction) {
	lines, length := p.grid.Cols, p.grid.Rows
	if !d.Vertical() {
		lines, length = p.grid.Rows, p.grid.Cols
	}
	for line := 0; line < lines; line++ {
		free := 0
		for i := 0; i < length; i++ {
			at := p.slot(d, line, i)
			switch p.grid.At(at) {
			case Cube:
				free = i + 1
			case Round:
				if free != i {
					p.grid.Set(p.slot(d, line, free), Round)
					p.grid.Set(at, Empty)
				}
				free++
			}
		}
	}
}

// slot maps the i-th position of a line, counted from the wall d faces,
// to a grid coordinate.
func (p *Platform) slot(d gridgraph.Direction, line, i int) gridgraph.Coord {
	switch d {
	case gridgraph.North:
		return gridgraph.Coord{Row: i, Col: line}
	case gridgraph.South:
		return gridgraph.Coord{Row: p.grid.Rows - 1 - i, Col: line}
	case gridgraph.West:
		return gridgraph.Coord{Row: line, Col: i}
	default:
		return gridgraph.Coord{Row: line, Col: p.grid.Cols - 1 - i}
	}
}

// CycleOrder is the tilt sequence of one spin cycle.
var CycleOrder = [4]gridgraph.Direction{
	gridgraph.North, gridgraph.West, gridgraph.South, gridgraph.East,
}

// SpinCycle tilts north, west, south and east in turn.
func (p *Platform) SpinCycle() {
	for _, d := range CycleOrder {
		p.Tilt(d)
	}
}

// NorthLoad sums, over every round rock, its distance from the south edge
// counted so that the bottom row weighs 1.
func (p *Platform) NorthLoad() int {
	load := 0
	for r, row := range p.grid.Cells {
		for _, b := range row {
			if b == Round {
				load += p.grid.Rows - r
			}
		}
	}
	return load
}

// load overwrites the cells from a snapshot produced by String.
func (p *Platform) load(snapshot string) {
	i := 0
	for r := range p.grid.Cells {
		copy(p.grid.Cells[r], snapshot[i:i+p.grid.Cols])
		i += p.grid.Cols + 1
	}
}
