package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/snowops/gridgraph"
)

// RunBounds constrains consecutive moves in one heading.
// Min is the number of straight moves required before turning (or
// stopping); Max is the most straight moves allowed before a turn.
// A zero Min means turning is always allowed.
type RunBounds struct {
	Min, Max int
}

// Classic is the standard crucible: at most three moves in a row.
var Classic = RunBounds{Min: 0, Max: 3}

// Ultra is the heavier crucible: four to ten moves before turning.
var Ultra = RunBounds{Min: 4, Max: 10}

// Validate returns ErrBadRunBounds unless 0 <= Min <= Max and Max >= 1.
func (b RunBounds) Validate() error {
	if b.Min < 0 || b.Max < 1 || b.Min > b.Max {
		return fmt.Errorf("%w: min=%d max=%d", ErrBadRunBounds, b.Min, b.Max)
	}
	return nil
}

// CrucibleState is a position plus the heading and the number of
// consecutive moves already made in that heading.
type CrucibleState struct {
	Pos gridgraph.Coord
	Dir gridgraph.Direction
	Run int
}

// MinHeatLoss returns the least total heat loss moving a crucible from the
// top-left to the bottom-right cell of g under bounds. The start cell's own
// loss is not counted. Reversal is never allowed, and the crucible may only
// stop at the target once it has completed a minimum run.
// Returns ErrBadCell for non-digit cells and ErrUnreachable if no legal
// route exists.
func MinHeatLoss(g *gridgraph.Grid, bounds RunBounds, opts ...Option) (int64, error) {
	if err := bounds.Validate(); err != nil {
		return 0, err
	}
	if err := checkDigits(g); err != nil {
		return 0, err
	}
	origin := gridgraph.Coord{Row: 0, Col: 0}
	target := gridgraph.Coord{Row: g.Rows - 1, Col: g.Cols - 1}
	if origin == target {
		return 0, nil
	}

	loss := func(c gridgraph.Coord) int64 { return int64(g.At(c) - '0') }

	var starts []Start[CrucibleState]
	for _, d := range [...]gridgraph.Direction{gridgraph.East, gridgraph.South} {
		if pos, err := g.Move(origin, d); err == nil {
			starts = append(starts, Start[CrucibleState]{
				State: CrucibleState{Pos: pos, Dir: d, Run: 1},
				Cost:  loss(pos),
			})
		}
	}

	isGoal := func(s CrucibleState) bool {
		return s.Pos == target && s.Run >= bounds.Min
	}
	next := func(s CrucibleState) []Edge[CrucibleState] {
		out := make([]Edge[CrucibleState], 0, 3)
		for _, d := range [...]gridgraph.Direction{s.Dir, s.Dir.Left(), s.Dir.Right()} {
			run := 1
			if d == s.Dir {
				if s.Run >= bounds.Max {
					continue
				}
				run = s.Run + 1
			} else if s.Run < bounds.Min {
				continue
			}
			pos, err := g.Move(s.Pos, d)
			if err != nil {
				continue
			}
			out = append(out, Edge[CrucibleState]{
				To:   CrucibleState{Pos: pos, Dir: d, Run: run},
				Cost: loss(pos),
			})
		}
		return out
	}

	return ShortestCost(starts, isGoal, next, opts...)
}

// checkDigits verifies every cell holds '0'..'9'.
func checkDigits(g *gridgraph.Grid) error {
	for r, row := range g.Cells {
		for c, v := range row {
			if v < '0' || v > '9' {
				return fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, v, r, c)
			}
		}
	}
	return nil
}
