// Package plots counts the garden plots ('.' or 'S') an elf can stand on
// after exactly n steps from 'S', moving orthogonally and never onto
// rocks ('#').
//
// Because a step can always be undone by stepping back, a plot is
// reachable in exactly n steps iff its shortest distance d satisfies
// d <= n and d ≡ n (mod 2). One bounded BFS therefore answers the query.
//
// ReachableInfinite treats the map as tiling the plane. ReachableFar
// extrapolates very large step counts from three samples spaced one map
// width apart, which is exact when the count grows quadratically in that
// spacing (as it does for open maps with a centred start).
package plots

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/snowops/bfs"
	"github.com/katalvlaran/snowops/gridgraph"
)

const (
	// Start marks the elf's position.
	Start = 'S'
	// Rock blocks movement.
	Rock = '#'
)

var (
	// ErrNegativeSteps indicates a negative step count.
	ErrNegativeSteps = errors.New("plots: steps must be non-negative")
	// ErrNotSquare indicates ReachableFar was given a non-square map.
	ErrNotSquare = errors.New("plots: extrapolation needs a square map")
)

// Reachable counts plots reachable in exactly steps steps inside g.
func Reachable(g *gridgraph.Grid, steps int) (int, error) {
	return count(context.Background(), g, steps, func(c gridgraph.Coord) []gridgraph.Coord {
		var out []gridgraph.Coord
		for _, nb := range g.Neighbors(c) {
			if g.At(nb) != Rock {
				out = append(out, nb)
			}
		}
		return out
	})
}

// ReachableInfinite is Reachable on the plane tiled with copies of g.
func ReachableInfinite(g *gridgraph.Grid, steps int) (int, error) {
	return reachableInfinite(context.Background(), g, steps)
}

func reachableInfinite(ctx context.Context, g *gridgraph.Grid, steps int) (int, error) {
	return count(ctx, g, steps, func(c gridgraph.Coord) []gridgraph.Coord {
		out := make([]gridgraph.Coord, 0, 4)
		for _, d := range gridgraph.Directions {
			nb := g.MoveWrapped(c, d)
			if g.AtWrapped(nb) != Rock {
				out = append(out, nb)
			}
		}
		return out
	})
}

// count runs a BFS bounded at steps and counts depths with matching parity.
func count(ctx context.Context, g *gridgraph.Grid, steps int, next bfs.Transition[gridgraph.Coord]) (int, error) {
	if steps < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeSteps, steps)
	}
	start, err := g.Find(Start)
	if err != nil {
		return 0, err
	}
	if steps == 0 {
		return 1, nil
	}

	n := 0
	_, err = bfs.Explore([]gridgraph.Coord{start}, next,
		bfs.WithContext[gridgraph.Coord](ctx),
		bfs.WithMaxDepth[gridgraph.Coord](steps),
		bfs.WithOnVisit(func(_ gridgraph.Coord, depth int) error {
			if depth%2 == steps%2 {
				n++
			}
			return nil
		}))
	if err != nil {
		return 0, err
	}
	return n, nil
}

// ReachableFar answers ReachableInfinite for large step counts on a
// square map by fitting a quadratic through the counts at r, r+w and r+2w
// steps, where w is the map width and r = steps mod w. The sampling BFS
// stops early when ctx is cancelled.
func ReachableFar(ctx context.Context, g *gridgraph.Grid, steps int) (int64, error) {
	if g.Rows != g.Cols {
		return 0, fmt.Errorf("%w: %dx%d", ErrNotSquare, g.Rows, g.Cols)
	}
	w := g.Cols
	r := steps % w
	if steps < r+2*w {
		n, err := reachableInfinite(ctx, g, steps)
		return int64(n), err
	}

	var y [3]int64
	for i := range y {
		n, err := reachableInfinite(ctx, g, r+i*w)
		if err != nil {
			return 0, err
		}
		y[i] = int64(n)
	}
	// Newton forward differences: f(x) = y0 + x·d1 + x(x-1)/2·d2
	x := int64(steps / w)
	d1 := y[1] - y[0]
	d2 := y[2] - 2*y[1] + y[0]
	return y[0] + x*d1 + x*(x-1)/2*d2, nil
}
