package puzzles

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/snowops/beam"
	"github.com/katalvlaran/snowops/dijkstra"
	"github.com/katalvlaran/snowops/gridgraph"
	"github.com/katalvlaran/snowops/pipemaze"
	"github.com/katalvlaran/snowops/platform"
	"github.com/katalvlaran/snowops/plots"
	"github.com/katalvlaran/snowops/pulse"
	"github.com/katalvlaran/snowops/springs"
)

// ErrUnknownDay indicates a day with no registered solvers.
var ErrUnknownDay = errors.New("puzzles: unknown day")

// Solver turns puzzle input into an answer.
type Solver func(ctx context.Context, input string, cfg Config) (int64, error)

// Day pairs the two solvers of one puzzle.
type Day struct {
	Number int
	Title  string
	Part1  Solver
	Part2  Solver
}

var registry = map[int]Day{
	10: {10, "Pipe Maze", pipeFarthest, pipeEnclosed},
	12: {12, "Hot Springs", springsFolded, springsUnfolded},
	14: {14, "Parabolic Reflector Dish", tiltNorth, spinLoad},
	16: {16, "The Floor Will Be Lava", beamTopLeft, beamBest},
	17: {17, "Clumsy Crucible", crucible(func(c Config) Bounds { return c.Crucible.Part1 }),
		crucible(func(c Config) Bounds { return c.Crucible.Part2 })},
	20: {20, "Pulse Propagation", pulseProduct, pulseUntilLow},
	21: {21, "Step Counter", plotsNear, plotsFar},
}

// Lookup returns the solvers registered for day.
func Lookup(day int) (Day, error) {
	d, ok := registry[day]
	if !ok {
		return Day{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return d, nil
}

// Days lists the registered days in ascending order.
func Days() []int {
	days := make([]int, 0, len(registry))
	for d := range registry {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// SolveBoth runs both parts of d concurrently and returns their answers.
// The first error cancels the context passed to the other part. Only the
// open-ended loops observe it: the crucible search, pulse presses until
// low and far plot sampling. The remaining solvers run to completion.
func SolveBoth(ctx context.Context, d Day, input string, cfg Config) (part1, part2 int64, err error) {
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		part1, err = d.Part1(gCtx, input, cfg)
		if err != nil {
			return fmt.Errorf("day %d part 1: %w", d.Number, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		part2, err = d.Part2(gCtx, input, cfg)
		if err != nil {
			return fmt.Errorf("day %d part 2: %w", d.Number, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return 0, 0, err
	}
	return part1, part2, nil
}

func pipeFarthest(_ context.Context, input string, _ Config) (int64, error) {
	m, err := pipemaze.Parse(input)
	if err != nil {
		return 0, err
	}
	return int64(m.FarthestPoint()), nil
}

func pipeEnclosed(_ context.Context, input string, _ Config) (int64, error) {
	m, err := pipemaze.Parse(input)
	if err != nil {
		return 0, err
	}
	return int64(m.Enclosed()), nil
}

func springsFolded(_ context.Context, input string, _ Config) (int64, error) {
	return springs.SumArrangements(input, false)
}

func springsUnfolded(_ context.Context, input string, _ Config) (int64, error) {
	return springs.SumArrangements(input, true)
}

func tiltNorth(_ context.Context, input string, _ Config) (int64, error) {
	p, err := platform.Parse(input)
	if err != nil {
		return 0, err
	}
	p.Tilt(gridgraph.North)
	return int64(p.NorthLoad()), nil
}

func spinLoad(_ context.Context, input string, cfg Config) (int64, error) {
	p, err := platform.Parse(input)
	if err != nil {
		return 0, err
	}
	var opts []platform.SpinOption
	if cfg.TiltCache {
		opts = append(opts, platform.WithTiltCache())
	}
	out, _ := platform.Spin(p, cfg.SpinCycles, opts...)
	return int64(out.NorthLoad()), nil
}

func beamTopLeft(_ context.Context, input string, _ Config) (int64, error) {
	g, err := gridgraph.Parse(input)
	if err != nil {
		return 0, err
	}
	n, err := beam.Energized(g, beam.State{Pos: gridgraph.Coord{}, Dir: gridgraph.East})
	return int64(n), err
}

func beamBest(_ context.Context, input string, _ Config) (int64, error) {
	g, err := gridgraph.Parse(input)
	if err != nil {
		return 0, err
	}
	n, err := beam.MaxEnergized(g)
	return int64(n), err
}

func crucible(bounds func(Config) Bounds) Solver {
	return func(ctx context.Context, input string, cfg Config) (int64, error) {
		g, err := gridgraph.Parse(input)
		if err != nil {
			return 0, err
		}
		return dijkstra.MinHeatLoss(g, bounds(cfg).RunBounds(), dijkstra.WithContext(ctx))
	}
}

func pulseProduct(_ context.Context, input string, cfg Config) (int64, error) {
	n, err := pulse.Parse(input)
	if err != nil {
		return 0, err
	}
	return n.CountPulses(cfg.Presses).Product(), nil
}

func pulseUntilLow(ctx context.Context, input string, cfg Config) (int64, error) {
	n, err := pulse.Parse(input)
	if err != nil {
		return 0, err
	}
	presses, err := n.PressesUntilLow(ctx, cfg.PulseTarget, cfg.PressLimit)
	return int64(presses), err
}

func plotsNear(_ context.Context, input string, cfg Config) (int64, error) {
	g, err := gridgraph.Parse(input)
	if err != nil {
		return 0, err
	}
	n, err := plots.Reachable(g, cfg.PlotSteps)
	return int64(n), err
}

func plotsFar(ctx context.Context, input string, cfg Config) (int64, error) {
	g, err := gridgraph.Parse(input)
	if err != nil {
		return 0, err
	}
	return plots.ReachableFar(ctx, g, cfg.FarPlotSteps)
}
