package puzzles_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snowops/puzzles"
)

const (
	day10 = `
.....
.S-7.
.|.|.
.L-J.
.....`

	day12 = `
???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1`

	day14 = `
O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....`

	day16 = `
.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....`

	day17 = `
2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533`

	day20 = `
broadcaster -> a1, b1
%a1 -> ia
&ia -> f
%b1 -> b2
%b2 -> ib
&ib -> f
&f -> rx`

	day21 = `
...........
.....###.#.
.###.##..#.
..#.#...#..
....#.#....
.##..S####.
.##..#...#.
.......##..
.##.#.####.
.##..##.##.
...........`
)

func TestSolveBoth(t *testing.T) {
	cfg := puzzles.DefaultConfig()
	cfg.PlotSteps = 6
	cfg.FarPlotSteps = 10

	cases := []struct {
		day          int
		input        string
		part1, part2 int64
	}{
		{10, day10, 4, 1},
		{12, day12, 21, 525152},
		{14, day14, 136, 64},
		{16, day16, 46, 51},
		{17, day17, 102, 94},
		{21, day21, 16, 50},
	}
	for _, tc := range cases {
		t.Run(puzzlesName(tc.day), func(t *testing.T) {
			d, err := puzzles.Lookup(tc.day)
			require.NoError(t, err)
			p1, p2, err := puzzles.SolveBoth(context.Background(), d, tc.input, cfg)
			require.NoError(t, err)
			require.Equal(t, tc.part1, p1)
			require.Equal(t, tc.part2, p2)
		})
	}
}

func TestDay20(t *testing.T) {
	d, err := puzzles.Lookup(20)
	require.NoError(t, err)
	cfg := puzzles.DefaultConfig()

	got, err := d.Part2(context.Background(), day20, cfg)
	require.NoError(t, err)
	require.Equal(t, int64(4), got)

	got, err = d.Part1(context.Background(), `
broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a`, cfg)
	require.NoError(t, err)
	require.Equal(t, int64(32000000), got)
}

func TestSolveBoth_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, day := range []int{17, 20} {
		d, err := puzzles.Lookup(day)
		require.NoError(t, err)
		input := day17
		if day == 20 {
			input = day20
		}
		_, _, err = puzzles.SolveBoth(ctx, d, input, puzzles.DefaultConfig())
		require.ErrorIs(t, err, context.Canceled, "day %d", day)
	}

	d, err := puzzles.Lookup(21)
	require.NoError(t, err)
	cfg := puzzles.DefaultConfig()
	cfg.PlotSteps = 6
	_, _, err = puzzles.SolveBoth(ctx, d, day21, cfg)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolveBoth_PropagatesError(t *testing.T) {
	d, err := puzzles.Lookup(17)
	require.NoError(t, err)
	_, _, err = puzzles.SolveBoth(context.Background(), d, "12\nx4", puzzles.DefaultConfig())
	require.Error(t, err)
	require.Contains(t, err.Error(), "day 17")
}

func TestLookup(t *testing.T) {
	_, err := puzzles.Lookup(3)
	require.ErrorIs(t, err, puzzles.ErrUnknownDay)
	require.Equal(t, []int{10, 12, 14, 16, 17, 20, 21}, puzzles.Days())
}

func puzzlesName(day int) string {
	d, _ := puzzles.Lookup(day)
	return d.Title
}
