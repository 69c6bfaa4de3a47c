package beam_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snowops/beam"
	"github.com/katalvlaran/snowops/gridgraph"
)

const contraption = `
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

var topLeftEast = beam.State{Pos: gridgraph.Coord{}, Dir: gridgraph.East}

func TestEnergized_Sample(t *testing.T) {
	g := gridgraph.MustParse(contraption)
	n, err := beam.Energized(g, topLeftEast)
	require.NoError(t, err)
	require.Equal(t, 46, n)
}

func TestMaxEnergized_Sample(t *testing.T) {
	g := gridgraph.MustParse(contraption)
	n, err := beam.MaxEnergized(g)
	require.NoError(t, err)
	require.Equal(t, 51, n)
	require.Len(t, beam.EdgeStarts(g), 40)
}

func TestEnergized_Small(t *testing.T) {
	cases := []struct {
		name string
		grid string
		want int
	}{
		{"empty row", "....", 4},
		{"mirror up leaves grid", "./..", 2},
		{"mirror down", `.\.
...
...`, 4},
		{"splitter passes along axis", "-.-.", 4},
		{"splitter splits", ".|.\n...\n...", 4},
		{"loop terminates", `-.\
...
\./`, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := beam.Energized(gridgraph.MustParse(tc.grid), topLeftEast)
			require.NoError(t, err)
			require.Equal(t, tc.want, n)
		})
	}
}

func TestEnergized_Errors(t *testing.T) {
	_, err := beam.Energized(gridgraph.MustParse(".x."), topLeftEast)
	require.ErrorIs(t, err, beam.ErrBadSymbol)

	_, err = beam.Energized(gridgraph.MustParse("..."),
		beam.State{Pos: gridgraph.Coord{Row: 3}, Dir: gridgraph.East})
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}
