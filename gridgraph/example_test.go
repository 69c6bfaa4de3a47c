package gridgraph_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/snowops/gridgraph"
)

// ExampleGrid_Move demonstrates that stepping off the grid is reported,
// not wrapped.
func ExampleGrid_Move() {
	g := gridgraph.MustParse(`
		.#
		..
	`)
	next, err := g.Move(gridgraph.Coord{Row: 0, Col: 0}, gridgraph.East)
	fmt.Println(next, string(g.At(next)), err)

	_, err = g.Move(gridgraph.Coord{Row: 0, Col: 0}, gridgraph.North)
	fmt.Println(errors.Is(err, gridgraph.ErrOutOfBounds))
	// Output:
	// (0,1) # <nil>
	// true
}
