package gridgraph

import "fmt"

// Coord addresses a single cell. Coordinates produced by Move are always
// inside the grid; MoveWrapped may produce negative or oversized values.
type Coord struct {
	Row, Col int
}

// Add returns c shifted by the given delta.
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// String renders c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction is one of the four orthogonal headings.
type Direction uint8

const (
	// North moves towards row 0.
	North Direction = iota
	// East moves towards the last column.
	East
	// South moves towards the last row.
	South
	// West moves towards column 0.
	West
)

// Directions lists all headings in clockwise order starting at North.
var Directions = [4]Direction{North, East, South, West}

// Delta returns the (row, col) offset of a single step in d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	default:
		return 0, -1
	}
}

// Opposite returns the heading rotated by 180 degrees.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// Right returns the heading rotated 90 degrees clockwise.
func (d Direction) Right() Direction { return (d + 1) % 4 }

// Left returns the heading rotated 90 degrees counter-clockwise.
func (d Direction) Left() Direction { return (d + 3) % 4 }

// Vertical reports whether d is North or South.
func (d Direction) Vertical() bool { return d == North || d == South }

// String returns the compass name of d.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Grid is a fixed-size rectangular array of cell symbols. Its dimensions
// never change after construction. Cells is exposed for read access by
// engines; mutation is reserved to the owner of a Clone.
type Grid struct {
	Rows, Cols int
	Cells      [][]byte
}
