// Package platform simulates a tilting platform of round rocks ('O') that
// roll until they hit a cube rock ('#'), the platform edge, or another
// round rock that already stopped.
//
// Tilt moves every round rock in one direction with a single pass per row
// or column: a cursor tracks the next free slot on the wall side, a cube
// rock resets it, a round rock jumps to it. A spin cycle tilts north, west,
// south, then east.
//
// Spin applies many cycles through cycle.Repeat, so once a board repeats
// the remaining cycles are skipped modulo the period. With WithTiltCache a
// second memo short-circuits individual tilts keyed by (direction, board).
//
//	p, _ := platform.Parse(input)
//	final, rep := platform.Spin(p, 1_000_000_000)
//	fmt.Println(final.NorthLoad(), rep.Cycle.Period)
package platform
