// Package pipemaze finds the closed loop of pipes through the start tile
// 'S' and measures it.
//
// Pipe symbols connect two sides of a tile:
//
//	| north-south   - east-west
//	L north-east    J north-west
//	7 south-west    F south-east
//
// The shape hidden under 'S' is inferred from the neighbours that connect
// back to it; exactly two must. The loop is then discovered breadth-first
// from the start along mutual connections, so the BFS depth of a tile is its
// distance along the loop and the largest depth is the farthest point.
//
// Enclosed counts tiles inside the loop with a row scan: crossing '|'
// flips inside/outside, and so does a horizontal run that enters and
// leaves on opposite sides (L...7 or F...J). Runs that return to the same
// side (L...J or F...7) and '-' segments never flip. Tiles that are not
// part of the loop count as enclosed when the parity is odd, junk pipes
// included.
package pipemaze
