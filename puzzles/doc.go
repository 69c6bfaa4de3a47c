// Package puzzles maps puzzle days to solvers built on the engine packages
// and holds the run configuration shared by the command-line tool.
//
// Each Day has two Solvers taking the raw input text. SolveBoth runs them
// concurrently on independent parses; no engine state is shared between
// them.
//
// Configuration is YAML. LoadConfig overlays a file on DefaultConfig, so a
// file only needs the keys it changes:
//
//	log_level: debug
//	spin_cycles: 1000
//	crucible:
//	  part2: {min: 4, max: 10}
package puzzles
