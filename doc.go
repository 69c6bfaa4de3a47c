// Package snowops is a set of daily puzzle solvers that share one engine:
// bounded grid pathfinding, breadth-first propagation and memoized
// repeated transitions.
//
// 🚀 What is inside?
//
//	gridgraph/ : rectangular character grid, coordinates and headings
//	stateset/  : visited-state set and best-cost table
//	bfs/       : breadth-first exploration of implicit state spaces
//	dfs/       : depth-first walk with pre/post-order hooks
//	dijkstra/  : least-cost search with run-length constraints (crucible)
//	cycle/     : transition memo and repeat-with-cycle-skip
//	platform/  : tilting rocks and spin cycles
//	pulse/     : signal network of broadcast/toggle/threshold modules
//	beam/      : light through mirrors and splitters
//	pipemaze/  : pipe loop distance and enclosed area
//	plots/     : plots reachable in exactly n steps
//	springs/   : damaged-spring arrangement counting
//	puzzles/   : day registry and YAML configuration
//	cmd/snowops: command-line entry point
//
// ✨ Design notes
//
//   - Every solver is a pure function from input text to an integer.
//   - Engines take states and transition functions and own their run state;
//     the only mutable package-level state is the cycle.Log and pulse.Log
//     loggers.
//   - Errors are package sentinels wrapped with context (errors.Is).
//   - Diagnostics go through logrus at debug level, never to stdout.
//
// Quick start:
//
//	go run ./cmd/snowops 17 input.txt
//	go run ./cmd/snowops -config snowops.yaml -v 14 input.txt
package snowops
