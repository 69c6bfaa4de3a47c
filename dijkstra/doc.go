// Package dijkstra computes minimum-cost routes through an implicit state
// space with non-negative edge costs.
//
// A state is any comparable value. For grid routing it is a position plus
// auxiliary discriminators, which lets transitions enforce movement rules
// that a plain cell graph cannot express:
//
//   - forbid reversing direction,
//   - forbid exceeding a maximum run of moves in one heading,
//   - forbid turning (or stopping) before a minimum run is complete.
//
// Search/ShortestCost take start states with their initial cost, a goal
// predicate and a transition function. A candidate is processed only if
// its cost improves the best recorded cost for that exact state; stale heap
// entries are discarded. The goal may span many states (every heading and
// run length at the target cell); the first goal popped is the minimum
// across all of them.
//
// If no goal is reachable the search returns ErrUnreachable rather than a
// sentinel cost, so a caller can never mistake "no route" for a real answer.
//
// MinHeatLoss wires this engine to the crucible puzzle with configurable
// RunBounds (Classic: max 3; Ultra: min 4, max 10).
//
// Complexity:
//
//   - Time:  O((V + E) log V)   where V = reachable states, E = transitions
//   - Space: O(V + E)           cost table, settled set and lazy heap
//
// Example usage:
//
//	cost, err := dijkstra.MinHeatLoss(grid, dijkstra.Ultra)
//	if errors.Is(err, dijkstra.ErrUnreachable) {
//	    // no legal route
//	}
package dijkstra
