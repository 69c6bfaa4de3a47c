// Package bfs provides breadth-first exploration of an implicit state space,
// returning visit order, depth per state and parent links.
//
// What
//
//   - Explore states reachable from one or more start states, in
//     non-decreasing distance (transition count) from the nearest start.
//   - States are any comparable value; successors come from a Transition.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from state → distance from the nearest start
//   - Parent: map from state → its predecessor in the BFS tree
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a state is first discovered)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Light-beam propagation: states are (cell, heading); the answer is the
//     number of distinct cells in the result.
//   - Loop discovery: walking pipe connections from the start tile yields the
//     loop cells, and the deepest state is the farthest point.
//   - Plot reachability: MaxDepth bounds the step budget and Depth parity
//     decides which plots are reachable in exactly N steps.
//
// Guarantees
//
//	Each state is marked visited when first enqueued and is processed exactly
//	once; a state already seen is never enqueued again. The queue is an
//	explicit slice, so no recursion depth grows with the state count.
//	Termination follows from the finite state space. Given a deterministic
//	Transition, Order is fully reproducible.
//
// Complexity (V = reachable states, E = generated transitions)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.Explore([]beamState{start}, step)
//	if err != nil {
//	    // ErrNoStart, ErrNilTransition, ErrOptionViolation, ctx error or hook error
//	}
//
//	res, err := bfs.Explore(
//	    []gridgraph.Coord{start}, step,
//	    bfs.WithMaxDepth[gridgraph.Coord](64),
//	    bfs.WithContext[gridgraph.Coord](ctx),
//	)
//
// Errors
//
//   - ErrNoStart          if starts is empty.
//   - ErrNilTransition    if the transition function is nil.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
