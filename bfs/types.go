// Package bfs provides tunable options and error definitions
// for breadth-first exploration of a state space.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNoStart is returned when Explore receives no start states.
	ErrNoStart = errors.New("bfs: at least one start state is required")

	// ErrNilTransition is returned if a nil transition function is passed.
	ErrNilTransition = errors.New("bfs: transition function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Transition maps a state to its successors. It must be total over valid
// states: moves that leave the grid are simply omitted, never reported.
type Transition[S comparable] func(S) []S

// Option configures Explore via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when Explore is invoked.
type Option[S comparable] func(*Options[S])

// Options holds parameters and callbacks to customize exploration.
type Options[S comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a state is first discovered and enqueued.
	// Receives the state and its depth from the nearest start.
	OnEnqueue func(s S, depth int)

	// OnVisit is called when a state is dequeued. If it returns an error,
	// Explore aborts and propagates that error.
	OnVisit func(s S, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnVisit)
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:       context.Background(),
		OnEnqueue: func(S, int) {},
		OnVisit:   func(S, int) error { return nil },
		MaxDepth:  0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[S comparable](fn func(s S, depth int)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the exploration.
func WithOnVisit[S comparable](fn func(s S, depth int) error) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: states deeper than d are never enqueued
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[S comparable](d int) Option[S] {
	return func(o *Options[S]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of an exploration:
//   - Order: states in visit sequence.
//   - Depth: distance (in transitions) from the nearest start state.
//   - Parent: predecessor of each non-start state in the BFS tree.
type Result[S comparable] struct {
	Order  []S
	Depth  map[S]int
	Parent map[S]S
}

// Len returns the number of distinct states visited.
func (r *Result[S]) Len() int { return len(r.Order) }

// Visited reports whether s was reached.
func (r *Result[S]) Visited(s S) bool {
	_, ok := r.Depth[s]
	return ok
}

// MaxDepth returns the largest depth reached, or 0 for a single-state result.
func (r *Result[S]) MaxDepth() int {
	m := 0
	for _, d := range r.Depth {
		if d > m {
			m = d
		}
	}
	return m
}

// PathTo reconstructs the path from its start state to dest.
// Returns an error if dest was not reached.
func (r *Result[S]) PathTo(dest S) ([]S, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	// build reversed path
	path := []S{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// CountDistinct returns the number of distinct keys among the visited
// states, e.g. cells covered by (cell, heading) states.
func CountDistinct[S comparable, K comparable](r *Result[S], key func(S) K) int {
	seen := make(map[K]struct{}, len(r.Order))
	for _, s := range r.Order {
		seen[key(s)] = struct{}{}
	}
	return len(seen)
}
