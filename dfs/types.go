package dfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNilTransition is returned when a nil transition function is passed.
	ErrNilTransition = errors.New("dfs: transition function is nil")

	// ErrOptionViolation is returned when an option has an invalid value.
	ErrOptionViolation = errors.New("dfs: invalid option")
)

// Transition lists the successors of a state.
type Transition[S comparable] func(S) []S

// Option configures optional behavior of Walk.
type Option[S comparable] func(*Options[S])

// Options holds configurable parameters for a depth-first walk.
type Options[S comparable] struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a state is discovered (pre-order).
	// Returning an error aborts the walk.
	OnVisit func(s S) error

	// OnExit, if non-nil, is invoked after all descendants of a state have
	// been explored (post-order). Returning an error aborts the walk.
	OnExit func(s S) error

	// MaxDepth, if non-negative, stops descent below the given depth.
	// A depth of 0 visits only the start. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each successor before
	// descending. Return false to skip it.
	FilterNeighbor func(s S) bool

	err error
}

// DefaultOptions returns Options with a background context, no hooks,
// no depth limit and no filter.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the context checked before each state is expanded.
// A nil context is ignored.
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit[S comparable](fn func(s S) error) Option[S] {
	return func(o *Options[S]) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit[S comparable](fn func(s S) error) Option[S] {
	return func(o *Options[S]) { o.OnExit = fn }
}

// WithMaxDepth limits descent to limit (>= 0).
func WithMaxDepth[S comparable](limit int) Option[S] {
	return func(o *Options[S]) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips successors for which fn returns false. Skips
// are counted in Result.Skipped.
func WithFilterNeighbor[S comparable](fn func(s S) bool) Option[S] {
	return func(o *Options[S]) { o.FilterNeighbor = fn }
}

// Result captures the outcome of a depth-first walk.
type Result[S comparable] struct {
	// Order records states in the sequence they finished (post-order).
	Order []S

	// Depth maps each state to its depth in the DFS tree.
	Depth map[S]int

	// Parent maps each non-start state to the state it was discovered from.
	Parent map[S]S

	// Skipped counts successors rejected by FilterNeighbor.
	Skipped int
}

// Visited reports whether s was reached.
func (r *Result[S]) Visited(s S) bool {
	_, ok := r.Depth[s]
	return ok
}
