// Package dfs implements depth-first search over an implicit state space.
//
// The walk starts from one or more roots and expands states with a
// transition function; every state is entered at most once. Pre-order
// (OnVisit) and post-order (OnExit) hooks may abort the walk with an error.
// Successors can be filtered, and descent can be capped with MaxDepth.
//
// The walk keeps an explicit stack rather than recursing, so long chains
// of states do not grow the goroutine stack.
//
// Complexity:
//
//   - Time:   O(V + E) plus hook and filter costs.
//   - Memory: O(V) for the stack and result maps.
//
// Errors:
//
//   - ErrNilTransition     if next is nil.
//   - ErrOptionViolation   for invalid options.
//   - ctx.Err()            if the context is cancelled.
//   - any error returned by OnVisit or OnExit, wrapped.
package dfs

import (
	"fmt"
)

// frame is one entry of the explicit stack: a state, its successors and
// the index of the next successor to try.
type frame[S comparable] struct {
	state S
	succ  []S
	next  int
}

// walker encapsulates state during a walk.
type walker[S comparable] struct {
	next Transition[S]
	opts Options[S]
	res  *Result[S]
}

// Walk runs depth-first search from each root in turn, skipping roots
// already reached. It returns the partial result with any error.
func Walk[S comparable](roots []S, next Transition[S], opts ...Option[S]) (*Result[S], error) {
	if next == nil {
		return nil, ErrNilTransition
	}
	o := DefaultOptions[S]()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		next: next,
		opts: o,
		res: &Result[S]{
			Depth:  make(map[S]int),
			Parent: make(map[S]S),
		},
	}
	for _, r := range roots {
		if w.res.Visited(r) {
			continue
		}
		if err := w.traverse(r); err != nil {
			return w.res, err
		}
	}
	return w.res, nil
}

// Reach returns every state reachable from roots in discovery order,
// roots included, never entering states rejected by keep.
func Reach[S comparable](roots []S, next Transition[S], keep func(S) bool) ([]S, error) {
	var order []S
	opts := []Option[S]{WithOnVisit(func(s S) error {
		order = append(order, s)
		return nil
	})}
	if keep != nil {
		opts = append(opts, WithFilterNeighbor(keep))
	}
	if _, err := Walk(roots, next, opts...); err != nil {
		return nil, err
	}
	return order, nil
}

// enter marks s discovered at depth and runs the pre-order hook.
func (w *walker[S]) enter(s S, depth int) (frame[S], error) {
	w.res.Depth[s] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(s); err != nil {
			return frame[S]{}, fmt.Errorf("dfs: OnVisit hook for %v: %w", s, err)
		}
	}
	f := frame[S]{state: s}
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		f.succ = w.next(s)
	}
	return f, nil
}

// traverse walks the tree rooted at root.
func (w *walker[S]) traverse(root S) error {
	top, err := w.enter(root, 0)
	if err != nil {
		return err
	}
	stack := []frame[S]{top}

	for len(stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		f := &stack[len(stack)-1]
		if f.next < len(f.succ) {
			nb := f.succ[f.next]
			f.next++
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb) {
				w.res.Skipped++
				continue
			}
			if w.res.Visited(nb) {
				continue
			}
			w.res.Parent[nb] = f.state
			child, err := w.enter(nb, len(stack))
			if err != nil {
				return err
			}
			stack = append(stack, child)
			continue
		}

		// all successors done: post-order
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(f.state); err != nil {
				return fmt.Errorf("dfs: OnExit hook for %v: %w", f.state, err)
			}
		}
		w.res.Order = append(w.res.Order, f.state)
		stack = stack[:len(stack)-1]
	}
	return nil
}
