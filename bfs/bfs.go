// Package bfs provides breadth-first exploration over an implicit state
// space, returning visit order, depths and parent links.
//
// The space is described by start states and a transition function; no
// graph is materialised. Each reachable state is visited exactly once.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/snowops/stateset"
)

// queueItem pairs a state with its BFS depth.
type queueItem[S comparable] struct {
	state S
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	next    Transition[S]
	opts    Options[S]
	queue   []queueItem[S]
	head    int
	visited *stateset.Set[S]
	res     *Result[S]
}

// Explore runs breadth-first search from every state in starts (all at
// depth 0), expanding states with next and applying any number of
// functional Options. Duplicate starts are collapsed.
// Returns ErrNoStart, ErrNilTransition or ErrOptionViolation for invalid
// input, the context error on cancellation, or a wrapped OnVisit error.
func Explore[S comparable](starts []S, next Transition[S], opts ...Option[S]) (*Result[S], error) {
	if len(starts) == 0 {
		return nil, ErrNoStart
	}
	if next == nil {
		return nil, ErrNilTransition
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := len(starts)
	w := &walker[S]{
		next:    next,
		opts:    o,
		queue:   make([]queueItem[S], 0, n),
		visited: stateset.NewSet[S](n),
		res: &Result[S]{
			Order:  make([]S, 0, n),
			Depth:  make(map[S]int, n),
			Parent: make(map[S]S),
		},
	}

	// Seed queue with start states (no parent)
	for _, s := range starts {
		if !w.visited.Has(s) {
			w.enqueue(s, 0, nil)
		}
	}
	// Main loop
	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.res, nil
}

// enqueue marks s visited at depth d, records its parent, calls OnEnqueue
// and appends it to the queue.
func (w *walker[S]) enqueue(s S, d int, parent *S) {
	w.visited.Add(s)
	w.res.Depth[s] = d
	if parent != nil {
		w.res.Parent[s] = *parent
	}
	w.opts.OnEnqueue(s, d)
	w.queue = append(w.queue, queueItem[S]{state: s, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[S]) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++
		if err := w.visit(item); err != nil {
			return err
		}
		w.expand(item)
	}
	return nil
}

// visit records the state in Order and calls OnVisit.
func (w *walker[S]) visit(item queueItem[S]) error {
	w.res.Order = append(w.res.Order, item.state)
	if err := w.opts.OnVisit(item.state, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.state, err)
	}
	return nil
}

// expand generates successors, applies MaxDepth, and enqueues each unseen one.
func (w *walker[S]) expand(item queueItem[S]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, s := range w.next(item.state) {
		if !w.visited.Has(s) {
			w.enqueue(s, nextDepth, &item.state)
		}
	}
}
