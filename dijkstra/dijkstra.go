// Package dijkstra implements Dijkstra's cost-relaxation search over an
// implicit state space with non-negative edge costs.
//
// Notes on implementation choices:
//
//   - States are settled in order of increasing cost using a min-heap.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries whose cost no longer matches the best known.
//   - The first goal state popped is optimal across every goal state, so a
//     goal spanning many auxiliary slots (heading, run length) needs no
//     separate scan.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/snowops/stateset"
)

// ShortestCost returns the minimum cost from any start state to any state
// satisfying isGoal. It returns ErrUnreachable if no goal can be reached.
func ShortestCost[S comparable](starts []Start[S], isGoal func(S) bool, next Transition[S], opts ...Option) (int64, error) {
	res, err := Search(starts, isGoal, next, opts...)
	if err != nil {
		return 0, err
	}
	return res.Cost, nil
}

// Search runs the relaxation and returns the cheapest goal with its cost.
//
// Preconditions and validation (in order):
//  1. starts must be non-empty (ErrNoStart).
//  2. isGoal and next must be non-nil (ErrNilTransition).
//  3. Options must be valid (ErrBadMaxCost).
//  4. Start and edge costs must be non-negative (ErrNegativeCost).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Search[S comparable](starts []Start[S], isGoal func(S) bool, next Transition[S], opts ...Option) (*Result[S], error) {
	// 1) Validate inputs
	if len(starts) == 0 {
		return nil, ErrNoStart
	}
	if isGoal == nil || next == nil {
		return nil, ErrNilTransition
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Initialize runner with the cost table, settled set and heap.
	r := &runner[S]{
		options: cfg,
		isGoal:  isGoal,
		next:    next,
		best:    stateset.NewCostTable[S](len(starts)),
		settled: stateset.NewSet[S](len(starts)),
		pq:      make(statePQ[S], 0, len(starts)),
	}
	if err := r.init(starts); err != nil {
		return nil, err
	}

	return r.process()
}

// runner holds the mutable state for a single search.
type runner[S comparable] struct {
	options Options
	isGoal  func(S) bool
	next    Transition[S]
	best    *stateset.CostTable[S] // best-known cost per state
	settled *stateset.Set[S]       // states whose cost is final
	pq      statePQ[S]             // min-heap for lazy decrease-key
}

// init records every start state and pushes it onto the heap.
func (r *runner[S]) init(starts []Start[S]) error {
	heap.Init(&r.pq)
	for _, s := range starts {
		if s.Cost < 0 {
			return fmt.Errorf("%w: start %v cost=%d", ErrNegativeCost, s.State, s.Cost)
		}
		if s.Cost > r.options.MaxCost {
			continue
		}
		if r.best.Relax(s.State, s.Cost) {
			heap.Push(&r.pq, stateItem[S]{state: s.State, cost: s.Cost})
		}
	}
	return nil
}

// process repeatedly settles the cheapest state until a goal is popped
// or the heap is exhausted.
func (r *runner[S]) process() (*Result[S], error) {
	for r.pq.Len() > 0 {
		select {
		case <-r.options.Ctx.Done():
			return nil, r.options.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(stateItem[S])

		// Skip stale heap entries: already settled, or superseded by a cheaper push.
		if r.settled.Has(item.state) {
			continue
		}
		if best, _ := r.best.Get(item.state); item.cost > best {
			continue
		}
		r.settled.Add(item.state)

		if r.isGoal(item.state) {
			return &Result[S]{Cost: item.cost, Goal: item.state, Settled: r.settled.Len()}, nil
		}
		if err := r.relax(item); err != nil {
			return nil, err
		}
	}

	return nil, ErrUnreachable
}

// relax examines each edge out of item and pushes every strict improvement.
func (r *runner[S]) relax(item stateItem[S]) error {
	for _, e := range r.next(item.state) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: edge %v→%v cost=%d", ErrNegativeCost, item.state, e.To, e.Cost)
		}
		if r.settled.Has(e.To) {
			continue
		}
		newCost := item.cost + e.Cost
		if newCost > r.options.MaxCost {
			continue
		}
		if !r.best.Relax(e.To, newCost) {
			continue
		}
		heap.Push(&r.pq, stateItem[S]{state: e.To, cost: newCost})
	}
	return nil
}

// stateItem is a heap entry: a state and the cost it was pushed with.
type stateItem[S comparable] struct {
	state S
	cost  int64
}

// statePQ is a min-heap of stateItem ordered by cost ascending.
type statePQ[S comparable] []stateItem[S]

// Len returns the number of items in the heap.
func (pq statePQ[S]) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq statePQ[S]) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq statePQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *statePQ[S]) Push(x any) { *pq = append(*pq, x.(stateItem[S])) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *statePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
