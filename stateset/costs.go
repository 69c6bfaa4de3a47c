package stateset

// CostTable maps states to the best cost recorded so far.
type CostTable[S comparable] struct {
	best map[S]int64
}

// NewCostTable returns an empty table sized for capacity states.
func NewCostTable[S comparable](capacity int) *CostTable[S] {
	return &CostTable[S]{best: make(map[S]int64, capacity)}
}

// Relax records cost for s if it strictly improves on the current best,
// and reports whether it did. Unseen states accept any cost.
func (t *CostTable[S]) Relax(s S, cost int64) bool {
	if cur, ok := t.best[s]; ok && cur <= cost {
		return false
	}
	t.best[s] = cost
	return true
}

// Get returns the best cost for s and whether s has been recorded.
func (t *CostTable[S]) Get(s S) (int64, bool) {
	c, ok := t.best[s]
	return c, ok
}

// Len returns the number of states with a recorded cost.
func (t *CostTable[S]) Len() int { return len(t.best) }
