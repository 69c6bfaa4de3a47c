package stateset

// Set is an insertion-ordered set of comparable states.
type Set[S comparable] struct {
	index map[S]struct{}
	order []S
}

// NewSet returns an empty Set with room for capacity states.
func NewSet[S comparable](capacity int) *Set[S] {
	return &Set[S]{
		index: make(map[S]struct{}, capacity),
		order: make([]S, 0, capacity),
	}
}

// Add inserts s and reports whether it was not already present.
// Complexity: O(1) amortized.
func (s *Set[S]) Add(state S) bool {
	if _, ok := s.index[state]; ok {
		return false
	}
	s.index[state] = struct{}{}
	s.order = append(s.order, state)
	return true
}

// Has reports whether state has been added.
func (s *Set[S]) Has(state S) bool {
	_, ok := s.index[state]
	return ok
}

// Len returns the number of distinct states.
func (s *Set[S]) Len() int { return len(s.order) }

// Items returns the states in insertion order. The slice is shared; callers
// must not modify it.
func (s *Set[S]) Items() []S { return s.order }

// Project counts the distinct values of key over all states, e.g. the
// number of distinct cells regardless of heading.
func Project[S comparable, K comparable](s *Set[S], key func(S) K) int {
	seen := make(map[K]struct{}, s.Len())
	for _, st := range s.order {
		seen[key(st)] = struct{}{}
	}
	return len(seen)
}
