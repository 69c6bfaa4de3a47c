package cycle

// Stats reports cache effectiveness.
type Stats struct {
	Hits   int
	Misses int
	Size   int
}

// Memo maps a key to a computed value and counts lookups.
// It is owned by a single run and is not safe for concurrent use.
type Memo[K comparable, V any] struct {
	entries      map[K]V
	hits, misses int
}

// NewMemo returns an empty Memo.
func NewMemo[K comparable, V any]() *Memo[K, V] {
	return &Memo[K, V]{entries: make(map[K]V)}
}

// Get returns the cached value for k and records a hit or miss.
func (m *Memo[K, V]) Get(k K) (V, bool) {
	v, ok := m.entries[k]
	if ok {
		m.hits++
	} else {
		m.misses++
	}
	return v, ok
}

// Put stores v under k, replacing any previous value.
func (m *Memo[K, V]) Put(k K, v V) {
	m.entries[k] = v
}

// GetOrCompute returns the cached value for k, computing and storing it
// with compute on a miss.
func (m *Memo[K, V]) GetOrCompute(k K, compute func() V) V {
	if v, ok := m.Get(k); ok {
		return v
	}
	v := compute()
	m.entries[k] = v
	return v
}

// Stats returns the current hit, miss and size counters.
func (m *Memo[K, V]) Stats() Stats {
	return Stats{Hits: m.hits, Misses: m.misses, Size: len(m.entries)}
}
