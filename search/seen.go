package search

// SeenSpace decides whether a pushed state is admitted into the frontier.
type SeenSpace[S any] interface {
	// Reset clears all recorded state. A reset space behaves exactly like a
	// freshly constructed one.
	Reset()
	// HasSeen reports whether the state would be rejected. It never mutates.
	HasSeen(state S) bool
	// TryMarkSeen records the state and reports whether it is admitted.
	// It is called exactly once per push.
	TryMarkSeen(state S) bool
}

// Compile time checks to ensure the map-backed spaces satisfy SeenSpace.
var (
	_ SeenSpace[int]            = NoSeen[int]{}
	_ SeenSpace[OnlyKey[int]]   = (*SeenSet[OnlyKey[int], int])(nil)
	_ SeenSpace[Node[int, int]] = (*CostMap[Node[int, int], int, int])(nil)
	_ SeenSpace[Node[int, int]] = (*ReentrantCostMap[Node[int, int], int, int])(nil)
)

// NoSeen admits every state. Use it for exhaustive enumeration where repeated
// visits are intended; termination is then the caller's responsibility.
type NoSeen[S any] struct{}

// Reset implements SeenSpace.
func (NoSeen[S]) Reset() {}

// HasSeen implements SeenSpace.
func (NoSeen[S]) HasSeen(S) bool { return false }

// TryMarkSeen implements SeenSpace.
func (NoSeen[S]) TryMarkSeen(S) bool { return true }

// SeenSet admits a state only the first time its key is pushed.
type SeenSet[S Keyed[K], K comparable] struct {
	keys map[K]struct{}
}

// NewSeenSet creates a set-once seen space with the given initial capacity.
func NewSeenSet[S Keyed[K], K comparable](capacity int) *SeenSet[S, K] {
	return &SeenSet[S, K]{keys: make(map[K]struct{}, capacity)}
}

// Reset implements SeenSpace.
func (s *SeenSet[S, K]) Reset() { clear(s.keys) }

// HasSeen implements SeenSpace.
func (s *SeenSet[S, K]) HasSeen(state S) bool {
	_, ok := s.keys[state.Key()]
	return ok
}

// TryMarkSeen implements SeenSpace.
func (s *SeenSet[S, K]) TryMarkSeen(state S) bool {
	k := state.Key()
	if _, ok := s.keys[k]; ok {
		return false
	}
	s.keys[k] = struct{}{}
	return true
}

// Len returns the number of distinct keys admitted so far.
func (s *SeenSet[S, K]) Len() int { return len(s.keys) }

// CostMap admits a state if its key is new or its cost is strictly lower than
// the best cost recorded for that key. Admission overwrites the record.
type CostMap[S interface {
	Keyed[K]
	Costed[C]
}, K comparable, C Number] struct {
	best map[K]C
}

// NewCostMap creates a cost-relaxation seen space.
func NewCostMap[S interface {
	Keyed[K]
	Costed[C]
}, K comparable, C Number](capacity int) *CostMap[S, K, C] {
	return &CostMap[S, K, C]{best: make(map[K]C, capacity)}
}

// Reset implements SeenSpace.
func (m *CostMap[S, K, C]) Reset() { clear(m.best) }

// HasSeen reports whether the state's cost is no better than the record.
func (m *CostMap[S, K, C]) HasSeen(state S) bool {
	c, ok := m.best[state.Key()]
	return ok && state.Cost() >= c
}

// TryMarkSeen implements SeenSpace.
func (m *CostMap[S, K, C]) TryMarkSeen(state S) bool {
	k, cost := state.Key(), state.Cost()
	if c, ok := m.best[k]; ok && cost >= c {
		return false
	}
	m.best[k] = cost
	return true
}

// Best returns the best cost admitted for key.
func (m *CostMap[S, K, C]) Best(key K) (C, bool) {
	c, ok := m.best[key]
	return c, ok
}

// ReentrantCostMap is a CostMap that also admits cost ties, so every path of
// optimal cost reaches the frontier instead of only the first one found.
type ReentrantCostMap[S interface {
	Keyed[K]
	Costed[C]
}, K comparable, C Number] struct {
	best map[K]C
}

// NewReentrantCostMap creates a tie-admitting cost-relaxation seen space.
func NewReentrantCostMap[S interface {
	Keyed[K]
	Costed[C]
}, K comparable, C Number](capacity int) *ReentrantCostMap[S, K, C] {
	return &ReentrantCostMap[S, K, C]{best: make(map[K]C, capacity)}
}

// Reset implements SeenSpace.
func (m *ReentrantCostMap[S, K, C]) Reset() { clear(m.best) }

// HasSeen reports whether the state's cost is strictly worse than the record.
func (m *ReentrantCostMap[S, K, C]) HasSeen(state S) bool {
	c, ok := m.best[state.Key()]
	return ok && state.Cost() > c
}

// TryMarkSeen implements SeenSpace.
func (m *ReentrantCostMap[S, K, C]) TryMarkSeen(state S) bool {
	k, cost := state.Key(), state.Cost()
	c, ok := m.best[k]
	switch {
	case !ok || cost < c:
		m.best[k] = cost
		return true
	case cost == c:
		return true
	default:
		return false
	}
}

// Best returns the best cost admitted for key.
func (m *ReentrantCostMap[S, K, C]) Best(key K) (C, bool) {
	c, ok := m.best[key]
	return c, ok
}
