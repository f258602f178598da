package search

// Search composes one Order with one SeenSpace. Every push passes the seen
// space before it reaches the frontier.
//
// Search is NOT thread-safe. It is intended to be owned by a single goroutine
// for the duration of a query, and reused across queries via Reset.
type Search[S any] struct {
	order Order[S]
	seen  SeenSpace[S]
	stats Stats
}

// Stats counts the traffic through a Search since its last Reset.
type Stats struct {
	// Pushed is the number of Push calls.
	Pushed int
	// Admitted is the number of pushes that passed the seen space.
	Admitted int
	// Popped is the number of states handed to expansion callbacks.
	Popped int
}

// Rejected returns the number of pushes refused by the seen space.
func (s Stats) Rejected() int { return s.Pushed - s.Admitted }

// Add returns the element-wise sum of two Stats.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Pushed:   s.Pushed + o.Pushed,
		Admitted: s.Admitted + o.Admitted,
		Popped:   s.Popped + o.Popped,
	}
}

// New creates a Search over the given frontier and seen space.
func New[S any](order Order[S], seen SeenSpace[S]) *Search[S] {
	return &Search[S]{order: order, seen: seen}
}

// Without creates a Search that admits every pushed state.
func Without[S any](order Order[S]) *Search[S] {
	return New[S](order, NoSeen[S]{})
}

// Push offers a state to the search and reports whether the seen space
// admitted it into the frontier.
func (s *Search[S]) Push(state S) bool {
	s.stats.Pushed++
	if !s.seen.TryMarkSeen(state) {
		return false
	}
	s.stats.Admitted++
	s.order.Push(state)
	return true
}

// Reset clears the frontier, the seen space and the stats, keeping backing
// storage for the next query.
func (s *Search[S]) Reset() {
	s.order.Reset()
	s.seen.Reset()
	s.stats = Stats{}
}

// Len returns the number of states waiting in the frontier.
func (s *Search[S]) Len() int { return s.order.Len() }

// Stats returns the counters accumulated since the last Reset.
func (s *Search[S]) Stats() Stats { return s.stats }

// Order returns the frontier owned by the search.
func (s *Search[S]) Order() Order[S] { return s.order }

// Seen returns the seen space owned by the search.
func (s *Search[S]) Seen() SeenSpace[S] { return s.seen }

// next pops the next frontier state.
func (s *Search[S]) next() (S, bool) {
	state, ok := s.order.Next()
	if ok {
		s.stats.Popped++
	}
	return state, ok
}
