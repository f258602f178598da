package search

// Expand is called with each popped state. It may push successors onto s and
// returns a result with true to stop the current Find.
type Expand[S, T any] func(s *Search[S], state S) (T, bool)

// Find pops states until expand yields a result or the frontier is exhausted.
// The second return value is false when the frontier ran dry.
func Find[S, T any](s *Search[S], expand Expand[S, T]) (T, bool) {
	for {
		state, ok := s.next()
		if !ok {
			var zero T
			return zero, false
		}
		if res, ok := expand(s, state); ok {
			return res, true
		}
	}
}

// Gather repeatedly runs Find with the same callback and hands every result to
// target, until the frontier is exhausted or the target reports it is full.
func Gather[S, T any, G GatherTarget[T]](s *Search[S], target G, expand Expand[S, T]) G {
	for i := 0; ; i++ {
		res, ok := Find(s, expand)
		if !ok || !target.Gather(i, res) {
			return target
		}
	}
}

// Fold repeatedly runs Find with the same callback and reduces every result
// into an accumulator starting at init.
func Fold[S, T, R any](s *Search[S], init R, expand Expand[S, T], reduce func(R, T) R) R {
	acc := init
	for {
		res, ok := Find(s, expand)
		if !ok {
			return acc
		}
		acc = reduce(acc, res)
	}
}

// Collect gathers every result into a slice.
func Collect[S, T any](s *Search[S], expand Expand[S, T]) []T {
	return Gather(s, NewSlice[T](0), expand).Values()
}

// Count returns the number of results the search yields.
func Count[S, T any](s *Search[S], expand Expand[S, T]) int {
	return Gather(s, &Counter[T]{}, expand).N
}

// BoundedExpand is an expansion callback that receives the running optimum
// explicitly. It may read or tighten the bound; the optimal drivers tighten it
// themselves whenever a result is yielded.
type BoundedExpand[S any, C Number, T any] func(s *Search[S], bound *Bound[C], state S) (T, bool)

// GatherOptimal gathers every result reachable at optimal cost. States whose
// cost exceeds the bound are dropped before expansion. Combined with a
// Dijkstra order and a ReentrantCostMap it enumerates every optimal path in a
// single traversal.
func GatherOptimal[S Costed[C], C Number, T any, G GatherTarget[T]](s *Search[S], bound *Bound[C], target G, expand BoundedExpand[S, C, T]) G {
	return Gather(s, target, boundedExpand(bound, expand))
}

// FoldOptimal is GatherOptimal reducing into an accumulator.
func FoldOptimal[S Costed[C], C Number, T, R any](s *Search[S], bound *Bound[C], init R, expand BoundedExpand[S, C, T], reduce func(R, T) R) R {
	return Fold(s, init, boundedExpand(bound, expand), reduce)
}

func boundedExpand[S Costed[C], C Number, T any](bound *Bound[C], expand BoundedExpand[S, C, T]) Expand[S, T] {
	return func(s *Search[S], state S) (T, bool) {
		cost := state.Cost()
		if bound.Exceeded(cost) {
			var zero T
			return zero, false
		}
		res, ok := expand(s, bound, state)
		if ok {
			bound.Tighten(cost)
		}
		return res, ok
	}
}
