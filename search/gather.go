package search

// GatherTarget receives the results of Gather.
type GatherTarget[T any] interface {
	// Gather stores the i-th result. Indices start at zero and increase by
	// one per call. Returning false stops the gathering.
	Gather(i int, value T) bool
}

// Compile time checks to ensure the targets satisfy GatherTarget.
var (
	_ GatherTarget[int]            = (*Slice[int])(nil)
	_ GatherTarget[int]            = (*Limit[int])(nil)
	_ GatherTarget[int]            = (*Counter[int])(nil)
	_ GatherTarget[int]            = (*First[int])(nil)
	_ GatherTarget[Pair[int, int]] = (*Pairs[int, int])(nil)
)

// Slice collects every result.
type Slice[T any] struct {
	values []T
}

// NewSlice creates a Slice target with a capacity hint.
func NewSlice[T any](capacity int) *Slice[T] {
	if capacity <= 0 {
		capacity = 16
	}
	return &Slice[T]{values: make([]T, 0, capacity)}
}

// Gather implements GatherTarget.
func (s *Slice[T]) Gather(_ int, value T) bool {
	s.values = append(s.values, value)
	return true
}

// Values returns the collected results.
func (s *Slice[T]) Values() []T { return s.values }

// Limit collects results until it holds its fixed capacity.
type Limit[T any] struct {
	values []T
}

// NewLimit creates a Limit target holding at most n results.
func NewLimit[T any](n int) *Limit[T] {
	return &Limit[T]{values: make([]T, 0, n)}
}

// Gather implements GatherTarget.
func (l *Limit[T]) Gather(_ int, value T) bool {
	if len(l.values) == cap(l.values) {
		return false
	}
	l.values = append(l.values, value)
	return len(l.values) < cap(l.values)
}

// Values returns the collected results.
func (l *Limit[T]) Values() []T { return l.values }

// Counter only counts results.
type Counter[T any] struct {
	N int
}

// Gather implements GatherTarget.
func (c *Counter[T]) Gather(i int, _ T) bool {
	c.N = i + 1
	return true
}

// First keeps the first result and stops.
type First[T any] struct {
	Value T
	Found bool
}

// Gather implements GatherTarget.
func (f *First[T]) Gather(_ int, value T) bool {
	f.Value, f.Found = value, true
	return false
}

// Pair is a key/value result for the Pairs target.
type Pair[K comparable, V any] struct {
	K K
	V V
}

// Pairs collects key/value results into a map. Later results overwrite
// earlier ones with the same key.
type Pairs[K comparable, V any] struct {
	M map[K]V
}

// NewPairs creates a Pairs target with a capacity hint.
func NewPairs[K comparable, V any](capacity int) *Pairs[K, V] {
	if capacity <= 0 {
		capacity = 16
	}
	return &Pairs[K, V]{M: make(map[K]V, capacity)}
}

// Gather implements GatherTarget.
func (p *Pairs[K, V]) Gather(_ int, value Pair[K, V]) bool {
	p.M[value.K] = value.V
	return true
}
