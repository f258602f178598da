package search

import "fmt"

// TraceCapacity is the maximum number of entries a Trace can hold.
const TraceCapacity = 64

// Trace is a fixed-capacity path copied by value along with each frontier
// state. It avoids allocation for short, bounded-depth searches; Append
// panics with ErrTraceOverflow instead of truncating. Use an Arena when the
// depth is unbounded.
type Trace[T any] struct {
	items [TraceCapacity]T
	n     int
}

// Append returns a copy of t with v appended.
func (t Trace[T]) Append(v T) Trace[T] {
	if t.n == TraceCapacity {
		panic(fmt.Errorf("%w: %d entries", ErrTraceOverflow, TraceCapacity))
	}
	t.items[t.n] = v
	t.n++
	return t
}

// Len returns the number of entries.
func (t *Trace[T]) Len() int { return t.n }

// At returns the i-th entry.
func (t *Trace[T]) At(i int) T { return t.items[:t.n][i] }

// Last returns the most recent entry, or false if the trace is empty.
func (t *Trace[T]) Last() (T, bool) {
	if t.n == 0 {
		var zero T
		return zero, false
	}
	return t.items[t.n-1], true
}

// Slice returns a newly allocated copy of the entries.
func (t *Trace[T]) Slice() []T {
	out := make([]T, t.n)
	copy(out, t.items[:t.n])
	return out
}

// Root is the parent index of arena entries without a parent.
const Root = -1

type arenaEntry[T any] struct {
	value  T
	parent int
}

// Arena stores visited nodes with explicit parent links so frontier states
// carry a single index instead of their whole path. Paths are rebuilt only
// when a result needs them.
type Arena[T any] struct {
	entries []arenaEntry[T]
}

// NewArena creates an arena with the given capacity hint.
func NewArena[T any](capacity int) *Arena[T] {
	return &Arena[T]{entries: make([]arenaEntry[T], 0, capacity)}
}

// Add stores v with the given parent index (Root for none) and returns the
// index of the new entry.
func (a *Arena[T]) Add(parent int, v T) int {
	if parent < Root || parent >= len(a.entries) {
		panic(fmt.Errorf("%w: arena parent %d (len %d)", ErrKeyOutOfRange, parent, len(a.entries)))
	}
	a.entries = append(a.entries, arenaEntry[T]{value: v, parent: parent})
	return len(a.entries) - 1
}

// Value returns the value stored at index.
func (a *Arena[T]) Value(index int) T { return a.entries[index].value }

// Parent returns the parent index of the entry at index.
func (a *Arena[T]) Parent(index int) int { return a.entries[index].parent }

// Path returns the values from the root to index, root first.
func (a *Arena[T]) Path(index int) []T {
	depth := 0
	for i := index; i != Root; i = a.entries[i].parent {
		depth++
	}
	path := make([]T, depth)
	for i := index; i != Root; i = a.entries[i].parent {
		depth--
		path[depth] = a.entries[i].value
	}
	return path
}

// Walk calls fn for every value from index back to the root, stopping early
// if fn returns false.
func (a *Arena[T]) Walk(index int, fn func(T) bool) {
	for i := index; i != Root; i = a.entries[i].parent {
		if !fn(a.entries[i].value) {
			return
		}
	}
}

// Len returns the number of entries.
func (a *Arena[T]) Len() int { return len(a.entries) }

// Reset drops all entries, keeping the backing storage.
func (a *Arena[T]) Reset() {
	clear(a.entries)
	a.entries = a.entries[:0]
}
