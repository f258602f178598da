package search

// Number is the set of scalar types usable as costs and heuristics.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Keyed is implemented by states that expose an identity for deduplication.
// Two states with equal keys are the same place for visitation purposes.
type Keyed[K comparable] interface {
	Key() K
}

// Costed is implemented by states that carry an accumulated path cost.
type Costed[C Number] interface {
	Cost() C
}

// Estimated is implemented by states that carry both an accumulated cost and
// an estimate of the remaining cost to the goal.
type Estimated[C Number] interface {
	Costed[C]
	Heuristic() C
}

// OnlyKey is a state that is its own key.
type OnlyKey[K comparable] struct {
	K K
}

// Key implements Keyed.
func (s OnlyKey[K]) Key() K { return s.K }

// Node is a key with an accumulated cost.
type Node[K comparable, C Number] struct {
	K K
	C C
}

// Key implements Keyed.
func (n Node[K, C]) Key() K { return n.K }

// Cost implements Costed.
func (n Node[K, C]) Cost() C { return n.C }

// Estimate is a key with an accumulated cost and a heuristic estimate.
type Estimate[K comparable, C Number] struct {
	K K
	C C
	H C
}

// Key implements Keyed.
func (e Estimate[K, C]) Key() K { return e.K }

// Cost implements Costed.
func (e Estimate[K, C]) Cost() C { return e.C }

// Heuristic implements Estimated.
func (e Estimate[K, C]) Heuristic() C { return e.H }

// KeyExtra pairs a key with a payload that does not take part in identity.
type KeyExtra[K comparable, E any] struct {
	K K
	E E
}

// Key implements Keyed.
func (s KeyExtra[K, E]) Key() K { return s.K }
