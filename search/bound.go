package search

// Bound is a running optimum used to prune a search once the best cost is
// known. The zero value is unset.
type Bound[C Number] struct {
	value C
	set   bool
}

// Value returns the bound and whether it has been set.
func (b *Bound[C]) Value() (C, bool) { return b.value, b.set }

// Exceeded reports whether the bound is set and c is strictly worse.
func (b *Bound[C]) Exceeded(c C) bool { return b.set && c > b.value }

// Tighten sets the bound to c if it is unset or c is better.
func (b *Bound[C]) Tighten(c C) {
	if !b.set || c < b.value {
		b.value, b.set = c, true
	}
}

// Reset clears the bound.
func (b *Bound[C]) Reset() { *b = Bound[C]{} }
