package search

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// BitSeen is a set-once seen space for non-negative integer keys backed by a
// plain bitset and a dirty list, so Reset only touches words that were set.
// It grows on demand.
type BitSeen[S Keyed[int]] struct {
	bits  []uint64
	dirty []int
}

// NewBitSeen creates a BitSeen sized for keys in [0, capacity).
func NewBitSeen[S Keyed[int]](capacity int) *BitSeen[S] {
	return &BitSeen[S]{
		bits:  make([]uint64, (capacity+63)/64),
		dirty: make([]int, 0, 128),
	}
}

// Reset clears the bits set since the last reset.
func (v *BitSeen[S]) Reset() {
	for _, id := range v.dirty {
		v.bits[id>>6] &^= uint64(1) << (id & 63)
	}
	v.dirty = v.dirty[:0]
}

// HasSeen implements SeenSpace.
func (v *BitSeen[S]) HasSeen(state S) bool {
	id := state.Key()
	wordIdx := id >> 6
	if id < 0 || wordIdx >= len(v.bits) {
		return false
	}
	return v.bits[wordIdx]&(uint64(1)<<(id&63)) != 0
}

// TryMarkSeen implements SeenSpace.
func (v *BitSeen[S]) TryMarkSeen(state S) bool {
	id := state.Key()
	if id < 0 {
		panic(fmt.Errorf("%w: bit seen key %d", ErrKeyOutOfRange, id))
	}
	wordIdx := id >> 6
	bitMask := uint64(1) << (id & 63)

	if wordIdx >= len(v.bits) {
		v.grow(wordIdx + 1)
	}

	if v.bits[wordIdx]&bitMask != 0 {
		return false
	}
	v.bits[wordIdx] |= bitMask
	v.dirty = append(v.dirty, id)
	return true
}

// Len returns the number of keys admitted since the last reset.
func (v *BitSeen[S]) Len() int { return len(v.dirty) }

func (v *BitSeen[S]) grow(newLen int) {
	newCap := max(len(v.bits)*2, newLen)

	newBits := make([]uint64, newCap)
	copy(newBits, v.bits)
	v.bits = newBits
}

// Bitset is a set-once seen space for non-negative integer keys backed by a
// growable bits-and-blooms bitset. Prefer it over BitSeen when most of the
// key domain is visited, since Reset clears the whole set at once.
type Bitset[S Keyed[int]] struct {
	set *bitset.BitSet
}

// NewBitset creates a Bitset sized for keys in [0, capacity).
func NewBitset[S Keyed[int]](capacity int) *Bitset[S] {
	return &Bitset[S]{set: bitset.New(uint(capacity))}
}

// Reset implements SeenSpace.
func (b *Bitset[S]) Reset() { b.set.ClearAll() }

// HasSeen implements SeenSpace.
func (b *Bitset[S]) HasSeen(state S) bool {
	id := state.Key()
	return id >= 0 && b.set.Test(uint(id))
}

// TryMarkSeen implements SeenSpace.
func (b *Bitset[S]) TryMarkSeen(state S) bool {
	id := state.Key()
	if id < 0 {
		panic(fmt.Errorf("%w: bitset key %d", ErrKeyOutOfRange, id))
	}
	if b.set.Test(uint(id)) {
		return false
	}
	b.set.Set(uint(id))
	return true
}

// Len returns the number of admitted keys.
func (b *Bitset[S]) Len() int { return int(b.set.Count()) }

// Roaring is a set-once seen space for sparse uint32 keys backed by a roaring
// bitmap. It suits huge key domains (packed multi-field states) where only a
// small fraction is ever reached.
type Roaring[S Keyed[uint32]] struct {
	rb *roaring.Bitmap
}

// NewRoaring creates an empty Roaring seen space.
func NewRoaring[S Keyed[uint32]]() *Roaring[S] {
	return &Roaring[S]{rb: roaring.New()}
}

// Reset implements SeenSpace.
func (r *Roaring[S]) Reset() { r.rb.Clear() }

// HasSeen implements SeenSpace.
func (r *Roaring[S]) HasSeen(state S) bool { return r.rb.Contains(state.Key()) }

// TryMarkSeen implements SeenSpace.
func (r *Roaring[S]) TryMarkSeen(state S) bool { return r.rb.CheckedAdd(state.Key()) }

// Len returns the number of admitted keys.
func (r *Roaring[S]) Len() int { return int(r.rb.GetCardinality()) }

// Word64 is a set-once seen space for keys in [0, 64) stored in one word.
type Word64[S Keyed[int]] struct {
	word uint64
}

// Reset implements SeenSpace.
func (w *Word64[S]) Reset() { w.word = 0 }

// HasSeen implements SeenSpace.
func (w *Word64[S]) HasSeen(state S) bool {
	return w.word&w.mask(state.Key()) != 0
}

// TryMarkSeen implements SeenSpace.
func (w *Word64[S]) TryMarkSeen(state S) bool {
	m := w.mask(state.Key())
	if w.word&m != 0 {
		return false
	}
	w.word |= m
	return true
}

func (w *Word64[S]) mask(id int) uint64 {
	if id < 0 || id > 63 {
		panic(fmt.Errorf("%w: word64 key %d", ErrKeyOutOfRange, id))
	}
	return uint64(1) << id
}

// CostArray is a cost-relaxation seen space over integer keys in a fixed
// range [0, capacity). It never grows: keys outside the range panic.
type CostArray[S interface {
	Keyed[int]
	Costed[C]
}, C Number] struct {
	costs   []C
	present *bitset.BitSet
}

// NewCostArray creates a CostArray for keys in [0, capacity).
func NewCostArray[S interface {
	Keyed[int]
	Costed[C]
}, C Number](capacity int) *CostArray[S, C] {
	return &CostArray[S, C]{
		costs:   make([]C, capacity),
		present: bitset.New(uint(capacity)),
	}
}

// Reset implements SeenSpace.
func (a *CostArray[S, C]) Reset() { a.present.ClearAll() }

// HasSeen reports whether the state's cost is no better than the record.
func (a *CostArray[S, C]) HasSeen(state S) bool {
	id := a.index(state.Key())
	return a.present.Test(uint(id)) && state.Cost() >= a.costs[id]
}

// TryMarkSeen implements SeenSpace.
func (a *CostArray[S, C]) TryMarkSeen(state S) bool {
	id := a.index(state.Key())
	cost := state.Cost()
	if a.present.Test(uint(id)) && cost >= a.costs[id] {
		return false
	}
	a.costs[id] = cost
	a.present.Set(uint(id))
	return true
}

// Best returns the best cost admitted for key.
func (a *CostArray[S, C]) Best(key int) (C, bool) {
	id := a.index(key)
	if !a.present.Test(uint(id)) {
		var zero C
		return zero, false
	}
	return a.costs[id], true
}

func (a *CostArray[S, C]) index(id int) int {
	if id < 0 || id >= len(a.costs) {
		panic(fmt.Errorf("%w: cost array key %d (capacity %d)", ErrKeyOutOfRange, id, len(a.costs)))
	}
	return id
}
