package search

// heapItem stores a state next to the priority computed when it was pushed.
type heapItem[S any, C Number] struct {
	priority C
	state    S
}

// minHeap is a value-based binary min-heap. It does NOT implement
// container/heap to avoid interface boxing on every push and pop.
type minHeap[S any, C Number] struct {
	items []heapItem[S, C]
}

func newMinHeap[S any, C Number](capacity int) minHeap[S, C] {
	return minHeap[S, C]{items: make([]heapItem[S, C], 0, capacity)}
}

func (h *minHeap[S, C]) len() int { return len(h.items) }

// reset truncates the heap, zeroing items so popped states can be collected.
func (h *minHeap[S, C]) reset() {
	clear(h.items)
	h.items = h.items[:0]
}

func (h *minHeap[S, C]) push(item heapItem[S, C]) {
	h.items = append(h.items, item)
	h.siftUp(len(h.items) - 1)
}

func (h *minHeap[S, C]) pop() (S, bool) {
	n := len(h.items)
	if n == 0 {
		var zero S
		return zero, false
	}
	root := h.items[0]
	last := h.items[n-1]
	h.items[n-1] = heapItem[S, C]{}
	h.items = h.items[:n-1]
	if n-1 > 0 {
		h.items[0] = last
		h.siftDown(0)
	}
	return root.state, true
}

func (h *minHeap[S, C]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if h.items[i].priority >= h.items[p].priority {
			return
		}
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

func (h *minHeap[S, C]) siftDown(i int) {
	n := len(h.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		r := l + 1
		if r < n && h.items[r].priority < h.items[l].priority {
			best = r
		}
		if h.items[best].priority >= h.items[i].priority {
			return
		}
		h.items[i], h.items[best] = h.items[best], h.items[i]
		i = best
	}
}
