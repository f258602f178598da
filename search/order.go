package search

// Order is a frontier of admitted states with a pop discipline. Orders never
// deduplicate; that is the SeenSpace's job.
type Order[S any] interface {
	// Reset empties the frontier, keeping its backing storage.
	Reset()
	// Push adds a state to the frontier.
	Push(state S)
	// Next removes and returns the next state, or false if the frontier is
	// empty.
	Next() (S, bool)
	// Len returns the number of states in the frontier.
	Len() int
}

// Compile time checks to ensure the orders satisfy Order.
var (
	_ Order[int]                = (*BFS[int])(nil)
	_ Order[int]                = (*DFS[int])(nil)
	_ Order[Node[int, int]]     = (*Dijkstra[Node[int, int], int])(nil)
	_ Order[Estimate[int, int]] = (*AStar[Estimate[int, int], int])(nil)
)

const defaultFrontierCapacity = 64

// BFS is a FIFO frontier backed by a growable ring buffer.
type BFS[S any] struct {
	buf  []S
	head int
	n    int
}

// NewBFS creates an empty breadth-first frontier.
func NewBFS[S any]() *BFS[S] {
	return &BFS[S]{buf: make([]S, defaultFrontierCapacity)}
}

// Reset implements Order.
func (q *BFS[S]) Reset() {
	clear(q.buf)
	q.head, q.n = 0, 0
}

// Push implements Order.
func (q *BFS[S]) Push(state S) {
	if q.n == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.n)%len(q.buf)] = state
	q.n++
}

// Next implements Order.
func (q *BFS[S]) Next() (S, bool) {
	var zero S
	if q.n == 0 {
		return zero, false
	}
	state := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return state, true
}

// Len implements Order.
func (q *BFS[S]) Len() int { return q.n }

func (q *BFS[S]) grow() {
	newBuf := make([]S, max(len(q.buf)*2, defaultFrontierCapacity))
	for i := 0; i < q.n; i++ {
		newBuf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = newBuf
	q.head = 0
}

// DFS is a LIFO frontier backed by a slice.
type DFS[S any] struct {
	stack []S
}

// NewDFS creates an empty depth-first frontier.
func NewDFS[S any]() *DFS[S] {
	return &DFS[S]{stack: make([]S, 0, defaultFrontierCapacity)}
}

// Reset implements Order.
func (d *DFS[S]) Reset() {
	clear(d.stack)
	d.stack = d.stack[:0]
}

// Push implements Order.
func (d *DFS[S]) Push(state S) { d.stack = append(d.stack, state) }

// Next implements Order.
func (d *DFS[S]) Next() (S, bool) {
	var zero S
	n := len(d.stack)
	if n == 0 {
		return zero, false
	}
	state := d.stack[n-1]
	d.stack[n-1] = zero
	d.stack = d.stack[:n-1]
	return state, true
}

// Len implements Order.
func (d *DFS[S]) Len() int { return len(d.stack) }

// Dijkstra is a frontier that pops states in non-decreasing cost order.
// Ties are popped in no particular order.
type Dijkstra[S Costed[C], C Number] struct {
	heap minHeap[S, C]
}

// NewDijkstra creates an empty cost-ordered frontier.
func NewDijkstra[S Costed[C], C Number]() *Dijkstra[S, C] {
	return &Dijkstra[S, C]{heap: newMinHeap[S, C](defaultFrontierCapacity)}
}

// Reset implements Order.
func (d *Dijkstra[S, C]) Reset() { d.heap.reset() }

// Push implements Order.
func (d *Dijkstra[S, C]) Push(state S) {
	d.heap.push(heapItem[S, C]{priority: state.Cost(), state: state})
}

// Next implements Order.
func (d *Dijkstra[S, C]) Next() (S, bool) { return d.heap.pop() }

// Len implements Order.
func (d *Dijkstra[S, C]) Len() int { return d.heap.len() }

// AStar is a frontier that pops states in non-decreasing order of cost plus
// heuristic. It yields optimal results only for admissible, consistent
// heuristics.
type AStar[S Estimated[C], C Number] struct {
	heap minHeap[S, C]
}

// NewAStar creates an empty heuristic-guided frontier.
func NewAStar[S Estimated[C], C Number]() *AStar[S, C] {
	return &AStar[S, C]{heap: newMinHeap[S, C](defaultFrontierCapacity)}
}

// Reset implements Order.
func (a *AStar[S, C]) Reset() { a.heap.reset() }

// Push implements Order.
func (a *AStar[S, C]) Push(state S) {
	a.heap.push(heapItem[S, C]{priority: state.Cost() + state.Heuristic(), state: state})
}

// Next implements Order.
func (a *AStar[S, C]) Next() (S, bool) { return a.heap.pop() }

// Len implements Order.
func (a *AStar[S, C]) Len() int { return a.heap.len() }
