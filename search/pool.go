package search

import "sync"

// Pool recycles Search instances across goroutines so fan-out callers avoid
// reallocating frontiers and seen spaces per work item.
type Pool[S any] struct {
	pool sync.Pool
}

// NewPool creates a pool that builds new searches with factory.
func NewPool[S any](factory func() *Search[S]) *Pool[S] {
	return &Pool[S]{
		pool: sync.Pool{
			New: func() any { return factory() },
		},
	}
}

// Get returns a reset Search from the pool.
func (p *Pool[S]) Get() *Search[S] {
	s := p.pool.Get().(*Search[S])
	s.Reset()
	return s
}

// Put returns a Search to the pool.
func (p *Pool[S]) Put(s *Search[S]) {
	if s == nil {
		return
	}
	p.pool.Put(s)
}
