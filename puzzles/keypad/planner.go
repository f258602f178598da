package keypad

import (
	"fmt"

	"github.com/hupe1980/puzzlekit/grid"
	"github.com/hupe1980/puzzlekit/search"
)

// costs holds, for a pair of keys on one pad, the human presses needed to
// move an arm from the first to the second and press it. A nil table is the
// human's own keypad, where every press costs one.
type costs map[[2]byte]int

func (c costs) between(from, to byte) int {
	if c == nil {
		return 1
	}
	return c[[2]byte{from, to}]
}

// aim is the seen key of a single arm: where it is and what its controller
// pressed last. Every arm further up the chain rests on Activate after each
// press, so nothing else matters.
type aim struct {
	at   grid.Point
	last byte
	done bool
}

type aimState struct {
	aim
	cost int
}

func (a aimState) Key() aim  { return a.aim }
func (a aimState) Cost() int { return a.cost }

// Planner prices every arm movement one robot at a time, from the human down
// to the door, so chains of any length stay cheap.
type Planner struct {
	robots int
	door   costs
	s      *search.Search[aimState]
	stats  search.Stats
}

// NewPlanner prices the moves for a chain of robots robots long.
func NewPlanner(robots int) (*Planner, error) {
	if robots < 1 || robots > MaxRobots {
		return nil, fmt.Errorf("%w: %d", ErrRobots, robots)
	}

	p := &Planner{
		robots: robots,
		s: search.New[aimState](
			search.NewDijkstra[aimState, int](),
			search.NewCostMap[aimState, aim, int](32),
		),
	}
	var below costs
	for range robots - 1 {
		below = p.layer(Directional, below)
	}
	p.door = p.layer(Numeric, below)
	return p, nil
}

func (p *Planner) layer(pad *Pad, below costs) costs {
	out := make(costs, len(pad.labels)*len(pad.labels))
	for _, from := range pad.labels {
		for _, to := range pad.labels {
			out[[2]byte{from, to}] = p.cheapest(pad, below, from, to)
		}
	}
	return out
}

// cheapest runs a Dijkstra over one arm, paying for every button its
// controller presses with the prices of the layer above.
func (p *Planner) cheapest(pad *Pad, below costs, from, to byte) int {
	p.s.Reset()
	defer func() { p.stats = p.stats.Add(p.s.Stats()) }()

	target := pad.pos[to]
	p.s.Push(aimState{aim: aim{at: pad.pos[from], last: Activate}})
	cost, _ := search.Find(p.s, func(s *search.Search[aimState], st aimState) (int, bool) {
		if st.done {
			return st.cost, true
		}
		if st.at == target {
			s.Push(aimState{
				aim:  aim{at: st.at, last: Activate, done: true},
				cost: st.cost + below.between(st.last, Activate),
			})
		}
		for _, a := range arrows {
			next := a.dir.Step(st.at)
			if _, ok := pad.Key(next); !ok {
				continue
			}
			s.Push(aimState{aim: aim{at: next, last: a.key}, cost: st.cost + below.between(st.last, a.key)})
		}
		return 0, false
	})
	return cost
}

// Robots returns the chain length the planner was built for.
func (p *Planner) Robots() int { return p.robots }

// Presses returns the fewest human button presses that type code, which
// must only hold keys of the numeric pad.
func (p *Planner) Presses(code Code) int {
	n := 0
	from := byte(Activate)
	for i := range len(code) {
		n += p.door.between(from, code[i])
		from = code[i]
	}
	return n
}

// Stats returns the work of every search run while pricing the chain.
func (p *Planner) Stats() search.Stats { return p.stats }
