package reindeer

import (
	"cmp"

	"github.com/hupe1980/puzzlekit/graph"
	"github.com/hupe1980/puzzlekit/grid"
	"github.com/hupe1980/puzzlekit/search"
)

// Corridor is an edge of the junction graph: the only walk from one junction
// to the next when leaving in direction Exit.
type Corridor struct {
	// Steps counts the tiles walked, the far junction included.
	Steps int
	// Score is the cost of the walk, turns inside the corridor included.
	Score int
	Exit  grid.Direction
	Enter grid.Direction
}

// Junctions is a maze reduced to its start, its end and every tile with more
// than two open neighbors.
type Junctions = graph.Graph[grid.Point, Corridor]

// walker follows a corridor.
type walker struct {
	at    grid.Point
	dir   grid.Direction
	steps int
	score int
}

// BuildGraph reduces the maze to its junctions. One depth-first walker is
// reset and rerun for every junction and exit; corridors that dead-end add
// no edge.
func (m *Maze) BuildGraph() (*Junctions, search.Stats) {
	junction := grid.New(m.Walls.Width(), m.Walls.Height(), false)
	var list []grid.Point
	for p, wall := range m.Walls.All() {
		if wall {
			continue
		}
		if p == m.Start || p == m.End || m.openNeighbors(p) > 2 {
			junction.Set(p, true)
			list = append(list, p)
		}
	}

	g := graph.New[grid.Point, Corridor](len(list))
	s := search.Without[walker](search.NewDFS[walker]())
	var total search.Stats

	for _, p := range list {
		a := g.Ensure(p)
		for _, exit := range grid.Directions {
			if !m.Open(exit.Step(p)) {
				continue
			}
			s.Reset()
			s.Push(walker{at: p, dir: exit})
			end, ok := search.Find(s, func(s *search.Search[walker], w walker) (walker, bool) {
				// Inside a corridor the first open move is the only one.
				moves, n := m.moves(w.at, w.dir)
				if n == 0 {
					return walker{}, false
				}
				mv := moves[0]
				next := walker{at: mv.at, dir: mv.dir, steps: w.steps + 1, score: w.score + mv.cost}
				if junction.At(next.at) {
					return next, true
				}
				s.Push(next)
				return walker{}, false
			})
			total = total.Add(s.Stats())
			if ok {
				g.Connect(a, g.Ensure(end.at), Corridor{Steps: end.steps, Score: end.score, Exit: exit, Enter: end.dir})
			}
		}
	}
	return g, total
}

func (m *Maze) openNeighbors(p grid.Point) int {
	n := 0
	for _, q := range p.CardinalNeighbors() {
		if m.Open(q) {
			n++
		}
	}
	return n
}

// heading is what the graph searches key on.
type heading struct {
	node int
	dir  grid.Direction
}

type hop struct {
	heading
	score int
	link  int
}

func (h hop) Key() heading { return h.heading }
func (h hop) Cost() int    { return h.score }

// follow returns the state reached by taking corridor e from h. Corridors
// leading back the way the reindeer came are never taken.
func (h hop) follow(e graph.Edge[Corridor]) (hop, bool) {
	c := e.Value
	if c.Exit == h.dir.TurnAround() {
		return hop{}, false
	}
	next := hop{heading: heading{node: e.To, dir: c.Enter}, score: h.score + c.Score}
	if c.Exit != h.dir {
		next.score += TurnCost
	}
	return next, true
}

func (m *Maze) ends(g *Junctions) (start, end int) {
	start, _ = g.Index(m.Start)
	end, _ = g.Index(m.End)
	return start, end
}

// LowestScoreGraph finds the lowest score over the junction graph.
func (m *Maze) LowestScoreGraph(g *Junctions) (int, search.Stats, error) {
	start, end := m.ends(g)
	s := search.New[hop](
		search.NewDijkstra[hop, int](),
		search.NewCostMap[hop, heading, int](64),
	)
	s.Push(hop{heading: heading{node: start, dir: grid.East}})

	score, ok := search.Find(s, func(s *search.Search[hop], h hop) (int, bool) {
		if h.node == end {
			return h.score, true
		}
		for _, e := range g.Edges(h.node) {
			if next, ok := h.follow(e); ok {
				s.Push(next)
			}
		}
		return 0, false
	})
	if !ok {
		return 0, s.Stats(), ErrNoPath
	}
	return score, s.Stats(), nil
}

// span names a corridor by both of its mouths, so walking it either way
// yields the same span.
type span struct {
	a, b     heading
	interior int
}

func spanOf(from int, e graph.Edge[Corridor]) span {
	a := heading{node: from, dir: e.Value.Exit}
	b := heading{node: e.To, dir: e.Value.Enter.TurnAround()}
	if cmp.Or(cmp.Compare(a.node, b.node), cmp.Compare(a.dir, b.dir)) > 0 {
		a, b = b, a
	}
	return span{a: a, b: b, interior: e.Value.Steps - 1}
}

// BestPathsGraph answers both parts over the junction graph: every corridor
// on a lowest-score path is recorded in an arena, and the tiles are the
// junctions they join plus their interior tiles.
func (m *Maze) BestPathsGraph(g *Junctions) (Result, search.Stats, error) {
	start, end := m.ends(g)
	s := search.New[hop](
		search.NewDijkstra[hop, int](),
		search.NewReentrantCostMap[hop, heading, int](64),
	)
	arena := search.NewArena[span](256)
	s.Push(hop{heading: heading{node: start, dir: grid.East}, link: search.Root})

	var bound search.Bound[int]
	used := search.FoldOptimal(s, &bound, map[span]struct{}{},
		func(s *search.Search[hop], _ *search.Bound[int], h hop) (int, bool) {
			if h.node == end {
				return h.link, true
			}
			for _, e := range g.Edges(h.node) {
				next, ok := h.follow(e)
				if !ok || s.Seen().HasSeen(next) {
					continue
				}
				next.link = arena.Add(h.link, spanOf(h.node, e))
				s.Push(next)
			}
			return 0, false
		},
		func(used map[span]struct{}, link int) map[span]struct{} {
			arena.Walk(link, func(sp span) bool {
				used[sp] = struct{}{}
				return true
			})
			return used
		})

	score, ok := bound.Value()
	if !ok {
		return Result{}, s.Stats(), ErrNoPath
	}

	nodes := map[int]struct{}{start: {}}
	tiles := 0
	for sp := range used {
		nodes[sp.a.node] = struct{}{}
		nodes[sp.b.node] = struct{}{}
		tiles += sp.interior
	}
	return Result{Score: score, Tiles: tiles + len(nodes)}, s.Stats(), nil
}
