package reindeer

import (
	"github.com/hupe1980/puzzlekit/grid"
	"github.com/hupe1980/puzzlekit/search"
)

// pose is what the seen spaces key on.
type pose struct {
	at  grid.Point
	dir grid.Direction
}

// traced carries the points where it turned. Paths between turns are
// straight, so the turn points are enough to recover every tile.
type traced struct {
	pose
	score int
	turns search.Trace[grid.Point]
}

func (t traced) Key() pose { return t.pose }
func (t traced) Cost() int { return t.score }

// BestPathsTrace finds the lowest score and the number of tiles on any
// lowest-score path, copying turn traces along with each state.
//
// A path with more than search.TraceCapacity turns panics with
// search.ErrTraceOverflow; use BestPaths for unbounded mazes.
func (m *Maze) BestPathsTrace() (Result, search.Stats, error) {
	s := search.New[traced](
		search.NewDijkstra[traced, int](),
		search.NewReentrantCostMap[traced, pose, int](1024),
	)
	s.Push(traced{pose: pose{at: m.Start, dir: grid.East}})

	var bound search.Bound[int]
	paths := search.GatherOptimal(s, &bound, search.NewSlice[search.Trace[grid.Point]](8),
		func(s *search.Search[traced], _ *search.Bound[int], t traced) (search.Trace[grid.Point], bool) {
			if t.at == m.End {
				return t.turns.Append(t.at), true
			}
			moves, n := m.moves(t.at, t.dir)
			for _, mv := range moves[:n] {
				next := traced{pose: pose{at: mv.at, dir: mv.dir}, score: t.score + mv.cost, turns: t.turns}
				if mv.turned {
					next.turns = next.turns.Append(t.at)
				}
				s.Push(next)
			}
			return search.Trace[grid.Point]{}, false
		}).Values()

	score, ok := bound.Value()
	if !ok {
		return Result{}, s.Stats(), ErrNoPath
	}

	onPath := grid.New(m.Walls.Width(), m.Walls.Height(), false)
	tiles := 0
	for _, trace := range paths {
		prev := m.Start
		for i := range trace.Len() {
			tiles += markSegment(onPath, prev, trace.At(i))
			prev = trace.At(i)
		}
	}
	return Result{Score: score, Tiles: tiles}, s.Stats(), nil
}

// markSegment marks the tiles on the straight line from a to b inclusive and
// returns how many were newly marked.
func markSegment(g *grid.Grid[bool], a, b grid.Point) int {
	d := grid.Pt(sign(b.X-a.X), sign(b.Y-a.Y))
	n := 0
	for p := a; ; p = p.Add(d) {
		if !g.At(p) {
			g.Set(p, true)
			n++
		}
		if p == b {
			return n
		}
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// linked points into an arena of visited tiles instead of copying its path.
type linked struct {
	pose
	score int
	node  int
}

func (l linked) Key() pose { return l.pose }
func (l linked) Cost() int { return l.score }

// BestPaths answers the same question as BestPathsTrace with parent links in
// an arena, so path length is unbounded.
func (m *Maze) BestPaths() (Result, search.Stats, error) {
	s := search.New[linked](
		search.NewDijkstra[linked, int](),
		search.NewReentrantCostMap[linked, pose, int](1024),
	)
	arena := search.NewArena[grid.Point](4096)
	s.Push(linked{pose: pose{at: m.Start, dir: grid.East}, node: arena.Add(search.Root, m.Start)})

	var bound search.Bound[int]
	onPath := search.FoldOptimal(s, &bound, grid.New(m.Walls.Width(), m.Walls.Height(), false),
		func(s *search.Search[linked], _ *search.Bound[int], l linked) (int, bool) {
			if l.at == m.End {
				return l.node, true
			}
			moves, n := m.moves(l.at, l.dir)
			for _, mv := range moves[:n] {
				next := linked{pose: pose{at: mv.at, dir: mv.dir}, score: l.score + mv.cost}
				// Only admitted states get an arena entry.
				if s.Seen().HasSeen(next) {
					continue
				}
				next.node = arena.Add(l.node, mv.at)
				s.Push(next)
			}
			return 0, false
		},
		func(g *grid.Grid[bool], node int) *grid.Grid[bool] {
			arena.Walk(node, func(p grid.Point) bool {
				g.Set(p, true)
				return true
			})
			return g
		})

	score, ok := bound.Value()
	if !ok {
		return Result{}, s.Stats(), ErrNoPath
	}

	tiles := 0
	for _, on := range onPath.All() {
		if on {
			tiles++
		}
	}
	return Result{Score: score, Tiles: tiles}, s.Stats(), nil
}

// LowestScore finds only the lowest score. Poses are packed into a dense
// integer key, tile index times four plus direction, so a flat cost array
// replaces the map.
func (m *Maze) LowestScore() (int, search.Stats, error) {
	type packed = search.Node[int, int]

	key := func(p grid.Point, d grid.Direction) int { return m.Walls.Index(p)*4 + int(d) }
	s := search.New[packed](
		search.NewDijkstra[packed, int](),
		search.NewCostArray[packed, int](m.Walls.Area()*4),
	)
	s.Push(packed{K: key(m.Start, grid.East), C: 0})

	score, ok := search.Find(s, func(s *search.Search[packed], st packed) (int, bool) {
		at, dir := m.Walls.PointOf(st.K/4), grid.Direction(st.K%4)
		if at == m.End {
			return st.C, true
		}
		moves, n := m.moves(at, dir)
		for _, mv := range moves[:n] {
			s.Push(packed{K: key(mv.at, mv.dir), C: st.C + mv.cost})
		}
		return 0, false
	})
	if !ok {
		return 0, s.Stats(), ErrNoPath
	}
	return score, s.Stats(), nil
}
