package search

import (
	"testing"

	"github.com/hupe1980/puzzlekit/grid"
	"github.com/hupe1980/puzzlekit/testutil"
)

func benchmarkGrid(b *testing.B, s *Search[cell], weights *grid.Grid[int]) {
	b.Helper()
	maze := testutil.NewRNG(1).Maze(64, 64, 0.2)
	goal := grid.Pt(63, 63)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Reset()
		shortest(s, maze, weights, grid.Pt(0, 0), goal)
	}
}

func BenchmarkBFS_SeenSet(b *testing.B) {
	benchmarkGrid(b, newBFS(), nil)
}

func BenchmarkDijkstra_CostMap(b *testing.B) {
	weights := testutil.NewRNG(2).Weights(64, 64, 1, 9)
	benchmarkGrid(b, newDijkstra(), weights)
}

type indexed = Node[int, int]

func BenchmarkBFS_BitSeen(b *testing.B) {
	const width = 64
	maze := testutil.NewRNG(1).Maze(width, width, 0.2)
	s := New[indexed](NewBFS[indexed](), NewBitSeen[indexed](width*width))
	goal := maze.Index(grid.Pt(width-1, width-1))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Reset()
		s.Push(indexed{K: 0})
		Find(s, func(s *Search[indexed], n indexed) (int, bool) {
			if n.K == goal {
				return n.C, true
			}
			for _, next := range maze.PointOf(n.K).CardinalNeighbors() {
				if wall, ok := maze.Get(next); ok && !wall {
					s.Push(indexed{K: maze.Index(next), C: n.C + 1})
				}
			}
			return 0, false
		})
	}
}
