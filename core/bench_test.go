package core_test

import (
	"testing"

	"github.com/katalvlaran/waypath/core"
)

// BenchmarkAddEdge_Chain measures building a linear chain of N edges.
func BenchmarkAddEdge_Chain(b *testing.B) {
	const N = 10000

	b.ReportAllocs()
	b.SetBytes(int64(N))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		g := core.NewGraph()
		prev := g.AddVertex(0)
		for j := 1; j <= N; j++ {
			next := g.AddVertex(j)
			_ = g.AddEdge(prev, next, 1)
			prev = next
		}
	}
}

// BenchmarkNeighbors measures adjacency lookups on a star graph.
func BenchmarkNeighbors(b *testing.B) {
	const spokes = 1000
	g := core.NewGraph(core.WithDirected(true))
	hub := g.AddVertex("hub")
	for i := 0; i < spokes; i++ {
		_ = g.AddEdge(hub, g.AddVertex(i), 1)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors(hub)
	}
}
