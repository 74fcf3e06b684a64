// Package core_test provides runnable examples for the waypath graph store.
package core_test

import (
	"fmt"

	"github.com/katalvlaran/waypath/core"
)

// ExampleGraph_AddEdge demonstrates building a small undirected graph and
// inspecting its mirrored adjacency.
func ExampleGraph_AddEdge() {
	// 1) Create an undirected graph (the default).
	g := core.NewGraph()

	// 2) Register vertices; keep the returned handles.
	a := g.AddVertex("A")
	b := g.AddVertex("B")

	// 3) Connect A—B with weight 4. Undirected graphs mirror the record.
	if err := g.AddEdge(a, b, 4); err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) Both endpoints see the connection.
	fromA, _ := g.Neighbors(a)
	fromB, _ := g.Neighbors(b)
	fmt.Printf("A has %d edge(s), B has %d edge(s), logical edges: %d\n",
		len(fromA), len(fromB), g.EdgeCount())
	// Output: A has 1 edge(s), B has 1 edge(s), logical edges: 1
}

// ExampleGraph_AddVertex demonstrates that equal keys still mint distinct
// handles — identity is handle-based.
func ExampleGraph_AddVertex() {
	g := core.NewGraph()
	first := g.AddVertex("city")
	second := g.AddVertex("city")

	fmt.Printf("distinct handles: %v, vertices: %d\n", first != second, g.VertexCount())
	// Output: distinct handles: true, vertices: 2
}
