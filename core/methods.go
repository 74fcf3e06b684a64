// This file implements the Graph store operations: vertex creation, edge
// connection, adjacency queries, and counters.

package core

// AddVertex creates and registers a new vertex carrying key and returns its
// handle. It always succeeds; duplicate keys create distinct vertices, and
// tracking the returned handles is the caller's responsibility.
//
// Complexity: O(1) amortized (arena append).
func (g *Graph) AddVertex(key any) VertexID {
	g.vertices = append(g.vertices, Vertex{Key: key})

	return VertexID(len(g.vertices) - 1)
}

// AddEdge appends a new Edge(to, weight) to from's adjacency list. If the
// graph is undirected, a reciprocal Edge(from, weight) is also appended to
// to's adjacency list, so one logical connection yields two half-records.
//
// Self-loops and parallel edges are permitted; the store is a plain
// container and leaves their (non-)usefulness to the search layer.
//
// Errors:
//   - ErrVertexNotFound if either handle is out of range.
//   - ErrNegativeWeight if weight < 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to VertexID, weight int64) error {
	// 1) Validate handles before touching adjacency.
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return ErrVertexNotFound
	}

	// 2) Enforce the non-negativity invariant at construction time.
	if weight < 0 {
		return ErrNegativeWeight
	}

	// 3) Append the forward half-record.
	g.vertices[from].edges = append(g.vertices[from].edges, Edge{To: to, Weight: weight})

	// 4) Mirror for undirected graphs; a self-loop needs no mirror.
	if !g.directed && from != to {
		g.vertices[to].edges = append(g.vertices[to].edges, Edge{To: from, Weight: weight})
	}

	g.edgeCount++

	return nil
}

// Neighbors returns the adjacency slice of outgoing edges for id, in
// insertion order. The returned slice is the live backing store — treat it
// as read-only.
//
// Complexity: O(1).
func (g *Graph) Neighbors(id VertexID) ([]Edge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	return g.vertices[id].edges, nil
}

// Key returns the caller-supplied key stored on the vertex id.
// Complexity: O(1).
func (g *Graph) Key(id VertexID) (any, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	return g.vertices[id].Key, nil
}

// HasVertex reports whether id addresses a vertex in this graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id VertexID) bool {
	return id >= 0 && int(id) < len(g.vertices)
}

// Directed reports whether the graph was constructed as directed.
func (g *Graph) Directed() bool { return g.directed }

// VertexCount returns the number of vertices in the arena.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of logical edges (one per AddEdge call,
// regardless of undirected mirroring).
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Degree returns the out-degree of id: the number of half-records in its
// adjacency list. On an undirected graph this counts mirrored records too.
//
// Errors: ErrVertexNotFound if id is out of range.
// Complexity: O(1).
func (g *Graph) Degree(id VertexID) (int, error) {
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}

	return len(g.vertices[id].edges), nil
}
