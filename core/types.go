// This file declares VertexID, Vertex, Edge, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a handle that does
	// not address a vertex in this graph (out of range or NoVertex).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeWeight indicates a negative edge weight was supplied.
	// Shortest-path correctness depends on non-negative weights, so the
	// store rejects them at construction time.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// VertexID is an opaque handle to a vertex, valid only for the Graph that
// minted it. Handles are dense indices starting at zero.
type VertexID int

// NoVertex is the sentinel handle meaning "no vertex".
const NoVertex VertexID = -1

// Vertex is one arena record: the caller-supplied key plus the ordered
// adjacency slice of outgoing edges.
//
// Key is opaque payload — the store never compares or hashes it, and
// duplicate keys across vertices are permitted.
type Vertex struct {
	// Key is the caller-supplied identifying value for this vertex.
	Key any

	// edges is the ordered adjacency list of outgoing edges.
	edges []Edge
}

// Edge is a weighted half-record from an implicit source vertex (the owner
// of the adjacency slice it lives in) to a neighbor.
type Edge struct {
	// To is the neighbor vertex handle.
	To VertexID

	// Weight is the non-negative cost of traversing this edge.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the core in-memory graph store.
//
// Vertices live in a flat arena indexed by VertexID; edges live in their
// source vertex's adjacency slice. The zero value is not usable — construct
// with NewGraph.
type Graph struct {
	// directed controls whether AddEdge mirrors a reciprocal half-record.
	directed bool

	// vertices is the handle arena; VertexID n addresses vertices[n].
	vertices []Vertex

	// edgeCount tracks logical edges (one per AddEdge call).
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default, the Graph is undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
