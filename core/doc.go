// Package core provides the graph store for waypath: an arena-backed,
// in-memory container of vertices and weighted directed or undirected edges.
//
// Overview:
//
//   - Vertices are created with AddVertex and addressed by VertexID handles.
//     A handle is an index into the graph's vertex arena, so lookups are O(1)
//     and predecessor chains elsewhere in waypath can store plain integers.
//   - Identity is handle-based, not key-based: two vertices carrying equal
//     keys are still distinct. The caller keeps track of the handles it
//     receives; the key is opaque payload the store never inspects.
//   - Edges are weighted half-records owned by the source vertex's adjacency
//     slice. On an undirected graph each logical connection is mirrored as
//     two half-records with equal weight, one per endpoint.
//
// Weights:
//
//   - Edge weights must be non-negative; AddEdge rejects weight < 0 with
//     ErrNegativeWeight. The downstream greedy search is only correct under
//     this invariant, so it is enforced at construction time rather than
//     discovered mid-search.
//
// Concurrency:
//
//   - A Graph is not safe for concurrent mutation. Build it, then treat it
//     as read-only while searches run. Callers that must mutate and query
//     concurrently should synchronize externally or clone before searching.
//
// Handles:
//
//   - Out-of-range handles are rejected with ErrVertexNotFound. An in-range
//     handle minted by a different Graph is indistinguishable from a local
//     one (handles are plain ints); passing handles across graphs is caller
//     error and yields whatever vertex occupies that slot.
//
// Errors (sentinel):
//
//	ErrVertexNotFound - a VertexID does not address a vertex in this graph.
//	ErrNegativeWeight - a negative edge weight was supplied to AddEdge.
package core
