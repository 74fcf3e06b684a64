// Package dijkstra provides the waypath shortest-path engine: a greedy
// single-source search over non-negative weighted graphs, with selectable
// frontier strategies and predecessor-chain route reconstruction.
//
// Overview:
//
//   - ShortestPath drives the search from a source handle toward a
//     destination handle and returns the minimum-total-weight Path record,
//     or an absent (nil) result when the destination is unreachable.
//   - Every discovered route is a Path record: the vertex it reaches, the
//     accumulated total, and a link to the record it extended. The chain of
//     links runs backward to the first hop; ReversePath turns it into the
//     forward source→…→destination sequence.
//   - The working set of candidates lives in a frontier.Frontier. Two
//     interchangeable strategies are available at construction time:
//     HeapFrontier (binary heap, O(log k) operations — the default) and
//     ScanFrontier (linear scan, O(k) extraction). Both return identical
//     totals on every graph; only internal work differs.
//
// Algorithm:
//
//  1. Seed: one candidate per edge leaving the source, with no predecessor.
//  2. Loop: extract the cheapest candidate; the first extraction for any
//     vertex finalizes it (greedy-choice argument under non-negative
//     weights); later extractions for the same vertex are stale and skipped.
//     Each finalized candidate is extended along its outgoing edges, pushing
//     only strictly-improving candidates (lazy decrease-key).
//  3. Terminate when the frontier drains; answer from the finalized record
//     of the destination, or nil if it was never reached.
//
// Complexity:
//
//   - HeapFrontier: O((V + E) log V) — up to E pushes and V useful pops,
//     each costing O(log N) with N ≤ V + E.
//   - ScanFrontier: O(V²) on dense graphs — each extraction scans the
//     current frontier.
//   - Space: O(V + E) for the distance map and queued candidates.
//
// Options:
//
//   - WithStrategy(s)          selects HeapFrontier or ScanFrontier.
//   - WithContext(ctx)         allows cancellation, checked once per
//     extraction — the only safe suspension point in the loop.
//   - WithMaxDistance(x)       stops exploring past total x (x ≥ 0).
//   - WithInfEdgeThreshold(t)  treats edges with weight ≥ t as impassable
//     (t > 0).
//
// Errors (sentinel):
//
//   - ErrNilGraph         if the graph pointer is nil.
//   - ErrVertexNotFound   if the source or destination handle is invalid.
//   - ErrBadMaxDistance   (via panic) if WithMaxDistance receives x < 0.
//   - ErrBadInfThreshold  (via panic) if WithInfEdgeThreshold receives t ≤ 0.
//   - ErrBadStrategy      (via panic) if WithStrategy receives an unknown
//     strategy.
//   - context errors      if the supplied context is cancelled mid-search.
//
// An unreachable destination is not an error: the result is (nil, nil), and
// callers must check for absence before walking the route. When source and
// destination coincide the engine returns the zero-weight trivial path, and
// ReversePath renders it as the one-element route [source].
//
// Thread safety:
//
//   - One ShortestPath invocation owns its frontier and bookkeeping
//     exclusively; the graph is only read. Searches over the same graph may
//     run concurrently as long as nothing mutates the graph meanwhile.
//
// Negative weights are rejected by core.AddEdge, so every graph that reaches
// this engine already satisfies the non-negativity precondition the greedy
// argument needs. Multi-source search, negative-weight handling, and
// heuristic (A*) variants are out of scope.
package dijkstra
