// This file implements route reconstruction: turning a backward-linked Path
// chain into the forward source→destination vertex sequence.

package dijkstra

import "github.com/katalvlaran/waypath/core"

// ReversePath converts the backward-linked chain ending at p into the
// forward-ordered route from source to p.Dest, suitable for turn-by-turn
// consumption.
//
// The chain is walked destination-first (Dest, Prev.Dest, …) down to the
// first-hop record, then the source handle is prepended and the collected
// sequence reversed. The chain itself is left untouched, so a finalized
// result can be reconstructed any number of times.
//
// Special cases:
//
//   - p == nil returns nil — there is no route to render.
//   - The zero-weight trivial path (Dest == source, Prev == nil, Total == 0)
//     renders as the one-element route [source].
//
// Complexity: O(L) for a chain of length L.
func ReversePath(p *Path, source core.VertexID) []core.VertexID {
	// 1) Absent result: nothing to reconstruct.
	if p == nil {
		return nil
	}

	// 2) Trivial self-path: the route is the source alone.
	if p.Prev == nil && p.Dest == source && p.Total == 0 {
		return []core.VertexID{source}
	}

	// 3) Collect destinations backward along the chain.
	route := make([]core.VertexID, 0, 8)
	for cur := p; cur != nil; cur = cur.Prev {
		route = append(route, cur.Dest)
	}

	// 4) The first-hop record has no predecessor; the source closes the walk.
	route = append(route, source)

	// 5) Reverse in place into forward order.
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route
}

// Keys maps a route of handles to the keys stored on those vertices, in the
// same order. Convenience for printing turn-by-turn output.
//
// Errors: core.ErrVertexNotFound if any handle is invalid for g.
func Keys(g *core.Graph, route []core.VertexID) ([]any, error) {
	if len(route) == 0 {
		return nil, nil
	}

	keys := make([]any, len(route))
	for i, id := range route {
		k, err := g.Key(id)
		if err != nil {
			return nil, err
		}
		keys[i] = k
	}

	return keys, nil
}
