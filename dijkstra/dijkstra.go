// This file implements the shortest-path engine: seeding, the greedy
// extraction loop, and edge relaxation.

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/frontier"
)

// ShortestPath computes the minimum-total-weight route from source to dest
// in g and returns its terminal Path record.
//
// Returns:
//
//   - (*Path, nil): the finalized record for dest. Walk Prev for the route,
//     or hand it to ReversePath for the forward vertex sequence.
//   - (nil, nil):   dest is unreachable from source — an absent result, not
//     an error. Callers must check for nil before use.
//   - (nil, err):   invalid inputs (ErrNilGraph, ErrVertexNotFound) or a
//     context cancellation error.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source and dest must be valid handles for g (ErrVertexNotFound).
//
// Non-negative weights are guaranteed by core.AddEdge, so no edge pre-scan
// is needed here.
//
// When source == dest the engine returns the zero-weight trivial path
// without running the search.
//
// Complexity: O((V + E) log V) with HeapFrontier, O(V²) with ScanFrontier.
func ShortestPath(g *core.Graph, source, dest core.VertexID, opts ...Option) (*Path, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the graph.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Validate both handles before touching adjacency.
	if !g.HasVertex(source) || !g.HasVertex(dest) {
		return nil, ErrVertexNotFound
	}

	// 4) Degenerate query: the zero-weight trivial path.
	if source == dest {
		return &Path{Dest: source, Total: 0, Prev: nil}, nil
	}

	// 5) Prepare per-invocation state. The frontier and both maps are owned
	//    exclusively by this call; the graph is only read.
	r := &runner{
		g:       g,
		options: cfg,
		front:   newFrontier(cfg.Strategy),
		dist:    map[core.VertexID]int64{source: 0},
		done:    make(map[core.VertexID]*Path),
	}

	// 6) Seed the frontier with the source's immediate edges and run the
	//    greedy loop until the frontier drains.
	r.seed(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	// 7) Answer from the finalized set; nil means dest was never reached.
	return r.done[dest], nil
}

// runner holds the mutable state for a single ShortestPath execution.
type runner struct {
	g       *core.Graph              // the input graph; read-only here
	options Options                  // configuration (strategy, caps, ctx)
	front   frontier.Frontier        // working set of unexplored candidates
	dist    map[core.VertexID]int64  // best-known total per vertex, for push pruning
	done    map[core.VertexID]*Path  // finalized records, first extraction wins
}

// newFrontier maps a Strategy to its frontier constructor. WithStrategy
// already rejected unknown values, so the default arm is unreachable via the
// public API.
func newFrontier(s Strategy) frontier.Frontier {
	if s == ScanFrontier {
		return frontier.NewScan()
	}

	return frontier.NewHeap()
}

// seed constructs one first-hop candidate per edge leaving source and
// inserts it into the frontier. First-hop records carry Prev == nil; the
// source itself never enters the frontier.
func (r *runner) seed(source core.VertexID) {
	// Neighbors cannot fail here: the handle was validated by ShortestPath.
	edges, _ := r.g.Neighbors(source)

	var e core.Edge
	for _, e = range edges {
		// Impassable edges never produce candidates.
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		// Totals beyond the cap are not worth queuing.
		if e.Weight > r.options.MaxDistance {
			continue
		}
		// Parallel first-hop edges: keep only the strict improvement.
		if d, seen := r.dist[e.To]; seen && e.Weight >= d {
			continue
		}

		r.dist[e.To] = e.Weight
		r.front.Push(&Path{Dest: e.To, Total: e.Weight, Prev: nil})
	}
}

// process is the greedy loop: repeatedly extract the cheapest candidate,
// finalize it, and extend it along its outgoing edges.
//
// Loop termination:
//
//   - The frontier drains (all useful candidates consumed), or
//   - the minimum total exceeds MaxDistance (nothing cheaper remains), or
//   - the context is cancelled (checked once per extraction, the loop's
//     only safe suspension point).
func (r *runner) process() error {
	for r.front.Len() > 0 {
		// 1) Cancellation check, once per extraction.
		select {
		case <-r.options.Ctx.Done():
			return r.options.Ctx.Err()
		default:
		}

		// 2) Extract the minimum-total candidate. Len > 0 guarantees ok.
		c, _ := r.front.Pop()
		best := c.(*Path)

		// 3) Skip stale entries: a cheaper route to this vertex was already
		//    finalized, so this candidate is dominated.
		if _, settled := r.done[best.Dest]; settled {
			continue
		}

		// 4) Past the cap nothing cheaper can follow — frontier extraction
		//    is monotone in total — so stop exploring entirely.
		if best.Total > r.options.MaxDistance {
			break
		}

		// 5) First extraction finalizes: by the greedy-choice argument under
		//    non-negative weights, best.Total is the minimum for this vertex.
		r.done[best.Dest] = best

		// 6) Extend the finalized route along its outgoing edges.
		if err := r.relax(best); err != nil {
			return err
		}
	}

	return nil
}

// relax extends best along each edge leaving best.Dest, pushing a new
// candidate for every strictly-improving total. Dominated candidates are
// never queued (lazy decrease-key: stale frontier entries are skipped at
// extraction instead of being removed).
func (r *runner) relax(best *Path) error {
	edges, err := r.g.Neighbors(best.Dest)
	if err != nil {
		// Unreachable with validated handles; surface with context regardless.
		return fmt.Errorf("dijkstra: neighbors of %d: %w", best.Dest, err)
	}

	var e core.Edge
	var total int64
	for _, e = range edges {
		// Skip impassable edges.
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		total = best.Total + e.Weight

		// Skip totals beyond the cap.
		if total > r.options.MaxDistance {
			continue
		}

		// Skip dominated candidates; strict < keeps equal-total routes from
		// piling up in the frontier.
		if d, seen := r.dist[e.To]; seen && total >= d {
			continue
		}

		r.dist[e.To] = total
		r.front.Push(&Path{Dest: e.To, Total: total, Prev: best})
	}

	return nil
}
