// This file declares the Path record, configuration options, and sentinel
// errors for the shortest-path engine.

package dijkstra

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/waypath/core"
)

// Sentinel errors returned by the shortest-path engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or destination handle does
	// not address a vertex in the given graph.
	ErrVertexNotFound = errors.New("dijkstra: source or destination vertex not found")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative
	// value, which is not meaningful for a distance cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// negative, which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrBadStrategy indicates that an unknown frontier strategy was selected.
	ErrBadStrategy = errors.New("dijkstra: unknown frontier strategy")
)

// Path is one discovered route from the implicit source to Dest: the
// accumulated total weight plus a link to the candidate it extended.
//
// Records are immutable once created. A vertex may be discovered via several
// routes, each producing a distinct record; only the first one extracted at
// minimum total is ever finalized. The Prev links form a backward chain
// ending in a first-hop record with Prev == nil.
type Path struct {
	// Dest is the vertex this candidate reaches.
	Dest core.VertexID

	// Total is the accumulated weight of the route from the source to Dest.
	Total int64

	// Prev is the candidate this route extended; nil for first-hop records
	// and for the trivial source==destination path.
	Prev *Path
}

// Cost returns the accumulated total, satisfying frontier.Candidate.
func (p *Path) Cost() int64 { return p.Total }

// Strategy selects the frontier implementation backing the search.
type Strategy int

const (
	// HeapFrontier uses the binary-heap frontier: O(log k) insert/extract.
	HeapFrontier Strategy = iota

	// ScanFrontier uses the linear-scan frontier: O(1) insert, O(k) extract.
	ScanFrontier
)

// Options configures the behavior of a ShortestPath invocation.
//
// Ctx              – cancellation context, checked once per extraction.
// Strategy         – frontier implementation (HeapFrontier or ScanFrontier).
// MaxDistance      – cap on totals to explore. Must be ≥ 0.
//
//	Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this are treated as impassable.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
type Options struct {
	Ctx              context.Context // Cancellation; defaults to context.Background()
	Strategy         Strategy        // Frontier selection
	MaxDistance      int64           // Maximum total to explore
	InfEdgeThreshold int64           // Weight threshold for impassable edges
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithStrategy selects the frontier implementation. Unknown strategies
// panic with ErrBadStrategy to signal invalid configuration early.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != HeapFrontier && s != ScanFrontier {
			panic(ErrBadStrategy.Error())
		}
		o.Strategy = s
	}
}

// WithContext sets the cancellation context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance caps exploration: candidates whose total exceeds max are
// neither finalized nor extended. Negative values panic with
// ErrBadMaxDistance. Default is math.MaxInt64 (no cap).
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as impassable
// walls that are never traversed. Zero or negative values panic with
// ErrBadInfThreshold. Default is math.MaxInt64 (no obstacles).
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with the engine's
// defaults. Use as a starting point for functional-option overrides.
//
// Defaults:
//   - Ctx:              context.Background() (no cancellation).
//   - Strategy:         HeapFrontier.
//   - MaxDistance:      math.MaxInt64 (no cap).
//   - InfEdgeThreshold: math.MaxInt64 (no impassable edges).
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		Strategy:         HeapFrontier,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
