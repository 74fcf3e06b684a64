// Package frontier_test validates the min-ordering contract shared by the
// scan and heap frontier variants.
package frontier_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/frontier"
)

// item is a minimal Candidate for tests: a cost plus a label to observe
// tie-break order.
type item struct {
	cost  int64
	label string
}

func (it item) Cost() int64 { return it.cost }

// variants enumerates both implementations so every test runs against each.
func variants() map[string]func() frontier.Frontier {
	return map[string]func() frontier.Frontier{
		"scan": frontier.NewScan,
		"heap": frontier.NewHeap,
	}
}

func TestFrontier_ExtractionOrder(t *testing.T) {
	// Insert totals [7, 3, 9, 1]; extraction must yield 1, 3, 7, 9.
	for name, newF := range variants() {
		t.Run(name, func(t *testing.T) {
			f := newF()
			for _, c := range []int64{7, 3, 9, 1} {
				f.Push(item{cost: c})
			}
			require.Equal(t, 4, f.Len())

			var got []int64
			for {
				c, ok := f.Pop()
				if !ok {
					break
				}
				got = append(got, c.Cost())
			}
			assert.Equal(t, []int64{1, 3, 7, 9}, got)
			assert.Equal(t, 0, f.Len())
		})
	}
}

func TestFrontier_PopEmpty(t *testing.T) {
	for name, newF := range variants() {
		t.Run(name, func(t *testing.T) {
			f := newF()
			c, ok := f.Pop()
			assert.False(t, ok)
			assert.Nil(t, c)

			c, ok = f.Peek()
			assert.False(t, ok)
			assert.Nil(t, c)
		})
	}
}

func TestFrontier_PeekDoesNotRemove(t *testing.T) {
	for name, newF := range variants() {
		t.Run(name, func(t *testing.T) {
			f := newF()
			f.Push(item{cost: 5})
			f.Push(item{cost: 2})

			c, ok := f.Peek()
			require.True(t, ok)
			assert.Equal(t, int64(2), c.Cost())
			assert.Equal(t, 2, f.Len())

			c, ok = f.Pop()
			require.True(t, ok)
			assert.Equal(t, int64(2), c.Cost())
			assert.Equal(t, 1, f.Len())
		})
	}
}

func TestFrontier_EqualCostsComeOutFIFO(t *testing.T) {
	for name, newF := range variants() {
		t.Run(name, func(t *testing.T) {
			f := newF()
			f.Push(item{cost: 4, label: "first"})
			f.Push(item{cost: 1, label: "min"})
			f.Push(item{cost: 4, label: "second"})
			f.Push(item{cost: 4, label: "third"})

			var labels []string
			for {
				c, ok := f.Pop()
				if !ok {
					break
				}
				labels = append(labels, c.(item).label)
			}
			assert.Equal(t, []string{"min", "first", "second", "third"}, labels)
		})
	}
}

// TestFrontier_OrderingInvariant interleaves random pushes and pops and
// checks that every popped cost is ≤ every cost still queued — the
// correctness-critical invariant, after every cycle, not just initially.
func TestFrontier_OrderingInvariant(t *testing.T) {
	const ops = 2000
	rnd := rand.New(rand.NewSource(7))

	for name, newF := range variants() {
		t.Run(name, func(t *testing.T) {
			f := newF()
			var queued []int64

			for i := 0; i < ops; i++ {
				if f.Len() == 0 || rnd.Intn(3) != 0 {
					c := rnd.Int63n(1000)
					f.Push(item{cost: c})
					queued = append(queued, c)
					continue
				}

				popped, ok := f.Pop()
				require.True(t, ok)

				// Remove one matching cost from the shadow multiset.
				found := -1
				for j, c := range queued {
					if c == popped.Cost() {
						found = j
						break
					}
				}
				require.GreaterOrEqual(t, found, 0, "popped a cost that was never pushed")
				queued = append(queued[:found], queued[found+1:]...)

				for _, c := range queued {
					require.LessOrEqual(t, popped.Cost(), c,
						"%s frontier returned a non-minimal candidate", name)
				}
			}
		})
	}
}

// TestFrontier_StrategyParity drains identical random workloads through both
// variants and requires identical cost sequences.
func TestFrontier_StrategyParity(t *testing.T) {
	const n = 500
	rnd := rand.New(rand.NewSource(11))
	costs := make([]int64, n)
	for i := range costs {
		costs[i] = rnd.Int63n(50) // small range forces plenty of ties
	}

	drain := func(f frontier.Frontier) []int64 {
		for _, c := range costs {
			f.Push(item{cost: c})
		}
		out := make([]int64, 0, n)
		for {
			c, ok := f.Pop()
			if !ok {
				return out
			}
			out = append(out, c.Cost())
		}
	}

	assert.Equal(t, drain(frontier.NewScan()), drain(frontier.NewHeap()))
}
